package gemini

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/artem13815/hrboard/pkg/llm"
)

type fakeModels struct {
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
	resp     *genai.GenerateContentResponse
	err      error
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	f.contents = contents
	f.config = config
	return f.resp, f.err
}

func textResponse(parts ...string) *genai.GenerateContentResponse {
	content := &genai.Content{Role: genai.RoleModel}
	for _, p := range parts {
		content.Parts = append(content.Parts, &genai.Part{Text: p})
	}
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{Content: content}}}
}

func TestClient_AskJSON(t *testing.T) {
	fake := &fakeModels{resp: textResponse(`{"overallScore": 82}`)}
	c := &Client{models: fake, modelName: "gemini-test"}

	out, err := c.AskJSON(context.Background(), "json only", "evaluate")
	require.NoError(t, err)
	assert.Equal(t, `{"overallScore": 82}`, out)

	assert.Equal(t, "gemini-test", fake.model)
	require.NotNil(t, fake.config)
	assert.Equal(t, "application/json", fake.config.ResponseMIMEType)
	require.NotNil(t, fake.config.Temperature)
	assert.InDelta(t, 0.1, *fake.config.Temperature, 1e-6)
	require.NotNil(t, fake.config.SystemInstruction)
	assert.Equal(t, "json only", fake.config.SystemInstruction.Parts[0].Text)
	require.Len(t, fake.contents, 1)
	assert.Equal(t, "evaluate", fake.contents[0].Parts[0].Text)
}

func TestClient_JoinsParts(t *testing.T) {
	c := &Client{models: &fakeModels{resp: textResponse("a", " ", "b")}, modelName: "m"}
	out, err := c.Ask(context.Background(), "", "q")
	require.NoError(t, err)
	assert.Equal(t, "a\nb", out)
}

func TestClient_Errors(t *testing.T) {
	_, err := (&Client{modelName: "m"}).AskJSON(context.Background(), "s", "u")
	assert.ErrorIs(t, err, llm.ErrNotConfigured)

	c := &Client{models: &fakeModels{resp: &genai.GenerateContentResponse{}}, modelName: "m"}
	_, err = c.AskJSON(context.Background(), "s", "u")
	assert.ErrorIs(t, err, llm.ErrEmptyResponse)

	apiErr := genai.APIError{Code: http.StatusServiceUnavailable, Status: "UNAVAILABLE"}
	c = &Client{models: &fakeModels{err: apiErr}, modelName: "m"}
	_, err = c.AskJSON(context.Background(), "s", "u")
	require.Error(t, err)
	var target genai.APIError
	assert.True(t, errors.As(err, &target))
	assert.False(t, errors.Is(err, llm.ErrEmptyResponse))
}

func TestNew_WithoutKey(t *testing.T) {
	c, err := New(context.Background(), " ", " ")
	require.NoError(t, err)
	assert.Empty(t, c.Model())
	assert.Equal(t, "gemini", c.Provider())
}
