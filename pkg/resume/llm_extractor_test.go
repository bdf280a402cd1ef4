package resume

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/hrboard/pkg/llm"
)

type stubModel struct {
	reply  string
	err    error
	prompt string
}

func (s *stubModel) Ask(ctx context.Context, system, user string) (string, error) {
	return s.AskJSON(ctx, system, user)
}

func (s *stubModel) AskJSON(_ context.Context, _, user string) (string, error) {
	s.prompt = user
	return s.reply, s.err
}

func (s *stubModel) Provider() string { return "stub" }
func (s *stubModel) Model() string    { return "stub-1" }

func TestLLMExtractor_Extract(t *testing.T) {
	model := &stubModel{reply: "Here you go:\n{\"candidateName\":{\"firstName\":\"Jane\",\"familyName\":\"Doe\"},\"email\":[\"jane@example.com\"]}"}
	ex := NewLLMExtractor(model, nil)

	raw, err := ex.Extract(context.Background(), "jane.txt", []byte("Jane Doe\njane@example.com\nReact developer"))
	require.NoError(t, err)
	require.NotNil(t, raw.CandidateName)
	assert.Equal(t, "Jane", *raw.CandidateName.FirstName)
	assert.Equal(t, []string{"jane@example.com"}, raw.Email)
	assert.Contains(t, model.prompt, "React developer")
}

func TestLLMExtractor_Failures(t *testing.T) {
	ctx := context.Background()

	model := &stubModel{}
	_, err := NewLLMExtractor(model, nil).Extract(ctx, "cv.exe", []byte("x"))
	assert.ErrorIs(t, err, ErrExtraction)
	assert.ErrorIs(t, err, ErrUnsupportedFile)
	assert.Empty(t, model.prompt)

	_, err = NewLLMExtractor(&stubModel{}, nil).Extract(ctx, "cv.txt", []byte("   "))
	assert.ErrorIs(t, err, ErrExtraction)

	_, err = NewLLMExtractor(nil, nil).Extract(ctx, "cv.txt", []byte("Jane"))
	assert.ErrorIs(t, err, ErrExtraction)

	_, err = NewLLMExtractor(&stubModel{err: errors.New("timeout")}, nil).Extract(ctx, "cv.txt", []byte("Jane"))
	assert.ErrorIs(t, err, ErrExtraction)

	_, err = NewLLMExtractor(&stubModel{reply: "not json"}, nil).Extract(ctx, "cv.txt", []byte("Jane"))
	assert.ErrorIs(t, err, ErrExtraction)
}

var _ llm.ChatModel = (*stubModel)(nil)
