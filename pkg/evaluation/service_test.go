package evaluation

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/artem13815/hrboard/pkg/candidate"
	"github.com/artem13815/hrboard/pkg/llm"
	"github.com/artem13815/hrboard/pkg/llm/gemini"
	"github.com/artem13815/hrboard/pkg/llm/openrouter"
)

type fakeOracle struct {
	model  string
	reply  string
	err    error
	calls  int
	system string
	user   string
}

func (f *fakeOracle) Ask(ctx context.Context, system, user string) (string, error) {
	return f.AskJSON(ctx, system, user)
}

func (f *fakeOracle) AskJSON(_ context.Context, system, user string) (string, error) {
	f.calls++
	f.system, f.user = system, user
	return f.reply, f.err
}

func (f *fakeOracle) Provider() string { return "fake" }
func (f *fakeOracle) Model() string    { return f.model }

func jane() candidate.Candidate {
	return candidate.Candidate{
		Name:   candidate.Name{First: "Jane", Family: "Doe"},
		Emails: []string{"jane@example.com"},
		Skills: []candidate.Skill{{Name: "React"}},
	}
}

func TestEvaluate_Success(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	oracle := &fakeOracle{model: "gemini-test", reply: validPayload}
	svc := NewService(oracle, zap.New(core))

	ev, err := svc.Evaluate(context.Background(), jane(), "Frontend Developer: React, TypeScript")
	require.NoError(t, err)
	assert.Equal(t, 82.0, ev.OverallScore)
	assert.Equal(t, 1, oracle.calls)
	assert.Contains(t, oracle.user, `"first": "Jane"`)
	assert.Contains(t, oracle.user, "Frontend Developer: React, TypeScript")
	assert.Contains(t, oracle.system, "JSON")

	entries := logs.FilterMessage("candidate evaluated").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "gemini-test", entries[0].ContextMap()["ai_model"])
}

func TestEvaluate_ConfigurationChecksRunFirst(t *testing.T) {
	oracle := &fakeOracle{model: "m", reply: validPayload}
	_, err := NewService(oracle, nil).Evaluate(context.Background(), jane(), "   ")
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.Zero(t, oracle.calls)

	noModel := &fakeOracle{reply: validPayload}
	_, err = NewService(noModel, nil).Evaluate(context.Background(), jane(), "jd")
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.Zero(t, noModel.calls)

	_, err = NewService(nil, nil).Evaluate(context.Background(), jane(), "jd")
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestEvaluate_UnsetModelIsConfigurationError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	router := openrouter.New("key", srv.URL, "", "", "")
	_, err := NewService(router, nil).Evaluate(context.Background(), jane(), "jd")
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.Zero(t, calls.Load())

	gem, err := gemini.New(context.Background(), "", "")
	require.NoError(t, err)
	_, err = NewService(gem, nil).Evaluate(context.Background(), jane(), "jd")
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestEvaluate_OracleErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"missing key", llm.ErrNotConfigured, ErrConfiguration},
		{"empty", llm.ErrEmptyResponse, ErrOracleEmptyResponse},
		{"transport", errors.New("dial tcp: connection refused"), ErrOracleUnavailable},
		{"cancelled", context.Canceled, ErrOracleUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewService(&fakeOracle{model: "m", err: tc.err}, nil)
			_, err := svc.Evaluate(context.Background(), jane(), "jd")
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestEvaluate_MalformedAndEmptyReplies(t *testing.T) {
	svc := NewService(&fakeOracle{model: "m", reply: ""}, nil)
	_, err := svc.Evaluate(context.Background(), jane(), "jd")
	assert.ErrorIs(t, err, ErrOracleEmptyResponse)

	svc = NewService(&fakeOracle{model: "m", reply: `{"overallScore": 82, "roleSuitability": [], "strengths": [], "weaknesses": [], "skillGaps": [], "recommendation": "weak", "evaluationSummary": ""}`}, nil)
	_, err = svc.Evaluate(context.Background(), jane(), "jd")
	assert.ErrorIs(t, err, ErrOracleMalformedResponse)
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	a, err := BuildPrompt(jane(), "jd")
	require.NoError(t, err)
	b, err := BuildPrompt(jane(), "jd")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Contains(t, a, `"strong" (75-100)`)
}
