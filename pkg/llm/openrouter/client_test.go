package openrouter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/hrboard/pkg/llm"
)

func TestClient_AskJSON(t *testing.T) {
	var got chatCompletionsRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		assert.Equal(t, "hrboard", r.Header.Get("X-Title"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"choices":[{"index":0,"message":{"role":"assistant","content":"{\"ok\":true}"}}]}`))
	}))
	defer srv.Close()

	c := New("key", srv.URL+"/", "test/model", "hrboard", "")
	out, err := c.AskJSON(context.Background(), "sys", "user")
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, out)

	assert.Equal(t, "test/model", got.Model)
	require.NotNil(t, got.ResponseFormat)
	assert.Equal(t, "json_object", got.ResponseFormat.Type)
	assert.InDelta(t, 0.1, got.Temperature, 1e-6)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
}

func TestClient_Errors(t *testing.T) {
	_, err := New("", "", "", "", "").Ask(context.Background(), "s", "u")
	assert.ErrorIs(t, err, llm.ErrNotConfigured)

	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer empty.Close()
	_, err = New("key", empty.URL, "", "", "").Ask(context.Background(), "s", "u")
	assert.ErrorIs(t, err, llm.ErrEmptyResponse)

	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"upstream"}`))
	}))
	defer failing.Close()
	_, err = New("key", failing.URL, "", "", "").Ask(context.Background(), "s", "u")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestClient_Defaults(t *testing.T) {
	c := New("k", "", "", "", "")
	assert.Equal(t, defaultBaseURL, c.BaseURL)
	assert.Empty(t, c.Model())
	assert.Equal(t, "openrouter", c.Provider())
}
