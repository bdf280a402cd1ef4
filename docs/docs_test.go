package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestReadDoc(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var parsed struct {
		BasePath string                    `json:"basePath"`
		Paths    map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))
	assert.Equal(t, "/api/v1", parsed.BasePath)
	for _, path := range []string{"/resume/parse", "/roles", "/hr/login", "/hr/candidates", "/hr/candidates/{id}/stage", "/hr/board", "/ready"} {
		assert.Contains(t, parsed.Paths, path)
	}
	assert.Contains(t, parsed.Paths["/hr/candidates/{id}/stage"], "patch")
}
