package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir switches the working directory for the test and restores it on
// cleanup; stand-in for testing.T.Chdir, which needs Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, DefaultRouteTypes, cfg.API.RouteTypes)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout())
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	body := `api:
  base_url: "https://transit.example.test"
  timeout_ms: 5000
  route_types: "0,1,2"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(body), 0o644))
	chdir(t, dir)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "https://transit.example.test", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout())
	assert.Equal(t, "0,1,2", cfg.API.RouteTypes)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	body := `api:
  route_types: "2"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(body), 0o644))
	chdir(t, dir)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, "2", cfg.API.RouteTypes)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "bad url",
			body: "api:\n  base_url: \"not a url\"\n",
		},
		{
			name: "negative timeout",
			body: "api:\n  timeout_ms: -1\n",
		},
		{
			name: "malformed yaml",
			body: "api: [\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(tt.body), 0o644))
			chdir(t, dir)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
