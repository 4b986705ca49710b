package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/cost-compass/pkg/services/loc"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".costcompasscfg")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRegistry_GetProfiles(t *testing.T) {
	path := writeConfig(t, `[default]
token = gh-token

[work]
host = https://github.example.com/api/v3
token = work-token
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	profiles, err := registry.GetProfiles(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"default", "work"}, profiles)
}

func TestRegistry_GetCredentials(t *testing.T) {
	path := writeConfig(t, `[default]
token = gh-token

[work]
host = https://github.example.com/api/v3
token = work-token
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	creds, err := registry.GetCredentials(context.Background(), "work")
	require.NoError(t, err)
	assert.Equal(t, "https://github.example.com/api/v3", creds.Host)
	assert.Equal(t, "work-token", creds.Token)

	creds, err = registry.GetCredentials(context.Background(), "default")
	require.NoError(t, err)
	assert.Equal(t, loc.DefaultAPIBase, creds.Host, "host defaults to the public API")
	assert.Equal(t, "gh-token", creds.Token)
}

func TestRegistry_GetCredentials_UnknownProfile(t *testing.T) {
	path := writeConfig(t, `[default]
token = gh-token
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	_, err = registry.GetCredentials(context.Background(), "missing")
	assert.Error(t, err)
}

func TestNewRegistry_MissingFile(t *testing.T) {
	_, err := NewRegistry(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}
