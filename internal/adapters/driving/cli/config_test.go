package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ansvar-Systems/ghana-law-mcp/internal/adapters/driven/config/file"
)

// setupTestConfig points the package config store at a temp directory.
func setupTestConfig(t *testing.T) func() {
	t.Helper()

	original := configStore
	store, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)
	configStore = store

	return func() { configStore = original }
}

func TestConfigCmd_Use(t *testing.T) {
	assert.Equal(t, "config", configCmd.Use)
}

func TestConfigShowCmd_ShowsDefaults(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "show"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "source.index_url")
	assert.Contains(t, buf.String(), "https://ghalii.org/legislation/")
}

func TestConfigSetCmd_PersistsValue(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "set", "mcp.http_addr", "localhost:9999"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Set mcp.http_addr = localhost:9999")
	assert.Equal(t, "localhost:9999", configStore.GetString(file.KeyHTTPAddr))
}

func TestConfigSetCmd_RequiresTwoArgs(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"config", "set", "only-key"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}
