package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-jobhub/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))
	return dir
}

func TestLoad(t *testing.T) {
	t.Run("reads the config file and fills defaults", func(t *testing.T) {
		dir := writeConfig(t, "signing_key: test-secret\n")

		cfg, err := config.Load(dir)
		require.NoError(t, err)

		assert.Equal(t, "test-secret", cfg.GetSigningKey())
		assert.Equal(t, ":9000", cfg.ServerAddr)
		assert.Equal(t, "HS256", cfg.GetSigningMethod())
		assert.Equal(t, 24, cfg.GetTokenExpiration())
		assert.Equal(t, "user", cfg.GetContextKey())
		assert.Equal(t, "header:Authorization", cfg.GetTokenLookup())
		assert.Equal(t, "Bearer", cfg.GetAuthScheme())
		assert.Equal(t, "jobhub", cfg.GetIssuer())
		assert.Equal(t, []string{"jobhub-api"}, cfg.GetAudience())
	})

	t.Run("config file values win over defaults", func(t *testing.T) {
		dir := writeConfig(t, `signing_key: test-secret
server_addr: ":8080"
token_expiration: 48
audience: "jobhub-api, jobhub-admin"
`)

		cfg, err := config.Load(dir)
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.ServerAddr)
		assert.Equal(t, 48, cfg.GetTokenExpiration())
		assert.Equal(t, []string{"jobhub-api", "jobhub-admin"}, cfg.GetAudience())
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		dir := writeConfig(t, "signing_key: from-file\n")
		t.Setenv("JOBHUB_SIGNING_KEY", "from-env")

		cfg, err := config.Load(dir)
		require.NoError(t, err)

		assert.Equal(t, "from-env", cfg.GetSigningKey())
	})

	t.Run("missing signing key is an error", func(t *testing.T) {
		dir := writeConfig(t, "server_addr: \":8080\"\n")

		_, err := config.Load(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "signing_key")
	})

	t.Run("non positive token expiration is an error", func(t *testing.T) {
		dir := writeConfig(t, "signing_key: test-secret\ntoken_expiration: 0\n")

		_, err := config.Load(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "token_expiration")
	})

	t.Run("missing config file still works with env", func(t *testing.T) {
		t.Setenv("JOBHUB_SIGNING_KEY", "from-env")

		cfg, err := config.Load(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "from-env", cfg.GetSigningKey())
	})
}
