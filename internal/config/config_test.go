package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	require.Equal(t, defaultPort, cfg.Port)
	require.Equal(t, "sqlite", cfg.Storage.Driver)
	require.Equal(t, "admin@clementmotivates.com", cfg.Admin.Email)
	require.Equal(t, "admin", cfg.Admin.Password)
	require.True(t, cfg.IsDev())
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: 8080
env: Production
storage:
  driver: redis
  redis_url: localhost:6380/2
admin:
  email: owner@example.com
  password_hash: $2a$10$abcdefghijklmnopqrstuv
whatsapp:
  phone: 234-806-0180077
allowed_origins:
  - "https://clementmotivates.com"
  - "  "
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Port)
	require.False(t, cfg.IsDev())
	require.Equal(t, "redis", cfg.Storage.Driver)
	require.Equal(t, "redis://localhost:6380/2", cfg.Storage.RedisURL)
	require.Equal(t, "owner@example.com", cfg.Admin.Email)
	require.NotEmpty(t, cfg.Admin.PasswordHash)
	require.Equal(t, "2348060180077", cfg.WhatsApp.Phone)
	require.Equal(t, []string{"https://clementmotivates.com"}, cfg.AllowedOrigins)
}

func TestLoadRejectsBadValues(t *testing.T) {
	dir := t.TempDir()

	badPort := filepath.Join(dir, "port.yml")
	require.NoError(t, os.WriteFile(badPort, []byte("port: 99999\n"), 0o644))
	_, err := Load(badPort)
	require.Error(t, err)

	badDriver := filepath.Join(dir, "driver.yml")
	require.NoError(t, os.WriteFile(badDriver, []byte("storage:\n  driver: mongodb\n"), 0o644))
	_, err = Load(badDriver)
	require.Error(t, err)
}
