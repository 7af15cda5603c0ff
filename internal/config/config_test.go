package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wedding-site-go/pkg/logger"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, SessionStorePostgres, cfg.Session.Store)
	assert.Equal(t, 168*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "wedding_session", cfg.Session.CookieName)
	assert.Equal(t, 5, cfg.RateLimit.Burst)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.HTTP.Origins())
}

func TestLoadFromEnvOverridesDotEnv(t *testing.T) {
	dir := t.TempDir()
	content := []byte("HTTP_PORT=9090\nSESSION_TTL=2h\nDB_NAME=from_file\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), content, 0o600))

	nested := filepath.Join(dir, "nested", "deeper")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	chdir(t, nested)

	t.Setenv("HTTP_PORT", "7070")
	t.Cleanup(func() {
		_ = os.Unsetenv("SESSION_TTL")
		_ = os.Unsetenv("DB_NAME")
	})

	cfg, err := Load(logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.HTTP.Port, "process env wins over .env")
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "from_file", cfg.DB.Name)
}

func TestLoadRejectsRedisStoreWithoutURL(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SESSION_STORE", "redis")

	_, err := Load(logger.Nop())
	require.Error(t, err)
}

func TestOriginsSkipsBlanks(t *testing.T) {
	cfg := HTTPConfig{AllowedOrigins: " https://a.example , ,https://b.example"}
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Origins())
}

func TestGetDSN(t *testing.T) {
	cfg := DBConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "n", SSLMode: "disable", TimeZone: "UTC"}
	assert.Equal(t, "host=db user=u password=p dbname=n port=5432 sslmode=disable TimeZone=UTC", cfg.GetDSN())

	cfg.DSN = "postgres://x"
	assert.Equal(t, "postgres://x", cfg.GetDSN())
}
