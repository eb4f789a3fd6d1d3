package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFile(t *testing.T) {
	cfg, err := LoadConfig("config.toml")
	require.NoError(t, err)

	assert.Equal(t, "mysql", cfg.DB.Driver)
	assert.True(t, cfg.DB.Automigrate)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, 30*time.Second, cfg.HTTP.RequestTimeout)
	assert.Equal(t, "12h", cfg.Auth.JWTTTL)
	assert.Equal(t, time.Minute, cfg.Mailer.WorkerInterval)
	assert.Equal(t, "Business Expansion Seminar 11.0", cfg.Event.Name)
	assert.Equal(t, 30, cfg.RateLimit.BookingsPerHour)
	assert.Equal(t, "Asia/Kuala_Lumpur", cfg.Report.Timezone)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "from-env")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("EVENT_VENUE", "Hall B")

	cfg, err := LoadConfig("config.toml")
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, "Hall B", cfg.Event.Venue)
}

func TestLoadConfigDefaultsAndDSN(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MYSQL_HOST", "db.internal")
	t.Setenv("MYSQL_USER", "u")
	t.Setenv("MYSQL_PASSWORD", "p")
	t.Setenv("MYSQL_DATABASE", "seminar")

	cfg, err := LoadConfig(filepath.Join(dir, "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, "u:p@tcp(db.internal:3306)/seminar?charset=utf8mb4&parseTime=true", cfg.DB.DSN)
	assert.Equal(t, 100000, cfg.Auth.PasswordHasherIterations)
	assert.Equal(t, "en", cfg.I18n.DefaultLocale)
}

func TestLoadConfigDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("EVENT_NAME=Dotenv Seminar\n"), 0o600))
	wd, err := os.Getwd()
	require.NoError(t, err)
	cfgPath := filepath.Join(wd, "config.toml")
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
		_ = os.Unsetenv("EVENT_NAME")
	})

	cfg, err := LoadConfig(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "Dotenv Seminar", cfg.Event.Name)
}
