package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Should pick production static dir and hide details", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("STATIC_DIR", "")
		require.NoError(t, os.Unsetenv("STATIC_DIR"))
		t.Setenv("SMTP_USERNAME", "mailer@complianceai.com")
		t.Setenv("SMTP_PASSWORD", "secret")
		t.Setenv("SMTP_FROM_EMAIL", "")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.True(t, cfg.IsProduction())
		assert.Equal(t, "public", cfg.StaticDir)
		assert.Equal(t, "noreply@complianceai.com", cfg.SMTPFromEmail)
	})

	t.Run("Should fall back to SMTP login as sender", func(t *testing.T) {
		t.Setenv("APP_ENV", "development")
		t.Setenv("SMTP_USERNAME", "mailer@complianceai.com")
		t.Setenv("SMTP_FROM_EMAIL", "")
		require.NoError(t, os.Unsetenv("SMTP_FROM_EMAIL"))
		t.Setenv("SMTP_PORT", "587")
		t.Setenv("SMTP_SECURE", "false")
		t.Setenv("ALLOWED_ORIGINS", "https://complianceai.com/, http://localhost:5173")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.False(t, cfg.IsProduction())
		assert.Equal(t, "mailer@complianceai.com", cfg.SMTPFromEmail)
		assert.Equal(t, 587, cfg.SMTPPort)
		assert.False(t, cfg.SMTPSecure)
		assert.Equal(t, []string{"https://complianceai.com", "http://localhost:5173"}, cfg.AllowedOrigins)
	})

	t.Run("Should allow any origin by default", func(t *testing.T) {
		t.Setenv("ALLOWED_ORIGINS", "")
		require.NoError(t, os.Unsetenv("ALLOWED_ORIGINS"))

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	})

	t.Run("Should ignore invalid numbers", func(t *testing.T) {
		t.Setenv("SMTP_PORT", "not-a-port")
		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 465, cfg.SMTPPort)
	})
}

func TestDefaultStaticDir(t *testing.T) {
	assert.Equal(t, "public", DefaultStaticDir(EnvProduction))
	assert.Equal(t, "dist/public", DefaultStaticDir(EnvDevelopment))
}
