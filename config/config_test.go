package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetWebConfigDefaults(t *testing.T) {
	t.Setenv("FOLIO_PORT", "")
	t.Setenv("FOLIO_SESSION_MAX_AGE", "")
	t.Setenv("FOLIO_UPLOAD_FOLDER", "")
	t.Setenv("FOLIO_SECRET", "")

	cfg, err := GetWebConfig()
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, 1440, cfg.SessionMaxAge)
	assert.Equal(t, int64(16*1024*1024), cfg.MaxUploadSize)
	assert.Equal(t, filepath.Join("static", "uploads"), cfg.UploadFolder)
	assert.Empty(t, cfg.Secret)
}

func TestGetWebConfigRejectsBadPort(t *testing.T) {
	t.Setenv("FOLIO_PORT", "http")

	_, err := GetWebConfig()
	assert.Error(t, err)
}

func TestWebConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *WebConfig)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *WebConfig) {}},
		{name: "missing secret", mutate: func(c *WebConfig) { c.Secret = "" }, wantErr: true},
		{name: "short secret", mutate: func(c *WebConfig) { c.Secret = "abc" }, wantErr: true},
		{name: "port out of range", mutate: func(c *WebConfig) { c.Port = 70000 }, wantErr: true},
		{name: "no upload folder", mutate: func(c *WebConfig) { c.UploadFolder = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &WebConfig{
				Port:          8080,
				Secret:        "0123456789abcdef0123",
				UploadFolder:  "uploads",
				MaxUploadSize: MaxUploadSize,
				SessionMaxAge: 60,
			}
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadEnvKeepsExistingValues(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("FOLIO_PORT=9000\nFOLIO_LISTEN=127.0.0.1\n"), 0o600))

	t.Setenv("FOLIO_PORT", "7000")
	t.Setenv("FOLIO_LISTEN", "")
	os.Unsetenv("FOLIO_LISTEN")

	require.NoError(t, LoadEnv(envFile, filepath.Join(dir, "missing.env")))
	assert.Equal(t, "7000", os.Getenv("FOLIO_PORT"))
	assert.Equal(t, "127.0.0.1", os.Getenv("FOLIO_LISTEN"))
}

func TestGetDBPath(t *testing.T) {
	t.Setenv("FOLIO_DB_FOLDER", "/var/lib/folio")
	assert.Equal(t, "/var/lib/folio/folio.db", GetDBPath())
}
