package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"UPLOAD_MAX_BYTES", "LOG_RETENTION_DAYS", "JWT_ACCESS_EXPIRY", "JWT_REFRESH_EXPIRY"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	require.Equal(t, 4*1024*1024, cfg.UploadMaxBytes)
	require.Equal(t, 30, cfg.LogRetentionDays)
	require.Equal(t, 24*time.Hour, cfg.JWTAccessExpiry)
	require.Equal(t, 168*time.Hour, cfg.JWTRefreshExpiry)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("UPLOAD_MAX_BYTES", "1048576")
	t.Setenv("LOG_RETENTION_DAYS", "7")
	t.Setenv("JWT_ACCESS_EXPIRY", "30m")

	cfg := Load()
	require.Equal(t, 1048576, cfg.UploadMaxBytes)
	require.Equal(t, 7, cfg.LogRetentionDays)
	require.Equal(t, 30*time.Minute, cfg.JWTAccessExpiry)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("UPLOAD_MAX_BYTES", "not-a-number")
	t.Setenv("LOG_RETENTION_DAYS", "-5")
	t.Setenv("JWT_ACCESS_EXPIRY", "soon")

	cfg := Load()
	require.Equal(t, 4*1024*1024, cfg.UploadMaxBytes)
	require.Equal(t, 30, cfg.LogRetentionDays)
	require.Equal(t, 24*time.Hour, cfg.JWTAccessExpiry)
}
