package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_AppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
  env: production
database:
  driver: sqlite
  url: "file::memory:"
jwt:
  secret: s3cret
membership:
  grace_days: 5
`), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:9090", cfg.Addr())
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 5, cfg.Membership.GraceDays)
	assert.Equal(t, 3, cfg.Membership.CancelGuardDays)
	assert.Equal(t, 1, cfg.Membership.MaxFutureStartDays)
	assert.Equal(t, "@every 1h", cfg.Membership.SweepSchedule)
	assert.Equal(t, "gym-saas", cfg.JWT.Issuer)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/gym")
	t.Setenv("SERVER_PORT", "8181")
	t.Setenv("JWT_SECRET", "abc")
	t.Setenv("MEMBERSHIP_SWEEP_ENABLED", "false")

	cfg := FromEnv()

	assert.Equal(t, "postgres://localhost/gym", cfg.Database.DSN)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 8181, cfg.Server.Port)
	assert.Equal(t, "abc", cfg.JWT.Secret)
	assert.False(t, cfg.Membership.SweepEnabled)
	assert.True(t, cfg.Database.AutoMigrate)
}
