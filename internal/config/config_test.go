package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FlexDesk-BookingService/internal/admission"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[auth]
jwt_secret = "from-file"
allow_anonymous_booking = true

[admission]
on_unparseable_request = "reject"
reject_double_booking = false

[redis]
enabled = true
addr = "redis:6379"
`)
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("DB_PASSWORD", "s3cret")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.True(t, cfg.Auth.AllowAnonymousBooking)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, "flexdesk:hold:", cfg.Redis.KeyPrefix)
	assert.Equal(t, 30, cfg.Slots.StepMinutes)

	policy, err := cfg.Admission.Policy()
	require.NoError(t, err)
	assert.Equal(t, admission.OnUnparseableReject, policy.OnUnparseable)
	assert.False(t, policy.RejectDoubleBooking)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestLoad_BadEnvPort(t *testing.T) {
	path := writeConfig(t, "[auth]\njwt_secret = \"x\"\n")
	t.Setenv("DB_PORT", "five")

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"no secret", func(c *Config) { c.Auth.JWTSecret = " " }},
		{"bad port", func(c *Config) { c.Server.HTTPPort = 70000 }},
		{"unknown policy", func(c *Config) { c.Admission.OnUnparseableRequest = "maybe" }},
		{"zero hold", func(c *Config) { c.Admission.HoldTTLSeconds = 0 }},
		{"odd step", func(c *Config) { c.Slots.StepMinutes = 7 }},
		{"redis without addr", func(c *Config) { c.Redis.Enabled = true; c.Redis.Addr = "" }},
		{"rabbit without url", func(c *Config) { c.RabbitMQ.Enabled = true; c.RabbitMQ.URL = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Auth.JWTSecret = "secret"
			require.NoError(t, cfg.Validate())

			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestDSN(t *testing.T) {
	cfg := Default()
	cfg.Database.Password = "pw"
	assert.Equal(t, "host=localhost port=5432 user=postgres password=pw dbname=flexdesk sslmode=disable", cfg.Database.DSN())
}
