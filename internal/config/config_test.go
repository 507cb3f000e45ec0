package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.BindAddr)
	assert.Equal(t, "rentnest", cfg.MongoDB)
	assert.Equal(t, 24, cfg.JWTTTLHours)
	assert.Equal(t, cfg.S3BaseEndpoint, cfg.S3PublicBase, "public base falls back to the endpoint")
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("BIND_ADDR", ":9999")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("JWT_TTL_HOURS", "2")
	t.Setenv("S3_PUBLIC_BASE", "https://cdn.example.com")

	cfg := Load()

	assert.Equal(t, ":9999", cfg.BindAddr)
	assert.Equal(t, "cache:6379", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.JWTTTLHours)
	assert.Equal(t, "https://cdn.example.com", cfg.S3PublicBase)
}

func TestLoadJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_TTL_HOURS", "not-a-number")

	jwtCfg := LoadJWT()

	assert.Equal(t, []byte("test-secret"), jwtCfg.Secret)
	assert.Equal(t, 24, jwtCfg.TTLHours, "bad TTL keeps the default")
}
