package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Env:  "development",
		Port: 8080,
		DB:   DBConfig{DSN: "postgres://localhost/talentflow", MaxOpenConns: 20},
		Limiter: RateLimiterConfig{
			RPS:   10,
			Burst: 20,
		},
		CORS:   CORSConfig{TrustedOrigins: []string{"http://localhost:5173"}},
		JWT:    JWTConfig{Secret: "0123456789abcdef0123456789abcdef", AccessTokenTTL: 24 * time.Hour},
		Gemini: GeminiConfig{Model: "gemini-flash-latest", QuestionRetries: 3, RetryBaseDelay: 30 * time.Second},
		Upload: UploadConfig{MaxBytes: 10 << 20},
	}
}

func TestValidateOK(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad env", func(c *Config) { c.Env = "qa" }},
		{"bad port", func(c *Config) { c.Port = 0 }},
		{"short jwt secret", func(c *Config) { c.JWT.Secret = "short" }},
		{"no origins", func(c *Config) { c.CORS.TrustedOrigins = nil }},
		{"zero retries", func(c *Config) { c.Gemini.QuestionRetries = 0 }},
		{"zero upload cap", func(c *Config) { c.Upload.MaxBytes = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestGetCORSOrigins(t *testing.T) {
	cfg := validConfig()
	cfg.CORS.TrustedOrigins = []string{" http://a.example ", "", "http://b.example"}
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.GetCORSOrigins())
}
