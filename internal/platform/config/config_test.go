// Copyright (c) 2026 Telugucine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/telugucine/internal/platform/config"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/telugucine")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("JWT_PUBLIC_KEY_PATH", "/etc/telugucine/jwt.pub")
}

/*
TestLoad_Defaults checks the values used when only required variables are set.
*/
func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, 50, cfg.Credit.ResolveSampleSize)
	assert.Equal(t, 1000, cfg.Credit.FilmographyLimit)
	assert.Equal(t, time.Hour, cfg.Credit.ResolveCacheTTL)
	assert.Equal(t, "first", cfg.Credit.TieBreak)
	assert.Equal(t, []string{"director", "music_director", "writer", "hero", "heroine", "producer"}, cfg.Credit.ResolveFieldOrder)
	assert.InDelta(t, 0.92, cfg.Credit.AuditSimilarity, 1e-6)
}

/*
TestLoad_Overrides checks that CREDIT_* variables reach the nested struct.
*/
func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("CREDIT_TIE_BREAK", "longest")
	t.Setenv("CREDIT_RESOLVE_SAMPLE_SIZE", "200")
	t.Setenv("CREDIT_RESOLVE_CACHE_TTL", "15m")
	t.Setenv("CREDIT_RESOLVE_FIELD_ORDER", "hero,director")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "longest", cfg.Credit.TieBreak)
	assert.Equal(t, 200, cfg.Credit.ResolveSampleSize)
	assert.Equal(t, 15*time.Minute, cfg.Credit.ResolveCacheTTL)
	assert.Equal(t, []string{"hero", "director"}, cfg.Credit.ResolveFieldOrder)
}

/*
TestLoad_Invalid covers missing and out-of-range settings.
*/
func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"missing_database", "DATABASE_URL", ""},
		{"bad_tie_break", "CREDIT_TIE_BREAK", "shortest"},
		{"zero_sample", "CREDIT_RESOLVE_SAMPLE_SIZE", "0"},
		{"similarity_above_one", "CREDIT_AUDIT_SIMILARITY", "1.5"},
		{"similarity_nan", "CREDIT_AUDIT_SIMILARITY", "NaN"},
		{"not_a_number", "CREDIT_AUDIT_BATCH_SIZE", "many"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.key, tt.value)
			if tt.value == "" {
				require.NoError(t, os.Unsetenv(tt.key))
			}

			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

/*
TestLoadTool checks that the offline tool needs neither Redis nor a JWT key.
*/
func TestLoadTool(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/telugucine")
	t.Setenv("REDIS_URL", "")
	t.Setenv("JWT_PUBLIC_KEY_PATH", "")
	t.Setenv("CREDIT_AUDIT_SIMILARITY", "0.85")

	cfg, err := config.LoadTool()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost:5432/telugucine", cfg.DatabaseURL)
	assert.InDelta(t, 0.85, cfg.Credit.AuditSimilarity, 1e-6)
}

/*
TestConfig_AllowsOrigin checks suffix matching of CORS origins.
*/
func TestConfig_AllowsOrigin(t *testing.T) {
	cfg := &config.Config{AllowedOrigins: []string{"telugucine.app", " localhost:3000 ", ""}}

	assert.True(t, cfg.AllowsOrigin("https://www.telugucine.app"))
	assert.True(t, cfg.AllowsOrigin("http://localhost:3000"))
	assert.False(t, cfg.AllowsOrigin("https://telugucine.app.evil.example"))
}
