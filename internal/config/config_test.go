package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearSiteEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LISTEN_ADDR", "BASE_URL", "TLS_CERT_FILE", "TLS_KEY_FILE",
		"LOG_LEVEL", "ENV", "CONTENT_PATH", "WATCH_CONTENT",
		"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "CORS_ALLOWED_ORIGINS",
		"METRICS_ENABLED", "HSTS_ENABLED",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearSiteEnv(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.ContentPath)
	assert.True(t, cfg.WatchContent)
	assert.True(t, cfg.MetricsEnabled)
	assert.False(t, cfg.HSTS)
	assert.InDelta(t, 50.0, cfg.RateLimitRPS, 0.001)
	assert.Equal(t, 100, cfg.RateLimitBurst)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.NotEmpty(t, cfg.Warnings, "localhost BASE_URL should be flagged")
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	clearSiteEnv(t)
	t.Setenv("LISTEN_ADDR", ":9000")
	t.Setenv("BASE_URL", "https://lantern.news/")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CONTENT_PATH", "/etc/lantern/site.yaml")
	t.Setenv("WATCH_CONTENT", "off")
	t.Setenv("RATE_LIMIT_RPS", "5")
	t.Setenv("RATE_LIMIT_BURST", "10")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, "https://lantern.news", cfg.BaseURL, "trailing slash is trimmed")
	assert.Equal(t, "/etc/lantern/site.yaml", cfg.ContentPath)
	assert.False(t, cfg.WatchContent)
	assert.InDelta(t, 5.0, cfg.RateLimitRPS, 0.001)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.MetricsEnabled)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoadFromEnv_TLSPairRequired(t *testing.T) {
	clearSiteEnv(t)
	t.Setenv("TLS_CERT_FILE", "/etc/tls/cert.pem")

	_, err := LoadFromEnv()
	require.Error(t, err)
}

func TestLoadFromEnv_ProductionRequiresBaseURL(t *testing.T) {
	clearSiteEnv(t)
	t.Setenv("ENV", "production")

	_, err := LoadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BASE_URL")
}

func TestLoadFromEnv_ProductionRequiresHTTPS(t *testing.T) {
	clearSiteEnv(t)
	t.Setenv("ENV", "production")
	t.Setenv("BASE_URL", "http://lantern.news")

	_, err := LoadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "https")
}

func TestLoadFromEnv_ProductionOK(t *testing.T) {
	clearSiteEnv(t)
	t.Setenv("ENV", "production")
	t.Setenv("BASE_URL", "https://lantern.news")
	t.Setenv("CONTENT_PATH", "/etc/lantern/site.yaml")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	require.Len(t, cfg.Warnings, 2)
	assert.Contains(t, cfg.Warnings[0], "CORS wildcard")
	assert.Contains(t, cfg.Warnings[1], "content watching")
}

func TestSlogLevel_Mapping(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}
	for _, tt := range tests {
		cfg := Config{LogLevel: tt.in}
		assert.Equal(t, tt.want, cfg.SlogLevel(), "level %q", tt.in)
	}
}

func TestLoadDotEnv_FileNotFound(t *testing.T) {
	err := LoadDotEnv("/nonexistent/.env")
	if err != nil {
		t.Errorf("expected no error for missing .env, got: %v", err)
	}
}

func TestLoadDotEnv_ParsesKeyValue(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")

	err := os.WriteFile(envFile, []byte("TEST_KEY=test_value\n"), 0644)
	if err != nil {
		t.Fatalf("write .env: %v", err)
	}

	if err := LoadDotEnv(envFile); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}

	if val := os.Getenv("TEST_KEY"); val != "test_value" {
		t.Errorf("TEST_KEY = %q, want %q", val, "test_value")
	}
	_ = os.Unsetenv("TEST_KEY")
}

func TestLoadDotEnv_SkipsCommentsAndStripsQuotes(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")

	err := os.WriteFile(envFile, []byte("# comment\nTEST_COMMENT_KEY=\"quoted value\"\n"), 0644)
	if err != nil {
		t.Fatalf("write .env: %v", err)
	}

	if err := LoadDotEnv(envFile); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}

	if val := os.Getenv("TEST_COMMENT_KEY"); val != "quoted value" {
		t.Errorf("TEST_COMMENT_KEY = %q, want %q", val, "quoted value")
	}
	_ = os.Unsetenv("TEST_COMMENT_KEY")
}

func TestLoadDotEnv_EnvVarPrecedence(t *testing.T) {
	t.Setenv("TEST_PRECEDENCE_KEY", "from_env")

	envFile := filepath.Join(t.TempDir(), ".env")

	err := os.WriteFile(envFile, []byte("TEST_PRECEDENCE_KEY=from_file\n"), 0644)
	if err != nil {
		t.Fatalf("write .env: %v", err)
	}

	if err := LoadDotEnv(envFile); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}

	if val := os.Getenv("TEST_PRECEDENCE_KEY"); val != "from_env" {
		t.Errorf("TEST_PRECEDENCE_KEY = %q, want %q (env precedence)", val, "from_env")
	}
}
