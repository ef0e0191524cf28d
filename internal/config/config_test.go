package config

import (
	"testing"
	"time"

	"github.com/riskibarqy/boxscore/internal/platform/logging"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "false")
	t.Setenv("BOXSCORE_API_BASE_URL", "https://boxscore.example/api/")
}

func TestLoad_AppEnvValidation(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_RequiresBoxscoreBaseURL(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("BOXSCORE_API_BASE_URL", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error without BOXSCORE_API_BASE_URL")
	}
}

func TestLoad_RejectsMalformedBoxscoreBaseURL(t *testing.T) {
	for _, raw := range []string{"ftp://boxscore.example", "https://", "boxscore.example/api", "https://boxscore.example/api?key=1"} {
		t.Run(raw, func(t *testing.T) {
			setBaseEnv(t)
			t.Setenv("BOXSCORE_API_BASE_URL", raw)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for base url %q", raw)
			}
		})
	}
}

func TestLoad_PlayerImageSettings(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("PLAYER_IMAGE_BASE_URL", "https://cdn.example/")
	t.Setenv("PLAYER_FALLBACK_IMAGE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PlayerImageBaseURL != "https://cdn.example" {
		t.Fatalf("unexpected PlayerImageBaseURL: %q", cfg.PlayerImageBaseURL)
	}

	t.Setenv("PLAYER_IMAGE_BASE_URL", "cdn.example")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for relative PLAYER_IMAGE_BASE_URL")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "foo=bar, uptrace-dsn=\"https://token@api.uptrace.dev/1\"")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev/1" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("BOXSCORE_API_TIMEOUT", "")
	t.Setenv("LATEST_GAME_CONCURRENCY", "")
	t.Setenv("APP_LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.BoxscoreBaseURL != "https://boxscore.example/api" {
		t.Fatalf("unexpected BoxscoreBaseURL: %q", cfg.BoxscoreBaseURL)
	}
	if cfg.BoxscoreTimeout != 10*time.Second {
		t.Fatalf("unexpected BoxscoreTimeout: %s", cfg.BoxscoreTimeout)
	}
	if cfg.LatestGameConcurrency != 16 {
		t.Fatalf("unexpected LatestGameConcurrency: %d", cfg.LatestGameConcurrency)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected LogLevel: %s", cfg.LogLevel)
	}
	if cfg.PyroscopeAppName != cfg.ServiceName {
		t.Fatalf("expected pyroscope app name to default to service name")
	}
}

func TestLoad_SwaggerDefaultsByEnv(t *testing.T) {
	t.Run("prod disables swagger by default", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=false in prod by default")
		}
	})

	t.Run("dev enables swagger by default", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=true in dev by default")
		}
	})
}

func TestLoad_RejectsInvalidNumbers(t *testing.T) {
	cases := map[string]string{
		"BOXSCORE_API_TIMEOUT":               "0s",
		"BOXSCORE_API_MAX_RETRIES":           "-1",
		"BOXSCORE_API_CIRCUIT_FAILURE_COUNT": "0",
		"LATEST_GAME_CONCURRENCY":            "abc",
		"PYROSCOPE_UPLOAD_RATE":              "-5s",
		"SWAGGER_ENABLED":                    "sometimes",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			setBaseEnv(t)
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", key, value)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	if parseLogLevel(" Warning ") != logging.LevelWarn {
		t.Fatalf("expected warn level")
	}
	if parseLogLevel("verbose") != logging.LevelInfo {
		t.Fatalf("expected info fallback")
	}
}
