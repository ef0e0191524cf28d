package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/boxscore/internal/domain/player"
	"github.com/riskibarqy/boxscore/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                        string
	ServiceName                   string
	ServiceVersion                string
	HTTPAddr                      string
	CORSAllowedOrigins            []string
	ReadTimeout                   time.Duration
	WriteTimeout                  time.Duration
	SwaggerEnabled                bool
	PprofEnabled                  bool
	PprofAddr                     string
	BoxscoreBaseURL               string
	BoxscoreTimeout               time.Duration
	BoxscoreMaxRetries            int
	BoxscoreCircuitEnabled        bool
	BoxscoreCircuitFailureCount   int
	BoxscoreCircuitOpenTimeout    time.Duration
	BoxscoreCircuitHalfOpenMaxReq int
	LatestGameConcurrency         int
	PlayerImageBaseURL            string
	PlayerFallbackImage           string
	UptraceEnabled                bool
	UptraceDSN                    string
	PyroscopeEnabled              bool
	PyroscopeServerAddress        string
	PyroscopeAppName              string
	PyroscopeAuthToken            string
	PyroscopeBasicAuthUser        string
	PyroscopeBasicAuthPassword    string
	PyroscopeUploadRate           time.Duration
	LogLevel                      logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}
	swaggerEnabled, err := strconv.ParseBool(getEnv("SWAGGER_ENABLED", swaggerDefault))
	if err != nil {
		return Config{}, fmt.Errorf("parse SWAGGER_ENABLED: %w", err)
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	boxscoreBaseURL, err := validateHTTPBaseURL(getEnv("BOXSCORE_API_BASE_URL", ""))
	if err != nil {
		return Config{}, crerr.Wrap(err, "invalid BOXSCORE_API_BASE_URL")
	}
	boxscoreTimeout, err := time.ParseDuration(getEnv("BOXSCORE_API_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse BOXSCORE_API_TIMEOUT: %w", err)
	}
	if boxscoreTimeout <= 0 {
		return Config{}, fmt.Errorf("BOXSCORE_API_TIMEOUT must be > 0")
	}
	boxscoreMaxRetries, err := getEnvAsInt("BOXSCORE_API_MAX_RETRIES", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse BOXSCORE_API_MAX_RETRIES: %w", err)
	}
	if boxscoreMaxRetries < 0 {
		return Config{}, fmt.Errorf("BOXSCORE_API_MAX_RETRIES must be >= 0")
	}
	boxscoreCircuitEnabled, err := strconv.ParseBool(getEnv("BOXSCORE_API_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse BOXSCORE_API_CIRCUIT_ENABLED: %w", err)
	}
	boxscoreCircuitFailureCount, err := getEnvAsInt("BOXSCORE_API_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse BOXSCORE_API_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if boxscoreCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("BOXSCORE_API_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	boxscoreCircuitOpenTimeout, err := time.ParseDuration(getEnv("BOXSCORE_API_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse BOXSCORE_API_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if boxscoreCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("BOXSCORE_API_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	boxscoreCircuitHalfOpenMaxReq, err := getEnvAsInt("BOXSCORE_API_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse BOXSCORE_API_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if boxscoreCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("BOXSCORE_API_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	latestGameConcurrency, err := getEnvAsInt("LATEST_GAME_CONCURRENCY", 16)
	if err != nil {
		return Config{}, fmt.Errorf("parse LATEST_GAME_CONCURRENCY: %w", err)
	}
	if latestGameConcurrency <= 0 {
		return Config{}, fmt.Errorf("LATEST_GAME_CONCURRENCY must be > 0")
	}

	playerImageBaseURL := strings.TrimSpace(getEnv("PLAYER_IMAGE_BASE_URL", ""))
	if playerImageBaseURL != "" {
		if playerImageBaseURL, err = validateHTTPBaseURL(playerImageBaseURL); err != nil {
			return Config{}, crerr.Wrap(err, "invalid PLAYER_IMAGE_BASE_URL")
		}
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	cfg := Config{
		AppEnv:                        appEnv,
		ServiceName:                   getEnv("APP_SERVICE_NAME", "boxscore-api"),
		ServiceVersion:                getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                      getEnv("APP_HTTP_ADDR", ":8080"),
		CORSAllowedOrigins:            splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:                   readTimeout,
		WriteTimeout:                  writeTimeout,
		SwaggerEnabled:                swaggerEnabled,
		PprofEnabled:                  pprofEnabled,
		PprofAddr:                     pprofAddr,
		BoxscoreBaseURL:               boxscoreBaseURL,
		BoxscoreTimeout:               boxscoreTimeout,
		BoxscoreMaxRetries:            boxscoreMaxRetries,
		BoxscoreCircuitEnabled:        boxscoreCircuitEnabled,
		BoxscoreCircuitFailureCount:   boxscoreCircuitFailureCount,
		BoxscoreCircuitOpenTimeout:    boxscoreCircuitOpenTimeout,
		BoxscoreCircuitHalfOpenMaxReq: boxscoreCircuitHalfOpenMaxReq,
		LatestGameConcurrency:         latestGameConcurrency,
		PlayerImageBaseURL:            playerImageBaseURL,
		PlayerFallbackImage:           strings.TrimSpace(getEnv("PLAYER_FALLBACK_IMAGE", player.DefaultFallbackImage)),
		UptraceEnabled:                uptraceEnabled,
		UptraceDSN:                    uptraceDSN,
		PyroscopeEnabled:              pyroscopeEnabled,
		PyroscopeServerAddress:        pyroscopeServerAddress,
		PyroscopeAuthToken:            strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:        strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword:    strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:           pyroscopeUploadRate,
		LogLevel:                      parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	return strconv.Atoi(value)
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			out = append(out, item)
		}
	}

	return out
}

// parseUptraceDSNFromOTLPHeaders picks uptrace-dsn out of a comma separated
// OTLP header list.
func parseUptraceDSNFromOTLPHeaders(raw string) string {
	for _, item := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(parts[1]), "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func validateHTTPBaseURL(raw string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return "", crerr.New("value is empty")
	}

	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", crerr.Wrapf(err, "parse %q", candidate)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", crerr.Newf("%q uses unsupported scheme=%q; expected http or https", candidate, parsed.Scheme)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return "", crerr.Newf("%q has empty host", candidate)
	}
	if parsed.RawQuery != "" || parsed.Fragment != "" {
		return "", crerr.Newf("%q must not carry a query or fragment", candidate)
	}

	return strings.TrimRight(candidate, "/"), nil
}
