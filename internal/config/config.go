package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/skauts-stats/internal/platform/logging"
)

const (
	FetcherBackendAPI      = "api"
	FetcherBackendPostgres = "postgres"
	FetcherBackendMemory   = "memory"
)

const (
	maxFanoutWorkers = 64
	maxRankingTopN   = 50
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                      string
	ServiceName                 string
	ServiceVersion              string
	HTTPAddr                    string
	ReadTimeout                 time.Duration
	WriteTimeout                time.Duration
	LogLevel                    logging.Level
	CORSAllowedOrigins          []string
	FetcherBackend              string
	SkautsAPIBaseURL            string
	SkautsAPIToken              string
	SkautsAPITimeout            time.Duration
	SkautsAPIMaxRetries         int
	SkautsAPICircuitEnabled     bool
	SkautsAPICircuitFailures    int
	SkautsAPICircuitOpenTimeout time.Duration
	SkautsAPICircuitHalfOpenMax int
	DBURL                       string
	DBDisablePreparedBinary     bool
	FanoutMaxWorkers            int
	RankingTopN                 int
	ClassifierKeywordsFile      string
	MetricsEnabled              bool
	PprofEnabled                bool
	PprofAddr                   string
	UptraceEnabled              bool
	UptraceDSN                  string
	PyroscopeEnabled            bool
	PyroscopeServerAddress      string
	PyroscopeAppName            string
	PyroscopeAuthToken          string
	PyroscopeBasicAuthUser      string
	PyroscopeBasicAuthPassword  string
	PyroscopeUploadRate         time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	backendDefault := FetcherBackendAPI
	if appEnv == EnvDev {
		backendDefault = FetcherBackendMemory
	}
	backend, err := parseFetcherBackend(getEnv("FETCHER_BACKEND", backendDefault))
	if err != nil {
		return Config{}, err
	}

	apiTimeout, err := time.ParseDuration(getEnv("SKAUTS_API_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SKAUTS_API_TIMEOUT: %w", err)
	}
	if apiTimeout <= 0 {
		return Config{}, fmt.Errorf("SKAUTS_API_TIMEOUT must be > 0")
	}
	apiMaxRetries, err := getEnvAsInt("SKAUTS_API_MAX_RETRIES", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse SKAUTS_API_MAX_RETRIES: %w", err)
	}
	if apiMaxRetries < 0 {
		return Config{}, fmt.Errorf("SKAUTS_API_MAX_RETRIES must be >= 0")
	}
	apiCircuitEnabled, err := strconv.ParseBool(getEnv("SKAUTS_API_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SKAUTS_API_CIRCUIT_ENABLED: %w", err)
	}
	apiCircuitFailures, err := getEnvAsInt("SKAUTS_API_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse SKAUTS_API_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if apiCircuitFailures < 1 {
		return Config{}, fmt.Errorf("SKAUTS_API_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	apiCircuitOpenTimeout, err := time.ParseDuration(getEnv("SKAUTS_API_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SKAUTS_API_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if apiCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("SKAUTS_API_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	apiCircuitHalfOpenMax, err := getEnvAsInt("SKAUTS_API_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse SKAUTS_API_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if apiCircuitHalfOpenMax < 1 {
		return Config{}, fmt.Errorf("SKAUTS_API_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}
	apiBaseURL := strings.TrimRight(strings.TrimSpace(getEnv("SKAUTS_API_BASE_URL", "")), "/")
	if backend == FetcherBackendAPI && apiBaseURL == "" {
		return Config{}, fmt.Errorf("SKAUTS_API_BASE_URL is required when FETCHER_BACKEND=%s", FetcherBackendAPI)
	}

	dbURL := strings.TrimSpace(getEnv("DB_URL", ""))
	if backend == FetcherBackendPostgres && dbURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required when FETCHER_BACKEND=%s", FetcherBackendPostgres)
	}
	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	fanoutMaxWorkers, err := getEnvAsInt("FANOUT_MAX_WORKERS", 8)
	if err != nil {
		return Config{}, fmt.Errorf("parse FANOUT_MAX_WORKERS: %w", err)
	}
	if fanoutMaxWorkers < 1 || fanoutMaxWorkers > maxFanoutWorkers {
		return Config{}, fmt.Errorf("FANOUT_MAX_WORKERS must be between 1 and %d", maxFanoutWorkers)
	}
	rankingTopN, err := getEnvAsInt("RANKING_TOP_N", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse RANKING_TOP_N: %w", err)
	}
	if rankingTopN < 1 || rankingTopN > maxRankingTopN {
		return Config{}, fmt.Errorf("RANKING_TOP_N must be between 1 and %d", maxRankingTopN)
	}

	metricsEnabled, err := strconv.ParseBool(getEnv("METRICS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse METRICS_ENABLED: %w", err)
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

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
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

	cfg := Config{
		AppEnv:                      appEnv,
		ServiceName:                 getEnv("APP_SERVICE_NAME", "skauts-stats-api"),
		ServiceVersion:              getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                    getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:                 readTimeout,
		WriteTimeout:                writeTimeout,
		LogLevel:                    parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		CORSAllowedOrigins:          splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		FetcherBackend:              backend,
		SkautsAPIBaseURL:            apiBaseURL,
		SkautsAPIToken:              strings.TrimSpace(getEnv("SKAUTS_API_TOKEN", "")),
		SkautsAPITimeout:            apiTimeout,
		SkautsAPIMaxRetries:         apiMaxRetries,
		SkautsAPICircuitEnabled:     apiCircuitEnabled,
		SkautsAPICircuitFailures:    apiCircuitFailures,
		SkautsAPICircuitOpenTimeout: apiCircuitOpenTimeout,
		SkautsAPICircuitHalfOpenMax: apiCircuitHalfOpenMax,
		DBURL:                       dbURL,
		DBDisablePreparedBinary:     dbDisablePreparedBinary,
		FanoutMaxWorkers:            fanoutMaxWorkers,
		RankingTopN:                 rankingTopN,
		ClassifierKeywordsFile:      strings.TrimSpace(getEnv("CLASSIFIER_KEYWORDS_FILE", "")),
		MetricsEnabled:              metricsEnabled,
		PprofEnabled:                pprofEnabled,
		PprofAddr:                   pprofAddr,
		UptraceEnabled:              uptraceEnabled,
		UptraceDSN:                  uptraceDSN,
		PyroscopeEnabled:            pyroscopeEnabled,
		PyroscopeServerAddress:      pyroscopeServerAddress,
		PyroscopeAuthToken:          strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:      strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword:  strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:         pyroscopeUploadRate,
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

func parseFetcherBackend(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case FetcherBackendAPI, FetcherBackendPostgres, FetcherBackendMemory:
		return value, nil
	default:
		return "", fmt.Errorf("invalid FETCHER_BACKEND %q: valid values are %s, %s, %s", v, FetcherBackendAPI, FetcherBackendPostgres, FetcherBackendMemory)
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

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
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
