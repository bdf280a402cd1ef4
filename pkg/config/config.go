package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Storage     string // postgres | memory
	DatabaseURL string
	DBMaxConns  int

	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int

	// Recruiter login. A bcrypt hash wins over the plain password.
	HRPasswordHash string
	HRPassword     string

	OracleProvider     string // gemini | openrouter
	GeminiAPIKey       string
	GeminiModel        string
	OpenRouterAPIKey   string
	OpenRouterBaseURL  string
	OpenRouterModel    string
	OpenRouterAppTitle string
	OpenRouterReferer  string

	Extractor          string // affinda | local
	AffindaAPIKey      string
	AffindaWorkspaceID string
	AffindaBaseURL     string

	JobDescriptionsPath string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	MaxUploadMB int

	LogJSON  bool
	LogDebug bool
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		Storage:     strings.ToLower(getEnv("STORAGE", "postgres")),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBMaxConns:  getEnvInt("DB_MAX_CONNS", 10),

		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:     getEnv("JWT_ISSUER", "hrboard"),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 60),

		HRPasswordHash: os.Getenv("HR_PASSWORD_HASH"),
		HRPassword:     os.Getenv("HR_PASSWORD"),

		OracleProvider:     strings.ToLower(getEnv("ORACLE_PROVIDER", "gemini")),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GeminiModel:        os.Getenv("GEMINI_MODEL"),
		OpenRouterAPIKey:   os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterBaseURL:  getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		OpenRouterModel:    os.Getenv("OPENROUTER_MODEL"),
		OpenRouterAppTitle: getEnv("OPENROUTER_APP_TITLE", "hrboard"),
		OpenRouterReferer:  os.Getenv("OPENROUTER_REFERER"),

		Extractor:          strings.ToLower(getEnv("EXTRACTOR", "affinda")),
		AffindaAPIKey:      os.Getenv("AFFINDA_API_KEY"),
		AffindaWorkspaceID: os.Getenv("AFFINDA_WORKSPACE_ID"),
		AffindaBaseURL:     os.Getenv("AFFINDA_BASE_URL"),

		JobDescriptionsPath: os.Getenv("JOB_DESCRIPTIONS_PATH"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		CacheTTL:      time.Duration(getEnvInt("CACHE_TTL_SECONDS", 60)) * time.Second,

		MaxUploadMB: getEnvInt("MAX_UPLOAD_MB", 10),

		LogJSON:  getEnvBool("LOG_JSON", false),
		LogDebug: getEnvBool("LOG_DEBUG", false),
	}
	return cfg
}

// Validate reports settings the server cannot start with.
func (c Config) Validate() error {
	var errs []error
	switch c.Storage {
	case "postgres":
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required when STORAGE=postgres"))
		}
	case "memory":
	default:
		errs = append(errs, fmt.Errorf("STORAGE must be postgres or memory, got %q", c.Storage))
	}
	if c.OracleProvider != "gemini" && c.OracleProvider != "openrouter" {
		errs = append(errs, fmt.Errorf("ORACLE_PROVIDER must be gemini or openrouter, got %q", c.OracleProvider))
	}
	if c.Extractor != "affinda" && c.Extractor != "local" {
		errs = append(errs, fmt.Errorf("EXTRACTOR must be affinda or local, got %q", c.Extractor))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET must not be empty"))
	}
	if c.MaxUploadMB <= 0 {
		errs = append(errs, errors.New("MAX_UPLOAD_MB must be positive"))
	}
	return errors.Join(errs...)
}

// OracleModel returns the model id configured for the selected provider.
func (c Config) OracleModel() string {
	if c.OracleProvider == "openrouter" {
		return c.OpenRouterModel
	}
	return c.GeminiModel
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
