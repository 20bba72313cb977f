package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	Env             string

	ResumeStoreType string
	LocalStoreDir   string
	AWSRegion       string
	S3Bucket        string
	S3Prefix        string

	LLMProvider          string
	GeminiAPIKey         string
	OpenAIAPIKey         string
	OpenAIBaseURL        string
	LLMModel             string
	EmbeddingProvider    string
	EmbeddingModel       string
	LLMMaxRetries        int
	LLMInitialDelay      time.Duration
	LLMTimeout           time.Duration
	LLMRequestsPerSecond float64

	SuggestionMode        string
	SuggestionConcurrency int
	RateLimitRPS          float64
	RateLimitBurst        int
	MaxUploadBytes        int64
}

// Load reads configuration from environment variables with sensible defaults.
// Values already in the environment win over .env files.
func Load() Config {
	loadEnvFiles(".env", "cmd/.env")

	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		Env:             normalizeEnv(getEnv("ENV", "dev")),

		ResumeStoreType: normalizeStoreType(getEnv("RESUME_STORE", "local")),
		LocalStoreDir:   getEnv("LOCAL_STORE_DIR", "./data"),
		AWSRegion:       getEnv("AWS_REGION", ""),
		S3Bucket:        getEnv("S3_BUCKET", ""),
		S3Prefix:        getEnv("S3_PREFIX", ""),

		LLMProvider:          normalizeProvider(getEnv("LLM_PROVIDER", "gemini")),
		GeminiAPIKey:         firstEnv("GEMINI_API_KEY", "GOOGLE_API_KEY"),
		OpenAIAPIKey:         getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:        getEnv("OPENAI_BASE_URL", ""),
		LLMModel:             getEnv("LLM_MODEL", ""),
		EmbeddingModel:       getEnv("EMBEDDING_MODEL", ""),
		LLMMaxRetries:        getInt("LLM_MAX_RETRIES", 3),
		LLMInitialDelay:      getDuration("LLM_INITIAL_DELAY", time.Second),
		LLMTimeout:           getDuration("LLM_TIMEOUT", 60*time.Second),
		LLMRequestsPerSecond: getFloat("LLM_REQUESTS_PER_SECOND", 2),

		SuggestionMode:        strings.ToUpper(strings.TrimSpace(getEnv("SUGGESTION_MODE", ""))),
		SuggestionConcurrency: getInt("SUGGESTION_CONCURRENCY", 4),
		RateLimitRPS:          getFloat("RATE_LIMIT_RPS", 1),
		RateLimitBurst:        getInt("RATE_LIMIT_BURST", 5),
		MaxUploadBytes:        int64(getInt("MAX_UPLOAD_BYTES", 10<<20)),
	}
	cfg.EmbeddingProvider = normalizeEmbeddingProvider(getEnv("EMBEDDING_PROVIDER", ""), cfg)
	return cfg
}

// AIEnabled reports whether the configured LLM provider has credentials.
func (c Config) AIEnabled() bool {
	return c.apiKeyFor(c.LLMProvider) != ""
}

func (c Config) apiKeyFor(provider string) string {
	switch provider {
	case "openai":
		return c.OpenAIAPIKey
	case "gemini":
		return c.GeminiAPIKey
	default:
		return ""
	}
}

func loadEnvFiles(paths ...string) {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			log.Printf("config: skipping %s: %v", path, err)
		}
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if val := strings.TrimSpace(os.Getenv(k)); val != "" {
			return val
		}
	}
	return ""
}

func getInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("config: invalid %s=%q, using %d", key, raw, def)
		return def
	}
	return v
}

func getFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("config: invalid %s=%q, using %g", key, raw, def)
		return def
	}
	return v
}

func getDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("config: invalid %s=%q, using %s", key, raw, def)
		return def
	}
	return v
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}

func normalizeProvider(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "openai":
		return "openai"
	default:
		return "gemini"
	}
}

// normalizeEmbeddingProvider defaults to the LLM provider when it has a key
// and to the local hashing embedder otherwise.
func normalizeEmbeddingProvider(raw string, cfg Config) string {
	switch p := strings.ToLower(strings.TrimSpace(raw)); p {
	case "gemini", "openai", "local":
		return p
	}
	if cfg.AIEnabled() {
		return cfg.LLMProvider
	}
	return "local"
}
