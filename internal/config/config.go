package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/actuallystonmai/health-lens-service/internal/model"
	"github.com/actuallystonmai/health-lens-service/internal/nutrition"
	"github.com/joho/godotenv"
)

type Config struct {
	Port           int
	RequestTimeout time.Duration

	ModelPath      string
	DatasetPath    string
	TrainOnMissing bool
	FallbackPolicy model.FallbackPolicy
	Forest         model.Params
	TestSize       float64

	Nutrition   nutrition.Policy
	LexiconPath string

	// Empty disables the response cache.
	RedisURL string
	CacheTTL time.Duration

	DatabaseURL string
	DBPoolSize  int

	LogLevel  string
	LogFormat string
}

// Load configuration from env. A .env file in the working directory is read
// first; variables already set in the environment win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	fallback, err := model.ParseFallbackPolicy(getEnv("FALLBACK_POLICY", string(model.FallbackDefault)))
	if err != nil {
		return nil, fmt.Errorf("FALLBACK_POLICY: %w", err)
	}

	policy, err := nutrition.PolicyByName(getEnv("NUTRITION_POLICY", nutrition.ProportionsPolicy.Name))
	if err != nil {
		return nil, fmt.Errorf("NUTRITION_POLICY: %w", err)
	}
	policy.Small = getEnvFloat("PORTION_SMALL", policy.Small)
	policy.Medium = getEnvFloat("PORTION_MEDIUM", policy.Medium)
	policy.Large = getEnvFloat("PORTION_LARGE", policy.Large)
	if policy.ServingGrams > 0 {
		policy.ServingGrams = getEnvFloat("SERVING_GRAMS", policy.ServingGrams)
	}

	forest := model.DefaultParams()
	forest.Trees = getEnvInt("FOREST_TREES", forest.Trees)
	forest.MaxDepth = getEnvInt("FOREST_MAX_DEPTH", forest.MaxDepth)
	forest.MinSamplesSplit = getEnvInt("FOREST_MIN_SAMPLES_SPLIT", forest.MinSamplesSplit)
	forest.MinSamplesLeaf = getEnvInt("FOREST_MIN_SAMPLES_LEAF", forest.MinSamplesLeaf)
	forest.MaxFeatures = getEnvFloat("FOREST_MAX_FEATURES", forest.MaxFeatures)
	forest.Seed = int64(getEnvInt("FOREST_SEED", int(forest.Seed)))
	forest.Workers = getEnvInt("FOREST_WORKERS", 0)

	cfg := &Config{
		Port:           getEnvInt("PORT", 5000),
		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
		ModelPath:      getEnv("MODEL_PATH", "health_risk_model.json"),
		DatasetPath:    getEnv("DATASET_PATH", ""),
		TrainOnMissing: getEnvBool("TRAIN_ON_MISSING", false),
		FallbackPolicy: fallback,
		Forest:         forest,
		TestSize:       getEnvFloat("FOREST_TEST_SIZE", 0.2),
		Nutrition:      policy,
		LexiconPath:    getEnv("LEXICON_PATH", ""),
		RedisURL:       getEnv("REDIS_URL", ""),
		CacheTTL:       getEnvDuration("CACHE_TTL", 10*time.Minute),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		DBPoolSize:     getEnvInt("DB_POOL_SIZE", 10),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.ModelPath == "" {
		return fmt.Errorf("MODEL_PATH must not be empty")
	}
	if err := c.Nutrition.Validate(); err != nil {
		return err
	}
	if err := c.Forest.Validate(); err != nil {
		return fmt.Errorf("forest params: %w", err)
	}
	if c.TestSize < 0 || c.TestSize >= 1 {
		return fmt.Errorf("FOREST_TEST_SIZE must be in [0,1), got %g", c.TestSize)
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return fallback
}
