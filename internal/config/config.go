// Package config loads settings for the catalog command.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	llmcatalog "github.com/kingfs/go-llm-catalog"
)

// Cache backends.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheFile   = "file"
	CacheRedis  = "redis"
)

// Config holds configuration for the catalog command.
type Config struct {
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout"`
	// Snapshot is a local payload used when the endpoint is unreachable.
	Snapshot string      `yaml:"snapshot"`
	Cache    CacheConfig `yaml:"cache"`
	Redis    RedisConfig `yaml:"redis"`
	LogLevel string      `yaml:"log_level"`
}

// CacheConfig holds cache settings.
type CacheConfig struct {
	Backend string `yaml:"backend"`
	Key     string `yaml:"key"`
	Dir     string `yaml:"dir"`
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Endpoint: llmcatalog.DefaultEndpoint,
		Timeout:  30 * time.Second,
		Cache: CacheConfig{
			Backend: CacheFile,
			Key:     llmcatalog.DefaultCacheKey,
		},
		Redis: RedisConfig{
			Address: "localhost:6379",
		},
		LogLevel: "info",
	}
}

// Load builds the configuration from defaults, the YAML file at path (if
// path is non-empty) and LLMCATALOG_* environment variables, in that order.
// A .env file in the working directory is loaded first when present.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Endpoint = getEnv("LLMCATALOG_ENDPOINT", cfg.Endpoint)
	cfg.Timeout = getEnvDuration("LLMCATALOG_TIMEOUT", cfg.Timeout)
	cfg.Snapshot = getEnv("LLMCATALOG_SNAPSHOT", cfg.Snapshot)
	cfg.Cache.Backend = getEnv("LLMCATALOG_CACHE", cfg.Cache.Backend)
	cfg.Cache.Key = getEnv("LLMCATALOG_CACHE_KEY", cfg.Cache.Key)
	cfg.Cache.Dir = getEnv("LLMCATALOG_CACHE_DIR", cfg.Cache.Dir)
	cfg.Redis.Address = getEnv("LLMCATALOG_REDIS_ADDR", cfg.Redis.Address)
	cfg.Redis.Password = getEnv("LLMCATALOG_REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = getEnvInt("LLMCATALOG_REDIS_DB", cfg.Redis.DB)
	cfg.LogLevel = getEnv("LLMCATALOG_LOG_LEVEL", cfg.LogLevel)
}

// Validate checks the configuration for values the command cannot use.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Endpoint) == "" {
		errs = append(errs, errors.New("endpoint must not be empty"))
	}
	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %s", c.Timeout))
	}
	switch c.Cache.Backend {
	case CacheNone, CacheMemory, CacheFile, CacheRedis:
	default:
		errs = append(errs, fmt.Errorf("unknown cache backend %q", c.Cache.Backend))
	}
	if c.Cache.Key == "" {
		errs = append(errs, errors.New("cache key must not be empty"))
	}
	return errors.Join(errs...)
}

func getEnv(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultValue
	}
	return d
}
