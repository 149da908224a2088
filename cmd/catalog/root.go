package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	llmcatalog "github.com/kingfs/go-llm-catalog"
	"github.com/kingfs/go-llm-catalog/internal/config"
	"github.com/kingfs/go-llm-catalog/store/filestore"
	"github.com/kingfs/go-llm-catalog/store/redisstore"
)

var (
	configFile   string
	cacheBackend string
	logLevel     string

	// catalog is set up by the root command before any subcommand runs.
	catalog *llmcatalog.Catalog
	closers []func() error
)

var rootCmd = &cobra.Command{
	Use:           "catalog",
	Short:         "Browse, search and compare LLM models",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setup()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&cacheBackend, "cache", "", "cache backend: none, memory, file or redis")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
}

func setup() error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if cacheBackend != "" {
		cfg.Cache.Backend = cacheBackend
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	store, err := newStore(cfg)
	if err != nil {
		return err
	}

	catalog = llmcatalog.New(newFetcher(cfg),
		llmcatalog.WithCache(llmcatalog.NewCache(store, llmcatalog.WithCacheLogger(logger))),
		llmcatalog.WithCacheKey(cfg.Cache.Key),
		llmcatalog.WithLogger(logger),
	)
	return nil
}

// closeAll releases the resources opened by setup. It runs whether or not the
// command succeeded.
func closeAll() error {
	var errs []error
	for _, c := range closers {
		errs = append(errs, c())
	}
	closers = nil
	return errors.Join(errs...)
}

func newLogger(level string) (*slog.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	handler := log.NewWithOptions(os.Stderr, log.Options{
		Level:  lvl,
		Prefix: "catalog",
	})
	return slog.New(handler), nil
}

func newFetcher(cfg config.Config) llmcatalog.Fetcher {
	primary := &llmcatalog.HTTPFetcher{
		URL:    cfg.Endpoint,
		Client: &http.Client{Timeout: cfg.Timeout},
	}
	if cfg.Snapshot == "" {
		return primary
	}
	return llmcatalog.FallbackFetcher{
		Primary:   primary,
		Secondary: llmcatalog.FileFetcher{Path: cfg.Snapshot},
	}
}

func newStore(cfg config.Config) (llmcatalog.Store, error) {
	switch cfg.Cache.Backend {
	case config.CacheNone:
		return llmcatalog.NopStore{}, nil
	case config.CacheMemory:
		return llmcatalog.NewMemoryStore(), nil
	case config.CacheRedis:
		rc := redisstore.DefaultConfig()
		rc.Address = cfg.Redis.Address
		rc.Password = cfg.Redis.Password
		rc.DB = cfg.Redis.DB
		s, err := redisstore.New(rc)
		if err != nil {
			return nil, err
		}
		closers = append(closers, s.Close)
		return s, nil
	default:
		return filestore.New(cfg.Cache.Dir)
	}
}
