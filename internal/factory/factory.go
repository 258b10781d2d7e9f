package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/crosswordgen/internal/dependencies/clock"
	"github.com/mcoot/crosswordgen/internal/dependencies/random"
	"github.com/mcoot/crosswordgen/internal/services/generator"
	"github.com/mcoot/crosswordgen/internal/services/wordbank"
	"github.com/mcoot/crosswordgen/internal/storage"
	"github.com/mcoot/crosswordgen/internal/storage/memory"
	redisstorage "github.com/mcoot/crosswordgen/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// DefaultWordListName is the name a seed word list is stored under
const DefaultWordListName = "default"

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	WordBank  *wordbank.Service
	Generator *generator.Service
}

// Config holds configuration for the application factory
type Config struct {
	// WordListPath is a word file to store at startup (optional)
	WordListPath string
	// WordListName is the name the seed list is stored under.
	// If empty, defaults to DefaultWordListName
	WordListName string
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	app := newWithDependencies(store, clock.New(), random.New(), logger)

	if cfg.WordListPath != "" {
		name := cfg.WordListName
		if name == "" {
			name = DefaultWordListName
		}
		if _, err := app.WordBank.LoadFromFile(context.Background(), name, cfg.WordListPath); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	wordBank := wordbank.New(store, clk, logger)
	gen := generator.New(wordBank, rnd, clk, logger)

	return &App{
		Storage:   store,
		Clock:     clk,
		Random:    rnd,
		WordBank:  wordBank,
		Generator: gen,
	}
}
