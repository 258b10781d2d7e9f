package redis

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/crosswordgen/internal/model"
	"github.com/mcoot/crosswordgen/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveWordList(ctx context.Context, list *model.WordList) error {
	data, err := json.Marshal(list)
	if err != nil {
		return err
	}

	// Blob and index are written together so ListWordLists never sees a
	// name without its list
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, wordListKey(list.Name), data, s.cfg.WordListTTL)
	pipe.SAdd(ctx, wordListIndexKey(), list.Name)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetWordList(ctx context.Context, name string) (*model.WordList, error) {
	data, err := s.client.Get(ctx, wordListKey(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrWordListNotFound
		}
		return nil, err
	}

	var list model.WordList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (s *Storage) ListWordLists(ctx context.Context) ([]string, error) {
	names, err := s.client.SMembers(ctx, wordListIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	// Drop index entries whose blob has expired
	live := make([]string, 0, len(names))
	for _, name := range names {
		exists, err := s.client.Exists(ctx, wordListKey(name)).Result()
		if err != nil {
			return nil, err
		}
		if exists == 0 {
			s.client.SRem(ctx, wordListIndexKey(), name)
			continue
		}
		live = append(live, name)
	}
	slices.Sort(live)
	return live, nil
}

func (s *Storage) DeleteWordList(ctx context.Context, name string) error {
	pipe := s.client.TxPipeline()
	del := pipe.Del(ctx, wordListKey(name))
	pipe.SRem(ctx, wordListIndexKey(), name)
	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}
	if del.Val() == 0 {
		return model.ErrWordListNotFound
	}
	return nil
}
