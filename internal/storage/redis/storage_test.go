package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/crosswordgen/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.WordListTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) TestSaveAndGetWordList() {
	list := &model.WordList{
		Name:      "animals",
		Words:     []string{"ZEBRA", "CAT", "DOG"},
		UpdatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}

	err := s.storage.SaveWordList(s.ctx, list)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetWordList(s.ctx, "animals")
	s.Require().NoError(err)
	s.Equal("animals", retrieved.Name)
	// Order is preserved; the engine breaks length ties by input order
	s.Equal([]string{"ZEBRA", "CAT", "DOG"}, retrieved.Words)
	s.True(list.UpdatedAt.Equal(retrieved.UpdatedAt))
}

func (s *StorageSuite) TestGetWordListNotFound() {
	_, err := s.storage.GetWordList(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrWordListNotFound)
}

func (s *StorageSuite) TestWordListTTLApplied() {
	_ = s.storage.SaveWordList(s.ctx, &model.WordList{Name: "l", Words: []string{"AB"}})

	ttl := s.mini.TTL(wordListKey("l"))
	s.Equal(time.Hour, ttl)
}

func (s *StorageSuite) TestExpiredWordListDisappears() {
	_ = s.storage.SaveWordList(s.ctx, &model.WordList{Name: "l", Words: []string{"AB"}})

	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.GetWordList(s.ctx, "l")
	s.ErrorIs(err, model.ErrWordListNotFound)

	names, err := s.storage.ListWordLists(s.ctx)
	s.Require().NoError(err)
	s.Empty(names)
}

func (s *StorageSuite) TestListWordLists() {
	_ = s.storage.SaveWordList(s.ctx, &model.WordList{Name: "zoo", Words: []string{"AB"}})
	_ = s.storage.SaveWordList(s.ctx, &model.WordList{Name: "alpha", Words: []string{"AB"}})

	names, err := s.storage.ListWordLists(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"alpha", "zoo"}, names)
}

func (s *StorageSuite) TestDeleteWordList() {
	_ = s.storage.SaveWordList(s.ctx, &model.WordList{Name: "l", Words: []string{"AB"}})

	err := s.storage.DeleteWordList(s.ctx, "l")
	s.Require().NoError(err)

	_, err = s.storage.GetWordList(s.ctx, "l")
	s.ErrorIs(err, model.ErrWordListNotFound)

	s.False(s.mini.Exists(wordListKey("l")))
	names, _ := s.storage.ListWordLists(s.ctx)
	s.Empty(names)
}

func (s *StorageSuite) TestDeleteWordListNotFound() {
	err := s.storage.DeleteWordList(s.ctx, "missing")
	s.ErrorIs(err, model.ErrWordListNotFound)
}
