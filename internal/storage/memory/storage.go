package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/mcoot/crosswordgen/internal/model"
	"github.com/mcoot/crosswordgen/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu        sync.RWMutex
	wordLists map[string]*model.WordList
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		wordLists: make(map[string]*model.WordList),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveWordList(ctx context.Context, list *model.WordList) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wordLists[list.Name] = cloneWordList(list)
	return nil
}

func (s *Storage) GetWordList(ctx context.Context, name string) (*model.WordList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list, ok := s.wordLists[name]
	if !ok {
		return nil, model.ErrWordListNotFound
	}
	return cloneWordList(list), nil
}

func (s *Storage) ListWordLists(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.wordLists))
	for name := range s.wordLists {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

func (s *Storage) DeleteWordList(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.wordLists[name]; !ok {
		return model.ErrWordListNotFound
	}
	delete(s.wordLists, name)
	return nil
}

// cloneWordList copies the word slice so callers cannot mutate stored state
func cloneWordList(list *model.WordList) *model.WordList {
	out := *list
	out.Words = slices.Clone(list.Words)
	return &out
}
