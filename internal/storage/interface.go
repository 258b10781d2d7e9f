package storage

import (
	"context"

	"github.com/mcoot/crosswordgen/internal/model"
)

// Storage defines the interface for word list persistence.
// Generated puzzles are never stored.
type Storage interface {
	SaveWordList(ctx context.Context, list *model.WordList) error
	GetWordList(ctx context.Context, name string) (*model.WordList, error)
	ListWordLists(ctx context.Context) ([]string, error)
	DeleteWordList(ctx context.Context, name string) error
}
