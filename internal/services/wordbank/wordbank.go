// Package wordbank normalizes candidate word lists and manages named lists
// in storage.
package wordbank

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/mcoot/crosswordgen/internal/dependencies/clock"
	"github.com/mcoot/crosswordgen/internal/model"
	"github.com/mcoot/crosswordgen/internal/storage"
)

// MinWordLength is the shortest word the generator will place
const MinWordLength = 2

var (
	wordPattern     = regexp.MustCompile(`^[A-Za-z]{2,}$`)
	listNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)
)

// Normalize uppercases, filters and de-duplicates raw words.
// Only purely alphabetic words of at least MinWordLength survive; first
// occurrence order is preserved.
func Normalize(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	result := make([]string, 0, len(words))
	for _, raw := range words {
		word := strings.TrimSpace(raw)
		if !wordPattern.MatchString(word) {
			continue
		}
		word = strings.ToUpper(word)
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		result = append(result, word)
	}
	return result
}

// ReadWords reads one word per line. Blank lines and lines starting with
// '#' are skipped; no other filtering is applied.
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// ValidateListName checks that a word list name is usable as a storage key
func ValidateListName(name string) error {
	if !listNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", model.ErrInvalidWordListName, name)
	}
	return nil
}

// Service manages named word lists
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new word bank Service
func New(storage storage.Storage, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clk,
		logger:  logger,
	}
}

// Save normalizes and stores a word list under the given name
func (s *Service) Save(ctx context.Context, name string, words []string) (*model.WordList, error) {
	if err := ValidateListName(name); err != nil {
		return nil, err
	}

	normalized := Normalize(words)
	if len(normalized) == 0 {
		return nil, fmt.Errorf("%w: word list %q has no usable words", model.ErrInvalidInput, name)
	}

	list := &model.WordList{
		Name:      name,
		Words:     normalized,
		UpdatedAt: s.clock.Now(),
	}
	if err := s.storage.SaveWordList(ctx, list); err != nil {
		s.logger.Error("failed to save word list",
			slog.String("name", name),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.Info("word list saved",
		slog.String("name", name),
		slog.Int("submitted", len(words)),
		slog.Int("kept", len(normalized)),
	)
	return list, nil
}

// Get retrieves a word list by name
func (s *Service) Get(ctx context.Context, name string) (*model.WordList, error) {
	if err := ValidateListName(name); err != nil {
		return nil, err
	}
	return s.storage.GetWordList(ctx, name)
}

// List returns the names of all stored word lists
func (s *Service) List(ctx context.Context) ([]string, error) {
	return s.storage.ListWordLists(ctx)
}

// Delete removes a word list
func (s *Service) Delete(ctx context.Context, name string) error {
	if err := ValidateListName(name); err != nil {
		return err
	}
	if err := s.storage.DeleteWordList(ctx, name); err != nil {
		return err
	}
	s.logger.Info("word list deleted", slog.String("name", name))
	return nil
}

// LoadFromFile loads a word list from a file (one word per line)
func (s *Service) LoadFromFile(ctx context.Context, name, path string) (*model.WordList, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return s.LoadFromReader(ctx, name, file)
}

// LoadFromReader loads a word list from r (one word per line)
func (s *Service) LoadFromReader(ctx context.Context, name string, r io.Reader) (*model.WordList, error) {
	words, err := ReadWords(r)
	if err != nil {
		return nil, fmt.Errorf("reading word list %q: %w", name, err)
	}
	return s.Save(ctx, name, words)
}

// ServiceInterface for dependency injection
type ServiceInterface interface {
	Save(ctx context.Context, name string, words []string) (*model.WordList, error)
	Get(ctx context.Context, name string) (*model.WordList, error)
	List(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, name string) error
	LoadFromFile(ctx context.Context, name, path string) (*model.WordList, error)
	LoadFromReader(ctx context.Context, name string, r io.Reader) (*model.WordList, error)
}

var _ ServiceInterface = (*Service)(nil)
