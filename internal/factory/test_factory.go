package factory

import (
	"context"
	"time"

	"github.com/mcoot/crosswordgen/internal/dependencies/mocks"
	"github.com/mcoot/crosswordgen/internal/storage/memory"
	"github.com/mcoot/crosswordgen/internal/testutil"
)

// TestWordListName is the list stored by LoadTestWordList
const TestWordListName = "test"

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestWordList stores a small themed word list under TestWordListName
func (t *TestApp) LoadTestWordList(ctx context.Context) error {
	words := []string{
		"crossword", "puzzle", "letter", "grid", "border", "number",
		"clue", "across", "down", "cursor", "random", "anchor",
		"contoh", "dummy", "lorem",
	}
	_, err := t.WordBank.Save(ctx, TestWordListName, words)
	return err
}
