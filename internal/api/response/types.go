package response

import (
	"time"

	"github.com/mcoot/crosswordgen/internal/model"
	"github.com/mcoot/crosswordgen/internal/services/generator"
)

// Health is the response for the health endpoint
type Health struct {
	Status string `json:"status"`
}

// WordList represents a stored word list
type WordList struct {
	Name      string    `json:"name"`
	Words     []string  `json:"words"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WordListFromModel converts a model.WordList
func WordListFromModel(l *model.WordList) WordList {
	return WordList{
		Name:      l.Name,
		Words:     l.Words,
		UpdatedAt: l.UpdatedAt,
	}
}

// WordListNames is the response for listing word lists
type WordListNames struct {
	Names []string `json:"names"`
}

// Puzzle is a generated crossword. It shares its JSON shape with
// generator.Puzzle so clients can decode either.
type Puzzle = generator.Puzzle

// Clue locates an answer on a puzzle board
type Clue = generator.Clue
