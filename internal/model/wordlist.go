package model

import "time"

// WordList is a named, normalized list of candidate words
type WordList struct {
	Name      string    `json:"name"`
	Words     []string  `json:"words"`
	UpdatedAt time.Time `json:"updated_at"`
}
