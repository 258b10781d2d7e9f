package redis

import "fmt"

// Key prefix for all crossword generator data
const keyPrefix = "xword"

// wordListKey returns the Redis key for a WordList
func wordListKey(name string) string {
	return fmt.Sprintf("%s:wordlist:%s", keyPrefix, name)
}

// wordListIndexKey returns the Redis key for the SET of word list names
func wordListIndexKey() string {
	return fmt.Sprintf("%s:idx:wordlists", keyPrefix)
}
