package repository

import (
	"flashcards/internal/domain"
)

// WordRepository persists the full word list
type WordRepository interface {
	// Load reads every stored pair in order, skipping malformed records
	Load() (domain.LoadResult, error)
	// Save replaces stored contents with words
	Save(words domain.WordList) error
}
