package testutil

import (
	"flashcards/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestList builds a word list from source/translation pairs
func NewTestList(pairs ...string) domain.WordList {
	list := domain.WordList{}
	for i := 0; i+1 < len(pairs); i += 2 {
		list = append(list, domain.WordPair{Source: pairs[i], Translation: pairs[i+1]})
	}
	return list
}
