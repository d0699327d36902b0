package service

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"flashcards/internal/domain"
	"flashcards/internal/repository"

	"go.uber.org/zap"
)

// ErrNotLoaded is returned by operations called before Load
var ErrNotLoaded = errors.New("word store is not loaded")

// WordStore holds the authoritative word list and keeps storage in sync with it
type WordStore struct {
	repo   repository.WordRepository
	logger *zap.Logger

	mu     sync.RWMutex
	words  domain.WordList
	loaded bool
}

// NewWordStore creates a store on top of repo. Call Load before anything else.
func NewWordStore(repo repository.WordRepository, logger *zap.Logger) *WordStore {
	return &WordStore{
		repo:   repo,
		logger: logger,
	}
}

// Load reads the list from storage. Empty storage is seeded with the default
// pairs which are saved right away. Storage that could not be read, or that
// only held malformed records, is left untouched.
func (s *WordStore) Load() (domain.WordList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loaded = true
	s.words = domain.WordList{}

	result, err := s.repo.Load()
	if err != nil {
		s.logger.Error("Failed to load words", zap.Error(err))
		return s.words.Clone(), fmt.Errorf("failed to load words: %w", err)
	}

	if result.Skipped > 0 {
		s.logger.Warn("Skipped malformed records",
			zap.Int("skipped", result.Skipped),
			zap.Int("loaded", len(result.Words)),
		)
	}

	s.words = result.Words.Clone()

	if len(s.words) > 0 {
		s.logger.Info("Words loaded", zap.Int("count", len(s.words)))
		return s.words.Clone(), nil
	}

	if result.Skipped > 0 {
		// Nothing parsed, but the data is still there; don't overwrite it
		s.logger.Warn("Storage holds only malformed records, not seeding")
		return s.words.Clone(), nil
	}

	s.words = domain.SeedPairs()
	s.logger.Info("Storage is empty, seeding default words", zap.Int("count", len(s.words)))

	if err := s.save(); err != nil {
		return s.words.Clone(), err
	}
	return s.words.Clone(), nil
}

// Save writes the full current list to storage
func (s *WordStore) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return ErrNotLoaded
	}
	return s.save()
}

// AddWord appends a pair and persists the list. The pair stays in memory even
// if persisting fails.
func (s *WordStore) AddWord(source, translation string) (domain.WordList, error) {
	return s.AddWords(domain.WordPair{Source: source, Translation: translation})
}

// AddWords appends pairs in order and persists the list once
func (s *WordStore) AddWords(pairs ...domain.WordPair) (domain.WordList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return nil, ErrNotLoaded
	}

	for _, p := range pairs {
		s.words = append(s.words, domain.WordPair{
			Source:      strings.TrimSpace(p.Source),
			Translation: strings.TrimSpace(p.Translation),
		})
	}

	s.logger.Info("Words added",
		zap.Int("added", len(pairs)),
		zap.Int("count", len(s.words)),
	)

	if len(pairs) == 0 {
		return s.words.Clone(), nil
	}
	if err := s.save(); err != nil {
		return s.words.Clone(), err
	}
	return s.words.Clone(), nil
}

// DeleteWord removes the first pair whose source equals source and persists the
// list. A miss changes nothing and reports found == false.
func (s *WordStore) DeleteWord(source string) (domain.WordList, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return nil, false, ErrNotLoaded
	}

	source = strings.TrimSpace(source)
	idx := s.words.IndexOf(source)
	if idx < 0 {
		s.logger.Debug("Word to delete not found", zap.String("source", source))
		return s.words.Clone(), false, nil
	}

	s.words = append(s.words[:idx], s.words[idx+1:]...)

	s.logger.Info("Word deleted",
		zap.String("source", source),
		zap.Int("count", len(s.words)),
	)

	if err := s.save(); err != nil {
		return s.words.Clone(), true, err
	}
	return s.words.Clone(), true, nil
}

// Current returns a snapshot of the list
func (s *WordStore) Current() domain.WordList {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.words.Clone()
}

// Len returns the number of pairs
func (s *WordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// At returns the pair at index i
func (s *WordStore) At(i int) (domain.WordPair, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i < 0 || i >= len(s.words) {
		return domain.WordPair{}, false
	}
	return s.words[i], true
}

// save must be called with mu held
func (s *WordStore) save() error {
	if err := s.repo.Save(s.words.Clone()); err != nil {
		s.logger.Error("Failed to save words",
			zap.Error(err),
			zap.Int("count", len(s.words)),
		)
		return fmt.Errorf("failed to save words: %w", err)
	}
	return nil
}
