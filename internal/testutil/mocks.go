package testutil

import (
	"flashcards/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) Load() (domain.LoadResult, error) {
	args := m.Called()
	return args.Get(0).(domain.LoadResult), args.Error(1)
}

func (m *MockWordRepository) Save(words domain.WordList) error {
	args := m.Called(words)
	return args.Error(0)
}
