package service

import (
	"sync"
)

// AuthService gates bot chats behind an optional shared password.
// Authorized chats are kept in memory for the process lifetime.
type AuthService struct {
	password string

	mu         sync.RWMutex
	authorized map[int64]bool
}

// NewAuthService creates a new auth service. An empty password disables the gate.
func NewAuthService(password string) *AuthService {
	return &AuthService{
		password:   password,
		authorized: make(map[int64]bool),
	}
}

// Enabled reports whether a password is required
func (s *AuthService) Enabled() bool {
	return s.password != ""
}

// CheckPassword verifies if provided password matches
func (s *AuthService) CheckPassword(password string) bool {
	return s.Enabled() && password == s.password
}

// IsAuthorized checks if chat may use the bot
func (s *AuthService) IsAuthorized(chatID int64) bool {
	if !s.Enabled() {
		return true
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authorized[chatID]
}

// AuthorizeUser marks chat as authorized
func (s *AuthService) AuthorizeUser(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authorized[chatID] = true
}
