// Package auth obtains and holds OAuth2 access tokens for the cloud.gov API.
package auth

import (
	"context"
	"sync"
)

// TokenManager supplies access tokens to the HTTP layer.
type TokenManager interface {
	// GetToken returns the held access token, obtaining one first when
	// none is held yet.
	GetToken(ctx context.Context) (string, error)

	// SetToken replaces the held access token.
	SetToken(token string)

	// Authenticated reports whether a token is currently held.
	Authenticated() bool
}

// TokenStore holds an access token. It is safe for concurrent use.
//
// Tokens are held for the lifetime of the process; service account tokens
// are obtained per run, so there is no expiry tracking and no refresh.
type TokenStore struct {
	mu    sync.RWMutex
	token string
}

// NewTokenStore creates an empty token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Get returns the stored token and whether one is present.
func (s *TokenStore) Get() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token, s.token != ""
}

// Set stores a token.
func (s *TokenStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
}

// Has reports whether a token is stored.
func (s *TokenStore) Has() bool {
	_, ok := s.Get()

	return ok
}
