// Package session holds the signed-in user's access token. The token
// is issued and verified by the backend; the client only decodes its
// claims to know who is signed in and when the token goes stale.
package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"nlistplanet/pkg/errors"
)

type Session struct {
	mu        sync.RWMutex
	token     string
	userID    string
	expiresAt time.Time
}

func New() *Session {
	return &Session{}
}

// SetToken installs a new access token. The signature is not verified
// here: the backend rejects forged tokens on every request, the client
// only reads the subject and expiry claims.
func (s *Session) SetToken(raw string) error {
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(raw, &claims); err != nil {
		return errors.Unauthorized("invalid access token", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = raw
	s.userID = claims.Subject
	if claims.ExpiresAt != nil {
		s.expiresAt = claims.ExpiresAt.Time
	} else {
		s.expiresAt = time.Time{}
	}
	return nil
}

// Clear signs the user out locally.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.userID = ""
	s.expiresAt = time.Time{}
}

// AuthToken returns the current bearer token, empty when signed out or
// expired. Implements backend.TokenSource.
func (s *Session) AuthToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" || s.expired(time.Now()) {
		return ""
	}
	return s.token
}

// UserID returns the signed-in user's ID, empty when signed out.
func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

// Expired reports whether the token has passed its expiry claim.
func (s *Session) Expired(now time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token == "" || s.expired(now)
}

func (s *Session) expired(now time.Time) bool {
	return !s.expiresAt.IsZero() && now.After(s.expiresAt)
}
