// Package otp holds the process-local state for the password-reset flow.
//
// Entries live only in this process: a restart or a multi-instance
// deployment loses every pending code. That is an accepted constraint of
// the single-instance deployment this service targets, not a bug.
package otp

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrNotFound = errors.New("otp not found")
	ErrExpired  = errors.New("otp expired")
	ErrMismatch = errors.New("otp mismatch")
)

type pendingEntry struct {
	code      string
	expiresAt time.Time
}

// Store keeps pending reset codes and short-lived verified marks, both
// keyed by email. All access is serialized by one mutex; contention is
// negligible at this scale.
type Store struct {
	mu       sync.Mutex
	pending  map[string]pendingEntry
	verified map[string]time.Time // email -> verified-until

	verifiedTTL time.Duration
	now         func() time.Time
}

func NewStore(verifiedTTL time.Duration) *Store {
	return &Store{
		pending:     make(map[string]pendingEntry),
		verified:    make(map[string]time.Time),
		verifiedTTL: verifiedTTL,
		now:         time.Now,
	}
}

// Put stores a pending code, overwriting any prior entry for the email.
// Last request wins.
func (s *Store) Put(email, code string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[email] = pendingEntry{code: code, expiresAt: s.now().Add(ttl)}
}

// Verify checks a submitted code. A missing entry yields ErrNotFound; an
// expired one is deleted lazily and yields ErrExpired; a wrong code
// yields ErrMismatch and keeps the entry. On success the entry is
// consumed and the email is marked verified for the configured window.
func (s *Store) Verify(email, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.pending[email]
	if !ok {
		return ErrNotFound
	}
	if s.now().After(entry.expiresAt) {
		delete(s.pending, email)
		return ErrExpired
	}
	if entry.code != code {
		return ErrMismatch
	}

	delete(s.pending, email)
	s.verified[email] = s.now().Add(s.verifiedTTL)
	return nil
}

// IsVerified reports whether the email passed verification within the
// window. Stale marks are dropped lazily.
func (s *Store) IsVerified(email string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	until, ok := s.verified[email]
	if !ok {
		return false
	}
	if s.now().After(until) {
		delete(s.verified, email)
		return false
	}
	return true
}

// Clear removes all pending and verified state for the email.
func (s *Store) Clear(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, email)
	delete(s.verified, email)
}

// SweepExpired drops expired pending codes and stale verified marks.
// Returns the number of entries removed.
func (s *Store) SweepExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for email, entry := range s.pending {
		if now.After(entry.expiresAt) {
			delete(s.pending, email)
			removed++
		}
	}
	for email, until := range s.verified {
		if now.After(until) {
			delete(s.verified, email)
			removed++
		}
	}
	return removed
}
