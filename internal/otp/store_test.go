package otp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestStore(verifiedTTL time.Duration) (*Store, *time.Time) {
	s := NewStore(verifiedTTL)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	return s, &now
}

func TestVerifyUnknownEmail(t *testing.T) {
	s, _ := newTestStore(15 * time.Minute)
	err := s.Verify("nobody@example.com", "123456")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestVerifySuccessConsumesCode(t *testing.T) {
	s, _ := newTestStore(15 * time.Minute)
	s.Put("a@example.com", "123456", 3*time.Minute)

	require.NoError(t, s.Verify("a@example.com", "123456"))
	require.True(t, s.IsVerified("a@example.com"))

	// The code is single use.
	err := s.Verify("a@example.com", "123456")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestVerifyMismatchKeepsCode(t *testing.T) {
	s, _ := newTestStore(15 * time.Minute)
	s.Put("a@example.com", "123456", 3*time.Minute)

	err := s.Verify("a@example.com", "000000")
	require.ErrorIs(t, err, ErrMismatch)
	require.False(t, s.IsVerified("a@example.com"))

	// The right code still works after a failed attempt.
	require.NoError(t, s.Verify("a@example.com", "123456"))
}

func TestVerifyExpiredDeletesLazily(t *testing.T) {
	s, now := newTestStore(15 * time.Minute)
	s.Put("a@example.com", "123456", 3*time.Minute)

	*now = now.Add(3*time.Minute + time.Second)

	err := s.Verify("a@example.com", "123456")
	require.ErrorIs(t, err, ErrExpired)

	// Entry was removed, a retry now reports not-found.
	err = s.Verify("a@example.com", "123456")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPutOverwritesPreviousCode(t *testing.T) {
	s, _ := newTestStore(15 * time.Minute)
	s.Put("a@example.com", "111111", 3*time.Minute)
	s.Put("a@example.com", "222222", 3*time.Minute)

	require.ErrorIs(t, s.Verify("a@example.com", "111111"), ErrMismatch)
	require.NoError(t, s.Verify("a@example.com", "222222"))
}

func TestVerifiedWindowExpires(t *testing.T) {
	s, now := newTestStore(15 * time.Minute)
	s.Put("a@example.com", "123456", 3*time.Minute)
	require.NoError(t, s.Verify("a@example.com", "123456"))

	*now = now.Add(15*time.Minute + time.Second)
	require.False(t, s.IsVerified("a@example.com"))
}

func TestClearRemovesAllState(t *testing.T) {
	s, _ := newTestStore(15 * time.Minute)
	s.Put("a@example.com", "123456", 3*time.Minute)
	require.NoError(t, s.Verify("a@example.com", "123456"))

	s.Clear("a@example.com")
	require.False(t, s.IsVerified("a@example.com"))
	require.ErrorIs(t, s.Verify("a@example.com", "123456"), ErrNotFound)
}

func TestSweepExpired(t *testing.T) {
	s, now := newTestStore(15 * time.Minute)
	s.Put("old@example.com", "111111", 3*time.Minute)
	s.Put("fresh@example.com", "222222", 30*time.Minute)

	*now = now.Add(10 * time.Minute)

	require.Equal(t, 1, s.SweepExpired())
	require.ErrorIs(t, s.Verify("old@example.com", "111111"), ErrNotFound)
	require.NoError(t, s.Verify("fresh@example.com", "222222"))
}
