package auth

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_MatchesNotAuthenticated(t *testing.T) {
	cause := errors.New("boom")
	err := fmt.Errorf("resolving: %w", &Error{Reason: ReasonExpired, Err: cause})

	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrForbidden)

	reason, ok := ReasonOf(err)
	assert.True(t, ok)
	assert.Equal(t, ReasonExpired, reason)
}

func TestReasonOf_PlainError(t *testing.T) {
	_, ok := ReasonOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestReason_String(t *testing.T) {
	assert.Equal(t, "expired", ReasonExpired.String())
	assert.Equal(t, "unknown_subject", ReasonUnknownSubject.String())
	assert.Equal(t, "reason(99)", Reason(99).String())
}
