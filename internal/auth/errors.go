package auth

import (
	"errors"
	"fmt"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrForbidden        = errors.New("forbidden")
)

// Reason records why authentication failed. It is for logs only and must
// never reach a client.
type Reason int

const (
	ReasonMissingToken Reason = iota + 1
	ReasonBadCredentials
	ReasonInvalidSignature
	ReasonMalformed
	ReasonExpired
	ReasonUnknownSubject
)

func (r Reason) String() string {
	switch r {
	case ReasonMissingToken:
		return "missing_token"
	case ReasonBadCredentials:
		return "bad_credentials"
	case ReasonInvalidSignature:
		return "invalid_signature"
	case ReasonMalformed:
		return "malformed"
	case ReasonExpired:
		return "expired"
	case ReasonUnknownSubject:
		return "unknown_subject"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// Error is an authentication failure. It matches ErrNotAuthenticated.
type Error struct {
	Reason Reason
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v (%s): %v", ErrNotAuthenticated, e.Reason, e.Err)
	}
	return fmt.Sprintf("%v (%s)", ErrNotAuthenticated, e.Reason)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool { return target == ErrNotAuthenticated }

// ReasonOf extracts the failure reason from err, if err is an auth failure.
func ReasonOf(err error) (Reason, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Reason, true
	}
	return 0, false
}
