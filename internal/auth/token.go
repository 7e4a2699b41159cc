package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL applies when neither the issuer nor the caller names a
// lifetime.
const DefaultTokenTTL = 30 * time.Minute

const TokenType = "bearer"

// Encode iat and exp with millisecond precision so a token expires at
// issue time plus ttl rather than at the whole second before it.
func init() {
	jwt.TimePrecision = time.Millisecond
}

// IssuedToken is a signed bearer token and the instant it stops being valid.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}

// TokenIssuer signs HS256 tokens whose subject is a username.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret []byte, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenIssuer{secret: secret, ttl: ttl, now: time.Now}
}

// SetClock replaces the time source (tests).
func (i *TokenIssuer) SetClock(now func() time.Time) {
	i.now = now
}

// Issue signs a token for subject valid for ttl; ttl <= 0 uses the issuer's
// default lifetime.
func (i *TokenIssuer) Issue(subject string, ttl time.Duration) (*IssuedToken, error) {
	if subject == "" {
		return nil, errors.New("empty token subject")
	}
	if ttl <= 0 {
		ttl = i.ttl
	}

	now := i.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return nil, fmt.Errorf("signing token: %w", err)
	}

	return &IssuedToken{Token: signed, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// TokenValidator checks tokens produced by a TokenIssuer holding the same
// secret.
type TokenValidator struct {
	secret []byte
	now    func() time.Time
}

func NewTokenValidator(secret []byte) *TokenValidator {
	return &TokenValidator{secret: secret, now: time.Now}
}

// SetClock replaces the time source (tests).
func (v *TokenValidator) SetClock(now func() time.Time) {
	v.now = now
}

// Validate verifies the signature and expiry of token and returns its
// subject. Failures are *Error values.
func (v *TokenValidator) Validate(token string) (string, error) {
	if token == "" {
		return "", &Error{Reason: ReasonMissingToken}
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return v.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil {
		return "", classify(err)
	}

	if claims.Subject == "" {
		return "", &Error{Reason: ReasonMalformed, Err: errors.New("missing subject")}
	}

	return claims.Subject, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return &Error{Reason: ReasonMalformed, Err: err}
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return &Error{Reason: ReasonInvalidSignature, Err: err}
	case errors.Is(err, jwt.ErrTokenExpired):
		return &Error{Reason: ReasonExpired, Err: err}
	default:
		// missing exp, bad claim types, nbf in the future
		return &Error{Reason: ReasonMalformed, Err: err}
	}
}
