package auth

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret-key-for-jwt-signing")

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestTokenIssuer_DefaultTTL(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	issuer := NewTokenIssuer(testSecret, 0)
	issuer.SetClock(fixedClock(now))

	tok, err := issuer.Issue("alice", 0)
	require.NoError(t, err)
	assert.Equal(t, now.Add(DefaultTokenTTL), tok.ExpiresAt)
	assert.NotEmpty(t, tok.Token)
}

func TestTokenIssuer_ExplicitTTLOverridesDefault(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	issuer := NewTokenIssuer(testSecret, time.Hour)
	issuer.SetClock(fixedClock(now))

	tok, err := issuer.Issue("alice", 5*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, now.Add(5*time.Minute), tok.ExpiresAt)

	tok, err = issuer.Issue("alice", 0)
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), tok.ExpiresAt)
}

func TestTokenIssuer_EmptySubject(t *testing.T) {
	_, err := NewTokenIssuer(testSecret, 0).Issue("", 0)
	require.Error(t, err)
}

func TestTokenValidator_RoundTrip(t *testing.T) {
	tok, err := NewTokenIssuer(testSecret, 0).Issue("alice", 0)
	require.NoError(t, err)

	subject, err := NewTokenValidator(testSecret).Validate(tok.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestTokenValidator_ExpiryBoundary(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ttl := 30 * time.Minute

	issuer := NewTokenIssuer(testSecret, 0)
	issuer.SetClock(fixedClock(issuedAt))
	tok, err := issuer.Issue("alice", ttl)
	require.NoError(t, err)

	validator := NewTokenValidator(testSecret)

	validator.SetClock(fixedClock(issuedAt.Add(ttl - time.Second)))
	subject, err := validator.Validate(tok.Token)
	require.NoError(t, err, "token must be accepted just before expiry")
	assert.Equal(t, "alice", subject)

	validator.SetClock(fixedClock(issuedAt.Add(ttl)))
	_, err = validator.Validate(tok.Token)
	assertReason(t, err, ReasonExpired)

	validator.SetClock(fixedClock(issuedAt.Add(ttl + time.Second)))
	_, err = validator.Validate(tok.Token)
	assertReason(t, err, ReasonExpired)
}

func TestTokenValidator_ExpiryBoundarySubSecond(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 900*int(time.Millisecond), time.UTC)
	ttl := time.Minute
	expiresAt := issuedAt.Add(ttl)

	issuer := NewTokenIssuer(testSecret, 0)
	issuer.SetClock(fixedClock(issuedAt))
	tok, err := issuer.Issue("alice", ttl)
	require.NoError(t, err)
	assert.Equal(t, expiresAt, tok.ExpiresAt)

	validator := NewTokenValidator(testSecret)

	validator.SetClock(fixedClock(expiresAt.Add(-500 * time.Millisecond)))
	subject, err := validator.Validate(tok.Token)
	require.NoError(t, err, "token must be accepted within its last second")
	assert.Equal(t, "alice", subject)

	validator.SetClock(fixedClock(expiresAt.Add(time.Millisecond)))
	_, err = validator.Validate(tok.Token)
	assertReason(t, err, ReasonExpired)
}

func TestTokenValidator_WrongSecret(t *testing.T) {
	tok, err := NewTokenIssuer([]byte("other-secret"), 0).Issue("alice", 0)
	require.NoError(t, err)

	_, err = NewTokenValidator(testSecret).Validate(tok.Token)
	assertReason(t, err, ReasonInvalidSignature)
}

func TestTokenValidator_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-jwt-token"},
		{name: "three bogus segments", token: "header.payload.signature"},
		{name: "two segments", token: "a.b"},
	}

	v := NewTokenValidator(testSecret)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Validate(tt.token)
			assertReason(t, err, ReasonMalformed)
		})
	}
}

func TestTokenValidator_EmptyToken(t *testing.T) {
	_, err := NewTokenValidator(testSecret).Validate("")
	assertReason(t, err, ReasonMissingToken)
}

func TestTokenValidator_RejectsOtherAlgorithms(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(testSecret)
	require.NoError(t, err)

	_, err = NewTokenValidator(testSecret).Validate(tok)
	assertReason(t, err, ReasonInvalidSignature)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenValidator(testSecret).Validate(none)
	assertReason(t, err, ReasonInvalidSignature)
}

func TestTokenValidator_MissingClaims(t *testing.T) {
	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "alice"}).SignedString(testSecret)
	require.NoError(t, err)
	_, err = NewTokenValidator(testSecret).Validate(noExp)
	assertReason(t, err, ReasonMalformed)

	noSub, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(testSecret)
	require.NoError(t, err)
	_, err = NewTokenValidator(testSecret).Validate(noSub)
	assertReason(t, err, ReasonMalformed)
}

func TestTokenValidator_TamperedSubject(t *testing.T) {
	tok, err := NewTokenIssuer(testSecret, 0).Issue("alice", 0)
	require.NoError(t, err)

	parts := strings.Split(tok.Token, ".")
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	idx := strings.Index(string(payload), "alice")
	require.GreaterOrEqual(t, idx, 0)
	payload[idx+4] ^= 0x01 // alice -> alicd

	parts[1] = base64.RawURLEncoding.EncodeToString(payload)
	_, err = NewTokenValidator(testSecret).Validate(strings.Join(parts, "."))
	assertReason(t, err, ReasonInvalidSignature)
}

func TestTokenValidator_AnySingleBitFlipInPayloadIsRejected(t *testing.T) {
	tok, err := NewTokenIssuer(testSecret, 0).Issue("alice", 0)
	require.NoError(t, err)

	parts := strings.Split(tok.Token, ".")
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	v := NewTokenValidator(testSecret)
	for i := 0; i < len(payload)*8; i++ {
		flipped := append([]byte(nil), payload...)
		flipped[i/8] ^= 1 << (i % 8)

		tampered := parts[0] + "." + base64.RawURLEncoding.EncodeToString(flipped) + "." + parts[2]
		_, err := v.Validate(tampered)
		require.ErrorIs(t, err, ErrNotAuthenticated, "bit %d", i)
	}
}

func TestTokenValidator_RevalidationIsStable(t *testing.T) {
	tok, err := NewTokenIssuer(testSecret, 0).Issue("alice", 0)
	require.NoError(t, err)

	v := NewTokenValidator(testSecret)
	first, err := v.Validate(tok.Token)
	require.NoError(t, err)
	second, err := v.Validate(tok.Token)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func assertReason(t *testing.T, err error, want Reason) {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrNotAuthenticated)
	got, ok := ReasonOf(err)
	require.True(t, ok, "expected *auth.Error, got %T", err)
	assert.Equal(t, want, got, "error: %v", err)
}
