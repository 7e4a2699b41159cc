package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher(t *testing.T) *PasswordHasher {
	t.Helper()
	h, err := NewPasswordHasher(bcrypt.MinCost)
	require.NoError(t, err)
	return h
}

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	h := newTestHasher(t)

	hash, err := h.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)
	assert.NotContains(t, hash, "secret123")

	assert.True(t, h.Verify("secret123", hash))
	assert.False(t, h.Verify("secret124", hash))
	assert.False(t, h.Verify("", hash))
}

func TestPasswordHasher_SaltsEachHash(t *testing.T) {
	h := newTestHasher(t)

	a, err := h.Hash("secret123")
	require.NoError(t, err)
	b, err := h.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, h.Verify("secret123", a))
	assert.True(t, h.Verify("secret123", b))
}

func TestPasswordHasher_UsesConfiguredCost(t *testing.T) {
	h, err := NewPasswordHasher(bcrypt.MinCost + 1)
	require.NoError(t, err)

	hash, err := h.Hash("secret123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost+1, cost)
}

func TestPasswordHasher_CostOutOfRange(t *testing.T) {
	_, err := NewPasswordHasher(bcrypt.MaxCost + 1)
	require.Error(t, err)

	_, err = NewPasswordHasher(1)
	require.Error(t, err)
}

func TestPasswordHasher_GarbageHash(t *testing.T) {
	h := newTestHasher(t)
	assert.False(t, h.Verify("secret123", "not-a-bcrypt-hash"))
}

func TestPasswordHasher_TooLong(t *testing.T) {
	h := newTestHasher(t)
	_, err := h.Hash(strings.Repeat("a", MaxPasswordBytes+1))
	require.Error(t, err)
}

func TestPasswordHasher_VerifyMissingDoesNotPanic(t *testing.T) {
	h := newTestHasher(t)
	h.VerifyMissing("whatever")
}
