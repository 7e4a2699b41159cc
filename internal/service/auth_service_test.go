package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sumanthd032/smartblog/internal/auth"
	"github.com/sumanthd032/smartblog/internal/domain"
	"github.com/sumanthd032/smartblog/internal/repository"
)

func TestAuthService_RegisterAndLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.auth.Register(ctx, RegisterInput{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.True(t, user.IsPublic)
	assert.NotEqual(t, "secret123", user.PasswordHash)

	tok, err := f.auth.Login(ctx, LoginInput{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", tok.TokenType)
	assert.WithinDuration(t, time.Now().Add(auth.DefaultTokenTTL), tok.ExpiresAt, 5*time.Second)

	p, err := f.resolver.Resolve(ctx, tok.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, p.ID)
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.auth.Register(ctx, RegisterInput{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	_, err = f.auth.Register(ctx, RegisterInput{Username: "alice", Password: "other-pass"})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	_, err = f.auth.Register(ctx, RegisterInput{Username: "Alice", Password: "secret123"})
	assert.NoError(t, err, "usernames are case-sensitive")
}

func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.auth.Register(ctx, RegisterInput{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	_, wrongPass := f.auth.Login(ctx, LoginInput{Username: "alice", Password: "wrong-pass"})
	_, noUser := f.auth.Login(ctx, LoginInput{Username: "nobody", Password: "secret123"})

	require.Error(t, wrongPass)
	require.Error(t, noUser)
	assert.Equal(t, wrongPass, noUser)
	assert.Equal(t, wrongPass.Error(), noUser.Error())
	assert.ErrorIs(t, wrongPass, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPass, auth.ErrNotAuthenticated)
}

// racingUsers reports no existing user, then rejects the insert as a
// duplicate, like a concurrent registration would.
type racingUsers struct {
	repository.UserRepository
}

func (racingUsers) GetByUsername(context.Context, string) (*domain.User, error) { return nil, nil }
func (racingUsers) Create(context.Context, *domain.User) error                  { return repository.ErrDuplicate }

func TestAuthService_RegisterRaceMapsToTaken(t *testing.T) {
	hasher, err := auth.NewPasswordHasher(bcrypt.MinCost)
	require.NoError(t, err)
	svc := NewAuthService(racingUsers{}, hasher, auth.NewTokenIssuer(testSecret, 0))

	_, err = svc.Register(context.Background(), RegisterInput{Username: "alice", Password: "secret123"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

type failingUsers struct {
	repository.UserRepository
	err error
}

func (f failingUsers) GetByUsername(context.Context, string) (*domain.User, error) { return nil, f.err }
func (f failingUsers) GetByID(context.Context, uuid.UUID) (*domain.User, error)    { return nil, f.err }

func TestAuthService_StoreErrorIsNotAuthFailure(t *testing.T) {
	hasher, err := auth.NewPasswordHasher(bcrypt.MinCost)
	require.NoError(t, err)
	boom := errors.New("db down")
	svc := NewAuthService(failingUsers{err: boom}, hasher, auth.NewTokenIssuer(testSecret, 0))

	_, err = svc.Login(context.Background(), LoginInput{Username: "alice", Password: "secret123"})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, auth.ErrNotAuthenticated)
}
