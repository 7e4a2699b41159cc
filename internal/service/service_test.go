package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sumanthd032/smartblog/internal/auth"
	"github.com/sumanthd032/smartblog/internal/render"
	"github.com/sumanthd032/smartblog/internal/repository/memory"
)

var testSecret = []byte("service-test-secret")

type fixture struct {
	store    *memory.Store
	auth     *AuthService
	users    *UserService
	posts    *PostService
	comments *CommentService
	resolver *auth.Resolver
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	hasher, err := auth.NewPasswordHasher(bcrypt.MinCost)
	require.NoError(t, err)

	store := memory.NewStore()
	return &fixture{
		store:    store,
		auth:     NewAuthService(store.Users(), hasher, auth.NewTokenIssuer(testSecret, 0)),
		users:    NewUserService(store.Users()),
		posts:    NewPostService(store.Posts(), store.Comments(), render.NewMarkdown()),
		comments: NewCommentService(store.Comments(), store.Posts()),
		resolver: auth.NewResolver(auth.NewTokenValidator(testSecret), store.Users()),
	}
}

// principal registers username and resolves a fresh login token for it.
func (f *fixture) principal(t *testing.T, username string) *auth.Principal {
	t.Helper()
	ctx := context.Background()

	_, err := f.auth.Register(ctx, RegisterInput{Username: username, Password: "secret123"})
	require.NoError(t, err)

	tok, err := f.auth.Login(ctx, LoginInput{Username: username, Password: "secret123"})
	require.NoError(t, err)

	p, err := f.resolver.Resolve(ctx, tok.AccessToken)
	require.NoError(t, err)
	return p
}

func strPtr(s string) *string { return &s }
