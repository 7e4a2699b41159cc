package auth

import (
	"context"
	"fmt"

	"github.com/sumanthd032/smartblog/internal/domain"
)

// Principal is the account a validated token resolved to. It lives for one
// request.
type Principal struct {
	domain.User
}

// AccountFinder is the credential store lookup the resolver depends on.
type AccountFinder interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// Resolver turns a bearer token into a Principal.
type Resolver struct {
	tokens   *TokenValidator
	accounts AccountFinder
}

func NewResolver(tokens *TokenValidator, accounts AccountFinder) *Resolver {
	return &Resolver{tokens: tokens, accounts: accounts}
}

// Resolve validates token and loads the account it names. A subject that no
// longer exists fails with ReasonUnknownSubject; store errors are returned
// wrapped and do not match ErrNotAuthenticated.
func (r *Resolver) Resolve(ctx context.Context, token string) (*Principal, error) {
	subject, err := r.tokens.Validate(token)
	if err != nil {
		return nil, err
	}

	user, err := r.accounts.GetByUsername(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("looking up token subject: %w", err)
	}
	if user == nil {
		return nil, &Error{Reason: ReasonUnknownSubject}
	}

	return &Principal{User: *user}, nil
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the request's principal, or nil for an
// anonymous request.
func PrincipalFromContext(ctx context.Context) *Principal {
	p, _ := ctx.Value(principalKey{}).(*Principal)
	return p
}
