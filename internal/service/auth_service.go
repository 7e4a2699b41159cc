package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sumanthd032/smartblog/internal/auth"
	"github.com/sumanthd032/smartblog/internal/domain"
	"github.com/sumanthd032/smartblog/internal/repository"
)

var (
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords. It matches auth.ErrNotAuthenticated.
	ErrInvalidCredentials error = &auth.Error{
		Reason: auth.ReasonBadCredentials,
		Err:    errors.New("incorrect username or password"),
	}
)

type AuthService struct {
	userRepo repository.UserRepository
	hasher   *auth.PasswordHasher
	issuer   *auth.TokenIssuer
}

func NewAuthService(userRepo repository.UserRepository, hasher *auth.PasswordHasher, issuer *auth.TokenIssuer) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		issuer:   issuer,
	}
}

type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=50,username"`
	Password string `json:"password" validate:"required,min=8,maxbytes=72"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	existing, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.New(),
		Username:     input.Username,
		PasswordHash: hash,
		IsPublic:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return user, nil
}

// Login checks the credentials and issues an access token. Unknown users and
// wrong passwords fail identically and cost one bcrypt comparison each.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*TokenResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.hasher.VerifyMissing(input.Password)
		return nil, ErrInvalidCredentials
	}

	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user.Username, 0)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	return &TokenResponse{
		AccessToken: token.Token,
		TokenType:   auth.TokenType,
		ExpiresAt:   token.ExpiresAt,
	}, nil
}
