package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sumanthd032/smartblog/internal/auth"
	"github.com/sumanthd032/smartblog/internal/domain"
	"github.com/sumanthd032/smartblog/internal/repository"
)

var ErrUserNotFound = errors.New("user not found")

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// UpdateProfileInput is a partial update; nil fields are left unchanged.
type UpdateProfileInput struct {
	FullName    *string `json:"full_name" validate:"omitempty,max=100"`
	Bio         *string `json:"bio" validate:"omitempty,max=1000"`
	SocialLinks *string `json:"social_links" validate:"omitempty,max=1000"`
	IsPublic    *bool   `json:"is_public"`
}

// GetProfile returns the named account. Private accounts are visible only
// to their owner; everyone else gets ErrUserNotFound.
func (s *UserService) GetProfile(ctx context.Context, viewer *auth.Principal, username string) (*domain.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if !user.IsPublic && (viewer == nil || viewer.ID != user.ID) {
		return nil, ErrUserNotFound
	}

	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, p *auth.Principal, input UpdateProfileInput) (*domain.User, error) {
	if err := auth.RequirePrincipal(p); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &auth.Error{Reason: auth.ReasonUnknownSubject}
	}

	if input.FullName != nil {
		user.FullName = input.FullName
	}
	if input.Bio != nil {
		user.Bio = input.Bio
	}
	if input.SocialLinks != nil {
		user.SocialLinks = input.SocialLinks
	}
	if input.IsPublic != nil {
		user.IsPublic = *input.IsPublic
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &auth.Error{Reason: auth.ReasonUnknownSubject}
		}
		return nil, fmt.Errorf("updating profile: %w", err)
	}

	return user, nil
}
