package memory

import (
	"context"

	"github.com/google/uuid"
	"github.com/sumanthd032/smartblog/internal/domain"
	"github.com/sumanthd032/smartblog/internal/repository"
)

type UserRepo struct {
	s *Store
}

func (r *UserRepo) Create(_ context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Username == user.Username {
			return repository.ErrDuplicate
		}
	}
	if _, ok := r.s.users[user.ID]; ok {
		return repository.ErrDuplicate
	}

	r.s.users[user.ID] = *user
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) UpdateProfile(_ context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[user.ID]
	if !ok {
		return repository.ErrNotFound
	}
	u.FullName = user.FullName
	u.Bio = user.Bio
	u.SocialLinks = user.SocialLinks
	u.IsPublic = user.IsPublic
	u.UpdatedAt = user.UpdatedAt
	r.s.users[user.ID] = u
	return nil
}
