package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sumanthd032/smartblog/internal/domain"
)

// ErrDuplicate is returned by Create when a unique constraint rejects the row.
var ErrDuplicate = errors.New("duplicate key")

// ErrNotFound is returned by updates when the row no longer exists.
var ErrNotFound = errors.New("row not found")

// Lookups return (nil, nil) when no row matches.

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateProfile(ctx context.Context, user *domain.User) error
}

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	List(ctx context.Context, filter domain.PostFilter) ([]domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error
	// Delete removes the post and its comments.
	Delete(ctx context.Context, id uuid.UUID) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	ListByPost(ctx context.Context, postID uuid.UUID) ([]domain.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
