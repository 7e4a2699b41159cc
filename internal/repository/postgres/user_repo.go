package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sumanthd032/smartblog/internal/domain"
	"github.com/sumanthd032/smartblog/internal/repository"
)

const userColumns = "id, username, password_hash, full_name, bio, social_links, is_public, created_at, updated_at"

type UserRepo struct {
	db DBTX
}

func NewUserRepo(db DBTX) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, username, password_hash, full_name, bio, social_links, is_public, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, query,
		user.ID, user.Username, user.PasswordHash, user.FullName, user.Bio,
		user.SocialLinks, user.IsPublic, user.CreatedAt, user.UpdatedAt,
	)
	return mapWriteErr(err)
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.scanUser(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
}

// GetByUsername matches exactly; usernames are case-sensitive.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.scanUser(ctx, "SELECT "+userColumns+" FROM users WHERE username = $1", username)
}

func (r *UserRepo) UpdateProfile(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users SET full_name = $1, bio = $2, social_links = $3, is_public = $4, updated_at = $5
		WHERE id = $6`
	tag, err := r.db.Exec(ctx, query,
		user.FullName, user.Bio, user.SocialLinks, user.IsPublic, user.UpdatedAt, user.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepo) scanUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Username, &u.PasswordHash,
		&u.FullName, &u.Bio, &u.SocialLinks,
		&u.IsPublic, &u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
