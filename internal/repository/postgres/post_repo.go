package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sumanthd032/smartblog/internal/domain"
	"github.com/sumanthd032/smartblog/internal/repository"
)

const postSelect = `
		SELECT p.id, p.title, p.content, p.author_id, p.created_at, p.updated_at, u.username
		FROM posts p
		JOIN users u ON p.author_id = u.id`

type PostRepo struct {
	db DBTX
}

func NewPostRepo(db DBTX) *PostRepo {
	return &PostRepo{db: db}
}

func (r *PostRepo) Create(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO posts (id, title, content, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		post.ID, post.Title, post.Content, post.AuthorID, post.CreatedAt, post.UpdatedAt,
	)
	return mapWriteErr(err)
}

func (r *PostRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	var p domain.Post
	err := r.db.QueryRow(ctx, postSelect+" WHERE p.id = $1", id).Scan(
		&p.ID, &p.Title, &p.Content, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt, &p.AuthorUsername,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns posts newest first.
func (r *PostRepo) List(ctx context.Context, filter domain.PostFilter) ([]domain.Post, error) {
	var (
		where []string
		args  []any
	)

	if filter.Query != "" {
		args = append(args, "%"+escapeLike(filter.Query)+"%")
		where = append(where, fmt.Sprintf("(p.title ILIKE $%d OR p.content ILIKE $%d)", len(args), len(args)))
	}
	if filter.AuthorUsername != "" {
		args = append(args, filter.AuthorUsername)
		where = append(where, fmt.Sprintf("u.username = $%d", len(args)))
	}

	query := postSelect
	if len(where) > 0 {
		query += "\n\t\tWHERE " + strings.Join(where, " AND ")
	}

	args = append(args, filter.Skip, filter.Limit)
	query += fmt.Sprintf("\n\t\tORDER BY p.created_at DESC, p.id\n\t\tOFFSET $%d LIMIT $%d", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Content, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt, &p.AuthorUsername,
		); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}

	return posts, rows.Err()
}

func (r *PostRepo) Update(ctx context.Context, post *domain.Post) error {
	query := `UPDATE posts SET title = $1, content = $2, updated_at = $3 WHERE id = $4`
	tag, err := r.db.Exec(ctx, query, post.Title, post.Content, post.UpdatedAt, post.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete relies on ON DELETE CASCADE to drop the post's comments.
func (r *PostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	return err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
