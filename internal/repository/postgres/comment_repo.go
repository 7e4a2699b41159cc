package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sumanthd032/smartblog/internal/domain"
)

const commentSelect = `
		SELECT c.id, c.text, c.author_id, c.post_id, c.created_at, u.username
		FROM comments c
		JOIN users u ON c.author_id = u.id`

type CommentRepo struct {
	db DBTX
}

func NewCommentRepo(db DBTX) *CommentRepo {
	return &CommentRepo{db: db}
}

func (r *CommentRepo) Create(ctx context.Context, c *domain.Comment) error {
	query := `
		INSERT INTO comments (id, text, author_id, post_id, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, query, c.ID, c.Text, c.AuthorID, c.PostID, c.CreatedAt)
	return mapWriteErr(err)
}

func (r *CommentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	var c domain.Comment
	err := r.db.QueryRow(ctx, commentSelect+" WHERE c.id = $1", id).Scan(
		&c.ID, &c.Text, &c.AuthorID, &c.PostID, &c.CreatedAt, &c.Author.Username,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByPost returns the post's comments oldest first.
func (r *CommentRepo) ListByPost(ctx context.Context, postID uuid.UUID) ([]domain.Comment, error) {
	rows, err := r.db.Query(ctx, commentSelect+" WHERE c.post_id = $1 ORDER BY c.created_at, c.id", postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.Text, &c.AuthorID, &c.PostID, &c.CreatedAt, &c.Author.Username); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	return comments, rows.Err()
}

func (r *CommentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	return err
}
