package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/sumanthd032/smartblog/internal/domain"
	"github.com/sumanthd032/smartblog/internal/repository"
)

type CommentRepo struct {
	s *Store
}

func (r *CommentRepo) Create(_ context.Context, c *domain.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.comments[c.ID]; ok {
		return repository.ErrDuplicate
	}
	// mirrors the foreign key on comments.post_id
	if _, ok := r.s.posts[c.PostID]; !ok {
		return fmt.Errorf("comment references missing post %s", c.PostID)
	}

	stored := *c
	stored.Author = domain.CommentAuthor{}
	r.s.comments[c.ID] = stored
	return nil
}

func (r *CommentRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.comments[id]
	if !ok {
		return nil, nil
	}
	c.Author.Username = r.s.usernameOf(c.AuthorID)
	return &c, nil
}

func (r *CommentRepo) ListByPost(_ context.Context, postID uuid.UUID) ([]domain.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []domain.Comment
	for _, c := range r.s.comments {
		if c.PostID != postID {
			continue
		}
		c.Author.Username = r.s.usernameOf(c.AuthorID)
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (r *CommentRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.comments, id)
	return nil
}
