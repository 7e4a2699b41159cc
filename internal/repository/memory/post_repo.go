package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/sumanthd032/smartblog/internal/domain"
	"github.com/sumanthd032/smartblog/internal/repository"
)

type PostRepo struct {
	s *Store
}

func (r *PostRepo) Create(_ context.Context, post *domain.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.posts[post.ID]; ok {
		return repository.ErrDuplicate
	}

	stored := *post
	stored.AuthorUsername = ""
	stored.ContentHTML = ""
	stored.Comments = nil
	r.s.posts[post.ID] = stored
	return nil
}

func (r *PostRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.posts[id]
	if !ok {
		return nil, nil
	}
	p.AuthorUsername = r.s.usernameOf(p.AuthorID)
	return &p, nil
}

func (r *PostRepo) List(_ context.Context, filter domain.PostFilter) ([]domain.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	query := strings.ToLower(filter.Query)

	var matched []domain.Post
	for _, p := range r.s.posts {
		p.AuthorUsername = r.s.usernameOf(p.AuthorID)
		if filter.AuthorUsername != "" && p.AuthorUsername != filter.AuthorUsername {
			continue
		}
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		matched = append(matched, p)
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID.String() < matched[j].ID.String()
	})

	if filter.Skip >= len(matched) {
		return nil, nil
	}
	matched = matched[filter.Skip:]
	if filter.Limit >= 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func matchesQuery(p domain.Post, query string) bool {
	if strings.Contains(strings.ToLower(p.Title), query) {
		return true
	}
	return p.Content != nil && strings.Contains(strings.ToLower(*p.Content), query)
}

func (r *PostRepo) Update(_ context.Context, post *domain.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.posts[post.ID]
	if !ok {
		return repository.ErrNotFound
	}
	p.Title = post.Title
	p.Content = post.Content
	p.UpdatedAt = post.UpdatedAt
	r.s.posts[post.ID] = p
	return nil
}

func (r *PostRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.posts, id)
	for cid, c := range r.s.comments {
		if c.PostID == id {
			delete(r.s.comments, cid)
		}
	}
	return nil
}
