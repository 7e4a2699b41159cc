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

var ErrPostNotFound = errors.New("post not found")

const (
	DefaultPageSize = 100
	MaxPageSize     = 100
)

// Renderer converts post markdown to HTML.
type Renderer interface {
	HTML(src string) (string, error)
}

type PostService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	renderer    Renderer
}

func NewPostService(postRepo repository.PostRepository, commentRepo repository.CommentRepository, renderer Renderer) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		renderer:    renderer,
	}
}

type PostInput struct {
	Title   string  `json:"title" validate:"notblank,max=200"`
	Content *string `json:"content" validate:"omitempty,max=100000"`
}

type ListPostsInput struct {
	Skip   int
	Limit  int
	Query  string
	Author string
}

func (s *PostService) List(ctx context.Context, input ListPostsInput) ([]domain.Post, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	posts, err := s.postRepo.List(ctx, domain.PostFilter{
		Query:          input.Query,
		AuthorUsername: input.Author,
		Skip:           max(input.Skip, 0),
		Limit:          limit,
	})
	if err != nil {
		return nil, err
	}

	if posts == nil {
		posts = []domain.Post{}
	}
	return posts, nil
}

// Get returns the post with its comments and rendered content.
func (s *PostService) Get(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comments, err := s.commentRepo.ListByPost(ctx, id)
	if err != nil {
		return nil, err
	}
	post.Comments = comments
	if post.Comments == nil {
		post.Comments = []domain.Comment{}
	}

	if post.Content != nil && s.renderer != nil {
		html, err := s.renderer.HTML(*post.Content)
		if err != nil {
			return nil, fmt.Errorf("rendering post %s: %w", id, err)
		}
		post.ContentHTML = html
	}

	return post, nil
}

func (s *PostService) Create(ctx context.Context, p *auth.Principal, input PostInput) (*domain.Post, error) {
	if err := auth.RequirePrincipal(p); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post := &domain.Post{
		ID:        uuid.New(),
		Title:     input.Title,
		Content:   input.Content,
		AuthorID:  p.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}

	post.AuthorUsername = p.Username
	return post, nil
}

func (s *PostService) Update(ctx context.Context, p *auth.Principal, id uuid.UUID, input PostInput) (*domain.Post, error) {
	post, err := s.ownedPost(ctx, p, id)
	if err != nil {
		return nil, err
	}

	post.Title = input.Title
	post.Content = input.Content
	post.UpdatedAt = time.Now().UTC()

	if err := s.postRepo.Update(ctx, post); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("updating post: %w", err)
	}

	return post, nil
}

func (s *PostService) Delete(ctx context.Context, p *auth.Principal, id uuid.UUID) error {
	if _, err := s.ownedPost(ctx, p, id); err != nil {
		return err
	}
	return s.postRepo.Delete(ctx, id)
}

// ownedPost loads a post for mutation: missing posts are reported before
// ownership is checked.
func (s *PostService) ownedPost(ctx context.Context, p *auth.Principal, id uuid.UUID) (*domain.Post, error) {
	if err := auth.RequirePrincipal(p); err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	if err := auth.AssertOwner(p, post.AuthorID); err != nil {
		return nil, err
	}
	return post, nil
}
