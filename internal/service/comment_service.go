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

var ErrCommentNotFound = errors.New("comment not found")

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

type CreateCommentInput struct {
	Text string `json:"text" validate:"notblank,max=2000"`
}

func (s *CommentService) List(ctx context.Context, postID uuid.UUID) ([]domain.Comment, error) {
	if err := s.checkPost(ctx, postID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	return comments, nil
}

func (s *CommentService) Create(ctx context.Context, p *auth.Principal, postID uuid.UUID, input CreateCommentInput) (*domain.Comment, error) {
	if err := auth.RequirePrincipal(p); err != nil {
		return nil, err
	}
	if err := s.checkPost(ctx, postID); err != nil {
		return nil, err
	}

	c := &domain.Comment{
		ID:        uuid.New(),
		Text:      input.Text,
		AuthorID:  p.ID,
		PostID:    postID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.commentRepo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("creating comment: %w", err)
	}

	c.Author.Username = p.Username
	return c, nil
}

func (s *CommentService) Delete(ctx context.Context, p *auth.Principal, id uuid.UUID) error {
	if err := auth.RequirePrincipal(p); err != nil {
		return err
	}

	c, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return ErrCommentNotFound
	}

	if err := auth.AssertOwner(p, c.AuthorID); err != nil {
		return err
	}

	return s.commentRepo.Delete(ctx, id)
}

func (s *CommentService) checkPost(ctx context.Context, postID uuid.UUID) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	return nil
}
