// Package memory holds map-backed repositories for local runs and tests.
// They share one Store so joins (author usernames) and cascading deletes
// behave like the postgres schema.
package memory

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sumanthd032/smartblog/internal/domain"
)

type Store struct {
	mu       sync.RWMutex
	users    map[uuid.UUID]domain.User
	posts    map[uuid.UUID]domain.Post
	comments map[uuid.UUID]domain.Comment
}

func NewStore() *Store {
	return &Store{
		users:    make(map[uuid.UUID]domain.User),
		posts:    make(map[uuid.UUID]domain.Post),
		comments: make(map[uuid.UUID]domain.Comment),
	}
}

func (s *Store) Users() *UserRepo       { return &UserRepo{s: s} }
func (s *Store) Posts() *PostRepo       { return &PostRepo{s: s} }
func (s *Store) Comments() *CommentRepo { return &CommentRepo{s: s} }

// usernameOf must be called with mu held.
func (s *Store) usernameOf(id uuid.UUID) string {
	return s.users[id].Username
}
