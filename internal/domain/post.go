package domain

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Content     *string   `json:"content,omitempty"`
	ContentHTML string    `json:"content_html,omitempty"`
	AuthorID    uuid.UUID `json:"author_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	// Joined fields
	AuthorUsername string    `json:"author_username,omitempty"`
	Comments       []Comment `json:"comments,omitempty"`
}

// PostFilter narrows a post listing. Query matches title or content,
// case-insensitively.
type PostFilter struct {
	Query          string
	AuthorUsername string
	Skip           int
	Limit          int
}
