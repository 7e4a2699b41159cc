package domain

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID     `json:"id"`
	Text      string        `json:"text"`
	AuthorID  uuid.UUID     `json:"author_id"`
	PostID    uuid.UUID     `json:"post_id"`
	CreatedAt time.Time     `json:"created_at"`
	Author    CommentAuthor `json:"author"`
}

type CommentAuthor struct {
	Username string `json:"username"`
}
