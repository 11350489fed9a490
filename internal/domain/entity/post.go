package entity

import (
	"time"

	"github.com/google/uuid"
)

// Post is a blog entry written by a User.
type Post struct {
	ID         uuid.UUID
	AuthorID   uuid.UUID
	AuthorName string // Username of the author, filled by read queries.
	Title      string
	Content    string
	DatePosted time.Time
}
