package post

import (
	"time"
)

// Post is the single persisted content entity. The wire layout matches the
// blog_posts row exactly, so handlers return it without a separate DTO.
type Post struct {
	ID          int        `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Content     string     `json:"content" db:"content"`
	Author      string     `json:"author" db:"author"`
	Slug        string     `json:"slug" db:"slug"`
	Published   bool       `json:"published" db:"published"`
	PublishedAt *time.Time `json:"published_at" db:"published_at"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}
