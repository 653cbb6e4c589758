package post

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Pagination bounds for listing posts.
const (
	DefaultListLimit = 10
	MaxListLimit     = 100
)

// CreatePostRequest - POST /v1/posts
type CreatePostRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Author    string `json:"author"`
	Published bool   `json:"published"` // defaults to draft
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Content, validation.Required.Error("content is required")),
		validation.Field(&r.Author, validation.Required.Error("author is required")),
	)
}

// UpdatePostRequest - PUT /v1/posts/:id
// All fields optional for partial updates; nil means "leave unchanged".
type UpdatePostRequest struct {
	Title     *string `json:"title,omitempty"`
	Content   *string `json:"content,omitempty"`
	Author    *string `json:"author,omitempty"`
	Published *bool   `json:"published,omitempty"`
}

func (r UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty.Error("title cannot be empty")),
		validation.Field(&r.Content, validation.NilOrNotEmpty.Error("content cannot be empty")),
		validation.Field(&r.Author, validation.NilOrNotEmpty.Error("author cannot be empty")),
	)
}

// PublishPostRequest - POST /v1/posts/:id/publish
type PublishPostRequest struct {
	Published *bool `json:"published"`
}

func (r PublishPostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Published, validation.NotNil.Error("published is required")),
	)
}

// GetPostRequest - GET /v1/posts/lookup?id=&slug=
// At least one identifier must be given; when both are given a row matching
// either is returned (first match, storage order).
type GetPostRequest struct {
	ID   *int    `json:"id,omitempty" form:"id"`
	Slug *string `json:"slug,omitempty" form:"slug"`
}

func (r GetPostRequest) Validate() error {
	if r.ID == nil && r.Slug == nil {
		return ErrMissingIdentifier
	}
	return validation.ValidateStruct(&r,
		validation.Field(&r.Slug, validation.NilOrNotEmpty.Error("slug cannot be empty")),
	)
}

// ListPostsFilter - GET /v1/posts query parameters.
type ListPostsFilter struct {
	Published *bool  `json:"published,omitempty" form:"published"`
	Author    string `json:"author,omitempty" form:"author"`
	Limit     int    `json:"limit" form:"limit"`
	Offset    int    `json:"offset" form:"offset"`
}

func (f ListPostsFilter) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Limit, validation.Min(0), validation.Max(MaxListLimit).Error("limit cannot exceed 100")),
		validation.Field(&f.Offset, validation.Min(0).Error("offset cannot be negative")),
	)
}

// DeleteResponse acknowledges a hard delete.
type DeleteResponse struct {
	Success bool `json:"success"`
}

// HealthResponse - GET /v1/health
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
