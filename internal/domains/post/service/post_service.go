package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blog-backend/internal/domains/post"
	"blog-backend/internal/shared/utils"
)

// postService implements post.Service. It owns the slug uniqueness probe and
// the publish lifecycle rules; row atomicity comes from the datastore.
type postService struct {
	repo post.Repository
}

func NewPostService(repo post.Repository) post.Service {
	return &postService{repo: repo}
}

// ensureUniqueSlug probes candidate slugs (base, base-1, base-2, ...) until
// one is free. excludeID keeps a post's own row out of the probe so updating
// a title to itself does not grow a spurious suffix; pass 0 on create.
//
// The probe and the following write are separate statements; the unique
// index on blog_posts.slug is the backstop, and a collision that survives
// the loop surfaces as ErrDuplicateSlug.
func (s *postService) ensureUniqueSlug(ctx context.Context, title string, excludeID int) (string, error) {
	base := utils.GenerateSlug(title)
	if base == "" {
		base = utils.FallbackSlug()
	}

	candidate := base
	for n := 1; ; n++ {
		exists, err := s.repo.ExistsBySlug(ctx, candidate, excludeID)
		if err != nil {
			return "", fmt.Errorf("failed to check slug uniqueness: %w", err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
}

func (s *postService) Create(ctx context.Context, req *post.CreatePostRequest) (*post.Post, error) {
	slug, err := s.ensureUniqueSlug(ctx, req.Title, 0)
	if err != nil {
		return nil, err
	}

	var publishedAt *time.Time
	if req.Published {
		now := time.Now()
		publishedAt = &now
	}

	newPost := &post.Post{
		Title:       req.Title,
		Content:     req.Content,
		Author:      req.Author,
		Slug:        slug,
		Published:   req.Published,
		PublishedAt: publishedAt,
	}

	return s.repo.Create(ctx, newPost)
}

// Get looks a post up by id, slug or both (OR semantics). A missing post is
// an empty result, not an error.
func (s *postService) Get(ctx context.Context, req *post.GetPostRequest) (*post.Post, error) {
	if req.ID == nil && req.Slug == nil {
		return nil, post.ErrMissingIdentifier
	}

	p, err := s.repo.GetByIDOrSlug(ctx, req.ID, req.Slug)
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return p, nil
}

func (s *postService) List(ctx context.Context, filter post.ListPostsFilter) ([]post.Post, error) {
	if filter.Limit <= 0 {
		filter.Limit = post.DefaultListLimit
	}
	if filter.Limit > post.MaxListLimit {
		filter.Limit = post.MaxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	return s.repo.List(ctx, filter)
}

// Update applies only the provided fields. updated_at is refreshed even when
// no field is provided.
func (s *postService) Update(ctx context.Context, id int, req *post.UpdatePostRequest) (*post.Post, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current

	if req.Title != nil {
		updated.Title = *req.Title
		slug, err := s.ensureUniqueSlug(ctx, *req.Title, id)
		if err != nil {
			return nil, err
		}
		updated.Slug = slug
	}
	if req.Content != nil {
		updated.Content = *req.Content
	}
	if req.Author != nil {
		updated.Author = *req.Author
	}
	if req.Published != nil {
		applyPublishTransition(&updated, *req.Published)
	}

	return s.repo.Update(ctx, &updated)
}

// Publish is the narrow variant of Update restricted to the publish flag.
func (s *postService) Publish(ctx context.Context, id int, published bool) (*post.Post, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	applyPublishTransition(&updated, published)

	return s.repo.Update(ctx, &updated)
}

func (s *postService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// applyPublishTransition enforces the published_at rules:
// draft -> published sets the timestamp only when it is still null,
// -> draft always clears it, re-asserting published leaves it alone.
func applyPublishTransition(p *post.Post, published bool) {
	if published && p.PublishedAt == nil {
		now := time.Now()
		p.PublishedAt = &now
	}
	if !published {
		p.PublishedAt = nil
	}
	p.Published = published
}
