package post

import "context"

// Repository is the data access contract for blog posts. Lookups return
// ErrPostNotFound for missing rows; the service decides whether that is an
// error (mutations) or an empty result (reads).
type Repository interface {
	Create(ctx context.Context, p *Post) (*Post, error)
	GetByID(ctx context.Context, id int) (*Post, error)
	GetBySlug(ctx context.Context, slug string) (*Post, error)
	// GetByIDOrSlug matches on id OR slug; with both set the first row in
	// storage order wins.
	GetByIDOrSlug(ctx context.Context, id *int, slug *string) (*Post, error)
	List(ctx context.Context, filter ListPostsFilter) ([]Post, error)
	// Update persists every field of p and refreshes updated_at.
	Update(ctx context.Context, p *Post) (*Post, error)
	Delete(ctx context.Context, id int) error
	// ExistsBySlug reports whether slug is taken by a row other than
	// excludeID. Pass 0 to probe against all rows.
	ExistsBySlug(ctx context.Context, slug string, excludeID int) (bool, error)
}
