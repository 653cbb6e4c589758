package post

import "context"

// Service is the business logic contract for blog posts.
type Service interface {
	Create(ctx context.Context, req *CreatePostRequest) (*Post, error)
	// Get returns (nil, nil) when no post matches; the read path never
	// errors on a missing row.
	Get(ctx context.Context, req *GetPostRequest) (*Post, error)
	List(ctx context.Context, filter ListPostsFilter) ([]Post, error)
	Update(ctx context.Context, id int, req *UpdatePostRequest) (*Post, error)
	Publish(ctx context.Context, id int, published bool) (*Post, error)
	Delete(ctx context.Context, id int) error
}
