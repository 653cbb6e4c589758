package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domains/post"
	"blog-backend/pkg/cache"
)

// postgresRepository implements post.Repository on pgxpool, with a Redis
// read-through cache on single-row lookups.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) post.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	postCacheKeyPrefix = "post:"
	postSlugKeyPrefix  = "post:slug:"
	cacheTTL           = 15 * time.Minute
)

const postColumns = "id, title, content, author, slug, published, published_at, created_at, updated_at"

func scanPost(row pgx.Row) (*post.Post, error) {
	var p post.Post
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Content,
		&p.Author,
		&p.Slug,
		&p.Published,
		&p.PublishedAt,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new post. created_at/updated_at come from the database so
// updated_at >= created_at holds from the first row version.
func (r *postgresRepository) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	query := `
        INSERT INTO blog_posts (title, content, author, slug, published, published_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + postColumns

	created, err := scanPost(r.pool.QueryRow(
		ctx,
		query,
		p.Title,
		p.Content,
		p.Author,
		p.Slug,
		p.Published,
		p.PublishedAt,
	))
	if err != nil {
		if isSlugViolation(err) {
			return nil, post.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("failed to create blog post: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int) (*post.Post, error) {
	cacheKey := postCacheKeyPrefix + strconv.Itoa(id)

	var cached post.Post
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := `SELECT ` + postColumns + ` FROM blog_posts WHERE id = $1`

	p, err := scanPost(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get blog post by id: %w", err)
	}

	r.cachePost(ctx, p)
	return p, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*post.Post, error) {
	cacheKey := postSlugKeyPrefix + slug

	var cached post.Post
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := `SELECT ` + postColumns + ` FROM blog_posts WHERE slug = $1`

	p, err := scanPost(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get blog post by slug: %w", err)
	}

	r.cachePost(ctx, p)
	return p, nil
}

// GetByIDOrSlug matches on whichever identifiers are present, OR-combined.
// Not cached: with both identifiers set the winning row is ambiguous.
func (r *postgresRepository) GetByIDOrSlug(ctx context.Context, id *int, slug *string) (*post.Post, error) {
	var conditions []string
	var args []interface{}

	if id != nil {
		args = append(args, *id)
		conditions = append(conditions, fmt.Sprintf("id = $%d", len(args)))
	}
	if slug != nil {
		args = append(args, *slug)
		conditions = append(conditions, fmt.Sprintf("slug = $%d", len(args)))
	}
	if len(conditions) == 0 {
		return nil, post.ErrMissingIdentifier
	}

	query := `SELECT ` + postColumns + ` FROM blog_posts WHERE ` +
		strings.Join(conditions, " OR ") + ` LIMIT 1`

	p, err := scanPost(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}

	return p, nil
}

// List returns posts newest-first with optional equality filters.
func (r *postgresRepository) List(ctx context.Context, filter post.ListPostsFilter) ([]post.Post, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + postColumns + ` FROM blog_posts WHERE 1=1`)

	args := []interface{}{}

	if filter.Published != nil {
		args = append(args, *filter.Published)
		queryBuilder.WriteString(fmt.Sprintf(" AND published = $%d", len(args)))
	}
	if filter.Author != "" {
		args = append(args, filter.Author)
		queryBuilder.WriteString(fmt.Sprintf(" AND author = $%d", len(args)))
	}

	args = append(args, filter.Limit, filter.Offset)
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args)))

	rows, err := r.pool.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query blog posts: %w", err)
	}
	defer rows.Close()

	posts := []post.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan blog post: %w", err)
		}
		posts = append(posts, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating blog posts: %w", err)
	}

	return posts, nil
}

// Update persists every field and refreshes updated_at, so a no-op partial
// update still bumps the timestamp.
func (r *postgresRepository) Update(ctx context.Context, p *post.Post) (*post.Post, error) {
	// Load the pre-update slug first: earlier reads may have cached the row
	// under post:slug:<old-slug>, and a slug change must evict that entry too.
	var oldSlug string
	if err := r.pool.QueryRow(ctx, `SELECT slug FROM blog_posts WHERE id = $1`, p.ID).Scan(&oldSlug); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to load blog post for update: %w", err)
	}

	query := `
        UPDATE blog_posts
        SET title = $1,
            content = $2,
            author = $3,
            slug = $4,
            published = $5,
            published_at = $6,
            updated_at = NOW()
        WHERE id = $7
        RETURNING ` + postColumns

	updated, err := scanPost(r.pool.QueryRow(
		ctx,
		query,
		p.Title,
		p.Content,
		p.Author,
		p.Slug,
		p.Published,
		p.PublishedAt,
		p.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		if isSlugViolation(err) {
			return nil, post.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("failed to update blog post: %w", err)
	}

	r.cache.Delete(ctx, invalidationKeys(p.ID, oldSlug, updated.Slug)...)

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int) error {
	// Fetch the slug first so the slug cache entry can be invalidated too.
	var slug string
	err := r.pool.QueryRow(ctx, `SELECT slug FROM blog_posts WHERE id = $1`, id).Scan(&slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return post.ErrPostNotFound
		}
		return fmt.Errorf("failed to load blog post for delete: %w", err)
	}

	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}

	r.cache.Delete(ctx, invalidationKeys(id, slug)...)
	return nil
}

func (r *postgresRepository) ExistsBySlug(ctx context.Context, slug string, excludeID int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM blog_posts WHERE slug = $1 AND id <> $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, slug, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check slug existence: %w", err)
	}

	return exists, nil
}

// isSlugViolation reports a unique_violation on the slug constraint.
func isSlugViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName+pgErr.Message, "slug")
	}
	return false
}

// Cache helpers. Cache failures are tolerated; the database is the source
// of truth.

func (r *postgresRepository) cachePost(ctx context.Context, p *post.Post) {
	r.cache.Set(ctx, postCacheKeyPrefix+strconv.Itoa(p.ID), p, cacheTTL)
	r.cache.Set(ctx, postSlugKeyPrefix+p.Slug, p, cacheTTL)
}

// invalidationKeys lists every cache key a mutation of the row may have left
// stale: the id key plus a slug key per distinct slug the row has carried.
func invalidationKeys(id int, slugs ...string) []string {
	keys := []string{postCacheKeyPrefix + strconv.Itoa(id)}
	seen := make(map[string]bool, len(slugs))
	for _, s := range slugs {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		keys = append(keys, postSlugKeyPrefix+s)
	}
	return keys
}
