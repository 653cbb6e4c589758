package database

import (
	"context"
	"fmt"
)

// Statements kept idempotent so startup can run them unconditionally.
// Executed one by one: pgx's extended protocol rejects multi-statement Exec.
var blogPostsSchema = []string{
	`CREATE TABLE IF NOT EXISTS blog_posts (
        id           SERIAL PRIMARY KEY,
        title        TEXT NOT NULL,
        content      TEXT NOT NULL,
        author       TEXT NOT NULL,
        slug         TEXT NOT NULL UNIQUE,
        published    BOOLEAN NOT NULL DEFAULT FALSE,
        published_at TIMESTAMPTZ,
        created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`,
	`CREATE INDEX IF NOT EXISTS idx_blog_posts_created_at ON blog_posts (created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_blog_posts_author ON blog_posts (author)`,
	`CREATE INDEX IF NOT EXISTS idx_blog_posts_published ON blog_posts (published)`,
}

// EnsureSchema creates the blog_posts table and its indexes if missing.
// The UNIQUE constraint on slug is the backstop for the slug probe loop.
func (db *PostgresDB) EnsureSchema(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	for _, stmt := range blogPostsSchema {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure blog_posts schema: %w", err)
		}
	}

	return nil
}
