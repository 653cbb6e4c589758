package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"blog-backend/internal/config"
	"blog-backend/internal/domains/post"
	postHandler "blog-backend/internal/domains/post/handler"
	postRepo "blog-backend/internal/domains/post/repository"
	postService "blog-backend/internal/domains/post/service"
	infraCache "blog-backend/internal/infrastructure/cache"
	"blog-backend/internal/infrastructure/database"
	"blog-backend/pkg/cache"
)

// Container is the root of the dependency graph. Initialization order:
// config -> infrastructure (db, cache) -> repositories -> services -> handlers.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	PostRepo    post.Repository
	PostService post.Service
	PostHandler *postHandler.PostHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	if err := db.EnsureSchema(context.Background()); err != nil {
		return nil, fmt.Errorf("schema bootstrap failed: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	// Redis failure is non-critical: repositories tolerate cache errors and
	// fall back to the database.
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Warn().Err(err).Msg("redis connection failed, continuing without cache")
	}
	c.Cache = redisCache

	c.PostRepo = postRepo.NewPostgresRepository(db.Pool, c.Cache)
	c.PostService = postService.NewPostService(c.PostRepo)
	c.PostHandler = postHandler.NewPostHandler(c.PostService)

	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis client")
		}
	}
}
