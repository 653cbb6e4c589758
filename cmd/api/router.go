package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/domains/post"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/container"
)

// SetupRouter binds the blog operations to their routes. The operation set
// mirrors the remote procedure surface: healthcheck, createBlogPost,
// getBlogPosts, getBlogPost, updateBlogPost, deleteBlogPost, publishBlogPost.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c.DB.HealthCheck, c.Cache.Ping))

		posts := v1.Group("/posts")
		{
			posts.POST("", c.PostHandler.Create)         // createBlogPost
			posts.GET("", c.PostHandler.List)            // getBlogPosts
			posts.GET("/lookup", c.PostHandler.Get)      // getBlogPost
			posts.PUT("/:id", c.PostHandler.Update)      // updateBlogPost
			posts.DELETE("/:id", c.PostHandler.Delete)   // deleteBlogPost
			posts.POST("/:id/publish", c.PostHandler.Publish) // publishBlogPost
		}
	}

	return router
}

// healthCheckHandler reports "ok" when both stores respond. The database is
// mandatory; an unreachable cache degrades the status but keeps the API up,
// since repositories fall back to the database on cache errors.
func healthCheckHandler(dbCheck, cachePing func(context.Context) error) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := dbCheck(ctx.Request.Context()); err != nil {
			response.InternalServerError(ctx, "database unavailable")
			return
		}

		status := "ok"
		if err := cachePing(ctx.Request.Context()); err != nil {
			status = "degraded"
		}

		response.Success(ctx, http.StatusOK, post.HealthResponse{
			Status:    status,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}
