package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/domains/post"
	"blog-backend/internal/shared/response"
)

type PostHandler struct {
	service post.Service
}

func NewPostHandler(svc post.Service) *PostHandler {
	return &PostHandler{service: svc}
}

// Create - POST /v1/posts
func (h *PostHandler) Create(c *gin.Context) {
	var req post.CreatePostRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// List - GET /v1/posts?published=&author=&limit=&offset=
func (h *PostHandler) List(c *gin.Context) {
	filter := post.ListPostsFilter{
		Author: c.Query("author"),
		Limit:  post.DefaultListLimit,
	}

	if publishedStr := c.Query("published"); publishedStr != "" {
		published, err := strconv.ParseBool(publishedStr)
		if err != nil {
			response.BadRequest(c, "published must be a boolean")
			return
		}
		filter.Published = &published
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			response.BadRequest(c, "limit must be an integer")
			return
		}
		filter.Limit = limit
	}

	if offsetStr := c.Query("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil {
			response.BadRequest(c, "offset must be an integer")
			return
		}
		filter.Offset = offset
	}

	if err := filter.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	posts, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, posts)
}

// Get - GET /v1/posts/lookup?id=&slug=
// Missing row is an empty result (data: null), not a 404.
func (h *PostHandler) Get(c *gin.Context) {
	var req post.GetPostRequest

	if idStr := c.Query("id"); idStr != "" {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			response.BadRequest(c, "id must be an integer")
			return
		}
		req.ID = &id
	}
	if slug := c.Query("slug"); slug != "" {
		req.Slug = &slug
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	p, err := h.service.Get(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.SuccessNullable(c, http.StatusOK, p)
}

// Update - PUT /v1/posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req post.UpdatePostRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Publish - POST /v1/posts/:id/publish
func (h *PostHandler) Publish(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req post.PublishPostRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Publish(c.Request.Context(), id, *req.Published)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Delete - DELETE /v1/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, post.DeleteResponse{Success: true})
}

func (h *PostHandler) pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.BadRequest(c, "id must be a positive integer")
		return 0, false
	}
	return id, true
}

func (h *PostHandler) writeError(c *gin.Context, err error) {
	response.ErrorResponse(c, post.ToHTTPStatus(err), post.ToErrorCode(err), err.Error())
}
