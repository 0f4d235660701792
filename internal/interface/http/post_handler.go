package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blog-api/internal/application"
	"github.com/oksasatya/go-blog-api/internal/domain/entity"
	"github.com/oksasatya/go-blog-api/pkg/response"
	"github.com/oksasatya/go-blog-api/pkg/validation"
)

type PostHandler struct {
	Svc    *application.PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc *application.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

type createPostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	Status  string `json:"status"`
}

type updatePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Status  *string `json:"status"`
}

// GetAll GET /api/posts
func (h *PostHandler) GetAll(c *gin.Context) {
	posts, err := h.Svc.GetAll(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, posts, "posts", nil)
}

// GetByID GET /api/posts/:id
func (h *PostHandler) GetByID(c *gin.Context) {
	post, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, post, "post", nil)
}

// GetByUser GET /api/posts/by-user/:userId
func (h *PostHandler) GetByUser(c *gin.Context) {
	posts, err := h.Svc.GetByUserID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, posts, "posts", nil)
}

// GetByStatus GET /api/posts/by-status/:status
func (h *PostHandler) GetByStatus(c *gin.Context) {
	status, ok := entity.ParsePostStatus(c.Param("status"))
	if !ok {
		response.Error[any](c, http.StatusBadRequest, "unknown status", nil)
		return
	}
	posts, err := h.Svc.GetByStatus(c.Request.Context(), status)
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, posts, "posts", nil)
}

// Create POST /api/posts/:userId
func (h *PostHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	post, err := h.Svc.Create(c.Request.Context(), c.Param("userId"), application.CreatePostDto{
		Title:   req.Title,
		Content: req.Content,
		Status:  req.Status,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusCreated, post, "post created", nil)
}

// Update PUT /api/posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	post, err := h.Svc.Update(c.Request.Context(), c.Param("id"), application.UpdatePostDto{
		Title:   req.Title,
		Content: req.Content,
		Status:  req.Status,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, post, "post updated", nil)
}

// Delete DELETE /api/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "post deleted", nil)
}

// Search GET /api/posts/search?q=...&size=...
func (h *PostHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "missing query", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", map[string]any{"count": len(hits)})
}
