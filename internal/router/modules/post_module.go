package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-blog-api/internal/container"
	handlers "github.com/oksasatya/go-blog-api/internal/interface/http"
	"github.com/oksasatya/go-blog-api/internal/interface/middleware"
)

// PostModule wires post CRUD and search routes.
// GET    /api/posts
// GET    /api/posts/search
// GET    /api/posts/:id
// GET    /api/posts/by-user/:userId
// GET    /api/posts/by-status/:status
// POST   /api/posts/:userId
// PUT    /api/posts/:id
// DELETE /api/posts/:id

type PostModule struct {
	Handler *handlers.PostHandler
}

func NewPostModule(h *handlers.PostHandler) *PostModule {
	return &PostModule{Handler: h}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	readLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil)
	writeLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)

	posts := rg.Group("/posts")
	{
		posts.GET("", readLimiter, m.Handler.GetAll)
		posts.GET("/search", readLimiter, m.Handler.Search)
		posts.GET("/by-user/:userId", readLimiter, m.Handler.GetByUser)
		posts.GET("/by-status/:status", readLimiter, m.Handler.GetByStatus)
		posts.GET("/:id", readLimiter, m.Handler.GetByID)
		posts.POST("/:userId", writeLimiter, m.Handler.Create)
		posts.PUT("/:id", writeLimiter, m.Handler.Update)
		posts.DELETE("/:id", writeLimiter, m.Handler.Delete)
	}
}
