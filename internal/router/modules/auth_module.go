package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-blog-api/internal/container"
	handlers "github.com/oksasatya/go-blog-api/internal/interface/http"
	"github.com/oksasatya/go-blog-api/internal/interface/middleware"
	"github.com/oksasatya/go-blog-api/pkg/helpers"
)

// AuthModule wires authentication and profile routes.
// POST /api/login
// POST /api/refresh
// POST /api/logout          (auth)
// GET  /api/profile         (auth)
// PUT  /api/profile         (auth)
// POST /api/profile/deactivate (auth)
// PUT  /api/profile/avatar  (auth)

type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rdb := container.GetRedis()

	loginLimiter := middleware.RateLimit(rdb, 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	refreshLimiter := middleware.RateLimit(rdb, 60, time.Minute, middleware.KeyByIP(), nil)
	profileLimiter := middleware.RateLimit(rdb, 120, time.Minute, middleware.KeyByUserID(), nil)

	rg.POST("/login", loginLimiter, m.Handler.Login)
	rg.POST("/refresh", refreshLimiter, m.Handler.Refresh)

	authed := rg.Group("")
	authed.Use(middleware.Auth(rdb, m.JWT))
	{
		authed.POST("/logout", m.Handler.Logout)
		authed.GET("/profile", profileLimiter, m.Handler.GetProfile)
		authed.PUT("/profile", profileLimiter, m.Handler.UpdateProfile)
		authed.POST("/profile/deactivate", profileLimiter, m.Handler.Deactivate)
		authed.PUT("/profile/avatar", profileLimiter, m.Handler.UploadAvatar)
	}
}
