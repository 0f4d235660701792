package router

import (
	"github.com/oksasatya/go-blog-api/internal/application"
	"github.com/oksasatya/go-blog-api/internal/container"
	pginfra "github.com/oksasatya/go-blog-api/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/go-blog-api/internal/interface/http"
	"github.com/oksasatya/go-blog-api/internal/router/modules"
)

// InitModules wires repositories, services and handlers from the container
// singletons and registers every feature module. Called once at startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()

	userRepo := pginfra.NewUserRepository(container.GetPGPool())
	postRepo := pginfra.NewPostRepository(container.GetPGPool())

	userSvc := application.NewUserService(
		userRepo,
		container.GetJWT(),
		container.GetGCS(),
		cfg.GCSBucket,
		container.GetRedis(),
		container.GetLogger(),
		container.GetRabbitPub(),
	)
	postSvc := application.NewPostService(
		postRepo,
		userRepo,
		container.GetLogger(),
		container.GetES(),
		cfg.ESPostsIndex,
	)

	userHandler := handlers.NewUserHandler(userSvc, container.GetLogger())
	postHandler := handlers.NewPostHandler(postSvc, container.GetLogger())
	authHandler := handlers.NewAuthHandler(userSvc, container.GetLogger(), cfg.CookieDomain, cfg.CookieSecure)

	r.Add(modules.NewUserModule(userHandler))
	r.Add(modules.NewPostModule(postHandler))
	r.Add(modules.NewAuthModule(authHandler, container.GetJWT()))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
