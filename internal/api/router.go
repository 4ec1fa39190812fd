package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/devconnect/devconnect-api/docs"
	"github.com/devconnect/devconnect-api/internal/api/handler"
	"github.com/devconnect/devconnect-api/internal/api/middleware"
	"github.com/devconnect/devconnect-api/internal/core/ports"
	"github.com/devconnect/devconnect-api/internal/core/service"
	mongodb "github.com/devconnect/devconnect-api/internal/infrastructure/db/mongo"
	redisdb "github.com/devconnect/devconnect-api/internal/infrastructure/db/redis"
	httphandlers "github.com/devconnect/devconnect-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, ghClient ports.GithubClient, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("devconnect"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	profileRepo := mongodb.NewProfileRepository(db)
	postRepo := mongodb.NewPostRepository(db)

	authService := service.NewAuthService(userRepo, jwtSecret, 24*time.Hour)
	profileService := service.NewProfileService(profileRepo, userRepo, log)
	postService := service.NewPostService(postRepo, userRepo, log)
	githubService := service.NewGithubService(ghClient, redisdb.NewGithubCache(rdb), log)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService, githubService)
	postHandler := handler.NewPostHandler(postService)
	auth := middleware.Auth(jwtSecret)

	// --- Auth routes ---
	e.POST("/api/users", authHandler.Register)
	e.POST("/api/auth", authHandler.Login)
	e.GET("/api/auth", authHandler.Current, auth)

	// --- Profile routes ---
	e.GET("/api/profile", profileHandler.List)
	e.POST("/api/profile", profileHandler.CreateOrUpdate, auth)
	e.DELETE("/api/profile", profileHandler.Delete, auth)
	e.GET("/api/profile/me", profileHandler.GetMine, auth)
	e.GET("/api/profile/user/:user_id", profileHandler.GetByUserID)
	e.PUT("/api/profile/experience", profileHandler.AddExperience, auth)
	e.DELETE("/api/profile/experience/:id", profileHandler.RemoveExperience, auth)
	e.PUT("/api/profile/education", profileHandler.AddEducation, auth)
	e.DELETE("/api/profile/education/:id", profileHandler.RemoveEducation, auth)
	e.GET("/api/profile/github/:username", profileHandler.GithubRepos)

	// --- Post routes ---
	e.POST("/api/posts", postHandler.Create, auth)
	e.GET("/api/posts", postHandler.List, auth)
	e.GET("/api/posts/:id", postHandler.Get, auth)
	e.DELETE("/api/posts/:id", postHandler.Delete, auth)
	e.PUT("/api/posts/like/:id", postHandler.Like, auth)
	e.PUT("/api/posts/unlike/:id", postHandler.Unlike, auth)
	e.POST("/api/posts/comment/:id", postHandler.AddComment, auth)
	e.DELETE("/api/posts/comment/:post_id/:comment_id", postHandler.RemoveComment, auth)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	healthHandler := httphandlers.NewHealthHandler()
	healthDepsHandler := httphandlers.NewHealthDependenciesHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
