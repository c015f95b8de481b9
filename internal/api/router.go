package api

import (
	"github.com/gin-gonic/gin"
	"github.com/jpalmer/promoboost/internal/api/handler"
	"github.com/jpalmer/promoboost/internal/api/middleware"
	"github.com/jpalmer/promoboost/internal/config"
	"github.com/jpalmer/promoboost/internal/llm"
	"github.com/jpalmer/promoboost/internal/repository"
	"github.com/jpalmer/promoboost/internal/service"
)

// Deps bundles everything the router needs. All fields are required.
type Deps struct {
	Config        *config.Config
	AuthService   *service.AuthService
	Generator     *service.Generator
	Tracking      *service.TrackingService
	Fetcher       *service.FetcherService
	SettingsCache *llm.SettingsCache
	Posts         *repository.PostRepository
	Profiles      *repository.ProfileRepository
	Contents      *repository.ContentRepository
	Settings      *repository.SettingsRepository
}

// SetupRouter configures the Gin router with all routes.
func SetupRouter(deps Deps) *gin.Engine {
	switch deps.Config.Server.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	handler.RegisterValidations()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(deps.Config.Server.CORS))

	healthHandler := handler.NewHealthHandler()
	authHandler := handler.NewAuthHandler(deps.AuthService)
	postHandler := handler.NewPostHandler(deps.Posts)
	profileHandler := handler.NewProfileHandler(deps.Profiles)
	generateHandler := handler.NewGenerateHandler(deps.Generator, deps.Tracking, deps.Posts, deps.Profiles, deps.Contents)
	settingsHandler := handler.NewSettingsHandler(deps.Settings, deps.SettingsCache)
	trackingHandler := handler.NewTrackingHandler(deps.Tracking)
	fetchHandler := handler.NewFetchHandler(deps.Fetcher)

	// Public routes
	r.GET("/health", healthHandler.Health)
	r.GET("/t/:code", trackingHandler.Redirect)
	r.POST("/api/auth/login", authHandler.Login)

	// Authenticated API
	api := r.Group("/api")
	api.Use(middleware.RequireAuth(deps.AuthService))
	{
		// Posts
		api.POST("/posts", postHandler.Create)
		api.GET("/posts", postHandler.List)
		api.GET("/posts/:id", postHandler.Get)
		api.PUT("/posts/:id", postHandler.Update)
		api.DELETE("/posts/:id", postHandler.Delete)

		// Generation
		api.POST("/posts/:id/generate", generateHandler.GenerateAll)
		api.POST("/posts/:id/generate/:platform", generateHandler.GenerateOne)
		api.GET("/posts/:id/generate", generateHandler.ListGenerated)
		api.PUT("/generate/content/:id", generateHandler.UpdateGenerated)

		// Analytics
		api.GET("/posts/:id/analytics", trackingHandler.Analytics)

		// Platform profiles
		api.GET("/platforms", profileHandler.List)
		api.PUT("/platforms/order", profileHandler.UpdateOrder)
		api.PUT("/platforms/:platform", profileHandler.Upsert)
		api.DELETE("/platforms/:platform", profileHandler.Delete)

		// Settings
		api.GET("/settings", settingsHandler.List)
		api.PUT("/settings", settingsHandler.Set)

		// Article import
		api.POST("/fetch", fetchHandler.FetchURL)
		api.POST("/fetch/ghost", fetchHandler.FetchGhost)
	}

	return r
}
