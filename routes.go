package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"notebuddy/config"
	"notebuddy/handler"
	"notebuddy/middleware"
	"notebuddy/repository"
	"notebuddy/store"
	"notebuddy/usecase"
)

func setupRouter(cfg config.Config, st store.Store) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestSizeLimiter(cfg.Server.MaxBodyBytes))

	// Repositories share one injected store; no hidden globals.
	notesRepo := repository.NewNotesRepo(st)
	uploadsRepo := repository.NewUploadsRepo(st)
	contributorsRepo := repository.NewContributorsRepo(st)
	settingsRepo := repository.NewSettingsRepo(st)
	lookupsRepo := repository.NewLookupsRepo(st)

	reviewService := &usecase.ReviewService{
		Uploads:      uploadsRepo,
		Notes:        notesRepo,
		Contributors: contributorsRepo,
	}

	statusHandler := handler.NewStatusHandler(st, cfg.Database.DatabaseName)
	notesHandler := handler.NewNotesHandler(notesRepo)
	uploadsHandler := handler.NewUploadsHandler(uploadsRepo)
	contributorsHandler := handler.NewContributorsHandler(contributorsRepo)
	settingsHandler := handler.NewSettingsHandler(settingsRepo)
	lookupsHandler := handler.NewLookupsHandler(lookupsRepo)
	reviewHandler := handler.NewReviewHandler(uploadsRepo, reviewService)
	authHandler := handler.NewAuthHandler(cfg.Admin)

	router.GET("/", statusHandler.Root)
	router.GET("/test", statusHandler.TestDatabase)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	cached := middleware.CacheControlMiddleware(cfg.Server.CacheMaxAge)

	// Public routes (no authentication required)
	public := router.Group("/api")
	{
		public.GET("/notes", cached, notesHandler.ListNotes)
		public.GET("/notes/:id", cached, notesHandler.GetNote)
		public.POST("/uploads", uploadsHandler.Submit)
		public.GET("/leaderboard", cached, contributorsHandler.Leaderboard)
		public.GET("/settings", settingsHandler.Get)
		public.GET("/subjects", cached, lookupsHandler.ListSubjects)
		public.GET("/colleges", cached, lookupsHandler.ListColleges)
		public.POST("/admin/login", authHandler.Login)
	}

	// Admin routes (static bearer token required)
	admin := router.Group("/api/admin")
	admin.Use(middleware.AdminAuthMiddleware(cfg.Admin.Token))
	{
		admin.GET("/uploads", reviewHandler.ListUploads)
		admin.POST("/uploads/:id/accept", reviewHandler.Accept)
		admin.POST("/uploads/:id/reject", reviewHandler.Reject)
		admin.GET("/contributors", contributorsHandler.List)
		admin.POST("/contributors", contributorsHandler.Upsert)
		admin.POST("/contributors/adjust-points", contributorsHandler.AdjustPoints)
		admin.PUT("/settings", settingsHandler.Update)
		admin.POST("/subjects", lookupsHandler.CreateSubject)
		admin.POST("/colleges", lookupsHandler.CreateCollege)
	}

	return router
}
