package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/SumukhPhulari10/Interactivequizplatform/internal/config"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/handler"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/middleware"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/model"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/response"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth         *handler.AuthHandler
	Catalog      *handler.CatalogHandler
	Quiz         *handler.QuizHandler
	QuestionSet  *handler.QuestionSetHandler
	Profile      *handler.ProfileHandler
	Leaderboard  *handler.LeaderboardHandler
	Dashboard    *handler.DashboardHandler
	ActivityFeed *handler.ActivityFeedHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// ─── 0. Public Group (No Auth) ─────────────────────────────────────
	publicAPI := router.Group("/api/v1")
	{
		catalog := publicAPI.Group("/catalog")
		catalog.Use(middleware.CacheControl(300))
		{
			catalog.GET("/banks", handlers.Catalog.Banks)
			catalog.GET("/branches", handlers.Catalog.Branches)
			catalog.GET("/branches/:branch/subjects", handlers.Catalog.Subjects)
		}

		publicAPI.GET("/leaderboard", handlers.Leaderboard.Top)
	}

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/signup", handlers.Auth.SignUp)
		auth.POST("/signin", handlers.Auth.SignIn)
		auth.POST("/signout", middleware.RequireAuth(authService), handlers.Auth.SignOut)
		auth.GET("/me", middleware.RequireAuth(authService), handlers.Profile.Me)
	}

	// ─── 2. Quiz Group (JWT + Single Device) ───────────────────────────
	quizAPI := router.Group("/api/v1/quiz")
	quizAPI.Use(
		middleware.RequireAuth(authService),
		middleware.CheckSingleDeviceSession(authService),
	)
	{
		quizAPI.GET("/sets", handlers.QuestionSet.ListStartable)
		quizAPI.POST("/start", handlers.Quiz.Start)
		quizAPI.POST("/answer", handlers.Quiz.Answer)
		quizAPI.POST("/next", handlers.Quiz.Next)
		quizAPI.POST("/previous", handlers.Quiz.Previous)
		quizAPI.GET("/state", handlers.Quiz.State)
		quizAPI.GET("/results", handlers.Quiz.Results)
		quizAPI.POST("/retry", handlers.Quiz.Retry)
		quizAPI.POST("/quit", handlers.Quiz.Quit)
	}

	// ─── 3. Profile Group (JWT + Single Device) ────────────────────────
	profileAPI := router.Group("/api/v1/profile")
	profileAPI.Use(
		middleware.RequireAuth(authService),
		middleware.CheckSingleDeviceSession(authService),
	)
	{
		profileAPI.GET("", handlers.Profile.Me)
		profileAPI.PUT("", handlers.Profile.Update)
		profileAPI.GET("/attempts", handlers.Profile.History)
		profileAPI.GET("/activity", handlers.Profile.Activity)
	}

	// ─── 4. Editor Group (Teacher/Admin Only) ──────────────────────────
	editorAPI := router.Group("/api/v1/editor")
	editorAPI.Use(
		middleware.RequireAuth(authService),
		middleware.CheckSingleDeviceSession(authService),
		middleware.RequireRole(model.RoleTeacher, model.RoleAdmin),
	)
	{
		editorAPI.GET("/sets/:branch/:subject", handlers.QuestionSet.Get)
		editorAPI.PUT("/sets/:branch/:subject", handlers.QuestionSet.Save)
	}

	// ─── 5. Dashboard Group (Per Role) ─────────────────────────────────
	dashboardAPI := router.Group("/api/v1/dashboard")
	dashboardAPI.Use(
		middleware.RequireAuth(authService),
		middleware.CheckSingleDeviceSession(authService),
	)
	{
		dashboardAPI.GET("/student", handlers.Dashboard.Student)
		dashboardAPI.GET("/teacher",
			middleware.RequireRole(model.RoleTeacher, model.RoleAdmin),
			handlers.Dashboard.Teacher,
		)
		dashboardAPI.GET("/admin",
			middleware.RequireRole(model.RoleAdmin),
			handlers.Dashboard.Admin,
		)
	}

	// ─── 6. WebSocket Group (Admin WS Auth) ────────────────────────────
	ws := router.Group("/ws/v1")
	ws.Use(
		middleware.RequireWSAuth(authService),
		middleware.RequireRole(model.RoleAdmin),
	)
	{
		ws.GET("/admin/activity", handlers.ActivityFeed.Stream)
	}

	return router
}
