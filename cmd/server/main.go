package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/nkeidar/babytrack/internal/analytics"
	"github.com/nkeidar/babytrack/internal/database"
	apperrors "github.com/nkeidar/babytrack/internal/errors"
	"github.com/nkeidar/babytrack/internal/monitoring"
	"github.com/nkeidar/babytrack/internal/security"
)

func main() {
	// Structured logging setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Configuration from environment with defaults
	dataDir := getEnvOrDefault("DATA_DIR", "./data")
	allowedOrigin := getEnvOrDefault("ALLOWED_ORIGIN", "http://localhost:5173")
	port := getEnvOrDefault("PORT", "5002")

	db, err := database.NewDB(dataDir)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	repo := database.NewRepository(db)
	analyzer := analytics.NewAnalyzer(repo)

	r := setupRouter(db, repo, analyzer, allowedOrigin)

	// Start server with graceful shutdown
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		slog.Info("Starting server", "port", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited")
}

// setupRouter wires middleware and routes. Kept separate from main so the
// handler tests can build the same router over a throwaway database.
func setupRouter(db *database.DB, repo *database.Repository, analyzer *analytics.Analyzer, allowedOrigin string) *gin.Engine {
	r := gin.New()

	appMetrics := monitoring.NewMetrics()
	appLogger := monitoring.NewLogger()

	r.Use(monitoring.MonitoringMiddleware(appMetrics, appLogger))
	r.Use(apperrors.ErrorHandler())
	r.Use(apperrors.RecoveryHandler())

	securityMiddleware := security.NewSecurityMiddleware(security.DefaultSecurityConfig())
	r.Use(securityMiddleware.SecurityHeaders)
	r.Use(securityMiddleware.RequestTimeout)
	r.Use(securityMiddleware.RateLimitByIP)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{allowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Metrics endpoint
	r.GET("/metrics", func(c *gin.Context) {
		c.JSON(http.StatusOK, appMetrics.GetStats())
	})

	// Database pool stats endpoint
	r.GET("/pools/database", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"pool":  "database",
			"stats": db.GetPoolStats(),
		})
	})

	// Swagger documentation routes
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")

	feedings := api.Group("/feedings")
	feedings.GET("", listFeedingsHandler(repo))
	feedings.POST("", createFeedingHandler(repo))
	feedings.GET("/:id", getFeedingHandler(repo))
	feedings.PUT("/:id", updateFeedingHandler(repo))
	feedings.DELETE("/:id", deleteFeedingHandler(repo))

	vomits := api.Group("/vomits")
	vomits.GET("", listVomitsHandler(repo))
	vomits.POST("", createVomitHandler(repo))
	vomits.GET("/:id", getVomitHandler(repo))
	vomits.PUT("/:id", updateVomitHandler(repo))
	vomits.DELETE("/:id", deleteVomitHandler(repo))

	analyticsGroup := api.Group("/analytics")
	analyticsGroup.GET("/category-correlation", categoryCorrelationHandler(analyzer, appMetrics, appLogger))
	analyticsGroup.GET("/food-analysis", foodAnalysisHandler(analyzer, appMetrics, appLogger))
	analyticsGroup.GET("/time-analysis", timeAnalysisHandler(analyzer, appMetrics, appLogger))
	analyticsGroup.GET("/hourly-pattern", hourlyPatternHandler(analyzer, appMetrics, appLogger))
	analyticsGroup.GET("/daily-summary", dailySummaryHandler(analyzer, appMetrics, appLogger))
	analyticsGroup.GET("/overview", overviewHandler(analyzer, appMetrics, appLogger))

	return r
}

// abortWithError logs the error and sends the structured error response
func abortWithError(c *gin.Context, appErr *apperrors.AppError) {
	apperrors.LogError(c, appErr)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
