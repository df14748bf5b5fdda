package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"github.com/sanikac1014/Altu-health-app/internal/ai"
	"github.com/sanikac1014/Altu-health-app/internal/api/handlers"
	"github.com/sanikac1014/Altu-health-app/internal/api/middleware"
	"github.com/sanikac1014/Altu-health-app/internal/api/routes"
	"github.com/sanikac1014/Altu-health-app/internal/domain/assistant"
	"github.com/sanikac1014/Altu-health-app/internal/domain/metrics"
	"github.com/sanikac1014/Altu-health-app/internal/infrastructure/cache"
	"github.com/sanikac1014/Altu-health-app/internal/infrastructure/dataset"
	"github.com/sanikac1014/Altu-health-app/pkg/config"
	"github.com/sanikac1014/Altu-health-app/pkg/logger"
)

// RequestLoggerMiddleware logs all incoming HTTP requests
func RequestLoggerMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		log.Info("Request completed",
			zap.String("path", path),
			zap.String("method", method),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("") // Empty string will make it search in default locations
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	log := logger.NewLogger(cfg.Logging.Level)
	defer log.Sync()

	log.Info("Configuration loaded successfully")
	log.Info("Server mode: " + cfg.Server.Mode)

	// Set up Gin
	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	gin.DefaultWriter = os.Stdout

	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(RequestLoggerMiddleware(log))
	router.Use(middleware.NewMetricsMiddleware().CollectMetrics())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	// Add Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Load the two static datasets. Missing or malformed files degrade to
	// empty datasets; the server still starts.
	store := dataset.NewStore(log)
	store.Load(cfg.Datasets.HealthPath, cfg.Datasets.ScreenTimePath)
	middleware.SetDatasetRecords("health", len(store.HealthRecords(context.Background())))
	middleware.SetDatasetRecords("screen_time", len(store.ScreenTimeRecords(context.Background())))

	// Initialize Redis if caching is enabled. The dashboard works without
	// it; responses are just recomputed per request.
	var redisClient *cache.RedisClient
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedisClient(cache.NewConfigFromEnv(cfg), log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
	}

	cacheMiddleware := middleware.NewCacheMiddleware(redisClient, "altu", cfg.Cache.TTL, log)

	// Initialize logrus logger for the chat-completion client
	aiLogger := logrus.New()
	aiLogger.SetFormatter(&logrus.JSONFormatter{})
	if cfg.Server.Mode == "production" {
		aiLogger.SetLevel(logrus.InfoLevel)
	} else {
		aiLogger.SetLevel(logrus.DebugLevel)
	}

	completer := ai.NewClient(ai.ClientConfig{
		BaseURL:     cfg.Assistant.BaseURL,
		APIKey:      cfg.Assistant.APIKey,
		Model:       cfg.Assistant.Model,
		Temperature: cfg.Assistant.Temperature,
		Logger:      aiLogger,
	})
	if cfg.Assistant.APIKey == "" {
		log.Warn("No assistant API key configured; /api/assistant/ask will return setup instructions")
	}

	// Initialize services
	metricsService := metrics.NewService(store, log)
	assistantService := assistant.NewService(assistant.Config{
		Completer:        completer,
		Metrics:          metricsService,
		Source:           store,
		Logger:           log,
		ChartMaxTokens:   cfg.Assistant.ChartMaxTokens,
		GeneralMaxTokens: cfg.Assistant.GeneralMaxTokens,
	})

	// Initialize handlers
	dashboardHandler := handlers.NewDashboardHandler(metricsService)
	assistantHandler := handlers.NewAssistantHandler(assistantService)

	// Health check routes (no /api prefix as these are system endpoints)
	routes.SetupHealthRoutes(router)
	log.Info("Registered health check routes at /health and /health/ready")

	// Add cache health check
	router.GET("/health/cache", func(c *gin.Context) {
		if redisClient == nil {
			c.JSON(http.StatusOK, gin.H{
				"status":    "disabled",
				"component": "cache",
			})
			return
		}
		if err := redisClient.HealthCheck(c); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"component": "cache",
				"error":     err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"component": "cache",
			"metrics":   redisClient.ExportMetrics(),
		})
	})

	// Dashboard routes
	dashboardRoutes := routes.NewDashboardRoutes(dashboardHandler)
	dashboardRoutes.RegisterRoutes(router, cacheMiddleware)
	log.Info("Registered dashboard routes at /api/dashboard")

	// Assistant routes
	assistantRoutes := routes.NewAssistantRoutes(assistantHandler)
	assistantRoutes.RegisterRoutes(router)
	log.Info("Registered assistant routes at /api/assistant")

	// Start server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info(fmt.Sprintf("Server starting on port %d", cfg.Server.Port))

		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited properly")
}
