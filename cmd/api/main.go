// @title Nivesh API
// @version 1.0
// @description Financial planning API: plans, goals, wealth projections and wellness scores.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dafibh/nivesh/nivesh-backend/internal/config"
	"github.com/dafibh/nivesh/nivesh-backend/internal/handler"
	"github.com/dafibh/nivesh/nivesh-backend/internal/middleware"
	"github.com/dafibh/nivesh/nivesh-backend/internal/repository/postgres"
	"github.com/dafibh/nivesh/nivesh-backend/internal/repository/storage"
	"github.com/dafibh/nivesh/nivesh-backend/internal/service"
	"github.com/dafibh/nivesh/nivesh-backend/internal/util"
	"github.com/dafibh/nivesh/nivesh-backend/internal/websocket"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping database")
	}
	log.Info().Msg("Connected to database")

	// Repositories
	userRepo := postgres.NewUserRepository(pool)
	workspaceRepo := postgres.NewWorkspaceRepository(pool)
	planRepo := postgres.NewPlanRepository(pool)

	// Report storage is optional; exports answer 503 without it
	var reportStorage storage.ReportRepository
	if cfg.S3.Enabled() {
		s3Repo, err := storage.NewS3ReportRepository(context.Background(), cfg.S3)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize report storage")
		}
		reportStorage = s3Repo
		log.Info().Str("bucket", cfg.S3.Bucket).Msg("Report export enabled")
	} else {
		log.Warn().Msg("S3_BUCKET not set, report export disabled")
	}

	hub := websocket.NewHub()

	// Services
	authService := service.NewAuthService(userRepo, workspaceRepo, planRepo)
	planService := service.NewPlanService(planRepo, hub)
	projectionService := service.NewProjectionService(planService, util.SystemClock)
	reportService := service.NewReportService(projectionService, reportStorage, cfg.S3.URLExpiry)

	workspaceProvider := &workspaceProviderAdapter{authService: authService}

	authMiddleware, err := middleware.NewAuthMiddleware(cfg.Auth0Domain, cfg.Auth0Audience, workspaceProvider)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create auth middleware")
	}

	wsValidator, err := websocket.NewAuth0JWTValidator(cfg.Auth0Domain, cfg.Auth0Audience, workspaceProvider)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create websocket validator")
	}

	rateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimitPerMinute, cfg.RateLimitBurst)
	defer rateLimiter.Stop()

	worker := service.NewProjectionWorker(projectionService, planRepo, hub, log.Logger, service.ProjectionWorkerConfig{
		Interval: cfg.ProjectionSyncInterval,
	})
	workerCtx, cancelWorker := context.WithCancel(context.Background())
	defer cancelWorker()
	worker.Start(workerCtx)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.RequestID())

	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Security headers (helmet-like)
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'self'",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	}))

	e.Use(zerologMiddleware())
	e.Use(echomiddleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":         "ok",
			"reportsEnabled": reportService.IsEnabled(),
			"workerRunning":  worker.IsRunning(),
		})
	})

	handler.RegisterRoutes(e, authMiddleware, rateLimiter, handler.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Plan:       handler.NewPlanHandler(planService),
		Projection: handler.NewProjectionHandler(projectionService),
		Report:     handler.NewReportHandler(reportService),
		WebSocket:  handler.NewWebSocketHandler(hub, wsValidator, worker.SyncWorkspace, cfg.CORSOrigins),
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	worker.Stop()
	hub.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// workspaceProviderAdapter adapts AuthService to middleware.WorkspaceProvider and websocket.WorkspaceLookup
type workspaceProviderAdapter struct {
	authService *service.AuthService
}

func (a *workspaceProviderAdapter) GetWorkspaceByAuth0ID(auth0ID string) (int32, error) {
	workspace, err := a.authService.GetWorkspaceByAuth0ID(auth0ID)
	if err != nil {
		return 0, err
	}
	return workspace.ID, nil
}

// zerologMiddleware logs requests using zerolog
func zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			event := log.Info()
			if res.Status >= http.StatusInternalServerError {
				event = log.Error()
			}
			event.
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Str("auth0_id", middleware.GetAuth0ID(c)).
				Msg("request")

			return nil
		}
	}
}
