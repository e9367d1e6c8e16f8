package handler

import (
	"github.com/dafibh/nivesh/nivesh-backend/internal/middleware"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handlers groups every HTTP handler the API serves
type Handlers struct {
	Auth       *AuthHandler
	Plan       *PlanHandler
	Projection *ProjectionHandler
	Report     *ReportHandler
	WebSocket  *WebSocketHandler
}

// RegisterRoutes sets up all API routes.
// Projection and report routes are rate limited per user when a limiter is given.
func RegisterRoutes(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter, h Handlers) {
	// API version 1
	api := e.Group("/api/v1")

	// Auth routes; the callback runs before a workspace exists
	auth := api.Group("/auth")
	auth.POST("/callback", h.Auth.Callback, authMiddleware.AuthenticateWithoutWorkspace())
	auth.GET("/me", h.Auth.Me, authMiddleware.Authenticate())

	// Plan routes (protected)
	plan := api.Group("/plan")
	plan.Use(authMiddleware.Authenticate())
	plan.GET("", h.Plan.GetPlan)
	plan.PUT("/financials", h.Plan.UpdateFinancials)
	plan.PUT("/goals/:id", h.Plan.UpdateGoal)
	plan.PATCH("/goals/:id/progress", h.Plan.UpdateGoalProgress)

	// Projection routes (protected, rate limited)
	projections := api.Group("/projections")
	projections.Use(authMiddleware.Authenticate())
	if rateLimiter != nil {
		projections.Use(middleware.RateLimitMiddleware(rateLimiter))
	}
	projections.GET("", h.Projection.GetReport)
	projections.GET("/wealth", h.Projection.GetWealthProjection)
	projections.GET("/goals/:id", h.Projection.GetGoal)
	projections.GET("/wellness", h.Projection.GetWellness)
	projections.GET("/inflation", h.Projection.GetInflationOutlook)

	// Report export routes (protected, rate limited)
	reports := api.Group("/reports")
	reports.Use(authMiddleware.Authenticate())
	if rateLimiter != nil {
		reports.Use(middleware.RateLimitMiddleware(rateLimiter))
	}
	reports.POST("", h.Report.Export)

	// WebSocket authenticates with a query token
	if h.WebSocket != nil {
		e.GET("/ws", h.WebSocket.HandleWS)
	}

	// API documentation
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/openapi.json", ServeOpenAPI3Spec)
}
