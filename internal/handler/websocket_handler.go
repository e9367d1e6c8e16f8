package handler

import (
	"net/http"

	"github.com/dafibh/nivesh/nivesh-backend/internal/websocket"
	ws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// MaxConnectionsPerWorkspace caps the live plan subscriptions of a single workspace
const MaxConnectionsPerWorkspace = 10

// WorkspaceTokenValidator resolves a bearer token to the workspace it may subscribe to
type WorkspaceTokenValidator interface {
	ValidateToken(token string) (workspaceID int32, err error)
}

// WebSocketHandler upgrades plan subscriptions at GET /ws
type WebSocketHandler struct {
	hub            *websocket.Hub
	validator      WorkspaceTokenValidator
	refresh        websocket.RefreshFunc
	allowedOrigins map[string]bool
	upgrader       ws.Upgrader
}

// NewWebSocketHandler creates a new WebSocketHandler. refresh serves clients' projection.refresh
// requests and may be nil.
func NewWebSocketHandler(hub *websocket.Hub, validator WorkspaceTokenValidator, refresh websocket.RefreshFunc, allowedOrigins []string) *WebSocketHandler {
	origins := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		origins[origin] = true
	}

	h := &WebSocketHandler{
		hub:            hub,
		validator:      validator,
		refresh:        refresh,
		allowedOrigins: origins,
	}
	h.upgrader = ws.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}

// checkOrigin accepts non-browser clients that send no Origin header
func (h *WebSocketHandler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || h.allowedOrigins[origin] {
		return true
	}

	log.Warn().Str("origin", origin).Msg("WebSocket connection rejected: origin not allowed")
	return false
}

// HandleWS subscribes the caller to plan, goal and projection events of their workspace
// @Summary Subscribe to plan events
// @Tags realtime
// @Param token query string true "Access token"
// @Success 101
// @Failure 401 {object} ProblemDetails
// @Failure 429 {object} ProblemDetails
// @Router /ws [get]
func (h *WebSocketHandler) HandleWS(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		log.Debug().Msg("WebSocket connection rejected: missing token")
		return NewUnauthorizedError(c, "Missing token")
	}

	workspaceID, err := h.validator.ValidateToken(token)
	if err != nil {
		log.Debug().Err(err).Msg("WebSocket connection rejected: invalid token")
		return NewUnauthorizedError(c, "Invalid token")
	}

	if h.hub.ClientCount(workspaceID) >= MaxConnectionsPerWorkspace {
		log.Warn().Int32("workspace_id", workspaceID).Msg("WebSocket connection rejected: too many connections")
		return c.JSON(http.StatusTooManyRequests, ProblemDetails{
			Type:     ErrorTypeRateLimit,
			Title:    "Too Many Requests",
			Status:   http.StatusTooManyRequests,
			Detail:   "Too many open connections for this workspace",
			Instance: c.Request().URL.Path,
		})
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Error().Err(err).Int32("workspace_id", workspaceID).Msg("WebSocket upgrade failed")
		return err
	}

	client := websocket.NewClient(conn, workspaceID, h.hub, h.refresh)
	h.hub.Register(client)

	log.Info().
		Int32("workspace_id", workspaceID).
		Str("client_id", client.ID()).
		Msg("WebSocket client connected")

	go client.WritePump()
	go client.ReadPump()

	return nil
}
