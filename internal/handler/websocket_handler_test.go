package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dafibh/nivesh/nivesh-backend/internal/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type mockWorkspaceTokenValidator struct {
	workspaceID int32
	err         error
}

func (m *mockWorkspaceTokenValidator) ValidateToken(token string) (int32, error) {
	return m.workspaceID, m.err
}

type stubClient struct {
	id          string
	workspaceID int32
}

func (s *stubClient) ID() string             { return s.id }
func (s *stubClient) WorkspaceID() int32     { return s.workspaceID }
func (s *stubClient) Send(data []byte) error { return nil }
func (s *stubClient) Close() error           { return nil }

var testAllowedOrigins = []string{"http://localhost:3000", "https://nivesh.app"}

func TestWebSocketHandler_HandleWS_MissingToken(t *testing.T) {
	e := echo.New()
	h := NewWebSocketHandler(websocket.NewHub(), &mockWorkspaceTokenValidator{workspaceID: 1}, nil, testAllowedOrigins)

	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = h.HandleWS(c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWebSocketHandler_HandleWS_InvalidToken(t *testing.T) {
	e := echo.New()
	h := NewWebSocketHandler(websocket.NewHub(), &mockWorkspaceTokenValidator{err: errors.New("bad token")}, nil, testAllowedOrigins)

	req := httptest.NewRequest(http.MethodGet, "/ws?token=invalid-jwt", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = h.HandleWS(c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWebSocketHandler_HandleWS_ValidToken_NoUpgrade(t *testing.T) {
	e := echo.New()
	h := NewWebSocketHandler(websocket.NewHub(), &mockWorkspaceTokenValidator{workspaceID: 42}, nil, testAllowedOrigins)

	req := httptest.NewRequest(http.MethodGet, "/ws?token=valid-jwt", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Auth passes; the upgrade fails without websocket headers
	err := h.HandleWS(c)

	assert.Error(t, err)
	assert.NotEqual(t, http.StatusUnauthorized, rec.Code)
}

func TestWebSocketHandler_HandleWS_TooManyConnections(t *testing.T) {
	e := echo.New()
	hub := websocket.NewHub()
	for i := 0; i < MaxConnectionsPerWorkspace; i++ {
		hub.Register(&stubClient{id: string(rune('a' + i)), workspaceID: 42})
	}
	h := NewWebSocketHandler(hub, &mockWorkspaceTokenValidator{workspaceID: 42}, nil, testAllowedOrigins)

	req := httptest.NewRequest(http.MethodGet, "/ws?token=valid-jwt", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = h.HandleWS(c)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestWebSocketHandler_CheckOrigin(t *testing.T) {
	h := NewWebSocketHandler(websocket.NewHub(), &mockWorkspaceTokenValidator{workspaceID: 1}, nil, testAllowedOrigins)

	tests := []struct {
		name     string
		origin   string
		expected bool
	}{
		{"allowed origin", "http://localhost:3000", true},
		{"allowed origin https", "https://nivesh.app", true},
		{"disallowed origin", "https://evil.com", false},
		{"no origin header", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ws", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			assert.Equal(t, tt.expected, h.checkOrigin(req))
		})
	}
}
