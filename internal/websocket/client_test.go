package websocket

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_HandleMessage_Refresh(t *testing.T) {
	var refreshed []int32
	c := NewClient(nil, 7, NewHub(), func(workspaceID int32) error {
		refreshed = append(refreshed, workspaceID)
		return nil
	})

	assert.True(t, c.HandleMessage([]byte(`{"type":"projection.refresh"}`)))
	assert.Equal(t, []int32{7}, refreshed)
}

func TestClient_HandleMessage_Throttled(t *testing.T) {
	calls := 0
	c := NewClient(nil, 7, NewHub(), func(int32) error {
		calls++
		return nil
	})

	assert.True(t, c.HandleMessage([]byte(`{"type":"projection.refresh"}`)))
	assert.False(t, c.HandleMessage([]byte(`{"type":"projection.refresh"}`)))
	assert.Equal(t, 1, calls)
}

func TestClient_HandleMessage_Ignored(t *testing.T) {
	calls := 0
	c := NewClient(nil, 7, NewHub(), func(int32) error {
		calls++
		return nil
	})

	assert.False(t, c.HandleMessage([]byte(`not json`)))
	assert.False(t, c.HandleMessage([]byte(`{"type":"plan.delete"}`)))
	assert.Equal(t, 0, calls)

	noRefresh := NewClient(nil, 7, NewHub(), nil)
	assert.False(t, noRefresh.HandleMessage([]byte(`{"type":"projection.refresh"}`)))
}

func TestClient_HandleMessage_RefreshError(t *testing.T) {
	c := NewClient(nil, 7, NewHub(), func(int32) error {
		return errors.New("plan not found")
	})

	assert.False(t, c.HandleMessage([]byte(`{"type":"projection.refresh"}`)))
}

func TestClient_SendAfterClose(t *testing.T) {
	c := NewClient(nil, 7, NewHub(), nil)

	require.NoError(t, c.Send([]byte("event")))
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())

	assert.ErrorIs(t, c.Send([]byte("event")), ErrClientClosed)
}
