package websocket

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockClient struct {
	id          string
	workspaceID int32
	messages    [][]byte
	mu          sync.Mutex
	closed      bool
}

func newMockClient(id string, workspaceID int32) *mockClient {
	return &mockClient{id: id, workspaceID: workspaceID}
}

func (m *mockClient) ID() string         { return m.id }
func (m *mockClient) WorkspaceID() int32 { return m.workspaceID }

func (m *mockClient) Send(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClientClosed
	}
	m.messages = append(m.messages, data)
	return nil
}

func (m *mockClient) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *mockClient) isClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

func (m *mockClient) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.messages)
}

func (m *mockClient) last() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.messages) == 0 {
		return nil
	}
	return m.messages[len(m.messages)-1]
}

func TestHub_RegisterUnregister(t *testing.T) {
	hub := NewHub()
	a := newMockClient("a", 1)
	b := newMockClient("b", 1)
	c := newMockClient("c", 2)

	hub.Register(a)
	hub.Register(b)
	hub.Register(c)

	assert.Equal(t, 2, hub.ClientCount(1))
	assert.Equal(t, 1, hub.ClientCount(2))
	assert.Equal(t, 0, hub.ClientCount(99))

	hub.Unregister(a)
	hub.Unregister(a)
	assert.Equal(t, 1, hub.ClientCount(1))

	hub.Unregister(b)
	hub.Unregister(c)
	assert.Equal(t, 0, hub.ClientCount(1))
	assert.Equal(t, 0, hub.ClientCount(2))
}

func TestHub_Broadcast_WorkspaceIsolation(t *testing.T) {
	hub := NewHub()
	mine := newMockClient("mine", 1)
	other := newMockClient("other", 2)
	hub.Register(mine)
	hub.Register(other)

	hub.Broadcast(1, PlanUpdated(map[string]interface{}{"monthlyIncome": "50000.00"}))

	require.Eventually(t, func() bool { return mine.count() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, 0, other.count())

	var evt map[string]interface{}
	require.NoError(t, json.Unmarshal(mine.last(), &evt))
	assert.Equal(t, "plan.updated", evt["type"])
	assert.Equal(t, "plan", evt["entity"])
}

func TestHub_Publish(t *testing.T) {
	hub := NewHub()
	client := newMockClient("x", 3)
	hub.Register(client)

	var publisher EventPublisher = hub
	publisher.Publish(3, ProjectionSynced(map[string]int{"score": 55}))

	require.Eventually(t, func() bool { return client.count() == 1 }, time.Second, 5*time.Millisecond)
}

func TestHub_Broadcast_NoClients(t *testing.T) {
	hub := NewHub()
	assert.NotPanics(t, func() {
		hub.Broadcast(42, GoalUpdated(nil))
	})
}

func TestHub_Shutdown(t *testing.T) {
	hub := NewHub()
	a := newMockClient("a", 1)
	b := newMockClient("b", 2)
	hub.Register(a)
	hub.Register(b)

	hub.Shutdown()

	assert.True(t, a.isClosed())
	assert.True(t, b.isClosed())
	assert.Equal(t, 0, hub.ClientCount(1))
}

func TestNoOpPublisher(t *testing.T) {
	var p EventPublisher = &NoOpPublisher{}
	assert.NotPanics(t, func() { p.Publish(1, PlanUpdated(nil)) })
}
