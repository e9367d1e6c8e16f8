package websocket

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventConstructors(t *testing.T) {
	tests := []struct {
		name     string
		event    Event
		wantType string
		entity   EntityType
	}{
		{"plan updated", PlanUpdated(nil), "plan.updated", EntityTypePlan},
		{"goal updated", GoalUpdated(nil), "goal.updated", EntityTypeGoal},
		{"projection synced", ProjectionSynced(nil), "projection.synced", EntityTypeProjection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.event.Type)
			assert.Equal(t, tt.entity, tt.event.Entity)
			assert.False(t, tt.event.Timestamp.IsZero())
		})
	}
}

func TestEvent_ToJSON(t *testing.T) {
	evt := GoalUpdated(map[string]string{"id": "retirement"})

	data, err := evt.ToJSON()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "goal.updated", decoded["type"])
	assert.Equal(t, "retirement", decoded["payload"].(map[string]interface{})["id"])
	assert.Contains(t, decoded, "timestamp")
}
