package websocket

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType represents what happened to an entity
type EventType string

const (
	EventTypeUpdated EventType = "updated"
	EventTypeSynced  EventType = "synced"
)

// EntityType represents the entity an event is about
type EntityType string

const (
	EntityTypePlan       EntityType = "plan"
	EntityTypeGoal       EntityType = "goal"
	EntityTypeProjection EntityType = "projection"
)

// Event is the message pushed to clients.
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string      `json:"type"`
	Entity    EntityType  `json:"entity"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewEvent creates an event with a combined "entity.type" name
func NewEvent(eventType EventType, entityType EntityType, payload interface{}) Event {
	return Event{
		Type:      fmt.Sprintf("%s.%s", entityType, eventType),
		Entity:    entityType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// PlanUpdated creates a plan.updated event
func PlanUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypePlan, payload)
}

// GoalUpdated creates a goal.updated event
func GoalUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeGoal, payload)
}

// ProjectionSynced creates a projection.synced event
func ProjectionSynced(payload interface{}) Event {
	return NewEvent(EventTypeSynced, EntityTypeProjection, payload)
}
