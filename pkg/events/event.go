package events

import (
	"time"

	"github.com/google/uuid"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "ORDER_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the generic implementation every publisher uses.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewOrderCreated builds the event emitted when checkout creates an order.
func NewOrderCreated(orderId uuid.UUID, userId *uuid.UUID, email string, total float64) Event {
	data := map[string]interface{}{
		"order_id": orderId,
		"email":    email,
		"total":    total,
	}
	if userId != nil {
		data["user_id"] = *userId
	}
	return BaseEvent{
		Type:       "ORDER_CREATED",
		Data:       data,
		OccurredAt: time.Now(),
	}
}
