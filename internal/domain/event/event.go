// Package event defines the change notifications emitted after successful writes.
package event

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Type names a change.
type Type string

const (
	OwnerCreated    Type = "owner.created"
	OwnerUpdated    Type = "owner.updated"
	OwnerDeleted    Type = "owner.deleted"
	PropertyCreated Type = "property.created"
	PropertyUpdated Type = "property.updated"
	PropertyDeleted Type = "property.deleted"
)

// Event is the message published for a change.
type Event struct {
	ID          string      `json:"id"`
	Type        Type        `json:"type"`
	AggregateID string      `json:"aggregateId"`
	OccurredAt  time.Time   `json:"occurredAt"`
	Payload     interface{} `json:"payload,omitempty"`
}

// New creates an event with a random ID.
func New(eventType Type, aggregateID string, payload interface{}, now time.Time) Event {
	return Event{
		ID:          uuid.NewString(),
		Type:        eventType,
		AggregateID: aggregateID,
		OccurredAt:  now.UTC(),
		Payload:     payload,
	}
}

// Publisher delivers events. Callers treat failures as non-fatal.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}
