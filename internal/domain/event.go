package domain

import (
	"context"
	"time"
)

// Event is an entity that hosts registrations (e.g. a "node" of bundle "conference").
// swagger:model Event
type Event struct {
	ID         string    `json:"id"`
	EntityType string    `json:"entity_type"`
	Bundle     string    `json:"bundle"`
	Name       string    `json:"name"`
	ReplyTo    string    `json:"reply_to,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// EventMeta is event-level settings resolved by the EventManager.
type EventMeta struct {
	EventID string
	ReplyTo string
}

// EventRepository reads stored events.
type EventRepository interface {
	GetByID(ctx context.Context, id string) (*Event, error)
}

// EventManager resolves event metadata such as the reply-to address.
type EventManager interface {
	GetMeta(ctx context.Context, event *Event) (*EventMeta, error)
}
