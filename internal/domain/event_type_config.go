package domain

import "context"

// EventTypeConfig is the registration configuration for one event type
// (entity type + bundle).
// swagger:model EventTypeConfig
type EventTypeConfig struct {
	ID         string         `json:"id"`
	EntityType string         `json:"entity_type"`
	Bundle     string         `json:"bundle"`
	Label      string         `json:"label"`
	Settings   map[string]any `json:"settings"`
}

// EventTypeConfigRepository defines storage for event type configurations.
type EventTypeConfigRepository interface {
	GetByID(ctx context.Context, id string) (*EventTypeConfig, error)
	// List returns one page ordered by label and the total number of configurations.
	List(ctx context.Context, params PaginationParams) ([]*EventTypeConfig, int, error)
	// Delete removes the configuration together with all registrations (and
	// their registrants) of events of that type. Returns ErrNotFound when the
	// configuration does not exist.
	Delete(ctx context.Context, id string) error
}

// Confirmation workflow states.
const (
	ConfirmationAwaiting  = "awaiting_confirmation"
	ConfirmationDeleted   = "deleted"
	ConfirmationCancelled = "cancelled"
)

// EventTypeConfigOverviewRoute is where the deletion workflow redirects on
// confirm and on cancel.
const EventTypeConfigOverviewRoute = "/event-types"

// DeletionPrompt is the confirmation question shown before deleting a configuration.
// swagger:model DeletionPrompt
type DeletionPrompt struct {
	ConfigID    string `json:"config_id"`
	Question    string `json:"question"`
	ConfirmText string `json:"confirm_text"`
	CancelRoute string `json:"cancel_route"`
	State       string `json:"state"`
}

// DeletionResult is the terminal outcome of the confirmation workflow.
// swagger:model DeletionResult
type DeletionResult struct {
	ConfigID string `json:"config_id"`
	State    string `json:"state"`
	Notice   string `json:"notice,omitempty"`
	Redirect string `json:"redirect"`
}

// EventTypeConfigService drives the configuration overview and deletion workflow.
type EventTypeConfigService interface {
	List(ctx context.Context, params PaginationParams) ([]*EventTypeConfig, int, error)
	Prompt(ctx context.Context, configID string) (*DeletionPrompt, error)
	Confirm(ctx context.Context, configID string) (*DeletionResult, error)
	Cancel(ctx context.Context, configID string) (*DeletionResult, error)
}
