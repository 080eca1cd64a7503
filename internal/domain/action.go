package domain

import "context"

// Action plugin identifiers.
const (
	MessageActionPluginID  = "rng_courier_message"
	ActionTypeRegistration = "registration"
)

// ActionSettings is the plugin configuration of an action.
type ActionSettings struct {
	// TemplateCollection is set once on the first form submission and never changes.
	TemplateCollection *string `json:"template_collection"`
}

// ActionConfiguration is a persisted instance of an action plugin.
// swagger:model ActionConfiguration
type ActionConfiguration struct {
	ID            string         `json:"id"`
	PluginID      string         `json:"plugin_id"`
	Label         string         `json:"label"`
	Type          string         `json:"type"`
	Configuration ActionSettings `json:"configuration"`
}

// ActionConfigRepository defines storage for action configurations.
type ActionConfigRepository interface {
	Create(ctx context.Context, a *ActionConfiguration) error
	GetByID(ctx context.Context, id string) (*ActionConfiguration, error)
	// ClaimTemplateCollection sets the action's template collection only if it
	// has none. It returns ErrAlreadyConfigured if another collection won.
	ClaimTemplateCollection(ctx context.Context, actionID, collectionID string) error
}

// ChannelItem is one entry of the action configuration form.
// swagger:model ChannelItem
type ChannelItem struct {
	Channel    string `json:"channel"`
	Label      string `json:"label"`
	TemplateID string `json:"template_id"`
	// EditURL is empty when the channel has no editor; render as plain text.
	EditURL string `json:"edit_url,omitempty"`
}

// ConfigurationForm is the read-only listing of an action's templates.
// swagger:model ConfigurationForm
type ConfigurationForm struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Channels    []ChannelItem `json:"channels"`
}

// MessageActionService manages and executes message dispatch actions.
type MessageActionService interface {
	CreateAction(ctx context.Context, label string) (*ActionConfiguration, error)
	GetAction(ctx context.Context, actionID string) (*ActionConfiguration, error)
	BuildConfigurationForm(ctx context.Context, actionID string) (*ConfigurationForm, error)
	SubmitConfigurationForm(ctx context.Context, actionID string) (*ActionConfiguration, error)
	// UpdateTemplate edits the subject and body of one channel's template.
	UpdateTemplate(ctx context.Context, actionID, channel, subject, body string) (*MessageTemplate, error)
	// ExecuteForRegistrations loads registrations in the given order and dispatches.
	ExecuteForRegistrations(ctx context.Context, actionID string, registrationIDs []string) (*DispatchSummary, error)
}

// DispatchSummary describes what an execution attempted. Individual send
// failures are not reported.
// swagger:model DispatchSummary
type DispatchSummary struct {
	BatchID       string `json:"batch_id"`
	Registrations int    `json:"registrations"`
	Attempted     int    `json:"attempted"`
}
