package domain

import (
	"context"
	"time"
)

// Registration is one signup for an event. Event is nil when the referenced
// event could not be resolved.
// swagger:model Registration
type Registration struct {
	ID          string        `json:"id"`
	EventID     string        `json:"event_id"`
	Event       *Event        `json:"event,omitempty"`
	Registrants []*Registrant `json:"registrants"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// Registrant associates an identity with a registration.
// swagger:model Registrant
type Registrant struct {
	ID             string    `json:"id"`
	RegistrationID string    `json:"registration_id"`
	Identity       *Identity `json:"identity"`
}

// Identity is an addressable message recipient.
// swagger:model Identity
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	// Channels lists the preferred delivery channels in order. Empty means email only.
	Channels []string `json:"channels,omitempty"`
}

// GetIdentity returns the registrant's addressable identity.
func (r *Registrant) GetIdentity() *Identity {
	return r.Identity
}

// PreferredChannels returns the identity's channel preference, defaulting to email.
func (i *Identity) PreferredChannels() []string {
	if len(i.Channels) == 0 {
		return []string{ChannelEmail}
	}
	return i.Channels
}

// RegistrationRepository defines read access to registrations.
type RegistrationRepository interface {
	// ListByIDs returns registrations with their registrants and events, in the
	// order of ids. Unknown ids are skipped; registrations whose event is gone
	// have a nil Event.
	ListByIDs(ctx context.Context, ids []string) ([]*Registration, error)
}
