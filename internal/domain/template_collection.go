package domain

import (
	"context"
	"maps"
)

// Delivery channel identifiers.
const (
	ChannelEmail = "courier_email"
	ChannelLog   = "courier_log"
)

// Token names set by the dispatch action.
const (
	TokenRegistration = "registration"
	TokenIdentity     = "identity"
)

// MessageTemplate is the content of a message for one channel.
// swagger:model MessageTemplate
type MessageTemplate struct {
	ID           string `json:"id"`
	CollectionID string `json:"collection_id"`
	Channel      string `json:"channel"`
	Subject      string `json:"subject"`
	Body         string `json:"body"`
}

// TemplateCollection groups one template per channel. Tokens hold values
// substituted at render time and are never persisted.
// swagger:model TemplateCollection
type TemplateCollection struct {
	ID        string             `json:"id"`
	Templates []*MessageTemplate `json:"templates"`
	Tokens    map[string]any     `json:"-"`
}

// NewTemplateCollection returns an empty, unsaved collection.
func NewTemplateCollection() *TemplateCollection {
	return &TemplateCollection{Tokens: map[string]any{}}
}

// SetTokenValue sets the named token.
func (c *TemplateCollection) SetTokenValue(name string, value any) {
	if c.Tokens == nil {
		c.Tokens = map[string]any{}
	}
	c.Tokens[name] = value
}

// TokenValue returns the named token and whether it is set.
func (c *TemplateCollection) TokenValue(name string) (any, bool) {
	v, ok := c.Tokens[name]
	return v, ok
}

// TemplateForChannel returns the collection's template for channel, or nil.
func (c *TemplateCollection) TemplateForChannel(channel string) *MessageTemplate {
	for _, t := range c.Templates {
		if t.Channel == channel {
			return t
		}
	}
	return nil
}

// Clone returns an independent copy. Templates and the token map are copied;
// token values themselves are shared.
func (c *TemplateCollection) Clone() *TemplateCollection {
	out := &TemplateCollection{
		ID:        c.ID,
		Templates: make([]*MessageTemplate, 0, len(c.Templates)),
		Tokens:    maps.Clone(c.Tokens),
	}
	if out.Tokens == nil {
		out.Tokens = map[string]any{}
	}
	for _, t := range c.Templates {
		cp := *t
		out.Templates = append(out.Templates, &cp)
	}
	return out
}

// TemplateCollectionRepository defines storage for template collections.
type TemplateCollectionRepository interface {
	// Create persists a new collection and sets its ID.
	Create(ctx context.Context, c *TemplateCollection) error
	// Save persists the collection's templates, assigning IDs to new ones.
	Save(ctx context.Context, c *TemplateCollection) error
	GetByID(ctx context.Context, id string) (*TemplateCollection, error)
	Delete(ctx context.Context, id string) error
}

// SendOptions carries per-send delivery settings keyed by channel,
// e.g. Channels["courier_email"]["reply_to"].
type SendOptions struct {
	Channels map[string]map[string]string `json:"channels,omitempty"`
}

// Set stores a channel option.
func (o *SendOptions) Set(channel, key, value string) {
	if o.Channels == nil {
		o.Channels = map[string]map[string]string{}
	}
	if o.Channels[channel] == nil {
		o.Channels[channel] = map[string]string{}
	}
	o.Channels[channel][key] = value
}

// Get returns a channel option.
func (o SendOptions) Get(channel, key string) (string, bool) {
	v, ok := o.Channels[channel][key]
	return v, ok
}

// ChannelInfo describes a delivery channel known to the messaging manager.
type ChannelInfo struct {
	ID    string
	Label string
	// Editable reports whether templates of this channel have an editor.
	Editable bool
}

// MessageManager creates default templates and delivers messages.
type MessageManager interface {
	// AddTemplates adds a default template for every channel missing from c.
	AddTemplates(ctx context.Context, c *TemplateCollection) error
	SendMessage(ctx context.Context, c *TemplateCollection, identity *Identity, options SendOptions) error
	Channel(id string) (ChannelInfo, bool)
}
