package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"eventregistration/internal/domain"
)

const (
	configurationFormTitle       = "Edit templates"
	configurationFormDescription = "Registrants have an option to choose which channel they will receive the message.\nEach template requires content suitable to the channel."
)

// MessageAction is the "Send message" action for registrations. It owns a
// reference to one template collection and fans messages out to registrants.
type MessageAction struct {
	collections domain.TemplateCollectionRepository
	actions     domain.ActionConfigRepository
	events      domain.EventManager
	courier     domain.MessageManager
	logger      *slog.Logger
	metrics     *DispatchMetrics
}

// NewMessageAction wires the action to its collaborators.
func NewMessageAction(
	collections domain.TemplateCollectionRepository,
	actions domain.ActionConfigRepository,
	events domain.EventManager,
	courier domain.MessageManager,
	logger *slog.Logger,
	metrics *DispatchMetrics,
) *MessageAction {
	return &MessageAction{
		collections: collections,
		actions:     actions,
		events:      events,
		courier:     courier,
		logger:      logger,
		metrics:     metrics,
	}
}

// DefaultConfiguration returns a configuration without a template collection.
func (a *MessageAction) DefaultConfiguration() domain.ActionSettings {
	return domain.ActionSettings{TemplateCollection: nil}
}

// Access always denies. Callers that execute the action gate access themselves.
func (a *MessageAction) Access(_ context.Context, _ string) bool {
	return false
}

// GetTemplateCollection loads the action's collection. It returns nil, nil
// when none is configured or the stored reference is dangling.
func (a *MessageAction) GetTemplateCollection(ctx context.Context, cfg *domain.ActionConfiguration) (*domain.TemplateCollection, error) {
	id := cfg.Configuration.TemplateCollection
	if id == nil {
		return nil, nil
	}
	c, err := a.collections.GetByID(ctx, *id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.logger.WarnContext(ctx, "template collection missing", "action_id", cfg.ID, "template_collection", *id)
			return nil, nil
		}
		return nil, fmt.Errorf("get template collection: %w", err)
	}
	return c, nil
}

// BuildConfigurationForm lists the channels of the action's collection.
func (a *MessageAction) BuildConfigurationForm(ctx context.Context, cfg *domain.ActionConfiguration) (*domain.ConfigurationForm, error) {
	form := &domain.ConfigurationForm{
		Title:       configurationFormTitle,
		Description: configurationFormDescription,
		Channels:    []domain.ChannelItem{},
	}
	c, err := a.GetTemplateCollection(ctx, cfg)
	if err != nil || c == nil {
		return form, err
	}
	for _, t := range c.Templates {
		item := domain.ChannelItem{Channel: t.Channel, Label: t.Channel, TemplateID: t.ID}
		if info, ok := a.courier.Channel(t.Channel); ok {
			item.Label = info.Label
			if info.Editable {
				item.EditURL = templateEditURL(cfg.ID, t.Channel)
			}
		}
		form.Channels = append(form.Channels, item)
	}
	return form, nil
}

func templateEditURL(actionID, channel string) string {
	return fmt.Sprintf("/actions/%s/templates/%s", actionID, channel)
}

// SubmitConfigurationForm creates the action's template collection if it has
// none. The claim on the action is a compare-and-swap, so concurrent
// submissions still leave exactly one collection; the loser deletes its own.
func (a *MessageAction) SubmitConfigurationForm(ctx context.Context, cfg *domain.ActionConfiguration) error {
	if cfg.Configuration.TemplateCollection != nil {
		return nil
	}

	c := domain.NewTemplateCollection()
	if err := a.collections.Create(ctx, c); err != nil {
		return fmt.Errorf("create template collection: %w", err)
	}
	if err := a.actions.ClaimTemplateCollection(ctx, cfg.ID, c.ID); err != nil {
		if derr := a.collections.Delete(ctx, c.ID); derr != nil {
			a.logger.WarnContext(ctx, "failed to delete unclaimed template collection", "template_collection", c.ID, "err", derr)
		}
		if !errors.Is(err, domain.ErrAlreadyConfigured) {
			return fmt.Errorf("claim template collection: %w", err)
		}
		current, err := a.actions.GetByID(ctx, cfg.ID)
		if err != nil {
			return fmt.Errorf("reload action: %w", err)
		}
		cfg.Configuration = current.Configuration
		return nil
	}

	id := c.ID
	cfg.Configuration.TemplateCollection = &id
	a.logger.InfoContext(ctx, "template collection created", "action_id", cfg.ID, "template_collection", id)

	if err := a.courier.AddTemplates(ctx, c); err != nil {
		return fmt.Errorf("add templates: %w", err)
	}
	if err := a.collections.Save(ctx, c); err != nil {
		return fmt.Errorf("save template collection: %w", err)
	}
	return nil
}

// Execute sends the action's message to every registrant of registrations,
// in order. Individual send failures are logged, never returned; the error
// result only covers loading the template collection and cancellation.
func (a *MessageAction) Execute(ctx context.Context, cfg *domain.ActionConfiguration, registrations []*domain.Registration) error {
	_, err := a.dispatch(ctx, uuid.NewString(), cfg, registrations)
	return err
}

// dispatch returns the number of send attempts.
//
// Event-level values (reply-to, event token) are resolved once per event and
// composed into a fresh clone for each registration, so the canonical
// collection is never mutated and a registration without an event never
// carries another registration's event token.
func (a *MessageAction) dispatch(ctx context.Context, batchID string, cfg *domain.ActionConfiguration, registrations []*domain.Registration) (int, error) {
	canonical, err := a.GetTemplateCollection(ctx, cfg)
	if err != nil {
		return 0, err
	}
	if canonical == nil {
		a.logger.DebugContext(ctx, "no template collection, nothing to send", "action_id", cfg.ID)
		return 0, nil
	}
	a.metrics.observeBatch()

	log := a.logger.With("action_id", cfg.ID, "batch_id", batchID)
	metas := make(map[string]*domain.EventMeta)
	attempted := 0

	for _, reg := range registrations {
		if err := ctx.Err(); err != nil {
			return attempted, err
		}

		var options domain.SendOptions
		collection := canonical.Clone()
		if event := reg.Event; event != nil {
			meta, seen := metas[event.ID]
			if !seen {
				meta, err = a.events.GetMeta(ctx, event)
				if err != nil {
					log.WarnContext(ctx, "event meta unavailable", "event_id", event.ID, "err", err)
					meta = nil
				}
				metas[event.ID] = meta
			}
			if meta != nil {
				options.Set(domain.ChannelEmail, ReplyToOption, meta.ReplyTo)
			}
			collection.SetTokenValue(event.EntityType, event)
		}
		collection.SetTokenValue(domain.TokenRegistration, reg)

		for _, registrant := range reg.Registrants {
			identity := registrant.GetIdentity()
			if identity == nil {
				log.WarnContext(ctx, "registrant without identity", "registration_id", reg.ID, "registrant_id", registrant.ID)
				continue
			}
			attempted++
			if err := a.courier.SendMessage(ctx, collection, identity, options); err != nil {
				log.WarnContext(ctx, "message not sent",
					"registration_id", reg.ID,
					"identity", identity.ID,
					"err", err,
				)
			}
		}
	}
	log.InfoContext(ctx, "dispatch finished", "registrations", len(registrations), "attempted", attempted)
	return attempted, nil
}
