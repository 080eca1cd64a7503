package services

import (
	"context"
	"fmt"
	"log/slog"
	"maps"

	"github.com/google/uuid"

	"eventregistration/internal/domain"
)

// ReplyToOption is the email channel option holding the reply-to address.
const ReplyToOption = "reply_to"

type deliverFunc func(ctx context.Context, identity *domain.Identity, msg *domain.RenderedMessage, options domain.SendOptions) error

type courierChannel struct {
	info    domain.ChannelInfo
	deliver deliverFunc
}

type courierManager struct {
	renderer domain.TemplateRenderer
	mailer   domain.Mailer
	logger   *slog.Logger
	metrics  *DispatchMetrics
	channels []courierChannel
}

// NewCourierManager returns the MessageManager with the email and log channels.
func NewCourierManager(renderer domain.TemplateRenderer, mailer domain.Mailer, logger *slog.Logger, metrics *DispatchMetrics) domain.MessageManager {
	m := &courierManager{
		renderer: renderer,
		mailer:   mailer,
		logger:   logger,
		metrics:  metrics,
	}
	m.channels = []courierChannel{
		{info: domain.ChannelInfo{ID: domain.ChannelEmail, Label: "Email", Editable: true}, deliver: m.deliverEmail},
		{info: domain.ChannelInfo{ID: domain.ChannelLog, Label: "Log"}, deliver: m.deliverLog},
	}
	return m
}

func (m *courierManager) Channel(id string) (domain.ChannelInfo, bool) {
	if ch, ok := m.channel(id); ok {
		return ch.info, true
	}
	return domain.ChannelInfo{}, false
}

func (m *courierManager) channel(id string) (courierChannel, bool) {
	for _, ch := range m.channels {
		if ch.info.ID == id {
			return ch, true
		}
	}
	return courierChannel{}, false
}

func (m *courierManager) AddTemplates(ctx context.Context, c *domain.TemplateCollection) error {
	for _, ch := range m.channels {
		if c.TemplateForChannel(ch.info.ID) != nil {
			continue
		}
		subject, body, err := m.renderer.Default(ch.info.ID)
		if err != nil {
			return fmt.Errorf("default template for %s: %w", ch.info.ID, err)
		}
		c.Templates = append(c.Templates, &domain.MessageTemplate{
			CollectionID: c.ID,
			Channel:      ch.info.ID,
			Subject:      subject,
			Body:         body,
		})
	}
	return nil
}

// SendMessage delivers through the first of the identity's preferred channels
// that has both a template in c and a registered deliverer.
func (m *courierManager) SendMessage(ctx context.Context, c *domain.TemplateCollection, identity *domain.Identity, options domain.SendOptions) error {
	if identity == nil {
		return fmt.Errorf("send message: %w", domain.ErrInvalidInput)
	}
	for _, channelID := range identity.PreferredChannels() {
		ch, ok := m.channel(channelID)
		if !ok {
			continue
		}
		tmpl := c.TemplateForChannel(channelID)
		if tmpl == nil {
			continue
		}

		tokens := maps.Clone(c.Tokens)
		if tokens == nil {
			tokens = map[string]any{}
		}
		tokens[domain.TokenIdentity] = identity
		rendered, err := m.renderer.Render(tmpl, tokens)
		if err != nil {
			m.metrics.observeSend(channelID, resultFailed)
			return fmt.Errorf("render %s template: %w", channelID, err)
		}
		if err := ch.deliver(ctx, identity, rendered, options); err != nil {
			m.metrics.observeSend(channelID, resultFailed)
			return fmt.Errorf("deliver via %s: %w", channelID, err)
		}
		m.metrics.observeSend(channelID, resultSent)
		return nil
	}
	m.metrics.observeSend("none", resultSkipped)
	return fmt.Errorf("no deliverable channel for identity %s: %w", identity.ID, domain.ErrInvalidInput)
}

func (m *courierManager) deliverEmail(ctx context.Context, identity *domain.Identity, msg *domain.RenderedMessage, options domain.SendOptions) error {
	if identity.Email == "" {
		return fmt.Errorf("identity %s has no email address", identity.ID)
	}
	replyTo, _ := options.Get(domain.ChannelEmail, ReplyToOption)
	return m.mailer.Send(ctx, &domain.OutgoingEmail{
		To:       identity.Email,
		ReplyTo:  replyTo,
		Subject:  msg.Subject,
		HTMLBody: msg.HTMLBody,
		TextBody: msg.TextBody,
	})
}

func (m *courierManager) deliverLog(ctx context.Context, identity *domain.Identity, msg *domain.RenderedMessage, _ domain.SendOptions) error {
	m.logger.InfoContext(ctx, "courier message",
		"message_id", uuid.NewString(),
		"identity", identity.ID,
		"subject", msg.Subject,
		"body", msg.TextBody,
	)
	return nil
}
