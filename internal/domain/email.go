package domain

import "context"

// OutgoingEmail is a rendered email ready for delivery.
type OutgoingEmail struct {
	To       string
	ReplyTo  string
	Subject  string
	HTMLBody string
	TextBody string
}

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, msg *OutgoingEmail) error
}

// RenderedMessage is a template rendered with its tokens.
type RenderedMessage struct {
	Subject  string
	HTMLBody string
	TextBody string
}

// TemplateRenderer renders message templates and provides default content.
type TemplateRenderer interface {
	Render(tmpl *MessageTemplate, tokens map[string]any) (*RenderedMessage, error)
	// Default returns the built-in subject and body for a channel.
	Default(channel string) (subject, body string, err error)
}
