package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventregistration/internal/domain"
)

func TestTemplateRenderer_Default(t *testing.T) {
	r := NewTemplateRenderer()

	for _, ch := range []string{domain.ChannelEmail, domain.ChannelLog} {
		subject, body, err := r.Default(ch)
		require.NoError(t, err, ch)
		assert.NotEmpty(t, subject)
		assert.NotEmpty(t, body)
	}

	_, _, err := r.Default("courier_sms")
	require.Error(t, err)
}

func TestTemplateRenderer_RenderEmail(t *testing.T) {
	r := NewTemplateRenderer()
	subject, body, err := r.Default(domain.ChannelEmail)
	require.NoError(t, err)

	tokens := map[string]any{
		"node":                   &domain.Event{ID: "ev-1", Name: "Go <Conf>"},
		domain.TokenRegistration: &domain.Registration{ID: "reg-1"},
		domain.TokenIdentity:     &domain.Identity{Name: "Ann"},
	}
	out, err := r.Render(&domain.MessageTemplate{Channel: domain.ChannelEmail, Subject: subject, Body: body}, tokens)
	require.NoError(t, err)

	assert.Equal(t, "Go <Conf>: Update on your registration", out.Subject)
	assert.Contains(t, out.TextBody, "Hello Ann,")
	assert.Contains(t, out.TextBody, "reg-1")
	assert.Contains(t, out.HTMLBody, "<p>Hello Ann,</p>")
	assert.Contains(t, out.HTMLBody, "Go &lt;Conf&gt;")
}

func TestTemplateRenderer_RenderWithoutEventToken(t *testing.T) {
	r := NewTemplateRenderer()
	subject, body, err := r.Default(domain.ChannelEmail)
	require.NoError(t, err)

	out, err := r.Render(&domain.MessageTemplate{Channel: domain.ChannelEmail, Subject: subject, Body: body},
		map[string]any{domain.TokenRegistration: &domain.Registration{ID: "reg-2"}})
	require.NoError(t, err)
	assert.Equal(t, "Update on your registration", out.Subject)
	assert.NotContains(t, out.TextBody, "<no value>")
}

func TestTemplateRenderer_RenderLogHasNoHTML(t *testing.T) {
	out, err := NewTemplateRenderer().Render(
		&domain.MessageTemplate{Channel: domain.ChannelLog, Subject: "S {{.x}}", Body: "B"},
		map[string]any{"x": 1},
	)
	require.NoError(t, err)
	assert.Equal(t, "S 1", out.Subject)
	assert.Empty(t, out.HTMLBody)
}

func TestTemplateRenderer_RenderParseError(t *testing.T) {
	_, err := NewTemplateRenderer().Render(&domain.MessageTemplate{Channel: domain.ChannelLog, Subject: "{{", Body: ""}, nil)
	require.Error(t, err)
}
