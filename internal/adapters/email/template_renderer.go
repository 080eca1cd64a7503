package email

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"maps"
	"strings"
	texttemplate "text/template"

	"eventregistration/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

// templateRenderer implements domain.TemplateRenderer. Defaults and HTML
// layouts come from the embedded templates folder, one set per channel.
type templateRenderer struct{}

// NewTemplateRenderer returns a TemplateRenderer backed by the embedded templates folder.
func NewTemplateRenderer() domain.TemplateRenderer {
	return &templateRenderer{}
}

// Default returns <channel>_subject.txt and <channel>.txt.
func (r *templateRenderer) Default(channel string) (string, string, error) {
	subject, err := templateFS.ReadFile("templates/" + channel + "_subject.txt")
	if err != nil {
		return "", "", fmt.Errorf("default subject for %s: %w", channel, err)
	}
	body, err := templateFS.ReadFile("templates/" + channel + ".txt")
	if err != nil {
		return "", "", fmt.Errorf("default body for %s: %w", channel, err)
	}
	return strings.TrimSpace(string(subject)), string(body), nil
}

// Render executes the template's subject and body with tokens. When the
// channel has an HTML layout (<channel>.html) the rendered body is also
// wrapped into it, one paragraph per blank-line separated block.
func (r *templateRenderer) Render(tmpl *domain.MessageTemplate, tokens map[string]any) (*domain.RenderedMessage, error) {
	subject, err := renderText(tmpl.Channel+"_subject", tmpl.Subject, tokens)
	if err != nil {
		return nil, fmt.Errorf("render subject: %w", err)
	}
	text, err := renderText(tmpl.Channel, tmpl.Body, tokens)
	if err != nil {
		return nil, fmt.Errorf("render body: %w", err)
	}
	out := &domain.RenderedMessage{
		Subject:  strings.TrimSpace(subject),
		TextBody: text,
	}

	layout, err := templateFS.ReadFile("templates/" + tmpl.Channel + ".html")
	if errors.Is(err, fs.ErrNotExist) {
		return out, nil
	}
	if err != nil {
		return nil, err
	}
	data := maps.Clone(tokens)
	if data == nil {
		data = map[string]any{}
	}
	data["paragraphs"] = paragraphs(text)
	out.HTMLBody, err = renderHTML(tmpl.Channel+".html", string(layout), data)
	if err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	return out, nil
}

func renderText(name, src string, data any) (string, error) {
	t, err := texttemplate.New(name).Parse(src)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderHTML(name, src string, data any) (string, error) {
	t, err := template.New(name).Parse(src)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func paragraphs(text string) []string {
	var out []string
	for _, p := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
