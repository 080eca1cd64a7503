package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"eventregistration/internal/domain"
)

type eventManager struct {
	eventRepo      domain.EventRepository
	defaultReplyTo string
	cache          *gocache.Cache
}

// NewEventManager returns an EventManager that reads the event's stored
// reply-to address, falling back to defaultReplyTo. Metadata is cached per
// event ID for ttl; a ttl of zero or less disables the cache.
func NewEventManager(eventRepo domain.EventRepository, defaultReplyTo string, ttl time.Duration) domain.EventManager {
	m := &eventManager{
		eventRepo:      eventRepo,
		defaultReplyTo: defaultReplyTo,
	}
	if ttl > 0 {
		m.cache = gocache.New(ttl, 2*ttl)
	}
	return m
}

func (m *eventManager) GetMeta(ctx context.Context, event *domain.Event) (*domain.EventMeta, error) {
	if event == nil || event.ID == "" {
		return nil, domain.ErrInvalidInput
	}
	if m.cache != nil {
		if v, ok := m.cache.Get(event.ID); ok {
			if meta, ok := v.(*domain.EventMeta); ok {
				return meta, nil
			}
		}
	}

	current, err := m.eventRepo.GetByID(ctx, event.ID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		// Not stored (yet); trust the caller's copy.
		current = event
	case err != nil:
		return nil, fmt.Errorf("get event: %w", err)
	}

	meta := &domain.EventMeta{EventID: event.ID, ReplyTo: current.ReplyTo}
	if meta.ReplyTo == "" {
		meta.ReplyTo = m.defaultReplyTo
	}
	if m.cache != nil {
		m.cache.SetDefault(event.ID, meta)
	}
	return meta, nil
}
