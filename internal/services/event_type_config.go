package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eventregistration/internal/domain"
)

const deleteConfirmText = "Delete"

type eventTypeConfigService struct {
	repo           domain.EventTypeConfigRepository
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewEventTypeConfigService returns the overview and deletion workflow for event type configurations.
func NewEventTypeConfigService(repo domain.EventTypeConfigRepository, logger *slog.Logger, timeout time.Duration) domain.EventTypeConfigService {
	return &eventTypeConfigService{repo: repo, logger: logger, contextTimeout: timeout}
}

func (s *eventTypeConfigService) List(ctx context.Context, params domain.PaginationParams) ([]*domain.EventTypeConfig, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	configs, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list event type configs: %w", err)
	}
	if configs == nil {
		configs = []*domain.EventTypeConfig{}
	}
	return configs, total, nil
}

func (s *eventTypeConfigService) Prompt(ctx context.Context, configID string) (*domain.DeletionPrompt, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	cfg, err := s.get(ctx, configID)
	if err != nil {
		return nil, err
	}
	return &domain.DeletionPrompt{
		ConfigID:    cfg.ID,
		Question:    fmt.Sprintf("Are you sure you want to delete settings for event %s and all associated registrations?", cfg.Label),
		ConfirmText: deleteConfirmText,
		CancelRoute: domain.EventTypeConfigOverviewRoute,
		State:       domain.ConfirmationAwaiting,
	}, nil
}

// Confirm deletes the configuration. Delete failures are returned as-is
// (wrapped); no cleanup is attempted.
func (s *eventTypeConfigService) Confirm(ctx context.Context, configID string) (*domain.DeletionResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	cfg, err := s.get(ctx, configID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, cfg.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("delete event type config: %w", err)
	}
	s.logger.InfoContext(ctx, "event type config deleted", "config_id", cfg.ID, "entity_type", cfg.EntityType, "bundle", cfg.Bundle)
	return &domain.DeletionResult{
		ConfigID: cfg.ID,
		State:    domain.ConfirmationDeleted,
		Notice:   fmt.Sprintf("Event type %s was deleted.", cfg.Label),
		Redirect: domain.EventTypeConfigOverviewRoute,
	}, nil
}

func (s *eventTypeConfigService) Cancel(ctx context.Context, configID string) (*domain.DeletionResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	cfg, err := s.get(ctx, configID)
	if err != nil {
		return nil, err
	}
	return &domain.DeletionResult{
		ConfigID: cfg.ID,
		State:    domain.ConfirmationCancelled,
		Redirect: domain.EventTypeConfigOverviewRoute,
	}, nil
}

func (s *eventTypeConfigService) get(ctx context.Context, configID string) (*domain.EventTypeConfig, error) {
	cfg, err := s.repo.GetByID(ctx, configID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event type config: %w", err)
	}
	return cfg, nil
}
