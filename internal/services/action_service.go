package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"eventregistration/internal/domain"
)

type messageActionService struct {
	action           *MessageAction
	actions          domain.ActionConfigRepository
	collections      domain.TemplateCollectionRepository
	registrationRepo domain.RegistrationRepository
	contextTimeout   time.Duration
}

// NewMessageActionService exposes MessageAction over stored action configurations.
func NewMessageActionService(
	action *MessageAction,
	actions domain.ActionConfigRepository,
	collections domain.TemplateCollectionRepository,
	registrationRepo domain.RegistrationRepository,
	timeout time.Duration,
) domain.MessageActionService {
	return &messageActionService{
		action:           action,
		actions:          actions,
		collections:      collections,
		registrationRepo: registrationRepo,
		contextTimeout:   timeout,
	}
}

func (s *messageActionService) CreateAction(ctx context.Context, label string) (*domain.ActionConfiguration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	label = strings.TrimSpace(label)
	if label == "" {
		label = "Send message"
	}
	a := &domain.ActionConfiguration{
		PluginID:      domain.MessageActionPluginID,
		Label:         label,
		Type:          domain.ActionTypeRegistration,
		Configuration: s.action.DefaultConfiguration(),
	}
	if err := s.actions.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create action: %w", err)
	}
	return a, nil
}

func (s *messageActionService) GetAction(ctx context.Context, actionID string) (*domain.ActionConfiguration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.getAction(ctx, actionID)
}

func (s *messageActionService) getAction(ctx context.Context, actionID string) (*domain.ActionConfiguration, error) {
	a, err := s.actions.GetByID(ctx, actionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get action: %w", err)
	}
	if a.PluginID != domain.MessageActionPluginID {
		return nil, domain.ErrNotFound
	}
	return a, nil
}

func (s *messageActionService) BuildConfigurationForm(ctx context.Context, actionID string) (*domain.ConfigurationForm, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	a, err := s.getAction(ctx, actionID)
	if err != nil {
		return nil, err
	}
	return s.action.BuildConfigurationForm(ctx, a)
}

func (s *messageActionService) SubmitConfigurationForm(ctx context.Context, actionID string) (*domain.ActionConfiguration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	a, err := s.getAction(ctx, actionID)
	if err != nil {
		return nil, err
	}
	if err := s.action.SubmitConfigurationForm(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *messageActionService) UpdateTemplate(ctx context.Context, actionID, channel, subject, body string) (*domain.MessageTemplate, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	a, err := s.getAction(ctx, actionID)
	if err != nil {
		return nil, err
	}
	c, err := s.action.GetTemplateCollection(ctx, a)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	tmpl := c.TemplateForChannel(channel)
	if tmpl == nil {
		return nil, domain.ErrNotFound
	}
	if info, ok := s.action.courier.Channel(channel); !ok || !info.Editable {
		return nil, fmt.Errorf("channel %s cannot be edited: %w", channel, domain.ErrInvalidInput)
	}
	tmpl.Subject = subject
	tmpl.Body = body
	if err := s.collections.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("save template collection: %w", err)
	}
	return tmpl, nil
}

func (s *messageActionService) ExecuteForRegistrations(ctx context.Context, actionID string, registrationIDs []string) (*domain.DispatchSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	a, err := s.getAction(ctx, actionID)
	if err != nil {
		return nil, err
	}
	regs, err := s.registrationRepo.ListByIDs(ctx, registrationIDs)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	summary := &domain.DispatchSummary{BatchID: uuid.NewString(), Registrations: len(regs)}
	summary.Attempted, err = s.action.dispatch(ctx, summary.BatchID, a, regs)
	if err != nil {
		return nil, err
	}
	return summary, nil
}
