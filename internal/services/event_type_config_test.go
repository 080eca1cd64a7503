package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventregistration/internal/domain"
)

func newConfigService(configs ...*domain.EventTypeConfig) (domain.EventTypeConfigService, *fakeEventTypeConfigRepo) {
	repo := &fakeEventTypeConfigRepo{byID: map[string]*domain.EventTypeConfig{}}
	for _, c := range configs {
		repo.byID[c.ID] = c
	}
	return NewEventTypeConfigService(repo, discardLogger(), 5*time.Second), repo
}

func TestEventTypeConfigService_Prompt(t *testing.T) {
	svc, repo := newConfigService(&domain.EventTypeConfig{ID: "node.conference", Label: "Conference"})

	prompt, err := svc.Prompt(context.Background(), "node.conference")
	require.NoError(t, err)
	assert.Equal(t, "Are you sure you want to delete settings for event Conference and all associated registrations?", prompt.Question)
	assert.Equal(t, "Delete", prompt.ConfirmText)
	assert.Equal(t, "/event-types", prompt.CancelRoute)
	assert.Equal(t, domain.ConfirmationAwaiting, prompt.State)
	assert.Empty(t, repo.deleted)
}

func TestEventTypeConfigService_Confirm(t *testing.T) {
	labels := []string{"Conference", "Workshop & Dinner", "Événement"}
	for _, label := range labels {
		t.Run(label, func(t *testing.T) {
			svc, repo := newConfigService(&domain.EventTypeConfig{ID: "cfg", Label: label})

			res, err := svc.Confirm(context.Background(), "cfg")
			require.NoError(t, err)
			assert.Equal(t, "Event type "+label+" was deleted.", res.Notice)
			assert.Equal(t, domain.EventTypeConfigOverviewRoute, res.Redirect)
			assert.Equal(t, domain.ConfirmationDeleted, res.State)
			assert.Equal(t, []string{"cfg"}, repo.deleted)
		})
	}
}

func TestEventTypeConfigService_Confirm_DeleteFails(t *testing.T) {
	svc, repo := newConfigService(&domain.EventTypeConfig{ID: "cfg", Label: "Conference"})
	boom := errors.New("fk violation")
	repo.deleteErr = boom

	res, err := svc.Confirm(context.Background(), "cfg")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, res)
}

func TestEventTypeConfigService_Cancel(t *testing.T) {
	svc, repo := newConfigService(&domain.EventTypeConfig{ID: "cfg", Label: "Conference"})

	res, err := svc.Cancel(context.Background(), "cfg")
	require.NoError(t, err)
	assert.Equal(t, domain.ConfirmationCancelled, res.State)
	assert.Equal(t, domain.EventTypeConfigOverviewRoute, res.Redirect)
	assert.Empty(t, res.Notice)
	assert.Empty(t, repo.deleted)
	assert.Contains(t, repo.byID, "cfg")
}

func TestEventTypeConfigService_NotFound(t *testing.T) {
	svc, _ := newConfigService()
	ctx := context.Background()

	_, err := svc.Prompt(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.Confirm(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.Cancel(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventTypeConfigService_List(t *testing.T) {
	svc, _ := newConfigService(
		&domain.EventTypeConfig{ID: "c", Label: "Conference"},
		&domain.EventTypeConfig{ID: "m", Label: "Meetup"},
		&domain.EventTypeConfig{ID: "w", Label: "Workshop"},
	)

	page, total, err := svc.List(context.Background(), domain.PaginationParams{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page, 1)
	assert.Equal(t, "Workshop", page[0].Label)
}

func TestEventTypeConfigService_List_Empty(t *testing.T) {
	svc, _ := newConfigService()
	configs, total, err := svc.List(context.Background(), domain.PaginationParams{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.NotNil(t, configs)
	assert.Empty(t, configs)
	assert.Zero(t, total)
}
