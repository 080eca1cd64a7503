package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"eventregistration/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// fakeCollectionRepo is an in-memory TemplateCollectionRepository.
type fakeCollectionRepo struct {
	byID      map[string]*domain.TemplateCollection
	nextID    int
	creates   int
	saves     int
	deleted   []string
	createErr error
	saveErr   error
	getErr    error
}

func newFakeCollectionRepo() *fakeCollectionRepo {
	return &fakeCollectionRepo{byID: map[string]*domain.TemplateCollection{}, nextID: 1}
}

func (f *fakeCollectionRepo) Create(_ context.Context, c *domain.TemplateCollection) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.creates++
	c.ID = fmt.Sprintf("tc-%d", f.nextID)
	f.nextID++
	f.byID[c.ID] = c.Clone()
	return nil
}

func (f *fakeCollectionRepo) Save(_ context.Context, c *domain.TemplateCollection) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	for i, t := range c.Templates {
		if t.ID == "" {
			t.ID = fmt.Sprintf("%s-tpl-%d", c.ID, i+1)
		}
		t.CollectionID = c.ID
	}
	stored := c.Clone()
	stored.Tokens = map[string]any{}
	f.byID[c.ID] = stored
	return nil
}

// GetByID returns a fresh copy, like a storage load.
func (f *fakeCollectionRepo) GetByID(_ context.Context, id string) (*domain.TemplateCollection, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	c, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c.Clone(), nil
}

func (f *fakeCollectionRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

// fakeActionRepo is an in-memory ActionConfigRepository. beforeClaim runs
// before the compare-and-swap to simulate a concurrent writer.
type fakeActionRepo struct {
	byID        map[string]*domain.ActionConfiguration
	nextID      int
	beforeClaim func()
	claimErr    error
}

func newFakeActionRepo() *fakeActionRepo {
	return &fakeActionRepo{byID: map[string]*domain.ActionConfiguration{}, nextID: 1}
}

func (f *fakeActionRepo) Create(_ context.Context, a *domain.ActionConfiguration) error {
	a.ID = fmt.Sprintf("act-%d", f.nextID)
	f.nextID++
	cp := *a
	f.byID[a.ID] = &cp
	return nil
}

func (f *fakeActionRepo) GetByID(_ context.Context, id string) (*domain.ActionConfiguration, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *a
	if a.Configuration.TemplateCollection != nil {
		v := *a.Configuration.TemplateCollection
		cp.Configuration.TemplateCollection = &v
	}
	return &cp, nil
}

func (f *fakeActionRepo) ClaimTemplateCollection(_ context.Context, actionID, collectionID string) error {
	if f.beforeClaim != nil {
		f.beforeClaim()
	}
	if f.claimErr != nil {
		return f.claimErr
	}
	a, ok := f.byID[actionID]
	if !ok {
		return domain.ErrNotFound
	}
	if a.Configuration.TemplateCollection != nil {
		return domain.ErrAlreadyConfigured
	}
	v := collectionID
	a.Configuration.TemplateCollection = &v
	return nil
}

// fakeEventManager counts GetMeta calls per event.
type fakeEventManager struct {
	replyTo map[string]string
	calls   map[string]int
	err     error
}

func newFakeEventManager(replyTo map[string]string) *fakeEventManager {
	return &fakeEventManager{replyTo: replyTo, calls: map[string]int{}}
}

func (f *fakeEventManager) GetMeta(_ context.Context, event *domain.Event) (*domain.EventMeta, error) {
	f.calls[event.ID]++
	if f.err != nil {
		return nil, f.err
	}
	return &domain.EventMeta{EventID: event.ID, ReplyTo: f.replyTo[event.ID]}, nil
}

type sentMessage struct {
	collection *domain.TemplateCollection
	tokens     map[string]any
	identity   *domain.Identity
	options    domain.SendOptions
}

// fakeCourier records sends and knows an editable email and a plain log channel.
type fakeCourier struct {
	sent        []sentMessage
	sendErr     error
	addTemplErr error
}

func (f *fakeCourier) AddTemplates(_ context.Context, c *domain.TemplateCollection) error {
	if f.addTemplErr != nil {
		return f.addTemplErr
	}
	c.Templates = append(c.Templates,
		&domain.MessageTemplate{Channel: domain.ChannelEmail, Subject: "s", Body: "b"},
		&domain.MessageTemplate{Channel: domain.ChannelLog, Subject: "s", Body: "b"},
	)
	return nil
}

func (f *fakeCourier) SendMessage(_ context.Context, c *domain.TemplateCollection, identity *domain.Identity, options domain.SendOptions) error {
	f.sent = append(f.sent, sentMessage{
		collection: c,
		tokens:     maps.Clone(c.Tokens),
		identity:   identity,
		options:    options,
	})
	return f.sendErr
}

func (f *fakeCourier) Channel(id string) (domain.ChannelInfo, bool) {
	switch id {
	case domain.ChannelEmail:
		return domain.ChannelInfo{ID: id, Label: "Email", Editable: true}, true
	case domain.ChannelLog:
		return domain.ChannelInfo{ID: id, Label: "Log"}, true
	}
	return domain.ChannelInfo{}, false
}

// fakeRegistrationRepo returns registrations in the requested order.
type fakeRegistrationRepo struct {
	byID map[string]*domain.Registration
	err  error
}

func (f *fakeRegistrationRepo) ListByIDs(_ context.Context, ids []string) ([]*domain.Registration, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []*domain.Registration{}
	for _, id := range ids {
		if r, ok := f.byID[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

// fakeEventTypeConfigRepo is an in-memory EventTypeConfigRepository.
type fakeEventTypeConfigRepo struct {
	byID      map[string]*domain.EventTypeConfig
	deleteErr error
	deleted   []string
}

func (f *fakeEventTypeConfigRepo) GetByID(_ context.Context, id string) (*domain.EventTypeConfig, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (f *fakeEventTypeConfigRepo) List(_ context.Context, params domain.PaginationParams) ([]*domain.EventTypeConfig, int, error) {
	var all []*domain.EventTypeConfig
	for _, c := range f.byID {
		all = append(all, c)
	}
	slices.SortFunc(all, func(a, b *domain.EventTypeConfig) int { return strings.Compare(a.Label, b.Label) })
	start := min(params.Offset(), len(all))
	end := min(start+params.PageSize, len(all))
	return all[start:end], len(all), nil
}

func (f *fakeEventTypeConfigRepo) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

// fakeEventRepo is an in-memory EventRepository that counts lookups.
type fakeEventRepo struct {
	byID   map[string]*domain.Event
	gets   int
	getErr error
}

func (f *fakeEventRepo) GetByID(_ context.Context, id string) (*domain.Event, error) {
	f.gets++
	if f.getErr != nil {
		return nil, f.getErr
	}
	e, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func registrant(id string) *domain.Registrant {
	return &domain.Registrant{ID: "rt-" + id, Identity: &domain.Identity{ID: id, Name: id, Email: id + "@example.com"}}
}
