package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventregistration/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT id, entity_type, bundle, name, reply_to, created_at, updated_at
		FROM events
		WHERE id = $1
	`
	id, ok := canonicalUUID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	e := &domain.Event{}
	var replyTo sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&e.ID, &e.EntityType, &e.Bundle, &e.Name, &replyTo, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	e.ReplyTo = replyTo.String
	return e, nil
}
