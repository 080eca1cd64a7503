package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"eventregistration/internal/domain"
)

type registrationRepository struct {
	DB *sql.DB
}

// NewRegistrationRepository returns a domain.RegistrationRepository implemented with Postgres.
func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{DB: db}
}

// ListByIDs returns the registrations for ids in caller order. Ids that are
// unknown or not UUIDs are skipped.
func (r *registrationRepository) ListByIDs(ctx context.Context, ids []string) ([]*domain.Registration, error) {
	canonical := make([]string, len(ids))
	query := make([]string, 0, len(ids))
	for i, id := range ids {
		if c, ok := canonicalUUID(id); ok {
			canonical[i] = c
			query = append(query, c)
		}
	}
	if len(query) == 0 {
		return []*domain.Registration{}, nil
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT reg.id, reg.event_id, reg.created_at, reg.updated_at,
		       e.id, e.entity_type, e.bundle, e.name, e.reply_to, e.created_at, e.updated_at
		FROM registrations reg
		LEFT JOIN events e ON e.id = reg.event_id
		WHERE reg.id = ANY($1)
	`, pq.Array(query))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[string]*domain.Registration, len(query))
	for rows.Next() {
		reg := &domain.Registration{Registrants: []*domain.Registrant{}}
		var (
			eventID, entityType, bundle, name, replyTo sql.NullString
			eventCreated, eventUpdated                 sql.NullTime
		)
		if err := rows.Scan(&reg.ID, &reg.EventID, &reg.CreatedAt, &reg.UpdatedAt,
			&eventID, &entityType, &bundle, &name, &replyTo, &eventCreated, &eventUpdated); err != nil {
			return nil, err
		}
		if eventID.Valid {
			reg.Event = &domain.Event{
				ID:         eventID.String,
				EntityType: entityType.String,
				Bundle:     bundle.String,
				Name:       name.String,
				ReplyTo:    replyTo.String,
				CreatedAt:  timeOrZero(eventCreated),
				UpdatedAt:  timeOrZero(eventUpdated),
			}
		}
		byID[reg.ID] = reg
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.attachRegistrants(ctx, byID); err != nil {
		return nil, err
	}

	// Keep caller order; duplicates in ids are dispatched twice.
	out := make([]*domain.Registration, 0, len(ids))
	for _, id := range canonical {
		if reg, ok := byID[id]; ok {
			out = append(out, reg)
		}
	}
	return out, nil
}

func (r *registrationRepository) attachRegistrants(ctx context.Context, byID map[string]*domain.Registration) error {
	if len(byID) == 0 {
		return nil
	}
	regIDs := make([]string, 0, len(byID))
	for id := range byID {
		regIDs = append(regIDs, id)
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT rt.id, rt.registration_id, i.id, i.name, i.email, i.channels
		FROM registrants rt
		JOIN identities i ON i.id = rt.identity_id
		WHERE rt.registration_id = ANY($1)
		ORDER BY rt.registration_id, rt.created_at, rt.id
	`, pq.Array(regIDs))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		rt := &domain.Registrant{Identity: &domain.Identity{}}
		var channels []string
		if err := rows.Scan(&rt.ID, &rt.RegistrationID, &rt.Identity.ID, &rt.Identity.Name, &rt.Identity.Email, pq.Array(&channels)); err != nil {
			return err
		}
		rt.Identity.Channels = channels
		if reg, ok := byID[rt.RegistrationID]; ok {
			reg.Registrants = append(reg.Registrants, rt)
		}
	}
	return rows.Err()
}

func timeOrZero(t sql.NullTime) time.Time {
	if t.Valid {
		return t.Time
	}
	return time.Time{}
}
