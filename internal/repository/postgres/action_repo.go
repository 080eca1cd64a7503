package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventregistration/internal/domain"
)

type actionConfigRepository struct {
	DB *sql.DB
}

// NewActionConfigRepository returns a domain.ActionConfigRepository implemented with Postgres.
func NewActionConfigRepository(db *sql.DB) domain.ActionConfigRepository {
	return &actionConfigRepository{DB: db}
}

func (r *actionConfigRepository) Create(ctx context.Context, a *domain.ActionConfiguration) error {
	query := `
		INSERT INTO actions (plugin_id, label, type, template_collection_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	var collectionID sql.NullString
	if a.Configuration.TemplateCollection != nil {
		collectionID = sql.NullString{String: *a.Configuration.TemplateCollection, Valid: true}
	}
	return r.DB.QueryRowContext(ctx, query, a.PluginID, a.Label, a.Type, collectionID).Scan(&a.ID)
}

func (r *actionConfigRepository) GetByID(ctx context.Context, id string) (*domain.ActionConfiguration, error) {
	query := `
		SELECT id, plugin_id, label, type, template_collection_id
		FROM actions
		WHERE id = $1
	`
	id, ok := canonicalUUID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	a := &domain.ActionConfiguration{}
	var collectionID sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.PluginID, &a.Label, &a.Type, &collectionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if collectionID.Valid {
		v := collectionID.String
		a.Configuration.TemplateCollection = &v
	}
	return a, nil
}

// ClaimTemplateCollection is a compare-and-swap on the NULL column.
func (r *actionConfigRepository) ClaimTemplateCollection(ctx context.Context, actionID, collectionID string) error {
	actionID, ok := canonicalUUID(actionID)
	if !ok {
		return domain.ErrNotFound
	}
	result, err := r.DB.ExecContext(ctx,
		`UPDATE actions SET template_collection_id = $2 WHERE id = $1 AND template_collection_id IS NULL`,
		actionID, collectionID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 1 {
		return nil
	}

	var existing sql.NullString
	err = r.DB.QueryRowContext(ctx, `SELECT template_collection_id FROM actions WHERE id = $1`, actionID).Scan(&existing)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	return domain.ErrAlreadyConfigured
}
