package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"eventregistration/internal/domain"
)

type eventTypeConfigRepository struct {
	DB *sql.DB
}

// NewEventTypeConfigRepository returns a domain.EventTypeConfigRepository implemented with Postgres.
func NewEventTypeConfigRepository(db *sql.DB) domain.EventTypeConfigRepository {
	return &eventTypeConfigRepository{DB: db}
}

func (r *eventTypeConfigRepository) GetByID(ctx context.Context, id string) (*domain.EventTypeConfig, error) {
	query := `
		SELECT id, entity_type, bundle, label, settings
		FROM event_type_configs
		WHERE id = $1
	`
	cfg := &domain.EventTypeConfig{}
	var settings []byte
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&cfg.ID, &cfg.EntityType, &cfg.Bundle, &cfg.Label, &settings)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if cfg.Settings, err = decodeSettings(settings); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (r *eventTypeConfigRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.EventTypeConfig, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM event_type_configs`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, entity_type, bundle, label, settings
		FROM event_type_configs
		ORDER BY label, id
		LIMIT $1 OFFSET $2
	`, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	configs := []*domain.EventTypeConfig{}
	for rows.Next() {
		cfg := &domain.EventTypeConfig{}
		var settings []byte
		if err := rows.Scan(&cfg.ID, &cfg.EntityType, &cfg.Bundle, &cfg.Label, &settings); err != nil {
			return nil, 0, err
		}
		if cfg.Settings, err = decodeSettings(settings); err != nil {
			return nil, 0, err
		}
		configs = append(configs, cfg)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return configs, total, nil
}

// Delete removes registrants, then registrations of matching events, then the
// configuration itself, in one transaction.
func (r *eventTypeConfigRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		DELETE FROM registrants WHERE registration_id IN (
			SELECT reg.id FROM registrations reg
			JOIN events e ON e.id = reg.event_id
			JOIN event_type_configs c ON c.entity_type = e.entity_type AND c.bundle = e.bundle
			WHERE c.id = $1
		)`, id)
	if err != nil {
		return fmt.Errorf("delete registrants: %w", err)
	}
	_, err = tx.ExecContext(ctx, `
		DELETE FROM registrations WHERE event_id IN (
			SELECT e.id FROM events e
			JOIN event_type_configs c ON c.entity_type = e.entity_type AND c.bundle = e.bundle
			WHERE c.id = $1
		)`, id)
	if err != nil {
		return fmt.Errorf("delete registrations: %w", err)
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM event_type_configs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event type config: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete event type config: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit()
}

func decodeSettings(raw []byte) (map[string]any, error) {
	settings := map[string]any{}
	if len(raw) == 0 {
		return settings, nil
	}
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	return settings, nil
}
