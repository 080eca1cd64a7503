package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eventregistration/internal/domain"
)

type templateCollectionRepository struct {
	DB *sql.DB
}

// NewTemplateCollectionRepository returns a domain.TemplateCollectionRepository implemented with Postgres.
func NewTemplateCollectionRepository(db *sql.DB) domain.TemplateCollectionRepository {
	return &templateCollectionRepository{DB: db}
}

func (r *templateCollectionRepository) Create(ctx context.Context, c *domain.TemplateCollection) error {
	err := r.DB.QueryRowContext(ctx, `INSERT INTO courier_template_collections DEFAULT VALUES RETURNING id`).Scan(&c.ID)
	if err != nil {
		return err
	}
	if len(c.Templates) == 0 {
		return nil
	}
	return r.Save(ctx, c)
}

// Save inserts templates without an ID and updates the rest.
func (r *templateCollectionRepository) Save(ctx context.Context, c *domain.TemplateCollection) error {
	if c.ID == "" {
		return fmt.Errorf("save template collection: %w", domain.ErrInvalidInput)
	}
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, t := range c.Templates {
		t.CollectionID = c.ID
		if t.ID == "" {
			err := tx.QueryRowContext(ctx, `
				INSERT INTO courier_message_templates (collection_id, channel, subject, body)
				VALUES ($1, $2, $3, $4)
				RETURNING id`,
				c.ID, t.Channel, t.Subject, t.Body,
			).Scan(&t.ID)
			if err != nil {
				return fmt.Errorf("insert template %s: %w", t.Channel, err)
			}
			continue
		}
		if _, err := tx.ExecContext(ctx, `
			UPDATE courier_message_templates SET channel = $2, subject = $3, body = $4
			WHERE id = $1`,
			t.ID, t.Channel, t.Subject, t.Body,
		); err != nil {
			return fmt.Errorf("update template %s: %w", t.ID, err)
		}
	}
	return tx.Commit()
}

func (r *templateCollectionRepository) GetByID(ctx context.Context, id string) (*domain.TemplateCollection, error) {
	c := domain.NewTemplateCollection()
	err := r.DB.QueryRowContext(ctx, `SELECT id FROM courier_template_collections WHERE id = $1`, id).Scan(&c.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, collection_id, channel, subject, body
		FROM courier_message_templates
		WHERE collection_id = $1
		ORDER BY channel
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	c.Templates = []*domain.MessageTemplate{}
	for rows.Next() {
		t := &domain.MessageTemplate{}
		if err := rows.Scan(&t.ID, &t.CollectionID, &t.Channel, &t.Subject, &t.Body); err != nil {
			return nil, err
		}
		c.Templates = append(c.Templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *templateCollectionRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM courier_message_templates WHERE collection_id = $1`, id); err != nil {
		return err
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM courier_template_collections WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit()
}
