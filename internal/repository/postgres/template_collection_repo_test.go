package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"eventregistration/internal/domain"
)

func TestTemplateCollectionRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("empty collection", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO courier_template_collections DEFAULT VALUES RETURNING id`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("tc-1"))

		c := domain.NewTemplateCollection()
		require.NoError(t, NewTemplateCollectionRepository(db).Create(ctx, c))
		require.Equal(t, "tc-1", c.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("with templates saves them", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO courier_template_collections`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("tc-2"))
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO courier_message_templates \(collection_id, channel, subject, body\)`).
			WithArgs("tc-2", domain.ChannelEmail, "Hi", "Body").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("tpl-1"))
		mock.ExpectCommit()

		c := domain.NewTemplateCollection()
		c.Templates = []*domain.MessageTemplate{{Channel: domain.ChannelEmail, Subject: "Hi", Body: "Body"}}
		require.NoError(t, NewTemplateCollectionRepository(db).Create(ctx, c))
		require.Equal(t, "tpl-1", c.Templates[0].ID)
		require.Equal(t, "tc-2", c.Templates[0].CollectionID)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTemplateCollectionRepository_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts new and updates existing", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE courier_message_templates SET channel = \$2, subject = \$3, body = \$4`).
			WithArgs("tpl-1", domain.ChannelEmail, "S", "B").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`INSERT INTO courier_message_templates`).
			WithArgs("tc-1", domain.ChannelLog, "L", "LB").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("tpl-2"))
		mock.ExpectCommit()

		c := &domain.TemplateCollection{ID: "tc-1", Templates: []*domain.MessageTemplate{
			{ID: "tpl-1", Channel: domain.ChannelEmail, Subject: "S", Body: "B"},
			{Channel: domain.ChannelLog, Subject: "L", Body: "LB"},
		}}
		require.NoError(t, NewTemplateCollectionRepository(db).Save(ctx, c))
		require.Equal(t, "tpl-2", c.Templates[1].ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unsaved collection rejected", func(t *testing.T) {
		db, _, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		err = NewTemplateCollectionRepository(db).Save(ctx, domain.NewTemplateCollection())
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("insert failure rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO courier_message_templates`).WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		c := &domain.TemplateCollection{ID: "tc-1", Templates: []*domain.MessageTemplate{{Channel: domain.ChannelEmail}}}
		require.ErrorIs(t, NewTemplateCollectionRepository(db).Save(ctx, c), sql.ErrConnDone)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTemplateCollectionRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id FROM courier_template_collections WHERE id = \$1`).
			WithArgs("tc-1").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("tc-1"))
		mock.ExpectQuery(`SELECT id, collection_id, channel, subject, body FROM courier_message_templates`).
			WithArgs("tc-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "collection_id", "channel", "subject", "body"}).
				AddRow("tpl-1", "tc-1", domain.ChannelEmail, "S", "B"))

		c, err := NewTemplateCollectionRepository(db).GetByID(ctx, "tc-1")
		require.NoError(t, err)
		require.Equal(t, "tc-1", c.ID)
		require.Len(t, c.Templates, 1)
		require.NotNil(t, c.Tokens)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id FROM courier_template_collections`).WillReturnError(sql.ErrNoRows)

		_, err = NewTemplateCollectionRepository(db).GetByID(ctx, "nope")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestTemplateCollectionRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM courier_message_templates WHERE collection_id = \$1`).
		WithArgs("tc-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM courier_template_collections WHERE id = \$1`).
		WithArgs("tc-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, NewTemplateCollectionRepository(db).Delete(context.Background(), "tc-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTemplateCollectionRepository_Delete_RowsAffectedError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM courier_message_templates`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM courier_template_collections`).
		WillReturnResult(sqlmock.NewErrorResult(sql.ErrConnDone))
	mock.ExpectRollback()

	err = NewTemplateCollectionRepository(db).Delete(context.Background(), "tc-1")
	require.ErrorIs(t, err, sql.ErrConnDone)
	require.NoError(t, mock.ExpectationsWereMet())
}
