package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lodge/config"
	otelMocks "lodge/infras/otel/mocks"
	"lodge/infras/postgres"
	"lodge/internal/domains/search/repository"
)

func newRepo(t *testing.T) (repository.Search, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	conn := &postgres.Connection{Read: sqlxDB, Write: sqlxDB}

	cfg := &config.Config{}
	cfg.Search.TextConfig = "english"
	cfg.Search.TrigramThreshold = 0.005

	return repository.New(conn, cfg, otelMocks.NewOtel()), mock
}

func TestSearchRepository_FullText(t *testing.T) {
	t.Run("returns ranked ids", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectQuery(`SELECT id FROM rooms\s+WHERE search_vector @@ websearch_to_tsquery`).
			WithArgs("english", "sea view", 10, 0).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7).AddRow(3))

		ids, err := repo.FullText(context.Background(), "rooms", "sea view", 10, 0)

		assert.NoError(t, err)
		assert.Equal(t, []int64{7, 3}, ids)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectQuery(`SELECT id FROM rooms`).
			WillReturnError(errors.New("syntax error in tsquery"))

		_, err := repo.FullText(context.Background(), "rooms", "!!!", 10, 0)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSearchRepository_Trigram(t *testing.T) {
	t.Run("sets the threshold inside a read transaction", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(`SELECT set_limit\(\$1\)`).
			WithArgs(0.005).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT id FROM addons\s+WHERE search_text %`).
			WithArgs("brkfast", 5, 0).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
		mock.ExpectCommit()

		ids, err := repo.Trigram(context.Background(), "addons", "brkfast", 5, 0)

		assert.NoError(t, err)
		assert.Equal(t, []int64{2}, ids)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when the match fails", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(`SELECT set_limit\(\$1\)`).
			WithArgs(0.005).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT id FROM addons`).
			WillReturnError(errors.New("database error"))
		mock.ExpectRollback()

		_, err := repo.Trigram(context.Background(), "addons", "brkfast", 5, 0)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSearchRepository_Substring(t *testing.T) {
	t.Run("matches in natural order", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectQuery(`SELECT id FROM users\s+WHERE search_text ILIKE`).
			WithArgs("son", 10, 0).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(4).AddRow(6))

		ids, err := repo.Substring(context.Background(), "users", "son", 10, 0)

		assert.NoError(t, err)
		assert.Equal(t, []int64{1, 4, 6}, ids)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
