package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/shared/constant"
	"lodge/shared/logger"
)

// Search runs the three retrieval tiers against a projected table. Table
// names always come from the entity registry, never from user input.
type Search interface {
	FullText(ctx context.Context, table, query string, limit, offset int) ([]int64, error)
	Trigram(ctx context.Context, table, query string, limit, offset int) ([]int64, error)
	Substring(ctx context.Context, table, query string, limit, offset int) ([]int64, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	cfg  *config.Config
	otel otel.Otel
}

func New(db *postgres.Connection, cfg *config.Config, otel otel.Otel) Search {
	return &repositoryImpl{
		db:   db,
		cfg:  cfg,
		otel: otel,
	}
}

// FullText matches the weighted search_vector against a websearch-syntax
// query, ranked by cover density.
func (repo *repositoryImpl) FullText(ctx context.Context, table, query string, limit, offset int) ([]int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".search.FullText")
	defer scope.End()

	stmt := fmt.Sprintf(`
		SELECT id FROM %s
		WHERE search_vector @@ websearch_to_tsquery($1::regconfig, $2)
		ORDER BY ts_rank_cd(search_vector, websearch_to_tsquery($1::regconfig, $2)) DESC
		LIMIT $3 OFFSET $4`, table)
	scope.SetAttribute(constant.OtelQueryAttributeKey, stmt)

	var ids []int64
	if err := repo.db.Read.SelectContext(ctx, &ids, stmt, repo.cfg.Search.TextConfig, query, limit, offset); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to run full-text search (%s): %w", table, err)
	}

	return ids, nil
}

// Trigram matches search_text by trigram similarity. The similarity
// threshold only lives for the duration of one read transaction, so
// set_limit never leaks into other connections' sessions.
func (repo *repositoryImpl) Trigram(ctx context.Context, table, query string, limit, offset int) ([]int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".search.Trigram")
	defer scope.End()

	stmt := fmt.Sprintf(`
		SELECT id FROM %s
		WHERE search_text %% $1
		ORDER BY similarity(search_text, $1) DESC
		LIMIT $2 OFFSET $3`, table)
	scope.SetAttribute(constant.OtelQueryAttributeKey, stmt)

	tx, err := repo.db.Read.BeginTxx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to begin read transaction: %w", err)
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			log.Error().Err(err).Msg("failed to roll back read transaction")
		}
	}()

	if _, err := tx.ExecContext(ctx, "SELECT set_limit($1)", repo.cfg.Search.TrigramThreshold); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to set similarity threshold: %w", err)
	}

	var ids []int64
	if err := tx.SelectContext(ctx, &ids, stmt, query, limit, offset); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to run trigram search (%s): %w", table, err)
	}

	if err := tx.Commit(); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to commit read transaction: %w", err)
	}

	return ids, nil
}

// Substring is the last-resort tier: a raw case-insensitive containment
// scan over search_text in natural order.
func (repo *repositoryImpl) Substring(ctx context.Context, table, query string, limit, offset int) ([]int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".search.Substring")
	defer scope.End()

	stmt := fmt.Sprintf(`
		SELECT id FROM %s
		WHERE search_text ILIKE '%%' || $1 || '%%'
		LIMIT $2 OFFSET $3`, table)
	scope.SetAttribute(constant.OtelQueryAttributeKey, stmt)

	var ids []int64
	if err := repo.db.Read.SelectContext(ctx, &ids, stmt, query, limit, offset); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to run substring search (%s): %w", table, err)
	}

	return ids, nil
}
