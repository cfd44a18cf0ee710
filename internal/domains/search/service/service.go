package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/internal/domains/search/model"
	"lodge/internal/domains/search/model/dto"
	"lodge/internal/domains/search/repository"
	"lodge/shared/constant"
	"lodge/shared/failure"
)

type Search interface {
	Search(ctx context.Context, entity, query string, page, limit int) (dto.SearchResponse, error)
}

type serviceImpl struct {
	repo repository.Search
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Search, cfg *config.Config, otel otel.Otel) Search {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

// Search cascades through the retrieval tiers, most precise first. A tier
// that returns rows ends the cascade; the next tier is only consulted when
// the previous one came back empty. A failing full-text parse is not fatal,
// it just hands over to the trigram tier.
func (s *serviceImpl) Search(ctx context.Context, entity, query string, page, limit int) (res dto.SearchResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	if strings.TrimSpace(query) == "" {
		return res, failure.BadRequestFromString("search query cannot be empty") // nolint:wrapcheck
	}

	if page < 1 {
		return res, failure.InvalidPageParam
	}

	if limit < 1 {
		return res, failure.InvalidLimitParam
	}

	table, ok := model.TableFor(entity)
	if !ok {
		return res, failure.BadRequestFromString("unknown search entity: " + entity) // nolint:wrapcheck
	}

	scope.SetAttribute("search.entity", entity)

	offset := (page - 1) * limit

	ids, err := s.repo.FullText(ctx, table, query, limit, offset)
	switch {
	case err != nil:
		log.Warn().Err(err).Str("entity", entity).Msg("full-text tier failed, falling back to trigram")
	case len(ids) > 0:
		return s.respond(entity, query, page, limit, model.TierFullText, ids), nil
	}

	ids, err = s.repo.Trigram(ctx, table, query, limit, offset)
	if err != nil {
		log.Error().Err(err).Str("entity", entity).Msg("trigram tier failed")

		return res, failure.StoreFailure(err) // nolint:wrapcheck
	}

	if len(ids) > 0 {
		return s.respond(entity, query, page, limit, model.TierTrigram, ids), nil
	}

	ids, err = s.repo.Substring(ctx, table, query, limit, offset)
	if err != nil {
		log.Error().Err(err).Str("entity", entity).Msg("substring tier failed")

		return res, failure.StoreFailure(err) // nolint:wrapcheck
	}

	return s.respond(entity, query, page, limit, model.TierSubstring, ids), nil
}

func (s *serviceImpl) respond(entity, query string, page, limit, tier int, ids []int64) dto.SearchResponse {
	if ids == nil {
		ids = []int64{}
	}

	return dto.SearchResponse{
		Entity: entity,
		Query:  query,
		Page:   page,
		Limit:  limit,
		Tier:   tier,
		IDs:    ids,
		Total:  len(ids),
	}
}
