package search

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"lodge/infras/otel"
	"lodge/internal/domains/search/service"
	"lodge/shared/constant"
	"lodge/transport/http/response"
)

type Handler struct {
	service service.Search
	otel    otel.Otel
}

func New(service service.Search, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/search", func(routerGroup chi.Router) {
		routerGroup.Get("/{entity}", handler.Search)
	})
}

// Search runs the tiered text search over one entity.
func (handler *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Search")
	defer scope.End()

	entity := chi.URLParam(r, constant.RequestParamEntity)
	query := r.URL.Query().Get(constant.RequestParamQuery)

	page := constant.DefaultValuePage
	if raw := r.URL.Query().Get(constant.RequestParamPage); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			page = parsed
		}
	}

	limit := constant.DefaultValueLimit
	if raw := r.URL.Query().Get(constant.RequestParamLimit); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	result, err := handler.service.Search(ctx, entity, query, page, limit)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to run search")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Search completed successfully")

	response.WithJSON(w, http.StatusOK, result)
}
