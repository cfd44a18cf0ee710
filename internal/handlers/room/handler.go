package room

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"lodge/infras/otel"
	"lodge/internal/domains/room/model"
	"lodge/internal/domains/room/model/dto"
	"lodge/internal/domains/room/service"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/validator"
	"lodge/transport/http/response"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/{id}", handler.GetRoomByID)
		routerGroup.Patch("/{id}", handler.UpdateRoom)
		routerGroup.Delete("/{id}", handler.DeleteRoom)
		routerGroup.Patch("/{id}/status", handler.SetRoomStatus)
	})
}

// CreateRoom registers a new room.
func (handler *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	req := dto.CreateRoomRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room created successfully")

	response.WithMessage(w, http.StatusCreated, "Room created successfully")
}

// GetRooms lists rooms with optional status filtering and pagination.
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if status := r.URL.Query().Get(model.FieldStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	rooms, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomByID retrieves one room.
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id, err := parseID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room retrieved successfully")

	response.WithJSON(w, http.StatusOK, room)
}

// UpdateRoom updates the mutable fields of a room.
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	id, err := parseID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.UpdateRoomRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room updated successfully")

	response.WithMessage(w, http.StatusOK, "Room updated successfully")
}

// DeleteRoom removes a room.
func (handler *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	id, err := parseID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room deleted successfully")

	response.WithMessage(w, http.StatusOK, "Room deleted successfully")
}

// SetRoomStatus moves a room to a new operational status, recording the
// transition in the status history.
func (handler *Handler) SetRoomStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetRoomStatus")
	defer scope.End()

	id, err := parseID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.SetRoomStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SetStatus(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set room status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room status updated successfully")

	response.WithMessage(w, http.StatusOK, "Room status updated successfully")
}

func parseID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, constant.RequestParamID)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, failure.BadRequestFromString("invalid id: " + raw) // nolint:wrapcheck
	}

	return id, nil
}
