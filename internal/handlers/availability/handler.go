package availability

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"lodge/infras/otel"
	"lodge/internal/domains/availability/model/dto"
	"lodge/internal/domains/availability/service"
	"lodge/shared/constant"
	"lodge/shared/failure"
	"lodge/transport/http/response"
)

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/availability", func(routerGroup chi.Router) {
		routerGroup.Get("/rooms", handler.GetCandidateRooms)
		routerGroup.Get("/rooms/{id}/dates", handler.GetFreeDates)
		routerGroup.Get("/rooms/{id}/check", handler.CheckRoom)
	})
}

// CheckRoom reports whether one room is free for a stay window.
func (handler *Handler) CheckRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckRoom")
	defer scope.End()

	id, err := parseID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	in := r.URL.Query().Get(constant.RequestParamCheckIn)
	out := r.URL.Query().Get(constant.RequestParamCheckOut)

	checkIn, checkOut, err := dto.ParseWindow(in, out)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	available, err := handler.service.IsRoomAvailable(ctx, id, checkIn, checkOut)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check room availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room availability checked")

	response.WithJSON(w, http.StatusOK, dto.CheckResponse{
		RoomID:    id,
		CheckIn:   in,
		CheckOut:  out,
		Available: available,
	})
}

// GetFreeDates lists the free days of one room within the horizon.
func (handler *Handler) GetFreeDates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFreeDates")
	defer scope.End()

	id, err := parseID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	dates, err := handler.service.FreeDates(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get free dates")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Free dates retrieved successfully")

	response.WithJSON(w, http.StatusOK, dates)
}

// GetCandidateRooms lists rooms free for a window with enough capacity.
func (handler *Handler) GetCandidateRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCandidateRooms")
	defer scope.End()

	query := r.URL.Query()

	checkIn, checkOut, err := dto.ParseWindow(query.Get(constant.RequestParamCheckIn), query.Get(constant.RequestParamCheckOut))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	minAdult, err := parseCapacity(query.Get(constant.RequestParamAdults))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	minChild, err := parseCapacity(query.Get(constant.RequestParamChildren))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	rooms, err := handler.service.CandidateRooms(ctx, checkIn, checkOut, minAdult, minChild)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get candidate rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Candidate rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

func parseID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, constant.RequestParamID)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, failure.BadRequestFromString("invalid id: " + raw) // nolint:wrapcheck
	}

	return id, nil
}

// parseCapacity treats a missing parameter as zero, so capacity filters are
// optional.
func parseCapacity(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}

	capacity, err := strconv.Atoi(raw)
	if err != nil || capacity < 0 {
		return 0, failure.BadRequestFromString("invalid capacity parameter: " + raw) // nolint:wrapcheck
	}

	return capacity, nil
}
