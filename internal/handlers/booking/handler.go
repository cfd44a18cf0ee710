package booking

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"lodge/infras/otel"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/service"
	"lodge/shared/constant"
	"lodge/shared/failure"
	"lodge/shared/validator"
	"lodge/transport/http/response"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Post("/{id}/cancel", handler.CancelBooking)
		routerGroup.Post("/{id}/reschedule", handler.RescheduleBooking)
	})
}

// CreateBooking books a room for a stay, including addon lines and the
// upfront payment.
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created successfully")

	response.WithJSON(w, http.StatusCreated, booking)
}

// GetBookingByID retrieves one booking.
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id, err := parseID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// CancelBooking cancels a confirmed booking and issues the tiered refund.
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id, err := parseID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	result, err := handler.service.Cancel(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking cancelled successfully")

	response.WithJSON(w, http.StatusOK, result)
}

// RescheduleBooking moves a confirmed booking to a new stay window, falling
// back to candidate rooms when the window is taken.
func (handler *Handler) RescheduleBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RescheduleBooking")
	defer scope.End()

	id, err := parseID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.RescheduleBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	result, err := handler.service.Reschedule(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reschedule booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking reschedule processed")

	response.WithJSON(w, http.StatusOK, result)
}

func parseID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, constant.RequestParamID)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, failure.BadRequestFromString("invalid id: " + raw) // nolint:wrapcheck
	}

	return id, nil
}
