package router

import (
	"github.com/go-chi/chi/v5"

	"lodge/internal/handlers/availability"
	"lodge/internal/handlers/booking"
	"lodge/internal/handlers/room"
	"lodge/internal/handlers/search"
	"lodge/transport/http/middleware"
)

type DomainHandlers struct {
	Availability availability.Handler
	Booking      booking.Handler
	Room         room.Handler
	Search       search.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.AppMiddleware.RequestID)
	router.Use(r.AppMiddleware.Tracing)
	router.Use(r.AppMiddleware.CORS())
	router.Use(r.AppMiddleware.RateLimit())

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Availability.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Search.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
	}
}
