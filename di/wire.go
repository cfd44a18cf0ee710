//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"lodge/config"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/infras/redis"
	"lodge/internal/events"
	"lodge/shared/cache"
	"lodge/shared/clock"
	"lodge/transport/http"
	"lodge/transport/http/middleware"
	"lodge/transport/http/router"

	addonRepository "lodge/internal/domains/addon/repository"
	availabilityService "lodge/internal/domains/availability/service"
	bookingRepository "lodge/internal/domains/booking/repository"
	bookingService "lodge/internal/domains/booking/service"
	roomRepository "lodge/internal/domains/room/repository"
	roomService "lodge/internal/domains/room/service"
	roomTypeRepository "lodge/internal/domains/roomtype/repository"
	searchRepository "lodge/internal/domains/search/repository"
	searchService "lodge/internal/domains/search/service"

	availabilityHandler "lodge/internal/handlers/availability"
	bookingHandler "lodge/internal/handlers/booking"
	roomHandler "lodge/internal/handlers/room"
	searchHandler "lodge/internal/handlers/search"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	wire.Bind(new(postgres.Txer), new(*postgres.Connection)),
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	clock.New,
	events.NewPublisher,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomTypeRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	addonRepository.New,
	bookingRepository.New,
	bookingService.New,
)

var availabilityDomain = wire.NewSet(
	availabilityService.New,
)

var searchDomain = wire.NewSet(
	searchRepository.New,
	searchService.New,
)

var domains = wire.NewSet(
	roomDomain,
	bookingDomain,
	availabilityDomain,
	searchDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	availabilityHandler.New,
	bookingHandler.New,
	roomHandler.New,
	searchHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
