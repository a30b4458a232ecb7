//go:build wireinject
// +build wireinject

package di

import (
	"cyclebook/config"
	"cyclebook/infras/jwt"
	"cyclebook/infras/kafka"
	"cyclebook/infras/otel"
	"cyclebook/infras/s3"
	"cyclebook/permissions"
	"cyclebook/shared/cache"
	"cyclebook/shared/lock"
	"cyclebook/shared/ridecode"
	"cyclebook/transport/http"
	"cyclebook/transport/http/middleware"
	"cyclebook/transport/http/router"
	"cyclebook/transport/ws"

	accountRepository "cyclebook/internal/domains/account/repository"
	authService "cyclebook/internal/domains/auth/service"
	bookingRepository "cyclebook/internal/domains/booking/repository"
	bookingService "cyclebook/internal/domains/booking/service"
	historyRepository "cyclebook/internal/domains/history/repository"
	historyService "cyclebook/internal/domains/history/service"
	notificationService "cyclebook/internal/domains/notification/service"
	authHandler "cyclebook/internal/handlers/auth"
	bookingHandler "cyclebook/internal/handlers/booking"
	historyHandler "cyclebook/internal/handlers/history"
	notificationHandler "cyclebook/internal/handlers/notification"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	ProvidePostgres,
	ProvideRedis,
	otel.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	lock.NewRedisLocker,
	ridecode.New,
	wire.Bind(new(bookingService.CodeGenerator), new(*ridecode.Generator)),
)

var realtime = wire.NewSet(
	ws.NewHub,
	wire.Bind(new(notificationService.Broadcaster), new(*ws.Hub)),
	wire.Bind(new(notificationHandler.Upgrader), new(*ws.Hub)),
)

var authDomain = wire.NewSet(
	accountRepository.New,
	authService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var historyDomain = wire.NewSet(
	historyRepository.New,
	historyService.New,
)

var notificationDomain = wire.NewSet(
	notificationService.New,
)

var domains = wire.NewSet(
	authDomain,
	bookingDomain,
	historyDomain,
	notificationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	historyHandler.New,
	notificationHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, func(), error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		realtime,
		domains,
		routing,
		http.New,
	)

	return nil, nil, nil
}
