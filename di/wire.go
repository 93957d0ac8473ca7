//go:build wireinject
// +build wireinject

package di

import (
	"parkdz/config"
	"parkdz/infras/kafka"
	"parkdz/infras/otel"
	"parkdz/infras/payment"
	"parkdz/infras/postgres"
	"parkdz/infras/redis"
	"parkdz/shared/cache"
	"parkdz/transport/http"
	"parkdz/transport/http/middleware"
	"parkdz/transport/http/router"

	adminRepository "parkdz/internal/domains/admin/repository"
	adminService "parkdz/internal/domains/admin/service"
	checkoutRepository "parkdz/internal/domains/checkout/repository"
	checkoutService "parkdz/internal/domains/checkout/service"
	companyRepository "parkdz/internal/domains/company/repository"
	companyService "parkdz/internal/domains/company/service"
	parkingRepository "parkdz/internal/domains/parking/repository"
	parkingService "parkdz/internal/domains/parking/service"
	reservationRepository "parkdz/internal/domains/reservation/repository"
	reservationService "parkdz/internal/domains/reservation/service"
	userRepository "parkdz/internal/domains/user/repository"
	userService "parkdz/internal/domains/user/service"

	adminHandler "parkdz/internal/handlers/admin"
	checkoutHandler "parkdz/internal/handlers/checkout"
	companyHandler "parkdz/internal/handlers/company"
	healthHandler "parkdz/internal/handlers/health"
	parkingHandler "parkdz/internal/handlers/parking"
	paymentHandler "parkdz/internal/handlers/payment"
	reservationHandler "parkdz/internal/handlers/reservation"
	userHandler "parkdz/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
	payment.NewBaridiMob,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var parkingDomain = wire.NewSet(
	parkingRepository.NewLocation,
	parkingRepository.NewSpot,
	parkingService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var checkoutDomain = wire.NewSet(
	checkoutRepository.New,
	checkoutService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var companyDomain = wire.NewSet(
	companyRepository.New,
	companyService.New,
)

var adminDomain = wire.NewSet(
	adminRepository.New,
	adminService.New,
)

var domains = wire.NewSet(
	parkingDomain,
	reservationDomain,
	checkoutDomain,
	userDomain,
	companyDomain,
	adminDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	parkingHandler.New,
	reservationHandler.New,
	checkoutHandler.New,
	userHandler.New,
	companyHandler.New,
	paymentHandler.New,
	adminHandler.New,
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
