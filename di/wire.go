//go:build wireinject
// +build wireinject

package di

import (
	"banquet/config"
	"banquet/infras/jwt"
	"banquet/infras/kafka"
	"banquet/infras/otel"
	"banquet/infras/postgres"
	"banquet/infras/redis"
	"banquet/infras/s3"
	"banquet/internal/events"
	"banquet/permissions"
	"banquet/shared/cache"
	"banquet/transport/http"
	"banquet/transport/http/middleware"
	"banquet/transport/http/router"

	"github.com/google/wire"

	authService "banquet/internal/domains/auth/service"
	bookingRepository "banquet/internal/domains/booking/repository"
	bookingService "banquet/internal/domains/booking/service"
	paymentRepository "banquet/internal/domains/payment/repository"
	paymentService "banquet/internal/domains/payment/service"
	pricingService "banquet/internal/domains/pricing/service"
	rulesRepository "banquet/internal/domains/rules/repository"
	rulesService "banquet/internal/domains/rules/service"
	shoppinglistRepository "banquet/internal/domains/shoppinglist/repository"
	shoppinglistService "banquet/internal/domains/shoppinglist/service"
	staffRepository "banquet/internal/domains/staff/repository"
	staffService "banquet/internal/domains/staff/service"
	staffingService "banquet/internal/domains/staffing/service"
	userRepository "banquet/internal/domains/user/repository"
	userService "banquet/internal/domains/user/service"

	authHandler "banquet/internal/handlers/auth"
	bookingHandler "banquet/internal/handlers/booking"
	paymentHandler "banquet/internal/handlers/payment"
	pricingHandler "banquet/internal/handlers/pricing"
	rulesHandler "banquet/internal/handlers/rules"
	shoppinglistHandler "banquet/internal/handlers/shoppinglist"
	staffHandler "banquet/internal/handlers/staff"
	staffingHandler "banquet/internal/handlers/staffing"
	userHandler "banquet/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
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
	events.NewPublisher,
)

var rulesDomain = wire.NewSet(
	rulesRepository.New,
	rulesService.New,
)

var pricingDomain = wire.NewSet(
	pricingService.New,
)

var staffingDomain = wire.NewSet(
	staffingService.New,
)

var staffDomain = wire.NewSet(
	staffRepository.New,
	staffService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.NewCustomerPayment,
	paymentRepository.NewLaborPayment,
	paymentService.New,
)

var shoppinglistDomain = wire.NewSet(
	shoppinglistRepository.New,
	shoppinglistService.New,
	wire.Bind(new(shoppinglistService.Syncer), new(shoppinglistService.ShoppingList)),
)

var authDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var domains = wire.NewSet(
	rulesDomain,
	pricingDomain,
	staffingDomain,
	staffDomain,
	bookingDomain,
	paymentDomain,
	shoppinglistDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	rulesHandler.New,
	pricingHandler.New,
	staffingHandler.New,
	staffHandler.New,
	bookingHandler.New,
	paymentHandler.New,
	shoppinglistHandler.New,
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
