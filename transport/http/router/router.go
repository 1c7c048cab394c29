package router

import (
	"banquet/internal/handlers/auth"
	"banquet/internal/handlers/booking"
	"banquet/internal/handlers/payment"
	"banquet/internal/handlers/pricing"
	"banquet/internal/handlers/rules"
	"banquet/internal/handlers/shoppinglist"
	"banquet/internal/handlers/staff"
	"banquet/internal/handlers/staffing"
	"banquet/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth         auth.Handler
	User         user.Handler
	Rules        rules.Handler
	Pricing      pricing.Handler
	Staffing     staffing.Handler
	Staff        staff.Handler
	Booking      booking.Handler
	Payment      payment.Handler
	ShoppingList shoppinglist.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Rules.Router(routerGroup)
		r.DomainHandlers.Pricing.Router(routerGroup)
		r.DomainHandlers.Staffing.Router(routerGroup)
		r.DomainHandlers.Staff.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.ShoppingList.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
