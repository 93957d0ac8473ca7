package router

import (
	"parkdz/internal/handlers/admin"
	"parkdz/internal/handlers/checkout"
	"parkdz/internal/handlers/company"
	"parkdz/internal/handlers/health"
	"parkdz/internal/handlers/parking"
	"parkdz/internal/handlers/payment"
	"parkdz/internal/handlers/reservation"
	"parkdz/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Health      health.Handler
	Parking     parking.Handler
	Reservation reservation.Handler
	Checkout    checkout.Handler
	User        user.Handler
	Company     company.Handler
	Payment     payment.Handler
	Admin       admin.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Health.Router(routerGroup)
		r.DomainHandlers.Parking.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.Checkout.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Company.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.Admin.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
