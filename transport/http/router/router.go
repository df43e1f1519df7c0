package router

import (
	"github.com/go-chi/chi/v5"

	"frontdesk/internal/handlers/auth"
	"frontdesk/internal/handlers/booking"
	"frontdesk/internal/handlers/calendar"
	"frontdesk/internal/handlers/dashboard"
	"frontdesk/internal/handlers/guest"
	"frontdesk/internal/handlers/room"
)

type DomainHandlers struct {
	Auth      auth.Handler
	Booking   booking.Handler
	Calendar  calendar.Handler
	Dashboard dashboard.Handler
	Guest     guest.Handler
	Room      room.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Calendar.Router(routerGroup)
		r.DomainHandlers.Dashboard.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
