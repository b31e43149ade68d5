package router

import (
	"grandhotel/internal/handlers/admin"
	"grandhotel/internal/handlers/blacklist"
	"grandhotel/internal/handlers/booking"
	"grandhotel/internal/handlers/checkout"
	"grandhotel/internal/handlers/coupon"
	"grandhotel/internal/handlers/inquiry"
	"grandhotel/internal/handlers/quote"
	"grandhotel/internal/handlers/review"
	"grandhotel/internal/handlers/room"
	"grandhotel/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Room      room.Handler
	Booking   booking.Handler
	Inquiry   inquiry.Handler
	Review    review.Handler
	User      user.Handler
	Coupon    coupon.Handler
	Blacklist blacklist.Handler
	Admin     admin.Handler
	Quote     quote.Handler
	Checkout  checkout.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Inquiry.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Coupon.Router(routerGroup)
		r.DomainHandlers.Blacklist.Router(routerGroup)
		r.DomainHandlers.Admin.Router(routerGroup)
		r.DomainHandlers.Quote.Router(routerGroup)
		r.DomainHandlers.Checkout.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
