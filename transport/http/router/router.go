package router

import (
	_ "cyclebook/docs"
	"cyclebook/internal/handlers/auth"
	"cyclebook/internal/handlers/booking"
	"cyclebook/internal/handlers/history"
	"cyclebook/internal/handlers/notification"
	"cyclebook/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Auth         auth.Handler
	Booking      booking.Handler
	History      history.Handler
	Notification notification.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	app            middleware.AppMiddleware
	authRole       middleware.AuthRole
}

// SetupRoutes mounts the JSON API under /api behind rate limiting and role checks.
// The websocket stream and the docs stay public.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(chiMiddleware.Recoverer, r.app.RequestID, r.app.Tracing, r.app.CORS())

	r.DomainHandlers.Notification.Router(router)
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/api", func(routerGroup chi.Router) {
		routerGroup.Use(r.app.RateLimit(), r.authRole.Auth, r.authRole.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.History.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		app:            app,
		authRole:       authRole,
	}
}
