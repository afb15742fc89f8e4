package http

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fayrashop/api/models"
)

// adminOnly and staff are the role sets used by the route table below.
var (
	adminOnly = []string{models.RoleAdmin}
	staff     = []string{models.RoleAdmin, models.RoleManager}
)

// Init builds the router. Every route carries an explicit descriptor; the
// shared stages (panic recovery, tracing, request logging) wrap the whole
// router, the per-route stages (throttle, auth, roles, responder) are
// assembled by route.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// Status surfaces.
	router.Get("/", h.route(RouteSpec{Name: "status-page", Public: true, SkipEnvelope: true}, h.statusPage))
	router.Get("/health", h.route(RouteSpec{Name: "health", Public: true}, h.health))
	router.Get("/api-info", h.route(RouteSpec{Name: "api-info", Public: true}, h.apiInfo))

	router.Route("/api/v1", func(r chi.Router) {
		// Authentication. Login and register carry a tighter budget than
		// the default to slow down credential stuffing.
		authRate := &RateConfig{Limit: 5, Window: time.Minute}
		r.Post("/auth/register", h.route(RouteSpec{Name: "auth-register", Public: true, RateLimit: authRate}, h.register))
		r.Post("/auth/login", h.route(RouteSpec{Name: "auth-login", Public: true, RateLimit: authRate}, h.login))
		r.Post("/auth/refresh", h.route(RouteSpec{Name: "auth-refresh", Public: true}, h.refresh))

		// Users.
		r.Get("/users", h.route(RouteSpec{Name: "users-list", RequiredRoles: staff}, h.listUsers))
		r.Get("/users/{id}", h.route(RouteSpec{Name: "users-get"}, h.getUser))
		r.Patch("/users/{id}", h.route(RouteSpec{Name: "users-update"}, h.updateUser))
		r.Post("/users/{id}/password", h.route(RouteSpec{Name: "users-change-password"}, h.changePassword))
		r.Patch("/users/{id}/status", h.route(RouteSpec{Name: "users-set-status", RequiredRoles: adminOnly}, h.setUserStatus))
		r.Delete("/users/{id}", h.route(RouteSpec{Name: "users-delete", RequiredRoles: adminOnly}, h.deleteUser))

		// Roles (admin only).
		r.Post("/roles", h.route(RouteSpec{Name: "roles-create", RequiredRoles: adminOnly}, h.createRole))
		r.Get("/roles", h.route(RouteSpec{Name: "roles-list", RequiredRoles: adminOnly}, h.listRoles))
		r.Get("/roles/{id}", h.route(RouteSpec{Name: "roles-get", RequiredRoles: adminOnly}, h.getRole))
		r.Patch("/roles/{id}", h.route(RouteSpec{Name: "roles-update", RequiredRoles: adminOnly}, h.updateRole))
		r.Delete("/roles/{id}", h.route(RouteSpec{Name: "roles-delete", RequiredRoles: adminOnly}, h.deleteRole))

		// Orders. Ownership checks live in the service; the role sets here
		// only gate the staff-wide operations.
		r.Post("/orders", h.route(RouteSpec{Name: "orders-create"}, h.createOrder))
		r.Get("/orders", h.route(RouteSpec{Name: "orders-list"}, h.listOrders))
		r.Get("/orders/{id}", h.route(RouteSpec{Name: "orders-get"}, h.getOrder))
		r.Patch("/orders/{id}/status", h.route(RouteSpec{Name: "orders-update-status", RequiredRoles: staff}, h.updateOrderStatus))
		r.Post("/orders/{id}/cancel", h.route(RouteSpec{Name: "orders-cancel"}, h.cancelOrder))
	})

	router.NotFound(h.route(RouteSpec{Name: "not-found", Public: true}, h.notFound))
	router.MethodNotAllowed(h.route(RouteSpec{Name: "method-not-allowed", Public: true}, h.methodNotAllowed))

	return router
}
