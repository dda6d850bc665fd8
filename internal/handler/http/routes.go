package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router for the v1 REST API.
//
// Routes are grouped by the session stage they require: public routes carry
// no token, /login/test-token accepts any valid token, the item and /users/me
// routes require an active account, and user administration requires an
// active superuser.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api/v1", func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post("/login/access-token", h.loginAccessToken)
			r.Post("/password-recovery/{email}", h.recoverPassword)
			r.Post("/reset-password/", h.resetPassword)
			r.Post("/users/open", h.openRegister)
			r.Get("/utils/ping/", h.ping)
		})

		// any valid token, active or not
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/login/test-token", h.testToken)
		})

		// active user
		r.Group(func(r chi.Router) {
			r.Use(h.authActiveUser)

			r.Get("/users/me", h.readUserMe)
			r.Patch("/users/me", h.updateUserMe)
			r.Get("/users/{id}", h.readUserByID)

			r.Route("/items", func(r chi.Router) {
				r.Get("/", h.listItems)
				r.Post("/", h.createItem)
				r.Get("/{id}", h.readItem)
				r.Patch("/{id}", h.updateItem)
				r.Delete("/{id}", h.deleteItem)
			})
		})

		// active superuser
		r.Group(func(r chi.Router) {
			r.Use(h.authActiveSuperuser)

			r.Get("/users/", h.listUsers)
			r.Post("/users/", h.createUser)
			r.Patch("/users/{id}", h.updateUser)
			r.Delete("/users/{id}", h.deleteUser)
			r.Post("/utils/test-email/", h.testEmail)
		})
	})

	return router
}
