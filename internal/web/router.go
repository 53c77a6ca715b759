package web

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter wires the view routes. Unmatched paths redirect to the
// landing page.
func NewRouter(h *Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(Logger(logger))
	r.Use(Recoverer(logger))

	r.Get("/", h.Landing)
	r.Get("/auth/login", h.LoginForm)
	r.Post("/auth/login", h.Login)
	r.Get("/auth/signup", h.SignupForm)
	r.Post("/auth/signup", h.Signup)

	r.Group(func(pr chi.Router) {
		pr.Use(h.RequireSession)
		pr.Get("/dashboard", h.Dashboard)
		pr.Get("/tickets", h.Tickets)
		pr.Post("/tickets", h.SaveTicket)
		pr.Post("/tickets/{id}/delete", h.DeleteTicket)
		pr.Post("/logout", h.Logout)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusFound)
	})

	return r
}
