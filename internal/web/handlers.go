// Package web serves the application views: public landing and auth
// pages, and the session-gated dashboard and ticket pages.
package web

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tickify/tickify/internal/domain/account"
	"github.com/tickify/tickify/internal/domain/session"
	"github.com/tickify/tickify/internal/domain/ticket"
)

const fixErrorsNotice = "Please fix the errors below."

// Handler holds the view handlers and their dependencies.
type Handler struct {
	accounts  *account.Service
	sessions  *session.Service
	tickets   *ticket.Service
	templates *template.Template
	flash     *flashStore
	logger    *slog.Logger
}

// NewHandler creates the view handler set.
func NewHandler(accounts *account.Service, sessions *session.Service, tickets *ticket.Service, flashSecret string, logger *slog.Logger) *Handler {
	return &Handler{
		accounts:  accounts,
		sessions:  sessions,
		tickets:   tickets,
		templates: parseTemplates(),
		flash:     newFlashStore(flashSecret),
		logger:    logger,
	}
}

// RequireSession gates protected views. The check runs on every render;
// nothing is cached between requests.
func (h *Handler) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.sessions.IsAuthorized(r.Context()) {
			h.flash.error(w, r, "Please log in to continue.")
			http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Landing renders the public landing page.
func (h *Handler) Landing(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "landing.html", map[string]any{
		"LoggedIn": h.sessions.IsAuthorized(r.Context()),
	})
}

// SignupForm renders an empty signup form.
func (h *Handler) SignupForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "signup.html", map[string]any{
		"Values": map[string]string{},
		"Errors": map[string]string{},
	})
}

// Signup handles the signup form submission.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	req := account.RegisterRequest{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
		Confirm:  r.FormValue("confirm"),
	}

	err := h.accounts.Register(r.Context(), req)
	if err == nil {
		h.flash.success(w, r, "Signup successful!")
		http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
		return
	}

	values := map[string]string{"email": req.Email}
	var verr *account.ValidationError
	switch {
	case errors.As(err, &verr):
		h.render(w, r, "signup.html", map[string]any{
			"Values":  values,
			"Errors":  verr.Fields,
			"Notices": []Notice{{Kind: "error", Message: fixErrorsNotice}},
		})
	case errors.Is(err, account.ErrDuplicateAccount):
		h.render(w, r, "signup.html", map[string]any{
			"Values":  values,
			"Errors":  map[string]string{},
			"Notices": []Notice{{Kind: "error", Message: "An account with this email already exists."}},
		})
	default:
		h.serverError(w, r, err)
	}
}

// LoginForm renders an empty login form.
func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "login.html", map[string]any{
		"Values": map[string]string{},
		"Errors": map[string]string{},
	})
}

// Login handles the login form submission.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	req := account.LoginRequest{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}

	_, err := h.accounts.Login(r.Context(), req)
	if err == nil {
		h.flash.success(w, r, "Login successful!")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	values := map[string]string{"email": req.Email}
	var verr *account.ValidationError
	switch {
	case errors.As(err, &verr):
		h.render(w, r, "login.html", map[string]any{
			"Values":  values,
			"Errors":  verr.Fields,
			"Notices": []Notice{{Kind: "error", Message: fixErrorsNotice}},
		})
	case errors.Is(err, account.ErrInvalidCredentials):
		h.render(w, r, "login.html", map[string]any{
			"Values":  values,
			"Errors":  map[string]string{},
			"Notices": []Notice{{Kind: "error", Message: "Invalid credentials. Please try again."}},
		})
	default:
		h.serverError(w, r, err)
	}
}

// Logout clears the store and returns to the landing page.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.accounts.Logout(r.Context()); err != nil {
		h.serverError(w, r, err)
		return
	}
	h.flash.success(w, r, "Logged out successfully!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Dashboard renders the stats cards.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Current(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	stats, err := h.tickets.Stats(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, "dashboard.html", map[string]any{
		"Email": sess.Email,
		"Stats": stats,
	})
}

type ticketForm struct {
	ID          int64
	Title       string
	Description string
	Status      ticket.Status
}

// Tickets renders the ticket form and list. With ?edit=<id> the form is
// prefilled from the matching ticket.
func (h *Handler) Tickets(w http.ResponseWriter, r *http.Request) {
	all, err := h.tickets.List(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	form := ticketForm{Status: ticket.StatusOpen}
	if editID, parseErr := strconv.ParseInt(r.URL.Query().Get("edit"), 10, 64); parseErr == nil {
		for _, t := range all {
			if t.ID == editID {
				form = ticketForm{ID: t.ID, Title: t.Title, Description: t.Description, Status: t.Status}
				break
			}
		}
	}

	h.render(w, r, "tickets.html", map[string]any{
		"Tickets": all,
		"Form":    form,
		"Errors":  map[string]string{},
	})
}

// SaveTicket creates a ticket, or updates one when the hidden id field
// is set.
func (h *Handler) SaveTicket(w http.ResponseWriter, r *http.Request) {
	form := ticketForm{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Status:      ticket.Status(r.FormValue("status")),
	}
	if rawID := r.FormValue("id"); rawID != "" {
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			http.Redirect(w, r, "/tickets", http.StatusSeeOther)
			return
		}
		form.ID = id
	}

	var err error
	if form.ID == 0 {
		_, err = h.tickets.Create(r.Context(), ticket.CreateRequest{
			Title:       form.Title,
			Description: form.Description,
			Status:      form.Status,
		})
	} else {
		_, err = h.tickets.Update(r.Context(), ticket.UpdateRequest{
			ID:          form.ID,
			Title:       form.Title,
			Description: form.Description,
			Status:      form.Status,
		})
	}

	if err == nil {
		if form.ID == 0 {
			h.flash.success(w, r, "Ticket created successfully!")
		} else {
			h.flash.success(w, r, "Ticket updated successfully!")
		}
		http.Redirect(w, r, "/tickets", http.StatusSeeOther)
		return
	}

	var verr *ticket.ValidationError
	switch {
	case errors.As(err, &verr):
		all, listErr := h.tickets.List(r.Context())
		if listErr != nil {
			h.serverError(w, r, listErr)
			return
		}
		h.render(w, r, "tickets.html", map[string]any{
			"Tickets": all,
			"Form":    form,
			"Errors":  verr.Fields,
			"Notices": []Notice{{Kind: "error", Message: fixErrorsNotice}},
		})
	case errors.Is(err, ticket.ErrTicketNotFound):
		h.flash.error(w, r, "Ticket not found.")
		http.Redirect(w, r, "/tickets", http.StatusSeeOther)
	default:
		h.serverError(w, r, err)
	}
}

// DeleteTicket removes a ticket. The form must carry confirm=yes; the
// template gates submission behind an explicit confirmation dialog, and
// the handler refuses requests that skipped it.
func (h *Handler) DeleteTicket(w http.ResponseWriter, r *http.Request) {
	if r.FormValue("confirm") != "yes" {
		h.flash.error(w, r, "Deletion requires confirmation.")
		http.Redirect(w, r, "/tickets", http.StatusSeeOther)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Redirect(w, r, "/tickets", http.StatusSeeOther)
		return
	}

	if err := h.tickets.Delete(r.Context(), id); err != nil {
		h.serverError(w, r, err)
		return
	}

	h.flash.success(w, r, "Ticket deleted successfully!")
	http.Redirect(w, r, "/tickets", http.StatusSeeOther)
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("request failed",
		"request_id", requestIDFrom(r.Context()),
		"path", r.URL.Path,
		"error", err,
	)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
