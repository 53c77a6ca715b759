package web_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tickify/tickify/internal/domain/account"
	"github.com/tickify/tickify/internal/domain/session"
	"github.com/tickify/tickify/internal/domain/ticket"
	"github.com/tickify/tickify/internal/repository"
	"github.com/tickify/tickify/internal/store"
	"github.com/tickify/tickify/internal/web"
)

type testApp struct {
	router  http.Handler
	store   store.Store
	tickets *ticket.Service
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	st := store.NewMemory()
	logger := slog.Default()

	credentials := repository.NewCredentialRepository(st)
	sessionRepo := repository.NewSessionRepository(st)
	ticketRepo := repository.NewTicketRepository(st)

	accounts := account.NewService(credentials, sessionRepo, st, logger)
	sessions := session.NewService(sessionRepo, logger)
	tickets := ticket.NewService(ticketRepo, logger)

	h := web.NewHandler(accounts, sessions, tickets, "test-secret", logger)
	return &testApp{
		router:  web.NewRouter(h, logger),
		store:   st,
		tickets: tickets,
	}
}

func (a *testApp) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) postForm(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) logIn(t *testing.T) {
	t.Helper()
	repo := repository.NewSessionRepository(a.store)
	require.NoError(t, repo.Put(context.Background(), &session.Session{Email: "user@example.com"}))
}

func TestLandingPublic(t *testing.T) {
	app := newTestApp(t)

	rec := app.get(t, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Tickify")
}

func TestProtectedViewsRedirectWithoutSession(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/dashboard", "/tickets"} {
		rec := app.get(t, path)
		require.Equal(t, http.StatusSeeOther, rec.Code, "GET %s", path)
		require.Equal(t, "/auth/login", rec.Header().Get("Location"))
	}

	rec := app.postForm(t, "/tickets", url.Values{"title": {"sneaky"}, "status": {"open"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/auth/login", rec.Header().Get("Location"))
}

func TestUnknownPathRedirectsToLanding(t *testing.T) {
	app := newTestApp(t)

	rec := app.get(t, "/no/such/page")
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/", rec.Header().Get("Location"))
}

func TestSignupThenLoginThenDashboard(t *testing.T) {
	app := newTestApp(t)

	rec := app.postForm(t, "/auth/signup", url.Values{
		"email":    {"user@example.com"},
		"password": {"secret1"},
		"confirm":  {"secret1"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/auth/login", rec.Header().Get("Location"))

	rec = app.postForm(t, "/auth/login", url.Values{
		"email":    {"user@example.com"},
		"password": {"secret1"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/dashboard", rec.Header().Get("Location"))

	rec = app.get(t, "/dashboard")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "user@example.com")
}

func TestSignupValidationRerenders(t *testing.T) {
	app := newTestApp(t)

	rec := app.postForm(t, "/auth/signup", url.Values{
		"email":    {"not-an-email"},
		"password": {"secret1"},
		"confirm":  {"secret1"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Invalid email format")
	require.Contains(t, rec.Body.String(), "Please fix the errors below.")
	// The submitted email is retained in the form.
	require.Contains(t, rec.Body.String(), "not-an-email")
}

func TestLoginWrongPassword(t *testing.T) {
	app := newTestApp(t)

	rec := app.postForm(t, "/auth/signup", url.Values{
		"email":    {"user@example.com"},
		"password": {"secret1"},
		"confirm":  {"secret1"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = app.postForm(t, "/auth/login", url.Values{
		"email":    {"user@example.com"},
		"password": {"wrong-password"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Invalid credentials. Please try again.")
}

func TestTicketCreateAndList(t *testing.T) {
	app := newTestApp(t)
	app.logIn(t)

	rec := app.postForm(t, "/tickets", url.Values{
		"title":       {"Printer broken"},
		"description": {"paper jam on floor two"},
		"status":      {"open"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/tickets", rec.Header().Get("Location"))

	rec = app.get(t, "/tickets")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Printer broken")
}

func TestTicketCreateValidationRerenders(t *testing.T) {
	app := newTestApp(t)
	app.logIn(t)

	rec := app.postForm(t, "/tickets", url.Values{
		"title":  {""},
		"status": {"open"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Title is required")
}

func TestTicketUpdateViaForm(t *testing.T) {
	app := newTestApp(t)
	app.logIn(t)

	created, err := app.tickets.Create(context.Background(), ticket.CreateRequest{
		Title:  "before",
		Status: ticket.StatusOpen,
	})
	require.NoError(t, err)

	rec := app.postForm(t, "/tickets", url.Values{
		"id":     {strconv.FormatInt(created.ID, 10)},
		"title":  {"after"},
		"status": {"closed"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	all, err := app.tickets.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "after", all[0].Title)
	require.Equal(t, ticket.StatusClosed, all[0].Status)
}

func TestTicketDeleteRequiresConfirmation(t *testing.T) {
	app := newTestApp(t)
	app.logIn(t)

	created, err := app.tickets.Create(context.Background(), ticket.CreateRequest{
		Title:  "keep me",
		Status: ticket.StatusOpen,
	})
	require.NoError(t, err)
	path := "/tickets/" + strconv.FormatInt(created.ID, 10) + "/delete"

	rec := app.postForm(t, path, url.Values{})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	all, err := app.tickets.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1, "ticket must survive an unconfirmed delete")

	rec = app.postForm(t, path, url.Values{"confirm": {"yes"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	all, err = app.tickets.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestLogoutWipesStore(t *testing.T) {
	app := newTestApp(t)
	app.logIn(t)

	_, err := app.tickets.Create(context.Background(), ticket.CreateRequest{
		Title:  "gone after logout",
		Status: ticket.StatusOpen,
	})
	require.NoError(t, err)

	rec := app.postForm(t, "/logout", url.Values{})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/", rec.Header().Get("Location"))

	ctx := context.Background()
	for _, key := range []string{store.KeyCredential, store.KeySession, store.KeyTickets} {
		_, err := app.store.Get(ctx, key)
		require.ErrorIs(t, err, store.ErrNotFound, "key %s should be wiped", key)
	}

	rec = app.get(t, "/dashboard")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/auth/login", rec.Header().Get("Location"))
}
