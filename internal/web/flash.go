package web

import (
	"net/http"

	"github.com/gorilla/sessions"
)

// Notice is a one-time user-facing message, the server-rendered
// equivalent of the original app's toasts.
type Notice struct {
	Kind    string // "success" or "error"
	Message string
}

const noticeCookie = "tickify_notices"

// flashStore queues notices in a signed cookie so they survive the
// redirect after a form submission, then disappear.
type flashStore struct {
	cookies *sessions.CookieStore
}

func newFlashStore(secret string) *flashStore {
	cs := sessions.NewCookieStore([]byte(secret))
	cs.Options.HttpOnly = true
	cs.Options.Path = "/"
	return &flashStore{cookies: cs}
}

func (f *flashStore) success(w http.ResponseWriter, r *http.Request, message string) {
	f.add(w, r, "success", message)
}

func (f *flashStore) error(w http.ResponseWriter, r *http.Request, message string) {
	f.add(w, r, "error", message)
}

func (f *flashStore) add(w http.ResponseWriter, r *http.Request, kind, message string) {
	sess, _ := f.cookies.Get(r, noticeCookie)
	sess.AddFlash(message, kind)
	_ = sess.Save(r, w)
}

// pop returns and clears all queued notices.
func (f *flashStore) pop(w http.ResponseWriter, r *http.Request) []Notice {
	sess, _ := f.cookies.Get(r, noticeCookie)

	var notices []Notice
	for _, kind := range []string{"error", "success"} {
		for _, v := range sess.Flashes(kind) {
			if message, ok := v.(string); ok {
				notices = append(notices, Notice{Kind: kind, Message: message})
			}
		}
	}
	_ = sess.Save(r, w)
	return notices
}
