package rest

import (
	"net/http"

	"github.com/heartmarshall/daybook-backend/internal/transport/middleware"
)

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Auth          *AuthHandler
	Profile       *ProfileHandler
	Journal       *JournalHandler
	Notifications *NotificationHandler
	Health        *HealthHandler

	// AuthLimit throttles the unauthenticated /auth endpoints. Optional.
	AuthLimit middleware.Middleware
}

// NewRouter registers all routes. Everything under /api requires a user put
// in the context by middleware.Auth, which the caller applies globally.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	limit := h.AuthLimit
	if limit == nil {
		limit = func(next http.Handler) http.Handler { return next }
	}
	public := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, limit(fn))
	}
	private := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, middleware.RequireUser(fn))
	}

	public("POST /auth/register", h.Auth.Register)
	public("POST /auth/login", h.Auth.Login)
	public("POST /auth/login/password", h.Auth.LoginWithPassword)
	public("POST /auth/refresh", h.Auth.Refresh)
	mux.HandleFunc("POST /auth/logout", h.Auth.Logout)

	private("GET /api/profile", h.Profile.Get)
	private("PATCH /api/profile", h.Profile.Update)
	private("POST /api/profile/avatar", h.Profile.Avatar)

	private("GET /api/notes", h.Journal.ListNoteDates)
	private("GET /api/notes/{date}", h.Journal.GetNote)
	private("PUT /api/notes/{date}", h.Journal.PutNote)
	private("GET /api/diary", h.Journal.ListDiary)
	private("POST /api/diary", h.Journal.AddDiary)
	private("DELETE /api/diary/{id}", h.Journal.DeleteDiary)
	private("GET /api/sleep", h.Journal.GetSleep)
	private("PUT /api/sleep", h.Journal.PutSleep)

	private("GET /api/notifications", h.Notifications.ListUnread)
	private("POST /api/notifications", h.Notifications.Add)
	private("POST /api/notifications/read-all", h.Notifications.MarkAllRead)
	private("POST /api/notifications/{id}/read", h.Notifications.MarkRead)
	private("GET /api/notifications/stream", h.Notifications.Stream)

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	return mux
}
