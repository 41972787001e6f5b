//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/daybook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/daybook-backend/internal/adapter/postgres/authmethod"
	"github.com/heartmarshall/daybook-backend/internal/adapter/postgres/diary"
	"github.com/heartmarshall/daybook-backend/internal/adapter/postgres/note"
	"github.com/heartmarshall/daybook-backend/internal/adapter/postgres/notification"
	"github.com/heartmarshall/daybook-backend/internal/adapter/postgres/sleep"
	"github.com/heartmarshall/daybook-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/daybook-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/daybook-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/daybook-backend/internal/adapter/provider/google"
	authpkg "github.com/heartmarshall/daybook-backend/internal/auth"
	"github.com/heartmarshall/daybook-backend/internal/client/api"
	"github.com/heartmarshall/daybook-backend/internal/config"
	authsvc "github.com/heartmarshall/daybook-backend/internal/service/auth"
	"github.com/heartmarshall/daybook-backend/internal/service/journal"
	usersvc "github.com/heartmarshall/daybook-backend/internal/service/user"
	"github.com/heartmarshall/daybook-backend/internal/transport/middleware"
	"github.com/heartmarshall/daybook-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// ---------------------------------------------------------------------------
// Fake Google OAuth endpoints. Code "google-ok" resolves to a fixed account.
// ---------------------------------------------------------------------------

const (
	googleCode  = "google-ok"
	googleEmail = "g-user@example.com"
)

func startFakeGoogle(t *testing.T) google.Endpoints {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /token", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil || r.PostForm.Get("code") != googleCode {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_grant"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "g-access", "token_type": "Bearer", "expires_in": 3600})
	})
	mux.HandleFunc("GET /userinfo", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":             "g-42",
			"email":          googleEmail,
			"verified_email": true,
			"name":           "Gee User",
			"picture":        "https://img.example.com/g.png",
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return google.Endpoints{Token: srv.URL + "/token", Userinfo: srv.URL + "/userinfo"}
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	// 1. Get pool from testcontainers-backed helper.
	pool := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	// 3. Repositories.
	users := userrepo.New(pool)
	tokens := token.New(pool)
	authMethods := authmethod.New(pool)
	notes := note.New(pool)
	diaryEntries := diary.New(pool)
	sleepSchedules := sleep.New(pool)
	notifications := notification.New(pool)

	// 4. Live notification feed.
	feed := notification.NewFeed(pool, notifications, logger, 100*time.Millisecond)
	feedCtx, stopFeed := context.WithCancel(context.Background())
	feedDone := make(chan struct{})
	go func() {
		defer close(feedDone)
		_ = feed.Run(feedCtx)
	}()

	// 5. JWT manager with a test secret (>= 32 chars).
	authCfg := config.AuthConfig{
		JWTSecret:          "test-secret-at-least-32-chars-long!!",
		JWTIssuer:          "test-issuer",
		AccessTokenTTL:     15 * time.Minute,
		RefreshTokenTTL:    720 * time.Hour,
		PasswordHashCost:   4,
		GoogleClientID:     "client-id",
		GoogleClientSecret: "client-secret",
		GoogleRedirectURI:  "http://localhost/callback",
	}
	jwtMgr := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)

	// 6. Google verifier against the fake endpoints.
	verifier := google.NewVerifier(authCfg, logger).WithEndpoints(startFakeGoogle(t))

	// 7. Services.
	authService := authsvc.NewService(logger, users, tokens, authMethods, txm, verifier, jwtMgr, authCfg)
	userService := usersvc.NewService(logger, users, nil)
	journalService := journal.NewService(logger, notes, diaryEntries, sleepSchedules, notifications)

	// 8. Router + middleware chain.
	limiter := middleware.NewRateLimiter(time.Minute)
	router := rest.NewRouter(rest.Handlers{
		Auth:          rest.NewAuthHandler(authService, logger),
		Profile:       rest.NewProfileHandler(userService, logger),
		Journal:       rest.NewJournalHandler(journalService, logger),
		Notifications: rest.NewNotificationHandler(journalService, feed, 5*time.Second, 200*time.Millisecond, logger),
		Health:        rest.NewHealthHandler(pool, "test-version"),
		AuthLimit:     limiter.Limit(1000),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,PATCH,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(authService),
	)(router)

	// 9. httptest server.
	srv := httptest.NewUnstartedServer(handler)
	srv.Config.BaseContext = func(_ net.Listener) context.Context { return feedCtx }
	srv.Start()
	t.Cleanup(func() {
		stopFeed()
		srv.Close()
		<-feedDone
		limiter.Stop()
	})

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// ---------------------------------------------------------------------------
// Request helpers.
// ---------------------------------------------------------------------------

// restRequest sends a JSON request and returns the raw response.
func restRequest(t *testing.T, ts *testServer, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// newClient returns an API client for the test server.
func (ts *testServer) newClient(t *testing.T) *api.Client {
	t.Helper()
	return api.New(ts.URL,
		api.WithHTTPClient(ts.Client),
		api.WithLogger(slog.New(slog.NewTextHandler(testLogWriter{t}, nil))),
		api.WithReconnect(100*time.Millisecond),
	)
}

// registerClient registers a fresh account and returns a signed-in client.
func registerClient(t *testing.T, ts *testServer) (*api.Client, *api.Session) {
	t.Helper()

	c := ts.newClient(t)
	email := fmt.Sprintf("user-%d@example.com", time.Now().UnixNano())
	sess, err := c.Register(context.Background(), email, "correct-horse")
	require.NoError(t, err)
	c.SetAccessToken(sess.AccessToken)
	return c, sess
}
