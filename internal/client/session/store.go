// Package session holds the signed-in user of a client process and keeps
// every dependent store informed of sign-in, sign-out and profile changes.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/heartmarshall/daybook-backend/internal/apimodel"
	"github.com/heartmarshall/daybook-backend/internal/client/api"
	"github.com/heartmarshall/daybook-backend/internal/domain"
)

// ErrNoActiveSession is returned by operations that need a signed-in user.
var ErrNoActiveSession = errors.New("no active session")

// ProfilePatch carries the profile fields to change.
type ProfilePatch = apimodel.ProfilePatch

type authProvider interface {
	Register(ctx context.Context, email, password string) (*api.Session, error)
	Login(ctx context.Context, email, password string) (*api.Session, error)
	LoginWithGoogle(ctx context.Context, code string) (*api.Session, error)
	Refresh(ctx context.Context, refreshToken string) (*api.Session, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, patch apimodel.ProfilePatch) (*domain.User, error)
	SetAccessToken(token string)
}

// Store is the single source of truth for who is signed in.
type Store struct {
	auth   authProvider
	tokens TokenStore
	log    *slog.Logger

	startOnce sync.Once
	startErr  error

	mu        sync.Mutex
	user      *domain.User
	refresh   string
	loading   bool
	listeners map[int]func(*domain.User)
	nextID    int
}

// New creates a store in the loading state. tokens may be nil, in which
// case nothing survives the process.
func New(auth authProvider, tokens TokenStore, logger *slog.Logger) *Store {
	if tokens == nil {
		tokens = memoryTokens{}
	}
	return &Store{
		auth:      auth,
		tokens:    tokens,
		log:       logger.With("store", "session"),
		loading:   true,
		listeners: make(map[int]func(*domain.User)),
	}
}

// CurrentUser returns the signed-in user or nil.
func (s *Store) CurrentUser() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Loading reports whether the first session check is still pending.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Subscribe registers fn for every session transition. fn runs on the
// goroutine that caused the transition, outside the store's lock.
func (s *Store) Subscribe(fn func(*domain.User)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// Start restores persisted tokens, rotates them and loads the profile. It
// runs once; later calls return the first result. A failed restore leaves
// the store signed out, which is not an error.
func (s *Store) Start(ctx context.Context) error {
	s.startOnce.Do(func() {
		s.startErr = s.restore(ctx)

		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
		s.notify()
	})
	return s.startErr
}

func (s *Store) restore(ctx context.Context) error {
	saved, err := s.tokens.Load()
	if err != nil {
		if errors.Is(err, ErrNoTokens) {
			return nil
		}
		return fmt.Errorf("session.Start: %w", err)
	}

	sess, err := s.auth.Refresh(ctx, saved.RefreshToken)
	if err != nil {
		if rejected(err) {
			s.log.InfoContext(ctx, "stored session expired")
			_ = s.tokens.Clear()
			return nil
		}
		return fmt.Errorf("session.Start: %w", err)
	}
	s.adopt(sess)

	// The rotated tokens stay on disk unless the server rejected them, so
	// the next Start can retry.
	user, err := s.auth.Profile(ctx)
	if err != nil {
		if rejected(err) {
			s.clear()
		} else {
			s.reset()
		}
		return fmt.Errorf("session.Start: %w", err)
	}
	if user != nil {
		s.mu.Lock()
		s.user = user
		s.mu.Unlock()
	}
	return nil
}

// Register creates an account and signs it in.
func (s *Store) Register(ctx context.Context, email, password string) error {
	sess, err := s.auth.Register(ctx, email, password)
	if err != nil {
		return err
	}
	s.adopt(sess)
	s.notify()
	return nil
}

// Login signs in with email and password.
func (s *Store) Login(ctx context.Context, email, password string) error {
	sess, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}
	s.adopt(sess)
	s.notify()
	return nil
}

// LoginWithGoogle signs in with a Google authorization code.
func (s *Store) LoginWithGoogle(ctx context.Context, code string) error {
	sess, err := s.auth.LoginWithGoogle(ctx, code)
	if err != nil {
		return err
	}
	s.adopt(sess)
	s.notify()
	return nil
}

// Refresh rotates the token pair. A rejected refresh token signs the user
// out locally; transport failures leave the session as it was.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	refresh := s.refresh
	s.mu.Unlock()
	if refresh == "" {
		return ErrNoActiveSession
	}

	sess, err := s.auth.Refresh(ctx, refresh)
	if err != nil {
		if rejected(err) {
			s.clear()
			s.notify()
		}
		return err
	}
	s.adopt(sess)
	s.notify()
	return nil
}

// Logout revokes the server session and forgets the local one. The local
// state is cleared even when the server call fails.
func (s *Store) Logout(ctx context.Context) error {
	err := s.auth.Logout(ctx)
	s.clear()
	s.notify()
	return err
}

// UpdateProfile changes the signed-in user's profile and publishes the result.
func (s *Store) UpdateProfile(ctx context.Context, patch ProfilePatch) error {
	if s.CurrentUser() == nil {
		return ErrNoActiveSession
	}

	user, err := s.auth.UpdateProfile(ctx, patch)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	s.notify()
	return nil
}

func (s *Store) adopt(sess *api.Session) {
	s.auth.SetAccessToken(sess.AccessToken)
	if err := s.tokens.Save(Tokens{AccessToken: sess.AccessToken, RefreshToken: sess.RefreshToken}); err != nil {
		s.log.Warn("persist tokens", slog.String("error", err.Error()))
	}

	s.mu.Lock()
	s.user = sess.User
	s.refresh = sess.RefreshToken
	s.mu.Unlock()
}

// clear forgets the session in memory and on disk.
func (s *Store) clear() {
	if err := s.tokens.Clear(); err != nil {
		s.log.Warn("clear tokens", slog.String("error", err.Error()))
	}
	s.reset()
}

// reset forgets the in-memory session only.
func (s *Store) reset() {
	s.auth.SetAccessToken("")

	s.mu.Lock()
	s.user = nil
	s.refresh = ""
	s.mu.Unlock()
}

// rejected reports whether the server refused the credentials, as opposed
// to not being reachable.
func rejected(err error) bool {
	return errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrValidation)
}

func (s *Store) notify() {
	s.mu.Lock()
	user := s.user
	fns := make([]func(*domain.User), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(user)
	}
}
