// Package notifications keeps the signed-in user's unread notifications in
// sync with the server's live feed.
package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/daybook-backend/internal/domain"
)

type sessionSource interface {
	CurrentUser() *domain.User
	Subscribe(fn func(*domain.User)) (unsubscribe func())
	Refresh(ctx context.Context) error
}

type feed interface {
	SubscribeNotifications(ctx context.Context) (<-chan []domain.Notification, error)
}

type writer interface {
	MarkNotificationRead(ctx context.Context, id uuid.UUID) error
	MarkAllNotificationsRead(ctx context.Context) (int, error)
	AddNotification(ctx context.Context, title, message string, ts *time.Time) (*domain.Notification, error)
}

// Input describes a notification to schedule.
type Input struct {
	Title   string
	Message string
}

// Store mirrors the live unread set. The list is only ever replaced by feed
// emissions; writes never touch it directly.
type Store struct {
	session sessionSource
	feed    feed
	writer  writer
	log     *slog.Logger
	now     func() time.Time

	startOnce    sync.Once
	unsubSession func()
	base         context.Context
	wg           sync.WaitGroup

	mu        sync.Mutex
	items     []domain.Notification
	loading   bool
	userID    uuid.UUID
	gen       uint64
	cancel    context.CancelFunc
	closed    bool
	listeners map[int]func([]domain.Notification)
	nextID    int
}

func New(session sessionSource, feed feed, writer writer, logger *slog.Logger) *Store {
	return &Store{
		session:   session,
		feed:      feed,
		writer:    writer,
		log:       logger.With("store", "notifications"),
		now:       time.Now,
		loading:   true,
		listeners: make(map[int]func([]domain.Notification)),
	}
}

// Start subscribes to session changes and applies the current session.
// Live subscriptions live as long as ctx or until Close. Calling Start
// again has no effect.
func (s *Store) Start(ctx context.Context) {
	s.startOnce.Do(func() {
		s.base = ctx
		s.unsubSession = s.session.Subscribe(s.onSession)
		s.onSession(s.session.CurrentUser())
	})
}

// Notifications returns a copy of the current unread list.
func (s *Store) Notifications() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Notification, len(s.items))
	copy(out, s.items)
	return out
}

// Loading reports whether the first snapshot for the current user is pending.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Subscribe registers fn for every list change.
func (s *Store) Subscribe(fn func([]domain.Notification)) (unsubscribe func()) {
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

// Close drops the session subscription and the live feed, and waits for
// the feed goroutine to exit.
func (s *Store) Close() {
	if s.unsubSession != nil {
		s.unsubSession()
	}
	s.mu.Lock()
	s.closed = true
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()
	s.wg.Wait()
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// MarkAsRead marks one notification read on the server.
func (s *Store) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	if s.session.CurrentUser() == nil {
		return nil
	}
	if err := s.writer.MarkNotificationRead(ctx, id); err != nil {
		s.log.ErrorContext(ctx, "mark notification read",
			slog.String("notification_id", id.String()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("notifications.MarkAsRead: %w", err)
	}
	return nil
}

// MarkAllAsRead marks every unread notification read on the server.
func (s *Store) MarkAllAsRead(ctx context.Context) error {
	if s.session.CurrentUser() == nil {
		return nil
	}
	if _, err := s.writer.MarkAllNotificationsRead(ctx); err != nil {
		s.log.ErrorContext(ctx, "mark all notifications read", slog.String("error", err.Error()))
		return fmt.Errorf("notifications.MarkAllAsRead: %w", err)
	}
	return nil
}

// ScheduleNotification creates an unread notification stamped with the
// current time.
func (s *Store) ScheduleNotification(ctx context.Context, in Input) error {
	if s.session.CurrentUser() == nil {
		return nil
	}
	ts := s.now().UTC()
	if _, err := s.writer.AddNotification(ctx, in.Title, in.Message, &ts); err != nil {
		s.log.ErrorContext(ctx, "schedule notification", slog.String("error", err.Error()))
		return fmt.Errorf("notifications.ScheduleNotification: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Live feed
// ---------------------------------------------------------------------------

func (s *Store) onSession(user *domain.User) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	if user == nil {
		s.stopLocked()
		s.userID = uuid.Nil
		s.items = nil
		s.loading = false
		s.mu.Unlock()
		s.notify()
		return
	}

	// Every transition reopens the feed. For the same user the current list
	// stays visible until the new subscription emits.
	s.stopLocked()
	if user.ID != s.userID {
		s.userID = user.ID
		s.items = nil
		s.loading = true
	}
	s.gen++
	gen := s.gen
	ctx, cancel := context.WithCancel(s.base)
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	s.notify()
	go s.follow(ctx, gen)
}

func (s *Store) stopLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.gen++
}

func (s *Store) follow(ctx context.Context, gen uint64) {
	defer s.wg.Done()

	ch, err := s.feed.SubscribeNotifications(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.log.WarnContext(ctx, "subscribe notifications", slog.String("error", err.Error()))
		}
		s.apply(gen, nil, false)
		return
	}

	for list := range ch {
		s.apply(gen, list, true)
	}
	if ctx.Err() != nil {
		return
	}

	// The feed only ends on its own once the server stops accepting the
	// access token. Rotating the tokens publishes a session transition,
	// which opens a fresh subscription.
	if !s.current(gen) {
		return
	}
	s.log.InfoContext(s.base, "notification feed ended, refreshing session")
	if err := s.session.Refresh(s.base); err != nil {
		s.log.WarnContext(s.base, "refresh session", slog.String("error", err.Error()))
	}
}

// current reports whether gen is still the live subscription.
func (s *Store) current(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gen == s.gen && !s.closed
}

// apply installs a snapshot unless a newer subscription has replaced gen.
func (s *Store) apply(gen uint64, list []domain.Notification, replace bool) {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	if replace {
		s.items = list
	}
	s.loading = false
	s.mu.Unlock()
	s.notify()
}

func (s *Store) notify() {
	s.mu.Lock()
	items := make([]domain.Notification, len(s.items))
	copy(items, s.items)
	fns := make([]func([]domain.Notification), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(items)
	}
}
