package notification

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/daybook-backend/internal/domain"
)

// Channel is the NOTIFY channel raised by the notifications trigger.
const Channel = "notifications_changed"

const refreshTimeout = 5 * time.Second

type unreadLister interface {
	ListUnread(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error)
}

// Feed fans PostgreSQL change notifications out to per-user subscribers.
// Each emission is the full unread set; deltas are never sent.
type Feed struct {
	pool      *pgxpool.Pool
	repo      unreadLister
	log       *slog.Logger
	reconnect time.Duration

	mu   sync.Mutex
	subs map[uuid.UUID]map[*subscriber]struct{}

	// refreshMu serializes fetch+publish so an older snapshot can never
	// overwrite a newer one in a subscriber's buffer.
	refreshMu sync.Mutex
}

// NewFeed creates a feed. Run must be started for change notifications to flow.
func NewFeed(pool *pgxpool.Pool, repo unreadLister, logger *slog.Logger, reconnect time.Duration) *Feed {
	if reconnect <= 0 {
		reconnect = 2 * time.Second
	}
	return &Feed{
		pool:      pool,
		repo:      repo,
		log:       logger.With("component", "notification_feed"),
		reconnect: reconnect,
		subs:      make(map[uuid.UUID]map[*subscriber]struct{}),
	}
}

// subscriber holds a replace-latest buffer of one snapshot.
type subscriber struct {
	mu     sync.Mutex
	ch     chan []domain.Notification
	closed bool
}

func (s *subscriber) publish(list []domain.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.ch <- list:
		return
	default:
	}
	// Drop the stale snapshot and keep the newest.
	select {
	case <-s.ch:
	default:
	}
	s.ch <- list
}

func (s *subscriber) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}

// Subscribe emits the current unread set of userID immediately and again after
// every change. The channel is closed when ctx ends.
func (f *Feed) Subscribe(ctx context.Context, userID uuid.UUID) (<-chan []domain.Notification, error) {
	sub := &subscriber{ch: make(chan []domain.Notification, 1)}

	f.mu.Lock()
	if f.subs[userID] == nil {
		f.subs[userID] = make(map[*subscriber]struct{})
	}
	f.subs[userID][sub] = struct{}{}
	f.mu.Unlock()

	f.refreshMu.Lock()
	list, err := f.repo.ListUnread(ctx, userID)
	if err == nil {
		sub.publish(list)
	}
	f.refreshMu.Unlock()

	if err != nil {
		f.remove(userID, sub)
		return nil, fmt.Errorf("notification.Feed.Subscribe: %w", err)
	}

	go func() {
		<-ctx.Done()
		f.remove(userID, sub)
	}()

	return sub.ch, nil
}

func (f *Feed) remove(userID uuid.UUID, sub *subscriber) {
	f.mu.Lock()
	if set := f.subs[userID]; set != nil {
		delete(set, sub)
		if len(set) == 0 {
			delete(f.subs, userID)
		}
	}
	f.mu.Unlock()
	sub.close()
}

func (f *Feed) subscribers(userID uuid.UUID) []*subscriber {
	f.mu.Lock()
	defer f.mu.Unlock()
	set := f.subs[userID]
	out := make([]*subscriber, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	return out
}

func (f *Feed) users() []uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]uuid.UUID, 0, len(f.subs))
	for id := range f.subs {
		out = append(out, id)
	}
	return out
}

// refresh re-reads the unread set of userID and publishes it to every subscriber.
func (f *Feed) refresh(ctx context.Context, userID uuid.UUID) {
	subs := f.subscribers(userID)
	if len(subs) == 0 {
		return
	}

	f.refreshMu.Lock()
	defer f.refreshMu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, refreshTimeout)
	defer cancel()

	list, err := f.repo.ListUnread(ctx, userID)
	if err != nil {
		f.log.WarnContext(ctx, "refresh unread notifications",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return
	}
	for _, s := range subs {
		s.publish(list)
	}
}

// Run listens for change notifications until ctx ends. A lost connection is
// re-established after the reconnect interval, and every subscriber is
// refreshed since changes may have been missed meanwhile.
func (f *Feed) Run(ctx context.Context) error {
	for {
		err := f.listen(ctx)
		if ctx.Err() != nil {
			return nil
		}
		f.log.WarnContext(ctx, "notification listener stopped, reconnecting",
			slog.String("error", err.Error()),
			slog.Duration("backoff", f.reconnect),
		)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(f.reconnect):
		}
	}
}

func (f *Feed) listen(ctx context.Context) error {
	pooled, err := f.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire listen connection: %w", err)
	}
	// The connection carries LISTEN state; never hand it back to the pool.
	conn := pooled.Hijack()
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, "LISTEN "+Channel); err != nil {
		return fmt.Errorf("listen %s: %w", Channel, err)
	}
	f.log.InfoContext(ctx, "listening for notification changes", slog.String("channel", Channel))

	for _, userID := range f.users() {
		f.refresh(ctx, userID)
	}

	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			return fmt.Errorf("wait for notification: %w", err)
		}

		userID, err := uuid.Parse(n.Payload)
		if err != nil {
			f.log.WarnContext(ctx, "ignoring malformed notification payload", slog.String("payload", n.Payload))
			continue
		}
		f.refresh(ctx, userID)
	}
}
