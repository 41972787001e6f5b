package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/daybook-backend/internal/apimodel"
	"github.com/heartmarshall/daybook-backend/internal/domain"
	"github.com/heartmarshall/daybook-backend/internal/service/journal"
)

type notificationService interface {
	AddNotification(ctx context.Context, userID uuid.UUID, input journal.NotificationInput) (*domain.Notification, error)
	MarkNotificationAsRead(ctx context.Context, userID, id uuid.UUID) error
	MarkAllNotificationsAsRead(ctx context.Context, userID uuid.UUID) (int, error)
	GetUnreadNotifications(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error)
}

type notificationFeed interface {
	Subscribe(ctx context.Context, userID uuid.UUID) (<-chan []domain.Notification, error)
}

// NotificationHandler serves /api/notifications including the live stream.
type NotificationHandler struct {
	svc       notificationService
	feed      notificationFeed
	keepAlive time.Duration
	retry     time.Duration
	log       *slog.Logger
}

// NewNotificationHandler creates a NotificationHandler. keepAlive is the
// interval of SSE comment pings; retry is the reconnect delay advertised to clients.
func NewNotificationHandler(
	svc notificationService,
	feed notificationFeed,
	keepAlive, retry time.Duration,
	logger *slog.Logger,
) *NotificationHandler {
	if keepAlive <= 0 {
		keepAlive = 25 * time.Second
	}
	return &NotificationHandler{
		svc:       svc,
		feed:      feed,
		keepAlive: keepAlive,
		retry:     retry,
		log:       logger.With("handler", "notifications"),
	}
}

// ListUnread handles GET /api/notifications.
func (h *NotificationHandler) ListUnread(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	list, err := h.svc.GetUnreadNotifications(r.Context(), uid)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, apimodel.FromNotifications(list))
}

// Add handles POST /api/notifications.
func (h *NotificationHandler) Add(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	var req apimodel.NotificationRequest
	if !decode(w, r, &req) {
		return
	}

	n, err := h.svc.AddNotification(r.Context(), uid, journal.NotificationInput{
		Title:     req.Title,
		Message:   req.Message,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, apimodel.FromNotification(*n))
}

// MarkRead handles POST /api/notifications/{id}/read.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.MarkNotificationAsRead(r.Context(), uid, id); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MarkAllRead handles POST /api/notifications/read-all.
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	n, err := h.svc.MarkAllNotificationsAsRead(r.Context(), uid)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, apimodel.MarkAllReadResponse{Updated: n})
}

// Stream handles GET /api/notifications/stream. Every event carries the
// complete unread set; the stream ends when the client goes away.
func (h *NotificationHandler) Stream(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	updates, err := h.feed.Subscribe(ctx, uid)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	rc := http.NewResponseController(w)
	// The server write timeout would otherwise cut long-lived streams.
	_ = rc.SetWriteDeadline(time.Time{})

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	if h.retry > 0 {
		fmt.Fprintf(w, "retry: %d\n\n", h.retry.Milliseconds())
	}
	if err := rc.Flush(); err != nil {
		h.log.WarnContext(ctx, "sse flush unsupported", slog.String("error", err.Error()))
		return
	}

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
		case list, open := <-updates:
			if !open {
				return
			}
			payload, err := json.Marshal(apimodel.FromNotifications(list))
			if err != nil {
				h.log.ErrorContext(ctx, "encode notifications", slog.String("error", err.Error()))
				return
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", apimodel.StreamEvent, payload); err != nil {
				return
			}
		}
		if err := rc.Flush(); err != nil {
			return
		}
	}
}
