package api

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/daybook-backend/internal/apimodel"
	"github.com/heartmarshall/daybook-backend/internal/domain"
)

// SubscribeNotifications opens the live unread-notification stream. Each
// value on the channel is the complete unread set. The first connection is
// made before returning so an auth failure surfaces as an error. Later
// transport failures are retried after the reconnect delay; the channel is
// closed when ctx ends or the server rejects the credentials.
func (c *Client) SubscribeNotifications(ctx context.Context) (<-chan []domain.Notification, error) {
	resp, err := c.openStream(ctx)
	if err != nil {
		return nil, err
	}

	out := make(chan []domain.Notification, 1)
	go c.streamLoop(ctx, resp, out)
	return out, nil
}

func (c *Client) openStream(ctx context.Context) (*http.Response, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/notifications/stream", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/event-stream")
	return c.send(c.stream, req)
}

func (c *Client) streamLoop(ctx context.Context, resp *http.Response, out chan []domain.Notification) {
	defer close(out)

	delay := c.reconnect
	for {
		retry, err := c.readStream(ctx, resp, out)
		resp.Body.Close()
		if ctx.Err() != nil {
			return
		}
		if retry > 0 {
			delay = retry
		}
		c.log.DebugContext(ctx, "notification stream dropped", slog.Any("error", err))

		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(delay):
			}

			resp, err = c.openStream(ctx)
			if err == nil {
				break
			}
			if ctx.Err() != nil || errors.Is(err, domain.ErrUnauthorized) {
				return
			}
		}
	}
}

// readStream consumes SSE frames until the body ends. It returns the
// server-advertised retry delay, if any.
func (c *Client) readStream(ctx context.Context, resp *http.Response, out chan []domain.Notification) (time.Duration, error) {
	var (
		retry time.Duration
		event string
		data  strings.Builder
	)

	sc := bufio.NewScanner(resp.Body)
	sc.Buffer(make([]byte, 0, 64<<10), 4<<20)

	for sc.Scan() {
		line := sc.Text()
		switch {
		case line == "":
			if event == apimodel.StreamEvent && data.Len() > 0 {
				var list []apimodel.Notification
				if err := json.Unmarshal([]byte(data.String()), &list); err != nil {
					return retry, fmt.Errorf("decode stream event: %w", err)
				}
				deliver(out, toNotifications(list))
			}
			event = ""
			data.Reset()
		case strings.HasPrefix(line, ":"):
			// keepalive
		case strings.HasPrefix(line, "event:"):
			event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			if data.Len() > 0 {
				data.WriteByte('\n')
			}
			data.WriteString(strings.TrimPrefix(strings.TrimPrefix(line, "data:"), " "))
		case strings.HasPrefix(line, "retry:"):
			if ms, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "retry:"))); err == nil && ms > 0 {
				retry = time.Duration(ms) * time.Millisecond
			}
		}
	}

	err := sc.Err()
	if err != nil && ctx.Err() == nil {
		c.setOnline(false)
	}
	return retry, err
}

// deliver replaces any undelivered snapshot with list.
func deliver(out chan []domain.Notification, list []domain.Notification) {
	for {
		select {
		case out <- list:
			return
		default:
		}
		select {
		case <-out:
		default:
		}
	}
}
