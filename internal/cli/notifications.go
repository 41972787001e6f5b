package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/daybook-backend/internal/client/notifications"
	"github.com/heartmarshall/daybook-backend/internal/domain"
)

func (a *cliApp) notificationStore() *notifications.Store {
	return notifications.New(a.session, a.client, a.client, a.log)
}

func addNotifications(topLevel *cobra.Command, a *cliApp) {
	var watch bool

	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notifs", "bell"},
		Short:   "List unread notifications",
		Example: `
daybook notifications
daybook notifications --watch
daybook notifications read 5f0c...
daybook notifications read-all
daybook notifications schedule "Stretch" "Time for a break"
`,
		Args: cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, args []string) error {
			if _, err := a.signedIn(ctx); err != nil {
				return err
			}
			if watch {
				return a.watchNotifications(ctx)
			}
			list, err := a.client.UnreadNotifications(ctx)
			if err != nil {
				return err
			}
			return a.render(func(w io.Writer) error { return printNotifications(w, list) })
		}),
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep printing the unread set as it changes")

	cmd.AddCommand(&cobra.Command{
		Use:   "read <id>",
		Short: "Mark one notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid notification id %q", args[0])
			}
			if _, err := a.signedIn(ctx); err != nil {
				return err
			}
			return a.notificationStore().MarkAsRead(ctx, id)
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "read-all",
		Short: "Mark every unread notification as read",
		Args:  cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, args []string) error {
			if _, err := a.signedIn(ctx); err != nil {
				return err
			}
			return a.notificationStore().MarkAllAsRead(ctx)
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "schedule <title> [message...]",
		Short: "Create a notification for yourself",
		Args:  cobra.MinimumNArgs(1),
		RunE: a.run(func(ctx context.Context, args []string) error {
			if _, err := a.signedIn(ctx); err != nil {
				return err
			}
			in := notifications.Input{Title: args[0], Message: strings.Join(args[1:], " ")}
			if err := a.notificationStore().ScheduleNotification(ctx, in); err != nil {
				return err
			}
			_, err := fmt.Fprintln(a.out, "Scheduled")
			return err
		}),
	})

	topLevel.AddCommand(cmd)
}

// watchNotifications prints every snapshot of the live unread set until
// ctx ends. The store refreshes the session when the stream is rejected.
func (a *cliApp) watchNotifications(ctx context.Context) error {
	store := a.notificationStore()
	defer store.Close()

	updates := make(chan []domain.Notification, 1)
	unsubscribe := store.Subscribe(func(list []domain.Notification) {
		for {
			select {
			case updates <- list:
				return
			default:
			}
			select {
			case <-updates:
			default:
			}
		}
	})
	defer unsubscribe()

	store.Start(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case list := <-updates:
			// The session ends when a refresh is rejected mid-watch.
			if a.session.CurrentUser() == nil {
				return errNotSignedIn
			}
			if store.Loading() {
				continue
			}
			err := a.render(func(w io.Writer) error {
				fmt.Fprintln(w, faint.Sprintf("%s  %d unread", time.Now().Format("15:04:05"), len(list)))
				return printNotifications(w, list)
			})
			if err != nil {
				return err
			}
		}
	}
}
