package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/daybook-backend/internal/client/session"
)

func addProfile(topLevel *cobra.Command, a *cliApp) {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or change your profile",
		Args:  cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, args []string) error {
			user, err := a.signedIn(ctx)
			if err != nil {
				return err
			}
			unread, err := a.client.UnreadNotifications(ctx)
			if err != nil {
				return err
			}
			return a.render(func(w io.Writer) error { return printUser(w, user, len(unread)) })
		}),
	}

	var name, photo string
	set := &cobra.Command{
		Use:   "set",
		Short: "Change display name or photo URL",
		Example: `
daybook profile set --name "Ann Smith"
daybook profile set --photo ""
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch session.ProfilePatch
			if cmd.Flags().Changed("name") {
				patch.DisplayName = &name
			}
			if cmd.Flags().Changed("photo") {
				patch.PhotoURL = &photo
			}
			if patch.DisplayName == nil && patch.PhotoURL == nil {
				return errors.New("nothing to change, pass --name or --photo")
			}
			return a.run(func(ctx context.Context, _ []string) error {
				if _, err := a.signedIn(ctx); err != nil {
					return err
				}
				if err := a.session.UpdateProfile(ctx, patch); err != nil {
					return err
				}
				return a.render(func(w io.Writer) error {
					return printUser(w, a.session.CurrentUser(), 0)
				})
			})(cmd, args)
		},
	}
	set.Flags().StringVar(&name, "name", "", "display name")
	set.Flags().StringVar(&photo, "photo", "", "photo URL; empty removes it")
	cmd.AddCommand(set)

	var contentType string
	avatar := &cobra.Command{
		Use:   "avatar",
		Short: "Get a pre-signed URL for uploading a profile photo",
		Args:  cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, args []string) error {
			if _, err := a.signedIn(ctx); err != nil {
				return err
			}
			up, err := a.client.AvatarUpload(ctx, contentType)
			if err != nil {
				return err
			}
			return a.render(func(w io.Writer) error {
				tbl := newTable()
				tbl.AddRow(bold.Sprint("Upload"), up.UploadURL)
				tbl.AddRow(bold.Sprint("Expires"), up.ExpiresAt.Local().Format(timeLayout))
				tbl.AddRow(bold.Sprint("Public"), up.PublicURL)
				_, err := fmt.Fprintln(w, tbl)
				if err == nil {
					_, err = fmt.Fprintf(w, "\nUpload with: curl -X PUT -H 'Content-Type: %s' --data-binary @photo %q\n"+
						"then: daybook profile set --photo %q\n", contentType, up.UploadURL, up.PublicURL)
				}
				return err
			})
		}),
	}
	avatar.Flags().StringVar(&contentType, "content-type", "image/jpeg", "MIME type of the photo")
	cmd.AddCommand(avatar)

	topLevel.AddCommand(cmd)
}
