package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/daybook-backend/internal/domain"
)

type loginOptions struct {
	password   string
	googleCode string
}

func addLogin(topLevel *cobra.Command, a *cliApp) {
	o := &loginOptions{}

	cmd := &cobra.Command{
		Use:   "login [email]",
		Short: "Sign in with email and password, or with a Google authorization code",
		Example: `
daybook login ann@example.com
daybook login --google-code 4/0AY0e-g7...
`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.run(func(ctx context.Context, args []string) error {
			if o.googleCode != "" {
				if err := a.session.LoginWithGoogle(ctx, o.googleCode); err != nil {
					return fmt.Errorf("google sign-in: %w", err)
				}
				return a.greet()
			}

			email, password, err := a.credentials(args, o.password, false)
			if err != nil {
				return err
			}
			if err := a.session.Login(ctx, email, password); err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					return errors.New("wrong email or password")
				}
				return err
			}
			return a.greet()
		}),
	}

	cmd.Flags().StringVar(&o.password, "password", "", "password (prompted for when omitted)")
	cmd.Flags().StringVar(&o.googleCode, "google-code", "", "Google OAuth authorization code")
	topLevel.AddCommand(cmd)
}

func addRegister(topLevel *cobra.Command, a *cliApp) {
	o := &loginOptions{}

	cmd := &cobra.Command{
		Use:   "register [email]",
		Short: "Create an account and sign in",
		Args:  cobra.MaximumNArgs(1),
		RunE: a.run(func(ctx context.Context, args []string) error {
			email, password, err := a.credentials(args, o.password, true)
			if err != nil {
				return err
			}
			if err := a.session.Register(ctx, email, password); err != nil {
				if errors.Is(err, domain.ErrAlreadyExists) {
					return fmt.Errorf("an account for %s already exists", email)
				}
				return err
			}
			return a.greet()
		}),
	}

	cmd.Flags().StringVar(&o.password, "password", "", "password (prompted for when omitted)")
	topLevel.AddCommand(cmd)
}

func addLogout(topLevel *cobra.Command, a *cliApp) {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Sign out and revoke the saved session",
		Args:  cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, args []string) error {
			if _, err := a.signedIn(ctx); err != nil {
				if errors.Is(err, errNotSignedIn) {
					fmt.Fprintln(a.out, faint.Sprint("Not signed in"))
					return nil
				}
				return err
			}
			if err := a.session.Logout(ctx); err != nil {
				a.log.WarnContext(ctx, "server logout failed, local session cleared anyway")
			}
			fmt.Fprintln(a.out, "Signed out")
			return nil
		}),
	}

	topLevel.AddCommand(cmd)
}

func addWhoami(topLevel *cobra.Command, a *cliApp) {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user and the unread notification count",
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
			return a.render(func(w io.Writer) error {
				return printUser(w, user, domain.UnreadCount(unread))
			})
		}),
	}

	topLevel.AddCommand(cmd)
}

// credentials resolves email and password from args, flags and prompts.
func (a *cliApp) credentials(args []string, password string, confirm bool) (string, string, error) {
	var email string
	if len(args) > 0 {
		email = args[0]
	} else {
		var err error
		if email, err = promptLine(a.in, a.errOut, "Email"); err != nil {
			return "", "", err
		}
	}

	if password == "" {
		var err error
		if password, err = promptPassword(a.errOut, "Password"); err != nil {
			return "", "", err
		}
		if confirm {
			again, err := promptPassword(a.errOut, "Repeat password")
			if err != nil {
				return "", "", err
			}
			if again != password {
				return "", "", errors.New("passwords do not match")
			}
		}
	}
	return email, password, nil
}

func (a *cliApp) greet() error {
	user := a.session.CurrentUser()
	if user == nil {
		return errNotSignedIn
	}
	_, err := fmt.Fprintf(a.out, "Signed in as %s (%s)\n", green.Sprint(displayName(user)), user.Email)
	return err
}
