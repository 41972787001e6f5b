// Package cli implements the daybook command line client.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/heartmarshall/daybook-backend/internal/client/api"
	"github.com/heartmarshall/daybook-backend/internal/client/boundary"
	"github.com/heartmarshall/daybook-backend/internal/client/session"
	"github.com/heartmarshall/daybook-backend/internal/domain"
)

var errNotSignedIn = errors.New("not signed in, run `daybook login` first")

// cliApp is the state shared by every command of one invocation. It is
// filled in by setup before any RunE executes.
type cliApp struct {
	v   *viper.Viper
	cfg Config

	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
	log    *slog.Logger

	client   *api.Client
	session  *session.Store
	boundary *boundary.Boundary
}

// New returns the root daybook command.
func New() *cobra.Command {
	a := &cliApp{v: viper.New()}

	cmd := &cobra.Command{
		Use:           "daybook",
		Short:         "Calendar notes, diary, sleep schedule and notifications from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("server", defaultServer, "Daybook server URL")
	flags.String("state-dir", defaultStateDir, "directory holding saved credentials")
	flags.BoolP("verbose", "v", false, "log diagnostics to stderr")
	for _, name := range []string{"server", "state-dir", "verbose"} {
		_ = a.v.BindPFlag(name, flags.Lookup(name))
	}

	AddCommands(cmd, a)
	return cmd
}

// AddCommands registers every subcommand on topLevel.
func AddCommands(topLevel *cobra.Command, a *cliApp) {
	addLogin(topLevel, a)
	addRegister(topLevel, a)
	addLogout(topLevel, a)
	addWhoami(topLevel, a)
	addProfile(topLevel, a)
	addNotifications(topLevel, a)
	addNotes(topLevel, a)
	addDiary(topLevel, a)
	addSleep(topLevel, a)
}

func (a *cliApp) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.in = bufio.NewReader(cmd.InOrStdin())
	a.out = cmd.OutOrStdout()
	a.errOut = cmd.ErrOrStderr()

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))

	a.boundary = boundary.New(nil)

	a.client = api.New(cfg.Server,
		api.WithLogger(a.log),
		api.WithConnectivity(a.boundary.SetOnline),
	)

	tokens := session.NewDiskTokens(filepath.Join(cfg.StateDir, "tokens"))
	a.session = session.New(a.client, tokens, a.log)

	a.log.Debug("configured",
		slog.String("server", cfg.Server),
		slog.String("state_dir", cfg.StateDir),
	)
	return nil
}

// run adapts fn to cobra. When the failure came with a lost connection the
// offline notice is reported instead of the bare transport error.
func (a *cliApp) run(fn func(ctx context.Context, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd.Context(), args)
		if err != nil && a.boundary.State() == boundary.Offline {
			return fmt.Errorf("%s (%w)", boundary.OfflineMessage, err)
		}
		return err
	}
}

// render writes output through the error boundary. A failed render prints
// the boundary message and returns the error.
func (a *cliApp) render(fn func(w io.Writer) error) error {
	if a.boundary.State() == boundary.Errored {
		a.boundary.TryAgain()
	}
	err := a.boundary.Run(func() error { return fn(a.out) })
	if err != nil {
		fmt.Fprintln(a.errOut, color.RedString(a.boundary.Message()))
	}
	return err
}

// signedIn restores the saved session and returns its user.
func (a *cliApp) signedIn(ctx context.Context) (*domain.User, error) {
	if err := a.session.Start(ctx); err != nil {
		return nil, err
	}
	user := a.session.CurrentUser()
	if user == nil {
		return nil, errNotSignedIn
	}
	return user, nil
}
