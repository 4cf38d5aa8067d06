package cli

import (
	"strings"

	"sevent-cli/internal/api"
	"sevent-cli/internal/config"
	"sevent-cli/internal/logging"
	"sevent-cli/internal/session"
	"sevent-cli/internal/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App holds the wired-up dependencies shared by every subcommand. Wiring is
// lazy: nothing touches the config, log file, or state db until a command
// actually runs.
type App struct {
	cfg  *config.Config
	log  *zap.Logger
	sess *session.Store
	api  *api.Client
}

func (a *App) setup() error {
	if a.cfg != nil {
		return nil
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	sess, err := session.Open(cfg.DataDir)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.LogFile)
	if err != nil {
		sess.Close()
		return err
	}

	a.cfg = cfg
	a.log = log
	a.sess = sess
	a.api = api.New(cfg.APIURL, cfg.Timeout, sess.Token, log)
	return nil
}

func (a *App) teardown() {
	if a.sess != nil {
		a.sess.Close()
	}
	if a.log != nil {
		a.log.Sync()
	}
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "sevent",
		Short:        "S-Event terminal client",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive client
  sevent

  # Scriptable commands
  sevent login ban@example.com
  sevent events
  sevent whoami
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive client.
			if cmd.HasSubCommands() && len(args) == 0 {
				return tui.Run(app.cfg, app.api, app.sess, app.log)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup()
	}
	cmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		app.teardown()
	}

	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newLogoutCmd(app))
	cmd.AddCommand(newWhoamiCmd(app))
	cmd.AddCommand(newEventsCmd(app))

	return cmd
}
