package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"sevent-cli/internal/api"
	"sevent-cli/internal/config"
	"sevent-cli/internal/session"
)

// Run starts the full-screen client and blocks until the user quits.
func Run(cfg *config.Config, client *api.Client, sess *session.Store, log *zap.Logger) error {
	applyColorProfilePreference()
	applyThemePreference()

	p := tea.NewProgram(newAppModel(cfg, client, sess, log), tea.WithAltScreen())

	// Session changes (logout, token refresh) made anywhere are pushed into
	// the running program instead of being polled per render.
	unsubscribe := sess.Subscribe(func() {
		p.Send(sessionChangedMsg{})
	})
	defer unsubscribe()

	_, err := p.Run()
	return err
}
