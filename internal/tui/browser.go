package tui

import (
	"errors"
	"io"
	"os/exec"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type urlOpenDoneMsg struct{ err error }

// openURL launches the system browser for the registration form.
func openURL(u string) tea.Cmd {
	u = strings.TrimSpace(u)
	if u == "" {
		return func() tea.Msg { return urlOpenDoneMsg{err: errors.New("empty url")} }
	}

	return func() tea.Msg {
		var cmd *exec.Cmd
		switch runtime.GOOS {
		case "darwin":
			cmd = exec.Command("open", u)
		case "windows":
			cmd = exec.Command("cmd", "/c", "start", "", u)
		default:
			cmd = exec.Command("xdg-open", u)
		}
		// Prevent any output from flashing in the terminal.
		cmd.Stdout = io.Discard
		cmd.Stderr = io.Discard
		if err := cmd.Start(); err != nil {
			return urlOpenDoneMsg{err: err}
		}
		return urlOpenDoneMsg{err: cmd.Wait()}
	}
}
