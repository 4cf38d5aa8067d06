package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// The saved page is a folder overview; there is no endpoint listing saved
// events themselves, only the caller's folders.
func (m appModel) enterSaved() (tea.Model, tea.Cmd) {
	m.view = viewSaved
	if m.sess.Token() == "" {
		return m, nil
	}
	m.savedLoading = true
	return m, m.fetchFolders()
}

func (m appModel) updateSavedPage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r":
		return m.enterSaved()
	case "esc", "backspace":
		m.view = viewHome
		m.activeNav = "home"
		return m, nil
	case "q":
		return m, tea.Quit
	}
	if cmd, handled := m.handleNavKey(msg); handled {
		return m, cmd
	}
	return m, nil
}

func (m appModel) renderSavedPage() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Saved event"))
	b.WriteString("\n")
	b.WriteString(styleMuted().Render("Các bảng của bạn"))
	b.WriteString("\n\n")

	switch {
	case m.savedLoading:
		b.WriteString(styleMuted().Render("Đang tải..."))
	case len(m.folders) == 0:
		b.WriteString("Bạn chưa có bảng nào")
	default:
		for _, f := range m.folders {
			b.WriteString("📁 " + f)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n\n")
	b.WriteString(styleMuted().Render("r: tải lại   esc: quay lại"))
	return m.renderPage(b.String())
}
