package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

type navEntry struct {
	key   string
	label string
	id    string
}

// navEntries returns the visible navbar items. The "User" entry depends on
// decoded claims, not on token presence: a corrupt token keeps the user
// "logged in" but hides the admin entry.
func (m appModel) navEntries() []navEntry {
	entries := []navEntry{
		{key: "1", label: "Home", id: "home"},
		{key: "2", label: "About", id: "about"},
		{key: "3", label: "Contact", id: "contact"},
	}
	if m.sess.Session().Claims.IsAdmin() {
		entries = append(entries, navEntry{key: "4", label: "User", id: "user"})
	}
	return entries
}

func (m appModel) avatarLetter() string {
	if m.profile != nil && m.profile.Email != "" {
		return strings.ToUpper(m.profile.Email[:1])
	}
	return "U"
}

func (m appModel) renderNavbar() string {
	brand := lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render("S EVENT")

	var items []string
	for _, e := range m.navEntries() {
		label := e.key + " " + e.label
		if m.activeNav == e.id {
			items = append(items, lipgloss.NewStyle().Bold(true).Underline(true).Render(label))
		} else {
			items = append(items, styleMuted().Render(label))
		}
	}

	var right string
	if m.sess.Session().LoggedIn {
		avatar := lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(colorSelectedFg).
			Background(colorSelectedBg).
			Render(m.avatarLetter())
		right = avatar + styleMuted().Render(" a: menu")
	} else {
		right = styleMuted().Render("a: đăng nhập")
	}

	line := brand + "   " + strings.Join(items, "   ") + "   " + right
	return normalizePane(line, m.width, 1)
}

// ---- avatar dropdown ----

var avatarMenuItems = []string{"Liked event", "Saved event", "Reminders", "Logout"}

func (m appModel) updateAvatarMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+g", "a":
		m.modal = modalNone
		return m, nil
	case "up", "k":
		if m.menuIdx > 0 {
			m.menuIdx--
		}
		return m, nil
	case "down", "j":
		if m.menuIdx < len(avatarMenuItems)-1 {
			m.menuIdx++
		}
		return m, nil
	case "enter":
		// Every action closes the menu after navigating.
		m.modal = modalNone
		switch avatarMenuItems[m.menuIdx] {
		case "Liked event":
			return m.enterLiked()
		case "Saved event":
			return m.enterSaved()
		case "Reminders":
			m.minibufferText = "Trang Reminders chưa có trong bản terminal"
			return m, nil
		case "Logout":
			// Purely local session invalidation; no server endpoint.
			if err := m.sess.Logout(); err != nil {
				m.log.Warn("logout failed", zap.Error(err))
			}
			m.profile = nil
			m.leaveEvent()
			m.view = viewHome
			m.activeNav = "home"
			return m, nil
		}
	}
	return m, nil
}

func (m appModel) renderAvatarMenu() string {
	name := "User"
	email := ""
	if m.profile != nil {
		if m.profile.Name != "" {
			name = m.profile.Name
		}
		email = m.profile.Email
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(name))
	b.WriteString("\n")
	b.WriteString(styleMuted().Render("Tài khoản đã xác thực"))
	if email != "" {
		b.WriteString("\n")
		b.WriteString(styleMuted().Render(email))
	}
	b.WriteString("\n\n")

	for i, it := range avatarMenuItems {
		if i == m.menuIdx {
			b.WriteString(lipgloss.NewStyle().
				Bold(true).
				Foreground(colorSelectedFg).
				Background(colorSelectedBg).
				Render(" " + it + " "))
		} else {
			b.WriteString(" " + it + " ")
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styleMuted().Render("enter: chọn   esc: đóng"))

	return renderModalBox(m.width, m.avatarLetter()+" — "+name, b.String())
}
