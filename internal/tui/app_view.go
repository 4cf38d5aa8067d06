package tui

import "strings"

func (m appModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	switch m.modal {
	case modalAvatarMenu:
		return placeCentered(m.width, m.height, m.renderAvatarMenu())
	case modalSave:
		return placeCentered(m.width, m.height, m.renderSaveModal())
	case modalReminder:
		return placeCentered(m.width, m.height, m.renderReminderModal())
	}

	switch m.view {
	case viewLogin:
		return m.renderLogin()
	case viewEvent:
		return m.renderEventPage()
	case viewLiked:
		return m.renderLikedPage()
	case viewSaved:
		return m.renderSavedPage()
	case viewAbout:
		return m.renderAbout()
	case viewContact:
		return m.renderContact()
	case viewUsers:
		return m.renderUsers()
	default:
		return m.renderHome()
	}
}

// renderPage stacks navbar, page body, and the one-line minibuffer into the
// full terminal frame.
func (m appModel) renderPage(body string) string {
	bodyH := m.height - 3
	if bodyH < 1 {
		bodyH = 1
	}

	var b strings.Builder
	b.WriteString(m.renderNavbar())
	b.WriteString("\n\n")
	b.WriteString(normalizePane(body, m.width, bodyH))
	b.WriteString("\n")
	if m.minibufferText != "" {
		b.WriteString(truncateInline(m.minibufferText, m.width))
	}
	return b.String()
}

func (m appModel) contentWidth() int {
	w := m.width - 4
	if w > 100 {
		w = 100
	}
	if w < 20 {
		w = 20
	}
	return w
}
