package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m appModel) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.from = nil
		m.view = viewHome
		m.activeNav = "home"
		return m, nil
	case "tab", "shift+tab", "up", "down":
		m.loginFocus = 1 - m.loginFocus
		if m.loginFocus == 0 {
			m.loginEmail.Focus()
			m.loginPass.Blur()
		} else {
			m.loginEmail.Blur()
			m.loginPass.Focus()
		}
		return m, nil
	case "ctrl+r":
		m.loginPass.toggleReveal()
		return m, nil
	case "enter":
		return m.submitLogin()
	}

	var cmd tea.Cmd
	if m.loginFocus == 0 {
		m.loginEmail, cmd = m.loginEmail.update(msg)
	} else {
		m.loginPass, cmd = m.loginPass.update(msg)
	}
	return m, cmd
}

func (m appModel) submitLogin() (tea.Model, tea.Cmd) {
	email := strings.TrimSpace(m.loginEmail.Value())
	password := m.loginPass.Value()

	m.loginEmail.SetError("")
	m.loginPass.SetError("")
	ok := true
	if email == "" {
		m.loginEmail.SetError("Vui lòng nhập email")
		ok = false
	}
	if password == "" {
		m.loginPass.SetError("Vui lòng nhập mật khẩu")
		ok = false
	}
	if !ok || m.loginBusy {
		return m, nil
	}

	m.loginErr = ""
	m.loginBusy = true
	return m, m.doLogin(email, password)
}

func (m appModel) renderLogin() string {
	bodyW := m.contentWidth()
	if bodyW > 48 {
		bodyW = 48
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Đăng nhập"))
	b.WriteString("\n\n")
	b.WriteString(m.loginEmail.view(bodyW))
	b.WriteString("\n\n")
	b.WriteString(m.loginPass.view(bodyW))
	b.WriteString("\n\n")

	switch {
	case m.loginBusy:
		b.WriteString(styleMuted().Render("Đang nhập..."))
	case m.loginErr != "":
		b.WriteString(styleError().Render(m.loginErr))
	}

	b.WriteString("\n\n")
	b.WriteString(styleMuted().Render("tab: chuyển   enter: đăng nhập   esc: quay lại"))
	return m.renderPage(b.String())
}
