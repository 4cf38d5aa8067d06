package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m appModel) enterLiked() (tea.Model, tea.Cmd) {
	m.view = viewLiked
	m.page = 1
	m.liked = nil
	m.likedResults = nil
	m.likedPending = 0

	// No token: an empty page, not a redirect — the web client behaves the
	// same way here.
	if m.sess.Token() == "" {
		m.likedLoading = false
		return m, nil
	}
	m.likedLoading = true
	return m, m.fetchLikedEvents()
}

func (m appModel) likedTotalPages() int {
	if len(m.liked) == 0 {
		return 1
	}
	return (len(m.liked) + m.cfg.PageSize - 1) / m.cfg.PageSize
}

func (m appModel) updateLikedPage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		if m.page > 1 {
			m.page--
		}
		return m, nil
	case "right", "l":
		if m.page < m.likedTotalPages() {
			m.page++
		}
		return m, nil
	case "r":
		return m.enterLiked()
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

func (m appModel) renderLikedPage() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Liked event"))
	b.WriteString("\n")
	b.WriteString(styleMuted().Render("Events you liked"))
	b.WriteString("\n\n")

	switch {
	case m.likedLoading:
		b.WriteString(styleMuted().Render("Đang tải..."))
	case len(m.liked) == 0:
		b.WriteString("Bạn chưa thích sự kiện nào")
	default:
		total := m.likedTotalPages()
		page := m.page
		if page > total {
			page = total
		}
		start := (page - 1) * m.cfg.PageSize
		end := start + m.cfg.PageSize
		if end > len(m.liked) {
			end = len(m.liked)
		}

		w := m.contentWidth()
		for _, ev := range m.liked[start:end] {
			line := "❤️ " + truncateInline(ev.Title, w-16)
			meta := fmtEventTime(ev.StartDate)
			if meta != "" {
				line += "  " + styleMuted().Render(meta)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}

		if len(m.liked) > m.cfg.PageSize {
			b.WriteString("\n")
			prev := "← Previous"
			if page == 1 {
				prev = styleMuted().Render(prev)
			}
			next := "Next →"
			if page == total {
				next = styleMuted().Render(next)
			}
			b.WriteString(fmt.Sprintf("%s   Page %d of %d   %s", prev, page, total, next))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(styleMuted().Render("←/→: trang   r: tải lại   esc: quay lại"))
	return m.renderPage(b.String())
}
