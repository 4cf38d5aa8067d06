package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) renderHome() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Sự kiện sắp tới"))
	b.WriteString("\n\n")

	switch {
	case m.homeLoading:
		b.WriteString(styleMuted().Render("Đang tải..."))
	case m.homeErr != "":
		b.WriteString(styleError().Render(m.homeErr))
	case len(m.events) == 0:
		b.WriteString(styleMuted().Render("Chưa có sự kiện nào"))
	default:
		w := m.contentWidth()
		visible := m.height - 10
		if visible < 5 {
			visible = 5
		}
		start := 0
		if m.homeIdx >= visible {
			start = m.homeIdx - visible + 1
		}
		end := start + visible
		if end > len(m.events) {
			end = len(m.events)
		}
		for i := start; i < end; i++ {
			ev := m.events[i]
			line := truncateInline(ev.Title, w-24)
			meta := fmtEventTime(ev.StartDate)
			if meta != "" {
				line += "  " + styleMuted().Render(meta)
			}
			if i == m.homeIdx {
				line = lipgloss.NewStyle().
					Bold(true).
					Foreground(colorSelectedFg).
					Background(colorSelectedBg).
					Render(" " + line + " ")
			} else {
				line = " " + line + " "
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styleMuted().Render("↑/↓: chọn   enter: mở   r: tải lại   q: thoát"))
	return m.renderPage(b.String())
}

func (m appModel) renderAbout() string {
	body := lipgloss.NewStyle().Bold(true).Render("About") + "\n\n" +
		"S Event — nền tảng khám phá sự kiện dành cho sinh viên." + "\n\n" +
		styleMuted().Render("esc: quay lại")
	return m.renderPage(body)
}

func (m appModel) renderContact() string {
	body := lipgloss.NewStyle().Bold(true).Render("Contact") + "\n\n" +
		"Liên hệ: support@sevent.local" + "\n\n" +
		styleMuted().Render("esc: quay lại")
	return m.renderPage(body)
}

func (m appModel) renderUsers() string {
	body := lipgloss.NewStyle().Bold(true).Render("User") + "\n\n" +
		styleMuted().Render("Trang quản trị người dùng (chỉ dành cho admin).") + "\n\n" +
		styleMuted().Render("esc: quay lại")
	return m.renderPage(body)
}
