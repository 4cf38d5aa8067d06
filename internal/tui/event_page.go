package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m appModel) updateEventPage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "l":
		cmd := m.handleLikeClick()
		return m, cmd
	case "s":
		cmd := m.handleSaveClick()
		return m, cmd
	case "r":
		if m.event != nil {
			m.openReminderModal()
		}
		return m, nil
	case "o":
		// Register is disabled when the event has no registration form.
		if m.event != nil && m.event.RegistrationFormURL != "" {
			return m, openURL(m.event.RegistrationFormURL)
		}
		return m, nil
	case "esc", "backspace":
		m.leaveEvent()
		m.view = viewHome
		m.activeNav = "home"
		return m, nil
	case "q":
		return m, tea.Quit
	}

	before := m.view
	if cmd, handled := m.handleNavKey(msg); handled {
		if m.view != before {
			// A pending like commit must not fire into a departed view.
			m.likeSeq++
		}
		return m, cmd
	}
	return m, nil
}

// handleLikeClick applies the optimistic flip and re-arms the debounce. The
// rollback values are captured now, at click time; the commit that eventually
// fires carries them along so a failed round-trip restores exactly this
// click's pre-state.
func (m *appModel) handleLikeClick() tea.Cmd {
	if m.sess.Token() == "" {
		m.gotoLogin(&navTarget{view: viewEvent, eventID: m.eventID}, "Vui lòng đăng nhập")
		return nil
	}
	if m.event == nil {
		return nil
	}

	prevLiked, prevCount := m.isLiked, m.likeCount
	m.isLiked = !prevLiked
	if m.isLiked {
		m.likeCount = prevCount + 1
	} else {
		m.likeCount = prevCount - 1
	}
	m.likeRollbackLiked = prevLiked
	m.likeRollbackCount = prevCount

	m.likeSeq++
	return m.likeCommitTick(m.likeSeq)
}

// handleSaveClick: un-save goes straight to the server with no optimistic
// flip (the button waits for the round-trip); saving routes through the
// folder modal instead.
func (m *appModel) handleSaveClick() tea.Cmd {
	if m.sess.Token() == "" {
		m.gotoLogin(&navTarget{view: viewEvent, eventID: m.eventID}, "Vui lòng đăng nhập")
		return nil
	}
	if m.event == nil {
		return nil
	}

	if m.isSaved {
		return m.commitSaveToggle(m.eventID)
	}

	// Opening refetches folders; everything else (search text, create box)
	// persists across re-opens within the same page visit.
	m.modal = modalSave
	m.saveFocus = saveFocusList
	m.folderIdx = 0
	m.newFolder.Blur()
	m.saveSearch.Blur()
	return m.fetchFolders()
}

func (m appModel) renderEventPage() string {
	var body string
	switch {
	case m.eventLoading:
		body = styleMuted().Render("Đang tải sự kiện...")
	case m.eventErr != "" || m.event == nil:
		errText := m.eventErr
		if errText == "" {
			errText = "Sự kiện không tồn tại"
		}
		body = styleError().Render(errText) + "\n\n" + styleMuted().Render("esc: Quay lại trang chủ")
	default:
		body = m.renderEventDetail()
	}
	return m.renderPage(body)
}

func (m appModel) renderEventDetail() string {
	ev := m.event
	w := m.contentWidth()

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(truncateInline(ev.Title, w)))
	b.WriteString("\n\n")

	heart := "🤍"
	likeStyle := lipgloss.NewStyle()
	if m.isLiked {
		heart = "❤️"
		likeStyle = likeStyle.Foreground(colorLiked)
	}
	save := "🔖"
	saveStyle := lipgloss.NewStyle()
	if m.isSaved {
		saveStyle = saveStyle.Foreground(colorAccent)
	}
	register := "o Register"
	if ev.RegistrationFormURL == "" {
		register = styleMuted().Render("o Register (không có form)")
	}
	b.WriteString(fmt.Sprintf("%s  %s  %s  %s",
		likeStyle.Render(fmt.Sprintf("l %s %d", heart, m.likeCount)),
		saveStyle.Render(fmt.Sprintf("s %s %d", save, m.saveCount)),
		"r Reminder",
		register,
	))
	b.WriteString("\n\n")

	info := [][2]string{
		{"⏰ Thời gian bắt đầu:", fmtEventTime(ev.StartDate)},
		{"⏰ Thời gian kết thúc:", fmtEventTime(ev.EndDate)},
		{"📍 Địa điểm:", orDefault(ev.Location, "Chưa xác định")},
		{"🏢 Tổ chức:", orDefault(ev.Organization, "Chưa xác định")},
	}
	if ev.FormSubmissionDeadline != nil {
		info = append(info, [2]string{"📝 Hạn đăng ký:", fmtEventTime(*ev.FormSubmissionDeadline)})
	}
	for _, row := range info {
		b.WriteString(styleMuted().Render(row[0]))
		b.WriteString(" ")
		b.WriteString(row[1])
		b.WriteString("\n")
	}

	if ev.ShortDescription != "" || ev.Content != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Bold(true).Render("Mô tả sự kiện"))
		b.WriteString("\n")
		if ev.ShortDescription != "" {
			b.WriteString(ev.ShortDescription)
			b.WriteString("\n")
		}
		if ev.Content != "" {
			b.WriteString(renderMarkdown(ev.Content, w))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styleMuted().Render("l: thích   s: lưu   r: lời nhắc   o: đăng ký   esc: ← Quay lại"))
	return b.String()
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
