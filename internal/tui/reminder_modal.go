package tui

import (
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *appModel) openReminderModal() {
	m.modal = modalReminder
	m.remErr = ""
	m.remBusy = false
	m.remFocus = remFocusYear

	now := time.Now().Add(time.Hour)
	m.remYear.SetValue(strconv.Itoa(now.Year()))
	m.remMonth.SetValue(two(int(now.Month())))
	m.remDay.SetValue(two(now.Day()))
	m.remHour.SetValue(two(now.Hour()))
	m.remMinute.SetValue(two(now.Minute()))

	m.blurReminderInputs()
	m.remYear.Focus()
}

func two(n int) string {
	s := strconv.Itoa(n)
	if len(s) < 2 {
		return "0" + s
	}
	return s
}

func (m *appModel) blurReminderInputs() {
	m.remYear.Blur()
	m.remMonth.Blur()
	m.remDay.Blur()
	m.remHour.Blur()
	m.remMinute.Blur()
}

func (m *appModel) focusReminderInput() {
	m.blurReminderInputs()
	switch m.remFocus {
	case remFocusYear:
		m.remYear.Focus()
	case remFocusMonth:
		m.remMonth.Focus()
	case remFocusDay:
		m.remDay.Focus()
	case remFocusHour:
		m.remHour.Focus()
	case remFocusMinute:
		m.remMinute.Focus()
	}
}

// reminderTime assembles the entered date; ok is false when the fields do not
// form a real calendar time.
func (m appModel) reminderTime() (time.Time, bool) {
	year, err1 := strconv.Atoi(strings.TrimSpace(m.remYear.Value()))
	month, err2 := strconv.Atoi(strings.TrimSpace(m.remMonth.Value()))
	day, err3 := strconv.Atoi(strings.TrimSpace(m.remDay.Value()))
	hour, err4 := strconv.Atoi(strings.TrimSpace(m.remHour.Value()))
	minute, err5 := strconv.Atoi(strings.TrimSpace(m.remMinute.Value()))
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil {
		return time.Time{}, false
	}
	if month < 1 || month > 12 || day < 1 || day > 31 || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.Local)
	// time.Date normalizes (Feb 30 → Mar 2); reject anything that moved.
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, false
	}
	return t, true
}

func (m appModel) updateReminderModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+g":
		m.modal = modalNone
		return m, nil
	case "tab", "shift+tab":
		n := int(remFocusCancel) + 1
		if msg.String() == "tab" {
			m.remFocus = reminderFocus((int(m.remFocus) + 1) % n)
		} else {
			m.remFocus = reminderFocus((int(m.remFocus) + n - 1) % n)
		}
		m.focusReminderInput()
		return m, nil
	case "enter":
		switch m.remFocus {
		case remFocusCancel:
			m.modal = modalNone
			return m, nil
		default:
			at, ok := m.reminderTime()
			if !ok {
				m.remErr = "Thời gian không hợp lệ"
				return m, nil
			}
			m.remErr = ""
			m.remBusy = true
			return m, m.createReminder(m.eventID, at)
		}
	}

	var cmd tea.Cmd
	switch m.remFocus {
	case remFocusYear:
		m.remYear, cmd = m.remYear.Update(msg)
	case remFocusMonth:
		m.remMonth, cmd = m.remMonth.Update(msg)
	case remFocusDay:
		m.remDay, cmd = m.remDay.Update(msg)
	case remFocusHour:
		m.remHour, cmd = m.remHour.Update(msg)
	case remFocusMinute:
		m.remMinute, cmd = m.remMinute.Update(msg)
	}
	return m, cmd
}

func (m appModel) renderReminderModal() string {
	title := "Lời nhắc"
	if m.event != nil {
		title += " — " + truncateInline(m.event.Title, 32)
	}

	date := m.remYear.View() + " - " + m.remMonth.View() + " - " + m.remDay.View()
	clock := m.remHour.View() + " : " + m.remMinute.View()

	btn := lipgloss.NewStyle().Padding(0, 1).Foreground(colorSurfaceFg).Background(colorControlBg)
	btnActive := btn.Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
	submit := btn.Render("Tạo lời nhắc")
	if m.remFocus == remFocusSubmit {
		submit = btnActive.Render("Tạo lời nhắc")
	}
	cancel := btn.Render("Hủy")
	if m.remFocus == remFocusCancel {
		cancel = btnActive.Render("Hủy")
	}

	lines := []string{
		styleMuted().Render("Nhắc tôi lúc (YYYY-MM-DD HH:MM):"),
		"",
		date + "   " + clock,
		"",
		submit + " " + cancel,
	}
	if m.remBusy {
		lines = append(lines, "", styleMuted().Render("Đang tạo..."))
	}
	if m.remErr != "" {
		lines = append(lines, "", styleError().Render(m.remErr))
	}
	lines = append(lines, "", styleMuted().Render("tab: chuyển   enter: tạo   esc: đóng"))

	return renderModalBox(m.width, title, strings.Join(lines, "\n"))
}
