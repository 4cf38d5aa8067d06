package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func setReminderFields(m *appModel, y, mo, d, h, mi string) {
	m.remYear.SetValue(y)
	m.remMonth.SetValue(mo)
	m.remDay.SetValue(d)
	m.remHour.SetValue(h)
	m.remMinute.SetValue(mi)
}

func TestReminderTimeValidation(t *testing.T) {
	m := newTestModel(t)

	setReminderFields(&m, "2026", "02", "30", "10", "00")
	if _, ok := m.reminderTime(); ok {
		t.Fatal("Feb 30 must be rejected")
	}

	setReminderFields(&m, "2026", "13", "01", "10", "00")
	if _, ok := m.reminderTime(); ok {
		t.Fatal("month 13 must be rejected")
	}

	setReminderFields(&m, "2026", "xx", "01", "10", "00")
	if _, ok := m.reminderTime(); ok {
		t.Fatal("non-numeric field must be rejected")
	}

	setReminderFields(&m, "2026", "02", "28", "23", "59")
	at, ok := m.reminderTime()
	if !ok {
		t.Fatal("valid date rejected")
	}
	if at.Year() != 2026 || at.Month() != 2 || at.Day() != 28 || at.Hour() != 23 || at.Minute() != 59 {
		t.Fatalf("parsed %v", at)
	}
}

func TestReminderModalSubmitInvalidShowsError(t *testing.T) {
	m := onEventPage(t, newTestModel(t))
	m.openReminderModal()
	setReminderFields(&m, "2026", "02", "30", "10", "00")

	next, cmd := m.updateReminderModal(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(appModel)
	if cmd != nil {
		t.Fatal("invalid time must not reach the server")
	}
	if m.remErr != "Thời gian không hợp lệ" {
		t.Fatalf("remErr = %q", m.remErr)
	}
	if m.modal != modalReminder {
		t.Fatal("modal stays open on validation failure")
	}
}

func TestReminderModalPrefillsUpcomingHour(t *testing.T) {
	m := onEventPage(t, newTestModel(t))
	m.openReminderModal()

	if m.modal != modalReminder {
		t.Fatal("modal must open")
	}
	if _, ok := m.reminderTime(); !ok {
		t.Fatal("prefilled fields must form a valid time")
	}
}

func TestReminderModalCancel(t *testing.T) {
	m := onEventPage(t, newTestModel(t))
	m.openReminderModal()
	m.remFocus = remFocusCancel

	next, cmd := m.updateReminderModal(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(appModel)
	if cmd != nil {
		t.Fatal("cancel issues no request")
	}
	if m.modal != modalNone {
		t.Fatal("cancel closes the modal")
	}
}
