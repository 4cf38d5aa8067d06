package tui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"sevent-cli/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

func likedFixture(n int) []model.Event {
	events := make([]model.Event, n)
	for i := range events {
		events[i] = model.Event{
			ID:        fmt.Sprintf("%024d", i+1),
			Title:     fmt.Sprintf("Sự kiện %02d", i+1),
			StartDate: time.Date(2026, 3, 1+i%28, 9, 0, 0, 0, time.Local),
		}
	}
	return events
}

func TestLikedPaginationBounds(t *testing.T) {
	m := loginAs(t, newTestModel(t), "user")
	m.view = viewLiked
	m.liked = likedFixture(15)
	m.page = 1

	if got := m.likedTotalPages(); got != 2 {
		t.Fatalf("likedTotalPages = %d, want 2", got)
	}

	next, _ := m.updateLikedPage(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(appModel)
	if m.page != 2 {
		t.Fatalf("page = %d, want 2", m.page)
	}

	// Next is a no-op on the last page.
	next, _ = m.updateLikedPage(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(appModel)
	if m.page != 2 {
		t.Fatalf("page = %d, want 2 (clamped)", m.page)
	}

	next, _ = m.updateLikedPage(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(appModel)
	if m.page != 1 {
		t.Fatalf("page = %d, want 1", m.page)
	}

	next, _ = m.updateLikedPage(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(appModel)
	if m.page != 1 {
		t.Fatalf("page = %d, want 1 (clamped)", m.page)
	}
}

func TestLikedPageSlicing(t *testing.T) {
	m := loginAs(t, newTestModel(t), "user")
	m.view = viewLiked
	m.liked = likedFixture(15)

	m.page = 1
	out := m.renderLikedPage()
	if !strings.Contains(out, "Sự kiện 01") || !strings.Contains(out, "Sự kiện 12") {
		t.Fatal("page 1 must show events 1..12")
	}
	if strings.Contains(out, "Sự kiện 13") {
		t.Fatal("page 1 must not show event 13")
	}
	if !strings.Contains(out, "Page 1 of 2") {
		t.Fatal("page indicator missing")
	}

	m.page = 2
	out = m.renderLikedPage()
	if !strings.Contains(out, "Sự kiện 13") || !strings.Contains(out, "Sự kiện 15") {
		t.Fatal("page 2 must show events 13..15")
	}
	if strings.Contains(out, "Sự kiện 12") {
		t.Fatal("page 2 must not show event 12")
	}
}

func TestLikedPagerHiddenForSinglePage(t *testing.T) {
	m := loginAs(t, newTestModel(t), "user")
	m.view = viewLiked
	m.liked = likedFixture(3)
	m.page = 1

	out := m.renderLikedPage()
	if strings.Contains(out, "Previous") || strings.Contains(out, "Next") {
		t.Fatal("pager must be hidden when everything fits on one page")
	}
}

func TestLikedFanoutKeepsServerOrder(t *testing.T) {
	m := loginAs(t, newTestModel(t), "user")
	m.view = viewLiked
	m.likedLoading = true

	events := likedFixture(3)
	next, cmd := m.Update(likedEventsMsg{events: events})
	m = next.(appModel)
	if cmd == nil {
		t.Fatal("expected the per-event fan-out")
	}
	if m.likedPending != 3 {
		t.Fatalf("likedPending = %d, want 3", m.likedPending)
	}

	// Results land out of order; only 0 and 2 are liked.
	for _, r := range []likedCheckMsg{
		{idx: 2, event: events[2], liked: true},
		{idx: 0, event: events[0], liked: true},
		{idx: 1, event: events[1], liked: false},
	} {
		next, _ = m.Update(r)
		m = next.(appModel)
	}

	if m.likedLoading {
		t.Fatal("likedLoading must clear once all checks settled")
	}
	if len(m.liked) != 2 || m.liked[0].ID != events[0].ID || m.liked[1].ID != events[2].ID {
		t.Fatalf("liked order wrong: %+v", m.liked)
	}
	if m.page != 1 {
		t.Fatalf("page = %d, want 1", m.page)
	}
}

func TestLikedWithoutTokenShowsEmptyPage(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.enterLiked()
	m = next.(appModel)
	if cmd != nil {
		t.Fatal("no fetch without a session")
	}
	if m.view != viewLiked {
		t.Fatalf("view = %d, want viewLiked", m.view)
	}
	if m.likedLoading {
		t.Fatal("nothing is loading for an anonymous visitor")
	}

	out := m.renderLikedPage()
	if !strings.Contains(out, "Bạn chưa thích sự kiện nào") {
		t.Fatal("empty state text missing")
	}
}
