package tui

import (
	"testing"
	"time"

	"sevent-cli/internal/api"
	"sevent-cli/internal/config"
	"sevent-cli/internal/model"
	"sevent-cli/internal/session"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang-jwt/jwt/v5"
)

const testEventID = "65f1a2b3c4d5e6f708192a3b"

func newTestModel(t *testing.T) appModel {
	t.Helper()

	sess, err := session.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open session store: %v", err)
	}
	t.Cleanup(func() { sess.Close() })

	cfg := &config.Config{
		APIURL:       "http://127.0.0.1:0",
		Timeout:      time.Second,
		LikeDebounce: 10 * time.Millisecond,
		PageSize:     12,
		EventsLimit:  200,
	}
	client := api.New(cfg.APIURL, cfg.Timeout, sess.Token, nil)

	m := newAppModel(cfg, client, sess, nil)
	m.width = 100
	m.height = 30
	return m
}

func signedToken(t *testing.T, id, role string) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, model.Claims{
		ID:   id,
		Role: role,
	}).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

func loginAs(t *testing.T, m appModel, role string) appModel {
	t.Helper()
	if err := m.sess.SetToken(signedToken(t, "user-1", role)); err != nil {
		t.Fatalf("set token: %v", err)
	}
	return m
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testEvent() *model.Event {
	return &model.Event{
		ID:               testEventID,
		Title:            "Hội thảo Go",
		StartDate:        time.Date(2026, 1, 5, 14, 30, 0, 0, time.Local),
		EndDate:          time.Date(2026, 1, 5, 17, 0, 0, 0, time.Local),
		InterestingCount: 5,
		SaveCount:        2,
	}
}

// onEventPage puts the model on the detail page with a settled event without
// going through the network.
func onEventPage(t *testing.T, m appModel) appModel {
	t.Helper()
	m = loginAs(t, m, "user")
	m.view = viewEvent
	m.eventID = testEventID
	m.event = testEvent()
	m.isLiked = false
	m.isSaved = false
	m.likeCount = m.event.InterestingCount
	m.saveCount = m.event.SaveCount
	return m
}
