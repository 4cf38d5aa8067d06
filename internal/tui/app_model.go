package tui

import (
	"context"
	"regexp"
	"time"

	"sevent-cli/internal/api"
	"sevent-cli/internal/config"
	"sevent-cli/internal/model"
	"sevent-cli/internal/session"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// reEventID: the backend uses Mongo object ids; anything else is rejected
// client-side before any network call.
var reEventID = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

type appModel struct {
	cfg  *config.Config
	api  *api.Client
	sess *session.Store
	log  *zap.Logger

	width  int
	height int

	view      view
	activeNav string
	modal     modalKind

	// Navbar. profile is fetched once per app start when a session exists and
	// discarded on logout; fetch failure leaves the fallback "U" avatar.
	profile *model.UserProfile
	menuIdx int

	// Home listing.
	events      []model.Event
	homeIdx     int
	homeLoading bool
	homeErr     string

	// Login. from remembers the destination that required auth.
	loginEmail formInput
	loginPass  formInput
	loginFocus int
	loginBusy  bool
	loginErr   string
	from       *navTarget

	// Event detail.
	eventID      string
	event        *model.Event
	eventLoading bool
	eventErr     string
	isLiked      bool
	isSaved      bool
	likeCount    int
	saveCount    int
	// likeSeq guards the debounce: each click re-arms with a fresh seq and
	// only the newest seq commits. Leaving the page bumps it so no pending
	// toggle can fire into a departed view.
	likeSeq           int
	likeRollbackLiked bool
	likeRollbackCount int

	// Save modal. Folder state persists across re-opens within a page visit;
	// each open refetches.
	folders     []string
	topFolders  []string
	folderIdx   int
	saveFocus   saveModalFocus
	saveSearch  textinput.Model
	creating    bool
	newFolder   textinput.Model
	saveLoading bool

	// Saved page (folder overview).
	savedLoading bool

	// Reminder modal.
	remYear   textinput.Model
	remMonth  textinput.Model
	remDay    textinput.Model
	remHour   textinput.Model
	remMinute textinput.Model
	remFocus  reminderFocus
	remErr    string
	remBusy   bool

	// Liked listing.
	liked        []model.Event
	likedResults []*model.Event
	likedPending int
	likedLoading bool
	page         int

	minibufferText string
}

func newAppModel(cfg *config.Config, client *api.Client, sess *session.Store, log *zap.Logger) appModel {
	if log == nil {
		log = zap.NewNop()
	}
	m := appModel{
		cfg:       cfg,
		api:       client,
		sess:      sess,
		log:       log,
		view:      viewHome,
		activeNav: "home",
		page:      1,
	}

	m.loginEmail = newFormInput("Email", "ban@example.com", false)
	m.loginPass = newFormInput("Mật khẩu", "••••••••", true)
	m.loginEmail.Focus()

	m.saveSearch = textinput.New()
	m.saveSearch.Placeholder = "Tìm kiếm"
	m.saveSearch.CharLimit = 100
	m.saveSearch.Width = 30

	m.newFolder = textinput.New()
	m.newFolder.Placeholder = "Tên bảng"
	m.newFolder.CharLimit = 100
	m.newFolder.Width = 30

	m.remYear = newDigitInput("YYYY", 4, 6)
	m.remMonth = newDigitInput("MM", 2, 4)
	m.remDay = newDigitInput("DD", 2, 4)
	m.remHour = newDigitInput("HH", 2, 4)
	m.remMinute = newDigitInput("MM", 2, 4)

	return m
}

func newDigitInput(placeholder string, limit, width int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = width
	return in
}

func (m appModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.fetchHomeEvents()}
	if sess := m.sess.Session(); sess.LoggedIn && sess.Claims != nil && sess.Claims.ID != "" {
		cmds = append(cmds, m.fetchProfile(sess.Claims.ID))
	}
	return tea.Batch(cmds...)
}

// ---- commands ----

func (m appModel) fetchProfile(userID string) tea.Cmd {
	client, timeout := m.api, m.cfg.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		p, err := client.Profile(ctx, userID)
		return profileMsg{profile: p, err: err}
	}
}

func (m appModel) fetchHomeEvents() tea.Cmd {
	client, limit, timeout := m.api, m.cfg.EventsLimit, m.cfg.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		evs, err := client.Events(ctx, limit)
		return eventsMsg{events: evs, err: err}
	}
}

func (m appModel) fetchEvent(id string) tea.Cmd {
	client, timeout := m.api, m.cfg.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		ev, err := client.Event(ctx, id)
		return eventMsg{id: id, event: ev, err: err}
	}
}

func (m appModel) checkLiked(id string) tea.Cmd {
	client, timeout := m.api, m.cfg.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		liked, err := client.CheckLiked(ctx, id)
		return likeStatusMsg{id: id, liked: liked, err: err}
	}
}

func (m appModel) checkSaved(id string) tea.Cmd {
	client, timeout := m.api, m.cfg.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		saved, count, err := client.CheckSaved(ctx, id)
		return saveStatusMsg{id: id, saved: saved, count: count, err: err}
	}
}

// likeCommitTick closes the debounce window for seq. Arming a newer seq makes
// this tick a no-op when it lands.
func (m appModel) likeCommitTick(seq int) tea.Cmd {
	return tea.Tick(m.cfg.LikeDebounce, func(time.Time) tea.Msg {
		return likeCommitMsg{seq: seq}
	})
}

func (m appModel) commitLikeToggle(id string, rollbackLiked bool, rollbackCount int) tea.Cmd {
	client, timeout := m.api, m.cfg.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		liked, count, err := client.ToggleLike(ctx, id)
		return likeResultMsg{
			id:            id,
			liked:         liked,
			count:         count,
			err:           err,
			rollbackLiked: rollbackLiked,
			rollbackCount: rollbackCount,
		}
	}
}

func (m appModel) commitSaveToggle(id string) tea.Cmd {
	client, timeout := m.api, m.cfg.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		saved, count, err := client.ToggleSave(ctx, id)
		return saveToggleMsg{id: id, saved: saved, count: count, err: err}
	}
}

func (m appModel) fetchFolders() tea.Cmd {
	client, timeout := m.api, m.cfg.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		folders, err := client.Folders(ctx)
		return foldersMsg{folders: folders, err: err}
	}
}

func (m appModel) saveToFolder(eventID, folder string) tea.Cmd {
	client, timeout := m.api, m.cfg.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		err := client.SaveToFolder(ctx, eventID, folder)
		return folderSavedMsg{folder: folder, err: err}
	}
}

func (m appModel) fetchLikedEvents() tea.Cmd {
	client, limit, timeout := m.api, m.cfg.EventsLimit, m.cfg.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		evs, err := client.Events(ctx, limit)
		return likedEventsMsg{events: evs, err: err}
	}
}

// likedFanout issues one check-liked per event concurrently. Results are
// slotted by index so the page keeps server order regardless of arrival
// order.
func (m appModel) likedFanout(events []model.Event) tea.Cmd {
	client, timeout := m.api, m.cfg.Timeout
	cmds := make([]tea.Cmd, 0, len(events))
	for i := range events {
		idx, ev := i, events[i]
		cmds = append(cmds, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			liked, err := client.CheckLiked(ctx, ev.ID)
			return likedCheckMsg{idx: idx, event: ev, liked: liked, err: err}
		})
	}
	return tea.Batch(cmds...)
}

func (m appModel) doLogin(email, password string) tea.Cmd {
	client, timeout := m.api, m.cfg.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		tok, err := client.Login(ctx, email, password)
		return loginMsg{token: tok, err: err}
	}
}

func (m appModel) createReminder(eventID string, at time.Time) tea.Cmd {
	client, timeout := m.api, m.cfg.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return reminderMsg{err: client.CreateReminder(ctx, eventID, at)}
	}
}
