package tui

import "sevent-cli/internal/model"

type view int

const (
	viewHome view = iota
	viewAbout
	viewContact
	viewUsers
	viewEvent
	viewLiked
	viewSaved
	viewLogin
)

// navTarget remembers where to return after a login redirect (the web app's
// `state.from`).
type navTarget struct {
	view    view
	eventID string
}

type modalKind int

const (
	modalNone modalKind = iota
	modalAvatarMenu
	modalSave
	modalReminder
)

type saveModalFocus int

const (
	saveFocusSearch saveModalFocus = iota
	saveFocusList
	saveFocusCreate
)

type reminderFocus int

const (
	remFocusYear reminderFocus = iota
	remFocusMonth
	remFocusDay
	remFocusHour
	remFocusMinute
	remFocusSubmit
	remFocusCancel
)

// ---- messages ----

// sessionChangedMsg is delivered whenever the session store notifies; a
// logout in any component becomes visible here without a remount.
type sessionChangedMsg struct{}

type profileMsg struct {
	profile *model.UserProfile
	err     error
}

type eventsMsg struct {
	events []model.Event
	err    error
}

type eventMsg struct {
	id    string
	event *model.Event
	err   error
}

type likeStatusMsg struct {
	id    string
	liked bool
	err   error
}

type saveStatusMsg struct {
	id    string
	saved bool
	count int
	err   error
}

// likeCommitMsg fires when the debounce window closes. Only the most recently
// armed seq commits; stale ticks are dropped, which is also how a pending
// toggle is cancelled on navigation (leaving the page bumps the seq).
type likeCommitMsg struct {
	seq int
}

// likeResultMsg carries the server's settled state, or on failure the values
// to roll back to — captured at click time, exactly like the web client's
// closure over the pre-click count.
type likeResultMsg struct {
	id            string
	liked         bool
	count         int
	err           error
	rollbackLiked bool
	rollbackCount int
}

type saveToggleMsg struct {
	id    string
	saved bool
	count int
	err   error
}

type foldersMsg struct {
	folders []string
	err     error
}

type folderSavedMsg struct {
	folder string
	err    error
}

type likedEventsMsg struct {
	events []model.Event
	err    error
}

// likedCheckMsg is one result of the per-event liked fan-out; idx slots the
// result back into server order.
type likedCheckMsg struct {
	idx   int
	event model.Event
	liked bool
	err   error
}

type loginMsg struct {
	token string
	err   error
}

type reminderMsg struct {
	err error
}
