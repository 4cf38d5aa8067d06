package tui

import (
	"errors"

	"sevent-cli/internal/api"
	"sevent-cli/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case sessionChangedMsg:
		if !m.sess.Session().LoggedIn {
			m.profile = nil
			if m.viewRequiresAuth() {
				m.leaveEvent()
				m.view = viewHome
				m.activeNav = "home"
			}
		}
		return m, nil

	case profileMsg:
		if msg.err != nil {
			// Best-effort: the avatar falls back to "U".
			m.log.Warn("profile fetch failed", zap.Error(msg.err))
			return m, nil
		}
		m.profile = msg.profile
		return m, nil

	case eventsMsg:
		m.homeLoading = false
		if msg.err != nil {
			m.log.Warn("events fetch failed", zap.Error(msg.err))
			m.homeErr = "Không thể tải danh sách sự kiện"
			return m, nil
		}
		m.homeErr = ""
		m.events = msg.events
		if m.homeIdx >= len(m.events) {
			m.homeIdx = 0
		}
		return m, nil

	case eventMsg:
		if msg.id != m.eventID {
			return m, nil
		}
		m.eventLoading = false
		if msg.err != nil {
			return m.applyEventError(msg.err), nil
		}
		m.event = msg.event
		m.likeCount = msg.event.InterestingCount
		m.saveCount = msg.event.SaveCount
		return m, nil

	case likeStatusMsg:
		// Applied whenever it arrives; it may race the user's first click and
		// the last write wins — same inconsistency window as the web client.
		if msg.id != m.eventID {
			return m, nil
		}
		if msg.err != nil {
			m.log.Warn("check-liked failed", zap.Error(msg.err))
			return m, nil
		}
		m.isLiked = msg.liked
		return m, nil

	case saveStatusMsg:
		if msg.id != m.eventID {
			return m, nil
		}
		if msg.err != nil {
			m.log.Warn("check-saved failed", zap.Error(msg.err))
			return m, nil
		}
		m.isSaved = msg.saved
		m.saveCount = msg.count
		return m, nil

	case likeCommitMsg:
		if msg.seq != m.likeSeq || m.view != viewEvent {
			return m, nil
		}
		return m, m.commitLikeToggle(m.eventID, m.likeRollbackLiked, m.likeRollbackCount)

	case likeResultMsg:
		if msg.id != m.eventID {
			return m, nil
		}
		if msg.err != nil {
			// Roll back to the values captured at click time. When more
			// clicks happened before the failure returned this is stale —
			// reproduced faithfully from the web client.
			m.log.Warn("toggle-like failed", zap.Error(msg.err))
			m.isLiked = msg.rollbackLiked
			m.likeCount = msg.rollbackCount
			return m, nil
		}
		m.isLiked = msg.liked
		m.likeCount = msg.count
		return m, nil

	case saveToggleMsg:
		if msg.id != m.eventID {
			return m, nil
		}
		if msg.err != nil {
			m.log.Warn("toggle-save failed", zap.Error(msg.err))
			return m, nil
		}
		m.isSaved = msg.saved
		m.saveCount = msg.count
		return m, nil

	case foldersMsg:
		if msg.err != nil {
			m.log.Warn("folders fetch failed", zap.Error(msg.err))
			m.savedLoading = false
			return m, nil
		}
		m.folders = msg.folders
		m.topFolders = firstN(msg.folders, 2)
		m.savedLoading = false
		if m.folderIdx >= len(m.folders) {
			m.folderIdx = 0
		}
		return m, nil

	case folderSavedMsg:
		m.saveLoading = false
		// The modal closes unconditionally; a failed save is only logged.
		m.closeSaveModal()
		if msg.err != nil {
			m.log.Warn("save to folder failed", zap.String("folder", msg.folder), zap.Error(msg.err))
			return m, nil
		}
		m.isSaved = true
		m.saveCount++
		return m, nil

	case likedEventsMsg:
		if msg.err != nil {
			m.log.Warn("liked listing fetch failed", zap.Error(msg.err))
			m.likedLoading = false
			m.liked = nil
			return m, nil
		}
		if len(msg.events) == 0 {
			m.likedLoading = false
			m.liked = nil
			return m, nil
		}
		m.likedResults = make([]*model.Event, len(msg.events))
		m.likedPending = len(msg.events)
		return m, m.likedFanout(msg.events)

	case likedCheckMsg:
		if m.likedPending == 0 {
			return m, nil
		}
		if msg.err == nil && msg.liked {
			ev := msg.event
			m.likedResults[msg.idx] = &ev
		}
		m.likedPending--
		if m.likedPending == 0 {
			m.liked = m.liked[:0]
			for _, ev := range m.likedResults {
				if ev != nil {
					m.liked = append(m.liked, *ev)
				}
			}
			m.likedResults = nil
			m.likedLoading = false
			m.page = 1
		}
		return m, nil

	case loginMsg:
		m.loginBusy = false
		if msg.err != nil {
			m.loginErr = loginErrorText(msg.err)
			return m, nil
		}
		if err := m.sess.SetToken(msg.token); err != nil {
			m.loginErr = "Không thể lưu phiên đăng nhập"
			return m, nil
		}
		return m.afterLogin()

	case reminderMsg:
		m.remBusy = false
		if msg.err != nil {
			m.log.Warn("create reminder failed", zap.Error(msg.err))
			m.remErr = "Không thể tạo lời nhắc"
			return m, nil
		}
		m.modal = modalNone
		m.minibufferText = "Đã tạo lời nhắc"
		return m, nil

	case urlOpenDoneMsg:
		if msg.err != nil {
			m.log.Warn("open url failed", zap.Error(msg.err))
			m.minibufferText = "Không thể mở trình duyệt"
		}
		return m, nil

	case tea.KeyMsg:
		m.minibufferText = ""
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m appModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.modal {
	case modalAvatarMenu:
		return m.updateAvatarMenu(msg)
	case modalSave:
		return m.updateSaveModal(msg)
	case modalReminder:
		return m.updateReminderModal(msg)
	}

	switch m.view {
	case viewLogin:
		return m.updateLogin(msg)
	case viewEvent:
		return m.updateEventPage(msg)
	case viewLiked:
		return m.updateLikedPage(msg)
	case viewSaved:
		return m.updateSavedPage(msg)
	default:
		return m.updateNav(msg)
	}
}

// updateNav handles the static pages (home/about/contact/users) plus the
// navbar keys shared by every non-modal view.
func (m appModel) updateNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cmd, handled := m.handleNavKey(msg); handled {
		return m, cmd
	}

	if m.view == viewHome {
		switch msg.String() {
		case "up", "k":
			if m.homeIdx > 0 {
				m.homeIdx--
			}
			return m, nil
		case "down", "j":
			if m.homeIdx < len(m.events)-1 {
				m.homeIdx++
			}
			return m, nil
		case "r":
			m.homeLoading = true
			return m, m.fetchHomeEvents()
		case "enter":
			if m.homeIdx >= 0 && m.homeIdx < len(m.events) {
				return m.enterEvent(m.events[m.homeIdx].ID)
			}
			return m, nil
		}
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "backspace":
		if m.view != viewHome {
			m.view = viewHome
			m.activeNav = "home"
		}
		return m, nil
	}
	return m, nil
}

// handleNavKey implements the navbar: number keys switch the active nav
// entry, "a" opens the avatar menu (or the login view when logged out).
func (m *appModel) handleNavKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "1":
		m.view = viewHome
		m.activeNav = "home"
		return nil, true
	case "2":
		m.view = viewAbout
		m.activeNav = "about"
		return nil, true
	case "3":
		m.view = viewContact
		m.activeNav = "contact"
		return nil, true
	case "4":
		// Admin-only entry; hidden (and inert) unless the decoded claims
		// carry the admin role. Token presence alone is not enough here.
		if m.sess.Session().Claims.IsAdmin() {
			m.view = viewUsers
			m.activeNav = "user"
		}
		return nil, true
	case "a":
		if m.sess.Session().LoggedIn {
			m.modal = modalAvatarMenu
			m.menuIdx = 0
		} else {
			m.gotoLogin(nil, "")
		}
		return nil, true
	}
	return nil, false
}

func (m appModel) viewRequiresAuth() bool {
	switch m.view {
	case viewEvent, viewLiked, viewSaved:
		return true
	}
	return false
}

// enterEvent is the detail-page entry: auth check first (redirect to login
// carrying the original destination), then id syntax check (inline error, no
// request), then three concurrent fetches.
func (m appModel) enterEvent(id string) (tea.Model, tea.Cmd) {
	if !m.sess.Session().LoggedIn {
		m.gotoLogin(&navTarget{view: viewEvent, eventID: id}, "Vui lòng đăng nhập")
		return m, nil
	}

	m.view = viewEvent
	m.eventID = id
	m.event = nil
	m.isLiked = false
	m.isSaved = false
	m.likeCount = 0
	m.saveCount = 0
	m.likeSeq++

	if id == "" {
		m.eventErr = "Event ID không có"
		m.eventLoading = false
		return m, nil
	}
	if !reEventID.MatchString(id) {
		m.eventErr = "Event ID không hợp lệ: " + id + "/:id"
		m.eventLoading = false
		return m, nil
	}

	m.eventErr = ""
	m.eventLoading = true
	return m, tea.Batch(m.fetchEvent(id), m.checkLiked(id), m.checkSaved(id))
}

// leaveEvent cancels any pending like commit by invalidating its seq.
func (m *appModel) leaveEvent() {
	m.likeSeq++
	m.closeSaveModal()
	m.modal = modalNone
}

func (m appModel) applyEventError(err error) appModel {
	switch {
	case errors.Is(err, api.ErrUnauthorized):
		m.gotoLogin(&navTarget{view: viewEvent, eventID: m.eventID}, "Vui lòng đăng nhập")
	case errors.Is(err, api.ErrEventNotFound):
		m.eventErr = "Sự kiện không tồn tại"
	default:
		var apiErr *api.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			m.eventErr = apiErr.Message
		} else {
			m.eventErr = "Không thể tải chi tiết sự kiện"
		}
	}
	return m
}

func (m *appModel) gotoLogin(from *navTarget, message string) {
	m.view = viewLogin
	m.from = from
	m.loginErr = message
	m.loginBusy = false
	m.loginFocus = 0
	m.loginEmail.SetError("")
	m.loginPass.SetError("")
	m.loginEmail.Focus()
	m.loginPass.Blur()
}

func (m appModel) afterLogin() (tea.Model, tea.Cmd) {
	m.loginErr = ""
	m.loginEmail.SetValue("")
	m.loginPass.SetValue("")

	cmds := []tea.Cmd{}
	if sess := m.sess.Session(); sess.Claims != nil && sess.Claims.ID != "" {
		cmds = append(cmds, m.fetchProfile(sess.Claims.ID))
	}

	from := m.from
	m.from = nil
	if from != nil && from.view == viewEvent {
		next, cmd := m.enterEvent(from.eventID)
		return next, tea.Batch(append(cmds, cmd)...)
	}
	m.view = viewHome
	m.activeNav = "home"
	return m, tea.Batch(cmds...)
}

func firstN(ss []string, n int) []string {
	if len(ss) < n {
		n = len(ss)
	}
	return ss[:n]
}

func loginErrorText(err error) string {
	if errors.Is(err, api.ErrUnauthorized) {
		return "Email hoặc mật khẩu không đúng"
	}
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "Không thể đăng nhập, vui lòng thử lại"
}
