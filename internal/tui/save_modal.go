package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// filterFolders keeps the subsequence of folders whose name contains search
// case-insensitively; an empty search keeps everything.
func filterFolders(folders []string, search string) []string {
	search = strings.ToLower(search)
	if search == "" {
		return folders
	}
	out := make([]string, 0, len(folders))
	for _, f := range folders {
		if strings.Contains(strings.ToLower(f), search) {
			out = append(out, f)
		}
	}
	return out
}

// selectableFolders is the navigable list: the "best choices" shortcut (first
// two of the unfiltered list, regardless of search) followed by the filtered
// full list.
func (m appModel) selectableFolders() []string {
	filtered := filterFolders(m.folders, m.saveSearch.Value())
	out := make([]string, 0, len(m.topFolders)+len(filtered))
	out = append(out, m.topFolders...)
	out = append(out, filtered...)
	return out
}

func (m *appModel) closeSaveModal() {
	if m.modal == modalSave {
		m.modal = modalNone
	}
	m.saveSearch.Blur()
	m.newFolder.Blur()
}

func (m appModel) updateSaveModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+g":
		m.closeSaveModal()
		return m, nil
	case "tab":
		switch m.saveFocus {
		case saveFocusSearch:
			m.saveFocus = saveFocusList
			m.saveSearch.Blur()
		case saveFocusList:
			m.saveFocus = saveFocusCreate
			m.creating = true
			m.newFolder.Focus()
		case saveFocusCreate:
			m.saveFocus = saveFocusSearch
			m.newFolder.Blur()
			m.saveSearch.Focus()
		}
		return m, nil
	}

	switch m.saveFocus {
	case saveFocusSearch:
		if msg.String() == "enter" {
			m.saveFocus = saveFocusList
			m.saveSearch.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.saveSearch, cmd = m.saveSearch.Update(msg)
		if m.folderIdx >= len(m.selectableFolders()) {
			m.folderIdx = 0
		}
		return m, cmd

	case saveFocusList:
		items := m.selectableFolders()
		switch msg.String() {
		case "/":
			m.saveFocus = saveFocusSearch
			m.saveSearch.Focus()
			return m, nil
		case "n":
			m.saveFocus = saveFocusCreate
			m.creating = true
			m.newFolder.Focus()
			return m, nil
		case "up", "k":
			if m.folderIdx > 0 {
				m.folderIdx--
			}
			return m, nil
		case "down", "j":
			if m.folderIdx < len(items)-1 {
				m.folderIdx++
			}
			return m, nil
		case "enter":
			if m.folderIdx >= 0 && m.folderIdx < len(items) {
				// The loading flag does not disable anything; a second enter
				// while in flight issues a second request, same as the web
				// client.
				m.saveLoading = true
				return m, m.saveToFolder(m.eventID, items[m.folderIdx])
			}
			return m, nil
		}
		return m, nil

	case saveFocusCreate:
		if msg.String() == "enter" {
			name := strings.TrimSpace(m.newFolder.Value())
			if name == "" {
				// Whitespace-only names never reach the server.
				return m, nil
			}
			m.saveLoading = true
			return m, m.saveToFolder(m.eventID, name)
		}
		var cmd tea.Cmd
		m.newFolder, cmd = m.newFolder.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) renderSaveModal() string {
	bodyW := modalBodyWidth(m.width)

	var b strings.Builder
	b.WriteString(renderInputLine(bodyW, m.saveSearch.View()))
	b.WriteString("\n\n")

	selStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorSelectedFg).
		Background(colorSelectedBg)

	row := 0
	writeFolder := func(name string) {
		label := " 📁 " + truncateInline(name, bodyW-6) + " "
		if row == m.folderIdx && m.saveFocus == saveFocusList {
			b.WriteString(selStyle.Render(label))
		} else {
			b.WriteString(label)
		}
		b.WriteString("\n")
		row++
	}

	b.WriteString(styleMuted().Render("Các lựa chọn hay nhất"))
	b.WriteString("\n")
	if len(m.topFolders) == 0 {
		b.WriteString(styleMuted().Render("(chưa có bảng)"))
		b.WriteString("\n")
	}
	for _, f := range m.topFolders {
		writeFolder(f)
	}

	b.WriteString("\n")
	b.WriteString(styleMuted().Render("Tất cả các bảng"))
	b.WriteString("\n")
	filtered := filterFolders(m.folders, m.saveSearch.Value())
	if len(filtered) == 0 {
		b.WriteString(styleMuted().Render("(không có bảng phù hợp)"))
		b.WriteString("\n")
	}
	for _, f := range filtered {
		writeFolder(f)
	}

	b.WriteString("\n")
	if m.creating {
		b.WriteString("Tạo bảng mới:")
		b.WriteString("\n")
		b.WriteString(renderInputLine(bodyW, m.newFolder.View()))
	} else {
		b.WriteString(styleMuted().Render("＋ n: Tạo bảng"))
	}

	if m.saveLoading {
		b.WriteString("\n")
		b.WriteString(styleMuted().Render("Đang lưu..."))
	}

	b.WriteString("\n\n")
	b.WriteString(styleMuted().Render("/: tìm   tab: chuyển   enter: lưu   esc: đóng"))
	return renderModalBox(m.width, "Lưu", b.String())
}
