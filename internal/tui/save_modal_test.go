package tui

import (
	"errors"
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestFilterFolders(t *testing.T) {
	folders := []string{"Work", "Fun", "Workshops", "Âm nhạc"}

	cases := []struct {
		search string
		want   []string
	}{
		{"", []string{"Work", "Fun", "Workshops", "Âm nhạc"}},
		{"work", []string{"Work", "Workshops"}},
		{"FUN", []string{"Fun"}},
		{"nhạc", []string{"Âm nhạc"}},
		{"xyz", []string{}},
	}
	for _, tc := range cases {
		got := filterFolders(folders, tc.search)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("filterFolders(%q) = %v, want %v", tc.search, got, tc.want)
		}
	}
}

func TestTopFoldersIgnoreSearchFilter(t *testing.T) {
	m := newTestModel(t)
	m.folders = []string{"Work", "Fun", "Misc"}
	m.topFolders = firstN(m.folders, 2)
	m.saveSearch.SetValue("fun")

	// The shortcut section always shows the first two of the unfiltered
	// list; only the full list below is filtered.
	got := m.selectableFolders()
	want := []string{"Work", "Fun", "Fun"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("selectableFolders = %v, want %v", got, want)
	}
}

func TestSaveModalCreateRejectsBlankName(t *testing.T) {
	m := onEventPage(t, newTestModel(t))
	m.modal = modalSave
	m.saveFocus = saveFocusCreate
	m.creating = true
	m.newFolder.SetValue("   ")

	next, cmd := m.updateSaveModal(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(appModel)
	if cmd != nil {
		t.Fatal("blank folder name must not reach the server")
	}
	if m.saveLoading {
		t.Fatal("saveLoading must stay false for a rejected name")
	}
	if m.modal != modalSave {
		t.Fatal("modal must stay open")
	}
}

func TestSaveModalEnterOnFolderSaves(t *testing.T) {
	m := onEventPage(t, newTestModel(t))
	m.modal = modalSave
	m.saveFocus = saveFocusList
	m.folders = []string{"Work", "Fun"}
	m.topFolders = firstN(m.folders, 2)
	m.folderIdx = 1

	next, cmd := m.updateSaveModal(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(appModel)
	if cmd == nil {
		t.Fatal("expected a save command")
	}
	if !m.saveLoading {
		t.Fatal("saveLoading should be set while the save is in flight")
	}
}

func TestSaveModalClosesUnconditionallyOnCompletion(t *testing.T) {
	m := onEventPage(t, newTestModel(t))
	m.modal = modalSave
	m.saveLoading = true

	next, _ := m.Update(folderSavedMsg{folder: "Work", err: errors.New("boom")})
	m = next.(appModel)
	if m.modal != modalNone {
		t.Fatal("modal must close even when the save failed")
	}
	if m.saveLoading {
		t.Fatal("saveLoading must reset")
	}
	if m.isSaved {
		t.Fatal("a failed save must not mark the event saved")
	}

	m.modal = modalSave
	m.saveLoading = true
	before := m.saveCount
	next, _ = m.Update(folderSavedMsg{folder: "Work"})
	m = next.(appModel)
	if m.modal != modalNone {
		t.Fatal("modal must close on success")
	}
	if !m.isSaved || m.saveCount != before+1 {
		t.Fatalf("success: isSaved=%v saveCount=%d, want true/%d", m.isSaved, m.saveCount, before+1)
	}
}

func TestSaveModalStatePersistsAcrossReopen(t *testing.T) {
	m := onEventPage(t, newTestModel(t))

	// First open, user types a search and starts creating a folder.
	m, _ = pressEvent(t, m, keyRune('s'))
	if m.modal != modalSave {
		t.Fatalf("modal = %d, want modalSave", m.modal)
	}
	m.saveSearch.SetValue("fun")
	m.creating = true
	m.newFolder.SetValue("Âm nhạc")

	next, _ := m.updateSaveModal(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(appModel)
	if m.modal != modalNone {
		t.Fatal("esc must close the modal")
	}

	// Re-open: the typed state is still there.
	m, cmd := pressEvent(t, m, keyRune('s'))
	if cmd == nil {
		t.Fatal("re-open must refetch folders")
	}
	if m.saveSearch.Value() != "fun" || !m.creating || m.newFolder.Value() != "Âm nhạc" {
		t.Fatalf("modal state was reset: search=%q creating=%v new=%q",
			m.saveSearch.Value(), m.creating, m.newFolder.Value())
	}
}

func TestUnsaveBypassesModal(t *testing.T) {
	m := onEventPage(t, newTestModel(t))
	m.isSaved = true

	m, cmd := pressEvent(t, m, keyRune('s'))
	if m.modal != modalNone {
		t.Fatal("un-save must not open the folder modal")
	}
	if cmd == nil {
		t.Fatal("un-save goes straight to the server")
	}
	// No optimistic flip on the un-save path.
	if !m.isSaved {
		t.Fatal("isSaved must not flip before the round-trip settles")
	}
}
