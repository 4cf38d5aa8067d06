package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formInput is a labeled input with an inline error line. For password fields
// it keeps one piece of local UI state — revealed — toggling the echo mode
// without ever touching the bound value. Validation is the caller's job.
type formInput struct {
	input    textinput.Model
	label    string
	errText  string
	password bool
	revealed bool
}

func newFormInput(label, placeholder string, password bool) formInput {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 200
	in.Width = 40
	if password {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '•'
	}
	return formInput{input: in, label: label, password: password}
}

func (f formInput) Value() string    { return f.input.Value() }
func (f *formInput) SetValue(v string) { f.input.SetValue(v) }
func (f *formInput) Focus()          { f.input.Focus() }
func (f *formInput) Blur()           { f.input.Blur() }
func (f formInput) Focused() bool    { return f.input.Focused() }
func (f *formInput) SetError(s string) { f.errText = s }

// toggleReveal flips a password field between hidden and plain echo. Toggling
// twice restores the original mode; the value is never altered.
func (f *formInput) toggleReveal() {
	if !f.password {
		return
	}
	f.revealed = !f.revealed
	if f.revealed {
		f.input.EchoMode = textinput.EchoNormal
	} else {
		f.input.EchoMode = textinput.EchoPassword
	}
}

func (f formInput) update(msg tea.Msg) (formInput, tea.Cmd) {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f formInput) view(bodyW int) string {
	var b strings.Builder
	if f.label != "" {
		label := f.label
		if f.password {
			eye := "ctrl+r: hiện"
			if f.revealed {
				eye = "ctrl+r: ẩn"
			}
			label += "  " + styleMuted().Render(eye)
		}
		b.WriteString(label)
		b.WriteString("\n")
	}
	b.WriteString(renderInputLine(bodyW, f.input.View()))
	if f.errText != "" {
		b.WriteString("\n")
		b.WriteString(styleError().Italic(true).Render(f.errText))
	}
	return b.String()
}
