package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const modalMaxW = 64

func modalWidth(termW int) int {
	w := termW - 8
	if w > modalMaxW {
		w = modalMaxW
	}
	if w < 30 {
		w = 30
	}
	return w
}

func modalBodyWidth(termW int) int {
	return modalWidth(termW) - 4
}

// renderModalBox draws a titled box for modal content. No borders: some
// terminals show background artifacts when nesting bordered components inside
// a modal with a background color.
func renderModalBox(termW int, title, content string) string {
	w := modalWidth(termW)
	header := lipgloss.NewStyle().
		Bold(true).
		Width(w).
		Padding(0, 2).
		Foreground(colorSurfaceFg).
		Background(colorControlBg).
		Render(title)
	body := lipgloss.NewStyle().
		Width(w).
		Padding(1, 2).
		Foreground(colorSurfaceFg).
		Background(colorSurfaceBg).
		Render(content)
	return header + "\n" + body
}

// placeCentered positions a modal in the middle of the screen over a blank
// backdrop.
func placeCentered(termW, termH int, box string) string {
	return lipgloss.Place(termW, termH, lipgloss.Center, lipgloss.Center, box)
}

// renderInputLine renders a textinput view as a single visual line inside a
// modal. Newlines (or ANSI overflow) in the raw view would otherwise trigger
// wrapping that looks like "newline insertion" while typing.
func renderInputLine(bodyW int, inputView string) string {
	if bodyW < 10 {
		bodyW = 10
	}
	inputView = strings.ReplaceAll(inputView, "\n", " ")
	inputView = strings.ReplaceAll(inputView, "\r", " ")

	line := lipgloss.PlaceHorizontal(
		bodyW,
		lipgloss.Left,
		" "+inputView+" ",
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	if xansi.StringWidth(line) > bodyW {
		line = xansi.Cut(line, 0, bodyW) + "\x1b[0m"
	}
	return line
}
