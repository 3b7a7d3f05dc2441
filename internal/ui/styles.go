package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/for-the-queen/internal/report"
)

// --- Styles ---
var (
	green       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	brightGreen = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	red         = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dim         = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	bold        = lipgloss.NewStyle().Bold(true)
)

// Styles colors report lines. The zero value renders plain text.
type Styles struct {
	Color bool
}

func (s Styles) token(t report.Token) string {
	if !s.Color {
		return t.Text
	}
	if t.Selected {
		return green.Render(t.Text)
	}
	return red.Render(t.Text)
}

// Line renders one report line.
func (s Styles) Line(l report.Line) string {
	text := l.Render(s.token)
	if !s.Color {
		return text
	}
	switch l.Kind {
	case report.LineSeparator:
		return dim.Render(text)
	case report.LineHeader:
		return bold.Render(text)
	}
	return text
}

func (s Styles) cursor(text string) string {
	if !s.Color {
		return text
	}
	return brightGreen.Render(text)
}

func (s Styles) item(text string) string {
	if !s.Color {
		return text
	}
	return green.Render(text)
}

func (s Styles) help(text string) string {
	if !s.Color {
		return text
	}
	return dim.Render(text)
}
