package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/appengine-ltd/for-the-queen/internal/report"
)

const (
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
)

// Screen prints the report straight to the terminal between prompts.
type Screen struct {
	out    io.Writer
	styles Styles
}

func NewScreen(out io.Writer, styles Styles) *Screen {
	return &Screen{out: out, styles: styles}
}

func (s *Screen) Clear() error {
	_, err := io.WriteString(s.out, hideCursor+clearScreen+cursorHome)
	return err
}

func (s *Screen) Render(lines []report.Line) error {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(s.styles.Line(l))
		b.WriteString("\n")
	}
	_, err := io.WriteString(s.out, b.String())
	return err
}

// Restore shows the cursor again. Call it on every exit path.
func (s *Screen) Restore() error {
	if _, err := io.WriteString(s.out, showCursor); err != nil {
		return fmt.Errorf("restore cursor: %w", err)
	}
	return nil
}
