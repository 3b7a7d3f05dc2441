package ui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Prompter asks questions through short-lived bubbletea programs, one per
// menu, so the report printed by Screen stays above the prompt.
type Prompter struct {
	in        io.Reader
	out       io.Writer
	styles    Styles
	altScreen bool
}

func NewPrompter(in io.Reader, out io.Writer, styles Styles, altScreen bool) *Prompter {
	return &Prompter{in: in, out: out, styles: styles, altScreen: altScreen}
}

func (p *Prompter) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	opts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	}
	if p.altScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("run prompt: %w", err)
	}
	return final, nil
}

// Select shows a single-choice menu and returns the chosen option.
func (p *Prompter) Select(ctx context.Context, title string, options []string) (string, error) {
	final, err := p.run(ctx, newSelectModel(title, options, p.styles))
	if err != nil {
		return "", err
	}
	m, ok := final.(selectModel)
	if !ok || m.cancelled || !m.chosen {
		return "", ErrInterrupted
	}
	return m.answer(), nil
}

// MultiSelect shows a checklist with defaults pre-checked and returns the
// checked options in display order.
func (p *Prompter) MultiSelect(ctx context.Context, title string, options []string, defaults []int) ([]string, error) {
	final, err := p.run(ctx, newChecklistModel(title, options, defaults, p.styles))
	if err != nil {
		return nil, err
	}
	m, ok := final.(checklistModel)
	if !ok || m.cancelled || !m.confirmed {
		return nil, ErrInterrupted
	}
	return m.answer(), nil
}
