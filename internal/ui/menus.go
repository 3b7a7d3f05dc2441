package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// --- Single-select model ---

type selectModel struct {
	title   string
	options []string
	styles  Styles
	idx     int

	chosen    bool
	cancelled bool
}

func newSelectModel(title string, options []string, styles Styles) selectModel {
	return selectModel{title: title, options: options, styles: styles}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	n := len(m.options)
	switch key.String() {
	case "ctrl+c", "esc", "q":
		m.cancelled = true
		return m, tea.Quit
	case "up", "k":
		if n > 0 {
			m.idx = (m.idx + n - 1) % n
		}
	case "down", "j":
		if n > 0 {
			m.idx = (m.idx + 1) % n
		}
	case "enter":
		if n > 0 {
			m.chosen = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m selectModel) View() string {
	if m.chosen || m.cancelled {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.title + "\n")
	for i, it := range m.options {
		if i == m.idx {
			b.WriteString(m.styles.cursor("> " + it))
		} else {
			b.WriteString("  " + m.styles.item(it))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.styles.help("↑/↓ to move, Enter to select, Esc to quit") + "\n")
	return b.String()
}

func (m selectModel) answer() string {
	return m.options[m.idx]
}

// --- Checklist model ---

type checklistModel struct {
	title   string
	options []string
	checked []bool
	styles  Styles
	idx     int

	confirmed bool
	cancelled bool
}

func newChecklistModel(title string, options []string, defaults []int, styles Styles) checklistModel {
	checked := make([]bool, len(options))
	for _, i := range defaults {
		if i >= 0 && i < len(checked) {
			checked[i] = true
		}
	}
	return checklistModel{title: title, options: options, checked: checked, styles: styles}
}

func (m checklistModel) Init() tea.Cmd {
	return nil
}

func (m checklistModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	n := len(m.options)
	switch key.String() {
	case "ctrl+c", "esc", "q":
		m.cancelled = true
		return m, tea.Quit
	case "up", "k":
		if n > 0 {
			m.idx = (m.idx + n - 1) % n
		}
	case "down", "j":
		if n > 0 {
			m.idx = (m.idx + 1) % n
		}
	case " ", "space", "x":
		if n > 0 {
			m.checked = append([]bool(nil), m.checked...)
			m.checked[m.idx] = !m.checked[m.idx]
		}
	case "a":
		all := true
		for _, c := range m.checked {
			all = all && c
		}
		next := make([]bool, n)
		for i := range next {
			next[i] = !all
		}
		m.checked = next
	case "enter":
		m.confirmed = true
		return m, tea.Quit
	}
	return m, nil
}

func (m checklistModel) View() string {
	if m.confirmed || m.cancelled {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.title + "\n")
	for i, it := range m.options {
		box := "[ ] "
		if m.checked[i] {
			box = "[x] "
		}
		if i == m.idx {
			b.WriteString(m.styles.cursor("> " + box + it))
		} else {
			b.WriteString("  " + box + m.styles.item(it))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.styles.help("↑/↓ to move, Space to toggle, a for all, Enter to confirm, Esc to quit") + "\n")
	return b.String()
}

func (m checklistModel) answer() []string {
	out := make([]string, 0, len(m.options))
	for i, it := range m.options {
		if m.checked[i] {
			out = append(out, it)
		}
	}
	return out
}
