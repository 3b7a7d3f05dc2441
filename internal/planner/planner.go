// Package planner drives the plan/report loop: render the shared-needs
// report, ask which menu to edit, apply the answer, repeat.
package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/appengine-ltd/for-the-queen/internal/catalog"
	"github.com/appengine-ltd/for-the-queen/internal/needs"
	"github.com/appengine-ltd/for-the-queen/internal/report"
	"github.com/appengine-ltd/for-the-queen/internal/selection"
)

const routerTitle = "What would you like to do?"

// Prompter asks the user questions. Errors (interrupts, closed input, a
// missing terminal) are passed through to the caller untouched.
type Prompter interface {
	Select(ctx context.Context, title string, options []string) (string, error)
	MultiSelect(ctx context.Context, title string, options []string, defaults []int) ([]string, error)
}

// Screen draws the report between prompts.
type Screen interface {
	Clear() error
	Render(lines []report.Line) error
}

type Phase int

const (
	AwaitingSpecies Phase = iota
	Planning
)

func (p Phase) String() string {
	switch p {
	case AwaitingSpecies:
		return "awaiting_species"
	case Planning:
		return "planning"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

type Planner struct {
	state  *selection.State
	prompt Prompter
	screen Screen
	log    *slog.Logger
}

func New(state *selection.State, prompt Prompter, screen Screen, logger *slog.Logger) *Planner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Planner{state: state, prompt: prompt, screen: screen, log: logger}
}

func (p *Planner) Phase() Phase {
	if p.state.SpeciesEmpty() {
		return AwaitingSpecies
	}
	return Planning
}

// Next is the menu the user must edit next, or false when the router
// decides.
func (p *Planner) Next() (selection.Kind, bool) {
	if p.Phase() == AwaitingSpecies {
		return selection.KindSpecies, true
	}
	return 0, false
}

func (p *Planner) View(k selection.Kind) (selection.View, error) {
	return p.state.View(k)
}

func (p *Planner) Apply(k selection.Kind, names []string) error {
	return p.state.Apply(k, names)
}

// Aggregate recomputes the need counts for the selected species.
func (p *Planner) Aggregate() needs.Result {
	return needs.Aggregate(p.state.SelectedSpecies())
}

// Report recomputes the annotated report from the current selection.
func (p *Planner) Report() []report.Line {
	res := p.Aggregate()
	lines := report.Build(res, report.Names(p.state.SelectedNames()))
	p.log.Debug("report rebuilt",
		"species", res.Species,
		"needs", len(res.Counts),
		"shared", len(res.Shared(report.MinShared)),
	)
	return lines
}

// Run loops until the prompter or the context fails. It never returns nil.
func (p *Planner) Run(ctx context.Context) error {
	for {
		if err := p.Step(ctx); err != nil {
			return err
		}
	}
}

// Step renders once and handles one menu interaction.
func (p *Planner) Step(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := p.screen.Clear(); err != nil {
		return fmt.Errorf("clear screen: %w", err)
	}
	if err := p.screen.Render(p.Report()); err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	kind, forced := p.Next()
	if !forced {
		var err error
		kind, err = p.route(ctx)
		if err != nil {
			return err
		}
	}
	return p.Edit(ctx, kind)
}

func (p *Planner) route(ctx context.Context) (selection.Kind, error) {
	kinds := selection.RouterKinds()
	labels := make([]string, len(kinds))
	for i, k := range kinds {
		labels[i] = k.Label()
	}
	answer, err := p.prompt.Select(ctx, routerTitle, labels)
	if err != nil {
		return 0, fmt.Errorf("choose menu: %w", err)
	}
	return selection.ParseLabel(answer)
}

// Edit prompts the kind's checklist and replaces its selection with the
// answer.
func (p *Planner) Edit(ctx context.Context, k selection.Kind) error {
	view, err := p.state.View(k)
	if err != nil {
		return err
	}
	answer, err := p.prompt.MultiSelect(ctx, k.Title(), view.Options, view.SelectedIndexes)
	if err != nil {
		return fmt.Errorf("edit %s: %w", k, err)
	}
	if err := p.state.Apply(k, answer); err != nil {
		if !errors.Is(err, catalog.ErrInvalidCategoryValue) {
			return err
		}
		p.log.Warn("ignored unknown selection", "menu", k.String(), "error", err)
	}
	p.log.Info("selection updated", "menu", k.String(), "selected", len(answer), "phase", p.Phase().String())
	return nil
}
