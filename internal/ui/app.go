package ui

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/appengine-ltd/for-the-queen/internal/catalog"
	"github.com/appengine-ltd/for-the-queen/internal/planner"
	"github.com/appengine-ltd/for-the-queen/internal/selection"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string

	Color       bool
	AltScreen   bool
	DefaultFuel []catalog.Resource
	Logger      *slog.Logger

	// In and Out default to os.Stdin and os.Stdout.
	In  io.Reader
	Out io.Writer
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	if cfg.In == nil {
		cfg.In = os.Stdin
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &App{cfg: cfg}
}

// Run plans until the user quits. It only returns an error: ErrInterrupted
// or context.Canceled on a normal quit, ErrNotTTY when stdin is piped.
func (a *App) Run(ctx context.Context) (err error) {
	if !interactive(a.cfg.In) {
		return ErrNotTTY
	}
	styles := Styles{Color: a.cfg.Color}
	screen := NewScreen(a.cfg.Out, styles)
	defer func() {
		if rerr := screen.Restore(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	a.cfg.Logger.Info("planner started",
		"version", a.cfg.Version,
		"commit", a.cfg.Commit,
		"built", a.cfg.BuildDate,
	)
	state := selection.NewState(a.cfg.DefaultFuel...)
	prompt := NewPrompter(a.cfg.In, a.cfg.Out, styles, a.cfg.AltScreen)
	err = planner.New(state, prompt, screen, a.cfg.Logger).Run(ctx)
	a.cfg.Logger.Info("planner stopped", "reason", err)
	return err
}

func interactive(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
