package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/ja-he/utomato/internal/clock"
	"github.com/ja-he/utomato/internal/control/action"
	"github.com/ja-he/utomato/internal/control/editor"
	"github.com/ja-he/utomato/internal/control/prompt"
	"github.com/ja-he/utomato/internal/input"
	"github.com/ja-he/utomato/internal/persist"
	"github.com/ja-he/utomato/internal/potatolog"
	"github.com/ja-he/utomato/internal/session"
	"github.com/ja-he/utomato/internal/styling"
	"github.com/ja-he/utomato/internal/tasklog"
	"github.com/ja-he/utomato/internal/ui"
	"github.com/ja-he/utomato/internal/ui/panes"
)

// Title is shown atop the timer.
const Title = "uTomato"

// Screen is what the app needs of the terminal (see tui.ScreenHandler).
type Screen interface {
	ui.ConstrainedRenderer
	ui.RenderOrchestratorControl
	ui.TextCursorController
	prompt.EventSource

	NeedsSync()
	Fini()
}

// AppOptions configure an App.
type AppOptions struct {
	Session      session.Options
	PollInterval time.Duration
	OutputDir    string
	Bindings     map[input.Keyspec]input.Actionspec
	Stylesheet   styling.Stylesheet
	Logs         potatolog.LogReader

	// ErrOut receives the report of a failed flush.
	ErrOut io.Writer
}

// App is the timer program: it owns the task log, the session controller
// and the writer that persists the log once the app is done.
type App struct {
	ctx    context.Context
	screen Screen

	tasks      *tasklog.Log
	writer     *persist.Writer
	controller *session.Controller
	capturer   *prompt.LineCapturer
	keys       *input.Tree
	root       *panes.RootPane

	pollInterval time.Duration
	errOut       io.Writer

	quit      bool
	actionErr error

	finiOnce  sync.Once
	flushOnce sync.Once
	flushErr  error

	log zerolog.Logger
}

// NewApp sets up an App on the given (initialized) screen.
// Cancelling ctx ends a running app as an interrupt would.
func NewApp(
	ctx context.Context,
	screen Screen,
	c clock.Clock,
	opts AppOptions,
	logger zerolog.Logger,
) (*App, error) {
	app := &App{
		ctx:          ctx,
		screen:       screen,
		tasks:        tasklog.New(),
		pollInterval: opts.PollInterval,
		errOut:       opts.ErrOut,
		log:          logger,
	}

	app.writer = persist.NewWriter(opts.OutputDir, c, logger.With().Str("component", "writer").Logger())
	app.writer.Location = opts.Session.Location

	app.capturer = prompt.NewLineCapturer(ctx, screen, opts.PollInterval, logger.With().Str("component", "prompt").Logger())

	controller, err := session.NewController(
		c,
		app.tasks,
		app.capturer,
		opts.Session,
		logger.With().Str("component", "session").Logger(),
	)
	if err != nil {
		return nil, fmt.Errorf("could not set up session (%w)", err)
	}
	app.controller = controller

	app.keys, err = constructBindingsTree(opts.Bindings, app.actions())
	if err != nil {
		return nil, err
	}

	app.root = app.constructPanes(opts.Stylesheet, opts.Logs)
	app.capturer.Redraw = app.root.Draw
	app.capturer.Resized = screen.NeedsSync

	return app, nil
}

func (a *App) actions() map[input.Actionspec]action.Action {
	return map[input.Actionspec]action.Action{
		input.ActionStart: action.Func{Description: "start", Call: func() {
			a.actionErr = a.controller.Start()
		}},
		input.ActionStop: action.Func{Description: "stop", Call: func() {
			a.controller.Stop()
		}},
		input.ActionFinish: action.Func{Description: "finish", Call: func() {
			a.actionErr = a.controller.Finish()
		}},
		input.ActionQuit: action.Func{Description: "quit", Call: func() {
			a.quit = true
		}},
	}
}

func (a *App) constructPanes(stylesheet styling.Stylesheet, logs potatolog.LogReader) *panes.RootPane {
	screenDimensions := a.screen.Dimensions
	timerDimensions := func() (x, y, w, h int) {
		sx, sy, sw, _ := screenDimensions()
		return sx, sy, sw, 2
	}
	promptDimensions := func() (x, y, w, h int) {
		sx, sy, sw, _ := screenDimensions()
		return sx, sy + 2, sw, 1
	}
	statusDimensions := func() (x, y, w, h int) {
		sx, sy, sw, sh := screenDimensions()
		row := sy + sh - 1
		if row < sy+3 {
			row = sy + 3
		}
		return sx, row, sw, 1
	}
	help := func() input.Help {
		if a.capturer.Active() != nil {
			return a.capturer.GetHelp()
		}
		return a.keys.GetHelp()
	}

	cursor := ui.NewCursor(a.screen)
	return panes.NewRootPane(
		a.screen,
		cursor,
		screenDimensions,
		panes.NewTimerPane(
			ui.NewConstrainedRenderer(a.screen, timerDimensions),
			timerDimensions,
			stylesheet,
			Title,
			a.controller,
		),
		panes.NewStringEditorPane(
			ui.NewConstrainedRenderer(a.screen, promptDimensions),
			promptDimensions,
			stylesheet,
			func() editor.StringEditorView { return a.capturer.Active() },
			cursor,
		),
		panes.NewStatusPane(
			ui.NewConstrainedRenderer(a.screen, statusDimensions),
			statusDimensions,
			stylesheet,
			a.controller,
			help,
			logs,
		),
	)
}

// Run runs the event loop until the operator quits or interrupts, then
// finalizes the screen and flushes the task log.
//
// Should the loop panic, the log is flushed before the panic continues.
// A flush that collides with an existing file is reported to ErrOut but is
// not returned as an error.
func (a *App) Run() error {
	defer func() {
		if r := recover(); r != nil {
			a.fini()
			a.log.Error().Interface("panic", r).Msg("event loop panicked, flushing task list")
			a.flush()
			panic(r)
		}
	}()

	a.log.Info().Msg("utomato TUI started")
	loopErr := a.loop()
	a.fini()

	if errors.Is(loopErr, session.ErrAborted) {
		a.log.Info().Msg("aborted by operator during capture")
		loopErr = nil
	}

	flushErr := a.flush()
	var collision *persist.CollisionError
	if errors.As(flushErr, &collision) {
		flushErr = nil
	}
	return errors.Join(loopErr, flushErr)
}

// loop is the event loop. Each iteration renders, waits up to the poll
// interval for one event, handles it and checks for expiry of the interval.
func (a *App) loop() error {
	for {
		if err := a.ctx.Err(); err != nil {
			a.log.Info().Err(err).Msg("interrupted")
			return nil
		}

		a.root.Draw()

		switch e := a.screen.PollEvent(a.pollInterval).(type) {
		case nil:
		case *tcell.EventKey:
			key := input.KeyFromTcellEvent(e)
			if key.IsInterrupt() {
				a.log.Info().Msg("interrupted by operator")
				return nil
			}
			if !a.keys.ProcessInput(key) {
				a.log.Debug().Str("key", key.ToDebugString()).Msg("key not mapped")
			}
		case *tcell.EventResize:
			a.screen.NeedsSync()
		default:
			a.log.Trace().Msgf("ignoring event of type %T", e)
		}

		if a.actionErr != nil {
			return a.actionErr
		}
		if a.quit {
			a.log.Info().Msg("quitting")
			return nil
		}

		err := a.controller.Tick()
		if err != nil {
			return err
		}
	}
}

func (a *App) fini() {
	a.finiOnce.Do(a.screen.Fini)
}

// flush writes the task log, at most once, reporting a failure to ErrOut.
func (a *App) flush() error {
	a.flushOnce.Do(func() {
		a.flushErr = a.writer.Flush(a.tasks)
		if a.flushErr != nil {
			a.log.Error().Err(a.flushErr).Msg("could not write task list")
			if a.errOut != nil {
				persist.Report(a.errOut, a.flushErr)
			}
		}
	})
	return a.flushErr
}
