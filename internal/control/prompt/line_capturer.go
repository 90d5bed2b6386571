// Package prompt asks the operator for a single line of text while the
// terminal stays in the timer view.
package prompt

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/ja-he/utomato/internal/control/action"
	"github.com/ja-he/utomato/internal/control/editor"
	"github.com/ja-he/utomato/internal/input"
	"github.com/ja-he/utomato/internal/input/processors"
	"github.com/ja-he/utomato/internal/session"
)

// EventSource delivers terminal events, giving up after the timeout with nil.
type EventSource interface {
	PollEvent(timeout time.Duration) tcell.Event
}

// LineCapturer implements session.Capturer by editing a line in the timer
// view. While it waits for input the view keeps being redrawn, so the
// countdown stays visible.
type LineCapturer struct {
	ctx          context.Context
	events       EventSource
	pollInterval time.Duration
	log          zerolog.Logger

	// Redraw is called before every wait for input.
	Redraw func()
	// Resized is called on terminal resize events.
	Resized func()

	active    editor.StringEditor
	processor input.Processor
}

// NewLineCapturer returns a LineCapturer reading from the given events.
// Cancelling ctx aborts a running capture.
func NewLineCapturer(
	ctx context.Context,
	events EventSource,
	pollInterval time.Duration,
	logger zerolog.Logger,
) *LineCapturer {
	return &LineCapturer{
		ctx:          ctx,
		events:       events,
		pollInterval: pollInterval,
		log:          logger,
		Redraw:       func() {},
		Resized:      func() {},
	}
}

// Active returns the line being edited, or nil if there is no capture in
// progress.
func (c *LineCapturer) Active() editor.StringEditorView {
	if c.active == nil {
		return nil
	}
	return c.active
}

// GetHelp returns the key help of the capture in progress, if any.
func (c *LineCapturer) GetHelp() input.Help {
	if c.processor == nil {
		return input.Help{}
	}
	return c.processor.GetHelp()
}

// Capture shows the invitation with an empty line and returns the line once
// the operator commits it, without surrounding blanks.
// If the operator interrupts (Ctrl-C) or ctx is done, it returns what was
// typed so far along with session.ErrAborted.
func (c *LineCapturer) Capture(invitation string) (string, error) {
	committed := false
	var result string
	ed := editor.NewStringEditor(invitation, "", func(s string) {
		result = s
		committed = true
	})

	processor, err := processors.NewTextInputProcessor(
		lineBindings(ed),
		ed.AddRune,
	)
	if err != nil {
		return "", fmt.Errorf("could not set up line input (%w)", err)
	}

	c.active, c.processor = ed, processor
	defer func() { c.active, c.processor = nil, nil }()
	c.log.Debug().Str("invitation", invitation).Msg("capturing line")

	for !committed {
		if err := c.ctx.Err(); err != nil {
			return strings.TrimSpace(ed.GetContent()), fmt.Errorf("%w (%s)", session.ErrAborted, err.Error())
		}

		c.Redraw()

		switch e := c.events.PollEvent(c.pollInterval).(type) {
		case nil:
		case *tcell.EventKey:
			key := input.KeyFromTcellEvent(e)
			if key.IsInterrupt() {
				return strings.TrimSpace(ed.GetContent()), session.ErrAborted
			}
			if !processor.ProcessInput(key) {
				c.log.Trace().Str("key", key.ToDebugString()).Msg("key not mapped in line input")
			}
		case *tcell.EventResize:
			c.Resized()
		default:
			c.log.Trace().Msgf("ignoring event of type %T during capture", e)
		}
	}

	result = strings.TrimSpace(result)
	c.log.Debug().Str("line", result).Msg("captured line")
	return result, nil
}

func lineBindings(ed editor.StringEditor) map[input.Keyspec]action.Action {
	simple := func(explanation string, f func()) action.Action {
		return action.Func{Description: explanation, Call: f}
	}
	return map[input.Keyspec]action.Action{
		"<cr>":    simple("commit", ed.Commit),
		"<esc>":   simple("commit empty", func() { ed.Clear(); ed.Commit() }),
		"<bs>":    simple("delete rune before cursor", ed.BackspaceRune),
		"<c-bs>":  simple("delete rune before cursor", ed.BackspaceRune),
		"<c-w>":   simple("delete word before cursor", ed.BackspaceWord),
		"<c-u>":   simple("delete to beginning", ed.BackspaceToBeginning),
		"<c-k>":   simple("delete to end", ed.DeleteToEnd),
		"<del>":   simple("delete rune at cursor", ed.DeleteRune),
		"<c-d>":   simple("delete rune at cursor", ed.DeleteRune),
		"<left>":  simple("move cursor left", ed.MoveCursorLeft),
		"<right>": simple("move cursor right", ed.MoveCursorRight),
		"<home>":  simple("move cursor to beginning", ed.MoveCursorToBeginning),
		"<c-a>":   simple("move cursor to beginning", ed.MoveCursorToBeginning),
		"<end>":   simple("move cursor past end", ed.MoveCursorPastEnd),
		"<c-e>":   simple("move cursor past end", ed.MoveCursorPastEnd),
	}
}
