// Package session implements the work/break state machine.
//
// A Controller owns a single timer whose length is read off the phase, so
// Working always counts down the work interval and OnBreak the break interval.
package session

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/ja-he/utomato/internal/clock"
	"github.com/ja-he/utomato/internal/tasklog"
	"github.com/ja-he/utomato/internal/timer"
)

// Invitations shown by the capture collaborator.
const (
	WorkInvitation  = "What did you just work on?"
	BreakInvitation = "Break."
)

// ErrAborted is returned by a Capturer when the operator aborts the program
// while being asked for a description.
var ErrAborted = errors.New("aborted by operator")

// Capturer asks the operator for a description of the interval just
// completed. It may block for as long as the operator takes.
//
// Returning ErrAborted (possibly wrapped) ends the session; any other error
// is logged and whatever text was returned is recorded.
type Capturer interface {
	Capture(invitation string) (string, error)
}

// Appender takes completed task records.
type Appender interface {
	Append(tasklog.Record)
}

// Options configure a Controller.
type Options struct {
	Intervals Intervals
	Capture   CaptureMode

	// AutoAdvance makes an expired interval transition on the next Tick.
	// Otherwise an expired interval waits for Start (confirm) or Finish.
	AutoAdvance bool

	// Location is the time zone record timestamps are formatted in; nil means
	// local time.
	Location *time.Location
}

// Controller is the session state machine.
// It is not safe for concurrent use; it is meant to be driven by a single
// event loop.
type Controller struct {
	clock    clock.Clock
	timer    *timer.Timer
	tasks    Appender
	capturer Capturer
	opts     Options
	log      zerolog.Logger

	phase Phase
}

// NewController returns an Idle controller.
func NewController(
	c clock.Clock,
	tasks Appender,
	capturer Capturer,
	opts Options,
	logger zerolog.Logger,
) (*Controller, error) {
	if err := opts.Intervals.Validate(); err != nil {
		return nil, err
	}
	controller := &Controller{
		clock:    c,
		tasks:    tasks,
		capturer: capturer,
		opts:     opts,
		log:      logger,
		phase:    Idle,
	}
	controller.timer = timer.New(c, func() time.Duration { return opts.Intervals.For(controller.phase) })
	return controller, nil
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase { return c.phase }

// Duration returns the length of the current phase's interval.
func (c *Controller) Duration() time.Duration { return c.timer.Duration() }

// Running returns whether the countdown is running.
func (c *Controller) Running() bool { return c.timer.Running() }

// Remaining returns the time left in the current interval.
func (c *Controller) Remaining() time.Duration { return c.timer.Remaining() }

// TimerString renders the remaining time (see timer.FormatRemaining).
func (c *Controller) TimerString() string { return c.timer.String() }

// Start handles the start-or-confirm key.
//
// From Idle it begins a work interval. A stopped timer is restarted in its
// current phase. Without AutoAdvance, an expired interval is confirmed and
// transitions.
func (c *Controller) Start() error {
	switch {
	case c.phase == Idle:
		c.phase = Working
		c.timer.Start()
		c.log.Info().Stringer("phase", c.phase).Dur("duration", c.timer.Duration()).Msg("started")
	case !c.timer.Running():
		c.timer.Start()
		c.log.Info().Stringer("phase", c.phase).Msg("restarted stopped interval")
	case c.timer.Done():
		return c.advance()
	}
	return nil
}

// Stop stops the countdown without leaving the current phase.
func (c *Controller) Stop() {
	if c.phase == Idle {
		return
	}
	c.timer.Stop()
	c.log.Info().Stringer("phase", c.phase).Msg("stopped")
}

// Finish completes the current interval right away, as if it had expired.
func (c *Controller) Finish() error {
	if c.phase == Idle {
		c.log.Debug().Msg("nothing to finish while idle")
		return nil
	}
	c.log.Info().Stringer("phase", c.phase).Msg("finishing early")
	c.timer.Finish()
	return c.advance()
}

// Tick checks for expiry of the current interval and, with AutoAdvance,
// applies the resulting transition.
func (c *Controller) Tick() error {
	if c.phase == Idle || !c.opts.AutoAdvance {
		return nil
	}
	if c.timer.Done() {
		c.log.Info().Stringer("phase", c.phase).Msg("interval expired")
		return c.advance()
	}
	return nil
}

// advance applies the transition out of the current interval, recording it
// first if the capture mode asks for it.
func (c *Controller) advance() error {
	err := c.record()
	if err != nil {
		return err
	}

	switch c.phase {
	case Working:
		c.phase = OnBreak
		c.timer.Start()
	case OnBreak:
		c.phase = Idle
		c.timer.Stop()
	}
	c.log.Info().Stringer("phase", c.phase).Msg("transitioned")
	return nil
}

// record captures a description and appends a record for the current
// interval. The time bounds are taken before asking, since the operator may
// take a while to answer.
func (c *Controller) record() error {
	if !c.opts.Capture.captures(c.phase) {
		return nil
	}
	start, running := c.timer.StartTime()
	if !running {
		c.log.Debug().Stringer("phase", c.phase).Msg("interval was stopped, nothing to record")
		return nil
	}
	end := c.clock.Now()

	invitation := WorkInvitation
	if c.phase == OnBreak {
		invitation = BreakInvitation
	}
	description, err := c.capturer.Capture(invitation)
	if errors.Is(err, ErrAborted) {
		return err
	}
	if err != nil {
		c.log.Warn().Err(err).Msg("capturing description failed, recording what was captured")
	}

	record := tasklog.Record{
		Description: description,
		Start:       clock.Format(time.Unix(clock.ToSec(start), 0), c.opts.Location),
		End:         clock.Format(end, c.opts.Location),
	}
	c.tasks.Append(record)
	c.log.Debug().Str("description", record.Description).Str("start", record.Start).Str("end", record.End).Msg("recorded task")
	return nil
}
