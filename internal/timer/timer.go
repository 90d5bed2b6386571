// Package timer implements a single countdown with latched completion.
package timer

import (
	"fmt"
	"time"

	"github.com/ja-he/utomato/internal/clock"
)

// Timer tracks one countdown: its length, the instant it was started at (if
// running) and whether it has finished.
//
// Time is accounted in whole seconds.
// Once finished, a Timer stays finished until Start or Stop is called.
type Timer struct {
	clock  clock.Clock
	length func() time.Duration

	start    *clock.Instant
	finished bool
}

// New returns a stopped Timer reading time from c.
// The countdown length is asked from length whenever it is needed, so it
// cannot get out of step with whatever decides it.
func New(c clock.Clock, length func() time.Duration) *Timer {
	return &Timer{
		clock:  c,
		length: length,
	}
}

// Fixed is a countdown length that never changes.
func Fixed(d time.Duration) func() time.Duration {
	return func() time.Duration { return d }
}

// Duration returns the length of the countdown.
func (t *Timer) Duration() time.Duration { return t.length().Truncate(time.Second) }

// Start (re)starts the countdown from zero.
func (t *Timer) Start() {
	now := clock.InstantOf(t.clock.Now())
	t.start = &now
	t.finished = false
}

// Stop stops the countdown.
func (t *Timer) Stop() {
	t.start = nil
	t.finished = false
}

// Finish marks the countdown as finished regardless of the time remaining.
// A running countdown keeps its start time.
func (t *Timer) Finish() {
	t.finished = true
}

// Running returns whether the countdown is running.
func (t *Timer) Running() bool { return t.start != nil }

// StartTime returns the instant the timer was started at.
// The second return value is false if the timer is not running.
func (t *Timer) StartTime() (clock.Instant, bool) {
	if t.start == nil {
		return 0, false
	}
	return *t.start, true
}

// Accumulated returns the time elapsed since Start, or zero if not running.
// If the clock was turned back since Start, zero is returned rather than a
// negative value.
func (t *Timer) Accumulated() time.Duration {
	if t.start == nil {
		return 0
	}
	elapsed := clock.ToSec(clock.InstantOf(t.clock.Now())) - clock.ToSec(*t.start)
	if elapsed < 0 {
		return 0
	}
	return time.Duration(elapsed) * time.Second
}

// Remaining returns the time left on the countdown.
// It is negative once the countdown has been overrun.
func (t *Timer) Remaining() time.Duration {
	return t.Duration() - t.Accumulated()
}

// Done reports whether the countdown is finished.
//
// A running countdown that has no time remaining becomes finished; this is
// latched, so subsequent calls report true regardless of the clock.
func (t *Timer) Done() bool {
	if t.finished {
		return true
	}
	if t.start == nil {
		return false
	}
	if t.Remaining() <= 0 {
		t.finished = true
		return true
	}
	return false
}

// String renders the remaining time as a fixed-width "MM:SS" field, e.g.
// " 25:00" or "  4:59"; when overrun, the leading blank becomes a '-', e.g.
// "- 1:05".
func (t *Timer) String() string {
	return FormatRemaining(t.Remaining())
}

// FormatRemaining renders a remaining time the way Timer.String does.
func FormatRemaining(remaining time.Duration) string {
	secs := int64(remaining / time.Second)
	prefix := " "
	if secs < 0 {
		prefix = "-"
		secs = -secs
	}
	return fmt.Sprintf("%s%2d:%02d", prefix, secs/60, secs%60)
}
