package timer_test

import (
	"testing"
	"time"

	"github.com/ja-he/utomato/internal/clock"
	"github.com/ja-he/utomato/internal/timer"
)

var epoch = time.Date(2022, time.May, 4, 10, 0, 0, 0, time.UTC)

func TestRemainingAndDone(t *testing.T) {
	for _, d := range []time.Duration{1 * time.Second, 300 * time.Second, 1500 * time.Second} {
		for _, e := range []time.Duration{0, 1 * time.Second, 299 * time.Second, 300 * time.Second, 1500 * time.Second, 2000 * time.Second} {
			c := clock.NewFake(epoch)
			tm := timer.New(c, timer.Fixed(d))
			tm.Start()
			c.Advance(e)

			if tm.Remaining() != d-e {
				t.Errorf("d=%s e=%s: expected remaining %s, got %s", d, e, d-e, tm.Remaining())
			}
			if tm.Done() != (d-e <= 0) {
				t.Errorf("d=%s e=%s: expected done=%t", d, e, d-e <= 0)
			}
		}
	}
}

func TestDoneLatches(t *testing.T) {
	c := clock.NewFake(epoch)
	tm := timer.New(c, timer.Fixed(10*time.Second))
	tm.Start()
	c.Advance(10 * time.Second)
	if !tm.Done() {
		t.Fatal("expected timer to be done")
	}

	// the clock rewinds, the timer stays done
	c.Set(epoch)
	if !tm.Done() {
		t.Error("done not latched after clock rewind")
	}

	t.Run("start resets", func(t *testing.T) {
		tm.Start()
		if tm.Done() {
			t.Error("timer done right after start")
		}
	})
}

func TestNotRunning(t *testing.T) {
	c := clock.NewFake(epoch)
	tm := timer.New(c, timer.Fixed(10*time.Second))

	if tm.Running() {
		t.Error("new timer running")
	}
	if tm.Done() {
		t.Error("new timer done")
	}
	if tm.Accumulated() != 0 {
		t.Error("new timer has accumulated time")
	}
	if tm.Remaining() != 10*time.Second {
		t.Error("new timer's remaining time is not its duration")
	}
	if _, ok := tm.StartTime(); ok {
		t.Error("new timer has start time")
	}
}

func TestStartStop(t *testing.T) {
	c := clock.NewFake(epoch)
	tm := timer.New(c, timer.Fixed(10*time.Second))

	tm.Start()
	if !tm.Running() {
		t.Error("started timer not running")
	}
	start, ok := tm.StartTime()
	if !ok || clock.ToSec(start) != epoch.Unix() {
		t.Error("start time not recorded:", start)
	}

	t.Run("restart from zero", func(t *testing.T) {
		c.Advance(5 * time.Second)
		tm.Start()
		if tm.Accumulated() != 0 {
			t.Error("restart did not reset accumulated time:", tm.Accumulated())
		}
	})

	tm.Stop()
	if tm.Running() {
		t.Error("stopped timer running")
	}
	tm.Stop()
	if tm.Running() || tm.Done() {
		t.Error("second stop changed something")
	}
}

func TestFinish(t *testing.T) {
	c := clock.NewFake(epoch)
	tm := timer.New(c, timer.Fixed(10*time.Second))
	tm.Start()
	c.Advance(3 * time.Second)
	tm.Finish()
	if !tm.Done() {
		t.Error("finished timer not done")
	}
	start, ok := tm.StartTime()
	if !ok || clock.ToSec(start) != epoch.Unix() {
		t.Error("finishing lost the start time:", start)
	}
	if tm.Remaining() != 7*time.Second {
		t.Error("finishing changed the remaining time:", tm.Remaining())
	}

	t.Run("stopped", func(t *testing.T) {
		tm.Stop()
		if tm.Done() {
			t.Error("stop did not reset finished")
		}
		tm.Finish()
		if !tm.Done() || tm.Running() {
			t.Error("finishing a stopped timer should only mark it done")
		}
	})

	t.Run("start resets", func(t *testing.T) {
		tm.Start()
		if tm.Done() {
			t.Error("timer done right after start")
		}
	})
}

func TestLengthFollowsSource(t *testing.T) {
	c := clock.NewFake(epoch)
	length := 10 * time.Second
	tm := timer.New(c, func() time.Duration { return length })
	tm.Start()
	c.Advance(4 * time.Second)
	if tm.Remaining() != 6*time.Second {
		t.Error("unexpected remaining time:", tm.Remaining())
	}

	length = 3*time.Second + 500*time.Millisecond
	if tm.Duration() != 3*time.Second {
		t.Error("length not followed or not truncated to seconds:", tm.Duration())
	}
	if !tm.Done() {
		t.Error("expected timer to be done under the shorter length")
	}
}

func TestClockRewindClampsAccumulated(t *testing.T) {
	c := clock.NewFake(epoch)
	tm := timer.New(c, timer.Fixed(10*time.Second))
	tm.Start()
	c.Set(epoch.Add(-1 * time.Hour))
	if tm.Accumulated() != 0 {
		t.Error("accumulated negative after clock rewind:", tm.Accumulated())
	}
	if tm.Remaining() != 10*time.Second {
		t.Error("remaining exceeds duration after clock rewind:", tm.Remaining())
	}
}

func TestString(t *testing.T) {
	for remaining, expected := range map[time.Duration]string{
		1500 * time.Second: " 25:00",
		300 * time.Second:  "  5:00",
		59 * time.Second:   "  0:59",
		0:                  "  0:00",
		-65 * time.Second:  "- 1:05",
		-600 * time.Second: "-10:00",
	} {
		got := timer.FormatRemaining(remaining)
		if got != expected {
			t.Errorf("for %s expected '%s', got '%s'", remaining, expected, got)
		}
	}

	c := clock.NewFake(epoch)
	tm := timer.New(c, timer.Fixed(1500*time.Second))
	tm.Start()
	c.Advance(1 * time.Second)
	if tm.String() != " 24:59" {
		t.Error("unexpected timer string:", tm.String())
	}
}
