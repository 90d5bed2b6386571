package session

import (
	"fmt"
	"time"
)

// Phase is the controller's current mode.
type Phase int

const (
	// Idle is waiting for the operator to start the next work interval.
	Idle Phase = iota
	// Working is a work interval.
	Working
	// OnBreak is a break interval.
	OnBreak
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Working:
		return "working"
	case OnBreak:
		return "on break"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Intervals are the two fixed interval lengths.
type Intervals struct {
	Work  time.Duration
	Break time.Duration
}

// For returns the duration the timer has in phase p.
// Idle holds the work duration, ready for the next start.
func (i Intervals) For(p Phase) time.Duration {
	if p == OnBreak {
		return i.Break
	}
	return i.Work
}

// Validate checks that both intervals are at least a second long.
func (i Intervals) Validate() error {
	if i.Work < time.Second {
		return fmt.Errorf("work interval must be at least one second (is %s)", i.Work)
	}
	if i.Break < time.Second {
		return fmt.Errorf("break interval must be at least one second (is %s)", i.Break)
	}
	return nil
}

// CaptureMode determines which completed intervals are recorded to the task
// log.
type CaptureMode int

const (
	// CaptureBoth records work intervals and breaks.
	CaptureBoth CaptureMode = iota
	// CaptureWork records work intervals only.
	CaptureWork
	// CaptureBreak records breaks only.
	CaptureBreak
)

// ParseCaptureMode parses "work", "break" or "both".
func ParseCaptureMode(s string) (CaptureMode, error) {
	switch s {
	case "both":
		return CaptureBoth, nil
	case "work":
		return CaptureWork, nil
	case "break":
		return CaptureBreak, nil
	default:
		return CaptureBoth, fmt.Errorf("unknown capture mode '%s' (expected 'work', 'break' or 'both')", s)
	}
}

func (m CaptureMode) String() string {
	switch m {
	case CaptureWork:
		return "work"
	case CaptureBreak:
		return "break"
	default:
		return "both"
	}
}

func (m CaptureMode) captures(p Phase) bool {
	switch p {
	case Working:
		return m != CaptureBreak
	case OnBreak:
		return m != CaptureWork
	default:
		return false
	}
}
