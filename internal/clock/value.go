package clock

import (
	"time"
)

// Value is a point in time as call sites hand it around: either an Instant
// already counted in seconds or a BrokenDown calendar time.
// Use ToSec to normalize.
type Value interface {
	isValue()
}

// Instant is a count of seconds since the Unix epoch.
type Instant int64

// InstantOf returns the Instant of t, dropping sub-second precision.
func InstantOf(t time.Time) Instant {
	return Instant(t.Unix())
}

func (Instant) isValue() {}

// BrokenDown is a calendar time split into its fields.
// Zone and Offset are informational; conversion via ToSec treats the fields
// as UTC calendar values without applying any offset.
type BrokenDown struct {
	Year    int
	Month   time.Month
	Day     int
	Hour    int
	Minute  int
	Second  int
	Weekday time.Weekday
	Zone    string
	Offset  int
}

// BrokenDownOf splits t (in its own location) into a BrokenDown.
func BrokenDownOf(t time.Time) BrokenDown {
	zone, offset := t.Zone()
	return BrokenDown{
		Year:    t.Year(),
		Month:   t.Month(),
		Day:     t.Day(),
		Hour:    t.Hour(),
		Minute:  t.Minute(),
		Second:  t.Second(),
		Weekday: t.Weekday(),
		Zone:    zone,
		Offset:  offset,
	}
}

func (BrokenDown) isValue() {}

// ToSec normalizes v to seconds since the epoch.
// An Instant is returned unchanged, a BrokenDown is converted with UTC
// calendar arithmetic.
func ToSec(v Value) int64 {
	switch v := v.(type) {
	case Instant:
		return int64(v)
	case BrokenDown:
		return time.Date(v.Year, v.Month, v.Day, v.Hour, v.Minute, v.Second, 0, time.UTC).Unix()
	default:
		panic("unknown clock value type")
	}
}
