// Package clock supplies wall-clock time to the timer and the task log and
// formats instants in the one textual format utomato uses everywhere.
package clock

import (
	"fmt"
	"time"
)

// Layout is the fixed timestamp format, e.g.
// "2024.03.07 14:05:09 (Thursday) CET".
const Layout = "2006.01.02 15:04:05 (Monday) MST"

// Clock abstracts time, so that time accounting can be driven
// deterministically in tests.
type Clock interface {
	Now() time.Time
}

// System is the Clock backed by the operating system's time.
type System struct{}

// Now returns the current time.
func (System) Now() time.Time {
	return time.Now()
}

// FormatError is returned when text does not match Layout.
type FormatError struct {
	Text string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("timestamp '%s' does not match format '%s' (%s)", e.Text, Layout, e.Err.Error())
}

func (e *FormatError) Unwrap() error { return e.Err }

// Format renders t in the given location according to Layout.
// A nil location means the local time zone.
func Format(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(Layout)
}

// Parse is the inverse of Format.
// The result is a broken-down time as read from the text; use ToSec to get
// to an instant.
func Parse(text string) (BrokenDown, error) {
	t, err := time.Parse(Layout, text)
	if err != nil {
		return BrokenDown{}, &FormatError{Text: text, Err: err}
	}
	return BrokenDownOf(t), nil
}
