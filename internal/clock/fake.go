package clock

import (
	"sync"
	"time"
)

// Fake is a Clock that only moves when told to.
type Fake struct {
	mtx sync.Mutex
	now time.Time
}

// NewFake returns a Fake clock set to the given time.
func NewFake(now time.Time) *Fake {
	return &Fake{now: now}
}

// Now returns the fake's current time.
func (f *Fake) Now() time.Time {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	return f.now
}

// Set sets the fake's current time. Setting a time before the current one
// simulates the host clock being turned back.
func (f *Fake) Set(t time.Time) {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	f.now = t
}

// Advance moves the fake's current time by d.
func (f *Fake) Advance(d time.Duration) {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	f.now = f.now.Add(d)
}
