package core

import "time"

// Clock supplies the current time. Tests substitute a manual clock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now.
func (SystemClock) Now() time.Time { return time.Now() }

// FixedStep throttles work to at most a fixed number of steps per second. It
// keeps the earliest time the next step may run.
type FixedStep struct {
	clock    Clock
	interval time.Duration
	next     time.Time
}

// NewFixedStep constructs a FixedStep targeting rate steps per second. A nil
// clock uses the system clock.
func NewFixedStep(rate int, clock Clock) *FixedStep {
	if clock == nil {
		clock = SystemClock{}
	}
	fs := &FixedStep{clock: clock}
	fs.SetRate(rate)
	return fs
}

// SetRate changes the step rate. Non-positive rates fall back to 60.
func (f *FixedStep) SetRate(rate int) {
	if rate <= 0 {
		rate = 60
	}
	f.interval = time.Second / time.Duration(rate)
}

// Interval returns the minimum time between steps.
func (f *FixedStep) Interval() time.Duration { return f.interval }

// ShouldStep reports whether a step is due and, if so, schedules the next
// one. The first call is always due.
func (f *FixedStep) ShouldStep() bool {
	now := f.clock.Now()
	if !f.next.IsZero() && now.Before(f.next) {
		return false
	}
	f.next = now.Add(f.interval)
	return true
}

// Reset makes the next ShouldStep call due immediately.
func (f *FixedStep) Reset() { f.next = time.Time{} }
