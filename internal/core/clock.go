package core

import "time"

// MaxDelta caps the per-frame delta so long pauses (window dragging,
// debugger breaks) cannot destabilise the integrators.
const MaxDelta = 0.050

// DeltaClock measures wall-clock deltas between frames, clamped to
// MaxDelta seconds.
type DeltaClock struct {
	last time.Time
}

// NewDeltaClock returns a clock whose first Delta call yields zero.
func NewDeltaClock() *DeltaClock {
	return &DeltaClock{}
}

// Delta returns the seconds elapsed since the previous call, clamped to
// [0, MaxDelta].
func (c *DeltaClock) Delta() float64 {
	now := time.Now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return ClampDelta(dt)
}

// ClampDelta bounds a delta to [0, MaxDelta] seconds.
func ClampDelta(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if dt > MaxDelta {
		return MaxDelta
	}
	return dt
}
