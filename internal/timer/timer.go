// Package timer implements the inspection countdown and solve clock.
// It is advanced by the same ticks that drive the animator.
package timer

import (
	"fmt"
	"time"
)

// DefaultInspection is the standard inspection allowance.
const DefaultInspection = 15 * time.Second

// Phase is the timer state.
type Phase int

const (
	Idle Phase = iota
	Inspecting
	Running
	Stopped
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Inspecting:
		return "inspecting"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Timer counts down inspection, then counts up the solve.
type Timer struct {
	inspection time.Duration
	phase      Phase
	remaining  time.Duration
	elapsed    time.Duration
}

// New creates a timer. A zero inspection skips straight to the solve clock.
func New(inspection time.Duration) *Timer {
	return &Timer{inspection: inspection}
}

// StartInspection begins the countdown.
func (t *Timer) StartInspection() {
	t.elapsed = 0
	if t.inspection <= 0 {
		t.phase = Running
		return
	}
	t.phase = Inspecting
	t.remaining = t.inspection
}

// Start begins the solve clock. Starting during inspection ends it early.
func (t *Timer) Start() {
	if t.phase == Running {
		return
	}
	t.phase = Running
	t.remaining = 0
	t.elapsed = 0
}

// Stop freezes the solve clock and returns the solve time.
func (t *Timer) Stop() time.Duration {
	if t.phase == Running || t.phase == Inspecting {
		t.phase = Stopped
		t.remaining = 0
	}
	return t.elapsed
}

// Reset returns to idle.
func (t *Timer) Reset() {
	t.phase = Idle
	t.remaining = 0
	t.elapsed = 0
}

// Advance moves time forward. An expired countdown starts the solve clock
// with the overrun already counted.
func (t *Timer) Advance(dt time.Duration) {
	switch t.phase {
	case Inspecting:
		if dt < t.remaining {
			t.remaining -= dt
			return
		}
		over := dt - t.remaining
		t.Start()
		t.elapsed = over
	case Running:
		t.elapsed += dt
	}
}

// Phase returns the current state.
func (t *Timer) Phase() Phase {
	return t.phase
}

// Elapsed returns the solve time so far.
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Remaining returns the inspection time left.
func (t *Timer) Remaining() time.Duration {
	return t.remaining
}

// Format renders d as mm:ss.cc.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	cs := d.Milliseconds() / 10
	return fmt.Sprintf("%02d:%02d.%02d", cs/6000, (cs/100)%60, cs%100)
}
