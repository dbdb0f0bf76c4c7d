package frame

import (
	"time"

	"github.com/charmbracelet/harmonica"
)

// Pump is the display-refresh primitive the scheduler runs on: Request
// arranges for cb to be invoked at most once, asynchronously, before the
// next repaint, and returns a cancel function. The scheduler re-requests
// a frame every cycle while running.
type Pump interface {
	Request(cb func(now time.Time)) (cancel func())
}

// TimerPump approximates a display refresh with a fixed-interval timer.
// Callbacks fire on the timer's goroutine; callers that share state with
// the scheduler must confine frames to one loop themselves (or use
// ManualPump and forward frames as messages).
type TimerPump struct {
	Interval time.Duration
}

// NewTimerPump returns a pump ticking at the given frames per second.
func NewTimerPump(fps int) *TimerPump {
	return &TimerPump{Interval: time.Duration(harmonica.FPS(fps) * float64(time.Second))}
}

func (p *TimerPump) Request(cb func(now time.Time)) func() {
	t := time.AfterFunc(p.Interval, func() { cb(time.Now()) })
	return func() { t.Stop() }
}

// ManualPump holds a single pending frame request until Fire is called.
// It backs tests and message-loop hosts (the playground fires it from the
// bubbletea Update loop, keeping every frame on one goroutine).
type ManualPump struct {
	pending func(now time.Time)
}

func (p *ManualPump) Request(cb func(now time.Time)) func() {
	p.pending = cb
	return func() { p.pending = nil }
}

// Fire delivers one frame to the pending request, if any. Returns whether
// a request was outstanding.
func (p *ManualPump) Fire(now time.Time) bool {
	cb := p.pending
	if cb == nil {
		return false
	}
	p.pending = nil
	cb(now)
	return true
}
