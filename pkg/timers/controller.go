// Package timers tracks the idle lifecycle of one session: the inactivity
// nudge, the goodbye that follows it and the final auto-close.
package timers

import (
	"sync"
	"time"

	"clinic-engagement-engine/pkg/clock"
	"clinic-engagement-engine/pkg/models"
)

type State int

const (
	Active State = iota
	NudgeSent
	Closed
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case NudgeSent:
		return "nudge_sent"
	case Closed:
		return "closed"
	}
	return "unknown"
}

// Handle identifies one scheduled callback. Only the handle that is
// currently pending can be claimed, so a fired callback that lost a race
// against a reset is a no-op.
type Handle struct {
	Kind   models.TimerKind
	FireAt time.Time
}

type Durations struct {
	Nudge     time.Duration
	Goodbye   time.Duration
	AutoClose time.Duration
}

// Controller holds at most one pending handle at a time. onFire is called
// from the clock's goroutine with the handle that fired; the callee decides
// whether to act on it by calling Claim.
type Controller struct {
	mu      sync.Mutex
	clock   clock.Clock
	d       Durations
	onFire  func(*Handle)
	state   State
	current *Handle
	timer   clock.Timer
}

func New(c clock.Clock, d Durations, onFire func(*Handle)) *Controller {
	return &Controller{clock: c, d: d, onFire: onFire, state: Active}
}

// Start arms the inactivity nudge.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Active
	c.scheduleLocked(models.TimerInactivityNudge, c.d.Nudge)
}

// Reset is called after every engine reply to a visitor turn. It moves the
// session back to Active and re-arms the nudge. It reports false once the
// session is Closed.
func (c *Controller) Reset() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Closed {
		return false
	}
	c.state = Active
	c.scheduleLocked(models.TimerInactivityNudge, c.d.Nudge)
	return true
}

// Touch cancels whatever is pending because the visitor just said
// something. It reports false once the session is Closed, in which case the
// pending auto-close is left alone.
func (c *Controller) Touch() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Closed {
		return false
	}
	c.cancelLocked()
	return true
}

// Claim consumes h if it is still the pending handle.
func (c *Controller) Claim(h *Handle) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if h == nil || h != c.current {
		return false
	}
	c.current = nil
	c.timer = nil
	return true
}

// MarkNudgeSent records the nudge reply and arms the goodbye.
func (c *Controller) MarkNudgeSent() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Closed {
		return
	}
	c.state = NudgeSent
	c.scheduleLocked(models.TimerGoodbyeClose, c.d.Goodbye)
}

// MarkClosed records the goodbye reply and arms the auto-close of the
// surface.
func (c *Controller) MarkClosed() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Closed {
		return
	}
	c.state = Closed
	c.scheduleLocked(models.TimerAutoClose, c.d.AutoClose)
}

// Stop closes the controller and cancels anything pending.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Closed
	c.cancelLocked()
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Pending returns the handle waiting to fire, nil if none.
func (c *Controller) Pending() *Handle {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *Controller) scheduleLocked(kind models.TimerKind, after time.Duration) {
	c.cancelLocked()
	h := &Handle{Kind: kind, FireAt: c.clock.Now().Add(after)}
	c.current = h
	c.timer = c.clock.AfterFunc(after, func() { c.onFire(h) })
}

func (c *Controller) cancelLocked() {
	if c.timer != nil {
		c.timer.Stop()
	}
	c.current = nil
	c.timer = nil
}
