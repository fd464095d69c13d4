package modal

import (
	"sync"
	"time"
)

// State of the itinerary overlay.
type State int

const (
	Closed State = iota
	Open
	// Closing plays the exit visual for CloseDelay before hiding.
	Closing
)

// CloseDelay is how long the closing visual state lasts before the overlay
// hides and focus is restored.
const CloseDelay = 250 * time.Millisecond

// OpenEffect tells the rendering surface what to apply on Closed -> Open.
type OpenEffect struct {
	Title          string
	Body           string
	FocusTarget    string // the close control
	SuppressScroll bool
}

// HideEffect is emitted once the closing delay elapses.
type HideEffect struct {
	RestoreScroll bool
	RestoreFocus  string // the control focused before the modal opened
}

// Controller owns the overlay lifecycle: Closed <-> Open with a timed
// Closing interstitial, plus the focus trap. The timer is injectable so
// tests can run without real delays.
type Controller struct {
	mu          sync.Mutex
	state       State
	lastFocused string
	focusables  []string
	timer       *time.Timer
	after       func(time.Duration, func()) *time.Timer
	onHidden    func(HideEffect)
}

// NewController builds a closed controller. onHidden receives the hide
// effect when a close completes; it may be nil.
func NewController(onHidden func(HideEffect)) *Controller {
	return &Controller{
		after:    time.AfterFunc,
		onHidden: onHidden,
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SetFocusables registers the modal's focusable descendants in DOM order.
func (c *Controller) SetFocusables(ids []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.focusables = append([]string(nil), ids...)
}

// OpenWith reveals the overlay. trigger is the control that was focused
// before opening; focus returns there on close. Only a closed modal opens.
func (c *Controller) OpenWith(title, body, trigger, closeControl string) (OpenEffect, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Closed {
		return OpenEffect{}, false
	}
	c.state = Open
	c.lastFocused = trigger
	return OpenEffect{
		Title:          title,
		Body:           body,
		FocusTarget:    closeControl,
		SuppressScroll: true,
	}, true
}

// Close starts the closing transition. Close-button activation, backdrop
// clicks and the Escape key all land here. Returns false when the modal is
// not open.
func (c *Controller) Close() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Open {
		return false
	}
	c.state = Closing
	// clear any stale handle before starting a new one
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = c.after(CloseDelay, c.finishClose)
	return true
}

func (c *Controller) finishClose() {
	c.mu.Lock()
	if c.state != Closing {
		c.mu.Unlock()
		return
	}
	c.state = Closed
	effect := HideEffect{RestoreScroll: true, RestoreFocus: c.lastFocused}
	onHidden := c.onHidden
	c.mu.Unlock()

	if onHidden != nil {
		onHidden(effect)
	}
}

// EscapeKey closes the modal when it is open; otherwise it is ignored.
func (c *Controller) EscapeKey() bool {
	return c.Close()
}

// BackdropClick closes only when the click landed on the backdrop itself,
// not on modal content.
func (c *Controller) BackdropClick(onBackdrop bool) bool {
	if !onBackdrop {
		return false
	}
	return c.Close()
}

// NextFocus implements the focus trap: Tab advances, Shift+Tab retreats,
// and both wrap around the focusable list. Unknown controls snap to the
// first focusable.
func (c *Controller) NextFocus(current string, shift bool) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.focusables)
	if n == 0 {
		return ""
	}
	idx := -1
	for i, id := range c.focusables {
		if id == current {
			idx = i
			break
		}
	}
	if idx == -1 {
		return c.focusables[0]
	}
	if shift {
		return c.focusables[(idx-1+n)%n]
	}
	return c.focusables[(idx+1)%n]
}
