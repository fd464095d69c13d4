package modal

import (
	"testing"
	"time"
)

// manualTimer replaces the close-delay timer so tests decide when it fires.
func manualTimer(c *Controller) *func() {
	var pending func()
	c.after = func(_ time.Duration, f func()) *time.Timer {
		pending = f
		return time.AfterFunc(time.Hour, func() {})
	}
	return &pending
}

func TestOpenCloseLifecycle(t *testing.T) {
	var hidden []HideEffect
	c := NewController(func(e HideEffect) { hidden = append(hidden, e) })
	fire := manualTimer(c)

	effect, ok := c.OpenWith("Poon Hill Trek – Itinerary", "<div>body</div>", "btn-itinerary-poon-hill", "modal-close")
	if !ok {
		t.Fatal("closed modal must open")
	}
	if !effect.SuppressScroll || effect.FocusTarget != "modal-close" {
		t.Fatalf("unexpected open effect: %+v", effect)
	}
	if c.State() != Open {
		t.Fatal("expected Open state")
	}

	// a second open while already open is rejected
	if _, ok := c.OpenWith("x", "y", "z", "modal-close"); ok {
		t.Fatal("open modal must not open again")
	}

	if !c.Close() {
		t.Fatal("open modal must close")
	}
	if c.State() != Closing {
		t.Fatal("close plays the closing state first")
	}
	if len(hidden) != 0 {
		t.Fatal("hide effect must wait for the delay")
	}

	(*fire)()
	if c.State() != Closed {
		t.Fatal("expected Closed after the delay")
	}
	if len(hidden) != 1 {
		t.Fatalf("expected one hide effect, got %d", len(hidden))
	}
	if !hidden[0].RestoreScroll || hidden[0].RestoreFocus != "btn-itinerary-poon-hill" {
		t.Fatalf("hide effect must restore scroll and focus: %+v", hidden[0])
	}
}

func TestCloseTriggers(t *testing.T) {
	c := NewController(nil)
	manualTimer(c)

	if c.EscapeKey() {
		t.Fatal("escape on a closed modal is ignored")
	}

	c.OpenWith("t", "b", "trigger", "modal-close")
	if c.BackdropClick(false) {
		t.Fatal("clicks on modal content must not close")
	}
	if !c.BackdropClick(true) {
		t.Fatal("backdrop click closes the modal")
	}

	// a duplicate close during the closing delay is a no-op
	if c.Close() {
		t.Fatal("closing modal must not close twice")
	}
}

func TestFocusTrapWraps(t *testing.T) {
	c := NewController(nil)
	c.SetFocusables([]string{"modal-close", "link-1", "modal-close-btn"})

	if got := c.NextFocus("modal-close", false); got != "link-1" {
		t.Fatalf("expected link-1, got %s", got)
	}
	// advancing past the last wraps to the first
	if got := c.NextFocus("modal-close-btn", false); got != "modal-close" {
		t.Fatalf("expected wrap to modal-close, got %s", got)
	}
	// retreating past the first wraps to the last
	if got := c.NextFocus("modal-close", true); got != "modal-close-btn" {
		t.Fatalf("expected wrap to modal-close-btn, got %s", got)
	}
	// unknown control snaps to the first focusable
	if got := c.NextFocus("outside", false); got != "modal-close" {
		t.Fatalf("expected modal-close, got %s", got)
	}
}

func TestNextFocusEmptyList(t *testing.T) {
	c := NewController(nil)
	if got := c.NextFocus("anything", false); got != "" {
		t.Fatalf("expected empty result with no focusables, got %s", got)
	}
}
