package promo

import (
	"testing"
	"time"
)

func newTestTracker(start time.Time) (*Tracker, *time.Time) {
	now := start
	tr := NewTracker(NewMemoryStore(), func() time.Time { return now })
	return tr, &now
}

func TestEnsureInitializedIsWriteOnce(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	tr, now := newTestTracker(start)

	if err := tr.EnsureInitialized("v1"); err != nil {
		t.Fatal(err)
	}
	*now = start.Add(5 * time.Hour)
	if err := tr.EnsureInitialized("v1"); err != nil {
		t.Fatal(err)
	}

	// second call must not reset the window
	if got := tr.HoursRemaining("v1"); got != 19 {
		t.Fatalf("expected 19 hours remaining after 5h, got %d", got)
	}
}

func TestEligibleBeforeInitialization(t *testing.T) {
	tr, _ := newTestTracker(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))

	// reading before any visit was recorded falls back to "now"
	if !tr.Eligible("unknown") {
		t.Fatal("unknown visitor should read as eligible")
	}
	if got := tr.HoursRemaining("unknown"); got != 24 {
		t.Fatalf("expected 24 hours remaining, got %d", got)
	}
}

func TestEligibilityExpiresAfterWindow(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	tr, now := newTestTracker(start)
	if err := tr.EnsureInitialized("v1"); err != nil {
		t.Fatal(err)
	}

	*now = start.Add(Window - time.Millisecond)
	if !tr.Eligible("v1") {
		t.Fatal("still inside the window, should be eligible")
	}

	*now = start.Add(Window)
	if tr.Eligible("v1") {
		t.Fatal("window elapsed, should not be eligible")
	}

	// monotonic: once expired it stays expired
	*now = start.Add(10 * 24 * time.Hour)
	if tr.Eligible("v1") {
		t.Fatal("eligibility must never come back")
	}
	if got := tr.HoursRemaining("v1"); got != 0 {
		t.Fatalf("expected 0 hours remaining, got %d", got)
	}
}

func TestHoursRemainingRoundsUp(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	tr, now := newTestTracker(start)
	if err := tr.EnsureInitialized("v1"); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		elapsed time.Duration
		want    int
	}{
		{0, 24},
		{30 * time.Minute, 24},
		{1 * time.Hour, 23},
		{23*time.Hour + 59*time.Minute, 1},
		{24 * time.Hour, 0},
		{48 * time.Hour, 0},
	}
	for _, c := range cases {
		*now = start.Add(c.elapsed)
		if got := tr.HoursRemaining("v1"); got != c.want {
			t.Errorf("elapsed %v: expected %d hours, got %d", c.elapsed, c.want, got)
		}
		if got := tr.HoursRemaining("v1"); got < 0 {
			t.Errorf("elapsed %v: hours remaining went negative", c.elapsed)
		}
	}
}

func TestMemoryStoreNeverOverwrites(t *testing.T) {
	s := NewMemoryStore()
	if ok, _ := s.Set("v", 100); !ok {
		t.Fatal("first set should write")
	}
	if ok, _ := s.Set("v", 200); ok {
		t.Fatal("second set must not overwrite")
	}
	ts, _ := s.Get("v")
	if ts != 100 {
		t.Fatalf("expected original timestamp 100, got %d", ts)
	}
}
