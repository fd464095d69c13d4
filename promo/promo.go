package promo

import (
	"strconv"
	"sync"
	"time"

	"locallens/rdx"
)

// The early-booking window runs for 24 hours from the first recorded visit.
const Window = 24 * time.Hour

// Store persists one first-visit timestamp (epoch milliseconds) per visitor.
type Store interface {
	Get(visitorID string) (int64, error)
	// Set stores the timestamp only when none exists yet; it never
	// overwrites. Returns true when the write happened.
	Set(visitorID string, ts int64) (bool, error)
	Exists(visitorID string) (bool, error)
}

// RedisStore keeps first-visit timestamps in Redis.
type RedisStore struct{}

func redisKey(visitorID string) string {
	return "promo:firstvisit:" + visitorID
}

func (RedisStore) Get(visitorID string) (int64, error) {
	v, err := rdx.RdxGet(redisKey(visitorID))
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(v, 10, 64)
}

func (RedisStore) Set(visitorID string, ts int64) (bool, error) {
	return rdx.RdxSetNX(redisKey(visitorID), strconv.FormatInt(ts, 10))
}

func (RedisStore) Exists(visitorID string) (bool, error) {
	return rdx.RdxExists(redisKey(visitorID))
}

// MemoryStore is an in-process Store used in tests.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]int64)}
}

func (m *MemoryStore) Get(visitorID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[visitorID], nil
}

func (m *MemoryStore) Set(visitorID string, ts int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[visitorID]; ok {
		return false, nil
	}
	m.data[visitorID] = ts
	return true, nil
}

func (m *MemoryStore) Exists(visitorID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[visitorID]
	return ok, nil
}

// Tracker answers early-booking eligibility questions against a Store.
// The clock is injected so tests can run on frozen time.
type Tracker struct {
	store Store
	now   func() time.Time
}

func NewTracker(store Store, now func() time.Time) *Tracker {
	if now == nil {
		now = time.Now
	}
	return &Tracker{store: store, now: now}
}

// EnsureInitialized records the first visit if none is stored. Idempotent:
// an existing timestamp is never overwritten.
func (t *Tracker) EnsureInitialized(visitorID string) error {
	_, err := t.store.Set(visitorID, t.now().UnixMilli())
	return err
}

// firstVisit reads the stored timestamp, falling back to "now" when nothing
// has been stored yet. The fallback is not written back.
func (t *Tracker) firstVisit(visitorID string) int64 {
	ok, err := t.store.Exists(visitorID)
	if err != nil || !ok {
		return t.now().UnixMilli()
	}
	ts, err := t.store.Get(visitorID)
	if err != nil {
		return t.now().UnixMilli()
	}
	return ts
}

// Eligible reports whether the visitor is still inside the early-booking
// window.
func (t *Tracker) Eligible(visitorID string) bool {
	elapsed := t.now().UnixMilli() - t.firstVisit(visitorID)
	return time.Duration(elapsed)*time.Millisecond < Window
}

// HoursRemaining returns the whole hours left in the window, rounding any
// positive fraction up and never going below zero.
func (t *Tracker) HoursRemaining(visitorID string) int {
	elapsed := time.Duration(t.now().UnixMilli()-t.firstVisit(visitorID)) * time.Millisecond
	remaining := Window - elapsed
	if remaining <= 0 {
		return 0
	}
	hours := int(remaining / time.Hour)
	if remaining%time.Hour > 0 {
		hours++
	}
	return hours
}
