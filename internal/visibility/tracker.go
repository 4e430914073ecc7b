// Package visibility notifies observers once when an element first comes
// within a margin of the viewport.
package visibility

import "sync"

// DefaultMargin is the proximity margin around the viewport, in display units
const DefaultMargin float32 = 50

// Rect is an axis-aligned rectangle in the scroll content's coordinates
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// Empty reports whether the rectangle has no area
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Grow returns the rectangle expanded by margin on every side
func (r Rect) Grow(margin float32) Rect {
	return Rect{
		X:      r.X - margin,
		Y:      r.Y - margin,
		Width:  r.Width + 2*margin,
		Height: r.Height + 2*margin,
	}
}

// Intersects reports whether the two rectangles overlap. Touching edges count.
func (r Rect) Intersects(o Rect) bool {
	return r.X <= o.X+o.Width && o.X <= r.X+r.Width &&
		r.Y <= o.Y+o.Height && o.Y <= r.Y+r.Height
}

// BoundsFunc reports an element's current bounds; ok is false when the
// element has not been laid out yet.
type BoundsFunc func() (bounds Rect, ok bool)

// Subscription is a handle to a registered observer
type Subscription interface {
	// Cancel releases the observer. Safe to call more than once.
	Cancel()
}

type subscription struct {
	tracker *Tracker
	id      uint64
	bounds  BoundsFunc
	fn      func()
}

func (s *subscription) Cancel() {
	s.tracker.remove(s.id)
}

// Tracker holds fire-once proximity subscriptions
type Tracker struct {
	margin float32
	nextID uint64
	subs   map[uint64]*subscription
	mu     sync.Mutex
}

// NewTracker creates a tracker; a negative margin is treated as zero
func NewTracker(margin float32) *Tracker {
	if margin < 0 {
		margin = 0
	}
	return &Tracker{
		margin: margin,
		subs:   make(map[uint64]*subscription),
	}
}

// Observe registers fn to run once, the first time bounds come within the
// margin of the viewport passed to Update.
func (t *Tracker) Observe(bounds BoundsFunc, fn func()) Subscription {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nextID++
	sub := &subscription{tracker: t, id: t.nextID, bounds: bounds, fn: fn}
	t.subs[sub.id] = sub
	return sub
}

// Update evaluates every subscription against the viewport. Matching
// subscriptions are removed before their callbacks run, outside the lock.
func (t *Tracker) Update(viewport Rect) {
	area := viewport.Grow(t.margin)

	t.mu.Lock()
	var fired []*subscription
	for id, sub := range t.subs {
		bounds, ok := sub.bounds()
		if !ok || bounds.Empty() {
			continue
		}
		if bounds.Intersects(area) {
			delete(t.subs, id)
			fired = append(fired, sub)
		}
	}
	t.mu.Unlock()

	for _, sub := range fired {
		if sub.fn != nil {
			sub.fn()
		}
	}
}

// Len returns the number of pending subscriptions
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.subs)
}

func (t *Tracker) remove(id uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.subs, id)
}
