package domain

import "time"

// Snapshot is an immutable, timestamped view of the component catalog.
// The engine only ever reads it; refreshes publish a new Snapshot instead
// of mutating the current one.
type Snapshot struct {
	TakenAt    time.Time
	Components map[Category][]Component
}

// Category returns the candidates for one category. The slice must not be
// modified by callers.
func (s *Snapshot) Category(c Category) []Component {
	if s == nil {
		return nil
	}
	return s.Components[c]
}

// Total counts components across all categories.
func (s *Snapshot) Total() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, comps := range s.Components {
		n += len(comps)
	}
	return n
}

// Empty reports whether the snapshot carries no components at all.
func (s *Snapshot) Empty() bool {
	return s.Total() == 0
}

// Age is the time elapsed since the snapshot was taken.
func (s *Snapshot) Age(now time.Time) time.Duration {
	if s == nil {
		return 1<<63 - 1
	}
	return now.Sub(s.TakenAt)
}
