package history

import (
	"sync"

	"moodline/internal/emotion"
)

// DefaultCapacity matches the default emotion window size.
const DefaultCapacity = 5

// Buffer is a fixed-capacity FIFO window of emotion labels. Capacity is set
// at construction and immutable afterwards.
type Buffer struct {
	mu       sync.RWMutex
	labels   []emotion.Label
	capacity int
}

// New constructs a buffer with the given capacity. Non-positive capacities
// fall back to DefaultCapacity.
func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{
		labels:   make([]emotion.Label, 0, capacity),
		capacity: capacity,
	}
}

// Append records a label, evicting the oldest entry when at capacity.
// Append always succeeds.
func (b *Buffer) Append(label emotion.Label) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.labels) == b.capacity {
		copy(b.labels, b.labels[1:])
		b.labels = b.labels[:len(b.labels)-1]
	}
	b.labels = append(b.labels, label)
}

// Snapshot returns an ordered copy of the current window, oldest first.
// The copy never aliases internal state, so callers can hold it across
// later appends.
func (b *Buffer) Snapshot() []emotion.Label {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]emotion.Label, len(b.labels))
	copy(out, b.labels)
	return out
}

// Len returns the number of labels currently held.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.labels)
}

// IsEmpty reports whether no labels have been recorded yet.
func (b *Buffer) IsEmpty() bool {
	return b.Len() == 0
}

// Capacity returns the fixed window size.
func (b *Buffer) Capacity() int {
	return b.capacity
}
