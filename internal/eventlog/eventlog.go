// Package eventlog provides a generic timestamped append-only log with
// windowed retrieval and age-based cleanup. It backs the dynamic event log,
// the injury log, and the set-piece history of a match instance.
package eventlog

import (
	"sync"
	"time"
)

// Entry pairs a value with the time it was appended.
type Entry[T any] struct {
	At    time.Time
	Value T
}

// Log is a generic thread-safe append-only log.
type Log[T any] struct {
	mu      sync.Mutex
	entries []Entry[T]
}

// New creates a new empty log.
func New[T any]() *Log[T] {
	return &Log[T]{
		entries: make([]Entry[T], 0),
	}
}

// Append records a value at the given time.
func (l *Log[T]) Append(at time.Time, v T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, Entry[T]{At: at, Value: v})
}

// Since returns the values of all entries at or after cutoff, oldest first.
func (l *Log[T]) Since(cutoff time.Time) []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]T, 0)
	for _, e := range l.entries {
		if !e.At.Before(cutoff) {
			out = append(out, e.Value)
		}
	}
	return out
}

// PurgeBefore removes all entries older than cutoff and returns the number removed.
func (l *Log[T]) PurgeBefore(cutoff time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	kept := l.entries[:0]
	for _, e := range l.entries {
		if !e.At.Before(cutoff) {
			kept = append(kept, e)
		}
	}
	removed := len(l.entries) - len(kept)
	l.entries = kept
	return removed
}

// All returns the values of every entry, oldest first.
func (l *Log[T]) All() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]T, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.Value
	}
	return out
}

// Len returns the number of entries in the log.
func (l *Log[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
