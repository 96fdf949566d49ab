// Package broadcast provides a single-slot, latest-value publish primitive.
//
// A Value holds one item and a version counter. Publishing overwrites the
// item and wakes every waiting Subscriber. Subscribers compare versions
// rather than draining a queue, so a slow subscriber skips superseded items
// and only ever observes the newest one.
package broadcast

import (
	"context"
	"sync"
)

// Value is a watched slot. The zero value is not usable; use New.
type Value[T any] struct {
	mu      sync.Mutex
	item    T
	version uint64
	changed chan struct{}
}

// New returns a Value holding initial at version 0.
func New[T any](initial T) *Value[T] {
	return &Value[T]{item: initial, changed: make(chan struct{})}
}

// Publish stores item and wakes all waiters. It never blocks on subscribers.
func (v *Value[T]) Publish(item T) {
	v.mu.Lock()
	v.item = item
	v.version++
	close(v.changed)
	v.changed = make(chan struct{})
	v.mu.Unlock()
}

// Load returns the current item and its version.
func (v *Value[T]) Load() (T, uint64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.item, v.version
}

// Subscribe returns a Subscriber that has already seen the current version,
// so its first Next waits for the next Publish.
func (v *Value[T]) Subscribe() *Subscriber[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return &Subscriber[T]{src: v, seen: v.version}
}

// Subscriber tracks the last version it observed. It is not safe for use by
// more than one goroutine.
type Subscriber[T any] struct {
	src  *Value[T]
	seen uint64
}

// Next blocks until a version newer than the last observed one is published,
// then returns the latest item. Versions published in between are skipped.
// The returned int is how many versions were skipped.
//
// Next only reports ctx's error when nothing newer is available, so a
// cancelled subscriber can still drain the final item.
func (s *Subscriber[T]) Next(ctx context.Context) (T, int, error) {
	for {
		item, skipped, wait, ok := s.poll()
		if ok {
			return item, skipped, nil
		}

		select {
		case <-wait:
		case <-ctx.Done():
			if item, skipped, _, ok := s.poll(); ok {
				return item, skipped, nil
			}
			var zero T
			return zero, 0, ctx.Err()
		}
	}
}

func (s *Subscriber[T]) poll() (item T, skipped int, wait <-chan struct{}, ok bool) {
	s.src.mu.Lock()
	defer s.src.mu.Unlock()
	if s.src.version == s.seen {
		return item, 0, s.src.changed, false
	}
	skipped = int(s.src.version - s.seen - 1)
	s.seen = s.src.version
	return s.src.item, skipped, nil, true
}

// Seen is the last version this subscriber observed.
func (s *Subscriber[T]) Seen() uint64 { return s.seen }
