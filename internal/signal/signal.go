// Package signal provides typed publish/subscribe topics for views that do
// not own each other. Delivery is synchronous and fire-and-forget: only
// subscribers present at publish time see a value, and nothing is buffered
// or replayed.
package signal

import "sync"

// Topic is a single named channel carrying values of type T.
type Topic[T any] struct {
	name string

	mu     sync.Mutex
	nextID int
	subs   []subscriber[T]
}

type subscriber[T any] struct {
	id int
	f  func(T)
}

func NewTopic[T any](name string) *Topic[T] {
	return &Topic[T]{name: name}
}

func (t *Topic[T]) Name() string {
	return t.name
}

// Subscribe registers f and returns a func that unregisters it.
func (t *Topic[T]) Subscribe(f func(T)) (unsubscribe func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nextID++
	id := t.nextID
	t.subs = append(t.subs, subscriber[T]{id: id, f: f})

	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		for i, s := range t.subs {
			if s.id == id {
				t.subs = append(t.subs[:i:i], t.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers v to every current subscriber and returns how many were
// reached. Zero means the value was dropped.
func (t *Topic[T]) Publish(v T) int {
	t.mu.Lock()
	subs := append([]subscriber[T](nil), t.subs...)
	t.mu.Unlock()

	for _, s := range subs {
		s.f(v)
	}
	return len(subs)
}

// Subscribers returns the number of registered subscribers.
func (t *Topic[T]) Subscribers() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.subs)
}
