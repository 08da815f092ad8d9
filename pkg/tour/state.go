package tour

import "sync"

// subscriber pairs a callback with a registration ID for cancellation.
type subscriber[T any] struct {
	id int
	fn func(T)
}

// Value is a minimal observable state container: get, set, subscribe.
//
// It replaces framework-managed reactive state so Store and Player stay
// plain state machines. Subscribers are notified synchronously from Set,
// in registration order. Access is serialized internally, but the intended
// execution model is single-threaded event dispatch: each mutation fully
// applies, including notifications, before the next one is processed.
type Value[T any] struct {
	mu     sync.Mutex
	cur    T
	subs   []subscriber[T]
	nextID int
}

// NewValue creates a container holding initial.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{cur: initial}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.cur
}

// Set stores next and notifies subscribers in registration order.
func (v *Value[T]) Set(next T) {
	v.mu.Lock()
	v.cur = next
	subs := append([]subscriber[T](nil), v.subs...)
	v.mu.Unlock()

	for _, s := range subs {
		s.fn(next)
	}
}

// Subscribe registers fn for future updates and returns a cancel function.
// fn is not called with the current value; use Get for that.
func (v *Value[T]) Subscribe(fn func(T)) (cancel func()) {
	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.subs = append(v.subs, subscriber[T]{id: id, fn: fn})
	v.mu.Unlock()

	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		for i, s := range v.subs {
			if s.id == id {
				v.subs = append(v.subs[:i], v.subs[i+1:]...)
				return
			}
		}
	}
}
