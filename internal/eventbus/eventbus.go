// ABOUTME: Typed event bus plus Scope, a set of subscriptions released as one unit
// ABOUTME: Backs the dropdown window notifications (scroll, resize, pointer)

package eventbus

import "sync"

// Handler is a callback function for events.
type Handler[T any] func(T)

// Bus is a typed event bus that delivers events to registered handlers.
type Bus[T any] struct {
	mu       sync.RWMutex
	handlers map[int]Handler[T]
	order    []int
	nextID   int
}

// New creates a new event bus.
func New[T any]() *Bus[T] {
	return &Bus[T]{
		handlers: make(map[int]Handler[T]),
	}
}

// Subscribe registers a handler and returns an unsubscribe function.
// The returned function is idempotent.
func (b *Bus[T]) Subscribe(handler Handler[T]) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.handlers[id] = handler
	b.order = append(b.order, id)
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.handlers, id)
			for i, v := range b.order {
				if v == id {
					b.order = append(b.order[:i], b.order[i+1:]...)
					break
				}
			}
			b.mu.Unlock()
		})
	}
}

// Publish sends an event to all registered handlers in subscription order.
// Handlers run synchronously; a handler may unsubscribe itself or others.
func (b *Bus[T]) Publish(event T) {
	b.mu.RLock()
	snapshot := make([]int, len(b.order))
	copy(snapshot, b.order)
	b.mu.RUnlock()

	for _, id := range snapshot {
		b.mu.RLock()
		h, ok := b.handlers[id]
		b.mu.RUnlock()
		if ok {
			h(event)
		}
	}
}

// Count returns the number of registered handlers.
func (b *Bus[T]) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers)
}

// Scope groups unsubscribe functions so they can be released together.
// The zero value is an empty, inactive scope.
type Scope struct {
	releases []func()
}

// Add records an unsubscribe function in the scope.
func (s *Scope) Add(release func()) {
	if release == nil {
		return
	}
	s.releases = append(s.releases, release)
}

// Active reports whether the scope holds any subscription.
func (s *Scope) Active() bool {
	return len(s.releases) > 0
}

// Release calls every recorded unsubscribe function in reverse order and
// empties the scope. Safe to call on an empty scope.
func (s *Scope) Release() {
	for i := len(s.releases) - 1; i >= 0; i-- {
		s.releases[i]()
	}
	s.releases = nil
}
