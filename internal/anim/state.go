package anim

import "sync"

// State is an observable value. Listeners run synchronously on the goroutine
// that changed the value and only when the value actually changes.
type State[T comparable] struct {
	mu        sync.RWMutex
	value     T
	listeners map[int]func(T)
	nextID    int
}

func NewState[T comparable](initial T) *State[T] {
	return &State[T]{
		value:     initial,
		listeners: make(map[int]func(T)),
	}
}

func (s *State[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

func (s *State[T]) Set(value T) {
	s.mu.Lock()
	if s.value == value {
		s.mu.Unlock()
		return
	}
	s.value = value
	listeners := make([]func(T), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(value)
	}
}

// Subscribe registers fn for future changes and returns a function that removes it.
func (s *State[T]) Subscribe(fn func(T)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}
