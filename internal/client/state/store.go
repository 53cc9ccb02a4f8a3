package state

import "sync"

// Store serialises dispatches and publishes every effective change to its subscribers.
// Subscribers run on the dispatching goroutine, in dispatch order, and must not
// call Dispatch themselves.
type Store struct {
	notifyMu sync.Mutex
	mu       sync.Mutex
	snap     Snapshot
	nextID   int
	subs     map[int]func(Snapshot)
}

func NewStore(initial Snapshot) *Store {
	return &Store{
		snap: initial,
		subs: make(map[int]func(Snapshot)),
	}
}

// Snapshot returns the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snap
}

// Dispatch reduces a into the current state. It returns the resulting snapshot and
// whether it changed; unchanged results are not published.
func (s *Store) Dispatch(a Action) (Snapshot, bool) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	next, changed := Reduce(s.snap, a)
	if changed {
		s.snap = next
	}
	subs := make([]func(Snapshot), 0, len(s.subs))
	if changed {
		for _, fn := range s.subs {
			subs = append(subs, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}

	if !changed {
		return s.Snapshot(), false
	}

	return next, true
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}
