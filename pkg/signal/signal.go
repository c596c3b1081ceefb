// Package signal provides a typed publish/subscribe primitive for decoupled
// notification between widgets and application code.
//
// A Signal holds an ordered list of subscribers. Emit calls them
// synchronously, in connection order, against a snapshot taken when the
// emit starts: subscribers connected or disconnected by a callback during an
// emit only affect later emits.
//
// Signals are not safe for concurrent use. Like the rest of the widget tree
// they belong to the frame thread; background work should hand results back
// through engine.Engine.Dispatch before emitting.
//
// Lifetime: a callback that closes over caller data keeps that data
// reachable for as long as the callback stays connected. Disconnect the
// ConnectionID (or call DisconnectAll) when the data should be released.
package signal

// ConnectionID identifies one subscriber of one Signal. IDs are unique per
// Signal instance and never zero.
type ConnectionID uint64

type slot[T any] struct {
	id ConnectionID
	fn func(T)
}

// Signal is a typed event source. The zero value is ready to use.
//
// Signals that carry no payload use Signal[struct{}]; payloads made of
// several values travel as a struct.
type Signal[T any] struct {
	slots  []slot[T]
	nextID ConnectionID
}

// New returns an empty signal. Equivalent to new(Signal[T]).
func New[T any]() *Signal[T] {
	return &Signal[T]{}
}

// Connect appends fn to the subscriber list and returns its id.
// A nil fn is ignored and yields id 0, which Disconnect rejects.
func (s *Signal[T]) Connect(fn func(T)) ConnectionID {
	if fn == nil {
		return 0
	}
	s.nextID++
	s.slots = append(s.slots, slot[T]{id: s.nextID, fn: fn})
	return s.nextID
}

// ConnectOnce subscribes fn for a single emit. The subscription is removed
// before fn runs.
func (s *Signal[T]) ConnectOnce(fn func(T)) ConnectionID {
	if fn == nil {
		return 0
	}
	var id ConnectionID
	id = s.Connect(func(v T) {
		s.Disconnect(id)
		fn(v)
	})
	return id
}

// Disconnect removes the subscriber with the given id. It reports whether
// one was found; unknown or stale ids are a no-op.
func (s *Signal[T]) Disconnect(id ConnectionID) bool {
	if id == 0 {
		return false
	}
	for i, sl := range s.slots {
		if sl.id == id {
			// Copy rather than shift in place: an emit in progress may be
			// iterating over the old backing array.
			next := make([]slot[T], 0, len(s.slots)-1)
			next = append(next, s.slots[:i]...)
			next = append(next, s.slots[i+1:]...)
			s.slots = next
			return true
		}
	}
	return false
}

// DisconnectAll removes every subscriber.
func (s *Signal[T]) DisconnectAll() {
	s.slots = nil
}

// Len returns the number of connected subscribers.
func (s *Signal[T]) Len() int {
	return len(s.slots)
}

// Emit invokes every connected subscriber with v, in connection order.
func (s *Signal[T]) Emit(v T) {
	snapshot := s.slots
	for _, sl := range snapshot {
		sl.fn(v)
	}
}
