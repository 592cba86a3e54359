package editor

import "sync"

// Subscription is a handle to a registered listener. Cancel removes the
// listener; it is safe to call from any goroutine, including from inside
// a listener during dispatch.
type Subscription struct {
	cancel func()
	once   sync.Once
}

// Cancel removes the subscription's listener. Subsequent calls are no-ops.
func (s *Subscription) Cancel() {
	s.once.Do(s.cancel)
}

// entry pairs a listener with its registration id. Ids are only used for
// removal; delivery order is slice order, which is insertion order.
type entry[T any] struct {
	id uint64
	fn func(T)
}

// listenerList is one ordered multicast list. Dispatch copies the list
// before notifying so listeners registered or cancelled mid-dispatch do
// not affect the in-flight delivery.
type listenerList[T any] struct {
	mu   sync.Mutex
	next uint64
	subs []entry[T]
}

// subscribe appends a listener and returns its cancellation handle.
func (l *listenerList[T]) subscribe(fn func(T)) *Subscription {
	l.mu.Lock()
	l.next++
	id := l.next
	l.subs = append(l.subs, entry[T]{id: id, fn: fn})
	l.mu.Unlock()

	return &Subscription{cancel: func() { l.remove(id) }}
}

// remove deletes the listener with the given id, preserving the order of
// the remaining listeners.
func (l *listenerList[T]) remove(id uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, e := range l.subs {
		if e.id == id {
			l.subs = append(l.subs[:i], l.subs[i+1:]...)
			return
		}
	}
}

// dispatch invokes every currently subscribed listener synchronously, in
// subscription order. Listeners receive the event by value and cannot
// veto delivery to later listeners.
func (l *listenerList[T]) dispatch(ev T) {
	l.mu.Lock()
	subs := make([]entry[T], len(l.subs))
	copy(subs, l.subs)
	l.mu.Unlock()

	for _, e := range subs {
		e.fn(ev)
	}
}

// len reports the number of subscribed listeners.
func (l *listenerList[T]) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.subs)
}
