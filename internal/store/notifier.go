package store

import "sync"

// subscription is one registered change callback.
type subscription struct {
	id int
	fn func()
}

// notifier is an ordered registry of zero-argument change callbacks.
// Delivery is synchronous and in subscription order; a callback sees the
// store state after the mutation that triggered it.
type notifier struct {
	mu     sync.Mutex
	nextID int
	subs   []subscription
}

// subscribe registers fn and returns a function that deregisters it.
// Unsubscribing twice is harmless.
func (n *notifier) subscribe(fn func()) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.nextID++
	id := n.nextID
	n.subs = append(n.subs, subscription{id: id, fn: fn})

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		for i, s := range n.subs {
			if s.id == id {
				n.subs = append(n.subs[:i], n.subs[i+1:]...)
				return
			}
		}
	}
}

// notify invokes every registered callback in subscription order. It must
// be called without the store mutex held so that callbacks may re-enter
// the store.
func (n *notifier) notify() {
	n.mu.Lock()
	subs := make([]subscription, len(n.subs))
	copy(subs, n.subs)
	n.mu.Unlock()

	for _, s := range subs {
		s.fn()
	}
}
