// Package logbus implements the per-container log fan-out (spec §4.7): a
// bounded multi-producer/multi-subscriber broadcast of stdout/stderr text
// chunks, where a slow subscriber loses entries rather than stalling the
// writer.
//
// Go's standard library has no broadcast-channel primitive (unlike, say,
// Tokio's mpsc/broadcast pair in the Rust prototype this system was
// distilled from); this package hand-rolls one out of a mutex-guarded set
// of per-subscriber buffered channels, since nothing in the example pack
// supplies a ready-made bounded pub/sub primitive to reach for instead.
package logbus

import "sync"

// Capacity is the default per-subscriber buffer size (spec §3: "capacity
// on the order of 1,000 entries").
const Capacity = 1000

// Broadcaster fans out chunks published by one writer to any number of
// subscribers. It is safe for concurrent use.
type Broadcaster struct {
	mu     sync.Mutex
	subs   map[int]chan string
	nextID int
	closed bool
}

// NewBroadcaster returns an empty, open Broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[int]chan string)}
}

// Publish enqueues chunk to every current subscriber. It never blocks: a
// subscriber whose buffer is full has the chunk dropped for it rather than
// stalling the writer (the "lagging-subscriber tolerance" in spec §4.7).
// Publish on a closed broadcaster, or with no subscribers, is a no-op.
func (b *Broadcaster) Publish(chunk string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	for _, ch := range b.subs {
		select {
		case ch <- chunk:
		default:
			// subscriber fell behind; drop for it, keep going
		}
	}
}

// Subscription is a live subscriber handle. Chunks arrive on C; Unsubscribe
// must be called when the caller is done reading to release resources.
type Subscription struct {
	id int
	C  <-chan string
	b  *Broadcaster
}

// Subscribe registers a new subscriber and returns a handle that receives
// only chunks published from this point forward (no backlog replay, per
// spec §4.7). Subscribing to a closed broadcaster returns a handle whose
// channel is already closed.
func (b *Broadcaster) Subscribe() *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan string, Capacity)
	if b.closed {
		close(ch)
		return &Subscription{id: -1, C: ch, b: b}
	}

	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	return &Subscription{id: id, C: ch, b: b}
}

// Unsubscribe removes the subscription. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s.id < 0 {
		return
	}
	s.b.mu.Lock()
	defer s.b.mu.Unlock()
	if ch, ok := s.b.subs[s.id]; ok {
		delete(s.b.subs, s.id)
		close(ch)
	}
	s.id = -1
}

// Close shuts the broadcaster down, closing every subscriber's channel so
// in-flight StreamLogs RPCs end cleanly (spec §3: "Existing subscribers
// observe channel closure"). Further Publish/Subscribe calls are no-ops.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		close(ch)
		delete(b.subs, id)
	}
}
