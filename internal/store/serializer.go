package store

import (
	"context"
	"sync"
)

// Serializer runs mutations that share a key one at a time, in the order
// they arrived. Different keys do not block each other.
type Serializer struct {
	mu    sync.Mutex
	tails map[string]chan struct{}
}

func (s *Serializer) Do(ctx context.Context, key string, fn func(context.Context) error) error {
	me := make(chan struct{})

	s.mu.Lock()
	if s.tails == nil {
		s.tails = make(map[string]chan struct{})
	}
	prev := s.tails[key]
	s.tails[key] = me
	s.mu.Unlock()

	if prev != nil {
		select {
		case <-prev:
		case <-ctx.Done():
			// keep the chain intact: release our slot only after prev finishes
			go func() {
				<-prev
				s.release(key, me)
			}()
			return ctx.Err()
		}
	}
	defer s.release(key, me)
	return fn(ctx)
}

func (s *Serializer) release(key string, me chan struct{}) {
	close(me)
	s.mu.Lock()
	if s.tails[key] == me {
		delete(s.tails, key)
	}
	s.mu.Unlock()
}

// Pending reports how many keys currently have a mutation running or queued.
func (s *Serializer) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tails)
}
