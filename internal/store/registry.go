package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

const DefaultSessionTTL = 12 * time.Hour

// Registry owns one Store per browser session.
type Registry struct {
	deps Deps
	ttl  time.Duration

	mu     sync.RWMutex
	stores map[string]*Store
}

func NewRegistry(deps Deps, ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Registry{deps: deps.withDefaults(), ttl: ttl, stores: map[string]*Store{}}
}

func (r *Registry) Create() *Store {
	st := r.Anonymous()
	r.Register(st)
	return st
}

// Anonymous returns a store the registry does not track. It serves one
// request and is dropped with it unless Register keeps it.
func (r *Registry) Anonymous() *Store {
	return New(uuid.NewString(), r.deps)
}

func (r *Registry) Register(st *Store) {
	st.Touch()
	r.mu.Lock()
	r.stores[st.ID] = st
	r.mu.Unlock()
}

// Get returns the live store for id and marks it as used.
func (r *Registry) Get(id string) (*Store, bool) {
	r.mu.RLock()
	st, ok := r.stores[id]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if r.deps.Now().Sub(st.LastSeen()) > r.ttl {
		r.Delete(id)
		return nil, false
	}
	st.Touch()
	return st, true
}

func (r *Registry) Delete(id string) {
	r.mu.Lock()
	delete(r.stores, id)
	r.mu.Unlock()
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.stores)
}

// Sweep drops stores idle for longer than the TTL and reports how many went.
func (r *Registry) Sweep() int {
	cutoff := r.deps.Now().Add(-r.ttl)
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, st := range r.stores {
		if st.LastSeen().Before(cutoff) {
			delete(r.stores, id)
			n++
		}
	}
	return n
}

// Run sweeps every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := r.Sweep(); n > 0 {
				r.deps.Log.Info("sessions expired", slog.Int("count", n), slog.Int("live", r.Len()))
			}
		}
	}
}
