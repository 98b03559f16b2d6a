package store

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type Phase int

const (
	Idle Phase = iota
	Loading
	Loaded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

func (p Phase) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

type Snapshot[T any] struct {
	Phase    Phase     `json:"phase"`
	Data     T         `json:"data"`
	Error    string    `json:"error,omitempty"`
	LoadedAt time.Time `json:"loadedAt,omitempty"`
}

// Resource holds the last fetched value of one backend resource together
// with its load phase. A failed load keeps the previous data.
type Resource[T any] struct {
	mu       sync.RWMutex
	phase    Phase
	data     T
	err      error
	loadedAt time.Time

	group singleflight.Group
}

// Load runs fn unless a load under the same key is already in flight, in
// which case the caller shares that result.
func (r *Resource[T]) Load(ctx context.Context, key string, fn func(context.Context) (T, error)) (T, error) {
	v, err, _ := r.group.Do(key, func() (any, error) {
		r.mu.Lock()
		r.phase = Loading
		r.mu.Unlock()

		data, err := fn(ctx)
		if err != nil {
			r.Fail(err)
			return data, err
		}
		r.Set(data)
		return data, nil
	})
	out, _ := v.(T)
	return out, err
}

// Set stores data as freshly loaded and clears any error.
func (r *Resource[T]) Set(data T) {
	r.mu.Lock()
	r.phase = Loaded
	r.data = data
	r.err = nil
	r.loadedAt = time.Now()
	r.mu.Unlock()
}

// Update applies fn to the current data. It is a no-op unless the resource
// has data to update.
func (r *Resource[T]) Update(fn func(T) T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.phase != Loaded && r.phase != Failed {
		return
	}
	r.data = fn(r.data)
}

func (r *Resource[T]) Fail(err error) {
	r.mu.Lock()
	r.phase = Failed
	r.err = err
	r.mu.Unlock()
}

func (r *Resource[T]) Reset() {
	r.mu.Lock()
	var zero T
	r.phase = Idle
	r.data = zero
	r.err = nil
	r.loadedAt = time.Time{}
	r.mu.Unlock()
}

func (r *Resource[T]) Get() (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.data, r.phase == Loaded
}

func (r *Resource[T]) Err() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.err
}

func (r *Resource[T]) Snapshot() Snapshot[T] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s := Snapshot[T]{Phase: r.phase, Data: r.data, LoadedAt: r.loadedAt}
	if r.err != nil {
		s.Error = publicError(r.err)
	}
	return s
}
