package store

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResource_Lifecycle(t *testing.T) {
	var r Resource[[]string]
	assert.Equal(t, Idle, r.Snapshot().Phase)

	data, err := r.Load(context.Background(), "k", func(context.Context) ([]string, error) {
		return []string{"a"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, data)
	snap := r.Snapshot()
	assert.Equal(t, Loaded, snap.Phase)
	assert.Empty(t, snap.Error)

	_, err = r.Load(context.Background(), "k", func(context.Context) ([]string, error) {
		return nil, errors.New("backend down")
	})
	require.Error(t, err)
	snap = r.Snapshot()
	assert.Equal(t, Failed, snap.Phase)
	assert.Equal(t, "backend down", snap.Error)
	assert.Equal(t, []string{"a"}, snap.Data, "stale data survives a failed load")

	r.Set([]string{"b"})
	snap = r.Snapshot()
	assert.Equal(t, Loaded, snap.Phase)
	assert.Empty(t, snap.Error)

	r.Reset()
	assert.Equal(t, Idle, r.Snapshot().Phase)
	assert.Nil(t, r.Snapshot().Data)
}

func TestResource_UpdateNeedsData(t *testing.T) {
	var r Resource[int]
	r.Update(func(v int) int { return v + 1 })
	_, ok := r.Get()
	assert.False(t, ok)

	r.Set(1)
	r.Update(func(v int) int { return v + 1 })
	v, ok := r.Get()
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestResource_ConcurrentLoadsShareOneCall(t *testing.T) {
	var r Resource[int]
	var calls atomic.Int32
	release := make(chan struct{})
	started := make(chan struct{})

	fn := func(context.Context) (int, error) {
		if calls.Add(1) == 1 {
			close(started)
		}
		<-release
		return 42, nil
	}

	var wg sync.WaitGroup
	results := make([]int, 5)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := r.Load(context.Background(), "same", fn)
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}

	<-started
	// let the other goroutines join the in-flight call
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, Loading, r.Snapshot().Phase)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, []int{42, 42, 42, 42, 42}, results)
}

func TestPhase_Text(t *testing.T) {
	b, err := Failed.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "failed", string(b))
	assert.Equal(t, "idle", Phase(9).String())
}
