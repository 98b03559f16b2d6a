package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializer_SameKeyRunsInArrivalOrder(t *testing.T) {
	var s Serializer
	var mu sync.Mutex
	var order []int
	var running, maxRunning int

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := s.Do(context.Background(), "item:1", func(context.Context) error {
				mu.Lock()
				running++
				if running > maxRunning {
					maxRunning = running
				}
				order = append(order, i)
				mu.Unlock()

				time.Sleep(10 * time.Millisecond)

				mu.Lock()
				running--
				mu.Unlock()
				return nil
			})
			assert.NoError(t, err)
		}(i)
		// stagger arrivals so the order is well defined
		time.Sleep(5 * time.Millisecond)
	}
	wg.Wait()

	assert.Equal(t, 1, maxRunning)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
	assert.Zero(t, s.Pending())
}

func TestSerializer_DifferentKeysDoNotBlock(t *testing.T) {
	var s Serializer
	hold := make(chan struct{})
	done := make(chan struct{})

	go func() {
		_ = s.Do(context.Background(), "a", func(context.Context) error {
			<-hold
			return nil
		})
		close(done)
	}()

	ran := false
	require.Eventually(t, func() bool { return s.Pending() == 1 }, time.Second, time.Millisecond)
	err := s.Do(context.Background(), "b", func(context.Context) error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ran)

	close(hold)
	<-done
}

func TestSerializer_CancelledWaiterKeepsChain(t *testing.T) {
	var s Serializer
	hold := make(chan struct{})
	firstDone := make(chan struct{})
	var mu sync.Mutex
	firstRunning := false
	overlap := false

	go func() {
		_ = s.Do(context.Background(), "k", func(context.Context) error {
			mu.Lock()
			firstRunning = true
			mu.Unlock()
			<-hold
			mu.Lock()
			firstRunning = false
			mu.Unlock()
			return nil
		})
		close(firstDone)
	}()
	require.Eventually(t, func() bool { return s.Pending() == 1 }, time.Second, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.Do(ctx, "k", func(context.Context) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)

	thirdDone := make(chan struct{})
	go func() {
		_ = s.Do(context.Background(), "k", func(context.Context) error {
			mu.Lock()
			overlap = firstRunning
			mu.Unlock()
			return nil
		})
		close(thirdDone)
	}()

	time.Sleep(10 * time.Millisecond)
	close(hold)
	<-firstDone
	<-thirdDone
	assert.False(t, overlap)
}
