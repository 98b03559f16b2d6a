package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_ExpiresIdleStores(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	r := NewRegistry(Deps{Now: clock}, time.Hour)

	a := r.Create()
	b := r.Create()
	require.Equal(t, 2, r.Len())

	now = now.Add(30 * time.Minute)
	_, ok := r.Get(a.ID)
	require.True(t, ok)

	now = now.Add(45 * time.Minute)
	assert.Equal(t, 1, r.Sweep())
	_, ok = r.Get(b.ID)
	assert.False(t, ok)
	_, ok = r.Get(a.ID)
	assert.True(t, ok)

	r.Delete(a.ID)
	assert.Zero(t, r.Len())
}

func TestRegistry_AnonymousStoresAreNotTracked(t *testing.T) {
	r := NewRegistry(Deps{}, time.Hour)

	st := r.Anonymous()
	assert.Zero(t, r.Len())
	_, ok := r.Get(st.ID)
	assert.False(t, ok)

	r.Register(st)
	got, ok := r.Get(st.ID)
	require.True(t, ok)
	assert.Same(t, st, got)
	assert.Equal(t, 1, r.Len())
}
