package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTripAndDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	type row struct {
		Name string `json:"name"`
	}

	require.NoError(t, m.SetJSON(ctx, "k", []row{{Name: "riyadh"}}, time.Minute))

	var got []row
	hit, err := m.GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []row{{Name: "riyadh"}}, got)

	require.NoError(t, m.Delete(ctx, "k"))
	hit, err = m.GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMemory()
	m.now = func() time.Time { return now }

	require.NoError(t, m.SetJSON(ctx, "k", 1, time.Minute))

	now = now.Add(2 * time.Minute)
	var v int
	hit, err := m.GetJSON(ctx, "k", &v)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestNopAlwaysMisses(t *testing.T) {
	ctx := context.Background()
	var n Nop
	require.NoError(t, n.SetJSON(ctx, "k", 1, time.Minute))
	var v int
	hit, err := n.GetJSON(ctx, "k", &v)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestFallbackIsNopUnlessLocalRequested(t *testing.T) {
	ctx := context.Background()

	shared := Fallback(false)
	assert.IsType(t, Nop{}, shared)
	require.NoError(t, shared.SetJSON(ctx, "k", "v", time.Minute))
	var got string
	hit, err := shared.GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, hit)

	assert.IsType(t, &Memory{}, Fallback(true))
}
