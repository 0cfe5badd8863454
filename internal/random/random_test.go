package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSameSeedSameSequence(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.UUID(), b.UUID())
		assert.Equal(t, a.IntBetween(0, 1000), b.IntBetween(0, 1000))
		assert.Equal(t, a.FloatBetween(0, 100, 2), b.FloatBetween(0, 100, 2))
		assert.Equal(t, a.PastTime(365), b.PastTime(365))
		assert.Equal(t, a.Alphanumeric(8), b.Alphanumeric(8))
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)

	same := true
	for i := 0; i < 10; i++ {
		if a.UUID() != b.UUID() {
			same = false
		}
	}
	assert.False(t, same, "different seeds should not produce the same UUID stream")
}

func TestIntBetween(t *testing.T) {
	g := New(7)

	tests := []struct {
		name     string
		min, max int
	}{
		{"small range", 1, 5},
		{"single value", 3, 3},
		{"inverted bounds", 10, 2},
		{"zero to large", 0, 10000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				v := g.IntBetween(tt.min, tt.max)
				if tt.max <= tt.min {
					assert.Equal(t, tt.min, v)
					continue
				}
				assert.GreaterOrEqual(t, v, tt.min)
				assert.LessOrEqual(t, v, tt.max)
			}
		})
	}
}

func TestIntBetweenCoversBounds(t *testing.T) {
	g := New(11)
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		seen[g.IntBetween(1, 3)] = true
	}
	assert.True(t, seen[1], "min bound should be reachable")
	assert.True(t, seen[3], "max bound should be reachable")
}

func TestFloatBetweenRounding(t *testing.T) {
	g := New(13)
	for i := 0; i < 200; i++ {
		v := g.FloatBetween(5, 500, 2)
		assert.GreaterOrEqual(t, v, 5.0)
		assert.LessOrEqual(t, v, 500.0)
		assert.InDelta(t, v, float64(int64(v*100+0.5))/100, 1e-9, "should round to 2 decimals")
	}
}

func TestUUIDFormat(t *testing.T) {
	g := New(3)
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := g.UUID()
		require.Len(t, id, 36)
		assert.False(t, seen[id], "UUIDs should not repeat")
		seen[id] = true
	}
}

func TestTimesRelativeToEpoch(t *testing.T) {
	g := New(5)
	for i := 0; i < 100; i++ {
		past := g.PastTime(30)
		assert.False(t, past.After(epoch), "past time must not be after the epoch")
		assert.False(t, past.Before(epoch.AddDate(0, 0, -31)))

		future := g.FutureTime(30)
		assert.False(t, future.Before(epoch), "future time must not be before the epoch")
	}
}

func TestPick(t *testing.T) {
	g := New(9)
	items := []string{"a", "b", "c"}
	for i := 0; i < 100; i++ {
		assert.Contains(t, items, Pick(g, items))
	}
}
