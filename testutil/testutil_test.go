package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBits(t *testing.T) {
	rng := NewRNG(4711)

	bits := rng.Bits(1000)
	assert.Equal(t, 1000, len(bits))

	var ones int
	for _, b := range bits {
		if b {
			ones++
		}
	}
	// Not a statistical test, just a sanity check that both values occur.
	assert.Greater(t, ones, 0)
	assert.Less(t, ones, 1000)
}

func TestBitsWithDensity(t *testing.T) {
	rng := NewRNG(4711)

	bits := rng.BitsWithDensity(10000, 0.1)

	var ones int
	for _, b := range bits {
		if b {
			ones++
		}
	}
	ratio := float64(ones) / float64(len(bits))
	assert.InDelta(t, 0.1, ratio, 0.03)
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	b1 := rng.Bits(100)

	rng.Reset()
	b2 := rng.Bits(100)

	assert.Equal(t, b1, b2)
}

func TestOpTrace(t *testing.T) {
	rng := NewRNG(42)

	ops := rng.OpTrace(500, 0)
	assert.Len(t, ops, 500)

	// Replay against the reference model to confirm every generated
	// index is always in bounds for the length at that point in time.
	ref := NewReference(nil)
	for _, op := range ops {
		switch op.Kind {
		case "insert":
			assert.LessOrEqual(t, int(op.Index), ref.Len())
			ref.Insert(int(op.Index), op.Value)
		case "delete":
			assert.Less(t, int(op.Index), ref.Len())
			ref.Delete(int(op.Index))
		default:
			if ref.Len() > 0 {
				assert.Less(t, int(op.Index), ref.Len()+1)
			}
		}
	}
}

func TestReference(t *testing.T) {
	ref := NewReference([]bool{true, false, true, true, false})

	assert.Equal(t, 5, ref.Len())
	assert.True(t, ref.Access(0))
	assert.Equal(t, 3, ref.Rank(5, true))

	pos, ok := ref.Select(2, true)
	assert.True(t, ok)
	assert.Equal(t, 2, pos)

	ref.Insert(0, false)
	assert.Equal(t, 6, ref.Len())
	assert.False(t, ref.Access(0))

	ref.Delete(0)
	assert.Equal(t, 5, ref.Len())

	ref.Complement()
	assert.False(t, ref.Access(0))
}
