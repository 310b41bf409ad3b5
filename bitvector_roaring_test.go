package bitvector

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/dynabitvector/testutil"
	"github.com/stretchr/testify/require"
)

// oracle mirrors a bit sequence into a roaring.Bitmap, recording the
// position of every set bit. It is used as an independent cross-check for
// Rank/Access against a library that has its own, differently
// implemented popcount and rank machinery.
type oracle struct {
	bm  *roaring.Bitmap
	len uint32
}

func newOracle() *oracle {
	return &oracle{bm: roaring.New()}
}

func (o *oracle) insert(i uint32, v bool) {
	shifted := roaring.New()
	it := o.bm.Iterator()
	for it.HasNext() {
		p := it.Next()
		if p >= i {
			shifted.Add(p + 1)
		} else {
			shifted.Add(p)
		}
	}
	o.bm = shifted
	if v {
		o.bm.Add(i)
	}
	o.len++
}

func (o *oracle) delete(i uint32) {
	shifted := roaring.New()
	it := o.bm.Iterator()
	for it.HasNext() {
		p := it.Next()
		switch {
		case p == i:
			// dropped
		case p > i:
			shifted.Add(p - 1)
		default:
			shifted.Add(p)
		}
	}
	o.bm = shifted
	o.len--
}

func (o *oracle) access(i uint32) bool { return o.bm.Contains(i) }

func (o *oracle) rank(i uint32, v bool) uint32 {
	var ones uint32
	if i > 0 {
		ones = uint32(o.bm.Rank(i - 1))
	}
	if v {
		return ones
	}
	return i - ones
}

// TestRoaringOracle replays a random operation trace through both the
// tree and a roaring.Bitmap-backed oracle, asserting Access/Rank agree
// at every step.
func TestRoaringOracle(t *testing.T) {
	rng := testutil.NewRNG(99)
	bv := New(WithBlockSize(16))
	oc := newOracle()

	ops := rng.OpTrace(3000, 0)
	for _, op := range ops {
		switch op.Kind {
		case "insert":
			require.NoError(t, bv.Insert(op.Index, op.Value))
			oc.insert(op.Index, op.Value)
		case "delete":
			require.NoError(t, bv.Delete(op.Index))
			oc.delete(op.Index)
		case "access":
			require.Equal(t, oc.access(op.Index), bv.Access(op.Index))
		case "rank":
			require.Equal(t, oc.rank(op.Index, op.Value), bv.Rank(op.Index, op.Value))
		}
	}
}
