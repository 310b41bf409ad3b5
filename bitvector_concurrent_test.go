package bitvector

import (
	"context"
	"testing"

	"github.com/hupe1980/dynabitvector/testutil"
	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"
)

// TestConcurrentIndependentInstances demonstrates the supported
// concurrency model: independent *BitVector instances share no state
// and may be driven concurrently, one goroutine per instance.
func TestConcurrentIndependentInstances(t *testing.T) {
	const workers = 16

	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		seed := int64(w)
		g.Go(func() error {
			rng := testutil.NewRNG(seed)
			bv := New(WithBlockSize(32))
			ref := testutil.NewReference(nil)

			for _, op := range rng.OpTrace(1000, 0) {
				switch op.Kind {
				case "insert":
					if err := bv.Insert(op.Index, op.Value); err != nil {
						return err
					}
					ref.Insert(int(op.Index), op.Value)
				case "delete":
					if err := bv.Delete(op.Index); err != nil {
						return err
					}
					ref.Delete(int(op.Index))
				case "set":
					bv.Set(op.Index)
					ref.Set(int(op.Index))
				case "unset":
					bv.Unset(op.Index)
					ref.Unset(int(op.Index))
				case "flip":
					bv.Flip(op.Index)
					ref.Flip(int(op.Index))
				}
			}

			if got, want := bv.Extract(), ref.Bits(); !equalBits(got, want) {
				return errMismatch
			}
			return nil
		})
	}

	assert.NoError(t, g.Wait())
}

func equalBits(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

var errMismatch = assertionError("bit vector diverged from reference model")

type assertionError string

func (e assertionError) Error() string { return string(e) }
