package bitvector

import (
	"context"

	"github.com/hupe1980/dynabitvector/internal/bvtree"
)

// NotFound is the sentinel position returned by Select when there is no
// k-th occurrence of the requested bit value.
const NotFound = bvtree.NotFound

// BitVector is a dynamic bit vector backed by a blocked, self-balancing
// search tree. See the package doc for an overview.
//
// A *BitVector is not safe for concurrent use without external
// synchronization.
type BitVector struct {
	tree    *bvtree.Tree
	logger  *Logger
	metrics MetricsCollector
}

// New creates an empty BitVector.
func New(opts ...Option) *BitVector {
	o := applyOptions(opts)
	bv := &BitVector{
		tree:    bvtree.NewTree(o.blockSize),
		logger:  o.logger.WithBlockSize(o.blockSize),
		metrics: o.metricsCollector,
	}
	bv.tree.SetObserver(bv)
	return bv
}

// NewFromBits builds a BitVector over an existing bit sequence in one
// balanced construction pass, which is considerably cheaper than
// inserting each bit individually.
func NewFromBits(bits []bool, opts ...Option) *BitVector {
	o := applyOptions(opts)
	bv := &BitVector{
		tree:    bvtree.NewTreeFromBits(bits, o.blockSize),
		logger:  o.logger.WithBlockSize(o.blockSize),
		metrics: o.metricsCollector,
	}
	bv.tree.SetObserver(bv)
	return bv
}

// --- bvtree.Observer bridge --------------------------------------------

func (bv *BitVector) OnSplit() {
	bv.metrics.RecordSplit()
	bv.logger.LogSplit(context.Background())
}

func (bv *BitVector) OnMerge() {
	bv.metrics.RecordMerge()
	bv.logger.LogMerge(context.Background())
}

func (bv *BitVector) OnSteal() {
	bv.metrics.RecordSteal()
	bv.logger.LogSteal(context.Background())
}

func (bv *BitVector) OnRotate() {
	bv.metrics.RecordRotation()
	bv.logger.LogRotate(context.Background())
}

// --- public operations ---------------------------------------------------

// Size returns the number of bits currently stored.
func (bv *BitVector) Size() uint32 {
	return bv.tree.Size()
}

// Insert adds value as the new bit at logical position i, shifting
// everything at or after i one place later. i == Size() appends.
func (bv *BitVector) Insert(i uint32, value bool) error {
	err := bv.tree.Insert(i, value)
	if err != nil {
		bv.metrics.RecordRejectedOp("insert")
		bv.logger.LogOutOfRange(context.Background(), "insert", i, bv.tree.Size())
	}
	return translateError(err, i, bv.tree.Size())
}

// Delete removes the bit at logical position i, shifting everything
// after it one place earlier.
func (bv *BitVector) Delete(i uint32) error {
	err := bv.tree.Delete(i)
	if err != nil {
		bv.metrics.RecordRejectedOp("delete")
		bv.logger.LogOutOfRange(context.Background(), "delete", i, bv.tree.Size())
	}
	return translateError(err, i, bv.tree.Size())
}

// Access reports the bit stored at logical position i. An out-of-range
// i is logged at warn level and reported as false rather than
// returning an error, since Access has no natural zero-allocation error
// path in call sites that just want a boolean.
func (bv *BitVector) Access(i uint32) bool {
	v, err := bv.tree.Access(i)
	if err != nil {
		bv.logger.LogOutOfRange(context.Background(), "access", i, bv.tree.Size())
		return false
	}
	return v
}

// At is an alias for Access.
func (bv *BitVector) At(i uint32) bool {
	return bv.Access(i)
}

// Set forces the bit at i to 1. Out-of-range i is a no-op, logged at
// warn level.
func (bv *BitVector) Set(i uint32) {
	if err := bv.tree.Set(i); err != nil {
		bv.logger.LogOutOfRange(context.Background(), "set", i, bv.tree.Size())
	}
}

// Unset forces the bit at i to 0. Out-of-range i is a no-op, logged at
// warn level.
func (bv *BitVector) Unset(i uint32) {
	if err := bv.tree.Unset(i); err != nil {
		bv.logger.LogOutOfRange(context.Background(), "unset", i, bv.tree.Size())
	}
}

// Flip inverts the bit at i. Out-of-range i is a no-op, logged at warn
// level.
func (bv *BitVector) Flip(i uint32) {
	if err := bv.tree.Flip(i); err != nil {
		bv.logger.LogOutOfRange(context.Background(), "flip", i, bv.tree.Size())
	}
}

// Rank counts how many bits equal to value occur in [0, i).
func (bv *BitVector) Rank(i uint32, value bool) uint32 {
	return bv.tree.Rank(i, value)
}

// Select returns the 0-indexed position of the k-th (1-indexed) bit
// equal to value. If there is no such bit, it returns (NotFound, ErrSelectOutOfRange).
func (bv *BitVector) Select(k uint32, value bool) (uint32, error) {
	pos, err := bv.tree.Select(k, value)
	if err != nil {
		return NotFound, translateError(err, k, bv.tree.Size())
	}
	return pos, nil
}

// Complement flips every bit in the vector.
func (bv *BitVector) Complement() {
	bv.tree.Complement()
}

// Extract materializes the whole bit sequence in order.
func (bv *BitVector) Extract() []bool {
	return bv.tree.Extract()
}
