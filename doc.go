// Package bitvector provides a dynamic bit vector backed by a blocked,
// self-balancing search tree.
//
// It supports insert/delete at arbitrary positions, access/set/unset/flip,
// rank and select, all in O(log n) time against a tree whose leaves hold
// fixed-capacity packed bit blocks and whose internal nodes carry
// augmented left-subtree counters for O(log n) rank/select navigation.
// Whole-vector complement is also supported; it visits every node and
// bit, so it runs in time linear in the vector's length.
//
// # Quick Start
//
//	bv := bitvector.New()
//	bv.Insert(0, true)
//	bv.Insert(1, false)
//	bv.Access(0) // true
//	r := bv.Rank(2, true)   // bits equal to true in [0, 2)
//	p, err := bv.Select(1, true) // position of the 1st true bit
//
// Loading an existing sequence in bulk is cheaper than inserting one bit
// at a time:
//
//	bv := bitvector.NewFromBits(bits)
//
// # Block Size
//
// The tree's leaf capacity S defaults to 64 and can be tuned with
// WithBlockSize; it must be even and at least 4. Larger blocks trade
// taller leaves (more linear scanning within Select) for a shallower
// tree (fewer rotations).
//
// # Concurrency
//
// A *BitVector is not safe for concurrent use by multiple goroutines
// without external synchronization — there is no internal locking.
// Independent *BitVector instances, by contrast, share no state and are
// safe to operate on concurrently.
package bitvector
