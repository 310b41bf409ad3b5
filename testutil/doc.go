// Package testutil provides testing utilities for dynabitvector.
//
// This package is intended for use in tests and benchmarks only. It
// provides a seeded RNG for generating bit sequences and random
// operation traces, plus a naive boolean-slice reference model used to
// cross-check tree operations in property tests.
//
// # Random Bit Generation
//
//	rng := testutil.NewRNG(seed)
//	bits := rng.Bits(1024)        // random bit sequence
//	pos := rng.Intn(len(bits))    // random position within it
//
// # Reference Model
//
//	ref := testutil.NewReference(bits)
//	ref.Insert(3, true)
//	ref.Rank(10, true)
package testutil
