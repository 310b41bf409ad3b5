package bitvector

import (
	"errors"
	"fmt"

	"github.com/hupe1980/dynabitvector/internal/bvtree"
)

var (
	// ErrSelectOutOfRange is returned by Select when there is no k-th
	// occurrence of the requested bit value in the vector.
	ErrSelectOutOfRange = errors.New("bitvector: select out of range")
)

// ErrIndexOutOfRange indicates an Insert or Delete position outside the
// valid range for that operation.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrIndexOutOfRange struct {
	Index uint32
	Size  uint32
	cause error
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("bitvector: index %d out of range for size %d", e.Index, e.Size)
}

func (e *ErrIndexOutOfRange) Unwrap() error { return e.cause }

// translateError maps internal/bvtree's sentinel errors onto the public
// typed errors above, attaching the context (index, size) callers need
// without leaking the internal package's error values.
func translateError(err error, index, size uint32) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, bvtree.ErrOutOfRange) {
		return &ErrIndexOutOfRange{Index: index, Size: size, cause: err}
	}
	if errors.Is(err, bvtree.ErrSelectOutOfRange) {
		return fmt.Errorf("%w: %w", ErrSelectOutOfRange, err)
	}
	return err
}
