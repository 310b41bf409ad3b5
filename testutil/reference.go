package testutil

// Reference is a naive, obviously-correct boolean-slice implementation
// of the same operations dynabitvector exposes, used as a property-test
// oracle: anything the tree reports must agree with this slice.
type Reference struct {
	bits []bool
}

// NewReference creates a reference model seeded with bits.
func NewReference(bits []bool) *Reference {
	cp := make([]bool, len(bits))
	copy(cp, bits)
	return &Reference{bits: cp}
}

func (r *Reference) Len() int { return len(r.bits) }

func (r *Reference) Bits() []bool {
	out := make([]bool, len(r.bits))
	copy(out, r.bits)
	return out
}

func (r *Reference) Insert(i int, v bool) {
	r.bits = append(r.bits, false)
	copy(r.bits[i+1:], r.bits[i:])
	r.bits[i] = v
}

func (r *Reference) Delete(i int) {
	r.bits = append(r.bits[:i], r.bits[i+1:]...)
}

func (r *Reference) Access(i int) bool { return r.bits[i] }

func (r *Reference) Set(i int)   { r.bits[i] = true }
func (r *Reference) Unset(i int) { r.bits[i] = false }
func (r *Reference) Flip(i int)  { r.bits[i] = !r.bits[i] }

func (r *Reference) Rank(i int, v bool) int {
	count := 0
	for _, b := range r.bits[:i] {
		if b == v {
			count++
		}
	}
	return count
}

// Select returns the 0-indexed position of the k-th (1-indexed)
// occurrence of v, or (-1, false) if there is no such occurrence.
func (r *Reference) Select(k int, v bool) (int, bool) {
	seen := 0
	for i, b := range r.bits {
		if b == v {
			seen++
			if seen == k {
				return i, true
			}
		}
	}
	return -1, false
}

func (r *Reference) Complement() {
	for i, b := range r.bits {
		r.bits[i] = !b
	}
}
