package bloom

import "fmt"

// Index derives the bit index for element in a bit array of m flags.
//
// The result is always in [0, m). The caller must guarantee m >= 1.
// Arithmetic widens element to int first, so the largest pre-reduction
// value (8*255) cannot overflow.
func (h Hash) Index(element uint8, m int) int {
	x := int(element)
	switch h {
	case H1:
		return x % m
	case H2:
		return (2*x + 3) % m
	case H3:
		return (8 * x) % m
	}
	panic(fmt.Sprintf("bloom: unknown hash variant %d", uint8(h)))
}

// String returns the canonical formula for the variant.
func (h Hash) String() string {
	switch h {
	case H1:
		return "H1(x mod M)"
	case H2:
		return "H2(2x + 3 mod M)"
	case H3:
		return "H3(8x mod M)"
	}
	return fmt.Sprintf("Hash(%d)", uint8(h))
}
