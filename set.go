package bloom

import "strings"

// Set is a fixed-size Bloom filter over single-byte elements.
//
// The zero value is not usable; construct with New or NewWithSize. A Set is
// not safe for concurrent use; callers needing that must wrap it in their
// own lock.
type Set struct {
	m    int
	bits []byte
}

// New returns a Set with DefaultSize flags, all zero.
func New() *Set {
	s, _ := NewWithSize(DefaultSize)
	return s
}

// NewWithSize returns a Set with size flags, all zero.
//
// It returns ErrBadSize when size < 1: every hash index is undefined modulo
// zero, so the check happens once here rather than on every operation.
func NewWithSize(size int) (*Set, error) {
	if size < 1 {
		return nil, ErrBadSize
	}
	return &Set{m: size, bits: make([]byte, bitsetBytes(size))}, nil
}

// Size returns the number of flags, fixed at construction.
func (s *Set) Size() int {
	return s.m
}

// Add sets the flags at H1(element), H2(element) and H3(element).
// Flags only ever transition 0 to 1; adding again is a no-op.
func (s *Set) Add(element uint8) {
	for _, h := range Hashes {
		setBitLSB0(s.bits, h.Index(element, s.m))
	}
}

// Query reports whether element is possibly in the set.
//
// A false result is definitive: the element was never added. A true result
// may be a false positive when other insertions cover the same three flags.
func (s *Set) Query(element uint8) bool {
	for _, h := range Hashes {
		if !testBitLSB0(s.bits, h.Index(element, s.m)) {
			return false
		}
	}
	return true
}

// String renders the flags as space-separated 0/1 values in index order,
// with no trailing separator.
func (s *Set) String() string {
	var b strings.Builder
	b.Grow(2*s.m - 1)
	for i := 0; i < s.m; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		if testBitLSB0(s.bits, i) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
