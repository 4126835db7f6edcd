package bloom

import "errors"

// DefaultSize is the bit array size used by New.
const DefaultSize = 256

var (
	ErrBadSize = errors.New("bloom: size must be at least 1")
)

// Hash enumerates the three fixed hash functions. Each variant is a pure
// mapping from an element and a bit array size to an index.
type Hash uint8

const (
	H1 Hash = iota
	H2
	H3
)

// Hashes lists the variants in the order Add and Query apply them.
var Hashes = [3]Hash{H1, H2, H3}
