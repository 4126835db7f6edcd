package bloom

/*

# Toy Bloom filter (3-hash, fixed size)

This package provides a deliberately small Bloom filter over single-byte
elements, built from:

- a fixed set of three deterministic hash functions
- one fixed-size bit array owned by the Set

## What Bloom filters are (and are not)

Bloom filters provide a *probabilistic membership test*:

- If the filter says "not present", then the element was never added.
- If the filter says "present", then the element may or may not have been
  added (false positives are possible).

Added elements cannot be removed, and the bit array cannot be resized. The
more elements added, the higher the false positive rate.

## Hash functions

The three functions are fixed and pure. For an element x and a bit array of
M flags:

	H1(x) = x mod M
	H2(x) = (2x + 3) mod M
	H3(x) = 8x mod M

Add sets the three hashed flags; Query reports whether all three are set.

## Indexing and bit numbering

Flags are packed LSB0: flag i lives at bit (i mod 8) of byte (i / 8), with
bit 0 the least-significant bit of byte 0. The packing is internal; Set.String
renders one 0/1 value per flag in index order.

*/
