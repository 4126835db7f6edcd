package bloom

// Flags are packed LSB0: bit 0 of byte 0 is index 0.

// bitsetBytes returns ceil(m/8).
func bitsetBytes(m int) int {
	return (m + 7) / 8
}

func setBitLSB0(bits []byte, i int) {
	bits[i>>3] |= 1 << uint(i&7)
}

func testBitLSB0(bits []byte, i int) bool {
	return bits[i>>3]&(1<<uint(i&7)) != 0
}
