package crc32fold

// Combine returns the checksum of a concatenation A||B given the separate
// checksums of A and B and the length of B in bytes. crc2 must have been
// started from seed 0. The identity relied on here needs the variant's
// initial value and final xor mask to be equal, which holds for both
// supported variants.
func Combine(a Algorithm, crc1, crc2 uint32, n int64) uint32 {
	if n < 0 {
		return crc1
	}
	e := a.engine()
	return polyMulMod(xpow8nMod(uint64(n), e.poly), crc1, e.poly) ^ crc2
}
