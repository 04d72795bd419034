package bip39

import "crypto/sha256"

// checksum returns the first len(entropy)/4 bits of the entropy's
// SHA-256 digest, right-aligned. The checksum never exceeds 8 bits
// across the supported strengths, so it always fits in the first
// digest byte.
func checksum(entropy []byte) byte {
	if len(entropy)/4 > 8 {
		panic("bip39: entropy too long")
	}
	sum := sha256.Sum256(entropy)
	return sum[0] >> (8 - len(entropy)/4)
}
