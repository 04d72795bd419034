package bip39

const wordBits = 11

// packIndices cuts the first count 11-bit groups out of buf, most
// significant bit first. Trailing bits of buf beyond count*11 are
// ignored. A too-short buf is a programmer error.
func packIndices(buf []byte, count int) []uint16 {
	if len(buf)*8 < count*wordBits {
		panic("bip39: bit buffer too short")
	}
	idx := make([]uint16, 0, count)
	var acc uint32
	nbits := 0
	for _, b := range buf {
		acc = acc<<8 | uint32(b)
		nbits += 8
		for nbits >= wordBits && len(idx) < count {
			nbits -= wordBits
			idx = append(idx, uint16(acc>>nbits&(1<<wordBits-1)))
		}
		if len(idx) == count {
			break
		}
	}
	return idx
}

// unpackIndices is the inverse of packIndices: it concatenates each
// index's 11 bits, MSB first, back into a byte stream. A trailing
// group of fewer than 8 bits is MSB-aligned in the final byte.
func unpackIndices(idx []uint16) []byte {
	buf := make([]byte, 0, (len(idx)*wordBits+7)/8)
	var acc uint32
	nbits := 0
	for _, v := range idx {
		acc = acc<<wordBits | uint32(v&(1<<wordBits-1))
		nbits += wordBits
		for nbits >= 8 {
			nbits -= 8
			buf = append(buf, byte(acc>>nbits))
		}
	}
	if nbits > 0 {
		buf = append(buf, byte(acc<<(8-nbits)))
	}
	return buf
}
