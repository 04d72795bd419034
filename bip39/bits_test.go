package bip39

import (
	"bytes"
	"crypto/rand"
	"testing"
)

func TestPackIndices(t *testing.T) {
	// 0x80 0x40 0x20 is the bit stream 10000000 01000000 00100000;
	// its first two 11-bit groups are 10000000010 and 00000001000.
	got := packIndices([]byte{0x80, 0x40, 0x20}, 2)
	want := []uint16{0x402, 0x008}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("packIndices = %v, want %v", got, want)
	}
}

func TestUnpackAlignsTrailingBits(t *testing.T) {
	// A single index occupies 11 bits: one byte plus the top 3 bits
	// of the next.
	got := unpackIndices([]uint16{0x7ff})
	if !bytes.Equal(got, []byte{0xff, 0xe0}) {
		t.Errorf("unpackIndices = %x, want ffe0", got)
	}
}

func TestBitsRoundTrip(t *testing.T) {
	for _, s := range []Strength{Strength128, Strength160, Strength192, Strength224, Strength256} {
		for i := 0; i < 50; i++ {
			buf := make([]byte, s.EntropyBytes()+1)
			if _, err := rand.Read(buf); err != nil {
				t.Fatal(err)
			}
			// Zero the bits beyond the encoded range so the round
			// trip is exact.
			total := s.WordCount() * wordBits
			if rem := total % 8; rem != 0 {
				buf[len(buf)-1] &= 0xff << (8 - rem)
			}
			idx := packIndices(buf, s.WordCount())
			if got := unpackIndices(idx); !bytes.Equal(got, buf) {
				t.Fatalf("%d-bit bit stream changed: got %x, want %x", s, got, buf)
			}
			for _, v := range idx {
				if v > 2047 {
					t.Fatalf("index %d out of range", v)
				}
			}
		}
	}
}
