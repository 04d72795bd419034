package bip39

// Strength is the entropy size of a mnemonic, in bits.
type Strength int

const (
	Strength128 Strength = 128
	Strength160 Strength = 160
	Strength192 Strength = 192
	Strength224 Strength = 224
	Strength256 Strength = 256

	DefaultStrength = Strength128
)

func (s Strength) valid() bool {
	switch s {
	case Strength128, Strength160, Strength192, Strength224, Strength256:
		return true
	}
	return false
}

// EntropyBytes is the raw entropy size in bytes.
func (s Strength) EntropyBytes() int { return int(s) / 8 }

// checksumBits is the number of checksum bits appended to the
// entropy, 4 through 8. The total bit count is always divisible by
// wordBits.
func (s Strength) checksumBits() int { return int(s) / 32 }

// WordCount is the sentence length for this strength: 12, 15, 18, 21
// or 24 words.
func (s Strength) WordCount() int { return int(s) / 32 * 3 }

// StrengthForWordCount maps a sentence length back to its strength.
// The mapping is bijective over the five supported lengths.
func StrengthForWordCount(n int) (Strength, error) {
	if n%3 == 0 {
		if s := Strength(n / 3 * 32); s.valid() {
			return s, nil
		}
	}
	return 0, WordCountError(n)
}

func strengthForEntropy(n int) (Strength, error) {
	s := Strength(n * 8)
	if !s.valid() {
		return 0, ErrEntropySize
	}
	return s, nil
}
