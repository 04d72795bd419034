// package bip39 implements the bip39 mnemonic sentence codec: it
// encodes entropy into a word sequence carrying an embedded checksum,
// decodes such a sequence back to entropy with checksum verification,
// and derives seeds from a mnemonic and an optional passphrase.
//
// [BIP-39]: https://bips.dev/39/
package bip39

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strings"

	"seedwords.dev/wordlist"
)

// Mnemonic is an ordered word sequence encoding entropy plus an
// embedded checksum. Order is significant: the sentence encodes an
// index stream, not a set.
type Mnemonic []string

var (
	ErrEmptyEntropy    = errors.New("bip39: empty entropy")
	ErrEntropySize     = errors.New("bip39: entropy must be 16, 20, 24, 28 or 32 bytes")
	ErrStrength        = errors.New("bip39: strength must be 128, 160, 192, 224 or 256 bits")
	ErrInvalidChecksum = errors.New("bip39: invalid checksum")
)

// WordCountError reports a sentence whose length is not 12, 15, 18,
// 21 or 24 words.
type WordCountError int

func (e WordCountError) Error() string {
	return fmt.Sprintf("bip39: invalid mnemonic length: %d words", int(e))
}

// UnknownWordError reports a word that is not part of the word table
// a mnemonic was decoded against.
type UnknownWordError string

func (e UnknownWordError) Error() string {
	return fmt.Sprintf("bip39: unknown word: %q", string(e))
}

func (m Mnemonic) String() string {
	return strings.Join(m, " ")
}

// Generate draws fresh entropy from the system random source and
// encodes it against list.
func Generate(s Strength, list *wordlist.List) (Mnemonic, error) {
	if !s.valid() {
		return nil, ErrStrength
	}
	entropy := make([]byte, s.EntropyBytes())
	if _, err := rand.Read(entropy); err != nil {
		return nil, fmt.Errorf("bip39: entropy source: %w", err)
	}
	return Encode(entropy, list)
}

// Encode converts entropy into its mnemonic sentence over list. The
// entropy length must match one of the five strengths; the resulting
// sentence has the strength's word count.
func Encode(entropy []byte, list *wordlist.List) (Mnemonic, error) {
	if len(entropy) == 0 {
		return nil, ErrEmptyEntropy
	}
	s, err := strengthForEntropy(len(entropy))
	if err != nil {
		return nil, err
	}
	// Append the checksum bits MSB-aligned in a final byte so the
	// 11-bit groups can be cut from one contiguous buffer.
	buf := make([]byte, len(entropy)+1)
	copy(buf, entropy)
	buf[len(entropy)] = checksum(entropy) << (8 - s.checksumBits())
	m := make(Mnemonic, 0, s.WordCount())
	for _, idx := range packIndices(buf, s.WordCount()) {
		m = append(m, list.Word(int(idx)))
	}
	return m, nil
}

// Decode recovers the entropy encoded by m, interpreting the words
// against list and verifying the embedded checksum.
func Decode(m Mnemonic, list *wordlist.List) ([]byte, error) {
	s, err := StrengthForWordCount(len(m))
	if err != nil {
		return nil, err
	}
	idx := make([]uint16, len(m))
	for i, w := range m {
		j, ok := list.Index(w)
		if !ok {
			return nil, UnknownWordError(w)
		}
		idx[i] = uint16(j)
	}
	buf := unpackIndices(idx)
	entropy := buf[:s.EntropyBytes()]
	claimed := buf[s.EntropyBytes()] >> (8 - s.checksumBits())
	if claimed != checksum(entropy) {
		// Every word is valid on its own; the sentence is corrupted
		// or reordered.
		return nil, ErrInvalidChecksum
	}
	return entropy, nil
}

// Validate resolves the language of m against reg and decodes it for
// effect only, reporting the first failure.
func Validate(m Mnemonic, reg *wordlist.Registry) error {
	_, err := Decode(m, reg.Resolve(m))
	return err
}
