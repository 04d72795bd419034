package bip39

import (
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"
)

// SeedSize is the length of a derived seed in bytes.
const SeedSize = 64

const seedIterations = 2048

// Seed derives the 64-byte seed of m with an optional passphrase.
// The password is the words joined by single spaces; the salt is
// "mnemonic" plus the passphrase; both UTF-8, with no further
// normalization. The words are used exactly as stored in the table.
func Seed(m Mnemonic, passphrase string) []byte {
	return pbkdf2.Key([]byte(m.String()), []byte("mnemonic"+passphrase), seedIterations, SeedSize, sha512.New)
}
