// Command mnemonictool generates, inspects and validates bip39
// mnemonic sentences. It reads mnemonics or hex entropy from standard
// in.
//
// Do not use for real funds or important secrets!
package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"seedwords.dev/bip39"
	"seedwords.dev/wordlist"
)

var (
	newFlags = flag.NewFlagSet("new", flag.ExitOnError)
	newWords = newFlags.Int("words", 24, "number of words (12, 15, 18, 21 or 24)")

	seedFlags      = flag.NewFlagSet("seed", flag.ExitOnError)
	seedPassphrase = seedFlags.String("passphrase", "", "optional passphrase")
)

func main() {
	if err := run(os.Stdout, os.Stdin, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "mnemonictool: %v\n", err)
		os.Exit(2)
	}
}

func run(stdout io.Writer, stdin io.Reader, args []string) error {
	if len(args) == 0 {
		return errors.New("missing command (new, encode, entropy, check, seed)")
	}
	cmd := args[0]
	args = args[1:]
	switch cmd {
	case "new":
		if err := newFlags.Parse(args); err != nil {
			newFlags.Usage()
		}
		return generate(stdout)
	case "encode":
		return encode(stdout, stdin)
	case "entropy":
		return entropy(stdout, stdin)
	case "check":
		return check(stdout, stdin)
	case "seed":
		if err := seedFlags.Parse(args); err != nil {
			seedFlags.Usage()
		}
		return seed(stdout, stdin)
	default:
		return fmt.Errorf("unknown command: %q", cmd)
	}
}

func generate(stdout io.Writer) error {
	s, err := bip39.StrengthForWordCount(*newWords)
	if err != nil {
		return err
	}
	m, err := bip39.Generate(s, wordlist.English())
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, m)
	return nil
}

func encode(stdout io.Writer, stdin io.Reader) error {
	input, err := io.ReadAll(stdin)
	if err != nil {
		return err
	}
	ent, err := hex.DecodeString(strings.TrimSpace(string(input)))
	if err != nil {
		return fmt.Errorf("decode entropy: %w", err)
	}
	m, err := bip39.Encode(ent, wordlist.English())
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, m)
	return nil
}

func entropy(stdout io.Writer, stdin io.Reader) error {
	m, err := readMnemonic(stdin)
	if err != nil {
		return err
	}
	reg := wordlist.Default()
	ent, err := bip39.Decode(m, reg.Resolve(m))
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, hex.EncodeToString(ent))
	return nil
}

func check(stdout io.Writer, stdin io.Reader) error {
	m, err := readMnemonic(stdin)
	if err != nil {
		return err
	}
	if err := bip39.Validate(m, wordlist.Default()); err != nil {
		return err
	}
	fmt.Fprintln(stdout, "OK")
	return nil
}

func seed(stdout io.Writer, stdin io.Reader) error {
	m, err := readMnemonic(stdin)
	if err != nil {
		return err
	}
	if err := bip39.Validate(m, wordlist.Default()); err != nil {
		return err
	}
	fmt.Fprintln(stdout, hex.EncodeToString(bip39.Seed(m, *seedPassphrase)))
	return nil
}

func readMnemonic(stdin io.Reader) (bip39.Mnemonic, error) {
	input, err := io.ReadAll(stdin)
	if err != nil {
		return nil, err
	}
	words := strings.Fields(string(input))
	if len(words) == 0 {
		return nil, errors.New("empty input")
	}
	return bip39.Mnemonic(words), nil
}
