package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"seedwords.dev/bip39"
	"seedwords.dev/wordlist"
)

const (
	zeroEntropy  = "00000000000000000000000000000000"
	zeroMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	zeroSeed     = "c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04"
)

func TestNew(t *testing.T) {
	for _, n := range []int{12, 15, 18, 21, 24} {
		out := string(bytes.TrimSpace(exec(t, nil, "new -words %d", n)))
		m := bip39.Mnemonic(strings.Fields(out))
		if len(m) != n {
			t.Errorf("new -words %d produced %d words", n, len(m))
		}
		if err := bip39.Validate(m, wordlist.Default()); err != nil {
			t.Errorf("new -words %d produced invalid mnemonic: %v", n, err)
		}
	}
	var stdout bytes.Buffer
	if err := run(&stdout, nil, []string{"new", "-words", "13"}); err == nil {
		t.Error("new -words 13 succeeded")
	}
}

func TestEncode(t *testing.T) {
	out := string(bytes.TrimSpace(exec(t, []byte(zeroEntropy), "encode")))
	if out != zeroMnemonic {
		t.Errorf("encode returned %q, want %q", out, zeroMnemonic)
	}
}

func TestEntropy(t *testing.T) {
	out := string(bytes.TrimSpace(exec(t, []byte(zeroMnemonic), "entropy")))
	if out != zeroEntropy {
		t.Errorf("entropy returned %s, want %s", out, zeroEntropy)
	}
}

func TestCheck(t *testing.T) {
	out := string(bytes.TrimSpace(exec(t, []byte(zeroMnemonic), "check")))
	if out != "OK" {
		t.Errorf("check returned %q, want OK", out)
	}
	var stdout bytes.Buffer
	bad := strings.Replace(zeroMnemonic, "about", "abandon", 1)
	if err := run(&stdout, strings.NewReader(bad), []string{"check"}); err == nil {
		t.Error("check accepted a mnemonic with a bad checksum")
	}
}

func TestSeed(t *testing.T) {
	out := string(bytes.TrimSpace(exec(t, []byte(zeroMnemonic), "seed -passphrase TREZOR")))
	if out != zeroSeed {
		t.Errorf("seed returned %s, want %s", out, zeroSeed)
	}
}

func exec(t *testing.T, stdin []byte, format string, args ...any) []byte {
	t.Helper()
	cmd := fmt.Sprintf(format, args...)
	var stdout bytes.Buffer
	if err := run(&stdout, bytes.NewReader(stdin), strings.Split(cmd, " ")); err != nil {
		t.Fatalf("%q failed: %v", cmd, err)
	}
	return stdout.Bytes()
}
