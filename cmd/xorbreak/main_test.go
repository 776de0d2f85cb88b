package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/egor9814/xorbreak"
)

const exampleCipher = "1b3a5577431406315b77501300255e77540e17725a225f111c725f2157134f265832120d0e284977560e08"

func decodeString(s string) []byte {
	buf, _ := hex.DecodeString(s)
	return buf
}

func run(stdin []byte, args ...string) (string, string, error) {
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(bytes.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCrackWithoutPrefix(t *testing.T) {
	stdout, _, err := run(decodeString(exampleCipher))
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"cipher length: 43",
		"key length: 6",
		"possible keys at 0: 1",
		"possible keys at 1: 1",
		"possible keys at 2: 18",
		"possible keys at 3: 1",
		"possible keys at 4: 1",
		"possible keys at 5: 34",
		"partly decrypted message:",
		"th_ q_ic_ b_ow_ f_x _um_s _ve_ t_e _az_ d_g",
		"give me the beginning of the plain text as an argument, like this:",
		`  xorbreak "hello world"`,
		"",
	}, "\n")
	if stdout != want {
		t.Errorf("got\n%s\nwant\n%s", stdout, want)
	}
}

func TestCrackWithPrefix(t *testing.T) {
	stdout, _, err := run(decodeString(exampleCipher), "the quick")
	if err != nil {
		t.Fatal(err)
	}
	for _, line := range []string{
		"key: 6f5230573261\n",
		"key as string: oR0W2a\n",
		"cipher decrypted with key:\nthe quick brown fox jumps over the lazy dog\n",
	} {
		if !strings.Contains(stdout, line) {
			t.Errorf("output lacks %q:\n%s", line, stdout)
		}
	}
}

func TestCrackShortPrefix(t *testing.T) {
	stdout, _, err := run(decodeString(exampleCipher), "the")
	if !errors.Is(err, xorbreak.ErrInsufficientPrefixLength) {
		t.Fatalf("error == %v, want %v", err, xorbreak.ErrInsufficientPrefixLength)
	}
	if want := "plaintext prefix must be at least 6 bytes long (got 3)"; err.Error() != want {
		t.Errorf("error == %q, want %q", err, want)
	}
	if !strings.Contains(stdout, "partly decrypted message:") || strings.Contains(stdout, "key:") {
		t.Errorf("unexpected output:\n%s", stdout)
	}
}

func TestCrackHex(t *testing.T) {
	stdout, _, err := run([]byte("1b3a\n55\n"), "--hex", "-k", "3", "abc")
	if err != nil {
		t.Fatal(err)
	}
	for _, line := range []string{
		"cipher length: 3\n",
		"key length: 3\n",
		"key: 7a5836\n",
		"cipher decrypted with key:\nabc\n",
	} {
		if !strings.Contains(stdout, line) {
			t.Errorf("output lacks %q:\n%s", line, stdout)
		}
	}
}

func TestCrackShortCipher(t *testing.T) {
	stdout, _, err := run([]byte{0x1b, 0x3a}, "-p", "?")
	if err != nil {
		t.Fatal(err)
	}
	for pos := 2; pos < 6; pos++ {
		if line := "possible keys at " + string(rune('0'+pos)) + ": 256\n"; !strings.Contains(stdout, line) {
			t.Errorf("output lacks %q:\n%s", line, stdout)
		}
	}
	if !strings.Contains(stdout, "partly decrypted message:\n??\n") {
		t.Errorf("unexpected output:\n%s", stdout)
	}
}

func TestCrackResolvedByCandidates(t *testing.T) {
	cipher := xorbreak.Decrypt([]byte("the quick brown fox jumps over the lazy dog"), []byte{0x80})
	stdout, _, err := run(cipher, "-k", "1", "-a", "=abcdefghijklmnopqrstuvwxyz ")
	if err != nil {
		t.Fatal(err)
	}
	for _, line := range []string{
		"every key position has a single candidate\n",
		"key: 80\n",
		"cipher decrypted with key:\nthe quick brown fox jumps over the lazy dog\n",
	} {
		if !strings.Contains(stdout, line) {
			t.Errorf("output lacks %q:\n%s", line, stdout)
		}
	}
	if strings.Contains(stdout, "give me") {
		t.Errorf("output has a usage hint:\n%s", stdout)
	}
}

func TestCrackErrors(t *testing.T) {
	cases := []struct {
		stdin []byte
		args  []string
		want  error
	}{
		{nil, nil, xorbreak.ErrEmptyCipher},
		{[]byte("abc"), []string{"-k", "0"}, xorbreak.ErrInvalidKeyLength},
		{[]byte("abc"), []string{"-k", "-3"}, xorbreak.ErrInvalidKeyLength},
		{[]byte("abc"), []string{"-a", "digits"}, xorbreak.ErrUnknownAlphabet},
		{decodeString("1b3a55"), []string{"-k", "3", "abcdef"}, nil},
		{decodeString("1b3a"), []string{"-k", "3", "abcdef"}, xorbreak.ErrShortCipher},
	}
	for _, c := range cases {
		_, _, err := run(c.stdin, c.args...)
		if !errors.Is(err, c.want) {
			t.Errorf("run(%v) error == %v, want %v", c.args, err, c.want)
		}
	}
}

func TestCrackBadInput(t *testing.T) {
	for _, args := range [][]string{
		{"-x"},
		{"-p", "__"},
		{"-p", ""},
		{"a", "b"},
		{"--zstd=l=best"},
	} {
		if _, _, err := run([]byte("zz"), args...); err == nil {
			t.Errorf("run(%v) succeeded", args)
		}
	}
}

func TestEncryptThenCrack(t *testing.T) {
	const plain = "the quick brown fox jumps over the lazy dog"
	dir := t.TempDir()
	cases := []struct {
		name string
		enc  []string
		dec  []string
	}{
		{"raw", nil, nil},
		{"hex", []string{"-x"}, []string{"-x"}},
		{"zstd", []string{"-z"}, nil},
		{"zstd-hex", []string{"-x", "--zstd=l=high,t=2,m=1M"}, []string{"-x", "--zstd"}},
	}
	for _, c := range cases {
		name := filepath.Join(dir, c.name, "msg.xor")
		args := append([]string{"encrypt", "-k", "oR0W2a", "-o", name}, c.enc...)
		if _, _, err := run([]byte(plain), args...); err != nil {
			t.Fatalf("%s: encrypt: %v", c.name, err)
		}
		args = append([]string{"-f", name}, c.dec...)
		stdout, _, err := run(nil, append(args, "the qu")...)
		if err != nil {
			t.Fatalf("%s: crack: %v", c.name, err)
		}
		if !strings.Contains(stdout, "key as string: oR0W2a\n") ||
			!strings.Contains(stdout, "cipher decrypted with key:\n"+plain+"\n") {
			t.Errorf("%s: unexpected output:\n%s", c.name, stdout)
		}
	}
}

func TestEncryptStdout(t *testing.T) {
	stdout, _, err := run([]byte("abc"), "encrypt", "-x", "-k", string(decodeString("7a5836")))
	if err != nil {
		t.Fatal(err)
	}
	if stdout != "1b3a55\n" {
		t.Errorf("encrypt == %q, want %q", stdout, "1b3a55\n")
	}
}

func TestEncryptMissingKey(t *testing.T) {
	if _, _, err := run([]byte("abc"), "encrypt"); err == nil {
		t.Error("encrypt without a key succeeded")
	}
	if _, _, err := run([]byte("abc"), "encrypt", "-k", ""); !errors.Is(err, errEmptyKey) {
		t.Errorf("encrypt with empty key error == %v, want %v", err, errEmptyKey)
	}
}

func TestVerbose(t *testing.T) {
	name := filepath.Join(t.TempDir(), "cipher")
	if err := os.WriteFile(name, decodeString(exampleCipher), 0644); err != nil {
		t.Fatal(err)
	}
	_, stderr, err := run(nil, "-v", "-f", name)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr, "reading cipher "+`"`+name+`"`) {
		t.Errorf("stderr == %q", stderr)
	}
}
