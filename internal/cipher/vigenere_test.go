package cipher

import (
	"errors"
	"strings"
	"testing"

	"exam-generator/internal/domain"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	c := NewDefault()

	cases := []struct {
		plain    string
		password string
	}{
		{"Q5_P100_ABCDA", "pauta2025"},
		{"Q25_P50_DDDBBCDDDDDAABCCAADCBAADD", "pauta2025"},
		{"Q0_P100_", "k"},
		{"hello world 123", "s3cret"},
		{"___", "abc"}, // nothing in the alphabet at all
		{"mixed ñ content!", "clave año"},
	}
	for _, tc := range cases {
		enc, err := c.Encrypt(tc.plain, tc.password)
		if err != nil {
			t.Fatalf("Encrypt(%q, %q) failed: %v", tc.plain, tc.password, err)
		}
		dec, err := c.Decrypt(enc, tc.password)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}
		if dec != tc.plain {
			t.Fatalf("round trip of %q with key %q gave %q", tc.plain, tc.password, dec)
		}
	}
}

func TestEncryptKnownShift(t *testing.T) {
	c := NewDefault()

	// Key "1" shifts every alphabet character forward by one position.
	enc, err := c.Encrypt("AB_z9", "1")
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	if enc != "BC_0A" {
		t.Fatalf("expected BC_0A, got %q", enc)
	}

	// Key "0" has shift zero: ciphertext equals plaintext.
	enc, err = c.Encrypt("Q5_P100_ABCDA", "0")
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	if enc != "Q5_P100_ABCDA" {
		t.Fatalf("zero shift changed the text: %q", enc)
	}
}

func TestNonAlphabetCharactersPassThrough(t *testing.T) {
	c := NewDefault()
	plain := "Q5_P100_ABCDA"

	enc, err := c.Encrypt(plain, "pauta2025")
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	if len([]rune(enc)) != len([]rune(plain)) {
		t.Fatalf("ciphertext length %d differs from plaintext length %d", len(enc), len(plain))
	}
	for i, r := range []rune(plain) {
		if r != '_' {
			continue
		}
		if []rune(enc)[i] != '_' {
			t.Fatalf("underscore at position %d was not preserved: %q", i, enc)
		}
	}
}

func TestPassThroughDoesNotAdvanceKey(t *testing.T) {
	c := NewDefault()

	// "A_A" and "AA" must consume the same two key slots for the two As.
	withSep, err := c.Encrypt("A_A", "pw")
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	without, err := c.Encrypt("AA", "pw")
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	got := strings.ReplaceAll(withSep, "_", "")
	if got != without {
		t.Fatalf("key counter advanced over a pass-through character: %q vs %q", withSep, without)
	}
}

func TestIgnoredPasswordCharacters(t *testing.T) {
	c := NewDefault()

	// "ñ" is outside the alphabet, so "ñkey" and "key" are the same key.
	a, err := c.Encrypt("Q5_P100_ABCDA", "ñkey")
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	b, err := c.Encrypt("Q5_P100_ABCDA", "key")
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	if a != b {
		t.Fatalf("non-alphabet password characters changed the key: %q vs %q", a, b)
	}
}

func TestCipherErrors(t *testing.T) {
	c := NewDefault()

	if _, err := c.Encrypt("", "key"); !errors.Is(err, domain.ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got %v", err)
	}
	if _, err := c.Decrypt("", "key"); !errors.Is(err, domain.ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got %v", err)
	}
	if _, err := c.Encrypt("abc", ""); !errors.Is(err, domain.ErrEmptyPassword) {
		t.Fatalf("expected ErrEmptyPassword, got %v", err)
	}
	if _, err := c.Encrypt("abc", "ñ¡!"); !errors.Is(err, domain.ErrEmptyEffectiveKey) {
		t.Fatalf("expected ErrEmptyEffectiveKey, got %v", err)
	}
}
