package cipher

import (
	"fmt"

	"exam-generator/internal/domain"
)

// Cipher encrypts and decrypts answer-key payloads over an Alphabet.
// All methods are pure; a Cipher is safe for concurrent use.
type Cipher struct {
	alphabet *Alphabet
}

// New returns a Cipher over the given alphabet.
func New(alphabet *Alphabet) *Cipher {
	return &Cipher{alphabet: alphabet}
}

// NewDefault returns a Cipher over the shared 62-symbol alphabet.
func NewDefault() *Cipher {
	return New(DefaultAlphabet())
}

// KeySchedule maps the password to the index sequence that drives the
// cipher. Characters absent from the alphabet are skipped, so they add
// nothing to key strength; that matches the printed-exam format and is not a
// bug to fix.
func (c *Cipher) KeySchedule(password string) ([]int, error) {
	if password == "" {
		return nil, domain.ErrEmptyPassword
	}
	schedule := make([]int, 0, len(password))
	for _, r := range password {
		if i, ok := c.alphabet.IndexOf(r); ok {
			schedule = append(schedule, i)
		}
	}
	if len(schedule) == 0 {
		return nil, domain.ErrEmptyEffectiveKey
	}
	return schedule, nil
}

// Encrypt shifts every alphabet character of plain forward by the key
// schedule. Characters outside the alphabet are copied through unchanged and
// do not advance the key position.
func (c *Cipher) Encrypt(plain, password string) (string, error) {
	if plain == "" {
		return "", fmt.Errorf("cannot encrypt: %w", domain.ErrEmptyText)
	}
	return c.transform(plain, password, 1)
}

// Decrypt reverses Encrypt under the same password. Ciphertext is not
// authenticated: a wrong password yields garbage, not an error, and the
// payload parser is the caller's integrity check.
func (c *Cipher) Decrypt(cipherText, password string) (string, error) {
	if cipherText == "" {
		return "", fmt.Errorf("cannot decrypt: %w", domain.ErrEmptyText)
	}
	return c.transform(cipherText, password, -1)
}

func (c *Cipher) transform(text, password string, direction int) (string, error) {
	schedule, err := c.KeySchedule(password)
	if err != nil {
		return "", err
	}

	out := make([]rune, 0, len(text))
	pos := 0
	for _, r := range text {
		i, ok := c.alphabet.IndexOf(r)
		if !ok {
			out = append(out, r)
			continue
		}
		shift := schedule[pos%len(schedule)]
		out = append(out, c.alphabet.SymbolAt(i+direction*shift))
		pos++
	}
	return string(out), nil
}
