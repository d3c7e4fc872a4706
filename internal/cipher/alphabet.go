// Package cipher implements the Vigenère-style substitution cipher that
// protects the printed answer key. It is deliberately weak: a fixed 62-symbol
// alphabet, a key period bounded by the password length, and no
// authentication. The grader-facing payload format is the de facto integrity
// check, so this behavior must stay put for compatibility with printed exams.
package cipher

import "fmt"

// alphabetSymbols matches the historical ordering: digits, then uppercase,
// then lowercase. Its length (62) is the modulus for all cipher arithmetic.
const alphabetSymbols = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Alphabet is an immutable ordered set of distinct symbols with index lookup.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// NewAlphabet builds an Alphabet from the given symbols. It fails if any
// symbol repeats.
func NewAlphabet(symbols string) (*Alphabet, error) {
	runes := []rune(symbols)
	index := make(map[rune]int, len(runes))
	for i, r := range runes {
		if _, dup := index[r]; dup {
			return nil, fmt.Errorf("duplicate symbol %q at position %d", r, i)
		}
		index[r] = i
	}
	return &Alphabet{symbols: runes, index: index}, nil
}

var defaultAlphabet = mustAlphabet(alphabetSymbols)

func mustAlphabet(symbols string) *Alphabet {
	a, err := NewAlphabet(symbols)
	if err != nil {
		panic(err)
	}
	return a
}

// DefaultAlphabet returns the process-lifetime alphabet shared by every
// payload. It must never be mutated.
func DefaultAlphabet() *Alphabet {
	return defaultAlphabet
}

// Len returns the number of symbols.
func (a *Alphabet) Len() int {
	return len(a.symbols)
}

// IndexOf returns the position of r, or false if r is not in the alphabet.
func (a *Alphabet) IndexOf(r rune) (int, bool) {
	i, ok := a.index[r]
	return i, ok
}

// SymbolAt returns the symbol at position i, taken modulo the alphabet size
// with a non-negative remainder.
func (a *Alphabet) SymbolAt(i int) rune {
	n := len(a.symbols)
	i = ((i % n) + n) % n
	return a.symbols[i]
}
