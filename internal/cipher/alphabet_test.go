package cipher

import "testing"

func TestNewAlphabetRejectsDuplicates(t *testing.T) {
	if _, err := NewAlphabet("abcda"); err == nil {
		t.Fatal("expected error for duplicate symbol")
	}
}

func TestDefaultAlphabetOrdering(t *testing.T) {
	a := DefaultAlphabet()
	if a.Len() != 62 {
		t.Fatalf("expected 62 symbols, got %d", a.Len())
	}

	checks := []struct {
		r    rune
		want int
	}{
		{'0', 0},
		{'9', 9},
		{'A', 10},
		{'Z', 35},
		{'a', 36},
		{'z', 61},
	}
	for _, c := range checks {
		got, ok := a.IndexOf(c.r)
		if !ok || got != c.want {
			t.Fatalf("IndexOf(%q) = %d, %v; want %d", c.r, got, ok, c.want)
		}
	}

	if _, ok := a.IndexOf('_'); ok {
		t.Fatal("underscore must not be in the alphabet")
	}
}

func TestSymbolAtWrapsNonNegative(t *testing.T) {
	a := DefaultAlphabet()
	if r := a.SymbolAt(62); r != '0' {
		t.Fatalf("SymbolAt(62) = %q, want '0'", r)
	}
	if r := a.SymbolAt(-1); r != 'z' {
		t.Fatalf("SymbolAt(-1) = %q, want 'z'", r)
	}
	if r := a.SymbolAt(-62); r != '0' {
		t.Fatalf("SymbolAt(-62) = %q, want '0'", r)
	}
}
