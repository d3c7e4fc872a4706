// Package shuffle randomizes the order of answer options while keeping the
// encoded answer key consistent with what gets printed.
package shuffle

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"exam-generator/internal/domain"
)

// trueFalsePairs lists option pairs that must keep their printed order.
// "True / False" questions read wrong when the truth value comes second.
var trueFalsePairs = [][2]string{
	{"true", "false"},
	{"t", "f"},
	{"yes", "no"},
	{"verdadero", "falso"},
	{"v", "f"},
	{"sí", "no"},
	{"si", "no"},
}

// IsExempt reports whether options form a true/false style question that
// must not be reordered. The match is case-insensitive over trimmed,
// non-empty options and accepts either order.
func IsExempt(options []string) bool {
	var present []string
	for _, opt := range options {
		trimmed := strings.ToLower(strings.TrimSpace(opt))
		if trimmed != "" {
			present = append(present, trimmed)
		}
	}
	if len(present) != 2 {
		return false
	}
	for _, pair := range trueFalsePairs {
		if (present[0] == pair[0] && present[1] == pair[1]) ||
			(present[0] == pair[1] && present[1] == pair[0]) {
			return true
		}
	}
	return false
}

// Shuffle permutes the contiguous run of non-empty options in place using
// rnd and returns the new index of the option that was first (the correct
// one, by question-file convention). Empty padding slots keep their place at
// the tail. True/false questions and single-option lists are left untouched.
func Shuffle(options []string, correctIndex int, rnd *rand.Rand) (int, error) {
	if IsExempt(options) {
		return correctIndex, nil
	}

	nonEmpty := 0
	for _, opt := range options {
		if opt != "" {
			nonEmpty++
		}
	}
	if nonEmpty < 2 {
		return correctIndex, nil
	}

	before := append([]string(nil), options...)

	// Pair each real option with whether it is the designated correct one so
	// the permutation can be tracked.
	type tagged struct {
		text    string
		correct bool
	}
	run := make([]tagged, 0, nonEmpty)
	for i, opt := range options {
		if opt != "" {
			run = append(run, tagged{text: opt, correct: i == correctIndex})
		}
	}

	rnd.Shuffle(len(run), func(i, j int) {
		run[i], run[j] = run[j], run[i]
	})

	newCorrect := correctIndex
	for i, entry := range run {
		options[i] = entry.text
		if entry.correct {
			newCorrect = i
		}
	}
	for i := len(run); i < len(options); i++ {
		options[i] = ""
	}

	if err := checkIntegrity(before, options); err != nil {
		return 0, err
	}
	return newCorrect, nil
}

// checkIntegrity verifies the permutation neither lost nor duplicated any
// option string, padding included.
func checkIntegrity(before, after []string) error {
	if len(before) != len(after) {
		return fmt.Errorf("option count changed from %d to %d: %w",
			len(before), len(after), domain.ErrShuffleIntegrity)
	}
	a := append([]string(nil), before...)
	b := append([]string(nil), after...)
	sort.Strings(a)
	sort.Strings(b)
	for i := range a {
		if a[i] != b[i] {
			return fmt.Errorf("option multiset changed: %w", domain.ErrShuffleIntegrity)
		}
	}
	return nil
}
