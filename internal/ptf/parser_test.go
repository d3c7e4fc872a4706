package ptf

import (
	"errors"
	"math/rand"
	"testing"

	"exam-generator/internal/domain"
)

const sampleContent = `- What is the capital of France?
Paris
London
Madrid
Rome

- Is the sky blue?
True
False

- Pick the even number.
2
7
9
`

func TestParseWithoutShuffle(t *testing.T) {
	parser := NewParser(false)
	questions, err := parser.Parse(sampleContent)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}

	first := questions[0]
	if first.Text != "What is the capital of France?" {
		t.Fatalf("unexpected question text %q", first.Text)
	}
	want := []string{"Paris", "London", "Madrid", "Rome"}
	for i, opt := range want {
		if first.Options[i] != opt {
			t.Fatalf("option %d = %q, want %q", i, first.Options[i], opt)
		}
	}
	if first.CorrectIndex != 0 {
		t.Fatalf("correct index should stay 0 without shuffling, got %d", first.CorrectIndex)
	}
}

func TestParsePadsShortOptionLists(t *testing.T) {
	parser := NewParser(false)
	questions, err := parser.Parse(sampleContent)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	third := questions[2]
	if len(third.Options) != domain.MaxOptions {
		t.Fatalf("expected %d option slots, got %d", domain.MaxOptions, len(third.Options))
	}
	if third.Options[3] != "" {
		t.Fatalf("expected empty padding slot, got %q", third.Options[3])
	}
}

func TestParseShuffleKeepsCorrectOption(t *testing.T) {
	parser := NewParserWithRand(true, rand.New(rand.NewSource(7)))
	questions, err := parser.Parse(sampleContent)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	// Whatever the order, the tracked index must still name the option that
	// came first in the file.
	capital := questions[0]
	if capital.Options[capital.CorrectIndex] != "Paris" {
		t.Fatalf("correct index %d points at %q, want Paris", capital.CorrectIndex, capital.Options[capital.CorrectIndex])
	}
	even := questions[2]
	if even.Options[even.CorrectIndex] != "2" {
		t.Fatalf("correct index %d points at %q, want 2", even.CorrectIndex, even.Options[even.CorrectIndex])
	}
}

func TestParseShuffleExemptsTrueFalse(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		parser := NewParserWithRand(true, rand.New(rand.NewSource(seed)))
		questions, err := parser.Parse(sampleContent)
		if err != nil {
			t.Fatalf("seed %d: parse failed: %v", seed, err)
		}
		tf := questions[1]
		if tf.Options[0] != "True" || tf.Options[1] != "False" || tf.CorrectIndex != 0 {
			t.Fatalf("seed %d: true/false question was shuffled: %+v", seed, tf)
		}
	}
}

func TestParseErrors(t *testing.T) {
	parser := NewParser(false)

	if _, err := parser.Parse("   \n  "); !errors.Is(err, domain.ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}
	if _, err := parser.Parse("intro text only, no markers"); !errors.Is(err, domain.ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}
	if _, err := parser.Parse("- Lonely question?\nOnly option"); !errors.Is(err, domain.ErrInvalidQuestionFormat) {
		t.Fatalf("expected ErrInvalidQuestionFormat, got %v", err)
	}
}

func TestParseIgnoresExtraOptionLines(t *testing.T) {
	content := "- Too many options?\nA1\nA2\nA3\nA4\nA5\nA6"
	parser := NewParser(false)
	questions, err := parser.Parse(content)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(questions[0].Options) != domain.MaxOptions {
		t.Fatalf("expected %d options, got %d", domain.MaxOptions, len(questions[0].Options))
	}
	if questions[0].Options[3] != "A4" {
		t.Fatalf("expected A4 as last option, got %q", questions[0].Options[3])
	}
}
