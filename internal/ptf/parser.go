// Package ptf parses the plain-text question format: each question begins
// with "- " at the start of a line, the first line is the prompt and the
// following lines (up to four) are the options, correct option first.
package ptf

import (
	"fmt"
	"math/rand"
	"os"
	"regexp"
	"strings"
	"time"

	"exam-generator/internal/domain"
	"exam-generator/internal/shuffle"
)

var blockStart = regexp.MustCompile(`(?m)^-\s+`)

// Parser reads question files, optionally shuffling the options of each
// question as it goes.
type Parser struct {
	shuffleOptions bool
	rnd            *rand.Rand
}

// NewParser returns a parser. With shuffleOptions set, every parsed question
// gets a fresh option order and its CorrectIndex updated to match.
func NewParser(shuffleOptions bool) *Parser {
	return &Parser{
		shuffleOptions: shuffleOptions,
		rnd:            rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewParserWithRand injects the RNG used for shuffling, for deterministic tests.
func NewParserWithRand(shuffleOptions bool, rnd *rand.Rand) *Parser {
	return &Parser{shuffleOptions: shuffleOptions, rnd: rnd}
}

// ParseFile reads and parses a question file.
func (p *Parser) ParseFile(path string) ([]domain.Question, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question file: %w", err)
	}
	return p.Parse(string(content))
}

// Parse parses question file content.
func (p *Parser) Parse(content string) ([]domain.Question, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("empty question content: %w", domain.ErrNoQuestions)
	}

	blocks := blockStart.Split(content, -1)
	if len(blocks) > 0 {
		// Text before the first "- " marker is not a question.
		blocks = blocks[1:]
	}
	if len(blocks) == 0 {
		return nil, domain.ErrNoQuestions
	}

	questions := make([]domain.Question, 0, len(blocks))
	for i, block := range blocks {
		question, err := p.parseBlock(block, i+1)
		if err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}
	return questions, nil
}

func (p *Parser) parseBlock(block string, number int) (domain.Question, error) {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) == 0 {
		return domain.Question{}, fmt.Errorf("question %d is empty: %w", number, domain.ErrInvalidQuestionFormat)
	}

	text := lines[0]
	options := lines[1:]
	if len(options) > domain.MaxOptions {
		options = options[:domain.MaxOptions]
	}
	if len(options) < 2 {
		return domain.Question{}, fmt.Errorf("question %d has %d options, need at least 2: %w",
			number, len(options), domain.ErrInvalidQuestionFormat)
	}
	for len(options) < domain.MaxOptions {
		options = append(options, "")
	}

	// The question file lists the correct option first.
	correct := 0
	if p.shuffleOptions {
		var err error
		correct, err = shuffle.Shuffle(options, correct, p.rnd)
		if err != nil {
			return domain.Question{}, fmt.Errorf("question %d: %w", number, err)
		}
	}

	return domain.Question{Text: text, Options: options, CorrectIndex: correct}, nil
}
