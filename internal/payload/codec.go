// Package payload converts between AnswerSummary values and the printable
// QR payload string. Encoding always targets the current delimited format;
// decoding also accepts the older packed-hex format so that exams printed by
// earlier releases can still be graded.
package payload

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"exam-generator/internal/domain"
)

// Encode renders a summary in the canonical form Q<n>_P<points>_<letters>,
// with correct indices mapped 0→A through 3→D.
func Encode(summary domain.AnswerSummary) (string, error) {
	if !summary.Valid() {
		return "", fmt.Errorf("encode: %w", domain.ErrInvalidSummary)
	}
	letters := make([]byte, len(summary.CorrectIndices))
	for i, idx := range summary.CorrectIndices {
		letters[i] = byte('A' + idx)
	}
	return fmt.Sprintf("Q%d_P%d_%s", summary.QuestionCount, summary.TotalPoints, letters), nil
}

// Parse reads a payload in either supported format. The two are told apart
// structurally: the canonical form always carries underscores, the legacy
// packed form never does.
func Parse(raw string) (domain.AnswerSummary, error) {
	if strings.Contains(raw, "_") {
		return parseCanonical(raw)
	}
	return parseLegacy(raw)
}

func parseCanonical(raw string) (domain.AnswerSummary, error) {
	parts := strings.Split(raw, "_")
	if len(parts) != 3 {
		return domain.AnswerSummary{}, fmt.Errorf("expected 3 parts, got %d: %w", len(parts), domain.ErrMalformedPayload)
	}

	count, err := parseMarkedUint(parts[0], 'Q')
	if err != nil {
		return domain.AnswerSummary{}, fmt.Errorf("%q: %w", parts[0], domain.ErrMalformedQuestionCount)
	}
	points, err := parseMarkedUint(parts[1], 'P')
	if err != nil {
		return domain.AnswerSummary{}, fmt.Errorf("%q: %w", parts[1], domain.ErrMalformedPoints)
	}

	letters := parts[2]
	if len(letters) != count {
		return domain.AnswerSummary{}, fmt.Errorf("expected %d answers, got %d: %w",
			count, len(letters), domain.ErrAnswerCountMismatch)
	}
	indices := make([]int, 0, count)
	for _, letter := range letters {
		if letter < 'A' || letter > 'D' {
			return domain.AnswerSummary{}, fmt.Errorf("%q: %w", letter, domain.ErrInvalidAnswerLetter)
		}
		indices = append(indices, int(letter-'A'))
	}

	return domain.AnswerSummary{
		QuestionCount:  count,
		TotalPoints:    points,
		CorrectIndices: indices,
	}, nil
}

// parseLegacy reads the packed form Q<n>P<points>A<hex> where every hex byte
// holds four answers, two bits each, most significant pair first.
func parseLegacy(raw string) (domain.AnswerSummary, error) {
	rest, ok := strings.CutPrefix(raw, "Q")
	if !ok {
		return domain.AnswerSummary{}, fmt.Errorf("no question marker: %w", domain.ErrMalformedPayload)
	}
	countDigits, rest, ok := strings.Cut(rest, "P")
	if !ok {
		return domain.AnswerSummary{}, fmt.Errorf("no points marker: %w", domain.ErrMalformedPayload)
	}
	pointDigits, hexRun, ok := strings.Cut(rest, "A")
	if !ok {
		return domain.AnswerSummary{}, fmt.Errorf("no answers marker: %w", domain.ErrMalformedPayload)
	}

	count, err := parseUint(countDigits)
	if err != nil {
		return domain.AnswerSummary{}, fmt.Errorf("%q: %w", countDigits, domain.ErrMalformedQuestionCount)
	}
	points, err := parseUint(pointDigits)
	if err != nil {
		return domain.AnswerSummary{}, fmt.Errorf("%q: %w", pointDigits, domain.ErrMalformedPoints)
	}

	packed, err := hex.DecodeString(hexRun)
	if err != nil {
		return domain.AnswerSummary{}, fmt.Errorf("bad answer hex %q: %w", hexRun, domain.ErrMalformedPayload)
	}
	if len(packed)*4 < count {
		return domain.AnswerSummary{}, fmt.Errorf("%d answers packed, %d declared: %w",
			len(packed)*4, count, domain.ErrAnswerCountMismatch)
	}

	indices := make([]int, 0, count)
	for _, b := range packed {
		for shift := 6; shift >= 0; shift -= 2 {
			if len(indices) == count {
				break
			}
			indices = append(indices, int(b>>shift)&0x03)
		}
	}

	return domain.AnswerSummary{
		QuestionCount:  count,
		TotalPoints:    points,
		CorrectIndices: indices,
	}, nil
}

// parseMarkedUint reads a field like "Q25": the marker followed by digits.
func parseMarkedUint(field string, marker byte) (int, error) {
	if len(field) == 0 || field[0] != marker {
		return 0, fmt.Errorf("missing %q marker", marker)
	}
	return parseUint(field[1:])
}

// parseUint accepts plain digit runs only; signs and spaces are malformed.
func parseUint(digits string) (int, error) {
	if digits == "" {
		return 0, fmt.Errorf("empty number")
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("non-digit %q", r)
		}
	}
	return strconv.Atoi(digits)
}
