package domain

// MaxOptions is the number of option slots every question carries. Questions
// with fewer real options are padded with empty strings.
const MaxOptions = 4

// Question models an MCQ question. The question file always lists the
// correct option first; after shuffling, CorrectIndex tracks where it ended
// up within the option slots.
type Question struct {
	Text         string
	Options      []string // length MaxOptions, trailing slots may be ""
	CorrectIndex int      // 0..MaxOptions-1
}

// AnswerSummary is the semantic content of the QR payload: how many
// questions, how many points, and which option is correct for each question.
type AnswerSummary struct {
	QuestionCount  int
	TotalPoints    int
	CorrectIndices []int // length QuestionCount, each in 0..3
}

// Valid reports whether the summary satisfies the payload contract.
func (s AnswerSummary) Valid() bool {
	if s.QuestionCount < 0 || s.TotalPoints < 0 {
		return false
	}
	if len(s.CorrectIndices) != s.QuestionCount {
		return false
	}
	for _, idx := range s.CorrectIndices {
		if idx < 0 || idx >= MaxOptions {
			return false
		}
	}
	return true
}

// Summarize collapses a shuffled question list into the AnswerSummary that
// the payload codec encodes.
func Summarize(questions []Question, totalPoints int) AnswerSummary {
	indices := make([]int, len(questions))
	for i, q := range questions {
		indices[i] = q.CorrectIndex
	}
	return AnswerSummary{
		QuestionCount:  len(questions),
		TotalPoints:    totalPoints,
		CorrectIndices: indices,
	}
}
