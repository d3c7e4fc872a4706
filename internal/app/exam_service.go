// Package app wires the answer-key pipeline together: shuffled questions in,
// encrypted QR payload and rendered PDFs out, and the reverse path for
// graders scanning a printed exam.
package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"exam-generator/internal/cipher"
	"exam-generator/internal/config"
	"exam-generator/internal/domain"
	"exam-generator/internal/payload"
	"exam-generator/internal/pdf"
)

// ExamService contains the exam generation and answer recovery use cases.
type ExamService struct {
	cipher *cipher.Cipher
}

// NewExamService returns a service over the shared cipher alphabet.
func NewExamService() *ExamService {
	return &ExamService{cipher: cipher.NewDefault()}
}

// BuildQRPayload collapses the shuffled questions into an answer summary,
// encodes it, and encrypts it with password. The result is what the QR
// renderer embeds in the page header.
func (s *ExamService) BuildQRPayload(questions []domain.Question, totalPoints int, password string) (string, error) {
	summary := domain.Summarize(questions, totalPoints)
	encoded, err := payload.Encode(summary)
	if err != nil {
		return "", err
	}
	return s.cipher.Encrypt(encoded, password)
}

// DecodeQRPayload recovers the answer summary from a scanned payload. The
// payload is not authenticated, so a wrong password surfaces as a parse
// failure; callers should report those as "invalid password or code".
func (s *ExamService) DecodeQRPayload(cipherText, password string) (domain.AnswerSummary, error) {
	plain, err := s.cipher.Decrypt(cipherText, password)
	if err != nil {
		return domain.AnswerSummary{}, err
	}
	return payload.Parse(plain)
}

// Generate renders the student exam and, when keyPath is non-empty, the
// protected answer key. Both documents share one QR payload so the same
// scan grades either copy.
func (s *ExamService) Generate(ctx context.Context, cfg config.Config, questions []domain.Question, studentPath, keyPath string) error {
	if len(questions) == 0 {
		return domain.ErrNoQuestions
	}
	qrData, err := s.BuildQRPayload(questions, cfg.TotalPoints, cfg.Password)
	if err != nil {
		return fmt.Errorf("build qr payload: %w", err)
	}

	builder := pdf.NewBuilder(cfg)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		return builder.RenderStudentExam(studentPath, questions, qrData)
	})
	if keyPath != "" {
		g.Go(func() error {
			return builder.RenderAnswerKey(keyPath, questions, qrData)
		})
	}
	return g.Wait()
}
