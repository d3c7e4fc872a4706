// Package pdf renders student exams and answer keys. Layout mirrors the
// printed format graders already know: header with logo, QR code and grade
// box, instructions, a bubble answer sheet, then the numbered questions.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"exam-generator/internal/config"
	"exam-generator/internal/domain"
	"exam-generator/internal/i18n"
)

const (
	pageMargin = 18.0 // mm
	logoSize   = 16.0
	qrSize     = 16.0
	gradeBoxW  = 20.0
	gradeBoxH  = 18.0
	bubbleR    = 2.2
)

// Builder renders exam PDFs for one configuration.
type Builder struct {
	cfg    config.Config
	labels i18n.Strings
}

// NewBuilder returns a Builder for cfg.
func NewBuilder(cfg config.Config) *Builder {
	return &Builder{cfg: cfg, labels: i18n.Get(cfg.Lang())}
}

// RenderStudentExam writes the student-facing exam to path. qrData is the
// encrypted answer payload embedded as a QR code.
func (b *Builder) RenderStudentExam(path string, questions []domain.Question, qrData string) error {
	return b.render(path, questions, qrData, false)
}

// RenderAnswerKey writes the grader copy: same layout with correct options
// marked, and the document itself protected with the exam password.
func (b *Builder) RenderAnswerKey(path string, questions []domain.Question, qrData string) error {
	return b.render(path, questions, qrData, true)
}

func (b *Builder) render(path string, questions []domain.Question, qrData string, answerKey bool) error {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	if answerKey && b.cfg.Password != "" {
		pdf.SetProtection(fpdf.CnProtectPrint, b.cfg.Password, "")
	}
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	if err := b.drawHeader(pdf, tr, qrData); err != nil {
		return err
	}
	b.drawInfoLines(pdf, tr, answerKey)
	b.drawInstructions(pdf, tr)
	b.drawAnswerSheet(pdf, tr, questions, answerKey)
	b.drawQuestions(pdf, tr, questions, answerKey)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (b *Builder) drawHeader(pdf *fpdf.Fpdf, tr func(string) string, qrData string) error {
	pageW, _ := pdf.GetPageSize()

	if b.cfg.LogoPath != "" {
		// A broken logo should not block exam generation.
		if logo, err := grayscalePNG(b.cfg.LogoPath); err == nil {
			opts := fpdf.ImageOptions{ImageType: "PNG"}
			pdf.RegisterImageOptionsReader("logo", opts, bytes.NewReader(logo))
			pdf.ImageOptions("logo", pageMargin, pageMargin, logoSize, logoSize, false, opts, 0, "")
		}
	}

	qr, err := qrPNG(qrData)
	if err != nil {
		return fmt.Errorf("render qr: %w", err)
	}
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", opts, bytes.NewReader(qr))
	pdf.ImageOptions("qr", pageMargin+logoSize+4, pageMargin, qrSize, qrSize, false, opts, 0, "")

	boxX := pageW - pageMargin - gradeBoxW
	pdf.Rect(boxX, pageMargin, gradeBoxW, gradeBoxH, "D")
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetXY(boxX, pageMargin+gradeBoxH-4)
	pdf.CellFormat(gradeBoxW, 4, tr(b.labels.GradeLabel), "", 0, "C", false, 0, "")

	pdf.SetY(pageMargin)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 6, tr(b.cfg.Institute), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 5, tr(b.cfg.Course), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, tr(b.cfg.Period), "", 1, "C", false, 0, "")

	if y := pageMargin + gradeBoxH + 3; pdf.GetY() < y {
		pdf.SetY(y)
	}
	return nil
}

func (b *Builder) drawInfoLines(pdf *fpdf.Fpdf, tr func(string) string, answerKey bool) {
	labels := b.labels
	pdf.SetFont("Helvetica", "", 10)

	student := labels.StudentBlank
	if answerKey {
		student = fmt.Sprintf("%s: %s", labels.StudentLabel, labels.AnswerKeyBanner)
	} else if b.cfg.Student != "" {
		student = fmt.Sprintf("%s: %s", labels.StudentLabel, b.cfg.Student)
	}
	pdf.CellFormat(0, 5, tr(student), "", 1, "L", false, 0, "")

	pdf.CellFormat(0, 5, tr(fmt.Sprintf("%s: %s    %s: %s",
		labels.ClassLabel, b.cfg.Class, labels.ProfessorLabel, b.cfg.Professor)),
		"", 1, "L", false, 0, "")

	section := labels.CourseBlank
	if b.cfg.Section != "" {
		section = fmt.Sprintf("%s: %s", labels.CourseLabel, b.cfg.Section)
	}
	value := fmt.Sprintf("%s: %d %s", labels.ValueLabel, b.cfg.TotalPoints, labels.PointsSuffix)
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("%s    %s    %s    %s",
		section, labels.DateBlank, labels.ListBlank, value)),
		"", 1, "L", false, 0, "")
}

func (b *Builder) drawInstructions(pdf *fpdf.Fpdf, tr func(string) string) {
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(0, 5, tr(b.labels.InstructionsTitle), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(0, 4, tr(b.labels.InstructionsText), "1", "L", false)
}

func (b *Builder) drawAnswerSheet(pdf *fpdf.Fpdf, tr func(string) string, questions []domain.Question, answerKey bool) {
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, tr(b.labels.AnswerSheetTitle), "", 1, "C", false, 0, "")

	left, _, right, _ := pdf.GetMargins()
	pageW, _ := pdf.GetPageSize()
	contentW := pageW - left - right
	const perRow = 5
	const rowH = 9.0
	groupW := contentW / perRow

	pdf.SetFillColor(0, 0, 0)
	y := pdf.GetY() + 2
	for i, q := range questions {
		col := i % perRow
		if col == 0 && i > 0 {
			y += rowH
		}
		x := left + float64(col)*groupW

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetXY(x, y)
		pdf.CellFormat(8, 2*bubbleR, fmt.Sprintf("%d.", i+1), "", 0, "R", false, 0, "")

		cx := x + 11
		for opt, text := range q.Options {
			if text == "" {
				continue
			}
			cy := y + bubbleR
			marked := answerKey && opt == q.CorrectIndex
			style := "D"
			if marked {
				style = "FD"
			}
			pdf.Circle(cx, cy, bubbleR, style)

			pdf.SetFont("Helvetica", "", 6)
			if marked {
				pdf.SetTextColor(255, 255, 255)
			}
			pdf.SetXY(cx-bubbleR, cy-1.5)
			pdf.CellFormat(2*bubbleR, 3, string(rune('A'+opt)), "", 0, "C", false, 0, "")
			pdf.SetTextColor(0, 0, 0)

			cx += 2*bubbleR + 2
		}
	}
	pdf.SetY(y + rowH + 2)
}

func (b *Builder) drawQuestions(pdf *fpdf.Fpdf, tr func(string) string, questions []domain.Question, answerKey bool) {
	for i, q := range questions {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.MultiCell(0, 5, tr(fmt.Sprintf("%d. %s", i+1, q.Text)), "", "L", false)
		for j, opt := range q.Options {
			if opt == "" {
				continue
			}
			style := ""
			if answerKey && j == q.CorrectIndex {
				style = "B"
			}
			pdf.SetFont("Helvetica", style, 10)
			pdf.MultiCell(0, 4.5, tr(fmt.Sprintf("   %c) %s", 'A'+j, opt)), "", "L", false)
		}
		pdf.Ln(1.5)
	}
}
