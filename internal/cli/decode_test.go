package cli

import (
	"bytes"
	"strings"
	"testing"

	"exam-generator/internal/app"
	"exam-generator/internal/domain"
)

func TestDecodeCommand(t *testing.T) {
	questions := []domain.Question{
		{Text: "q1", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 0},
		{Text: "q2", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 3},
	}
	encrypted, err := app.NewExamService().BuildQRPayload(questions, 20, "pauta2025")
	if err != nil {
		t.Fatalf("build payload: %v", err)
	}

	cmd := NewDecodeCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{encrypted, "--password", "pauta2025"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("decode command failed: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Questions: 2") || !strings.Contains(got, "Total points: 20") {
		t.Fatalf("unexpected output:\n%s", got)
	}
	if !strings.Contains(got, "1. A") || !strings.Contains(got, "2. D") {
		t.Fatalf("expected answer letters in output:\n%s", got)
	}
}

func TestDecodeCommandWrongPassword(t *testing.T) {
	questions := []domain.Question{
		{Text: "q1", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 1},
	}
	encrypted, err := app.NewExamService().BuildQRPayload(questions, 10, "pauta2025")
	if err != nil {
		t.Fatalf("build payload: %v", err)
	}

	cmd := NewDecodeCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{encrypted, "--password", "ñ¡"})

	err = cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "invalid password or code") {
		t.Fatalf("expected invalid password error, got %v", err)
	}
}
