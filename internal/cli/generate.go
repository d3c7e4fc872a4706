package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"exam-generator/internal/app"
	"exam-generator/internal/config"
	"exam-generator/internal/domain"
	"exam-generator/internal/ptf"
)

const (
	defaultMaxQuestions = 25
	maxQuestionsLimit   = 50
)

// NewGenerateCmd builds the subcommand that renders exam PDFs.
func NewGenerateCmd(configPath *string) *cobra.Command {
	var (
		inputPath    string
		outputPath   string
		keyPath      string
		shuffle      bool
		maxQuestions int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the student exam and optionally the answer key PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), *configPath, inputPath, outputPath, keyPath, shuffle, maxQuestions)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "question file in .ptf format (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "exam.pdf", "student exam output path")
	cmd.Flags().StringVarP(&keyPath, "answer-key", "k", "", "answer key output path (omit to skip)")
	cmd.Flags().BoolVar(&shuffle, "shuffle", true, "shuffle answer options")
	cmd.Flags().IntVar(&maxQuestions, "max-questions", defaultMaxQuestions, "maximum questions to include")
	cmd.MarkFlagRequired("input")
	return cmd
}

func runGenerate(ctx context.Context, configPath, inputPath, outputPath, keyPath string, shuffle bool, maxQuestions int) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config %s: %w", configPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	questions, err := ptf.NewParser(shuffle).ParseFile(inputPath)
	if err != nil {
		return err
	}
	questions = clampQuestions(questions, maxQuestions)

	service := app.NewExamService()
	if err := service.Generate(ctx, cfg, questions, outputPath, keyPath); err != nil {
		return err
	}

	log.Printf("exam generated: %s (%d questions)", outputPath, len(questions))
	if keyPath != "" {
		log.Printf("answer key generated: %s (password protected)", keyPath)
	}
	return nil
}

func clampQuestions(questions []domain.Question, max int) []domain.Question {
	if max < 1 {
		max = 1
	}
	if max > maxQuestionsLimit {
		max = maxQuestionsLimit
	}
	if len(questions) > max {
		return questions[:max]
	}
	return questions
}
