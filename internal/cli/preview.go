package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"exam-generator/internal/ptf"
)

// NewPreviewCmd builds the subcommand that lists parsed questions without
// revealing which option is correct.
func NewPreviewCmd() *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Parse a question file and list its questions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, inputPath)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "question file in .ptf format (required)")
	cmd.MarkFlagRequired("input")
	return cmd
}

func runPreview(cmd *cobra.Command, inputPath string) error {
	// Shuffling off so the preview matches the file order.
	questions, err := ptf.NewParser(false).ParseFile(inputPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, q := range questions {
		fmt.Fprintf(out, "%d. %s\n", i+1, q.Text)
		for j, opt := range q.Options {
			if opt == "" {
				continue
			}
			fmt.Fprintf(out, "   %c) %s\n", 'A'+j, opt)
		}
	}
	fmt.Fprintf(out, "\n%d questions\n", len(questions))
	return nil
}
