package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"exam-generator/internal/app"
	"exam-generator/internal/domain"
)

// NewDecodeCmd builds the subcommand that recovers an answer key from a
// scanned QR payload.
func NewDecodeCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "decode <payload>",
		Short: "Recover the answer key from a scanned QR payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, args[0], password)
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "exam password (required)")
	cmd.MarkFlagRequired("password")
	return cmd
}

func runDecode(cmd *cobra.Command, payload, password string) error {
	service := app.NewExamService()
	summary, err := service.DecodeQRPayload(payload, password)
	if err != nil {
		if domain.IsDecodeFailure(err) {
			return fmt.Errorf("invalid password or code: %w", err)
		}
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Questions: %d\n", summary.QuestionCount)
	fmt.Fprintf(out, "Total points: %d\n", summary.TotalPoints)
	for i, idx := range summary.CorrectIndices {
		fmt.Fprintf(out, "%3d. %c\n", i+1, 'A'+idx)
	}
	return nil
}
