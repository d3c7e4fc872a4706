package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var configPath string

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	envConfig := os.Getenv("EXAM_CONFIG")
	if envConfig == "" {
		envConfig = "exam.yaml"
	}

	cmd := &cobra.Command{
		Use:   "exam-generator",
		Short: "Generate multiple-choice exam PDFs with a scannable answer key",
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", envConfig, "path to YAML exam config")
	cmd.AddCommand(NewGenerateCmd(&configPath))
	cmd.AddCommand(NewDecodeCmd())
	cmd.AddCommand(NewPreviewCmd())
	return cmd
}
