package cli

import (
	"fmt"

	"github.com/hamlet-ml/hamlet/internal/filesystem"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hamlet",
		Short: "Prepare spam/ham datasets and train a naive Bayes classifier",
		Long: `hamlet partitions labeled spam/ham corpora into train/validate
subsets, trains a bag-of-words naive Bayes model, and classifies text with it.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(NewSplitCommand(fs))
	rootCmd.AddCommand(NewTrainCommand(fs))
	rootCmd.AddCommand(NewValidateCommand(fs))
	rootCmd.AddCommand(NewClassifyCommand(fs))
	rootCmd.AddCommand(NewInspectCommand(fs))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()

	rootCmd := NewRootCommand(fs)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
