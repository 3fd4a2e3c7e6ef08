package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/hamlet-ml/hamlet/internal/filesystem"
	"github.com/hamlet-ml/hamlet/internal/model"
	"github.com/spf13/cobra"
)

// ClassifyCommand handles the classify command
type ClassifyCommand struct {
	fs filesystem.FileSystem
}

// NewClassifyCommand creates a new classify command
func NewClassifyCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &ClassifyCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "classify [text...]",
		Short: "Score text with a trained model",
		Long: `Prints the spam probability for the given text. Text comes from the
arguments, from --file, or from stdin when neither is given.`,
		Example: `  hamlet classify "free money, respond fast"
  hamlet classify --file mail.txt
  cat mail.txt | hamlet classify`,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().String("model", "out/models/model.json", "Path to the model JSON")
	cobraCmd.Flags().String("file", "", "Classify the contents of this file")

	return cobraCmd
}

// Run executes the classify command
func (c *ClassifyCommand) Run(cmd *cobra.Command, args []string) error {
	modelPath, _ := cmd.Flags().GetString("model")
	filePath, _ := cmd.Flags().GetString("file")

	text, err := c.inputText(cmd, args, filePath)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("nothing to classify")
	}

	m, err := model.ReadFile(c.fs, modelPath)
	if err != nil {
		return err
	}

	p := m.SpamProbability(text)

	verdict := hamStyle.Render("ham")
	if p > 0.5 {
		verdict = spamStyle.Render("spam")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Spam probability: %.4f (%s)\n", p, verdict)

	return nil
}

func (c *ClassifyCommand) inputText(cmd *cobra.Command, args []string, filePath string) (string, error) {
	if filePath != "" {
		data, err := c.fs.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", filePath, err)
		}
		return string(data), nil
	}

	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
