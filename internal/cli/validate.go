package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/hamlet-ml/hamlet/internal/dataset"
	"github.com/hamlet-ml/hamlet/internal/filesystem"
	"github.com/hamlet-ml/hamlet/internal/model"
	"github.com/spf13/cobra"
)

// ValidateCommand handles the validate command
type ValidateCommand struct {
	fs filesystem.FileSystem
}

// NewValidateCommand creates a new validate command
func NewValidateCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &ValidateCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "validate",
		Short: "Evaluate a model against the validation subsets",
		Long: `Classifies every file in <data>/validate/spam and <data>/validate/ham and
reports per-class accuracy. A spam file counts as correct when its spam
probability is above the spam threshold; a ham file when below the ham
threshold.`,
		Example: `  hamlet validate --model out/models/model.json
  hamlet validate --report out/report.md`,
		Args: cobra.NoArgs,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().String("data", "data", "Dataset root produced by 'hamlet split'")
	cobraCmd.Flags().String("model", "out/models/model.json", "Path to the model JSON")
	cobraCmd.Flags().Float64("spam-threshold", 0.8, "Spam is correct above this probability")
	cobraCmd.Flags().Float64("ham-threshold", 0.2, "Ham is correct below this probability")
	cobraCmd.Flags().String("report", "", "Write a markdown report to this path")
	cobraCmd.Flags().Bool("quiet", false, "Suppress per-file probabilities")

	return cobraCmd
}

// Run executes the validate command
func (c *ValidateCommand) Run(cmd *cobra.Command, args []string) error {
	dataRoot, _ := cmd.Flags().GetString("data")
	modelPath, _ := cmd.Flags().GetString("model")
	spamThreshold, _ := cmd.Flags().GetFloat64("spam-threshold")
	hamThreshold, _ := cmd.Flags().GetFloat64("ham-threshold")
	reportPath, _ := cmd.Flags().GetString("report")
	quiet, _ := cmd.Flags().GetBool("quiet")

	m, err := model.ReadFile(c.fs, modelPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	spamEval, err := m.EvaluateDir(c.fs,
		filepath.Join(dataRoot, "validate", dataset.ClassSpam), dataset.ClassSpam,
		func(p float64) bool { return p > spamThreshold })
	if err != nil {
		return err
	}
	hamEval, err := m.EvaluateDir(c.fs,
		filepath.Join(dataRoot, "validate", dataset.ClassHam), dataset.ClassHam,
		func(p float64) bool { return p < hamThreshold })
	if err != nil {
		return err
	}

	if !quiet {
		for _, eval := range []model.Evaluation{spamEval, hamEval} {
			for _, r := range eval.Results {
				fmt.Fprintf(out, "Probability: %.8f\t\t(%s)\n", r.Probability, eval.Class)
			}
		}
	}

	fmt.Fprintf(out, "Spam Correctly Classified: %d/%d = %.4f\n",
		spamEval.Correct, spamEval.Total, spamEval.Accuracy())
	fmt.Fprintf(out, "Ham Correctly Classified: %d/%d = %.4f\n",
		hamEval.Correct, hamEval.Total, hamEval.Accuracy())

	if reportPath == "" {
		return nil
	}

	manifest, err := dataset.ReadManifest(c.fs, dataRoot)
	if err != nil {
		fmt.Fprintln(out, warnStyle.Render("Warning: "+err.Error()))
		manifest = nil
	}

	report, err := model.RenderReport(model.ReportData{
		GeneratedAt: time.Now().UTC(),
		ModelPath:   modelPath,
		ModelID:     m.ID,
		Ham:         hamEval,
		Spam:        spamEval,
		Manifest:    manifest,
	})
	if err != nil {
		return err
	}

	if dir := filepath.Dir(reportPath); dir != "." {
		if err := c.fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	if err := c.fs.WriteFile(reportPath, []byte(report), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	fmt.Fprintln(out, successStyle.Render("Report written to "+reportPath))

	return nil
}
