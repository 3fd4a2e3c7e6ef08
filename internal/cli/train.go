package cli

import (
	"fmt"
	"path/filepath"

	"github.com/hamlet-ml/hamlet/internal/bow"
	"github.com/hamlet-ml/hamlet/internal/dataset"
	"github.com/hamlet-ml/hamlet/internal/filesystem"
	"github.com/hamlet-ml/hamlet/internal/model"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// TrainCommand handles the train command
type TrainCommand struct {
	fs filesystem.FileSystem
}

// NewTrainCommand creates a new train command
func NewTrainCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &TrainCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "train",
		Short: "Build a spam/ham model from the training subsets",
		Long: `Builds one bag of words from <data>/train/ham and one from
<data>/train/spam, and writes the combined model as JSON.`,
		Example: `  hamlet train
  hamlet train --data data --out out/models/enron1_model.json`,
		Args: cobra.NoArgs,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().String("data", "data", "Dataset root produced by 'hamlet split'")
	cobraCmd.Flags().String("out", "out/models/model.json", "Path for the model JSON")
	cobraCmd.Flags().Bool("progress", true, "Show a progress bar while reading the corpus")

	return cobraCmd
}

// Run executes the train command
func (c *TrainCommand) Run(cmd *cobra.Command, args []string) error {
	dataRoot, _ := cmd.Flags().GetString("data")
	outPath, _ := cmd.Flags().GetString("out")
	progress, _ := cmd.Flags().GetBool("progress")

	hamDir := filepath.Join(dataRoot, "train", dataset.ClassHam)
	spamDir := filepath.Join(dataRoot, "train", dataset.ClassSpam)

	hamBag, err := c.bagFromDir(cmd, hamDir, progress)
	if err != nil {
		return err
	}
	spamBag, err := c.bagFromDir(cmd, spamDir, progress)
	if err != nil {
		return err
	}

	trained, err := model.FromBags(hamBag, spamBag)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := c.fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	if err := model.WriteFile(c.fs, outPath, trained); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, successStyle.Render("Model written to "+outPath))
	fmt.Fprintf(out, "  id: %s\n", trained.ID)
	fmt.Fprintf(out, "  ham: %d distinct words, %d total\n",
		len(trained.HamBag.Counts), trained.HamBag.TotalWords())
	fmt.Fprintf(out, "  spam: %d distinct words, %d total\n",
		len(trained.SpamBag.Counts), trained.SpamBag.TotalWords())

	return nil
}

// bagFromDir reads one training directory, with a progress bar on stderr.
func (c *TrainCommand) bagFromDir(cmd *cobra.Command, dir string, progress bool) (bow.Bag, error) {
	entries, err := c.fs.ReadDir(dir)
	if err != nil {
		return bow.Bag{}, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	var onFile func(name string)
	if progress {
		bar := progressbar.NewOptions(len(entries),
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSetDescription("reading "+dir),
			progressbar.OptionClearOnFinish(),
		)
		onFile = func(string) { _ = bar.Add(1) }
	}

	bag, err := bow.FromDir(c.fs, dir, onFile)
	if err != nil {
		return bow.Bag{}, err
	}
	return bag, nil
}
