package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/hamlet-ml/hamlet/internal/dataset"
	"github.com/hamlet-ml/hamlet/internal/filesystem"
	"github.com/spf13/cobra"
)

// SplitCommand handles the split command
type SplitCommand struct {
	fs filesystem.FileSystem
}

// NewSplitCommand creates a new split command
func NewSplitCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &SplitCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "split [source-root]",
		Short: "Partition a labeled corpus into train/validate subsets",
		Long: `Discovers files inside directories named "ham" and "spam" anywhere under
the source root and moves them into <out>/train/ham, <out>/validate/ham,
<out>/train/spam and <out>/validate/spam.

Per class, the first floor(ratio*n) files (sorted by path) go to train and
the rest to validate. Destination files are named <n>.txt from one counter
shared across all four groups, in the order train-ham, validate-ham,
train-spam, validate-spam.

The destination directories must already exist. Files are moved, not copied:
the source tree is destructively altered and a second run will fail because
the sources are gone. A failed move aborts the run without rolling back the
moves already made.`,
		Example: `  # Split the corpus under the current directory into ./data
  hamlet split --yes

  # Custom source root, output root and ratio
  hamlet split corpora/enron1 --out data --ratio 0.8 --yes`,
		Args: cobra.MaximumNArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().String("out", "data", "Output root containing the four destination directories")
	cobraCmd.Flags().Float64("ratio", dataset.DefaultRatio, "Fraction of each class routed to train")
	cobraCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")

	return cobraCmd
}

// Run executes the split command
func (c *SplitCommand) Run(cmd *cobra.Command, args []string) error {
	outRoot, _ := cmd.Flags().GetString("out")
	ratio, _ := cmd.Flags().GetFloat64("ratio")
	yes, _ := cmd.Flags().GetBool("yes")

	if ratio < 0 || ratio > 1 {
		return fmt.Errorf("ratio must be between 0 and 1, got %g", ratio)
	}

	sourceRoot := "."
	if len(args) > 0 {
		sourceRoot = args[0]
	}

	discovered, err := dataset.Discover(c.fs, sourceRoot)
	if err != nil {
		return fmt.Errorf("failed to discover corpus: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Discovered %d ham and %d spam files under %s\n",
		len(discovered.Ham), len(discovered.Spam), sourceRoot)
	if len(discovered.Summaries) > 0 {
		fmt.Fprintln(out, subtleStyle.Render(
			fmt.Sprintf("Skipping %d Summary.txt file(s)", len(discovered.Summaries))))
	}
	if discovered.Ignored > 0 {
		fmt.Fprintln(out, subtleStyle.Render(
			fmt.Sprintf("Ignored %d file(s) via %s", discovered.Ignored, dataset.IgnoreFileName)))
	}

	splitter := dataset.NewSplitter(c.fs, ratio)
	plan := splitter.BuildPlan(discovered, outRoot)

	if len(plan.Moves) == 0 {
		fmt.Fprintln(out, "Nothing to split")
		return nil
	}

	if !yes {
		confirmed, err := c.confirm(len(plan.Moves), outRoot)
		if err != nil {
			return fmt.Errorf("confirmation failed: %w", err)
		}
		if !confirmed {
			fmt.Fprintln(out, "Aborted")
			return nil
		}
	}

	result, err := splitter.Execute(plan)
	if err != nil {
		return fmt.Errorf("split aborted after %d move(s): %w", result.Moved, err)
	}

	manifest, err := dataset.NewManifest(sourceRoot, ratio, result.Counts)
	if err != nil {
		return err
	}
	if err := dataset.WriteManifest(c.fs, outRoot, manifest); err != nil {
		fmt.Fprintln(out, warnStyle.Render("Warning: "+err.Error()))
	}

	fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("Moved %d files into %s", result.Moved, outRoot)))
	for _, g := range []dataset.Group{
		{Subset: "train", Class: dataset.ClassHam},
		{Subset: "validate", Class: dataset.ClassHam},
		{Subset: "train", Class: dataset.ClassSpam},
		{Subset: "validate", Class: dataset.ClassSpam},
	} {
		fmt.Fprintf(out, "  %s/%s: %d\n", g.Subset, g.Class, result.Counts[g])
	}

	return nil
}

func (c *SplitCommand) confirm(moves int, outRoot string) (bool, error) {
	confirmed := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Move %d files into %s?", moves, outRoot)).
			Description("Sources are moved, not copied. This cannot be undone.").
			Value(&confirmed),
	))
	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}
