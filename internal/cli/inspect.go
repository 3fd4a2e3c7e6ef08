package cli

import (
	"encoding/json"
	"fmt"

	"github.com/hamlet-ml/hamlet/internal/filesystem"
	"github.com/hamlet-ml/hamlet/internal/model"
	"github.com/spf13/cobra"
)

// InspectCommand handles the inspect command
type InspectCommand struct {
	fs filesystem.FileSystem
}

// NewInspectCommand creates a new inspect command
func NewInspectCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &InspectCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show what a trained model learned",
		Long: `Shows per-class vocabulary sizes, the most frequent words of each class,
and the words whose usage leans hardest toward one class. With --json the raw
model is pretty-printed instead.`,
		Example: `  hamlet inspect --model out/models/model.json --top 10
  hamlet inspect --json > model-pretty.json`,
		Args: cobra.NoArgs,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().String("model", "out/models/model.json", "Path to the model JSON")
	cobraCmd.Flags().Int("top", 10, "How many words per ranking")
	cobraCmd.Flags().Bool("json", false, "Pretty-print the raw model JSON")

	return cobraCmd
}

// Run executes the inspect command
func (c *InspectCommand) Run(cmd *cobra.Command, args []string) error {
	modelPath, _ := cmd.Flags().GetString("model")
	top, _ := cmd.Flags().GetInt("top")
	asJSON, _ := cmd.Flags().GetBool("json")

	m, err := model.ReadFile(c.fs, modelPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if asJSON {
		pretty, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize model: %w", err)
		}
		fmt.Fprintln(out, string(pretty))
		return nil
	}

	fmt.Fprintln(out, headerStyle.Render("Model "+modelPath))
	if m.ID != "" {
		fmt.Fprintf(out, "  id: %s\n", m.ID)
	}
	if !m.CreatedAt.IsZero() {
		fmt.Fprintf(out, "  created: %s\n", m.CreatedAt.Format("2006-01-02 15:04:05 MST"))
	}
	fmt.Fprintf(out, "  ham: %d distinct words, %d total\n",
		len(m.HamBag.Counts), m.HamBag.TotalWords())
	fmt.Fprintf(out, "  spam: %d distinct words, %d total\n",
		len(m.SpamBag.Counts), m.SpamBag.TotalWords())

	fmt.Fprintln(out, headerStyle.Render("Most frequent ham words"))
	for _, wc := range m.HamBag.TopWords(top) {
		fmt.Fprintf(out, "  %-20s %d\n", wc.Word, wc.Count)
	}

	fmt.Fprintln(out, headerStyle.Render("Most frequent spam words"))
	for _, wc := range m.SpamBag.TopWords(top) {
		fmt.Fprintf(out, "  %-20s %d\n", wc.Word, wc.Count)
	}

	fmt.Fprintln(out, headerStyle.Render("Disproportionately spam"))
	for _, skew := range m.DisproportionatelySpam(top) {
		fmt.Fprintf(out, "  %-20s %.4f (spam %.6f, ham %.6f)\n",
			skew.Word, skew.SpamShare, skew.SpamFreq, skew.HamFreq)
	}

	fmt.Fprintln(out, headerStyle.Render("Disproportionately ham"))
	for _, skew := range m.DisproportionatelyHam(top) {
		fmt.Fprintf(out, "  %-20s %.4f (spam %.6f, ham %.6f)\n",
			skew.Word, skew.SpamShare, skew.SpamFreq, skew.HamFreq)
	}

	return nil
}
