package dataset

import (
	"fmt"
	"path/filepath"

	"github.com/hamlet-ml/hamlet/internal/filesystem"
)

// DefaultRatio is the fraction of each class routed to the training group.
const DefaultRatio = 0.8

// Group names the four destination buckets, in processing order.
type Group struct {
	Subset string // "train" or "validate"
	Class  string // "ham" or "spam"
}

// Move is a single planned file relocation.
type Move struct {
	Source string
	Dest   string
}

// Plan is the full ordered list of moves for one run. Destination names are
// assigned from a single counter shared across all four groups, so every
// moved file gets a globally unique sequential name.
type Plan struct {
	Moves  []Move
	Counts map[Group]int
}

// Result summarizes an executed plan.
type Result struct {
	Moved  int
	Counts map[Group]int
}

// Splitter partitions a discovered dataset into train/validate groups and
// relocates the files. Destination directories must already exist; a missing
// directory fails the run at the first affected move, with no rollback of
// moves already made.
type Splitter struct {
	fs    filesystem.FileSystem
	ratio float64
}

// NewSplitter creates a Splitter with the given train ratio.
func NewSplitter(fsys filesystem.FileSystem, ratio float64) *Splitter {
	return &Splitter{fs: fsys, ratio: ratio}
}

// SplitIndex is the boundary index between the train and validate slices of a
// class with n files. The product is truncated, not rounded.
func SplitIndex(n int, ratio float64) int {
	return int(float64(n) * ratio)
}

// BuildPlan lays out all moves in the fixed group order: train-ham,
// validate-ham, train-spam, validate-spam.
func (s *Splitter) BuildPlan(d *Discovery, outRoot string) Plan {
	hamSplit := SplitIndex(len(d.Ham), s.ratio)
	spamSplit := SplitIndex(len(d.Spam), s.ratio)

	groups := []struct {
		group Group
		files []string
	}{
		{Group{"train", ClassHam}, d.Ham[:hamSplit]},
		{Group{"validate", ClassHam}, d.Ham[hamSplit:]},
		{Group{"train", ClassSpam}, d.Spam[:spamSplit]},
		{Group{"validate", ClassSpam}, d.Spam[spamSplit:]},
	}

	plan := Plan{Counts: make(map[Group]int)}
	counter := 0
	for _, g := range groups {
		dir := filepath.Join(outRoot, g.group.Subset, g.group.Class)
		for _, src := range g.files {
			plan.Moves = append(plan.Moves, Move{
				Source: src,
				Dest:   filepath.Join(dir, fmt.Sprintf("%d.txt", counter)),
			})
			counter++
		}
		plan.Counts[g.group] = len(g.files)
	}

	return plan
}

// Execute performs the moves in order. The first failure aborts the run;
// files moved before the failure stay moved.
func (s *Splitter) Execute(plan Plan) (*Result, error) {
	result := &Result{Counts: plan.Counts}
	for _, m := range plan.Moves {
		if err := s.fs.Rename(m.Source, m.Dest); err != nil {
			return result, fmt.Errorf("failed to move %s to %s: %w", m.Source, m.Dest, err)
		}
		result.Moved++
	}
	return result, nil
}
