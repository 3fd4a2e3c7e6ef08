package model

import (
	"fmt"
	"path/filepath"

	"github.com/hamlet-ml/hamlet/internal/filesystem"
)

// FileResult is the classification outcome for one file.
type FileResult struct {
	Name        string
	Probability float64
	Correct     bool
}

// Evaluation summarizes a model run over one directory of labeled files.
type Evaluation struct {
	Class   string
	Results []FileResult
	Correct int
	Total   int
}

// Accuracy is Correct/Total, or 0 when the directory was empty.
func (e Evaluation) Accuracy() float64 {
	if e.Total == 0 {
		return 0
	}
	return float64(e.Correct) / float64(e.Total)
}

// EvaluateDir classifies every file directly inside dir and counts the ones
// isCorrect accepts. Unreadable files are skipped, matching training.
func (m Model) EvaluateDir(fsys filesystem.FileSystem, dir, class string, isCorrect func(p float64) bool) (Evaluation, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return Evaluation{}, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	eval := Evaluation{Class: class}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		data, err := fsys.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}

		p := m.SpamProbability(string(data))
		correct := isCorrect(p)
		eval.Results = append(eval.Results, FileResult{
			Name:        entry.Name(),
			Probability: p,
			Correct:     correct,
		})
		eval.Total++
		if correct {
			eval.Correct++
		}
	}

	return eval, nil
}
