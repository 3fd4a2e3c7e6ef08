package dataset

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/hamlet-ml/hamlet/internal/filesystem"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// ManifestFileName is written into the output root after a successful split.
const ManifestFileName = "MANIFEST.md"

// Manifest records what a split run produced: a markdown file with YAML
// frontmatter above a short human-readable body.
type Manifest struct {
	RunID        string  `yaml:"run_id"`
	CreatedAt    string  `yaml:"created_at"`
	Source       string  `yaml:"source"`
	Ratio        float64 `yaml:"ratio"`
	TrainHam     int     `yaml:"train_ham"`
	ValidateHam  int     `yaml:"validate_ham"`
	TrainSpam    int     `yaml:"train_spam"`
	ValidateSpam int     `yaml:"validate_spam"`
}

// NewManifest builds a manifest for an executed plan, with a fresh run ID.
func NewManifest(source string, ratio float64, counts map[Group]int) (Manifest, error) {
	id, err := gonanoid.New(10)
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to generate run ID: %w", err)
	}

	return Manifest{
		RunID:        id,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
		Source:       source,
		Ratio:        ratio,
		TrainHam:     counts[Group{"train", ClassHam}],
		ValidateHam:  counts[Group{"validate", ClassHam}],
		TrainSpam:    counts[Group{"train", ClassSpam}],
		ValidateSpam: counts[Group{"validate", ClassSpam}],
	}, nil
}

// Total returns the number of files the run moved.
func (m Manifest) Total() int {
	return m.TrainHam + m.ValidateHam + m.TrainSpam + m.ValidateSpam
}

// WriteManifest writes the manifest into outRoot.
func WriteManifest(fsys filesystem.FileSystem, outRoot string, m Manifest) error {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "run_id: %s\n", m.RunID)
	fmt.Fprintf(&b, "created_at: %s\n", m.CreatedAt)
	fmt.Fprintf(&b, "source: %s\n", m.Source)
	fmt.Fprintf(&b, "ratio: %g\n", m.Ratio)
	fmt.Fprintf(&b, "train_ham: %d\n", m.TrainHam)
	fmt.Fprintf(&b, "validate_ham: %d\n", m.ValidateHam)
	fmt.Fprintf(&b, "train_spam: %d\n", m.TrainSpam)
	fmt.Fprintf(&b, "validate_spam: %d\n", m.ValidateSpam)
	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "# Dataset %s\n\n", m.RunID)
	fmt.Fprintf(&b, "%d files split %g/%g into train/validate.\n",
		m.Total(), m.Ratio, 1-m.Ratio)

	path := filepath.Join(outRoot, ManifestFileName)
	if err := fsys.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// ReadManifest loads the manifest from outRoot, or nil if none exists.
func ReadManifest(fsys filesystem.FileSystem, outRoot string) (*Manifest, error) {
	path := filepath.Join(outRoot, ManifestFileName)
	if !fsys.Exists(path) {
		return nil, nil
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if _, err := frontmatter.Parse(bytes.NewReader(data), &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &m, nil
}
