// Package model implements the naive Bayes spam/ham model: two bags of
// words, a spam probability for arbitrary text, and JSON persistence.
package model

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/hamlet-ml/hamlet/internal/bow"
	"github.com/hamlet-ml/hamlet/internal/filesystem"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Model holds a ham bag and a spam bag. The JSON shape keeps the bags under
// "ham_bow"/"spam_bow"; id and created_at are metadata and may be absent.
type Model struct {
	HamBag    bow.Bag   `json:"ham_bow"`
	SpamBag   bow.Bag   `json:"spam_bow"`
	ID        string    `json:"id,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// WordSkew ranks a word by how far its usage leans toward one class.
// SpamShare is spamFreq/(spamFreq+hamFreq), between 0 (pure ham) and 1
// (pure spam); only words present in both bags are ranked.
type WordSkew struct {
	Word      string
	SpamShare float64
	SpamFreq  float64
	HamFreq   float64
}

// New returns an empty model with no training data.
func New() Model {
	return Model{HamBag: bow.New(), SpamBag: bow.New()}
}

// FromBags builds a model from a ham bag and a spam bag, stamped with a
// fresh ID.
func FromBags(ham, spam bow.Bag) (Model, error) {
	id, err := gonanoid.New(10)
	if err != nil {
		return Model{}, fmt.Errorf("failed to generate model ID: %w", err)
	}

	return Model{
		HamBag:    bow.New().Combine(ham),
		SpamBag:   bow.New().Combine(spam),
		ID:        id,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// AddHamBag merges additional ham training data into the model.
func (m Model) AddHamBag(b bow.Bag) Model {
	m.HamBag = m.HamBag.Combine(b)
	return m
}

// AddSpamBag merges additional spam training data into the model.
func (m Model) AddSpamBag(b bow.Bag) Model {
	m.SpamBag = m.SpamBag.Combine(b)
	return m
}

// SpamProbability returns the probability in [0,1] that text is spam.
// Words known to only one bag carry no signal; text with no words known to
// both bags scores 0.5.
func (m Model) SpamProbability(text string) float64 {
	n := 0.0
	for word, count := range bow.FromText(text).Counts {
		spamFreq, spamOK := m.SpamBag.Frequency(word)
		hamFreq, hamOK := m.HamBag.Frequency(word)
		if !spamOK || !hamOK {
			continue
		}

		// Repeated words contribute once per occurrence.
		p := spamFreq / (spamFreq + hamFreq)
		n += float64(count) * (math.Log(1-p) - math.Log(p))
	}
	return 1 / (1 + math.Exp(n))
}

// DisproportionatelySpam returns the n ranked words leaning hardest spam.
func (m Model) DisproportionatelySpam(n int) []WordSkew {
	skews := m.wordSkews()
	sort.Slice(skews, func(i, j int) bool {
		if skews[i].SpamShare != skews[j].SpamShare {
			return skews[i].SpamShare > skews[j].SpamShare
		}
		return skews[i].Word < skews[j].Word
	})
	return truncateSkews(skews, n)
}

// DisproportionatelyHam returns the n ranked words leaning hardest ham.
func (m Model) DisproportionatelyHam(n int) []WordSkew {
	skews := m.wordSkews()
	sort.Slice(skews, func(i, j int) bool {
		if skews[i].SpamShare != skews[j].SpamShare {
			return skews[i].SpamShare < skews[j].SpamShare
		}
		return skews[i].Word < skews[j].Word
	})
	return truncateSkews(skews, n)
}

func (m Model) wordSkews() []WordSkew {
	var skews []WordSkew
	for word := range m.SpamBag.Counts {
		spamFreq, spamOK := m.SpamBag.Frequency(word)
		hamFreq, hamOK := m.HamBag.Frequency(word)
		if !spamOK || !hamOK {
			continue
		}

		skews = append(skews, WordSkew{
			Word:      word,
			SpamShare: spamFreq / (spamFreq + hamFreq),
			SpamFreq:  spamFreq,
			HamFreq:   hamFreq,
		})
	}
	return skews
}

func truncateSkews(skews []WordSkew, n int) []WordSkew {
	if n > len(skews) {
		n = len(skews)
	}
	return skews[:n]
}

// WriteFile serializes the model to compact JSON at path. The write is
// destructive.
func WriteFile(fsys filesystem.FileSystem, path string, m Model) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to serialize model: %w", err)
	}

	if err := fsys.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write model: %w", err)
	}
	return nil
}

// ReadFile loads a model from a JSON file at path.
func ReadFile(fsys filesystem.FileSystem, path string) (Model, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return Model{}, fmt.Errorf("failed to read model: %w", err)
	}

	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return Model{}, fmt.Errorf("failed to parse model: %w", err)
	}
	return m, nil
}
