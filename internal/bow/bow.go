// Package bow implements the bag-of-words frequency maps that back the
// spam/ham model. Words are UAX#29 word-boundary segments; whitespace-only
// segments are dropped and the rest are uppercased before counting, so
// "Hello hello" and "HELLO HELLO" build the same bag.
package bow

import (
	"sort"
	"strings"

	"github.com/rivo/uniseg"
	"github.com/samber/lo"
)

// Bag is a frequency map of words. Combining bags is additive, commutative
// and associative, so a training bag can be grown incrementally.
type Bag struct {
	Counts map[string]int `json:"bow"`
}

// WordCount pairs a word with its count, for rankings.
type WordCount struct {
	Word  string
	Count int
}

// New returns an empty Bag.
func New() Bag {
	return Bag{Counts: make(map[string]int)}
}

// FromText builds a Bag from a text.
func FromText(text string) Bag {
	b := New()
	for _, word := range segment(text) {
		b.Counts[strings.ToUpper(word)]++
	}
	return b
}

// Combine merges other into b and returns the result.
func (b Bag) Combine(other Bag) Bag {
	if b.Counts == nil {
		b.Counts = make(map[string]int)
	}
	for word, count := range other.Counts {
		b.Counts[word] += count
	}
	return b
}

// TotalWords is the sum of all counts in the bag.
func (b Bag) TotalWords() int {
	return lo.Sum(lo.Values(b.Counts))
}

// Frequency returns count/total for a single word, uppercased before lookup.
// The second return is false for unknown words and for inputs that segment
// into anything other than exactly one word.
func (b Bag) Frequency(word string) (float64, bool) {
	segments := segment(word)
	if len(segments) != 1 {
		return 0, false
	}

	count, ok := b.Counts[strings.ToUpper(segments[0])]
	if !ok {
		return 0, false
	}
	return float64(count) / float64(b.TotalWords()), true
}

// TopWords returns the n most frequent words, ties broken alphabetically.
func (b Bag) TopWords(n int) []WordCount {
	ranked := lo.MapToSlice(b.Counts, func(word string, count int) WordCount {
		return WordCount{Word: word, Count: count}
	})
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Word < ranked[j].Word
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

// segment splits text into UAX#29 words, dropping whitespace-only segments.
func segment(text string) []string {
	var words []string
	state := -1
	var word string
	for text != "" {
		word, text, state = uniseg.FirstWordInString(text, state)
		if strings.TrimSpace(word) == "" {
			continue
		}
		words = append(words, word)
	}
	return words
}
