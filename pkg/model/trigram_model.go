/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: trigram_model.go
Description: Trigram character-language model with Laplace smoothing. Stores
log10 probabilities for every (char_a, char_b, char_c) triple drawn from the
logical alphabet, derived from observed counts loaded from a .sng file.
*/

package model

import "math"

// TrigramCounts accumulates raw observed trigram counts before smoothing is
// applied. Counts are keyed by Trigram so absent entries default to zero
// without pre-allocating a 98^3 array.
type TrigramCounts struct {
	Counts     map[Trigram]uint32
	TotalCount uint64
}

// NewTrigramCounts returns an empty count accumulator.
func NewTrigramCounts() *TrigramCounts {
	return &TrigramCounts{Counts: make(map[Trigram]uint32)}
}

// Add records an observed trigram with the given count.
func (c *TrigramCounts) Add(a, b, cc Sym, count uint32) {
	c.Counts[Trigram{a, b, cc}] += count
	c.TotalCount += uint64(count)
}

// ModelType distinguishes the case-folding convention a model file was
// trained under. Only "lowercase" changes scoring behavior: input is folded
// from ASCII uppercase to lowercase before it is scored.
type ModelType string

const (
	ModelTypeLowercase ModelType = "lowercase"
	ModelTypeMixedCase ModelType = "mixed-case"
)

// TrigramModel holds smoothed log10 probabilities for every trigram in the
// logical alphabet. Immutable after Load; safe for concurrent read access.
type TrigramModel struct {
	modelType  ModelType
	probs      map[Trigram]float64
	unseenProb float64
	loaded     bool
}

// NewTrigramModel returns a model with no data loaded; LogProb/IsLoaded
// reflect that state until Load is called.
func NewTrigramModel() *TrigramModel {
	return &TrigramModel{probs: make(map[Trigram]float64)}
}

// IsLoaded reports whether a model file has been parsed into this model.
func (m *TrigramModel) IsLoaded() bool {
	return m.loaded
}

// ModelType returns the case-folding convention declared by the loaded
// model file, or the empty string if none has been loaded.
func (m *TrigramModel) ModelType() ModelType {
	return m.modelType
}

// IsLowercaseModel reports whether this model expects its input to already
// be lowercased — an exact string match against the model's own convention.
func (m *TrigramModel) IsLowercaseModel() bool {
	return m.modelType == ModelTypeLowercase
}

// Load applies Laplace (add-one) smoothing to the given counts and derives
// log10 probabilities for every trigram actually observed. Trigrams never
// seen during training are not materialized; LogProb answers them lazily
// using the shared "unseen" probability, which is numerically identical to
// smoothing every possible trigram up front.
func (m *TrigramModel) Load(counts *TrigramCounts, modelType ModelType) {
	m.modelType = modelType

	denom := float64(counts.TotalCount) + float64(AlphabetSize)*float64(AlphabetSize)*float64(AlphabetSize)

	probs := make(map[Trigram]float64, len(counts.Counts))
	for tri, n := range counts.Counts {
		probs[tri] = math.Log10(float64(n+1) / denom)
	}

	m.probs = probs
	m.unseenProb = math.Log10(1.0 / denom)
	m.loaded = true
}

// LogProb returns the smoothed log10 probability of the trigram (a, b, c).
// Never returns NaN or infinity: the Laplace numerator is always >= 1 and
// the denominator is always strictly positive. Callers must check IsLoaded
// first; LogProb on an unloaded model returns the zero value.
func (m *TrigramModel) LogProb(a, b, c Sym) float64 {
	if !m.loaded {
		return 0
	}
	if p, ok := m.probs[Trigram{a, b, c}]; ok {
		return p
	}
	return m.unseenProb
}

// TrigramCount returns the number of distinct trigrams observed during
// training (before smoothing), useful for model summary reporting.
func (m *TrigramModel) TrigramCount() int {
	return len(m.probs)
}
