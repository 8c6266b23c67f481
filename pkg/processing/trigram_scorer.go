/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: trigram_scorer.go
Description: Trigram scoring engine reproducing the reference "stranger strings"
log-probability score. Frames each string with BEGIN/END sentinels, slides a
3-symbol window across the framed sequence, and averages the log-probabilities
per window.
*/

package processing

import (
	"fmt"

	"github.com/kleascm/stranger-strings/pkg/model"
)

// minimumStringLength is the trigram scorer's own internal floor, distinct
// from an extractor's run-length minimum (which gates what ever reaches the
// scorer in the first place).
const minimumStringLength = 3

// defaultLogValue is returned for strings too short to score at all; it
// sits well below any reachable threshold so such strings never validate.
const defaultLogValue = -20.0

// TrigramScorer scores normalized strings against a loaded TrigramModel.
// Stateless and safe for concurrent use once the model is loaded.
type TrigramScorer struct {
	model *model.TrigramModel
}

// NewTrigramScorer wraps a trigram model for scoring. The model may be
// loaded after construction; Score re-checks IsLoaded on every call.
func NewTrigramScorer(m *model.TrigramModel) *TrigramScorer {
	return &TrigramScorer{model: m}
}

// Score normalizes s, computes its mean log-probability under the trigram
// model, and reports the length-indexed acceptance threshold alongside it.
// Returns model.ErrNotLoaded if no model has been loaded yet.
func (s *TrigramScorer) Score(raw string) (score float64, threshold float64, isValid bool, err error) {
	if !s.model.IsLoaded() {
		return 0, 0, false, model.ErrNotLoaded
	}

	normalized, ok := NormalizeForModel(raw, s.model.IsLowercaseModel())
	threshold = model.ThresholdForLength(len([]rune(normalized)))
	if !ok {
		return 0, threshold, false, nil
	}

	runes := []rune(normalized)
	threshold = model.ThresholdForLength(len(runes))
	if len(runes) < minimumStringLength {
		return defaultLogValue, threshold, false, nil
	}

	score = s.calculateTrigrams(runes)
	return score, threshold, score >= threshold, nil
}

// calculateTrigrams computes the mean log-probability over the BEGIN/END
// framed sliding window, per the formula:
//
//	seq = [BEGIN, s0, s1, ..., sn-1, END, END]
//	T   = n + 1 windows of width 3 slid across seq
//	score = (sum of window log-probabilities) / T
func (s *TrigramScorer) calculateTrigrams(runes []rune) float64 {
	n := len(runes)
	seq := make([]model.Sym, 0, n+3)
	seq = append(seq, model.Begin)
	for _, r := range runes {
		sym, ok := model.SymForRune(r)
		if !ok {
			// Normalize already rejected anything outside the alphabet;
			// this is unreachable in practice.
			panic(fmt.Sprintf("normalized rune outside model alphabet: %q", r))
		}
		seq = append(seq, sym)
	}
	seq = append(seq, model.End, model.End)

	windows := n + 1
	var total float64
	for i := 0; i < windows; i++ {
		total += s.model.LogProb(seq[i], seq[i+1], seq[i+2])
	}
	return total / float64(windows)
}

// MinimumStringLength returns the trigram scorer's internal length floor.
func MinimumStringLength() int {
	return minimumStringLength
}
