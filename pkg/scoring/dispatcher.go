/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: dispatcher.go
Description: Scoring dispatcher. Routes each candidate string to the
trigram scorer or the matching script-specific scorer depending on its
detected dominant script (or a caller-forced script, or a flag that forces
the trigram pipeline outright), and assembles the unified result the rest
of the pipeline reports on.
*/

package scoring

import (
	"github.com/kleascm/stranger-strings/pkg/encoding"
	"github.com/kleascm/stranger-strings/pkg/language"
	"github.com/kleascm/stranger-strings/pkg/model"
	"github.com/kleascm/stranger-strings/pkg/processing"
)

// Result is the scored outcome for one extracted candidate string.
type Result struct {
	Offset     int64
	Encoding   encoding.Encoding
	Raw        string
	Normalized string
	Script     language.Script
	Score      float64
	Threshold  float64
	IsValid    bool
}

// Options controls how Dispatcher.ScoreWithOptions routes a candidate.
type Options struct {
	// UseLanguageScoring, when false, skips script detection entirely and
	// scores through the trigram pipeline regardless of content.
	UseLanguageScoring bool

	// ForcedScript, when non-empty, selects that script's scorer directly
	// instead of running detection. ScriptLatin forces the trigram
	// pipeline; ScriptHan/Cyrillic/Arabic force the matching language
	// scorer.
	ForcedScript language.Script
}

// DefaultOptions runs full script detection with no forced script, the
// behavior Score uses.
func DefaultOptions() Options {
	return Options{UseLanguageScoring: true}
}

// Dispatcher scores candidate strings, choosing between the Latin trigram
// pipeline and the non-Latin script scorers based on detected script.
type Dispatcher struct {
	model   *model.TrigramModel
	trigram *processing.TrigramScorer
}

// NewDispatcher builds a dispatcher backed by the given trigram model.
func NewDispatcher(m *model.TrigramModel) *Dispatcher {
	return &Dispatcher{model: m, trigram: processing.NewTrigramScorer(m)}
}

// Score classifies and scores one candidate with DefaultOptions: full
// script detection, no forced script. Non-Latin scripts bypass the trigram
// model entirely; Latin and script-less candidates go through the trigram
// pipeline's own normalization and length gating.
func (d *Dispatcher) Score(c encoding.Candidate) (Result, error) {
	return d.ScoreWithOptions(c, DefaultOptions())
}

// ScoreWithOptions scores c per opts. See Options for the routing rules.
func (d *Dispatcher) ScoreWithOptions(c encoding.Candidate, opts Options) (Result, error) {
	if !opts.UseLanguageScoring {
		return d.scoreTrigram(c, language.ScriptLatin)
	}

	if opts.ForcedScript != "" {
		if result, ok := language.ScoreStringAs(c.Raw, opts.ForcedScript); ok {
			return d.packageLanguageResult(c, result), nil
		}
		// Forced script has no language scorer (e.g. Latin, Mixed) —
		// fall back to the trigram pipeline under that label.
		return d.scoreTrigram(c, opts.ForcedScript)
	}

	detection := language.Detect(c.Raw)
	switch detection.Primary {
	case language.ScriptHan, language.ScriptCyrillic, language.ScriptArabic:
		result := language.ScoreString(c.Raw)
		return d.packageLanguageResult(c, result), nil
	case language.ScriptMixed, language.ScriptOther:
		// Mixed/Other fall back to the trigram pipeline but keep the
		// Mixed label, per the dispatcher's own detected-script contract.
		return d.scoreTrigram(c, language.ScriptMixed)
	default:
		return d.scoreTrigram(c, detection.Primary)
	}
}

func (d *Dispatcher) packageLanguageResult(c encoding.Candidate, r language.Result) Result {
	return Result{
		Offset:     c.Offset,
		Encoding:   c.Encoding,
		Raw:        c.Raw,
		Normalized: c.Raw,
		Script:     r.Script,
		Score:      r.Score,
		Threshold:  r.Threshold,
		IsValid:    r.IsValid,
	}
}

func (d *Dispatcher) scoreTrigram(c encoding.Candidate, script language.Script) (Result, error) {
	score, threshold, valid, err := d.trigram.Score(c.Raw)
	if err != nil {
		return Result{}, err
	}
	normalized, _ := processing.NormalizeForModel(c.Raw, d.model.IsLowercaseModel())
	return Result{
		Offset:     c.Offset,
		Encoding:   c.Encoding,
		Raw:        c.Raw,
		Normalized: normalized,
		Script:     script,
		Score:      score,
		Threshold:  threshold,
		IsValid:    valid,
	}, nil
}
