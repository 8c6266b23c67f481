/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: analyzer.go
Description: Top-level analyzer facade. Ties the encoding extractor, trigram
model, and scoring pool together into the two operations the rest of the
program actually needs: score one string, or scan an entire binary buffer.
*/

package analysis

import (
	"context"
	"fmt"

	"github.com/kleascm/stranger-strings/pkg/encoding"
	"github.com/kleascm/stranger-strings/pkg/logging"
	"github.com/kleascm/stranger-strings/pkg/model"
	"github.com/kleascm/stranger-strings/pkg/pipeline"
	"github.com/kleascm/stranger-strings/pkg/scoring"
)

// Analyzer wires a trigram model to the extraction and scoring pipeline. A
// model with no data loaded is accepted: Han/Cyrillic/Arabic scoring works
// without one, per the language scorers' model-less design; only a
// candidate that actually reaches the trigram pipeline needs one loaded,
// and will report model.ErrNotLoaded at that point if it isn't.
// Analyzer is safe for concurrent use once constructed.
type Analyzer struct {
	extractor  *encoding.Extractor
	dispatcher *scoring.Dispatcher
	pool       *pipeline.Pool
	logger     *logging.Logger
}

// Config controls how an Analyzer extracts and scores candidates.
type Config struct {
	Encodings []encoding.Encoding
	MinLength int
	Workers   int
}

// DefaultConfig extracts with every supported encoding, a minimum run
// length of 4 characters, and 4 scoring workers.
func DefaultConfig() Config {
	return Config{
		Encodings: encoding.All(),
		MinLength: 4,
		Workers:   4,
	}
}

// NewAnalyzer builds an Analyzer from a trigram model (loaded or not) and a
// logger. logger may be nil. m must not be nil; pass model.NewTrigramModel()
// for model-less language-only operation.
func NewAnalyzer(m *model.TrigramModel, cfg Config, logger *logging.Logger) (*Analyzer, error) {
	if m == nil {
		return nil, fmt.Errorf("analyzer: model must not be nil")
	}

	dispatcher := scoring.NewDispatcher(m)
	return &Analyzer{
		extractor:  encoding.NewExtractor(cfg.Encodings, cfg.MinLength),
		dispatcher: dispatcher,
		pool:       pipeline.NewPool(cfg.Workers, dispatcher, logger),
		logger:     logger,
	}, nil
}

// AnalyzeString scores a single already-extracted string directly,
// bypassing extraction entirely, using full script detection with no
// forced script. Useful for the CLI's "string" subcommand.
func (a *Analyzer) AnalyzeString(s string) (scoring.Result, error) {
	return a.AnalyzeStringWithOptions(s, scoring.DefaultOptions())
}

// AnalyzeStringWithOptions scores s per opts — see scoring.Options for the
// forced-script and language-scoring-flag routing rules.
func (a *Analyzer) AnalyzeStringWithOptions(s string, opts scoring.Options) (scoring.Result, error) {
	result, err := a.dispatcher.ScoreWithOptions(encoding.Candidate{Raw: s}, opts)
	if err != nil {
		return scoring.Result{}, fmt.Errorf("analyze string: %w", err)
	}
	if a.logger != nil {
		a.logger.LogScore(result.Offset, string(result.Encoding), string(result.Script), result.Score, result.IsValid, nil)
	}
	return result, nil
}

// AnalyzeBinary extracts candidate strings from buffer across every
// configured encoding and scores them concurrently, returning results
// ordered by offset. ctx cancellation returns whatever was scored so far.
func (a *Analyzer) AnalyzeBinary(ctx context.Context, buffer []byte) []scoring.Result {
	candidates := a.extractor.Extract(buffer)
	if a.logger != nil {
		a.logger.LogExtraction("all", len(buffer), len(candidates), 0, nil)
	}
	return a.pool.Run(ctx, candidates)
}
