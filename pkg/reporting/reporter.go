/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: reporter.go
Description: Reporter hooks for scoring events, the string-analysis
counterpart to the fuzzer's execution/corpus telemetry hooks.
*/

package reporting

import (
	"github.com/sirupsen/logrus"

	"github.com/kleascm/stranger-strings/pkg/scoring"
)

// Reporter receives notifications as candidates are scored during a run.
// Allows callers to wire in telemetry without coupling the pool to any one
// sink.
type Reporter interface {
	OnCandidateScored(result scoring.Result)
	OnRunComplete(results []scoring.Result)
}

// LoggerReporter logs scoring events through a logrus logger.
type LoggerReporter struct {
	logger *logrus.Logger
}

// NewLoggerReporter builds a Reporter that logs through logger.
func NewLoggerReporter(logger *logrus.Logger) *LoggerReporter {
	return &LoggerReporter{logger: logger}
}

// OnCandidateScored logs one scored candidate at debug level; valid
// strings are comparatively rare and worth a higher log level.
func (r *LoggerReporter) OnCandidateScored(result scoring.Result) {
	fields := logrus.Fields{
		"offset":   result.Offset,
		"encoding": string(result.Encoding),
		"script":   string(result.Script),
		"score":    result.Score,
	}
	if result.IsValid {
		r.logger.WithFields(fields).Info("candidate accepted")
	} else {
		r.logger.WithFields(fields).Debug("candidate rejected")
	}
}

// OnRunComplete logs a summary of the finished run.
func (r *LoggerReporter) OnRunComplete(results []scoring.Result) {
	accepted := 0
	for _, res := range results {
		if res.IsValid {
			accepted++
		}
	}
	r.logger.WithFields(logrus.Fields{
		"candidates": len(results),
		"accepted":   accepted,
	}).Info("analysis run complete")
}

// NullReporter discards every event. Used when no telemetry is wanted.
type NullReporter struct{}

// NewNullReporter builds a Reporter that does nothing.
func NewNullReporter() *NullReporter {
	return &NullReporter{}
}

// OnCandidateScored is a no-op.
func (r *NullReporter) OnCandidateScored(scoring.Result) {}

// OnRunComplete is a no-op.
func (r *NullReporter) OnRunComplete([]scoring.Result) {}
