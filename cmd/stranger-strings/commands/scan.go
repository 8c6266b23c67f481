/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: scan.go
Description: Implements the "scan" subcommand: extract and score candidate
strings across every supported encoding in a binary file.
*/

package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/stranger-strings/pkg/analysis"
	"github.com/kleascm/stranger-strings/pkg/encoding"
	"github.com/kleascm/stranger-strings/pkg/logging"
	"github.com/kleascm/stranger-strings/pkg/reporting"
	"github.com/kleascm/stranger-strings/pkg/scoring"
)

// buildReporter picks the run reporter based on the configured log level:
// verbose runs get per-candidate logging, quiet runs get none.
func buildReporter() reporting.Reporter {
	if viper.GetString("log_level") == "debug" {
		return reporting.NewLoggerReporter(logrus.StandardLogger())
	}
	return reporting.NewNullReporter()
}

// RunScan implements the scan command: extract candidates from a binary
// file across configured encodings, score them, and report the results.
func RunScan(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return err
	}
	if err := SetupLogging(); err != nil {
		return err
	}

	modelPath := viper.GetString("model")
	targetPath := viper.GetString("target")
	minLength := viper.GetInt("min_length")
	workers := viper.GetInt("workers")
	format := viper.GetString("format")
	includeRejected := viper.GetBool("include_rejected")

	if modelPath == "" {
		return fmt.Errorf("scan requires --model: a binary scan's Latin/Mixed/Other candidates need a trigram model")
	}
	m, err := LoadModel(modelPath)
	if err != nil {
		return err
	}

	buffer, err := os.ReadFile(targetPath)
	if err != nil {
		return fmt.Errorf("read target file: %w", err)
	}

	logger, err := logging.NewLogger(&logging.LoggerConfig{
		Level:     logging.LogLevelInfo,
		Format:    logging.LogFormatText,
		OutputDir: viper.GetString("log_dir"),
		MaxFiles:  10,
		MaxSize:   100 * 1024 * 1024,
	})
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer logger.Close()

	cfg := analysis.Config{
		Encodings: encoding.All(),
		MinLength: minLength,
		Workers:   workers,
	}
	analyzer, err := analysis.NewAnalyzer(m, cfg, logger)
	if err != nil {
		return fmt.Errorf("build analyzer: %w", err)
	}

	runID := uuid.NewString()
	started := time.Now()
	results := analyzer.AnalyzeBinary(context.Background(), buffer)
	logger.LogRun(len(results), countValid(results), time.Since(started), map[string]interface{}{"run_id": runID})

	reporter := buildReporter()
	for _, result := range results {
		reporter.OnCandidateScored(result)
	}
	reporter.OnRunComplete(results)

	return reporting.Write(cmd.OutOrStdout(), results, reporting.Format(format), includeRejected)
}

func countValid(results []scoring.Result) int {
	n := 0
	for _, r := range results {
		if r.IsValid {
			n++
		}
	}
	return n
}
