/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Main command-line interface for stranger-strings. Provides the
scan, string, and model subcommands with configuration management and
structured logging.
*/

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/stranger-strings/cmd/stranger-strings/commands"
)

var (
	configFile string
	logLevel   string
	logDir     string

	modelPath       string
	targetPath      string
	minLength       int
	workers         int
	format          string
	includeRejected bool

	forceScript string
	langScoring bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "stranger-strings",
		Short: "Binary string analysis via trigram scoring and script detection",
		Long: `stranger-strings extracts candidate strings from binary files across
multiple encodings, scores them against a trained trigram language model,
and classifies non-Latin text by script (Han, Cyrillic, Arabic) with its
own weighted scorers. Useful for separating meaningful strings from binary
noise during reverse engineering and malware analysis.`,
		Version: "1.0.0",
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "./logs", "Log output directory")
	rootCmd.PersistentFlags().StringVar(&modelPath, "model", "", "Path to a .sng trigram model file (required for scan and model; optional for string, which only needs one if the candidate reaches the trigram pipeline)")

	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("model", rootCmd.PersistentFlags().Lookup("model"))

	scanCmd := &cobra.Command{
		Use:   "scan",
		Short: "Extract and score candidate strings from a binary file",
		Long: `Scan walks a binary file with every configured encoding, extracts runs of
printable characters, scores each one against the trigram model (or the
matching script scorer for Han/Cyrillic/Arabic text), and reports the
results ordered by offset.`,
		RunE: commands.RunScan,
	}
	scanCmd.Flags().StringVar(&targetPath, "target", "", "Path to the binary file to scan (required)")
	scanCmd.Flags().IntVar(&minLength, "min-length", 4, "Minimum run length, in characters, to consider a candidate")
	scanCmd.Flags().IntVar(&workers, "workers", 4, "Number of concurrent scoring workers")
	scanCmd.Flags().StringVar(&format, "format", "text", "Output format (text, json, csv)")
	scanCmd.Flags().BoolVar(&includeRejected, "include-rejected", false, "Include candidates that failed scoring in the output")
	scanCmd.MarkFlagRequired("target")

	viper.BindPFlag("target", scanCmd.Flags().Lookup("target"))
	viper.BindPFlag("min_length", scanCmd.Flags().Lookup("min-length"))
	viper.BindPFlag("workers", scanCmd.Flags().Lookup("workers"))
	viper.BindPFlag("format", scanCmd.Flags().Lookup("format"))
	viper.BindPFlag("include_rejected", scanCmd.Flags().Lookup("include-rejected"))

	stringCmd := &cobra.Command{
		Use:   "string [text]",
		Short: "Score a single string directly",
		Long: `Score one literal string, either by full script detection (the default), a
forced script scorer, or the trigram pipeline outright. Han, Cyrillic, and
Arabic scoring — detected or forced via --script — need no trigram model;
--model is only required if the string actually reaches the trigram
pipeline.`,
		Args: cobra.ExactArgs(1),
		RunE: commands.RunString,
	}
	stringCmd.Flags().StringVar(&forceScript, "script", "", "Force a specific scorer (latin, han, cyrillic, arabic) instead of detecting the script")
	stringCmd.Flags().BoolVar(&langScoring, "lang-scoring", true, "Run script detection and language scorers; false forces the trigram pipeline")

	viper.BindPFlag("script", stringCmd.Flags().Lookup("script"))
	viper.BindPFlag("lang_scoring", stringCmd.Flags().Lookup("lang-scoring"))

	modelCmd := &cobra.Command{
		Use:   "model",
		Short: "Report statistics about a .sng trigram model file",
		RunE:  commands.RunModelInfo,
	}

	rootCmd.AddCommand(scanCmd, stringCmd, modelCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
