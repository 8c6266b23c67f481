/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: string.go
Description: Implements the "string" subcommand: score one string directly,
optionally forcing a specific script scorer or bypassing script detection
entirely in favor of the trigram pipeline.
*/

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/stranger-strings/pkg/analysis"
	"github.com/kleascm/stranger-strings/pkg/language"
	"github.com/kleascm/stranger-strings/pkg/model"
	"github.com/kleascm/stranger-strings/pkg/scoring"
)

// forcedScripts maps the "--script" flag's accepted values to the script
// they force. Empty string (the flag's default) means no forcing.
var forcedScripts = map[string]language.Script{
	"":         "",
	"latin":    language.ScriptLatin,
	"han":      language.ScriptHan,
	"cyrillic": language.ScriptCyrillic,
	"arabic":   language.ScriptArabic,
}

func parseForcedScript(value string) (language.Script, error) {
	script, ok := forcedScripts[value]
	if !ok {
		return "", fmt.Errorf("invalid --script %q: must be one of latin, han, cyrillic, arabic", value)
	}
	return script, nil
}

// RunString implements the string command: score a single literal string
// argument and print its score, threshold, and validity. A trigram model is
// only required when the candidate actually reaches the trigram pipeline —
// Han/Cyrillic/Arabic scoring (detected or forced via --script) runs
// without one.
func RunString(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return err
	}
	if err := SetupLogging(); err != nil {
		return err
	}

	if len(args) != 1 {
		return fmt.Errorf("string command requires exactly one argument")
	}

	forcedScript, err := parseForcedScript(viper.GetString("script"))
	if err != nil {
		return err
	}

	var m *model.TrigramModel
	if modelPath := viper.GetString("model"); modelPath != "" {
		m, err = LoadModel(modelPath)
		if err != nil {
			return err
		}
	} else {
		m = model.NewTrigramModel()
	}

	analyzer, err := analysis.NewAnalyzer(m, analysis.DefaultConfig(), nil)
	if err != nil {
		return fmt.Errorf("build analyzer: %w", err)
	}

	opts := scoring.Options{
		UseLanguageScoring: viper.GetBool("lang_scoring"),
		ForcedScript:       forcedScript,
	}

	result, err := analyzer.AnalyzeStringWithOptions(args[0], opts)
	if err != nil {
		return fmt.Errorf("analyze string: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "script=%s score=%.3f threshold=%.3f valid=%t\n",
		result.Script, result.Score, result.Threshold, result.IsValid)
	return nil
}
