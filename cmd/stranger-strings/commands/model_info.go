/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: model_info.go
Description: Implements the "model" subcommand: load a .sng trigram model
and report basic statistics about it, useful for validating a model file
before running a scan with it.
*/

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunModelInfo implements the model command: parse a .sng file and print
// its type and trigram count.
func RunModelInfo(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return err
	}

	modelPath := viper.GetString("model")
	if modelPath == "" {
		return fmt.Errorf("model requires --model: nothing to report on without a model file")
	}
	m, err := LoadModel(modelPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "type=%s trigrams=%d\n", m.ModelType(), m.TrigramCount())
	return nil
}
