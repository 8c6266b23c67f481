/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: model.go
Description: Shared model-loading helper for the scan and string commands.
*/

package commands

import (
	"fmt"
	"os"

	"github.com/kleascm/stranger-strings/pkg/model"
)

// LoadModel reads and parses a .sng trigram model file from path.
func LoadModel(path string) (*model.TrigramModel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model file: %w", err)
	}
	defer f.Close()

	m, err := model.ParseModel(f)
	if err != nil {
		return nil, fmt.Errorf("parse model file %s: %w", path, err)
	}
	return m, nil
}
