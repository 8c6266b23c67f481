/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: writer.go
Description: Renders scored analysis results as text, JSON, or CSV. Results
are de-duplicated by (offset, encoding, normalized string) and sorted by
offset before being written, regardless of format.
*/

package reporting

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/kleascm/stranger-strings/pkg/scoring"
)

// Format selects the output rendering for Write.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// record is the JSON/CSV-facing shape of a scored result; field names are
// stable across runs since downstream tooling may parse them.
type record struct {
	Offset     int64   `json:"offset"`
	Encoding   string  `json:"encoding"`
	Script     string  `json:"script"`
	Raw        string  `json:"raw"`
	Normalized string  `json:"normalized"`
	Score      float64 `json:"score"`
	Threshold  float64 `json:"threshold"`
	IsValid    bool    `json:"is_valid"`
}

// Write renders results in format to w. Only valid results are written
// unless includeRejected is true.
func Write(w io.Writer, results []scoring.Result, format Format, includeRejected bool) error {
	filtered := dedupeAndFilter(results, includeRejected)

	switch format {
	case FormatJSON:
		return writeJSON(w, filtered)
	case FormatCSV:
		return writeCSV(w, filtered)
	case FormatText, "":
		return writeText(w, filtered)
	default:
		return fmt.Errorf("reporting: unknown format %q", format)
	}
}

func dedupeAndFilter(results []scoring.Result, includeRejected bool) []record {
	sorted := make([]scoring.Result, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Offset != sorted[j].Offset {
			return sorted[i].Offset < sorted[j].Offset
		}
		if sorted[i].Encoding != sorted[j].Encoding {
			return sorted[i].Encoding < sorted[j].Encoding
		}
		return sorted[i].Normalized < sorted[j].Normalized
	})

	seen := make(map[string]struct{}, len(sorted))
	out := make([]record, 0, len(sorted))
	for _, r := range sorted {
		if !includeRejected && !r.IsValid {
			continue
		}
		key := strconv.FormatInt(r.Offset, 10) + "|" + string(r.Encoding) + "|" + r.Normalized
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, record{
			Offset:     r.Offset,
			Encoding:   string(r.Encoding),
			Script:     string(r.Script),
			Raw:        r.Raw,
			Normalized: r.Normalized,
			Score:      r.Score,
			Threshold:  r.Threshold,
			IsValid:    r.IsValid,
		})
	}
	return out
}

func writeJSON(w io.Writer, records []record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func writeCSV(w io.Writer, records []record) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"offset", "encoding", "script", "normalized", "score", "threshold", "is_valid"}); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			strconv.FormatInt(r.Offset, 10),
			r.Encoding,
			r.Script,
			r.Normalized,
			strconv.FormatFloat(r.Score, 'f', 3, 64),
			strconv.FormatFloat(r.Threshold, 'f', 3, 64),
			strconv.FormatBool(r.IsValid),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writeText(w io.Writer, records []record) error {
	for _, r := range records {
		_, err := fmt.Fprintf(w, "%#08x\t%-8s\t%-9s\t%.3f\t%s\n", r.Offset, r.Encoding, r.Script, r.Score, r.Normalized)
		if err != nil {
			return err
		}
	}
	return nil
}
