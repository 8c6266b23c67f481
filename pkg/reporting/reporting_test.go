/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: reporting_test.go
Description: Tests for result rendering and reporter hooks.
*/

package reporting

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/stranger-strings/pkg/scoring"
)

func sampleResults() []scoring.Result {
	return []scoring.Result{
		{Offset: 200, Encoding: "ASCII", Script: "latin", Normalized: "world", Score: -2.5, Threshold: -3.0, IsValid: true},
		{Offset: 100, Encoding: "ASCII", Script: "latin", Normalized: "hello", Score: -2.0, Threshold: -3.0, IsValid: true},
		{Offset: 150, Encoding: "ASCII", Script: "latin", Normalized: "xZ#@$%", Score: -9.0, Threshold: -3.0, IsValid: false},
		{Offset: 100, Encoding: "ASCII", Script: "latin", Normalized: "hello", Score: -2.0, Threshold: -3.0, IsValid: true},
	}
}

func TestWriteTextOrdersAndDedupes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleResults(), FormatText, false))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "hello")
	assert.Contains(t, lines[1], "world")
}

func TestWriteTextIncludesRejected(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleResults(), FormatText, true))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 3)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleResults(), FormatJSON, false))

	var records []record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "hello", records[0].Normalized)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleResults(), FormatCSV, false))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3) // header + 2 records
	assert.Equal(t, "offset,encoding,script,normalized,score,threshold,is_valid", lines[0])
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, sampleResults(), Format("xml"), false)
	assert.Error(t, err)
}

func TestNullReporterDoesNothing(t *testing.T) {
	r := NewNullReporter()
	assert.NotPanics(t, func() {
		r.OnCandidateScored(scoring.Result{})
		r.OnRunComplete(nil)
	})
}

func TestLoggerReporterRunsWithoutPanicking(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	r := NewLoggerReporter(logger)

	results := sampleResults()
	assert.NotPanics(t, func() {
		for _, res := range results {
			r.OnCandidateScored(res)
		}
		r.OnRunComplete(results)
	})
}
