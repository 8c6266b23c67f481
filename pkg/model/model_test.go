/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: model_test.go
Description: Tests for trigram model loading, smoothing, and .sng parsing.
*/

package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThresholdForLength(t *testing.T) {
	assert.Equal(t, 10.0, ThresholdForLength(3))
	assert.Equal(t, -2.71, ThresholdForLength(4))
	assert.Equal(t, -3.26, ThresholdForLength(5))
	assert.Equal(t, -6.3, ThresholdForLength(100))
	assert.Equal(t, MaxThreshold, ThresholdForLength(500))
}

func TestSymForRune(t *testing.T) {
	s, ok := SymForRune('A')
	require.True(t, ok)
	r, ok := RuneForSym(s)
	require.True(t, ok)
	assert.Equal(t, 'A', r)

	s, ok = SymForRune('\t')
	require.True(t, ok)
	assert.Equal(t, Tab, s)

	_, ok = SymForRune('é')
	assert.False(t, ok)
}

func TestRuneForSymRejectsSentinels(t *testing.T) {
	_, ok := RuneForSym(Begin)
	assert.False(t, ok)
	_, ok = RuneForSym(End)
	assert.False(t, ok)
	_, ok = RuneForSym(Tab)
	assert.False(t, ok)
}

func TestTrigramModelSmoothing(t *testing.T) {
	counts := NewTrigramCounts()
	a, _ := SymForRune('a')
	b, _ := SymForRune('b')
	c, _ := SymForRune('c')
	counts.Add(a, b, c, 10)
	counts.Add(Begin, a, b, 5)
	counts.Add(b, c, End, 3)

	m := NewTrigramModel()
	m.Load(counts, ModelTypeLowercase)

	assert.True(t, m.IsLoaded())
	assert.True(t, m.IsLowercaseModel())

	assert.Less(t, m.LogProb(a, b, c), 0.0)
	assert.Less(t, m.LogProb(Begin, a, b), 0.0)
	assert.Less(t, m.LogProb(b, c, End), 0.0)

	// Never-seen trigrams still get a valid (smoothed) probability.
	x, _ := SymForRune('x')
	y, _ := SymForRune('y')
	z, _ := SymForRune('z')
	assert.Less(t, m.LogProb(x, y, z), 0.0)
}

func TestParseModel(t *testing.T) {
	content := strings.Join([]string{
		"# Model Type: lowercase",
		"[^]\ta\tb\t5",
		"a\tb\tc\t10",
		"b\tc\t[$]\t3",
		"[SP]\ta\tb\t2",
		"a\t[HT]\tb\t1",
	}, "\n")

	m, err := ParseModel(strings.NewReader(content))
	require.NoError(t, err)
	assert.True(t, m.IsLoaded())
	assert.Equal(t, ModelTypeLowercase, m.ModelType())
	assert.Equal(t, 5, m.TrigramCount())
}

func TestParseModelMissingHeader(t *testing.T) {
	_, err := ParseModel(strings.NewReader("a\tb\tc\t1\n"))
	assert.Error(t, err)
}

func TestParseModelBadFieldCount(t *testing.T) {
	content := "# Model Type: lowercase\na\tb\tc\n"
	_, err := ParseModel(strings.NewReader(content))
	assert.Error(t, err)
}

func TestParseModelUnknownToken(t *testing.T) {
	content := "# Model Type: lowercase\n[XY]\tb\tc\t1\n"
	_, err := ParseModel(strings.NewReader(content))
	assert.Error(t, err)
}
