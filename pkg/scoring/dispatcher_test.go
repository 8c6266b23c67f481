/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: dispatcher_test.go
Description: Tests for the scoring dispatcher's routing between the trigram
pipeline and the script-specific scorers.
*/

package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/stranger-strings/pkg/encoding"
	"github.com/kleascm/stranger-strings/pkg/language"
	"github.com/kleascm/stranger-strings/pkg/model"
)

func buildHelloModel(t *testing.T) *model.TrigramModel {
	t.Helper()
	content := strings.Join([]string{
		"# Model Type: lowercase",
		"[^]\th\te\t10",
		"h\te\tl\t15",
		"e\tl\tl\t20",
		"l\tl\to\t25",
		"l\to\t[$]\t8",
	}, "\n")
	m, err := model.ParseModel(strings.NewReader(content))
	require.NoError(t, err)
	return m
}

func TestDispatcherRoutesLatinThroughTrigram(t *testing.T) {
	d := NewDispatcher(buildHelloModel(t))
	result, err := d.Score(encoding.Candidate{Offset: 10, Encoding: encoding.ASCII, Raw: "hello"})
	require.NoError(t, err)
	assert.Equal(t, language.ScriptLatin, result.Script)
	assert.Equal(t, int64(10), result.Offset)
	assert.Less(t, result.Score, 0.0)
}

func TestDispatcherRoutesHanAroundTrigram(t *testing.T) {
	d := NewDispatcher(buildHelloModel(t))
	result, err := d.Score(encoding.Candidate{Offset: 20, Encoding: encoding.UTF8, Raw: "你好世界"})
	require.NoError(t, err)
	assert.Equal(t, language.ScriptHan, result.Script)
	assert.True(t, result.IsValid)
}

func TestDispatcherRequiresLoadedModelForLatin(t *testing.T) {
	d := NewDispatcher(model.NewTrigramModel())
	_, err := d.Score(encoding.Candidate{Offset: 0, Encoding: encoding.ASCII, Raw: "hello"})
	assert.ErrorIs(t, err, model.ErrNotLoaded)
}

func TestDispatcherForcedArabicScoresHelloAsInvalidArabic(t *testing.T) {
	d := NewDispatcher(model.NewTrigramModel())
	result, err := d.ScoreWithOptions(
		encoding.Candidate{Raw: "hello"},
		Options{UseLanguageScoring: true, ForcedScript: language.ScriptArabic},
	)
	require.NoError(t, err)
	assert.Equal(t, language.ScriptArabic, result.Script)
	assert.Equal(t, -20.0, result.Score)
	assert.Equal(t, 2.5, result.Threshold)
	assert.False(t, result.IsValid)
}

func TestDispatcherForcedScriptRequiresNoModel(t *testing.T) {
	d := NewDispatcher(model.NewTrigramModel())
	result, err := d.ScoreWithOptions(
		encoding.Candidate{Raw: "你好世界"},
		Options{UseLanguageScoring: true, ForcedScript: language.ScriptHan},
	)
	require.NoError(t, err)
	assert.Equal(t, language.ScriptHan, result.Script)
	assert.True(t, result.IsValid)
}

func TestDispatcherUseLanguageScoringFalseForcesTrigram(t *testing.T) {
	d := NewDispatcher(buildHelloModel(t))
	result, err := d.ScoreWithOptions(
		encoding.Candidate{Raw: "你好世界"},
		Options{UseLanguageScoring: false},
	)
	require.NoError(t, err)
	assert.Equal(t, language.ScriptLatin, result.Script)
	assert.False(t, result.IsValid)
}

func TestDispatcherHanResultCarriesEmbeddedThreshold(t *testing.T) {
	d := NewDispatcher(model.NewTrigramModel())
	result, err := d.Score(encoding.Candidate{Raw: "你好世界"})
	require.NoError(t, err)
	assert.Equal(t, 1.0, result.Threshold)
	assert.GreaterOrEqual(t, result.Score, result.Threshold)
	assert.True(t, result.IsValid)
}
