/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: language_test.go
Description: Tests for script detection and the Han/Cyrillic/Arabic scorers.
*/

package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLatin(t *testing.T) {
	d := Detect("hello world")
	assert.Equal(t, ScriptLatin, d.Primary)
	assert.Greater(t, d.Confidence, 0.9)
}

func TestDetectHan(t *testing.T) {
	d := Detect("你好世界")
	assert.Equal(t, ScriptHan, d.Primary)
	assert.Equal(t, 1.0, d.Confidence)
}

func TestDetectCyrillic(t *testing.T) {
	d := Detect("Привет мир")
	assert.Equal(t, ScriptCyrillic, d.Primary)
}

func TestDetectArabic(t *testing.T) {
	d := Detect("مرحبا بالعالم")
	assert.Equal(t, ScriptArabic, d.Primary)
}

func TestDetectNone(t *testing.T) {
	d := Detect("12345 !@#$%")
	assert.Equal(t, ScriptNone, d.Primary)
}

func TestDetectMixed(t *testing.T) {
	// "hello" (5 Latin) vs "привет" (6 Cyrillic): plurality confidence
	// 6/11 ≈ 0.545, below the 0.6 cutoff, so this is reported as Mixed
	// rather than assigned to Cyrillic despite it holding the plurality.
	d := Detect("hello привет")
	assert.Equal(t, ScriptMixed, d.Primary)
	assert.Less(t, d.Confidence, 0.6)
}

func TestDetectClearPluralityDespiteMinorityScript(t *testing.T) {
	// "hello" (5 Latin) vs "мир" (3 Cyrillic): confidence 5/8 = 0.625,
	// at or above the cutoff, so Latin keeps its plurality rather than
	// being flagged Mixed.
	d := Detect("hello мир")
	assert.Equal(t, ScriptLatin, d.Primary)
	assert.GreaterOrEqual(t, d.Confidence, 0.6)
}

func TestHanScoreValidText(t *testing.T) {
	score, valid := HanScore("你好世界")
	assert.True(t, valid)
	assert.Greater(t, score, hanThreshold)
}

func TestHanScoreNonHanText(t *testing.T) {
	score, valid := HanScore("hello")
	assert.False(t, valid)
	assert.Equal(t, noScriptScore, score)
}

func TestCyrillicScoreValidText(t *testing.T) {
	score, valid := CyrillicScore("это есть привет")
	assert.True(t, valid)
	assert.Greater(t, score, cyrillicThreshold)
}

func TestCyrillicScoreNonCyrillicText(t *testing.T) {
	score, valid := CyrillicScore("hello")
	assert.False(t, valid)
	assert.Equal(t, noScriptScore, score)
}

func TestArabicScoreValidText(t *testing.T) {
	score, valid := ArabicScore("مرحبا بالعالم")
	assert.True(t, valid)
	assert.Greater(t, score, arabicThreshold)
}

func TestArabicScoreNonArabicText(t *testing.T) {
	score, valid := ArabicScore("hello")
	assert.False(t, valid)
	assert.Equal(t, noScriptScore, score)
}

func TestIsLikelyRTL(t *testing.T) {
	assert.True(t, IsLikelyRTL("مرحبا بالعالم"))
	assert.False(t, IsLikelyRTL("hello world"))
}

func TestScoreStringRoutesToHan(t *testing.T) {
	r := ScoreString("你好世界")
	assert.Equal(t, ScriptHan, r.Script)
	assert.True(t, r.IsValid)
}

func TestScoreStringRoutesToCyrillic(t *testing.T) {
	r := ScoreString("это есть привет")
	assert.Equal(t, ScriptCyrillic, r.Script)
	assert.True(t, r.IsValid)
}

func TestScoreStringRoutesToArabic(t *testing.T) {
	r := ScoreString("مرحبا بالعالم")
	assert.Equal(t, ScriptArabic, r.Script)
	assert.True(t, r.IsValid)
}

func TestScoreStringLatinFallsThrough(t *testing.T) {
	r := ScoreString("hello world")
	assert.Equal(t, ScriptLatin, r.Script)
	assert.False(t, r.IsValid)
}

func TestScoreStringEmbedsThreshold(t *testing.T) {
	r := ScoreString("это есть привет")
	assert.Equal(t, cyrillicThreshold, r.Threshold)
}

func TestScoreStringAsForcesScorerRegardlessOfContent(t *testing.T) {
	r, ok := ScoreStringAs("hello", ScriptArabic)
	assert.True(t, ok)
	assert.Equal(t, ScriptArabic, r.Script)
	assert.Equal(t, noScriptScore, r.Score)
	assert.Equal(t, arabicThreshold, r.Threshold)
	assert.False(t, r.IsValid)
}

func TestScoreStringAsRejectsScriptWithNoLanguageScorer(t *testing.T) {
	_, ok := ScoreStringAs("hello", ScriptLatin)
	assert.False(t, ok)
}

func TestDetectMixedConfidenceBelowThreshold(t *testing.T) {
	d := Detect("aaaaaaббббб")
	assert.Equal(t, ScriptMixed, d.Primary)
	assert.Less(t, d.Confidence, 0.6)
}

func TestDetectKeepsPluralityScriptAtOrAboveConfidence(t *testing.T) {
	d := Detect("aaaaaaaбб")
	assert.Equal(t, ScriptLatin, d.Primary)
	assert.GreaterOrEqual(t, d.Confidence, 0.6)
}
