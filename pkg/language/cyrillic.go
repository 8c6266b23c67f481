/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: cyrillic.go
Description: Cyrillic (Russian) script scorer. Grounded on the common
bigram, trigram, and word seed tables carried over from the reference
cyrillic scorer; the scoring formula follows the specification's
hit-rate model rather than the reference's own curve.
*/

package language

import "strings"

// cyrillicThreshold is the acceptance cutoff for the Cyrillic scorer's score.
const cyrillicThreshold = 3.0

// cyrillicGateFraction is the minimum fraction of code points that must be
// Cyrillic script before the scorer runs at all.
const cyrillicGateFraction = 0.5

// cyrillicVowels and cyrillicSoftHard exclude ь/ъ from the consonant count,
// matching the reference scorer's vowel/consonant balance heuristic.
var cyrillicVowels = buildRuneSet([]rune("аеёиоуыэюяАЕЁИОУЫЭЮЯ"))
var cyrillicSoftHard = buildRuneSet([]rune("ьъЬЪ"))

var commonCyrillicBigrams = []string{
	"ст", "но", "то", "на", "ен", "ов", "ни", "ра", "во", "ко",
	"ро", "пр", "ли", "ре", "ка", "ал", "ле", "го", "ос", "ва",
}

var commonCyrillicTrigrams = []string{
	"ост", "ств", "ени", "ого", "ани", "ком", "при", "про", "ный", "ест",
}

var russianWords = buildStringSet([]string{"это", "что", "для", "они", "есть", "его", "ее"})

// vowelFractionLow and vowelFractionHigh bound the target vowel share within
// the Cyrillic subset of a candidate; outside this band the balance bonus
// turns into a penalty proportional to the distance from the nearer bound.
const vowelFractionLow = 0.35
const vowelFractionHigh = 0.50

// CyrillicScore reports the Cyrillic-script score for s:
// 5*bigram_hit_rate + 4*trigram_hit_rate + 3*word_hit_rate + balance_bonus,
// gated on the fraction of Cyrillic code points being at least
// cyrillicGateFraction.
func CyrillicScore(s string) (score float64, isValid bool) {
	runes := []rune(s)
	if len(runes) == 0 {
		return noScriptScore, false
	}

	total := float64(len(runes))
	cyrCount := 0
	for _, r := range runes {
		if isCyrillic(r) {
			cyrCount++
		}
	}

	cyrFraction := float64(cyrCount) / total
	if cyrFraction < cyrillicGateFraction {
		return noScriptScore, false
	}

	lower := strings.ToLower(s)
	cyrRunes := make([]rune, 0, cyrCount)
	vowels, consonants := 0, 0
	for _, r := range lower {
		if !isCyrillic(r) {
			continue
		}
		cyrRunes = append(cyrRunes, r)
		if _, ok := cyrillicVowels[r]; ok {
			vowels++
		} else if _, soft := cyrillicSoftHard[r]; !soft {
			consonants++
		}
	}

	bigramHitRate := ngramHitRate(cyrRunes, 2, commonCyrillicBigrams)
	trigramHitRate := ngramHitRate(cyrRunes, 3, commonCyrillicTrigrams)
	wordHitRate := wordHitRate(lower, russianWords)
	balance := vowelBalanceBonus(vowels, consonants)

	score = 5*bigramHitRate + 4*trigramHitRate + 3*wordHitRate + balance
	return score, score >= cyrillicThreshold
}

// ngramHitRate is the fraction of n-length sliding windows over runes that
// match an entry in table.
func ngramHitRate(runes []rune, n int, table []string) float64 {
	windows := len(runes) - n + 1
	if windows <= 0 {
		return 0
	}
	set := make(map[string]struct{}, len(table))
	for _, t := range table {
		set[t] = struct{}{}
	}
	hits := 0
	for i := 0; i < windows; i++ {
		if _, ok := set[string(runes[i:i+n])]; ok {
			hits++
		}
	}
	return float64(hits) / float64(windows)
}

// wordHitRate is the fraction of whitespace-separated tokens in lower that
// exactly match an entry in words.
func wordHitRate(lower string, words map[string]struct{}) float64 {
	fields := strings.Fields(lower)
	if len(fields) == 0 {
		return 0
	}
	hits := 0
	for _, f := range fields {
		if _, ok := words[f]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(fields))
}

// vowelBalanceBonus rewards a vowel fraction within [vowelFractionLow,
// vowelFractionHigh] and penalizes proportionally to the distance outside it.
func vowelBalanceBonus(vowels, consonants int) float64 {
	denom := vowels + consonants
	if denom == 0 {
		return 0
	}
	fraction := float64(vowels) / float64(denom)
	switch {
	case fraction < vowelFractionLow:
		return -(vowelFractionLow - fraction) * 4.0
	case fraction > vowelFractionHigh:
		return -(fraction - vowelFractionHigh) * 4.0
	default:
		return 1.0
	}
}

func isCyrillic(r rune) bool {
	sc, ok := classify(r)
	return ok && sc == ScriptCyrillic
}

func buildStringSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
