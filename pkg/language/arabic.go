/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: arabic.go
Description: Arabic script scorer. Grounded on the common-letter and
non-connecting-letter seed tables carried over from the reference arabic
scorer; the scoring formula follows the specification's weighted-fraction
model rather than the reference's own curve.
*/

package language

import "strings"

// arabicThreshold is the acceptance cutoff for the Arabic scorer's score.
const arabicThreshold = 2.5

// arabicGateFraction is the minimum fraction of code points that must be
// Arabic script before the scorer runs at all.
const arabicGateFraction = 0.5

var commonArabicLetters = buildRuneSet([]rune(
	"ابتثجحخدذرزسشصضطظعغفقكلمنهوي" + "أإآةىؤئ",
))

// nonConnectingArabicLetters never join to the following letter; a text
// with an unusually high share of these tends to look choppy rather than
// like normal handwritten or typeset Arabic.
var nonConnectingArabicLetters = buildRuneSet([]rune("ادذرزو"))

var arabicDiacritics = buildRuneSet([]rune("ًٌٍَُِّْ"))

// ArabicScore reports the Arabic-script score for s: 4*arabic_fraction +
// 3*joining_fraction + 2*al_pattern_rate + common_letter_rate, gated on the
// fraction of Arabic code points being at least arabicGateFraction.
func ArabicScore(s string) (score float64, isValid bool) {
	runes := []rune(s)
	if len(runes) == 0 {
		return noScriptScore, false
	}

	total := float64(len(runes))
	var arCount, joinCount, commonCount int

	for _, r := range runes {
		if !isArabic(r) {
			continue
		}
		arCount++
		if _, diacritic := arabicDiacritics[r]; diacritic {
			continue
		}
		if _, ok := nonConnectingArabicLetters[r]; !ok {
			joinCount++
		}
		if _, ok := commonArabicLetters[r]; ok {
			commonCount++
		}
	}

	arabicFraction := float64(arCount) / total
	if arabicFraction < arabicGateFraction {
		return noScriptScore, false
	}

	var joiningFraction, commonLetterRate float64
	if arCount > 0 {
		joiningFraction = float64(joinCount) / float64(arCount)
		commonLetterRate = float64(commonCount) / float64(arCount)
	}

	score = 4*arabicFraction + 3*joiningFraction + 2*alPatternRate(s) + commonLetterRate
	return score, score >= arabicThreshold
}

// alPatternRate is the fraction of whitespace-separated tokens in s that
// begin with the Arabic definite article "ال".
func alPatternRate(s string) float64 {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0
	}
	hits := 0
	for _, f := range fields {
		if strings.HasPrefix(f, "ال") {
			hits++
		}
	}
	return float64(hits) / float64(len(fields))
}

// IsLikelyRTL reports whether s is dominated by right-to-left Arabic
// script, regardless of whether it scores as valid Arabic text.
func IsLikelyRTL(s string) bool {
	total, arCount := 0, 0
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' {
			continue
		}
		total++
		if isArabic(r) {
			arCount++
		}
	}
	return total > 0 && float64(arCount)/float64(total) > 0.5
}

func isArabic(r rune) bool {
	sc, ok := classify(r)
	return ok && sc == ScriptArabic
}
