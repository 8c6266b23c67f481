/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: han.go
Description: Han (Chinese) script scorer. Grounded on the common-character
seed table carried over from the reference chinese scorer; the scoring
formula itself follows the specification's weighted-fraction model rather
than the reference's own curve.
*/

package language

import "unicode/utf8"

// hanThreshold is the acceptance cutoff for the Han scorer's score.
const hanThreshold = 1.0

// hanGateFraction is the minimum fraction of code points that must be Han
// script before the scorer runs at all; below it, the candidate is not
// Han text and gets the hard rejection penalty.
const hanGateFraction = 0.5

// noScriptScore is the hard penalty returned when a candidate's dominant
// script doesn't clear its scorer's gate fraction.
const noScriptScore = -20.0

// commonHanCharacters seeds the scorer's "this looks like real Chinese
// text, not just any Han code point" bonus. Biased toward common modern
// simplified characters; deliberately not exhaustive — CJK has tens of
// thousands of characters and no single-file table can cover all of them.
var commonHanCharacters = buildRuneSet([]rune(
	"的一是在不了有和人这中大为上个国我以要他时来用们生到作地于出就分对成会" +
		"可主发年动同工也能下过子说产种面而方后多定行学法所民得经十三之进着等部" +
		"度家说将两清口自外知见入它日比力多行经政平手产系全省各如城此再公但接" +
		"活并向题十六意表月世金比老二对机展常海市外提领已然吃完好现安明天真别",
))

// HanScore reports the Han-script score for s: 10*common_fraction +
// 3*han_fraction - 2*non_han_non_punct_fraction, gated on han_fraction
// being at least hanGateFraction. Score and gate are both taken over the
// candidate's full code point count, not just its Han subset.
func HanScore(s string) (score float64, isValid bool) {
	runes := []rune(s)
	if len(runes) == 0 {
		return noScriptScore, false
	}

	total := float64(len(runes))
	var hanCount, commonCount, nonHanNonPunctCount float64

	for _, r := range runes {
		switch {
		case isHan(r):
			hanCount++
			if _, ok := commonHanCharacters[r]; ok {
				commonCount++
			}
		case isPunctOrSpace(r):
			// excluded from non_han_non_punct_fraction
		default:
			nonHanNonPunctCount++
		}
	}

	hanFraction := hanCount / total
	if hanFraction < hanGateFraction {
		return noScriptScore, false
	}

	commonFraction := commonCount / total
	nonHanNonPunctFraction := nonHanNonPunctCount / total

	score = 10*commonFraction + 3*hanFraction - 2*nonHanNonPunctFraction
	return score, score >= hanThreshold
}

func isHan(r rune) bool {
	sc, ok := classify(r)
	return ok && sc == ScriptHan
}

func buildRuneSet(groups []rune) map[rune]struct{} {
	set := make(map[rune]struct{}, len(groups))
	for _, r := range groups {
		if r == utf8.RuneError {
			continue
		}
		set[r] = struct{}{}
	}
	return set
}
