/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: scorer.go
Description: Dispatches a candidate string to the scorer matching its
detected dominant script. Acts as the non-Latin counterpart to the trigram
scorer: same Score-shaped contract, different scripts underneath.
*/

package language

// Result bundles a script scorer's verdict with the detection that routed
// it, so callers can report which script was assessed. Threshold is the
// cutoff embedded in the scorer that produced Score, so a caller re-checking
// Score >= Threshold gets the same answer IsValid already encodes.
type Result struct {
	Script     Script
	Confidence float64
	Score      float64
	Threshold  float64
	IsValid    bool
}

// scorerFor runs the scorer for script against s, returning its score,
// embedded threshold, and acceptance. Scripts with no language scorer
// (Latin, Mixed, Other, None) are not handled here; callers route those
// through the trigram pipeline instead.
func scorerFor(script Script, s string) (score, threshold float64, valid bool, ok bool) {
	switch script {
	case ScriptHan:
		score, valid = HanScore(s)
		return score, hanThreshold, valid, true
	case ScriptCyrillic:
		score, valid = CyrillicScore(s)
		return score, cyrillicThreshold, valid, true
	case ScriptArabic:
		score, valid = ArabicScore(s)
		return score, arabicThreshold, valid, true
	default:
		return 0, 0, false, false
	}
}

// ScoreString detects the dominant script in s and scores it with the
// matching script-specific scorer. Strings whose dominant script is none
// of Han, Cyrillic, or Arabic (Latin, Mixed, Other, None) are reported with
// that detected script, the sentinel score noScriptScore, a zero threshold,
// and IsValid false, since those scripts route through the Latin trigram
// pipeline instead.
func ScoreString(s string) Result {
	d := Detect(s)

	if score, threshold, valid, ok := scorerFor(d.Primary, s); ok {
		return Result{Script: d.Primary, Confidence: d.Confidence, Score: score, Threshold: threshold, IsValid: valid}
	}
	return Result{Script: d.Primary, Confidence: d.Confidence, Score: noScriptScore, Threshold: 0, IsValid: false}
}

// ScoreStringAs scores s with the scorer for the given script directly,
// ignoring whatever script Detect would have picked. This is how a caller
// forces a candidate through a specific language scorer regardless of its
// actual content (ScoringDispatcher's "forced script" input).
func ScoreStringAs(s string, script Script) (Result, bool) {
	d := Detect(s)
	score, threshold, valid, ok := scorerFor(script, s)
	if !ok {
		return Result{}, false
	}
	return Result{Script: script, Confidence: d.Confidence, Score: score, Threshold: threshold, IsValid: valid}, true
}
