/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: thresholds.go
Description: Length-indexed acceptance thresholds for the trigram scorer,
reproduced bit-for-bit from the reference analyzer's threshold table.
*/

package model

// ngThresholds maps string length (in code points) to the minimum mean
// log-probability a string of that length must reach to be accepted.
// Lengths 0-3 are pinned at 10.0, an unreachable score, so anything
// shorter than the minimum never passes regardless of content.
var ngThresholds = [101]float64{
	10.0, 10.0, 10.0, 10.0, -2.71, -3.26, -3.52, -3.84, -4.23, -4.49,
	-4.55, -4.74, -4.88, -5.03, -5.06, -5.2, -5.24, -5.29, -5.29, -5.42,
	-5.51, -5.52, -5.53, -5.6, -5.6, -5.62, -5.7, -5.7, -5.78, -5.79,
	-5.81, -5.81, -5.84, -5.85, -5.86, -5.88, -5.92, -5.92, -5.93, -5.95,
	-5.99, -6.0, -6.0, -6.0, -6.02, -6.02, -6.02, -6.05, -6.06, -6.07,
	-6.08, -6.1, -6.12, -6.12, -6.13, -6.13, -6.13, -6.13, -6.13, -6.13,
	-6.13, -6.15, -6.15, -6.16, -6.16, -6.16, -6.17, -6.19, -6.19, -6.21,
	-6.21, -6.21, -6.21, -6.21, -6.21, -6.25, -6.25, -6.25, -6.25, -6.25,
	-6.25, -6.25, -6.26, -6.26, -6.26, -6.26, -6.26, -6.26, -6.26, -6.26,
	-6.26, -6.29, -6.29, -6.3, -6.3, -6.3, -6.3, -6.3, -6.3, -6.3, -6.3,
}

// MaxThreshold is the acceptance threshold applied to any string longer
// than the indexed table.
const MaxThreshold = -6.3

// ThresholdForLength returns the acceptance threshold for a string of the
// given length in code points.
func ThresholdForLength(length int) float64 {
	if length < 0 {
		length = 0
	}
	if length >= len(ngThresholds) {
		return MaxThreshold
	}
	return ngThresholds[length]
}
