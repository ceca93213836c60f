package patterns

import "unicode/utf8"

const (
	fallbackConfidence = 0.3

	shortMatchLength  = 5
	shortMatchPenalty = 0.7
	argumentsBonus    = 1.1
)

// confidence scores a catalog match. Both adjustments are multiplicative so
// their order does not matter.
func confidence(family Family, m lineMatch) float64 {
	score := family.baseConfidence()

	if utf8.RuneCountInString(m.text) < shortMatchLength {
		score *= shortMatchPenalty
	}

	if m.args != "" {
		score *= argumentsBonus
	}

	return min(1, score)
}
