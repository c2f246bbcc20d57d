package similarity

import "strings"

// minTokenLength filters out short function words before comparison.
const minTokenLength = 4

// tokenize splits text into comparable tokens: lowercased, punctuation
// trimmed, and shorter tokens dropped.
func tokenize(text string) map[string]bool {
	tokens := make(map[string]bool)
	for _, word := range strings.Fields(text) {
		cleaned := strings.ToLower(strings.Trim(word, ".,!?;:'\"-()[]{}"))
		if len(cleaned) >= minTokenLength {
			tokens[cleaned] = true
		}
	}
	return tokens
}

// Jaccard computes the Jaccard similarity of two texts over their token
// sets: intersection size over union size. Two texts with no usable tokens
// score 0.
func Jaccard(a, b string) float64 {
	tokensA := tokenize(a)
	tokensB := tokenize(b)

	if len(tokensA) == 0 && len(tokensB) == 0 {
		return 0
	}

	intersection := 0
	for token := range tokensA {
		if tokensB[token] {
			intersection++
		}
	}

	union := len(tokensA) + len(tokensB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
