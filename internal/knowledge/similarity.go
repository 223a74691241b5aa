package knowledge

import "strings"

// similarity scores two strings on a 0–1 scale using a cheap lexical
// heuristic: exact match, containment, then word-overlap where two words
// match when either is a substring of the other. No embeddings, no
// stemming; fast, deterministic, and good enough to bias prompt context.
func (c Config) similarity(a, b string) float64 {
	s1 := strings.ToLower(a)
	s2 := strings.ToLower(b)

	if s1 == s2 {
		return c.ExactScore
	}
	if strings.Contains(s1, s2) || strings.Contains(s2, s1) {
		return c.SubstringScore
	}

	words1 := strings.Fields(s1)
	words2 := strings.Fields(s2)
	if len(words1) == 0 || len(words2) == 0 {
		return 0
	}

	matchCount := 0
	for _, w := range words1 {
		for _, v := range words2 {
			if strings.Contains(v, w) || strings.Contains(w, v) {
				matchCount++
				break
			}
		}
	}

	denom := len(words1)
	if len(words2) > denom {
		denom = len(words2)
	}
	return float64(matchCount) / float64(denom)
}
