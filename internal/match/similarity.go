package match

import "github.com/agnivade/levenshtein"

// Similarity returns a score between 0 and 1 for two ids after normalization.
// 1 means the ids normalize to the same string.
func Similarity(a, b string) float64 {
	na, nb := NormalizeID(a), NormalizeID(b)
	if na == nb {
		return 1
	}

	longest := max(len([]rune(na)), len([]rune(nb)))
	if longest == 0 {
		return 1
	}

	return 1 - float64(levenshtein.ComputeDistance(na, nb))/float64(longest)
}
