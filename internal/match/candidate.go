package match

import "sort"

// Confidence thresholds used by Resolve and Suggest.
const (
	// DefaultMinScore is the minimum similarity for a suggestion.
	DefaultMinScore = 0.6
	// DefaultMinGap is the score gap the best candidate needs over the runner-up
	// to be picked automatically.
	DefaultMinGap = 0.15
)

// Candidate is a known id scored against some input.
type Candidate struct {
	ID    string
	Score float64
}

// CandidateList is sorted by descending score, then by id.
type CandidateList []Candidate

// Rank scores every known id against input.
func Rank(input string, known []string) CandidateList {
	candidates := make(CandidateList, 0, len(known))
	for _, id := range known {
		candidates = append(candidates, Candidate{ID: id, Score: Similarity(input, id)})
	}

	sort.Sort(candidates)

	return candidates
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].ID < c[j].ID
}

// Top returns the first n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil if there are none.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// AboveThreshold returns the candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

// IDs returns the candidate ids in rank order.
func (c CandidateList) IDs() []string {
	ids := make([]string, len(c))
	for i, cand := range c {
		ids[i] = cand.ID
	}

	return ids
}

// Resolve maps input to a known id. An exact match always wins; otherwise the
// best candidate is returned only if it normalizes to the same string as input
// and no other id does.
func Resolve(input string, known []string) (string, bool) {
	for _, id := range known {
		if id == input {
			return id, true
		}
	}

	exact := Rank(input, known).AboveThreshold(1)
	if len(exact) != 1 {
		return "", false
	}

	return exact[0].ID, true
}

// Suggest returns up to limit known ids that look like input, best first.
func Suggest(input string, known []string, limit int) []string {
	return Rank(input, known).AboveThreshold(DefaultMinScore).Top(limit).IDs()
}

// Confident returns the best candidate when it clears DefaultMinScore and
// leads the runner-up by at least DefaultMinGap.
func (c CandidateList) Confident() *Candidate {
	best := c.Best()
	if best == nil || best.Score < DefaultMinScore {
		return nil
	}

	if len(c) > 1 && c[0].Score-c[1].Score < DefaultMinGap {
		return nil
	}

	return best
}
