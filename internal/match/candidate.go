package match

import (
	"sort"
)

// MinSuggestionScore is the similarity a candidate needs to be suggested.
const MinSuggestionScore = 0.5

// Candidate is a known name scored against an unknown one.
type Candidate struct {
	Name  string
	Score float64 // normalized similarity (0-1)
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates scores every known name against name.
// Returns candidates sorted by score (descending), then by name.
func RankCandidates(name string, known []string) CandidateList {
	candidates := make(CandidateList, 0, len(known))
	for _, k := range known {
		candidates = append(candidates, Candidate{
			Name:  k,
			Score: IdentSimilarity(name, k),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}

		return candidates[i].Name < candidates[j].Name
	})

	return candidates
}

// Top returns the top n candidates.
func (cl CandidateList) Top(n int) CandidateList {
	if n >= len(cl) {
		return cl
	}

	return cl[:n]
}

// AboveThreshold returns candidates with score at or above the threshold.
func (cl CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, c := range cl {
		if c.Score >= threshold {
			result = append(result, c)
		}
	}

	return result
}

// Names returns the candidate names in order.
func (cl CandidateList) Names() []string {
	names := make([]string, len(cl))
	for i, c := range cl {
		names[i] = c.Name
	}

	return names
}

// Suggest returns up to two known names close enough to name to be offered
// as "did you mean" hints.
func Suggest(name string, known []string) []string {
	return RankCandidates(name, known).AboveThreshold(MinSuggestionScore).Top(2).Names()
}
