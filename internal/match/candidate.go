package match

import (
	"sort"
)

// Candidate is a field name scored against the name being looked up.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is ordered by descending score, ties broken by name.
type CandidateList []Candidate

// MinSuggestScore is the similarity below which a name is not suggested.
const MinSuggestScore = 0.5

// RankCandidates scores every name in candidates against name.
func RankCandidates(name string, candidates []string) CandidateList {
	list := make(CandidateList, 0, len(candidates))

	for _, c := range candidates {
		list = append(list, Candidate{Name: c, Score: IdentSimilarity(name, c)})
	}

	sort.Sort(list)

	return list
}

// Suggest returns up to limit candidate names that look like name.
func Suggest(name string, candidates []string, limit int) []string {
	var out []string

	for _, c := range RankCandidates(name, candidates).AboveThreshold(MinSuggestScore).Top(limit) {
		out = append(out, c.Name)
	}

	return out
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

	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n < 0 || n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// AboveThreshold returns candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}
