package analyzer

import "sort"

// TopN returns the n options with the lowest profit score, ascending. The
// sort is stable, so ties keep their traversal order. The input slice is not
// modified; fewer than n inputs come back whole.
func TopN(options []RankedOption, n int) []RankedOption {
	ranked := make([]RankedOption, len(options))
	copy(ranked, options)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ProfitScore < ranked[j].ProfitScore
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
