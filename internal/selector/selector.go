package selector

import (
	"sort"

	"github.com/rickgao/options-data/internal/model"
)

// Select picks the just-out-of-the-money call for a ticker: the lowest strike
// strictly above currentPrice within the soonest expiration date present in
// contracts. The second return value is false when no contract qualifies.
//
// The input slice is not modified.
func Select(contracts []model.OptionContract, currentPrice float64) (model.OptionContract, bool) {
	if len(contracts) == 0 {
		return model.OptionContract{}, false
	}

	groups := groupByExpiration(contracts)

	expirations := make([]string, 0, len(groups))
	for exp := range groups {
		expirations = append(expirations, exp)
	}
	// Expiration dates are "2006-01-02" strings, so lexicographic order is
	// chronological order.
	sort.Strings(expirations)

	nearest := groups[expirations[0]]
	sort.SliceStable(nearest, func(i, j int) bool {
		return nearest[i].StrikePrice < nearest[j].StrikePrice
	})

	for _, c := range nearest {
		if c.StrikePrice > currentPrice {
			return c, true
		}
	}

	// All strikes in the nearest expiration are at or below the current
	// price. Later expirations are deliberately not considered.
	return model.OptionContract{}, false
}

// groupByExpiration buckets contracts by expiration date, copying into fresh
// slices so sorting never touches the caller's listing.
func groupByExpiration(contracts []model.OptionContract) map[string][]model.OptionContract {
	groups := make(map[string][]model.OptionContract)
	for _, c := range contracts {
		groups[c.ExpirationDate] = append(groups[c.ExpirationDate], c)
	}
	return groups
}
