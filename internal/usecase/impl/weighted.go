package impl

import (
	"math/rand"
	"sort"

	"github.com/shopspring/decimal"
)

// weightedVariant is one candidate of a weighted random choice.
type weightedVariant struct {
	name   string
	weight int
}

// sortedVariants flattens a name→weight map into a slice ordered by
// name. Map iteration order is random in Go; sorting keeps draws
// reproducible for a fixed seed. Zero-weight variants are dropped.
func sortedVariants(weights map[string]int) []weightedVariant {
	variants := make([]weightedVariant, 0, len(weights))
	for name, weight := range weights {
		if weight <= 0 {
			continue
		}
		variants = append(variants, weightedVariant{name: name, weight: weight})
	}
	sort.Slice(variants, func(i, j int) bool {
		return variants[i].name < variants[j].name
	})

	return variants
}

// pickVariant draws one variant with probability proportional to its
// weight. variants must be non-empty with positive weights.
func pickVariant(rng *rand.Rand, variants []weightedVariant) string {
	total := 0
	for _, v := range variants {
		total += v.weight
	}

	n := rng.Intn(total)
	for _, v := range variants {
		n -= v.weight
		if n < 0 {
			return v.name
		}
	}

	// Unreachable with positive weights.
	return variants[len(variants)-1].name
}

// sortedCoupons flattens the coupon map into a code-ordered slice for
// the same determinism reason as sortedVariants.
func sortedCoupons(rates map[string]float64) []coupon {
	coupons := make([]coupon, 0, len(rates))
	for code, rate := range rates {
		coupons = append(coupons, coupon{code: code, rate: decimal.NewFromFloat(rate)})
	}
	sort.Slice(coupons, func(i, j int) bool {
		return coupons[i].code < coupons[j].code
	})

	return coupons
}
