package impl

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortedVariants_DeterministicOrder(t *testing.T) {
	weights := map[string]int{"PayPal": 5, "Credit Card": 75, "COD": 5, "Zero": 0}

	variants := sortedVariants(weights)
	require.Len(t, variants, 3)
	assert.Equal(t, "COD", variants[0].name)
	assert.Equal(t, "Credit Card", variants[1].name)
	assert.Equal(t, "PayPal", variants[2].name)
}

func TestPickVariant_ApproximatesWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	variants := sortedVariants(map[string]int{"A": 3, "B": 1})

	counts := map[string]int{}
	const samples = 100000
	for i := 0; i < samples; i++ {
		counts[pickVariant(rng, variants)]++
	}

	require.Equal(t, samples, counts["A"]+counts["B"])

	ratio := float64(counts["A"]) / float64(counts["B"])
	assert.InDelta(t, 3.0, ratio, 0.15, "observed ratio %v", ratio)
}

func TestPickVariant_SingleVariant(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	variants := sortedVariants(map[string]int{"only": 7})

	for i := 0; i < 100; i++ {
		assert.Equal(t, "only", pickVariant(rng, variants))
	}
}

func TestSortedCoupons(t *testing.T) {
	coupons := sortedCoupons(map[string]float64{
		"FRIDAYFIVEOFF": 0.05,
		"BF15DISCOUNT":  0.15,
	})

	require.Len(t, coupons, 2)
	assert.Equal(t, "BF15DISCOUNT", coupons[0].code)
	assert.Equal(t, "FRIDAYFIVEOFF", coupons[1].code)
	assert.Equal(t, "0.15", coupons[0].rate.String())
}
