package seeded

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntBetween(t *testing.T) {
	v := IntBetween(10, 20, 1)
	assert.Equal(t, 17, v)

	for seed := 1.0; seed <= 2000; seed++ {
		v := IntBetween(10, 20, seed)
		assert.GreaterOrEqual(t, v, 10)
		assert.LessOrEqual(t, v, 20)
	}
}

func TestIntUpTo(t *testing.T) {
	assert.Equal(t, 14, IntUpTo(20, 1))

	for seed := 1.0; seed <= 2000; seed++ {
		v := IntUpTo(20, seed)
		assert.GreaterOrEqual(t, v, 0)
		assert.LessOrEqual(t, v, 20)
	}
}

func TestIntUpToIsIntBetweenFromZero(t *testing.T) {
	for _, seed := range []float64{1, 2, 3.25, 99, 1e9} {
		for _, max := range []int{0, 1, 5, 100} {
			assert.Equal(t, IntBetween(0, max, seed), IntUpTo(max, seed))
		}
	}
}

func TestIntBetweenNegativeRange(t *testing.T) {
	for seed := 1.0; seed <= 500; seed++ {
		v := IntBetween(-5, -1, seed)
		assert.GreaterOrEqual(t, v, -5)
		assert.LessOrEqual(t, v, -1)
	}
}

func TestIntBetweenSingleValue(t *testing.T) {
	assert.Equal(t, 4, IntBetween(4, 4, 123))
	assert.Equal(t, 0, IntUpTo(0, 123))
}

func TestIntegerTypes(t *testing.T) {
	assert.Equal(t, int64(17), IntBetween(int64(10), int64(20), 1))
	assert.Equal(t, uint8(14), IntUpTo(uint8(20), 1))
	assert.Equal(t, uint32(17), IntBetween[uint32](10, 20, 1))
}

func TestIntegerTypesNearLimits(t *testing.T) {
	uint8Results := map[uint8]bool{}
	for seed := 1.0; seed <= 200; seed++ {
		v := IntBetween(int8(-100), int8(100), seed)
		assert.GreaterOrEqual(t, v, int8(-100), "seed %v", seed)
		assert.LessOrEqual(t, v, int8(100), "seed %v", seed)

		w := IntBetween(int8(math.MinInt8), int8(math.MaxInt8), seed)
		assert.Equal(t, int(IntBetween(math.MinInt8, math.MaxInt8, seed)), int(w), "seed %v", seed)

		uint8Results[IntUpTo(uint8(255), seed)] = true
	}
	assert.Greater(t, len(uint8Results), 100, "full uint8 range must not collapse")

	// Same arithmetic as int for any type that can hold the range.
	assert.Equal(t, int8(IntBetween(-100, 100, 1)), IntBetween(int8(-100), int8(100), 1))
	assert.Equal(t, uint8(IntUpTo(255, 1)), IntUpTo(uint8(255), 1))
}
