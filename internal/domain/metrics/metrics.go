// Package metrics holds the derived-field formulas for production records.
// Every function is pure and deterministic; results are computed once at
// write time and stored, so changing a formula here never rewrites history.
package metrics

import "math"

// MilligramsPerPound is the unit conversion constant used across the
// operation's spreadsheets. Kept as the exact integer the formulas were
// calibrated with; do not substitute 453.592 * 1000.
const MilligramsPerPound = 453592

// LarvaeCount estimates the number of larvae in a tub from its weighed
// larvae mass, the larvae share of tub mass, and the per-larva weight in
// milligrams. The result is floor-truncated. A non-positive larva weight
// yields 0 instead of dividing by zero.
func LarvaeCount(lbLarvae, larvaPct, larvaWeight int) int {
	if larvaWeight <= 0 {
		return 0
	}
	larvaeMassMg := float64(lbLarvae) * (float64(larvaPct) / 100) * MilligramsPerPound
	return int(math.Floor(larvaeMassMg / float64(larvaWeight)))
}

// FeedPerLarvae returns milligrams of feed per larva, rounded half-up to
// one decimal. Zero larvae yields 0.
func FeedPerLarvae(lbFeed float64, larvaeCount int) float64 {
	if larvaeCount <= 0 {
		return 0
	}
	return Round1(lbFeed * MilligramsPerPound / float64(larvaeCount))
}

// WaterFeedRatio returns pounds of water per pound of feed, rounded half-up
// to one decimal. Zero feed yields 0.
func WaterFeedRatio(lbWater, lbFeed float64) float64 {
	if lbFeed <= 0 {
		return 0
	}
	return Round1(lbWater / lbFeed)
}

// YieldPercentage returns the dried-mass yield of a drying run as a
// percentage of the live input mass, rounded to the store's declared
// precision of two decimals. Callers must ensure tubsLiveLarvae and
// lbLarvaePerTub are positive before calling.
func YieldPercentage(lbDriedLarvae float64, tubsLiveLarvae int, lbLarvaePerTub float64) float64 {
	return Round2(lbDriedLarvae / (float64(tubsLiveLarvae) * lbLarvaePerTub) * 100)
}

// Round1 rounds half-up to one decimal place.
func Round1(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}

// Round2 rounds half-up to two decimal places.
func Round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
