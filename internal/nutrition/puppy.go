package nutrition

import "math"

// Growth phase boundaries in months.
const (
	earlyGrowthMonths = 4
	lateGrowthMonths  = 8
)

const (
	factorEarlyGrowth = 2.2
	factorLateGrowth  = 1.5

	// adultWeightMultiplier estimates adult weight when the owner does not know it.
	adultWeightMultiplier = 2.0
)

// Daily food portion as a fraction of body weight for growing dogs.
const (
	puppyPortionEarly = 0.05
	puppyPortionMid   = 0.04
	puppyPortionLate  = 0.03
)

// DefaultEstimatedAdultWeight returns the adult weight assumed for a puppy whose
// expected adult weight is unknown: twice its current weight.
func DefaultEstimatedAdultWeight(weightKg float64) (float64, error) {
	if err := validateWeight(weightKg); err != nil {
		return 0, err
	}
	return weightKg * adultWeightMultiplier, nil
}

// PuppyMERFactor returns 2.2 while the puppy is below half its adult weight or
// younger than four months, and 1.5 afterwards. Either condition is sufficient.
func PuppyMERFactor(weightKg float64, ageMonths int, estimatedAdultWeightKg float64) float64 {
	halfAdult := estimatedAdultWeightKg * 0.5
	if weightKg < halfAdult || ageMonths < earlyGrowthMonths {
		return factorEarlyGrowth
	}
	return factorLateGrowth
}

// PuppyMER returns the energy requirement of a growing dog, rounded to whole kcal/day.
//
// estimatedAdultWeightKg is required. It is never defaulted here; use
// DefaultEstimatedAdultWeight before calling when the adult weight is unknown.
func PuppyMER(weightKg float64, ageMonths int, estimatedAdultWeightKg float64) (int, error) {
	if err := validateWeight(weightKg); err != nil {
		return 0, err
	}
	if err := validateAge(ageMonths); err != nil {
		return 0, err
	}
	if math.IsNaN(estimatedAdultWeightKg) || math.IsInf(estimatedAdultWeightKg, 0) || estimatedAdultWeightKg <= 0 {
		return 0, ErrMissingAdultWeight
	}
	rer, err := RER(weightKg)
	if err != nil {
		return 0, err
	}
	return roundInt(rer * PuppyMERFactor(weightKg, ageMonths, estimatedAdultWeightKg)), nil
}

// PuppyPortionFraction returns the share of body weight fed per day at the given age.
func PuppyPortionFraction(ageMonths int) float64 {
	switch {
	case ageMonths < earlyGrowthMonths:
		return puppyPortionEarly
	case ageMonths < lateGrowthMonths:
		return puppyPortionMid
	default:
		return puppyPortionLate
	}
}

// PuppyGramsPerDay returns the daily food target of a growing dog in whole grams.
func PuppyGramsPerDay(weightKg float64, ageMonths int) (int, error) {
	if err := validateWeight(weightKg); err != nil {
		return 0, err
	}
	if err := validateAge(ageMonths); err != nil {
		return 0, err
	}
	return roundInt(weightKg * 1000 * PuppyPortionFraction(ageMonths)), nil
}
