package nutrition

import "math"

const (
	rerCoefficient = 70.0
	rerExponent    = 0.75
)

// MER factors, in cascade order.
const (
	factorWeightLoss   = 1.0
	factorWeightGain   = 1.7
	factorLowActivity  = 1.4
	factorHighActivity = 1.8
	factorDefault      = 1.6
)

// Daily food portion as a fraction of body weight for adult dogs.
const (
	portionLoseWeight = 0.02
	portionGainWeight = 0.03
	portionDefault    = 0.025
)

// RER returns the resting energy requirement in kcal/day: 70 × weightKg^0.75.
func RER(weightKg float64) (float64, error) {
	if err := validateWeight(weightKg); err != nil {
		return 0, err
	}
	return rerCoefficient * math.Pow(weightKg, rerExponent), nil
}

// MERFactor selects the maintenance multiplier applied to the RER.
//
// The rules form a priority cascade and the first match wins: an overweight dog
// whose objective is to gain weight still gets the weight loss factor.
func MERFactor(objective Objective, condition BodyCondition, activity ActivityLevel) float64 {
	switch {
	case objective == ObjectiveLoseWeight || condition == BodyConditionOverweight:
		return factorWeightLoss
	case objective == ObjectiveGainWeight || condition == BodyConditionThin:
		return factorWeightGain
	case objective == ObjectiveMaintain || objective == ObjectiveHealthyEating:
		switch activity {
		case ActivityLow:
			return factorLowActivity
		case ActivityHigh:
			return factorHighActivity
		default:
			return factorDefault
		}
	default:
		return factorDefault
	}
}

// MER returns the maintenance energy requirement of an adult dog, rounded to whole kcal/day.
func MER(rer float64, objective Objective, condition BodyCondition, activity ActivityLevel) (int, error) {
	if math.IsNaN(rer) || math.IsInf(rer, 0) || rer <= 0 {
		return 0, ErrInvalidRER
	}
	return roundInt(rer * MERFactor(objective, condition, activity)), nil
}

// PortionFraction returns the share of body weight fed per day for the objective.
func PortionFraction(objective Objective) float64 {
	switch objective {
	case ObjectiveLoseWeight:
		return portionLoseWeight
	case ObjectiveGainWeight:
		return portionGainWeight
	default:
		return portionDefault
	}
}

// GramsPerDay returns the daily food target of an adult dog in whole grams.
func GramsPerDay(weightKg float64, objective Objective) (int, error) {
	if err := validateWeight(weightKg); err != nil {
		return 0, err
	}
	return roundInt(weightKg * 1000 * PortionFraction(objective)), nil
}

func validateWeight(weightKg float64) error {
	if math.IsNaN(weightKg) || math.IsInf(weightKg, 0) || weightKg <= 0 {
		return ErrInvalidWeight
	}
	return nil
}

func validateAge(ageMonths int) error {
	if ageMonths < 0 {
		return ErrInvalidAge
	}
	return nil
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
