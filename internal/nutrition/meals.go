package nutrition

// Meal frequency labels shown to owners. The breakpoints match PuppyGramsPerDay.
const (
	MealsEarlyGrowth = "3-4 refeições/dia"
	MealsLateGrowth  = "3 refeições/dia"
	MealsAdult       = "2-3 refeições/dia"
)

// SuggestedMealsPerDay returns the meal frequency label for the given age.
func SuggestedMealsPerDay(ageMonths int) (string, error) {
	if err := validateAge(ageMonths); err != nil {
		return "", err
	}
	switch {
	case ageMonths < earlyGrowthMonths:
		return MealsEarlyGrowth, nil
	case ageMonths < lateGrowthMonths:
		return MealsLateGrowth, nil
	default:
		return MealsAdult, nil
	}
}
