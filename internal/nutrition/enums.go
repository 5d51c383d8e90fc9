package nutrition

import (
	"fmt"
	"strings"
)

// Objective is the owner's feeding goal for the dog.
type Objective string

const (
	ObjectiveMaintain      Objective = "maintain"
	ObjectiveLoseWeight    Objective = "lose_weight"
	ObjectiveGainWeight    Objective = "gain_weight"
	ObjectiveHealthyEating Objective = "healthy_eating"
)

var objectiveAliases = map[string]Objective{
	"maintain":             ObjectiveMaintain,
	"manter_peso":          ObjectiveMaintain,
	"maintain_peso":        ObjectiveMaintain,
	"lose_weight":          ObjectiveLoseWeight,
	"perder_peso":          ObjectiveLoseWeight,
	"gain_weight":          ObjectiveGainWeight,
	"ganhar_peso":          ObjectiveGainWeight,
	"healthy_eating":       ObjectiveHealthyEating,
	"alimentacao_saudavel": ObjectiveHealthyEating,
}

// ParseObjective converts a canonical or Portuguese objective value.
func ParseObjective(s string) (Objective, error) {
	if o, ok := objectiveAliases[normalize(s)]; ok {
		return o, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownObjective, s)
}

// IsValid reports whether o is one of the canonical objectives.
func (o Objective) IsValid() bool {
	switch o {
	case ObjectiveMaintain, ObjectiveLoseWeight, ObjectiveGainWeight, ObjectiveHealthyEating:
		return true
	}
	return false
}

// BodyCondition is the dog's body condition as assessed by the owner.
type BodyCondition string

const (
	BodyConditionThin       BodyCondition = "thin"
	BodyConditionIdeal      BodyCondition = "ideal"
	BodyConditionOverweight BodyCondition = "overweight"
)

var bodyConditionAliases = map[string]BodyCondition{
	"thin":       BodyConditionThin,
	"magro":      BodyConditionThin,
	"ideal":      BodyConditionIdeal,
	"overweight": BodyConditionOverweight,
	"sobrepeso":  BodyConditionOverweight,
}

// ParseBodyCondition converts a canonical or Portuguese body condition value.
func ParseBodyCondition(s string) (BodyCondition, error) {
	if c, ok := bodyConditionAliases[normalize(s)]; ok {
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBodyCondition, s)
}

// IsValid reports whether c is one of the canonical body conditions.
func (c BodyCondition) IsValid() bool {
	switch c {
	case BodyConditionThin, BodyConditionIdeal, BodyConditionOverweight:
		return true
	}
	return false
}

// ActivityLevel is the dog's daily activity level.
type ActivityLevel string

const (
	ActivityLow      ActivityLevel = "low"
	ActivityModerate ActivityLevel = "moderate"
	ActivityHigh     ActivityLevel = "high"
)

var activityAliases = map[string]ActivityLevel{
	"low":      ActivityLow,
	"baixa":    ActivityLow,
	"moderate": ActivityModerate,
	"moderada": ActivityModerate,
	"high":     ActivityHigh,
	"alta":     ActivityHigh,
}

// ParseActivityLevel converts a canonical or Portuguese activity level value.
func ParseActivityLevel(s string) (ActivityLevel, error) {
	if a, ok := activityAliases[normalize(s)]; ok {
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownActivityLevel, s)
}

// IsValid reports whether a is one of the canonical activity levels.
func (a ActivityLevel) IsValid() bool {
	switch a {
	case ActivityLow, ActivityModerate, ActivityHigh:
		return true
	}
	return false
}

// Stage is the growth stage a plan was computed for.
type Stage string

const (
	StageAdult Stage = "adult"
	StagePuppy Stage = "puppy"
)

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
