package nutrition

import "time"

// DefaultPuppyAgeLimitMonths is the age from which BuildPlan treats a dog as adult.
const DefaultPuppyAgeLimitMonths = 12

// AdultInput holds the attributes needed to plan an adult dog's diet.
type AdultInput struct {
	WeightKg  float64
	Objective Objective
	Condition BodyCondition
	Activity  ActivityLevel
	// AgeMonths is optional and only used for the meal frequency label.
	AgeMonths *int
}

// PuppyInput holds the attributes needed to plan a growing dog's diet.
type PuppyInput struct {
	WeightKg  float64
	AgeMonths int
	// EstimatedAdultWeightKg is optional; when nil it is defaulted with
	// DefaultEstimatedAdultWeight and the plan is flagged accordingly.
	EstimatedAdultWeightKg *float64
}

// Profile is everything the dog wizard knows about a dog.
type Profile struct {
	WeightKg               float64
	Objective              Objective
	Condition              BodyCondition
	Activity               ActivityLevel
	BirthDate              *time.Time
	EstimatedAdultWeightKg *float64
}

// Plan is a computed daily feeding target.
type Plan struct {
	Stage     Stage
	WeightKg  float64
	AgeMonths *int

	// Puppy plans only.
	EstimatedAdultWeightKg float64
	AdultWeightDefaulted   bool

	RER         float64
	Factor      float64
	KcalPerDay  int
	GramsPerDay int
	MealsPerDay string
}

// AdultPlan chains RER, MER and GramsPerDay for an adult dog.
func AdultPlan(in AdultInput) (Plan, error) {
	if err := ValidateAttributes(in.Objective, in.Condition, in.Activity); err != nil {
		return Plan{}, err
	}
	rer, err := RER(in.WeightKg)
	if err != nil {
		return Plan{}, err
	}
	kcal, err := MER(rer, in.Objective, in.Condition, in.Activity)
	if err != nil {
		return Plan{}, err
	}
	grams, err := GramsPerDay(in.WeightKg, in.Objective)
	if err != nil {
		return Plan{}, err
	}

	plan := Plan{
		Stage:       StageAdult,
		WeightKg:    in.WeightKg,
		RER:         rer,
		Factor:      MERFactor(in.Objective, in.Condition, in.Activity),
		KcalPerDay:  kcal,
		GramsPerDay: grams,
	}
	if in.AgeMonths != nil {
		meals, err := SuggestedMealsPerDay(*in.AgeMonths)
		if err != nil {
			return Plan{}, err
		}
		age := *in.AgeMonths
		plan.AgeMonths = &age
		plan.MealsPerDay = meals
	}
	return plan, nil
}

// PuppyPlan chains PuppyMER, PuppyGramsPerDay and SuggestedMealsPerDay for a growing dog.
func PuppyPlan(in PuppyInput) (Plan, error) {
	if err := validateWeight(in.WeightKg); err != nil {
		return Plan{}, err
	}
	if err := validateAge(in.AgeMonths); err != nil {
		return Plan{}, err
	}

	var adultWeight float64
	defaulted := in.EstimatedAdultWeightKg == nil
	if defaulted {
		w, err := DefaultEstimatedAdultWeight(in.WeightKg)
		if err != nil {
			return Plan{}, err
		}
		adultWeight = w
	} else {
		adultWeight = *in.EstimatedAdultWeightKg
	}

	kcal, err := PuppyMER(in.WeightKg, in.AgeMonths, adultWeight)
	if err != nil {
		return Plan{}, err
	}
	grams, err := PuppyGramsPerDay(in.WeightKg, in.AgeMonths)
	if err != nil {
		return Plan{}, err
	}
	meals, err := SuggestedMealsPerDay(in.AgeMonths)
	if err != nil {
		return Plan{}, err
	}
	rer, err := RER(in.WeightKg)
	if err != nil {
		return Plan{}, err
	}

	age := in.AgeMonths
	return Plan{
		Stage:                  StagePuppy,
		WeightKg:               in.WeightKg,
		AgeMonths:              &age,
		EstimatedAdultWeightKg: adultWeight,
		AdultWeightDefaulted:   defaulted,
		RER:                    rer,
		Factor:                 PuppyMERFactor(in.WeightKg, in.AgeMonths, adultWeight),
		KcalPerDay:             kcal,
		GramsPerDay:            grams,
		MealsPerDay:            meals,
	}, nil
}

// BuildPlan derives the dog's age at now and picks the puppy or adult path.
// Dogs of unknown age are planned as adults. A non-positive puppyAgeLimitMonths
// falls back to DefaultPuppyAgeLimitMonths.
func BuildPlan(p Profile, now time.Time, puppyAgeLimitMonths int) (Plan, error) {
	if err := ValidateAttributes(p.Objective, p.Condition, p.Activity); err != nil {
		return Plan{}, err
	}
	if puppyAgeLimitMonths <= 0 {
		puppyAgeLimitMonths = DefaultPuppyAgeLimitMonths
	}

	age, known := AgeInMonths(p.BirthDate, now)
	if known && age < puppyAgeLimitMonths {
		return PuppyPlan(PuppyInput{
			WeightKg:               p.WeightKg,
			AgeMonths:              age,
			EstimatedAdultWeightKg: p.EstimatedAdultWeightKg,
		})
	}

	in := AdultInput{
		WeightKg:  p.WeightKg,
		Objective: p.Objective,
		Condition: p.Condition,
		Activity:  p.Activity,
	}
	if known {
		in.AgeMonths = &age
	}
	return AdultPlan(in)
}

// ValidateAttributes rejects non-canonical objective, body condition and activity values.
// Puppies do not use them, but a profile is validated the same way at any age.
func ValidateAttributes(objective Objective, condition BodyCondition, activity ActivityLevel) error {
	if !objective.IsValid() {
		return ErrUnknownObjective
	}
	if !condition.IsValid() {
		return ErrUnknownBodyCondition
	}
	if !activity.IsValid() {
		return ErrUnknownActivityLevel
	}
	return nil
}
