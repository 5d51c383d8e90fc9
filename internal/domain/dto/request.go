// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// Request DTOs keep the wire format of the mobile app and convert it into
// nutrition inputs, reporting the first rejected field as a ValidationError.
package dto

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/guttosm/feeding-service/internal/i18n"
	"github.com/guttosm/feeding-service/internal/nutrition"
)

// BirthDateLayout is the accepted birth_date format.
const BirthDateLayout = "2006-01-02"

// ValidationError represents a field validation error.
// Key is the i18n key of the user-facing message.
type ValidationError struct {
	Field   string
	Message string
	Key     string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrWeightRequired is returned when weight_kg is missing.
	ErrWeightRequired = &ValidationError{Field: "weight_kg", Message: "is required", Key: i18n.ErrKeyWeightRequired}
	// ErrInvalidWeight is returned when weight_kg is not a positive number.
	ErrInvalidWeight = &ValidationError{Field: "weight_kg", Message: "must be greater than zero", Key: i18n.ErrKeyInvalidWeight}
	// ErrInvalidObjective is returned for an unknown objective.
	ErrInvalidObjective = &ValidationError{Field: "objective", Message: "unknown value", Key: i18n.ErrKeyInvalidObjective}
	// ErrInvalidBodyCondition is returned for an unknown body_condition.
	ErrInvalidBodyCondition = &ValidationError{Field: "body_condition", Message: "unknown value", Key: i18n.ErrKeyInvalidBodyCondition}
	// ErrInvalidActivityLevel is returned for an unknown activity_level.
	ErrInvalidActivityLevel = &ValidationError{Field: "activity_level", Message: "unknown value", Key: i18n.ErrKeyInvalidActivityLevel}
	// ErrInvalidAgeMonths is returned when age_months is missing or negative.
	ErrInvalidAgeMonths = &ValidationError{Field: "age_months", Message: "must be zero or a positive integer", Key: i18n.ErrKeyInvalidAgeMonths}
	// ErrInvalidBirthDate is returned when birth_date is not YYYY-MM-DD.
	ErrInvalidBirthDate = &ValidationError{Field: "birth_date", Message: "must be formatted as YYYY-MM-DD", Key: i18n.ErrKeyInvalidBirthDate}
	// ErrInvalidEstimatedAdultWeight is returned when estimated_adult_weight_kg is not positive.
	ErrInvalidEstimatedAdultWeight = &ValidationError{
		Field:   "estimated_adult_weight_kg",
		Message: "must be greater than zero",
		Key:     i18n.ErrKeyInvalidEstimatedAdultWeight,
	}
	// ErrInvalidDogID is returned when the dog id path parameter is blank.
	ErrInvalidDogID = &ValidationError{Field: "dog_id", Message: "is required", Key: i18n.ErrKeyInvalidDogID}
	// ErrInvalidLimit is returned when the history limit is not a positive integer.
	ErrInvalidLimit = &ValidationError{Field: "limit", Message: "must be a positive integer", Key: i18n.ErrKeyInvalidLimit}
)

// ValidationErrorFor maps a nutrition error to the matching request field error.
// It returns nil when err is not an input error.
func ValidationErrorFor(err error) *ValidationError {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return verr
	case errors.Is(err, nutrition.ErrInvalidWeight):
		return ErrInvalidWeight
	case errors.Is(err, nutrition.ErrInvalidAge):
		return ErrInvalidAgeMonths
	case errors.Is(err, nutrition.ErrUnknownObjective):
		return ErrInvalidObjective
	case errors.Is(err, nutrition.ErrUnknownBodyCondition):
		return ErrInvalidBodyCondition
	case errors.Is(err, nutrition.ErrUnknownActivityLevel):
		return ErrInvalidActivityLevel
	case errors.Is(err, nutrition.ErrMissingAdultWeight):
		return ErrInvalidEstimatedAdultWeight
	}
	return nil
}

// AdultFeedingRequest is the JSON body of the adult plan endpoint.
//
// @Description Attributes of an adult dog
// @Example {"weight_kg": 10, "objective": "maintain", "body_condition": "ideal", "activity_level": "moderate"}
type AdultFeedingRequest struct {
	WeightKg      *float64 `json:"weight_kg" example:"10"`
	Objective     string   `json:"objective" example:"maintain" enums:"maintain,lose_weight,gain_weight,healthy_eating"`
	BodyCondition string   `json:"body_condition" example:"ideal" enums:"thin,ideal,overweight"`
	ActivityLevel string   `json:"activity_level" example:"moderate" enums:"low,moderate,high"`
	// AgeMonths only selects the meal frequency label.
	AgeMonths *int `json:"age_months,omitempty" example:"36"`
} // @name AdultFeedingRequest

// ToInput validates the request and converts it into an AdultInput.
func (r *AdultFeedingRequest) ToInput() (nutrition.AdultInput, error) {
	weight, err := parseWeight(r.WeightKg)
	if err != nil {
		return nutrition.AdultInput{}, err
	}
	objective, condition, activity, err := parseAttributes(r.Objective, r.BodyCondition, r.ActivityLevel)
	if err != nil {
		return nutrition.AdultInput{}, err
	}
	if r.AgeMonths != nil && *r.AgeMonths < 0 {
		return nutrition.AdultInput{}, ErrInvalidAgeMonths
	}
	return nutrition.AdultInput{
		WeightKg:  weight,
		Objective: objective,
		Condition: condition,
		Activity:  activity,
		AgeMonths: r.AgeMonths,
	}, nil
}

// PuppyFeedingRequest is the JSON body of the puppy plan endpoint.
//
// @Description Attributes of a growing dog
// @Example {"weight_kg": 5, "age_months": 3, "estimated_adult_weight_kg": 20}
type PuppyFeedingRequest struct {
	WeightKg  *float64 `json:"weight_kg" example:"5"`
	AgeMonths *int     `json:"age_months" example:"3"`
	// EstimatedAdultWeightKg defaults to twice the current weight.
	EstimatedAdultWeightKg *float64 `json:"estimated_adult_weight_kg,omitempty" example:"20"`
} // @name PuppyFeedingRequest

// ToInput validates the request and converts it into a PuppyInput.
func (r *PuppyFeedingRequest) ToInput() (nutrition.PuppyInput, error) {
	weight, err := parseWeight(r.WeightKg)
	if err != nil {
		return nutrition.PuppyInput{}, err
	}
	if r.AgeMonths == nil || *r.AgeMonths < 0 {
		return nutrition.PuppyInput{}, ErrInvalidAgeMonths
	}
	if err := checkAdultWeight(r.EstimatedAdultWeightKg); err != nil {
		return nutrition.PuppyInput{}, err
	}
	return nutrition.PuppyInput{
		WeightKg:               weight,
		AgeMonths:              *r.AgeMonths,
		EstimatedAdultWeightKg: r.EstimatedAdultWeightKg,
	}, nil
}

// FeedingPlanRequest is the JSON body of the plan and feeding target endpoints.
// The stage is derived from the birth date.
//
// @Description Everything the dog wizard knows about a dog
// @Example {"weight_kg": 5, "objective": "maintain", "body_condition": "ideal", "activity_level": "high", "birth_date": "2025-01-10"}
type FeedingPlanRequest struct {
	WeightKg               *float64 `json:"weight_kg" example:"5"`
	Objective              string   `json:"objective" example:"maintain" enums:"maintain,lose_weight,gain_weight,healthy_eating"`
	BodyCondition          string   `json:"body_condition" example:"ideal" enums:"thin,ideal,overweight"`
	ActivityLevel          string   `json:"activity_level" example:"high" enums:"low,moderate,high"`
	BirthDate              string   `json:"birth_date,omitempty" example:"2025-01-10"`
	EstimatedAdultWeightKg *float64 `json:"estimated_adult_weight_kg,omitempty" example:"20"`
} // @name FeedingPlanRequest

// ToProfile validates the request and converts it into a Profile.
func (r *FeedingPlanRequest) ToProfile() (nutrition.Profile, error) {
	weight, err := parseWeight(r.WeightKg)
	if err != nil {
		return nutrition.Profile{}, err
	}
	objective, condition, activity, err := parseAttributes(r.Objective, r.BodyCondition, r.ActivityLevel)
	if err != nil {
		return nutrition.Profile{}, err
	}
	birth, err := ParseBirthDate(r.BirthDate)
	if err != nil {
		return nutrition.Profile{}, err
	}
	if err := checkAdultWeight(r.EstimatedAdultWeightKg); err != nil {
		return nutrition.Profile{}, err
	}
	return nutrition.Profile{
		WeightKg:               weight,
		Objective:              objective,
		Condition:              condition,
		Activity:               activity,
		BirthDate:              birth,
		EstimatedAdultWeightKg: r.EstimatedAdultWeightKg,
	}, nil
}

// ParseBirthDate parses an optional YYYY-MM-DD date in UTC. Blank input yields nil.
func ParseBirthDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(BirthDateLayout, s, time.UTC)
	if err != nil {
		return nil, ErrInvalidBirthDate
	}
	return &t, nil
}

func parseWeight(w *float64) (float64, error) {
	if w == nil {
		return 0, ErrWeightRequired
	}
	if !positive(*w) {
		return 0, ErrInvalidWeight
	}
	return *w, nil
}

func checkAdultWeight(w *float64) error {
	if w != nil && !positive(*w) {
		return ErrInvalidEstimatedAdultWeight
	}
	return nil
}

func parseAttributes(objective, condition, activity string) (nutrition.Objective, nutrition.BodyCondition, nutrition.ActivityLevel, error) {
	o, err := nutrition.ParseObjective(objective)
	if err != nil {
		return "", "", "", ErrInvalidObjective
	}
	c, err := nutrition.ParseBodyCondition(condition)
	if err != nil {
		return "", "", "", ErrInvalidBodyCondition
	}
	a, err := nutrition.ParseActivityLevel(activity)
	if err != nil {
		return "", "", "", ErrInvalidActivityLevel
	}
	return o, c, a, nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
