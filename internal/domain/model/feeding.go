package model

import (
	"math"

	"github.com/guttosm/feeding-service/internal/nutrition"
)

// FeedingResult is the API view of a computed feeding plan.
// @Description Daily feeding target for a dog
type FeedingResult struct {
	Stage                  string   `json:"stage" yaml:"stage" example:"adult"`
	WeightKg               float64  `json:"weight_kg" yaml:"weight_kg" example:"10"`
	AgeMonths              *int     `json:"age_months,omitempty" yaml:"age_months,omitempty" example:"36"`
	EstimatedAdultWeightKg *float64 `json:"estimated_adult_weight_kg,omitempty" yaml:"estimated_adult_weight_kg,omitempty" example:"20"`
	AdultWeightDefaulted   bool     `json:"adult_weight_defaulted,omitempty" yaml:"adult_weight_defaulted,omitempty"`
	RER                    float64  `json:"rer" yaml:"rer" example:"393.64"`
	Factor                 float64  `json:"factor" yaml:"factor" example:"1.6"`
	KcalPerDay             int      `json:"kcal_per_day" yaml:"kcal_per_day" example:"630"`
	GramsPerDay            int      `json:"grams_per_day" yaml:"grams_per_day" example:"250"`
	MealsPerDay            string   `json:"meals_per_day,omitempty" yaml:"meals_per_day,omitempty" example:"2-3 refeições/dia"`
} // @name FeedingResult

// NewFeedingResult converts a plan into its API view. RER is rounded to two decimals.
func NewFeedingResult(p nutrition.Plan) FeedingResult {
	res := FeedingResult{
		Stage:                string(p.Stage),
		WeightKg:             p.WeightKg,
		AgeMonths:            p.AgeMonths,
		AdultWeightDefaulted: p.AdultWeightDefaulted,
		RER:                  math.Round(p.RER*100) / 100,
		Factor:               p.Factor,
		KcalPerDay:           p.KcalPerDay,
		GramsPerDay:          p.GramsPerDay,
		MealsPerDay:          p.MealsPerDay,
	}
	if p.Stage == nutrition.StagePuppy {
		w := p.EstimatedAdultWeightKg
		res.EstimatedAdultWeightKg = &w
	}
	return res
}

// RERResult is the API view of a resting energy requirement lookup.
// @Description Resting energy requirement for a body weight
type RERResult struct {
	WeightKg float64 `json:"weight_kg" yaml:"weight_kg" example:"10"`
	RER      float64 `json:"rer" yaml:"rer" example:"393.64"`
} // @name RERResult

// AgeResult is the age of a dog in whole months on the server's date.
// @Description Age in months derived from a birth date
type AgeResult struct {
	AgeMonths *int `json:"age_months" yaml:"age_months" example:"14"`
	Known     bool `json:"known" yaml:"known" example:"true"`
} // @name AgeResult

// MealsResult is the suggested number of meals for an age.
// @Description Suggested meal frequency
type MealsResult struct {
	AgeMonths   int    `json:"age_months" yaml:"age_months" example:"5"`
	MealsPerDay string `json:"meals_per_day" yaml:"meals_per_day" example:"3 refeições/dia"`
} // @name MealsResult
