package model

import (
	"testing"

	"github.com/guttosm/feeding-service/internal/nutrition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFeedingResult(t *testing.T) {
	age := 3

	tests := []struct {
		name   string
		plan   nutrition.Plan
		verify func(*testing.T, FeedingResult)
	}{
		{
			name: "adult plan omits puppy fields",
			plan: nutrition.Plan{
				Stage:       nutrition.StageAdult,
				WeightKg:    10,
				RER:         393.6442,
				Factor:      1.6,
				KcalPerDay:  630,
				GramsPerDay: 250,
			},
			verify: func(t *testing.T, r FeedingResult) {
				assert.Equal(t, "adult", r.Stage)
				assert.Equal(t, 393.64, r.RER)
				assert.Nil(t, r.EstimatedAdultWeightKg)
				assert.Nil(t, r.AgeMonths)
				assert.Equal(t, 630, r.KcalPerDay)
			},
		},
		{
			name: "puppy plan carries estimated adult weight",
			plan: nutrition.Plan{
				Stage:                  nutrition.StagePuppy,
				WeightKg:               5,
				AgeMonths:              &age,
				EstimatedAdultWeightKg: 10,
				AdultWeightDefaulted:   true,
				RER:                    234.0557,
				Factor:                 2.2,
				KcalPerDay:             515,
				GramsPerDay:            250,
				MealsPerDay:            nutrition.MealsEarlyGrowth,
			},
			verify: func(t *testing.T, r FeedingResult) {
				assert.Equal(t, "puppy", r.Stage)
				assert.Equal(t, 234.06, r.RER)
				require.NotNil(t, r.EstimatedAdultWeightKg)
				assert.Equal(t, 10.0, *r.EstimatedAdultWeightKg)
				assert.True(t, r.AdultWeightDefaulted)
				require.NotNil(t, r.AgeMonths)
				assert.Equal(t, 3, *r.AgeMonths)
				assert.Equal(t, nutrition.MealsEarlyGrowth, r.MealsPerDay)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.verify(t, NewFeedingResult(tt.plan))
		})
	}
}
