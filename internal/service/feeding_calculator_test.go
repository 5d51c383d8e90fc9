package service

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/guttosm/feeding-service/internal/mocks"
	"github.com/guttosm/feeding-service/internal/nutrition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.October, 15, 9, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func adultInput() nutrition.AdultInput {
	return nutrition.AdultInput{
		WeightKg:  10,
		Objective: nutrition.ObjectiveMaintain,
		Condition: nutrition.BodyConditionIdeal,
		Activity:  nutrition.ActivityModerate,
	}
}

func TestNewFeedingCalculatorService(t *testing.T) {
	tests := []struct {
		name     string
		options  []Option
		validate func(*testing.T, *FeedingCalculatorService)
	}{
		{
			name: "defaults",
			validate: func(t *testing.T, svc *FeedingCalculatorService) {
				assert.Nil(t, svc.cache)
				assert.Equal(t, nutrition.DefaultPuppyAgeLimitMonths, svc.puppyAgeLimit)
				assert.WithinDuration(t, time.Now(), svc.Now(), time.Second)
			},
		},
		{
			name:    "enables cache with option",
			options: []Option{WithCache(100, time.Minute)},
			validate: func(t *testing.T, svc *FeedingCalculatorService) {
				assert.NotNil(t, svc.cache)
			},
		},
		{
			name:    "zero capacity leaves cache disabled",
			options: []Option{WithCache(0, time.Minute)},
			validate: func(t *testing.T, svc *FeedingCalculatorService) {
				assert.Nil(t, svc.cache)
			},
		},
		{
			name:    "custom puppy age limit",
			options: []Option{WithPuppyAgeLimit(18)},
			validate: func(t *testing.T, svc *FeedingCalculatorService) {
				assert.Equal(t, 18, svc.puppyAgeLimit)
			},
		},
		{
			name:    "non positive puppy age limit is ignored",
			options: []Option{WithPuppyAgeLimit(-3)},
			validate: func(t *testing.T, svc *FeedingCalculatorService) {
				assert.Equal(t, nutrition.DefaultPuppyAgeLimitMonths, svc.puppyAgeLimit)
			},
		},
		{
			name:    "custom clock",
			options: []Option{WithClock(func() time.Time { return fixedNow })},
			validate: func(t *testing.T, svc *FeedingCalculatorService) {
				assert.Equal(t, fixedNow, svc.Now())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewFeedingCalculatorService(tt.options...)
			defer svc.Stop()
			tt.validate(t, svc)
		})
	}
}

func TestFeedingCalculatorService_Adult(t *testing.T) {
	svc := NewFeedingCalculatorService()

	tests := []struct {
		name        string
		input       nutrition.AdultInput
		wantKcal    int
		wantGrams   int
		expectedErr error
	}{
		{name: "maintain moderate", input: adultInput(), wantKcal: 630, wantGrams: 250},
		{
			name: "weight loss uses factor 1.0",
			input: nutrition.AdultInput{
				WeightKg: 10, Objective: nutrition.ObjectiveLoseWeight,
				Condition: nutrition.BodyConditionOverweight, Activity: nutrition.ActivityHigh,
			},
			wantKcal:  394,
			wantGrams: 200,
		},
		{
			name:        "invalid weight",
			input:       nutrition.AdultInput{WeightKg: 0, Objective: nutrition.ObjectiveMaintain, Condition: nutrition.BodyConditionIdeal, Activity: nutrition.ActivityLow},
			expectedErr: nutrition.ErrInvalidWeight,
		},
		{
			name:        "unknown objective",
			input:       nutrition.AdultInput{WeightKg: 10, Objective: "bulk", Condition: nutrition.BodyConditionIdeal, Activity: nutrition.ActivityLow},
			expectedErr: nutrition.ErrUnknownObjective,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := svc.Adult(tt.input)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.ErrorIs(t, err, nutrition.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, nutrition.StageAdult, plan.Stage)
			assert.Equal(t, tt.wantKcal, plan.KcalPerDay)
			assert.Equal(t, tt.wantGrams, plan.GramsPerDay)
		})
	}
}

func TestFeedingCalculatorService_Puppy(t *testing.T) {
	svc := NewFeedingCalculatorService()

	plan, err := svc.Puppy(nutrition.PuppyInput{WeightKg: 5, AgeMonths: 3})
	require.NoError(t, err)
	assert.Equal(t, nutrition.StagePuppy, plan.Stage)
	assert.Equal(t, 515, plan.KcalPerDay)
	assert.Equal(t, 250, plan.GramsPerDay)
	assert.Equal(t, 10.0, plan.EstimatedAdultWeightKg)
	assert.True(t, plan.AdultWeightDefaulted)
	assert.Equal(t, nutrition.MealsEarlyGrowth, plan.MealsPerDay)

	_, err = svc.Puppy(nutrition.PuppyInput{WeightKg: 5, AgeMonths: -1})
	assert.ErrorIs(t, err, nutrition.ErrInvalidAge)
}

func TestFeedingCalculatorService_Plan(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		birth     *time.Time
		wantStage nutrition.Stage
		wantAge   *int
	}{
		{
			name:      "unknown age is planned as adult",
			wantStage: nutrition.StageAdult,
		},
		{
			name:      "three month old is a puppy",
			birth:     timePtr(time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)),
			wantStage: nutrition.StagePuppy,
			wantAge:   intPtr(3),
		},
		{
			name:      "twelve month old is an adult",
			birth:     timePtr(time.Date(2025, time.October, 20, 0, 0, 0, 0, time.UTC)),
			wantStage: nutrition.StageAdult,
			wantAge:   intPtr(12),
		},
		{
			name:      "custom limit keeps fourteen month old as puppy",
			limit:     18,
			birth:     timePtr(time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)),
			wantStage: nutrition.StagePuppy,
			wantAge:   intPtr(14),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewFeedingCalculatorService(WithPuppyAgeLimit(tt.limit), WithCache(10, time.Minute))
			defer svc.Stop()

			profile := nutrition.Profile{
				WeightKg:  10,
				Objective: nutrition.ObjectiveMaintain,
				Condition: nutrition.BodyConditionIdeal,
				Activity:  nutrition.ActivityModerate,
				BirthDate: tt.birth,
			}
			plan, err := svc.Plan(profile, fixedNow)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStage, plan.Stage)
			assert.Equal(t, tt.wantAge, plan.AgeMonths)
		})
	}
}

func TestFeedingCalculatorService_PlanSharesCacheWithPuppy(t *testing.T) {
	svc := NewFeedingCalculatorService(WithCache(10, time.Minute))
	defer svc.Stop()

	direct, err := svc.Puppy(nutrition.PuppyInput{WeightKg: 5, AgeMonths: 3, EstimatedAdultWeightKg: floatPtr(20)})
	require.NoError(t, err)

	planned, err := svc.Plan(nutrition.Profile{
		WeightKg:               5,
		Objective:              nutrition.ObjectiveMaintain,
		Condition:              nutrition.BodyConditionIdeal,
		Activity:               nutrition.ActivityModerate,
		BirthDate:              timePtr(time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)),
		EstimatedAdultWeightKg: floatPtr(20),
	}, fixedNow)
	require.NoError(t, err)

	assert.Equal(t, direct, planned)
	assert.Equal(t, int64(1), svc.cache.(*ShardedCache).Metrics().Hits)
}

func TestFeedingCalculatorService_PlanRejectsUnknownAttributes(t *testing.T) {
	svc := NewFeedingCalculatorService(WithCache(10, time.Minute))
	defer svc.Stop()

	profile := nutrition.Profile{
		WeightKg:               5,
		Objective:              nutrition.ObjectiveMaintain,
		Condition:              nutrition.BodyConditionIdeal,
		Activity:               nutrition.ActivityModerate,
		BirthDate:              timePtr(time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)),
		EstimatedAdultWeightKg: floatPtr(20),
	}
	// Warm the puppy entry the invalid profiles would otherwise hit.
	_, err := svc.Plan(profile, fixedNow)
	require.NoError(t, err)

	tests := []struct {
		name   string
		modify func(*nutrition.Profile)
		want   error
	}{
		{"objective", func(p *nutrition.Profile) { p.Objective = "bogus" }, nutrition.ErrUnknownObjective},
		{"body condition", func(p *nutrition.Profile) { p.Condition = "x" }, nutrition.ErrUnknownBodyCondition},
		{"activity", func(p *nutrition.Profile) { p.Activity = "y" }, nutrition.ErrUnknownActivityLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := profile
			tt.modify(&p)

			_, err := svc.Plan(p, fixedNow)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFeedingCalculatorService_NowIsUTC(t *testing.T) {
	t.Run("default clock", func(t *testing.T) {
		svc := NewFeedingCalculatorService()
		assert.Equal(t, time.UTC, svc.Now().Location())
	})

	t.Run("zoned clock ages dogs by the UTC date", func(t *testing.T) {
		// 22:00 on Oct 31 at UTC-3 is already Nov 1 in UTC.
		brt := time.FixedZone("BRT", -3*60*60)
		local := time.Date(2026, time.October, 31, 22, 0, 0, 0, brt)
		svc := NewFeedingCalculatorService(WithClock(func() time.Time { return local }))

		now := svc.Now()
		assert.Equal(t, time.UTC, now.Location())
		assert.True(t, now.Equal(local))

		plan, err := svc.Plan(nutrition.Profile{
			WeightKg:  5,
			Objective: nutrition.ObjectiveMaintain,
			Condition: nutrition.BodyConditionIdeal,
			Activity:  nutrition.ActivityModerate,
			BirthDate: timePtr(time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)),
		}, now)
		require.NoError(t, err)
		assert.Equal(t, intPtr(2), plan.AgeMonths)
	})
}

func TestFeedingCalculatorService_CachedPlansAreNotShared(t *testing.T) {
	svc := NewFeedingCalculatorService(WithCache(10, time.Minute))
	defer svc.Stop()

	in := nutrition.PuppyInput{WeightKg: 5, AgeMonths: 3}
	first, err := svc.Puppy(in)
	require.NoError(t, err)
	*first.AgeMonths = 99

	second, err := svc.Puppy(in)
	require.NoError(t, err)
	assert.Equal(t, intPtr(3), second.AgeMonths)
	*second.AgeMonths = 42

	third, err := svc.Puppy(in)
	require.NoError(t, err)
	assert.Equal(t, intPtr(3), third.AgeMonths)
	assert.Equal(t, int64(2), svc.cache.(*ShardedCache).Metrics().Hits)
}

func TestFeedingCalculatorService_WithCacheInterface(t *testing.T) {
	t.Run("cache miss then cache set", func(t *testing.T) {
		mockCache := mocks.NewMockCache(t)
		key := "adult|10|maintain|ideal|moderate|-"
		mockCache.On("Get", key).Return(nutrition.Plan{}, false).Once()
		mockCache.On("Set", key, mock.MatchedBy(func(p nutrition.Plan) bool {
			return p.KcalPerDay == 630 && p.GramsPerDay == 250
		})).Once()

		svc := NewFeedingCalculatorService(WithCacheInterface(mockCache))
		plan, err := svc.Adult(adultInput())

		require.NoError(t, err)
		assert.Equal(t, 630, plan.KcalPerDay)
	})

	t.Run("cache hit skips calculation", func(t *testing.T) {
		mockCache := mocks.NewMockCache(t)
		cached := nutrition.Plan{Stage: nutrition.StageAdult, KcalPerDay: 1}
		mockCache.On("Get", mock.Anything).Return(cached, true).Once()

		svc := NewFeedingCalculatorService(WithCacheInterface(mockCache))
		plan, err := svc.Adult(adultInput())

		require.NoError(t, err)
		assert.Equal(t, cached, plan)
		mockCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
	})

	t.Run("invalid input is never cached", func(t *testing.T) {
		mockCache := mocks.NewMockCache(t)
		mockCache.On("Get", mock.Anything).Return(nutrition.Plan{}, false).Once()

		svc := NewFeedingCalculatorService(WithCacheInterface(mockCache))
		_, err := svc.Puppy(nutrition.PuppyInput{WeightKg: -1, AgeMonths: 2})

		require.Error(t, err)
		mockCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
	})

	t.Run("invalidate clears the cache", func(t *testing.T) {
		mockCache := mocks.NewMockCache(t)
		mockCache.On("Clear").Once()

		svc := NewFeedingCalculatorService(WithCacheInterface(mockCache))
		svc.InvalidateCache()

	})
}

func TestFeedingCalculatorService_CacheTTL(t *testing.T) {
	svc := NewFeedingCalculatorService(WithCache(10, 50*time.Millisecond))
	defer svc.Stop()

	first, err := svc.Adult(adultInput())
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)

	second, err := svc.Adult(adultInput())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFeedingCalculatorService_CacheConcurrency(t *testing.T) {
	svc := NewFeedingCalculatorService(WithCache(100, time.Minute))
	defer svc.Stop()

	var wg sync.WaitGroup
	errs := make(chan error, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			in := adultInput()
			in.WeightKg = float64(n%10 + 1)
			if _, err := svc.Adult(in); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, 10, svc.cache.(*ShardedCache).Metrics().Size)
}

func TestCacheKeys(t *testing.T) {
	in := adultInput()
	assert.Equal(t, "adult|10|maintain|ideal|moderate|-", adultKey(in))

	in.AgeMonths = intPtr(36)
	in.WeightKg = 7.25
	assert.Equal(t, "adult|7.25|maintain|ideal|moderate|36", adultKey(in))

	assert.Equal(t, "puppy|5|3|-", puppyKey(nutrition.PuppyInput{WeightKg: 5, AgeMonths: 3}))
	assert.Equal(t, "puppy|5|3|20", puppyKey(nutrition.PuppyInput{WeightKg: 5, AgeMonths: 3, EstimatedAdultWeightKg: floatPtr(20)}))
	assert.NotEqual(t, puppyKey(nutrition.PuppyInput{WeightKg: 5, AgeMonths: 3}),
		puppyKey(nutrition.PuppyInput{WeightKg: 5, AgeMonths: 3, EstimatedAdultWeightKg: floatPtr(10)}))
}

func TestFeedingCalculatorService_ErrorsAreDistinguishable(t *testing.T) {
	svc := NewFeedingCalculatorService()

	_, err := svc.Adult(nutrition.AdultInput{WeightKg: 10, Objective: nutrition.ObjectiveMaintain, Condition: "round", Activity: nutrition.ActivityLow})
	assert.True(t, errors.Is(err, nutrition.ErrUnknownBodyCondition))
	assert.False(t, errors.Is(err, nutrition.ErrUnknownActivityLevel))
}

func timePtr(t time.Time) *time.Time { return &t }
