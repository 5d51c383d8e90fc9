package service

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/feeding-service/internal/metrics"
	"github.com/guttosm/feeding-service/internal/nutrition"
	"github.com/guttosm/feeding-service/internal/service/cache"
)

// FeedingCalculator computes daily feeding plans.
type FeedingCalculator interface {
	Adult(in nutrition.AdultInput) (nutrition.Plan, error)
	Puppy(in nutrition.PuppyInput) (nutrition.Plan, error)
	// Plan picks the puppy or adult path from the dog's age at now.
	Plan(p nutrition.Profile, now time.Time) (nutrition.Plan, error)
	// Now is the calculator's clock, used to derive ages from birth dates.
	Now() time.Time
	// InvalidateCache drops every cached plan.
	InvalidateCache()
}

// Option configures a FeedingCalculatorService.
type Option func(*FeedingCalculatorService)

// FeedingCalculatorService implements FeedingCalculator on top of the nutrition
// package, caching plans by their canonical inputs.
type FeedingCalculatorService struct {
	cache         cache.Cache
	puppyAgeLimit int
	clock         func() time.Time
}

// NewFeedingCalculatorService creates a FeedingCalculatorService with the given options.
func NewFeedingCalculatorService(opts ...Option) *FeedingCalculatorService {
	s := &FeedingCalculatorService{
		puppyAgeLimit: nutrition.DefaultPuppyAgeLimitMonths,
		clock:         utcNow,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithCache enables plan caching with the specified capacity and TTL.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(s *FeedingCalculatorService) {
		if capacity > 0 {
			s.cache = NewShardedCache(capacity, ttl, 16)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache) Option {
	return func(s *FeedingCalculatorService) {
		s.cache = c
	}
}

// WithPuppyAgeLimit sets the age in months from which dogs are planned as adults.
func WithPuppyAgeLimit(months int) Option {
	return func(s *FeedingCalculatorService) {
		if months > 0 {
			s.puppyAgeLimit = months
		}
	}
}

// WithClock replaces the UTC wall clock, mostly for tests.
func WithClock(clock func() time.Time) Option {
	return func(s *FeedingCalculatorService) {
		if clock != nil {
			s.clock = clock
		}
	}
}

func utcNow() time.Time {
	return time.Now().UTC()
}

// Now returns the configured clock's time in UTC. Birth dates are parsed in UTC,
// so ages are derived from the UTC calendar date whatever the host time zone.
func (s *FeedingCalculatorService) Now() time.Time {
	return s.clock().UTC()
}

// Adult computes the plan of an adult dog.
func (s *FeedingCalculatorService) Adult(in nutrition.AdultInput) (nutrition.Plan, error) {
	return s.cached(adultKey(in), nutrition.StageAdult, func() (nutrition.Plan, error) {
		return nutrition.AdultPlan(in)
	})
}

// Puppy computes the plan of a growing dog.
func (s *FeedingCalculatorService) Puppy(in nutrition.PuppyInput) (nutrition.Plan, error) {
	return s.cached(puppyKey(in), nutrition.StagePuppy, func() (nutrition.Plan, error) {
		return nutrition.PuppyPlan(in)
	})
}

// Plan computes the plan of the stage the dog is in at now. Plans share the
// cache with Adult and Puppy since equal stage inputs give equal plans.
func (s *FeedingCalculatorService) Plan(p nutrition.Profile, now time.Time) (nutrition.Plan, error) {
	// Puppy keys leave the attributes out, so check them before any cache lookup.
	if err := nutrition.ValidateAttributes(p.Objective, p.Condition, p.Activity); err != nil {
		return nutrition.Plan{}, err
	}

	compute := func() (nutrition.Plan, error) {
		return nutrition.BuildPlan(p, now, s.puppyAgeLimit)
	}

	age, known := nutrition.AgeInMonths(p.BirthDate, now)
	if known && age < s.puppyAgeLimit {
		key := puppyKey(nutrition.PuppyInput{
			WeightKg:               p.WeightKg,
			AgeMonths:              age,
			EstimatedAdultWeightKg: p.EstimatedAdultWeightKg,
		})
		return s.cached(key, nutrition.StagePuppy, compute)
	}

	in := nutrition.AdultInput{
		WeightKg:  p.WeightKg,
		Objective: p.Objective,
		Condition: p.Condition,
		Activity:  p.Activity,
	}
	if known {
		in.AgeMonths = &age
	}
	return s.cached(adultKey(in), nutrition.StageAdult, compute)
}

// InvalidateCache clears the plan cache.
func (s *FeedingCalculatorService) InvalidateCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

// Stop releases the cache's background resources.
func (s *FeedingCalculatorService) Stop() {
	if s.cache != nil {
		s.cache.Stop()
	}
}

func (s *FeedingCalculatorService) cached(key string, stage nutrition.Stage, compute func() (nutrition.Plan, error)) (nutrition.Plan, error) {
	if s.cache != nil {
		if plan, ok := s.cache.Get(key); ok {
			return detach(plan), nil
		}
	}

	start := time.Now()
	plan, err := compute()
	if err != nil {
		status := "error"
		if errors.Is(err, nutrition.ErrInvalidInput) || errors.Is(err, nutrition.ErrMissingAdultWeight) {
			status = "validation_error"
		}
		metrics.RecordFeedingCalculation(string(stage), time.Since(start), status)
		return nutrition.Plan{}, err
	}
	metrics.RecordFeedingCalculation(string(plan.Stage), time.Since(start), "success")

	if s.cache != nil {
		s.cache.Set(key, detach(plan))
		if withMetrics, ok := s.cache.(cache.CacheWithMetrics); ok {
			m := withMetrics.Metrics()
			metrics.UpdateCacheMetrics(m.Size, m.Capacity)
		}
	}
	return plan, nil
}

// detach copies the pointer fields of a plan so callers and the cache never share them.
func detach(plan nutrition.Plan) nutrition.Plan {
	if plan.AgeMonths != nil {
		age := *plan.AgeMonths
		plan.AgeMonths = &age
	}
	return plan
}

func adultKey(in nutrition.AdultInput) string {
	return strings.Join([]string{
		string(nutrition.StageAdult),
		formatFloat(in.WeightKg),
		string(in.Objective),
		string(in.Condition),
		string(in.Activity),
		formatOptionalInt(in.AgeMonths),
	}, "|")
}

func puppyKey(in nutrition.PuppyInput) string {
	adult := "-"
	if in.EstimatedAdultWeightKg != nil {
		adult = formatFloat(*in.EstimatedAdultWeightKg)
	}
	return strings.Join([]string{
		string(nutrition.StagePuppy),
		formatFloat(in.WeightKg),
		strconv.Itoa(in.AgeMonths),
		adult,
	}, "|")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatOptionalInt(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}
