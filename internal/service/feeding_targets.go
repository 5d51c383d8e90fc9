package service

import (
	"context"
	"errors"
	"strings"

	"github.com/guttosm/feeding-service/internal/metrics"
	"github.com/guttosm/feeding-service/internal/nutrition"
	"github.com/guttosm/feeding-service/internal/repository"
)

// ErrRepositoryNotConfigured is returned when the service runs without a database.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// ErrDogIDRequired is returned for a blank dog id.
var ErrDogIDRequired = errors.New("dog id is required")

// FeedingTargetsService persists the daily kcal and gram targets computed for a dog.
type FeedingTargetsService interface {
	// Save stores plan as the dog's active target, replacing the previous one.
	Save(ctx context.Context, dogID string, profile nutrition.Profile, plan nutrition.Plan, createdBy string) (*repository.FeedingTarget, error)
	GetActive(ctx context.Context, dogID string) (*repository.FeedingTarget, error)
	// History lists saved targets newest first. A non-positive limit returns all of them.
	History(ctx context.Context, dogID string, limit int) ([]repository.FeedingTarget, error)
}

// FeedingTargetsServiceImpl implements FeedingTargetsService.
type FeedingTargetsServiceImpl struct {
	repo repository.FeedingTargetsRepositoryInterface
}

// NewFeedingTargetsService creates a new feeding targets service. A nil repository
// yields a service whose operations fail with ErrRepositoryNotConfigured.
func NewFeedingTargetsService(repo repository.FeedingTargetsRepositoryInterface) FeedingTargetsService {
	return &FeedingTargetsServiceImpl{repo: repo}
}

func (s *FeedingTargetsServiceImpl) Save(
	ctx context.Context,
	dogID string,
	profile nutrition.Profile,
	plan nutrition.Plan,
	createdBy string,
) (*repository.FeedingTarget, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	dogID = strings.TrimSpace(dogID)
	if dogID == "" {
		return nil, ErrDogIDRequired
	}

	saved, err := s.repo.Save(ctx, NewFeedingTarget(dogID, profile, plan, createdBy))
	if err != nil {
		return nil, err
	}
	metrics.RecordFeedingTargetSaved(saved.Stage)
	return saved, nil
}

func (s *FeedingTargetsServiceImpl) GetActive(ctx context.Context, dogID string) (*repository.FeedingTarget, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	dogID = strings.TrimSpace(dogID)
	if dogID == "" {
		return nil, ErrDogIDRequired
	}
	return s.repo.GetActive(ctx, dogID)
}

func (s *FeedingTargetsServiceImpl) History(ctx context.Context, dogID string, limit int) ([]repository.FeedingTarget, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	dogID = strings.TrimSpace(dogID)
	if dogID == "" {
		return nil, ErrDogIDRequired
	}
	return s.repo.History(ctx, dogID, limit)
}

// NewFeedingTarget builds the document stored for plan. Versioning and the
// active flag are assigned by the repository.
func NewFeedingTarget(dogID string, profile nutrition.Profile, plan nutrition.Plan, createdBy string) *repository.FeedingTarget {
	inputs := repository.FeedingTargetInputs{
		WeightKg:  plan.WeightKg,
		AgeMonths: plan.AgeMonths,
	}
	if plan.Stage == nutrition.StagePuppy {
		inputs.EstimatedAdultWeightKg = plan.EstimatedAdultWeightKg
		inputs.AdultWeightDefaulted = plan.AdultWeightDefaulted
	} else {
		inputs.Objective = string(profile.Objective)
		inputs.BodyCondition = string(profile.Condition)
		inputs.ActivityLevel = string(profile.Activity)
	}

	return &repository.FeedingTarget{
		DogID:       dogID,
		Stage:       string(plan.Stage),
		KcalPerDay:  plan.KcalPerDay,
		GramsPerDay: plan.GramsPerDay,
		MealsPerDay: plan.MealsPerDay,
		RER:         plan.RER,
		Factor:      plan.Factor,
		Inputs:      inputs,
		CreatedBy:   createdBy,
	}
}
