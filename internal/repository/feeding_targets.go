package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrFeedingTargetNotFound is returned when a dog has no active feeding target.
var ErrFeedingTargetNotFound = errors.New("feeding target not found")

// saveAttempts bounds retries when two saves for the same dog race on the version index.
const saveAttempts = 3

// FeedingTargetInputs records what the target was computed from.
type FeedingTargetInputs struct {
	WeightKg               float64 `bson:"weight_kg" json:"weight_kg"`
	AgeMonths              *int    `bson:"age_months,omitempty" json:"age_months,omitempty"`
	EstimatedAdultWeightKg float64 `bson:"estimated_adult_weight_kg,omitempty" json:"estimated_adult_weight_kg,omitempty"`
	AdultWeightDefaulted   bool    `bson:"adult_weight_defaulted,omitempty" json:"adult_weight_defaulted,omitempty"`
	Objective              string  `bson:"objective,omitempty" json:"objective,omitempty"`
	BodyCondition          string  `bson:"body_condition,omitempty" json:"body_condition,omitempty"`
	ActivityLevel          string  `bson:"activity_level,omitempty" json:"activity_level,omitempty"`
}

// FeedingTarget is a versioned daily target document. The kcal and gram fields keep
// the names the mobile app reads (meta_kcal_dia, meta_gramas_dia).
type FeedingTarget struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	DogID       string              `bson:"dog_id" json:"dog_id"`
	Stage       string              `bson:"stage" json:"stage"`
	KcalPerDay  int                 `bson:"meta_kcal_dia" json:"kcal_per_day"`
	GramsPerDay int                 `bson:"meta_gramas_dia" json:"grams_per_day"`
	MealsPerDay string              `bson:"meals_per_day,omitempty" json:"meals_per_day,omitempty"`
	RER         float64             `bson:"rer" json:"rer"`
	Factor      float64             `bson:"factor" json:"factor"`
	Inputs      FeedingTargetInputs `bson:"inputs" json:"inputs"`
	Active      bool                `bson:"active" json:"active"`
	Version     int                 `bson:"version" json:"version"`
	CreatedAt   time.Time           `bson:"created_at" json:"created_at"`
	CreatedBy   string              `bson:"created_by,omitempty" json:"created_by,omitempty"`
}

// FeedingTargetsRepository stores feeding targets in MongoDB.
type FeedingTargetsRepository struct {
	collection *mongo.Collection
}

// NewFeedingTargetsRepository creates a new feeding targets repository.
func NewFeedingTargetsRepository(db *MongoDB) *FeedingTargetsRepository {
	return &FeedingTargetsRepository{
		collection: db.FeedingTargets,
	}
}

// Save inserts target as the dog's newest version and then deactivates older ones.
// Inserting first means readers never observe a dog without an active target, and
// only lower versions are deactivated so concurrent saves leave the newest active.
func (r *FeedingTargetsRepository) Save(ctx context.Context, target *FeedingTarget) (*FeedingTarget, error) {
	doc := *target
	var err error
	for attempt := 0; attempt < saveAttempts; attempt++ {
		var latest int
		latest, err = r.latestVersion(ctx, doc.DogID)
		if err != nil {
			return nil, err
		}

		doc.ID = primitive.NewObjectID()
		doc.Version = latest + 1
		doc.Active = true
		if doc.CreatedAt.IsZero() {
			doc.CreatedAt = time.Now().UTC()
		}

		_, err = r.collection.InsertOne(ctx, doc)
		if mongo.IsDuplicateKeyError(err) {
			continue
		}
		if err != nil {
			return nil, err
		}

		_, err = r.collection.UpdateMany(
			ctx,
			bson.M{"dog_id": doc.DogID, "active": true, "version": bson.M{"$lt": doc.Version}},
			bson.M{"$set": bson.M{"active": false}},
		)
		if err != nil {
			return nil, err
		}
		return &doc, nil
	}
	return nil, err
}

func (r *FeedingTargetsRepository) latestVersion(ctx context.Context, dogID string) (int, error) {
	var latest struct {
		Version int `bson:"version"`
	}
	err := r.collection.FindOne(
		ctx,
		bson.M{"dog_id": dogID},
		options.FindOne().
			SetSort(bson.D{{Key: "version", Value: -1}}).
			SetProjection(bson.M{"version": 1}),
	).Decode(&latest)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	return latest.Version, err
}

// GetActive returns the dog's active target.
func (r *FeedingTargetsRepository) GetActive(ctx context.Context, dogID string) (*FeedingTarget, error) {
	var target FeedingTarget
	err := r.collection.FindOne(
		ctx,
		bson.M{"dog_id": dogID, "active": true},
		options.FindOne().SetSort(bson.D{{Key: "version", Value: -1}}),
	).Decode(&target)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrFeedingTargetNotFound
	}
	if err != nil {
		return nil, err
	}
	return &target, nil
}

// History returns the dog's targets, newest first. A non-positive limit returns all of them.
func (r *FeedingTargetsRepository) History(ctx context.Context, dogID string, limit int) ([]FeedingTarget, error) {
	opts := options.Find().SetSort(bson.D{{Key: "version", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"dog_id": dogID}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	targets := make([]FeedingTarget, 0)
	if err := cursor.All(ctx, &targets); err != nil {
		return nil, err
	}
	return targets, nil
}
