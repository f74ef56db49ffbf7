package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

const exercisesCollection = "exercises"

type ExerciseReadRepository struct {
	coll *mongo.Collection
}

func NewExerciseReadRepository(db *mongo.Database) *ExerciseReadRepository {
	return &ExerciseReadRepository{coll: db.Collection(exercisesCollection)}
}

// ListByUser returns the user's exercises, optionally bounded to [from, to]
// inclusive and capped at limit. No sort stage is applied: the collection is
// append-only, so an unsorted find yields insertion order.
func (r *ExerciseReadRepository) ListByUser(ctx context.Context, userID primitive.ObjectID, from, to *time.Time, limit int64) ([]models.ExerciseDB, error) {
	filter := bson.M{"userId": userID}

	dateFilter := bson.M{}
	if from != nil {
		dateFilter["$gte"] = *from
	}
	if to != nil {
		dateFilter["$lte"] = *to
	}
	if len(dateFilter) > 0 {
		filter["date"] = dateFilter
	}

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.coll.Find(ctx, filter, opts)

	logger.Log.Infow("exercises.find",
		"filter", filter,
		"limit", limit,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	exercises := []models.ExerciseDB{}
	if err := cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}

	return exercises, nil
}

type ExerciseWriteRepository struct {
	coll *mongo.Collection
}

func NewExerciseWriteRepository(db *mongo.Database) *ExerciseWriteRepository {
	return &ExerciseWriteRepository{coll: db.Collection(exercisesCollection)}
}

// Save inserts a new exercise and returns it with the storage-generated id.
func (r *ExerciseWriteRepository) Save(ctx context.Context, exercise models.ExerciseDB) (*models.ExerciseDB, error) {
	res, err := r.coll.InsertOne(ctx, exercise)

	logger.Log.Infow("exercises.insertOne",
		"userId", exercise.UserID,
		"description", exercise.Description,
		"duration", exercise.Duration,
		"date", exercise.Date,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	exercise.ID = res.InsertedID.(primitive.ObjectID)
	return &exercise, nil
}
