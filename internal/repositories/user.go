package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

const usersCollection = "users"

type UserReadRepository struct {
	coll *mongo.Collection
}

func NewUserReadRepository(db *mongo.Database) *UserReadRepository {
	return &UserReadRepository{coll: db.Collection(usersCollection)}
}

// GetByUsername returns the user with the given username, or nil if none exists.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	filter := bson.M{"username": username}

	var user models.UserDB
	err := r.coll.FindOne(ctx, filter).Decode(&user)

	logger.Log.Infow("users.findOne",
		"filter", filter,
		"result", user,
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByID returns the user with the given id, or nil if none exists.
func (r *UserReadRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.UserDB, error) {
	filter := bson.M{"_id": id}

	var user models.UserDB
	err := r.coll.FindOne(ctx, filter).Decode(&user)

	logger.Log.Infow("users.findOne",
		"filter", filter,
		"result", user,
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// List returns all users in natural insertion order.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserDB, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})

	logger.Log.Infow("users.find",
		"filter", bson.M{},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []models.UserDB{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	return users, nil
}

type UserWriteRepository struct {
	coll *mongo.Collection
}

func NewUserWriteRepository(db *mongo.Database) *UserWriteRepository {
	return &UserWriteRepository{coll: db.Collection(usersCollection)}
}

// EnsureIndexes creates the unique index on username. Called once at startup;
// concurrent creates of the same username rely on it to lose cleanly.
func (r *UserWriteRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	logger.Log.Infow("users.createIndex",
		"keys", "username",
		"unique", true,
		"error", err,
	)

	return err
}

// Save inserts a new user and returns it with the storage-generated id.
func (r *UserWriteRepository) Save(ctx context.Context, username string) (*models.UserDB, error) {
	doc := bson.M{"username": username}

	res, err := r.coll.InsertOne(ctx, doc)

	logger.Log.Infow("users.insertOne",
		"doc", doc,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &models.UserDB{
		ID:       res.InsertedID.(primitive.ObjectID),
		Username: username,
	}, nil
}
