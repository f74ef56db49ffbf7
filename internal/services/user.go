package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

// Error variables
var (
	ErrUsernameRequired = errors.New("username is required")
	ErrUsernameTaken    = errors.New("username already taken")
	ErrInvalidUserID    = errors.New("invalid user id")
	ErrUserNotFound     = errors.New("user not found")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username string) (*models.UserDB, error)
}

// UserService handles user creation and listing.
type UserService struct {
	reader UserReader
	writer UserWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
	}
}

// Create returns the user with the given username, inserting it first if it
// does not exist yet. Creation is idempotent by username: a duplicate request
// gets the pre-existing record back. A concurrent create of the same username
// may still lose the insert race; the unique-index violation is reported as
// ErrUsernameTaken rather than a storage failure.
func (svc *UserService) Create(ctx context.Context, username string) (*models.UserDB, error) {
	if username == "" {
		return nil, ErrUsernameRequired
	}

	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	user, err := svc.writer.Save(ctx, username)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			logger.Log.Errorw("username taken by concurrent create", "username", username)
			return nil, ErrUsernameTaken
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return user, nil
}

// List returns all users in insertion order.
func (svc *UserService) List(ctx context.Context) ([]models.UserDB, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// resolveUser parses a path-supplied user id and looks the user up.
// A malformed id yields ErrInvalidUserID, an unknown one ErrUserNotFound.
func resolveUser(ctx context.Context, reader UserReader, userID string) (*models.UserDB, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidUserID
	}

	user, err := reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return user, nil
}
