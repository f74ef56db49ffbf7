package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

// Error variables
var (
	ErrInvalidFromDate = errors.New("from must be formatted as YYYY-MM-DD")
	ErrInvalidToDate   = errors.New("to must be formatted as YYYY-MM-DD")
	ErrInvalidLimit    = errors.New("limit must be a positive integer")
)

// ExerciseReader defines read-only operations for exercises.
type ExerciseReader interface {
	ListByUser(ctx context.Context, userID primitive.ObjectID, from, to *time.Time, limit int64) ([]models.ExerciseDB, error)
}

// LogService reads back a user's exercise log with optional filters.
type LogService struct {
	users     UserReader
	exercises ExerciseReader
}

// NewLogService creates a new LogService instance.
func NewLogService(users UserReader, exercises ExerciseReader) *LogService {
	return &LogService{
		users:     users,
		exercises: exercises,
	}
}

// Get resolves the user, then applies the optional from/to/limit filters and
// returns the matching exercises in insertion order. Each filter parameter is
// validated on its own so the caller learns which field was malformed.
func (svc *LogService) Get(ctx context.Context, userID, from, to, limit string) (*models.UserDB, []models.ExerciseDB, error) {
	user, err := resolveUser(ctx, svc.users, userID)
	if err != nil {
		return nil, nil, err
	}

	var fromDate, toDate *time.Time
	if from != "" {
		parsed, err := time.Parse(models.DateLayout, from)
		if err != nil {
			return nil, nil, ErrInvalidFromDate
		}
		fromDate = &parsed
	}
	if to != "" {
		parsed, err := time.Parse(models.DateLayout, to)
		if err != nil {
			return nil, nil, ErrInvalidToDate
		}
		toDate = &parsed
	}

	var n int64
	if limit != "" {
		n, err = strconv.ParseInt(limit, 10, 64)
		if err != nil || n <= 0 {
			return nil, nil, ErrInvalidLimit
		}
	}

	exercises, err := svc.exercises.ListByUser(ctx, user.ID, fromDate, toDate, n)
	if err != nil {
		logger.Log.Errorw("failed to list exercises", "userID", userID, "err", err)
		return nil, nil, err
	}

	return user, exercises, nil
}
