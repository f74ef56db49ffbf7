package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

// Error variables
var (
	ErrDescriptionRequired = errors.New("description is required")
	ErrDurationRequired    = errors.New("duration is required")
	ErrInvalidDuration     = errors.New("duration must be an integer")
	ErrInvalidDate         = errors.New("date must be formatted as YYYY-MM-DD")
)

// ExerciseWriter defines write operations for exercises.
type ExerciseWriter interface {
	Save(ctx context.Context, exercise models.ExerciseDB) (*models.ExerciseDB, error)
}

// ExerciseService appends exercise records to a user's log.
type ExerciseService struct {
	users  UserReader
	writer ExerciseWriter
}

// NewExerciseService creates a new ExerciseService instance.
func NewExerciseService(users UserReader, writer ExerciseWriter) *ExerciseService {
	return &ExerciseService{
		users:  users,
		writer: writer,
	}
}

// Add validates the request fields, resolves the owning user and persists the
// exercise. Body fields are validated before the user id is touched, so a
// request that is broken in both ways reports the body problem. The date
// defaults to the current calendar day when omitted. Returns the owning user
// together with the stored exercise.
func (svc *ExerciseService) Add(ctx context.Context, userID, description, duration, date string) (*models.UserDB, *models.ExerciseDB, error) {
	if description == "" {
		return nil, nil, ErrDescriptionRequired
	}
	if duration == "" {
		return nil, nil, ErrDurationRequired
	}

	minutes, err := strconv.Atoi(duration)
	if err != nil {
		return nil, nil, ErrInvalidDuration
	}

	day := today()
	if date != "" {
		day, err = time.Parse(models.DateLayout, date)
		if err != nil {
			return nil, nil, ErrInvalidDate
		}
	}

	user, err := resolveUser(ctx, svc.users, userID)
	if err != nil {
		return nil, nil, err
	}

	exercise, err := svc.writer.Save(ctx, models.ExerciseDB{
		UserID:      user.ID,
		Description: description,
		Duration:    minutes,
		Date:        day,
	})
	if err != nil {
		logger.Log.Errorw("failed to save exercise", "userID", userID, "err", err)
		return nil, nil, err
	}

	return user, exercise, nil
}

// today returns the current calendar day at UTC midnight, matching the
// precision of dates parsed from request bodies.
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
