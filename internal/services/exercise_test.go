package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/exercise-tracker/internal/models"
	"github.com/sbilibin2017/exercise-tracker/internal/services"
)

func TestExerciseService_Add_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := primitive.NewObjectID().Hex()

	tests := []struct {
		name        string
		userID      string
		description string
		duration    string
		date        string
		mockSetup   func(users *services.MockUserReader)
		wantErr     error
	}{
		{
			name:     "missing description",
			userID:   userID,
			duration: "45",
			wantErr:  services.ErrDescriptionRequired,
		},
		{
			name:        "missing duration",
			userID:      userID,
			description: "run",
			wantErr:     services.ErrDurationRequired,
		},
		{
			name:        "duration not an integer",
			userID:      userID,
			description: "run",
			duration:    "fortyfive",
			wantErr:     services.ErrInvalidDuration,
		},
		{
			name:        "unparseable date",
			userID:      userID,
			description: "run",
			duration:    "45",
			date:        "15-01-2023",
			wantErr:     services.ErrInvalidDate,
		},
		{
			name:        "malformed user id",
			userID:      "not-an-object-id",
			description: "run",
			duration:    "45",
			wantErr:     services.ErrInvalidUserID,
		},
		{
			name:        "unknown user",
			userID:      userID,
			description: "run",
			duration:    "45",
			mockSetup: func(users *services.MockUserReader) {
				users.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			wantErr: services.ErrUserNotFound,
		},
		{
			name:        "body validated before user id",
			userID:      "not-an-object-id",
			description: "run",
			duration:    "fortyfive",
			wantErr:     services.ErrInvalidDuration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockExerciseWriter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockUsers)
			}

			svc := services.NewExerciseService(mockUsers, mockWriter)

			user, exercise, err := svc.Add(context.Background(), tt.userID, tt.description, tt.duration, tt.date)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, user)
			assert.Nil(t, exercise)
		})
	}
}

func TestExerciseService_Add_WithDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := models.UserDB{ID: primitive.NewObjectID(), Username: "alice"}
	exerciseID := primitive.NewObjectID()

	mockUsers := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockExerciseWriter(ctrl)

	mockUsers.EXPECT().GetByID(gomock.Any(), owner.ID).Return(&owner, nil)
	mockWriter.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, exercise models.ExerciseDB) (*models.ExerciseDB, error) {
			assert.Equal(t, owner.ID, exercise.UserID)
			assert.Equal(t, "run", exercise.Description)
			assert.Equal(t, 45, exercise.Duration)
			assert.Equal(t, time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC), exercise.Date)
			exercise.ID = exerciseID
			return &exercise, nil
		})

	svc := services.NewExerciseService(mockUsers, mockWriter)

	user, exercise, err := svc.Add(context.Background(), owner.ID.Hex(), "run", "45", "2023-01-15")
	assert.NoError(t, err)
	assert.Equal(t, &owner, user)
	assert.Equal(t, exerciseID, exercise.ID)
	assert.Equal(t, 45, exercise.Duration)
}

func TestExerciseService_Add_DefaultsToToday(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := models.UserDB{ID: primitive.NewObjectID(), Username: "bob"}

	mockUsers := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockExerciseWriter(ctrl)

	mockUsers.EXPECT().GetByID(gomock.Any(), owner.ID).Return(&owner, nil)
	mockWriter.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, exercise models.ExerciseDB) (*models.ExerciseDB, error) {
			now := time.Now().UTC()
			assert.Equal(t, time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), exercise.Date)
			return &exercise, nil
		})

	svc := services.NewExerciseService(mockUsers, mockWriter)

	_, exercise, err := svc.Add(context.Background(), owner.ID.Hex(), "swim", "30", "")
	assert.NoError(t, err)
	assert.NotNil(t, exercise)
}

func TestExerciseService_Add_WriterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := models.UserDB{ID: primitive.NewObjectID(), Username: "carol"}

	mockUsers := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockExerciseWriter(ctrl)

	mockUsers.EXPECT().GetByID(gomock.Any(), owner.ID).Return(&owner, nil)
	mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, errors.New("insert error"))

	svc := services.NewExerciseService(mockUsers, mockWriter)

	_, _, err := svc.Add(context.Background(), owner.ID.Hex(), "row", "20", "")
	assert.EqualError(t, err, "insert error")
}
