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

func TestLogService_Get_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := models.UserDB{ID: primitive.NewObjectID(), Username: "alice"}

	tests := []struct {
		name      string
		userID    string
		from      string
		to        string
		limit     string
		mockSetup func(users *services.MockUserReader)
		wantErr   error
	}{
		{
			name:    "malformed user id",
			userID:  "not-an-object-id",
			wantErr: services.ErrInvalidUserID,
		},
		{
			name:   "unknown user",
			userID: owner.ID.Hex(),
			mockSetup: func(users *services.MockUserReader) {
				users.EXPECT().GetByID(gomock.Any(), owner.ID).Return(nil, nil)
			},
			wantErr: services.ErrUserNotFound,
		},
		{
			name:   "unparseable from",
			userID: owner.ID.Hex(),
			from:   "01-01-2023",
			mockSetup: func(users *services.MockUserReader) {
				users.EXPECT().GetByID(gomock.Any(), owner.ID).Return(&owner, nil)
			},
			wantErr: services.ErrInvalidFromDate,
		},
		{
			name:   "unparseable to",
			userID: owner.ID.Hex(),
			to:     "yesterday",
			mockSetup: func(users *services.MockUserReader) {
				users.EXPECT().GetByID(gomock.Any(), owner.ID).Return(&owner, nil)
			},
			wantErr: services.ErrInvalidToDate,
		},
		{
			name:   "limit not a number",
			userID: owner.ID.Hex(),
			limit:  "many",
			mockSetup: func(users *services.MockUserReader) {
				users.EXPECT().GetByID(gomock.Any(), owner.ID).Return(&owner, nil)
			},
			wantErr: services.ErrInvalidLimit,
		},
		{
			name:   "limit not positive",
			userID: owner.ID.Hex(),
			limit:  "0",
			mockSetup: func(users *services.MockUserReader) {
				users.EXPECT().GetByID(gomock.Any(), owner.ID).Return(&owner, nil)
			},
			wantErr: services.ErrInvalidLimit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := services.NewMockUserReader(ctrl)
			mockExercises := services.NewMockExerciseReader(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockUsers)
			}

			svc := services.NewLogService(mockUsers, mockExercises)

			user, exercises, err := svc.Get(context.Background(), tt.userID, tt.from, tt.to, tt.limit)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, user)
			assert.Nil(t, exercises)
		})
	}
}

func TestLogService_Get_Filters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := models.UserDB{ID: primitive.NewObjectID(), Username: "bob"}
	stored := []models.ExerciseDB{
		{
			ID:          primitive.NewObjectID(),
			UserID:      owner.ID,
			Description: "run",
			Duration:    45,
			Date:        time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	from := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, time.January, 31, 0, 0, 0, 0, time.UTC)

	mockUsers := services.NewMockUserReader(ctrl)
	mockExercises := services.NewMockExerciseReader(ctrl)

	mockUsers.EXPECT().GetByID(gomock.Any(), owner.ID).Return(&owner, nil)
	mockExercises.EXPECT().
		ListByUser(gomock.Any(), owner.ID, &from, &to, int64(1)).
		Return(stored, nil)

	svc := services.NewLogService(mockUsers, mockExercises)

	user, exercises, err := svc.Get(context.Background(), owner.ID.Hex(), "2023-01-01", "2023-01-31", "1")
	assert.NoError(t, err)
	assert.Equal(t, &owner, user)
	assert.Equal(t, stored, exercises)
}

func TestLogService_Get_NoFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := models.UserDB{ID: primitive.NewObjectID(), Username: "carol"}

	mockUsers := services.NewMockUserReader(ctrl)
	mockExercises := services.NewMockExerciseReader(ctrl)

	mockUsers.EXPECT().GetByID(gomock.Any(), owner.ID).Return(&owner, nil)
	mockExercises.EXPECT().
		ListByUser(gomock.Any(), owner.ID, gomock.Nil(), gomock.Nil(), int64(0)).
		Return([]models.ExerciseDB{}, nil)

	svc := services.NewLogService(mockUsers, mockExercises)

	user, exercises, err := svc.Get(context.Background(), owner.ID.Hex(), "", "", "")
	assert.NoError(t, err)
	assert.Equal(t, &owner, user)
	assert.Empty(t, exercises)
}

func TestLogService_Get_ReaderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := models.UserDB{ID: primitive.NewObjectID(), Username: "dave"}

	mockUsers := services.NewMockUserReader(ctrl)
	mockExercises := services.NewMockExerciseReader(ctrl)

	mockUsers.EXPECT().GetByID(gomock.Any(), owner.ID).Return(&owner, nil)
	mockExercises.EXPECT().
		ListByUser(gomock.Any(), owner.ID, gomock.Nil(), gomock.Nil(), int64(0)).
		Return(nil, errors.New("find error"))

	svc := services.NewLogService(mockUsers, mockExercises)

	_, _, err := svc.Get(context.Background(), owner.ID.Hex(), "", "", "")
	assert.EqualError(t, err, "find error")
}
