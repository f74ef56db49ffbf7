package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/exercise-tracker/internal/models"
	"github.com/sbilibin2017/exercise-tracker/internal/services"
)

func TestAddExerciseHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := models.UserDB{ID: primitive.NewObjectID(), Username: "john"}
	stored := models.ExerciseDB{
		ID:          primitive.NewObjectID(),
		UserID:      owner.ID,
		Description: "run",
		Duration:    45,
		Date:        time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name         string
		userID       string
		body         string
		contentType  string
		mockSetup    func(m *MockExerciseAdder)
		expectedCode int
		expectedBody map[string]interface{}
	}{
		{
			name:        "success with JSON number duration",
			userID:      owner.ID.Hex(),
			body:        `{"description":"run","duration":45,"date":"2023-01-15"}`,
			contentType: "application/json",
			mockSetup: func(m *MockExerciseAdder) {
				m.EXPECT().
					Add(gomock.Any(), owner.ID.Hex(), "run", "45", "2023-01-15").
					Return(&owner, &stored, nil)
			},
			expectedCode: 200,
			expectedBody: map[string]interface{}{
				"username":    "john",
				"description": "run",
				"duration":    float64(45),
				"date":        "Sun Jan 15 2023",
				"_id":         owner.ID.Hex(),
			},
		},
		{
			name:        "success with JSON string duration",
			userID:      owner.ID.Hex(),
			body:        `{"description":"run","duration":"45","date":"2023-01-15"}`,
			contentType: "application/json",
			mockSetup: func(m *MockExerciseAdder) {
				m.EXPECT().
					Add(gomock.Any(), owner.ID.Hex(), "run", "45", "2023-01-15").
					Return(&owner, &stored, nil)
			},
			expectedCode: 200,
			expectedBody: map[string]interface{}{
				"username":    "john",
				"description": "run",
				"duration":    float64(45),
				"date":        "Sun Jan 15 2023",
				"_id":         owner.ID.Hex(),
			},
		},
		{
			name:        "success with form body",
			userID:      owner.ID.Hex(),
			body:        url.Values{"description": {"run"}, "duration": {"45"}, "date": {"2023-01-15"}}.Encode(),
			contentType: "application/x-www-form-urlencoded",
			mockSetup: func(m *MockExerciseAdder) {
				m.EXPECT().
					Add(gomock.Any(), owner.ID.Hex(), "run", "45", "2023-01-15").
					Return(&owner, &stored, nil)
			},
			expectedCode: 200,
			expectedBody: map[string]interface{}{
				"username":    "john",
				"description": "run",
				"duration":    float64(45),
				"date":        "Sun Jan 15 2023",
				"_id":         owner.ID.Hex(),
			},
		},
		{
			name:        "missing description",
			userID:      owner.ID.Hex(),
			body:        `{"duration":45}`,
			contentType: "application/json",
			mockSetup: func(m *MockExerciseAdder) {
				m.EXPECT().
					Add(gomock.Any(), owner.ID.Hex(), "", "45", "").
					Return(nil, nil, services.ErrDescriptionRequired)
			},
			expectedCode: 400,
			expectedBody: map[string]interface{}{"error": "description is required"},
		},
		{
			name:        "malformed user id",
			userID:      "not-an-object-id",
			body:        `{"description":"run","duration":45}`,
			contentType: "application/json",
			mockSetup: func(m *MockExerciseAdder) {
				m.EXPECT().
					Add(gomock.Any(), "not-an-object-id", "run", "45", "").
					Return(nil, nil, services.ErrInvalidUserID)
			},
			expectedCode: 400,
			expectedBody: map[string]interface{}{"error": "invalid user id"},
		},
		{
			name:        "unknown user",
			userID:      owner.ID.Hex(),
			body:        `{"description":"run","duration":45}`,
			contentType: "application/json",
			mockSetup: func(m *MockExerciseAdder) {
				m.EXPECT().
					Add(gomock.Any(), owner.ID.Hex(), "run", "45", "").
					Return(nil, nil, services.ErrUserNotFound)
			},
			expectedCode: 404,
			expectedBody: map[string]interface{}{"error": "user not found"},
		},
		{
			name:        "storage failure",
			userID:      owner.ID.Hex(),
			body:        `{"description":"run","duration":45}`,
			contentType: "application/json",
			mockSetup: func(m *MockExerciseAdder) {
				m.EXPECT().
					Add(gomock.Any(), owner.ID.Hex(), "run", "45", "").
					Return(nil, nil, errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]interface{}{"error": "Internal server error"},
		},
		{
			name:         "invalid json",
			userID:       owner.ID.Hex(),
			body:         "{invalid json}",
			contentType:  "application/json",
			expectedCode: 400,
			expectedBody: map[string]interface{}{"error": "invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockExerciseAdder(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			r := chi.NewRouter()
			r.Post("/api/users/{id}/exercises", NewAddExerciseHandler(mockSvc))

			req := httptest.NewRequest(http.MethodPost, "/api/users/"+tt.userID+"/exercises", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", tt.contentType)

			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]interface{}
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
