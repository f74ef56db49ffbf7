package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

// ExerciseAdder defines the interface that the service must implement.
type ExerciseAdder interface {
	Add(ctx context.Context, userID, description, duration, date string) (*models.UserDB, *models.ExerciseDB, error)
}

// AddExerciseRequest represents the JSON body for adding an exercise
// swagger:model AddExerciseRequest
type AddExerciseRequest struct {
	// Description
	// required: true
	// example: morning run
	Description string `json:"description"`

	// Duration in minutes, accepted as a number or a numeric string
	// required: true
	// example: 45
	Duration interface{} `json:"duration" swaggertype:"integer"`

	// Optional calendar date, YYYY-MM-DD; defaults to today
	// example: 2023-01-15
	Date string `json:"date"`
}

// ExerciseResponse represents a successfully added exercise
// swagger:model ExerciseResponse
type ExerciseResponse struct {
	// Username of the owning user
	// example: john_doe
	Username string `json:"username"`

	// Description
	// example: morning run
	Description string `json:"description"`

	// Duration in minutes
	// example: 45
	Duration int `json:"duration"`

	// Calendar date of the exercise
	// example: Sun Jan 15 2023
	Date string `json:"date"`

	// Id of the owning user
	// example: 5fb5853f734231456ccb3b05
	ID string `json:"_id"`
}

// NewAddExerciseHandler returns an HTTP handler that appends an exercise to a
// user's log.
// @Summary Add an exercise
// @Description Appends an exercise record for the user. Accepts a form-urlencoded or JSON body; the date defaults to today when omitted. The _id in the response is the user's id.
// @Tags exercises
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param id path string true "User id"
// @Param addExerciseRequest body handlers.AddExerciseRequest true "Exercise fields"
// @Success 200 {object} handlers.ExerciseResponse "Stored exercise"
// @Failure 400 {object} handlers.ErrorResponse "Invalid fields or malformed user id"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/users/{id}/exercises [post]
func NewAddExerciseHandler(svc ExerciseAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "id")

		description, duration, date, ok := decodeExercise(r)
		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		user, exercise, err := svc.Add(r.Context(), userID, description, duration, date)
		if err != nil {
			status := statusForError(err)
			msg := err.Error()
			if status == http.StatusInternalServerError {
				logger.Log.Errorw("internal server error", "err", err)
				msg = "Internal server error"
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(ErrorResponse{Error: msg})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ExerciseResponse{
			Username:    user.Username,
			Description: exercise.Description,
			Duration:    exercise.Duration,
			Date:        exercise.Date.Format(models.DateDisplayLayout),
			ID:          user.ID.Hex(),
		})
	}
}

// decodeExercise reads the exercise fields from either a form-urlencoded or a
// JSON body. Duration stays a string here; coercion to an integer is the
// service's job so that form and JSON bodies fail identically.
func decodeExercise(r *http.Request) (description, duration, date string, ok bool) {
	if isForm(r) {
		if err := r.ParseForm(); err != nil {
			return "", "", "", false
		}
		return r.PostFormValue("description"), r.PostFormValue("duration"), r.PostFormValue("date"), true
	}

	var req AddExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", "", "", false
	}
	return req.Description, durationString(req.Duration), req.Date, true
}

// durationString renders a JSON duration value, number or string, as the
// string form the service validates.
func durationString(v interface{}) string {
	switch d := v.(type) {
	case string:
		return d
	case float64:
		return strconv.FormatFloat(d, 'f', -1, 64)
	default:
		return ""
	}
}
