package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

// LogGetter defines the interface that the service must implement.
type LogGetter interface {
	Get(ctx context.Context, userID, from, to, limit string) (*models.UserDB, []models.ExerciseDB, error)
}

// LogEntry represents one exercise entry in a log response
// swagger:model LogEntry
type LogEntry struct {
	// Description
	// example: morning run
	Description string `json:"description"`

	// Duration in minutes
	// example: 45
	Duration int `json:"duration"`

	// Calendar date of the exercise
	// example: Sun Jan 15 2023
	Date string `json:"date"`
}

// LogResponse represents a user's exercise log
// swagger:model LogResponse
type LogResponse struct {
	// Username
	// example: john_doe
	Username string `json:"username"`

	// Number of entries returned, after filtering and limit
	// example: 2
	Count int `json:"count"`

	// User id
	// example: 5fb5853f734231456ccb3b05
	ID string `json:"_id"`

	// Matching exercise entries
	Log []LogEntry `json:"log"`
}

// NewGetLogsHandler returns an HTTP handler that reads back a user's
// exercise log.
// @Summary Get a user's exercise log
// @Description Returns the user's exercises in insertion order, optionally bounded to the inclusive [from, to] date range and capped at limit. Count reflects the returned entries, not the user's total.
// @Tags exercises
// @Produce json
// @Param id path string true "User id"
// @Param from query string false "Lower date bound, YYYY-MM-DD"
// @Param to query string false "Upper date bound, YYYY-MM-DD"
// @Param limit query int false "Maximum number of entries"
// @Success 200 {object} handlers.LogResponse "Filtered exercise log"
// @Failure 400 {object} handlers.ErrorResponse "Invalid query parameters or malformed user id"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/users/{id}/logs [get]
func NewGetLogsHandler(svc LogGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "id")
		query := r.URL.Query()

		user, exercises, err := svc.Get(r.Context(), userID, query.Get("from"), query.Get("to"), query.Get("limit"))
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

		log := make([]LogEntry, 0, len(exercises))
		for _, e := range exercises {
			log = append(log, LogEntry{
				Description: e.Description,
				Duration:    e.Duration,
				Date:        e.Date.Format(models.DateDisplayLayout),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LogResponse{
			Username: user.Username,
			Count:    len(log),
			ID:       user.ID.Hex(),
			Log:      log,
		})
	}
}
