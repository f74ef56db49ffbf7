package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

// UserCreator defines the interface that the service must implement.
type UserCreator interface {
	Create(ctx context.Context, username string) (*models.UserDB, error)
}

// CreateUserRequest represents the JSON body for user creation
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// Username
	// required: true
	// example: john_doe
	Username string `json:"username"`
}

// UserResponse represents a user record in responses
// swagger:model UserResponse
type UserResponse struct {
	// Username
	// example: john_doe
	Username string `json:"username"`

	// User id
	// example: 5fb5853f734231456ccb3b05
	ID string `json:"_id"`
}

// NewCreateUserHandler returns an HTTP handler for user creation.
// @Summary Create a user
// @Description Creates a user with the given username, or returns the existing record when the username is already registered. Accepts a form-urlencoded or JSON body.
// @Tags users
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param createUserRequest body handlers.CreateUserRequest true "User creation request"
// @Success 200 {object} handlers.UserResponse "Created or pre-existing user"
// @Failure 400 {object} handlers.ErrorResponse "Missing username / username taken"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/users [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := decodeUsername(r)
		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		user, err := svc.Create(r.Context(), username)
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
		json.NewEncoder(w).Encode(UserResponse{
			Username: user.Username,
			ID:       user.ID.Hex(),
		})
	}
}

// decodeUsername reads the username field from either a form-urlencoded or a
// JSON body. The second return value is false only when the body itself could
// not be decoded; an absent field comes back as an empty string and is left
// to the service to reject.
func decodeUsername(r *http.Request) (string, bool) {
	if isForm(r) {
		if err := r.ParseForm(); err != nil {
			return "", false
		}
		return r.PostFormValue("username"), true
	}

	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", false
	}
	return req.Username, true
}

// isForm reports whether the request carries a form-encoded body.
func isForm(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	return strings.HasPrefix(ct, "application/x-www-form-urlencoded") ||
		strings.HasPrefix(ct, "multipart/form-data")
}
