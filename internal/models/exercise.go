package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateLayout is the calendar-date format accepted in request bodies and query parameters.
const DateLayout = "2006-01-02"

// DateDisplayLayout is the human-readable calendar-date format used in responses.
const DateDisplayLayout = "Mon Jan 02 2006"

// ExerciseDB represents an exercise document in the exercises collection.
// UserID references a user that existed at creation time; this is checked per
// request, not enforced by the database. Date holds the calendar day at UTC
// midnight.
type ExerciseDB struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UserID      primitive.ObjectID `json:"userId" bson:"userId"`
	Description string             `json:"description" bson:"description"`
	Duration    int                `json:"duration" bson:"duration"`
	Date        time.Time          `json:"date" bson:"date"`
}
