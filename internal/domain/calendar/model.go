package calendar

import (
	"time"

	"github.com/google/uuid"
)

// Mood is the patient's self-reported state for one calendar day. The
// values are the questionnaire's original Spanish labels; they are stored
// and rendered verbatim.
type Mood string

const (
	MoodGood Mood = "buena"
	MoodFair Mood = "regular"
	MoodPoor Mood = "mala"
)

func (m Mood) Valid() bool {
	switch m {
	case MoodGood, MoodFair, MoodPoor:
		return true
	}
	return false
}

// DailyLog maps to the daily_logs table. At most one row exists per
// (user_id, date); writes replace the prior entry for the pair.
type DailyLog struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Date      string    `db:"date" json:"date"` // calendar day, YYYY-MM-DD
	Mood      Mood      `db:"mood" json:"mood"`
	Comment   *string   `db:"comment" json:"comment,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Appointment maps to the appointments table. Read-only here; scheduling is
// done by other subsystems.
type Appointment struct {
	ID          uuid.UUID `db:"id" json:"id"`
	UserID      uuid.UUID `db:"user_id" json:"user_id"`
	Date        time.Time `db:"date" json:"date"`
	Title       string    `db:"title" json:"title"`
	Description *string   `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Overview is everything the calendar view needs for a user: the full log
// set for the day markers plus all upcoming and past appointments.
type Overview struct {
	Logs         []*DailyLog    `json:"logs"`
	Appointments []*Appointment `json:"appointments"`
}
