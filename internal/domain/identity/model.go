package identity

import (
	"time"

	"github.com/google/uuid"
)

// User maps to the users table, linking the external auth subject to the
// portal's internal id. All per-user queries key on the internal id.
type User struct {
	ID        uuid.UUID `db:"id" json:"id"`
	AuthID    string    `db:"auth_id" json:"auth_id"`
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// PatientProfile maps to the patient_profiles table.
type PatientProfile struct {
	ID             uuid.UUID `db:"id" json:"id"`
	UserID         uuid.UUID `db:"user_id" json:"user_id"`
	BirthDate      *string   `db:"birth_date" json:"birth_date,omitempty"` // YYYY-MM-DD
	Gender         *string   `db:"gender" json:"gender,omitempty"`
	MedicalHistory *string   `db:"medical_history" json:"medical_history,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// Profile is the profile view payload: the user plus their patient record,
// which may be nil when no profile has been captured yet.
type Profile struct {
	User    *User           `json:"user"`
	Profile *PatientProfile `json:"profile,omitempty"`
}
