package forms

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Form maps to the forms table. SchemaJSON is the ordered question list the
// frontend renders; the server treats it as opaque.
type Form struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	Title       string          `db:"title" json:"title"`
	Description *string         `db:"description" json:"description,omitempty"`
	SchemaJSON  json.RawMessage `db:"schema_json" json:"schema_json,omitempty"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}

// Submission maps to the submissions table: one user's answers to one form
// instance. Answers is a free-form object; field names are not normalized
// at write time, only when series are derived.
type Submission struct {
	ID        uuid.UUID       `db:"id" json:"id"`
	UserID    uuid.UUID       `db:"user_id" json:"user_id"`
	FormID    uuid.UUID       `db:"form_id" json:"form_id"`
	Answers   json.RawMessage `db:"answers_json" json:"answers_json"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}
