package reports

import (
	"time"

	"github.com/google/uuid"
)

// Report maps to the reports table. Rows are produced by an external job;
// this service only reads them. FormTitle is resolved from the originating
// submission's form at query time.
type Report struct {
	ID           uuid.UUID `db:"id" json:"id"`
	UserID       uuid.UUID `db:"user_id" json:"user_id"`
	SubmissionID uuid.UUID `db:"submission_id" json:"submission_id"`
	Status       *string   `db:"status" json:"status"`
	PDFURL       *string   `db:"pdf_url" json:"pdf_url"`
	FormTitle    string    `db:"form_title" json:"form_title"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
