package calendar

import (
	"context"

	"github.com/google/uuid"
)

type DailyLogRepository interface {
	// Upsert inserts the log or replaces the existing row sharing its
	// (user_id, date) key. Never produces duplicates.
	Upsert(ctx context.Context, log *DailyLog) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*DailyLog, error)
}

type AppointmentRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Appointment, error)
}
