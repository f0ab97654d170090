package calendar

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/saluddigital/portal/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// =========== Daily Log Repository ===========

type dailyLogRepoPG struct{ pool *pgxpool.Pool }

func NewDailyLogRepoPG(pool *pgxpool.Pool) DailyLogRepository {
	return &dailyLogRepoPG{pool: pool}
}

func (r *dailyLogRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

// The daily_logs table carries UNIQUE (user_id, date); the conflict clause
// turns a second save for the same day into a replacement.
func (r *dailyLogRepoPG) Upsert(ctx context.Context, log *DailyLog) error {
	log.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO daily_logs (id, user_id, date, mood, comment)
		VALUES ($1, $2, $3::date, $4, $5)
		ON CONFLICT (user_id, date)
		DO UPDATE SET mood = EXCLUDED.mood, comment = EXCLUDED.comment, updated_at = NOW()`,
		log.ID, log.UserID, log.Date, log.Mood, log.Comment)
	return err
}

func (r *dailyLogRepoPG) ListByUser(ctx context.Context, userID uuid.UUID) ([]*DailyLog, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, user_id, to_char(date, 'YYYY-MM-DD'), mood, comment, created_at, updated_at
		FROM daily_logs
		WHERE user_id = $1
		ORDER BY date ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*DailyLog
	for rows.Next() {
		var l DailyLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.Date, &l.Mood, &l.Comment, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, &l)
	}
	return items, rows.Err()
}

// =========== Appointment Repository ===========

type appointmentRepoPG struct{ pool *pgxpool.Pool }

func NewAppointmentRepoPG(pool *pgxpool.Pool) AppointmentRepository {
	return &appointmentRepoPG{pool: pool}
}

func (r *appointmentRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

func (r *appointmentRepoPG) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Appointment, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, user_id, date, title, description, created_at
		FROM appointments
		WHERE user_id = $1
		ORDER BY date ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Appointment
	for rows.Next() {
		var a Appointment
		if err := rows.Scan(&a.ID, &a.UserID, &a.Date, &a.Title, &a.Description, &a.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, &a)
	}
	return items, rows.Err()
}
