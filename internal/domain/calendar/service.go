package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	logs         DailyLogRepository
	appointments AppointmentRepository
}

func NewService(logs DailyLogRepository, appointments AppointmentRepository) *Service {
	return &Service{logs: logs, appointments: appointments}
}

// SaveDailyLog validates, upserts the (user, date) entry, then reloads and
// returns the user's full log set. The reload is a correctness requirement:
// server-side defaults applied on write are not otherwise observable, so the
// caller must not trust its own optimistic state.
func (s *Service) SaveDailyLog(ctx context.Context, userID uuid.UUID, date string, mood Mood, comment string) ([]*DailyLog, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("user id is required")
	}
	if !mood.Valid() {
		return nil, fmt.Errorf("invalid mood: %q", mood)
	}
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}

	log := &DailyLog{UserID: userID, Date: date, Mood: mood}
	if comment != "" {
		log.Comment = &comment
	}
	if err := s.logs.Upsert(ctx, log); err != nil {
		return nil, err
	}
	return s.logs.ListByUser(ctx, userID)
}

// Logs returns the user's full log set ordered by day.
func (s *Service) Logs(ctx context.Context, userID uuid.UUID) ([]*DailyLog, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("user id is required")
	}
	return s.logs.ListByUser(ctx, userID)
}

// Overview fetches logs and appointments for the calendar view. The two
// queries have no dependency on each other and run concurrently.
func (s *Service) Overview(ctx context.Context, userID uuid.UUID) (*Overview, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("user id is required")
	}

	var ov Overview
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logs, err := s.logs.ListByUser(gctx, userID)
		ov.Logs = logs
		return err
	})
	g.Go(func() error {
		appts, err := s.appointments.ListByUser(gctx, userID)
		ov.Appointments = appts
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &ov, nil
}

// Appointments returns the user's appointments ordered by date.
func (s *Service) Appointments(ctx context.Context, userID uuid.UUID) ([]*Appointment, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("user id is required")
	}
	return s.appointments.ListByUser(ctx, userID)
}

// AppointmentsOn filters the user's appointments to one calendar day.
func (s *Service) AppointmentsOn(ctx context.Context, userID uuid.UUID, day string) ([]*Appointment, error) {
	d, err := time.Parse(time.DateOnly, day)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", day)
	}
	appts, err := s.appointments.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]*Appointment, 0)
	for _, a := range appts {
		y1, m1, d1 := a.Date.Date()
		y2, m2, d2 := d.Date()
		if y1 == y2 && m1 == m2 && d1 == d2 {
			out = append(out, a)
		}
	}
	return out, nil
}
