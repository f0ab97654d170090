package forms

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	forms       FormRepository
	submissions SubmissionRepository
}

func NewService(forms FormRepository, submissions SubmissionRepository) *Service {
	return &Service{forms: forms, submissions: submissions}
}

// ListForms returns the form catalog in creation order.
func (s *Service) ListForms(ctx context.Context) ([]*Form, error) {
	return s.forms.List(ctx)
}

func (s *Service) GetForm(ctx context.Context, id uuid.UUID) (*Form, error) {
	return s.forms.GetByID(ctx, id)
}

// SubmitAnswers validates and stores one submission. Answers must be a JSON
// object; field-name normalization happens later, at extraction time, so
// historical submissions with any key convention remain chartable.
func (s *Service) SubmitAnswers(ctx context.Context, userID, formID uuid.UUID, answers json.RawMessage) (*Submission, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("user id is required")
	}
	if formID == uuid.Nil {
		return nil, fmt.Errorf("form id is required")
	}
	if _, err := s.forms.GetByID(ctx, formID); err != nil {
		return nil, fmt.Errorf("unknown form: %w", err)
	}
	if len(answers) == 0 || !json.Valid(answers) {
		return nil, fmt.Errorf("answers must be a JSON object")
	}

	sub := &Submission{UserID: userID, FormID: formID, Answers: answers}
	if err := s.submissions.Create(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}
