package metrics

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// HealthData holds the three derived series the charts consume.
type HealthData struct {
	General   []MetricPoint `json:"general"`
	Nutrition []MetricPoint `json:"nutrition"`
	Sleep     []MetricPoint `json:"sleep"`
}

type Service struct {
	submissions SubmissionRepository
	classifier  *Classifier
}

func NewService(submissions SubmissionRepository, classifier *Classifier) *Service {
	return &Service{submissions: submissions, classifier: classifier}
}

// HealthData recomputes the per-category series from the user's submissions.
// Nothing is cached; every call derives fresh series. The three builds are
// independent and run concurrently, each writing only its own slot.
func (s *Service) HealthData(ctx context.Context, userID uuid.UUID) (*HealthData, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("user id is required")
	}

	subs, err := s.submissions.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	data := &HealthData{}
	var g errgroup.Group
	g.Go(func() error {
		data.General = BuildSeries(subs, CategoryGeneral, s.classifier)
		return nil
	})
	g.Go(func() error {
		data.Nutrition = BuildSeries(subs, CategoryNutrition, s.classifier)
		return nil
	})
	g.Go(func() error {
		data.Sleep = BuildSeries(subs, CategorySleep, s.classifier)
		return nil
	})
	// Builders are total functions over arbitrary input; Wait never fails.
	_ = g.Wait()

	return data, nil
}
