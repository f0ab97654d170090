package metrics

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"
)

// displayDate is the fixed day/month/year layout stamped on series points.
// It is display-only; ordering is always computed from the raw timestamp.
const displayDate = "02/01/2006"

// Submission is the read-only view of one submissions row the pipeline
// consumes.
type Submission struct {
	ID        uuid.UUID       `db:"id" json:"id"`
	FormID    string          `db:"form_id" json:"form_id"`
	Answers   json.RawMessage `db:"answers_json" json:"answers_json"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}

// MetricPoint is one row of a derived series. It marshals flat, so the chart
// consumer sees {"date": ..., "peso": ..., "fuma": ...}.
type MetricPoint struct {
	Date    string
	Numbers map[string]float64
	Texts   map[string]string
}

func (p MetricPoint) MarshalJSON() ([]byte, error) {
	flat := make(map[string]interface{}, 1+len(p.Numbers)+len(p.Texts))
	flat["date"] = p.Date
	for k, v := range p.Numbers {
		flat[k] = v
	}
	for k, v := range p.Texts {
		flat[k] = v
	}
	return json.Marshal(flat)
}

// BuildSeries derives the chronologically ordered series for one category.
// Submissions of other (or unknown) form ids are dropped. The sort is
// stable, so submissions sharing a timestamp keep their source order.
// Recomputed fresh on every call; no state is shared between invocations.
func BuildSeries(subs []*Submission, cat Category, cls *Classifier) []MetricPoint {
	filtered := make([]*Submission, 0, len(subs))
	for _, s := range subs {
		if cls.Classify(s.FormID) == cat {
			filtered = append(filtered, s)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.Before(filtered[j].CreatedAt)
	})

	points := make([]MetricPoint, 0, len(filtered))
	for _, s := range filtered {
		rec := Extract(cat, ParseAnswers(s.Answers))
		points = append(points, MetricPoint{
			Date:    s.CreatedAt.Format(displayDate),
			Numbers: rec.Numbers,
			Texts:   rec.Texts,
		})
	}
	return points
}
