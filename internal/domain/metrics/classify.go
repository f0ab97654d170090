package metrics

// Category is one of the three questionnaire types the portal charts.
type Category string

const (
	CategoryGeneral   Category = "general"
	CategoryNutrition Category = "nutrition"
	CategorySleep     Category = "sleep"

	// CategoryUnknown marks a form id the portal does not chart. Unknown
	// submissions contribute to no series.
	CategoryUnknown Category = ""
)

// Categories returns the charted categories in display order.
func Categories() []Category {
	return []Category{CategoryGeneral, CategoryNutrition, CategorySleep}
}

// Classifier resolves a submission's form id to a Category by exact match.
type Classifier struct {
	byForm map[string]Category
}

func NewClassifier(generalID, nutritionID, sleepID string) *Classifier {
	return &Classifier{byForm: map[string]Category{
		generalID:   CategoryGeneral,
		nutritionID: CategoryNutrition,
		sleepID:     CategorySleep,
	}}
}

// Classify returns the category for formID, or CategoryUnknown when the id
// is not one of the three configured forms.
func (c *Classifier) Classify(formID string) Category {
	return c.byForm[formID]
}
