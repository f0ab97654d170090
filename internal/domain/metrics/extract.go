package metrics

import "strings"

type fieldKind int

const (
	fieldNumber fieldKind = iota
	fieldText
	fieldPressure
)

// fieldSpec describes one logical metric field. Aliases are tried in order;
// the first present wins, so more specific historical names come first.
type fieldSpec struct {
	name    string
	kind    fieldKind
	aliases []string
}

// categoryFields is the full extraction table per category. Alias lists
// reflect every raw key name the questionnaire schemas have used over time.
var categoryFields = map[Category][]fieldSpec{
	CategoryGeneral: {
		{name: "peso", kind: fieldNumber, aliases: []string{"peso"}},
		{name: "altura", kind: fieldNumber, aliases: []string{"altura"}},
		{name: "presion", kind: fieldPressure, aliases: []string{"presion", "presion_arterial"}},
		{name: "fuma", kind: fieldText, aliases: []string{"fuma"}},
	},
	CategoryNutrition: {
		{name: "comidas_dia", kind: fieldNumber, aliases: []string{"comidas_dia", "comidas_al_dia", "comidas_por_dia"}},
	},
	CategorySleep: {
		{name: "descanso", kind: fieldNumber, aliases: []string{"descanso_percibido_(1-10)", "descanso_percibido_1-10", "descanso"}},
		{name: "horas_sueno", kind: fieldNumber, aliases: []string{"horas_de_sueno_por_noche", "horas_sueno", "horas_de_sueno"}},
	},
}

// Record is one extracted submission: numeric and free-text fields keyed by
// logical name.
type Record struct {
	Numbers map[string]float64
	Texts   map[string]string
}

// Extract pulls the category's fields out of a normalized answers map. It is
// total: missing or malformed fields resolve to their documented defaults
// (0 for numbers, "" for text) and never produce an error.
func Extract(cat Category, answers map[string]Value) Record {
	rec := Record{
		Numbers: make(map[string]float64),
		Texts:   make(map[string]string),
	}
	for _, f := range categoryFields[cat] {
		v := lookupAlias(answers, f.aliases)
		switch f.kind {
		case fieldNumber:
			rec.Numbers[f.name] = v.Number()
		case fieldText:
			rec.Texts[f.name] = v.Text()
		case fieldPressure:
			sys, dia := splitPressure(v.Text())
			rec.Numbers["sistolica"] = sys
			rec.Numbers["diastolica"] = dia
			rec.Texts[f.name] = v.Text()
		}
	}
	return rec
}

// lookupAlias returns the first present alias value. An explicit zero or
// empty string counts as present; a JSON null does not.
func lookupAlias(answers map[string]Value, aliases []string) Value {
	for _, a := range aliases {
		if v, ok := answers[a]; ok && v.Kind != ValueAbsent {
			return v
		}
	}
	return Value{}
}

// splitPressure splits a "<systolic>/<diastolic>" composite and coerces each
// side independently. A string without the separator yields 0/0.
func splitPressure(s string) (float64, float64) {
	i := strings.IndexByte(s, '/')
	if i < 0 {
		return 0, 0
	}
	return TextValue(s[:i]).Number(), TextValue(s[i+1:]).Number()
}
