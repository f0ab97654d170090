package metrics

import "testing"

func TestNormalizeKey(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"Horas de Sueño", "horas_de_sueno"},
		{"PESO", "peso"},
		{"Presión Arterial", "presion_arterial"},
		{"Descanso  Percibido\t(1-10)", "descanso_percibido_(1-10)"},
		{"comidas_dia", "comidas_dia"},
		{"", ""},
		{"Árbol É Í Ó Ú ü ñ", "arbol_e_i_o_u_u_n"},
	}
	for _, c := range cases {
		if got := NormalizeKey(c.raw); got != c.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", c.raw, got, c.want)
		}
	}
}

func TestNormalizeKey_Idempotent(t *testing.T) {
	raws := []string{"Horas de Sueño", "Presión Arterial", "FUMA", "a  b\tc"}
	for _, raw := range raws {
		once := NormalizeKey(raw)
		if twice := NormalizeKey(once); twice != once {
			t.Errorf("NormalizeKey not idempotent for %q: %q -> %q", raw, once, twice)
		}
	}
}

func TestParseAnswers(t *testing.T) {
	answers := ParseAnswers([]byte(`{"Peso": 72.5, "FUMA": "no", "Altura": "1.80", "extra": null}`))

	if v := answers["peso"]; v.Kind != ValueNumber || v.Num != 72.5 {
		t.Errorf("peso = %+v, want number 72.5", v)
	}
	if v := answers["fuma"]; v.Kind != ValueText || v.Str != "no" {
		t.Errorf("fuma = %+v, want text \"no\"", v)
	}
	if v := answers["altura"]; v.Kind != ValueText || v.Str != "1.80" {
		t.Errorf("altura = %+v, want text \"1.80\"", v)
	}
	if v := answers["extra"]; v.Kind != ValueAbsent {
		t.Errorf("null should map to absent, got %+v", v)
	}
}

func TestParseAnswers_DocumentOrderCollision(t *testing.T) {
	// Both raw keys normalize to horas_de_sueno; the later one in the
	// document must win regardless of map iteration order.
	answers := ParseAnswers([]byte(`{"Horas de Sueño": 7, "horas_de_sueno": 8}`))
	if v := answers["horas_de_sueno"]; v.Number() != 8 {
		t.Errorf("collision winner = %v, want 8", v.Number())
	}

	answers = ParseAnswers([]byte(`{"horas_de_sueno": 8, "Horas de Sueño": 7}`))
	if v := answers["horas_de_sueno"]; v.Number() != 7 {
		t.Errorf("collision winner = %v, want 7", v.Number())
	}
}

func TestParseAnswers_NonObject(t *testing.T) {
	for _, raw := range []string{`[]`, `"text"`, `42`, `null`, ``, `{invalid`} {
		answers := ParseAnswers([]byte(raw))
		if answers == nil {
			t.Fatalf("ParseAnswers(%q) returned nil map", raw)
		}
		if len(answers) != 0 {
			t.Errorf("ParseAnswers(%q) = %v, want empty map", raw, answers)
		}
	}
}

func TestParseAnswers_TruncatedObject(t *testing.T) {
	// Keys decoded before the syntax error are kept.
	answers := ParseAnswers([]byte(`{"peso": 70, "altura":`))
	if v := answers["peso"]; v.Number() != 70 {
		t.Errorf("peso = %v, want 70", v.Number())
	}
}

func TestParseAnswers_BoolAndNested(t *testing.T) {
	answers := ParseAnswers([]byte(`{"fuma": true, "meta": {"x": 1}, "list": [1,2]}`))
	if v := answers["fuma"]; v.Text() != "true" {
		t.Errorf("bool = %q, want \"true\"", v.Text())
	}
	if v := answers["meta"]; v.Kind != ValueAbsent {
		t.Errorf("nested object should be absent, got %+v", v)
	}
	if v := answers["list"]; v.Kind != ValueAbsent {
		t.Errorf("array should be absent, got %+v", v)
	}
}

func TestValue_Number(t *testing.T) {
	cases := []struct {
		v    Value
		want float64
	}{
		{NumberValue(72.5), 72.5},
		{TextValue("1.80"), 1.8},
		{TextValue(" 7 "), 7},
		{TextValue("abnormal"), 0},
		{TextValue(""), 0},
		{TextValue("NaN"), 0},
		{TextValue("Inf"), 0},
		{Value{}, 0},
	}
	for _, c := range cases {
		if got := c.v.Number(); got != c.want {
			t.Errorf("%+v.Number() = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestValue_Text(t *testing.T) {
	if got := NumberValue(72.5).Text(); got != "72.5" {
		t.Errorf("Text() = %q, want \"72.5\"", got)
	}
	if got := (Value{}).Text(); got != "" {
		t.Errorf("absent Text() = %q, want \"\"", got)
	}
}
