package metrics

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Historical submissions name the same logical field with inconsistent
// casing, accents and spacing ("Horas de Sueño", "horas_sueno", ...).
// NormalizeKey collapses all of them onto one canonical lookup key.

var whitespaceRun = regexp.MustCompile(`\s+`)

// stripMarks decomposes accented characters and removes the combining marks,
// leaving the base letter.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeKey canonicalizes a raw field name: diacritics stripped,
// lower-cased, whitespace runs replaced with a single underscore.
// Normalizing an already-canonical key returns it unchanged.
func NormalizeKey(raw string) string {
	clean, _, err := transform.String(stripMarks, raw)
	if err != nil {
		clean = raw
	}
	clean = strings.ToLower(clean)
	return whitespaceRun.ReplaceAllString(clean, "_")
}

// ParseAnswers decodes a raw answers_json object into a map keyed by
// canonical field name. The object is walked in document order, so when two
// raw keys normalize to the same canonical key the later one wins
// deterministically. Anything that is not a JSON object yields an empty map;
// malformed input never produces an error.
func ParseAnswers(data []byte) map[string]Value {
	answers := make(map[string]Value)

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return answers
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return answers
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return answers
		}
		key, ok := keyTok.(string)
		if !ok {
			return answers
		}
		var raw interface{}
		if err := dec.Decode(&raw); err != nil {
			return answers
		}
		answers[NormalizeKey(key)] = scalarValue(raw)
	}

	return answers
}

// scalarValue converts a decoded JSON value into a tagged scalar. Nulls,
// arrays and nested objects carry no metric and map to the absent value.
func scalarValue(raw interface{}) Value {
	switch v := raw.(type) {
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return TextValue(v.String())
		}
		return NumberValue(f)
	case string:
		return TextValue(v)
	case bool:
		if v {
			return TextValue("true")
		}
		return TextValue("false")
	}
	return Value{}
}
