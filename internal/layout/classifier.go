// Package layout infers the semantic layout of a portada template from
// raw OCR output: which text lines are replaceable fields and which
// image blocks are photo slots.
package layout

import (
	"regexp"

	"github.com/Buffnico/inmovia-sub001/internal/geometry"
)

// FieldKind is one of the four replaceable text categories a template
// can carry.
type FieldKind string

const (
	FieldPrice   FieldKind = "price"
	FieldRooms   FieldKind = "rooms"
	FieldArea    FieldKind = "area"
	FieldAddress FieldKind = "address"
)

// FieldKinds lists every kind in classification priority order.
var FieldKinds = []FieldKind{FieldPrice, FieldRooms, FieldArea, FieldAddress}

// Candidate is a recognized text line that matched a field pattern.
type Candidate struct {
	Kind FieldKind    `json:"kind"`
	Box  geometry.Box `json:"box"`
	Text string       `json:"text"`
}

// fieldPattern pairs a kind with its lexical matcher. The table is
// data, not control flow: extending detection means adding a row.
type fieldPattern struct {
	kind    FieldKind
	pattern *regexp.Regexp
}

// Patterns are evaluated in this order. Price first: currency symbols
// and digits co-occur with the other categories, so a priced line must
// not fall through to rooms or address.
var fieldPatterns = []fieldPattern{
	// Currency markers, or "$" followed by whitespace and digits.
	{FieldPrice, regexp.MustCompile(`(?i)u\$s|usd|us\$|\$\s+[0-9]`)},
	// "amb"/"ambiente(s)" token (optionally abbreviated with a trailing
	// period), or a digit glued to "amb".
	{FieldRooms, regexp.MustCompile(`(?i)\bambientes?\b|\bamb\.?|[0-9]amb`)},
	// Surface-unit tokens.
	{FieldArea, regexp.MustCompile(`(?i)m2|m²|metros|mts|mtrs`)},
	// An alphabetic run and a digit run in either order. OCR of street
	// names carries accented vowels and ñ.
	{FieldAddress, regexp.MustCompile(`(?i)[a-záéíóúñü]+.*[0-9]|[0-9].*[a-záéíóúñü]`)},
}

// Classify maps a recognized line of text to a FieldKind. It is a pure
// function of the string: the same input always yields the same result.
// The second return is false when no pattern matches.
func Classify(text string) (FieldKind, bool) {
	for _, fp := range fieldPatterns {
		if fp.pattern.MatchString(text) {
			return fp.kind, true
		}
	}
	return "", false
}
