package layout

// Select picks the single best candidate for a field kind, or false
// when there are none.
//
// Price, rooms and area prefer the largest bounding-box area: the most
// prominent rendering of a field is assumed to be the real one, while
// OCR noise produces smaller spurious matches. Address prefers the
// topmost box instead, since addresses sit near the top of the design.
// The asymmetry is deliberate; unifying the metrics would silently
// change which candidate wins on ambiguous templates.
func Select(kind FieldKind, candidates []Candidate) (Candidate, bool) {
	if len(candidates) == 0 {
		return Candidate{}, false
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if better(kind, c, best) {
			best = c
		}
	}
	return best, true
}

func better(kind FieldKind, c, than Candidate) bool {
	if kind == FieldAddress {
		return c.Box.Top < than.Box.Top
	}
	return c.Box.Area() > than.Box.Area()
}
