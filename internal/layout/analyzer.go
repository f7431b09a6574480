package layout

import (
	"github.com/Buffnico/inmovia-sub001/internal/config"
	"github.com/Buffnico/inmovia-sub001/internal/geometry"
	"github.com/Buffnico/inmovia-sub001/internal/ocr"
)

// Result is the inferred layout of one template at one canvas size.
// It lives for a single composition call and is never persisted; every
// call re-derives layout from scratch.
type Result struct {
	Fields map[FieldKind]Candidate `json:"fields"`
	Slots  []geometry.Box          `json:"slots"`
	Width  int                     `json:"width"`
	Height int                     `json:"height"`
}

// Analyze turns raw recognizer output into a layout: classify every
// line, select one winner per field kind, and detect photo slots.
//
// Empty or partial recognizer output is expected; the result simply
// carries fewer fields or slots. Every returned box is clamped into
// [0,width) × [0,height).
func Analyze(rec *ocr.Recognition, width, height int, th config.Thresholds) *Result {
	byKind := make(map[FieldKind][]Candidate)
	for _, line := range rec.Lines {
		kind, ok := Classify(line.Text)
		if !ok {
			continue
		}
		byKind[kind] = append(byKind[kind], Candidate{
			Kind: kind,
			Box:  line.Box.ClampTo(width, height),
			Text: line.Text,
		})
	}

	fields := make(map[FieldKind]Candidate, len(byKind))
	for _, kind := range FieldKinds {
		if winner, ok := Select(kind, byKind[kind]); ok {
			fields[kind] = winner
		}
	}

	return &Result{
		Fields: fields,
		Slots:  DetectSlots(rec.Words, rec.Blocks, width, height, th),
		Width:  width,
		Height: height,
	}
}
