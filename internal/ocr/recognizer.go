// Package ocr wraps the Tesseract OCR engine (via gosseract/v2) behind
// the Recognizer interface the layout analyzer consumes.
//
// The engine is treated as a black box: its output boxes are noisy and
// every downstream stage is expected to tolerate missing or spurious
// units. Tesseract and the language data (tesseract-ocr-spa for the
// default Spanish templates) must be installed on the system.
package ocr

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"

	"github.com/Buffnico/inmovia-sub001/internal/geometry"
)

// Unit is one recognized piece of text with its location.
type Unit struct {
	Text string       `json:"text"`
	Box  geometry.Box `json:"box"`
}

// Recognition is the full output of one recognizer pass: line-level
// units for field classification, word-level units for text coverage,
// block-level units for slot candidates.
type Recognition struct {
	Lines  []Unit `json:"lines"`
	Words  []Unit `json:"words"`
	Blocks []Unit `json:"blocks"`
}

// Recognizer produces text units from a raster image on disk.
//
// Implementations may return an empty Recognition when the engine finds
// nothing usable; that is degradation, not an error.
type Recognizer interface {
	Recognize(imagePath string) (*Recognition, error)
}

// Tesseract is the gosseract-backed Recognizer.
type Tesseract struct {
	// Language is the Tesseract language code, e.g. "spa".
	Language string
}

// NewTesseract creates a Recognizer for the given language code.
func NewTesseract(language string) *Tesseract {
	return &Tesseract{Language: language}
}

// Recognize runs Tesseract over the image at line, word and block
// granularity.
//
// A failure to initialize the engine or load the image is an error.
// A failure to extract bounding boxes at any single level degrades to
// an empty slice at that level: the caller still gets whatever the
// other levels produced.
func (t *Tesseract) Recognize(imagePath string) (*Recognition, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(t.Language); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImage(imagePath); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	return &Recognition{
		Lines:  boxesAtLevel(client, gosseract.RIL_TEXTLINE, true),
		Words:  boxesAtLevel(client, gosseract.RIL_WORD, true),
		Blocks: boxesAtLevel(client, gosseract.RIL_BLOCK, false),
	}, nil
}

// boxesAtLevel extracts units at one iterator level. Block-level units
// are kept even when their text is empty: a block with no recognized
// text is exactly what a photo region looks like.
func boxesAtLevel(client *gosseract.Client, level gosseract.PageIteratorLevel, skipEmpty bool) []Unit {
	boxes, err := client.GetBoundingBoxes(level)
	if err != nil {
		return nil
	}

	units := make([]Unit, 0, len(boxes))
	for _, box := range boxes {
		if skipEmpty && box.Word == "" {
			continue
		}
		units = append(units, Unit{
			Text: box.Word,
			Box:  geometry.FromRect(box.Box),
		})
	}
	return units
}
