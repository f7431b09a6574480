package layout

import (
	"sort"

	"github.com/Buffnico/inmovia-sub001/internal/config"
	"github.com/Buffnico/inmovia-sub001/internal/geometry"
	"github.com/Buffnico/inmovia-sub001/internal/ocr"
)

// DetectSlots infers which recognizer blocks are photographs.
//
// A block qualifies when it is large enough to matter (at least
// MinSlotAreaRatio of the image) and almost none of its area is covered
// by recognized words (below MaxTextCoverage): a region the engine
// segmented but could not read is what a photo looks like to OCR.
//
// Surviving candidates are sorted by area descending and deduplicated
// with greedy non-maximum suppression: a candidate is accepted only if
// its IOU with every already-accepted slot stays below SlotDedupIOU,
// biasing the result toward the largest, most reliable regions. The
// returned order is area-descending.
//
// An empty result is valid; the compositor substitutes a fallback slot.
func DetectSlots(words, blocks []ocr.Unit, width, height int, th config.Thresholds) []geometry.Box {
	imageArea := float64(width * height)
	minArea := th.MinSlotAreaRatio * imageArea

	candidates := make([]geometry.Box, 0, len(blocks))
	for _, block := range blocks {
		box := block.Box.ClampTo(width, height)
		if float64(box.Area()) < minArea {
			continue
		}
		if textCoverage(box, words, th.WordOverlapIOU) >= th.MaxTextCoverage {
			continue
		}
		candidates = append(candidates, box)
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Area() > candidates[j].Area()
	})

	slots := make([]geometry.Box, 0, len(candidates))
	for _, c := range candidates {
		overlaps := false
		for _, accepted := range slots {
			if c.IOU(accepted) >= th.SlotDedupIOU {
				overlaps = true
				break
			}
		}
		if !overlaps {
			slots = append(slots, c)
		}
	}

	return slots
}

// textCoverage is the fraction of the block's area occupied by words
// that substantially overlap it (word-to-block IOU above overlapIOU).
func textCoverage(block geometry.Box, words []ocr.Unit, overlapIOU float64) float64 {
	covered := 0
	for _, w := range words {
		if w.Box.IOU(block) > overlapIOU {
			covered += w.Box.Area()
		}
	}
	return float64(covered) / float64(block.Area())
}

// FallbackSlot is the single full-width slot used when detection yields
// nothing: the top FallbackSlotHeightRatio of the canvas, rounded.
func FallbackSlot(width, height int) geometry.Box {
	h := int(float64(height)*config.FallbackSlotHeightRatio + 0.5)
	return geometry.NewBox(0, 0, width, h)
}
