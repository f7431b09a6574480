package raster

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/Buffnico/inmovia-sub001/internal/geometry"
)

// Text layout, stated as fractions of the target box.
const (
	// MinFontSizePx keeps tiny detected boxes readable.
	MinFontSizePx = 14.0

	// fontSizeRatio scales the font to the box height: the replacement
	// should occupy the box the way the original print did.
	fontSizeRatio = 0.80

	// leftInsetRatio is the left padding inside the box.
	leftInsetRatio = 0.04

	// baselineRatio positions the text baseline inside the box.
	baselineRatio = 0.82
)

var (
	fontOnce    sync.Once
	regularFont *truetype.Font
	boldFont    *truetype.Font
	fontErr     error
)

func loadFonts() (*truetype.Font, *truetype.Font, error) {
	fontOnce.Do(func() {
		regularFont, fontErr = truetype.Parse(goregular.TTF)
		if fontErr != nil {
			return
		}
		boldFont, fontErr = truetype.Parse(gobold.TTF)
	})
	return regularFont, boldFont, fontErr
}

// fieldTint is the slightly cool white used for non-price fields; the
// price stays pure white so it reads as the dominant element.
var fieldTint = mustHex("#eef1f6")

// shadowColor sits under every string for legibility over photographs.
var shadowColor = color.NRGBA{R: 0, G: 0, B: 0, A: 170}

func mustHex(s string) color.NRGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// FieldText renders a replacement string sized and positioned for the
// given box, returning it as a layer at the box's origin.
//
// The font size tracks the box height (80%, floored at MinFontSizePx),
// the string is left-aligned with a small inset, and the baseline sits
// near the bottom of the box, approximating where the original print
// sat. A drop shadow is drawn first for legibility. Prominent fields
// (the price) use the bold face and pure white; everything else uses
// the regular face and a tinted white.
func FieldText(text string, box geometry.Box, prominent bool) (Layer, error) {
	regular, bold, err := loadFonts()
	if err != nil {
		return Layer{}, fmt.Errorf("failed to load fonts: %w", err)
	}

	fnt := regular
	var fill color.Color = fieldTint
	if prominent {
		fnt = bold
		fill = color.White
	}

	size := fontSizeRatio * float64(box.Height)
	if size < MinFontSizePx {
		size = MinFontSizePx
	}

	dc := gg.NewContext(box.Width, box.Height)
	dc.SetFontFace(truetype.NewFace(fnt, &truetype.Options{Size: size}))

	x := leftInsetRatio * float64(box.Width)
	y := baselineRatio * float64(box.Height)
	shadowOffset := size / 24
	if shadowOffset < 1 {
		shadowOffset = 1
	}

	dc.SetColor(shadowColor)
	dc.DrawString(text, x+shadowOffset, y+shadowOffset)
	dc.SetColor(fill)
	dc.DrawString(text, x, y)

	return Layer{
		Image: dc.Image(),
		At:    image.Pt(box.Left, box.Top),
	}, nil
}
