package raster

import (
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
)

// Layer is an image queued for compositing at a fixed position on the
// canvas.
type Layer struct {
	Image image.Image
	At    image.Point
}

// Flatten composites the layers over base in order, in a single pass,
// and returns the result. The base image is cloned first and never
// mutated.
func Flatten(base image.Image, layers []Layer) *image.NRGBA {
	out := imaging.Clone(base)
	for _, l := range layers {
		r := l.Image.Bounds().Sub(l.Image.Bounds().Min).Add(l.At)
		draw.Draw(out, r, l.Image, l.Image.Bounds().Min, draw.Over)
	}
	return out
}
