package raster

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"

	"github.com/Buffnico/inmovia-sub001/internal/geometry"
)

// BlurRegion cuts the given region out of base, blurs it, and returns
// it as a layer positioned back over its origin. Compositing the layer
// visually erases whatever was printed in the region without precise
// masking. The base image is not modified.
func BlurRegion(base image.Image, box geometry.Box, sigma float64) Layer {
	region := imaging.Crop(base, box.Rect())
	return Layer{
		Image: blur.Gaussian(region, sigma),
		At:    image.Pt(box.Left, box.Top),
	}
}
