package raster

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// CoverFit resizes img to fill width×height completely, cropping the
// overflow toward the most visually interesting region instead of the
// geometric center.
//
// The image is first scaled so both dimensions cover the target, then
// the crop window slides along the overflow axis toward the centroid of
// Sobel edge magnitude: busy areas (facades, interiors, large type)
// attract the window, flat sky and walls get cropped away. The result
// is always exactly width×height.
func CoverFit(img image.Image, width, height int) image.Image {
	srcW := img.Bounds().Dx()
	srcH := img.Bounds().Dy()
	if srcW == width && srcH == height {
		return imaging.Clone(img)
	}

	scale := math.Max(float64(width)/float64(srcW), float64(height)/float64(srcH))
	scaledW := int(math.Ceil(float64(srcW) * scale))
	scaledH := int(math.Ceil(float64(srcH) * scale))
	scaled := imaging.Resize(img, scaledW, scaledH, imaging.Lanczos)

	cx, cy := interestCentroid(scaled)

	left := clampInt(cx-width/2, 0, scaledW-width)
	top := clampInt(cy-height/2, 0, scaledH-height)

	return imaging.Crop(scaled, image.Rect(left, top, left+width, top+height))
}

// FitPhoto cover-fits a photograph to the exact dimensions of a slot.
// Photos carry no layout prior, so the crop anchors at the center.
func FitPhoto(img image.Image, width, height int) image.Image {
	return imaging.Fill(img, width, height, imaging.Center, imaging.Lanczos)
}

// interestSampleWidth bounds the working size of the saliency pass;
// gradient mass is stable under downsampling and the full-resolution
// scan would dominate the stage's cost.
const interestSampleWidth = 256

// interestCentroid returns the gradient-magnitude-weighted centroid of
// the image, in the image's own coordinates. A flat image (no edges at
// all) yields the geometric center.
func interestCentroid(img image.Image) (int, int) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	sampleW := w
	sampleH := h
	if w > interestSampleWidth {
		sampleW = interestSampleWidth
		sampleH = h * interestSampleWidth / w
		if sampleH < 1 {
			sampleH = 1
		}
	}
	gray := imaging.Grayscale(imaging.Resize(img, sampleW, sampleH, imaging.Box))

	var sumX, sumY, total float64
	for y := 1; y < sampleH-1; y++ {
		for x := 1; x < sampleW-1; x++ {
			gx := sobelAt(gray, x, y, true)
			gy := sobelAt(gray, x, y, false)
			mag := math.Sqrt(gx*gx + gy*gy)
			sumX += float64(x) * mag
			sumY += float64(y) * mag
			total += mag
		}
	}

	if total == 0 {
		return w / 2, h / 2
	}
	return int(sumX / total * float64(w) / float64(sampleW)),
		int(sumY / total * float64(h) / float64(sampleH))
}

var sobelX = [3][3]float64{{-1, 0, 1}, {-2, 0, 2}, {-1, 0, 1}}
var sobelY = [3][3]float64{{-1, -2, -1}, {0, 0, 0}, {1, 2, 1}}

func sobelAt(img *image.NRGBA, x, y int, horizontal bool) float64 {
	kernel := &sobelX
	if !horizontal {
		kernel = &sobelY
	}

	var sum float64
	for ky := -1; ky <= 1; ky++ {
		for kx := -1; kx <= 1; kx++ {
			// Grayscale NRGBA: R, G and B are equal, read R.
			v := img.NRGBAAt(x+kx, y+ky).R
			sum += kernel[ky+1][kx+1] * float64(v)
		}
	}
	return sum
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
