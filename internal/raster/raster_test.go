package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/Buffnico/inmovia-sub001/internal/geometry"
)

// createSolidImage creates a solid color test image
func createSolidImage(width, height int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestCoverFit_ExactDimensions(t *testing.T) {
	tests := []struct {
		name       string
		srcW, srcH int
		dstW, dstH int
	}{
		{"downscale square", 2000, 2000, 1080, 1080},
		{"wide to portrait", 1920, 1080, 1080, 1350},
		{"tall to landscape", 1080, 1920, 1920, 1080},
		{"upscale", 500, 400, 1080, 1080},
		{"same size", 1080, 1080, 1080, 1080},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := createSolidImage(tt.srcW, tt.srcH, color.NRGBA{120, 140, 160, 255})
			got := CoverFit(src, tt.dstW, tt.dstH)
			if got.Bounds().Dx() != tt.dstW || got.Bounds().Dy() != tt.dstH {
				t.Errorf("dimensions: got %dx%d, want %dx%d",
					got.Bounds().Dx(), got.Bounds().Dy(), tt.dstW, tt.dstH)
			}
		})
	}
}

func TestCoverFit_LeansTowardInterest(t *testing.T) {
	// A wide flat image with a busy patch on the right: the crop
	// window should keep the patch.
	src := createSolidImage(2000, 500, color.NRGBA{200, 200, 200, 255})
	for y := 100; y < 400; y++ {
		for x := 1600; x < 1900; x++ {
			if (x+y)%2 == 0 {
				src.Set(x, y, color.NRGBA{0, 0, 0, 255})
			}
		}
	}

	got := CoverFit(src, 500, 500)

	// After scaling to height 500 the patch spans roughly x 1600..1900
	// in original coordinates; a centered crop (x 750..1250) would miss
	// it entirely. Look for any dark pixel in the result.
	dark := false
	for y := 0; y < 500 && !dark; y++ {
		for x := 0; x < 500; x++ {
			c := color.NRGBAModel.Convert(got.At(x, y)).(color.NRGBA)
			if c.R < 100 {
				dark = true
				break
			}
		}
	}
	if !dark {
		t.Error("crop window did not move toward the high-detail region")
	}
}

func TestFitPhoto_ExactDimensions(t *testing.T) {
	src := createSolidImage(800, 600, color.NRGBA{10, 20, 30, 255})
	got := FitPhoto(src, 300, 500)
	if got.Bounds().Dx() != 300 || got.Bounds().Dy() != 500 {
		t.Errorf("dimensions: got %dx%d, want 300x500", got.Bounds().Dx(), got.Bounds().Dy())
	}
}

func TestBlurRegion(t *testing.T) {
	base := createSolidImage(200, 200, color.NRGBA{255, 255, 255, 255})
	box := geometry.NewBox(40, 60, 80, 30)

	layer := BlurRegion(base, box, 8.0)

	if layer.At != image.Pt(40, 60) {
		t.Errorf("layer position: got %v, want (40,60)", layer.At)
	}
	if layer.Image.Bounds().Dx() != 80 || layer.Image.Bounds().Dy() != 30 {
		t.Errorf("layer size: got %dx%d, want 80x30",
			layer.Image.Bounds().Dx(), layer.Image.Bounds().Dy())
	}
}

func TestBlurRegion_DoesNotMutateBase(t *testing.T) {
	base := createSolidImage(100, 100, color.NRGBA{255, 0, 0, 255})
	_ = BlurRegion(base, geometry.NewBox(10, 10, 50, 50), 8.0)

	c := base.NRGBAAt(30, 30)
	if c != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("base mutated: pixel (30,30) = %v", c)
	}
}

func TestFlatten(t *testing.T) {
	base := createSolidImage(100, 100, color.NRGBA{0, 0, 255, 255})
	patch := createSolidImage(20, 20, color.NRGBA{255, 0, 0, 255})

	out := Flatten(base, []Layer{{Image: patch, At: image.Pt(40, 40)}})

	if c := out.NRGBAAt(50, 50); c != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("layer pixel: got %v, want red", c)
	}
	if c := out.NRGBAAt(10, 10); c != (color.NRGBA{0, 0, 255, 255}) {
		t.Errorf("base pixel: got %v, want blue", c)
	}
	// Base untouched
	if c := base.NRGBAAt(50, 50); c != (color.NRGBA{0, 0, 255, 255}) {
		t.Errorf("base mutated: got %v", c)
	}
}

func TestFlatten_NoLayers(t *testing.T) {
	base := createSolidImage(50, 50, color.NRGBA{1, 2, 3, 255})
	out := Flatten(base, nil)
	if c := out.NRGBAAt(25, 25); c != (color.NRGBA{1, 2, 3, 255}) {
		t.Errorf("flatten without layers changed pixels: %v", c)
	}
}

func TestFieldText(t *testing.T) {
	box := geometry.NewBox(100, 200, 400, 60)

	layer, err := FieldText("USD 135.000", box, true)
	if err != nil {
		t.Fatalf("FieldText failed: %v", err)
	}

	if layer.At != image.Pt(100, 200) {
		t.Errorf("layer position: got %v, want (100,200)", layer.At)
	}
	if layer.Image.Bounds().Dx() != 400 || layer.Image.Bounds().Dy() != 60 {
		t.Errorf("layer size: got %dx%d, want 400x60",
			layer.Image.Bounds().Dx(), layer.Image.Bounds().Dy())
	}

	// Something must actually have been drawn.
	drawn := false
	b := layer.Image.Bounds()
	for y := b.Min.Y; y < b.Max.Y && !drawn; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := layer.Image.At(x, y).RGBA(); a > 0 {
				drawn = true
				break
			}
		}
	}
	if !drawn {
		t.Error("text layer is fully transparent")
	}
}

func TestFieldText_TinyBox(t *testing.T) {
	// Boxes shorter than the minimum font size must still render.
	layer, err := FieldText("3 amb", geometry.NewBox(0, 0, 60, 8), false)
	if err != nil {
		t.Fatalf("FieldText on tiny box failed: %v", err)
	}
	if layer.Image.Bounds().Dx() != 60 || layer.Image.Bounds().Dy() != 8 {
		t.Errorf("layer size: got %dx%d, want 60x8",
			layer.Image.Bounds().Dx(), layer.Image.Bounds().Dy())
	}
}
