// Package geometry provides the bounding-box type shared by layout
// detection and raster composition.
//
// Boxes use the {left, top, width, height} convention with (0,0) at the
// top-left corner of the working image. Boxes are value types: every
// operation returns a new Box, never mutates its receiver.
package geometry

import "image"

// Box is an axis-aligned rectangle in pixel coordinates.
//
// Width and Height are always at least 1; NewBox clamps degenerate
// dimensions on construction.
type Box struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// NewBox creates a Box, clamping width and height to a minimum of 1.
func NewBox(left, top, width, height int) Box {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return Box{Left: left, Top: top, Width: width, Height: height}
}

// FromRect converts an image.Rectangle into a Box.
func FromRect(r image.Rectangle) Box {
	return NewBox(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
}

// Rect converts the Box into an image.Rectangle.
func (b Box) Rect() image.Rectangle {
	return image.Rect(b.Left, b.Top, b.Left+b.Width, b.Top+b.Height)
}

// Right returns the exclusive right edge (Left + Width).
func (b Box) Right() int { return b.Left + b.Width }

// Bottom returns the exclusive bottom edge (Top + Height).
func (b Box) Bottom() int { return b.Top + b.Height }

// Area returns Width × Height in square pixels.
func (b Box) Area() int { return b.Width * b.Height }

// Intersection returns the overlap area of two boxes in square pixels,
// or 0 if they are disjoint.
func (b Box) Intersection(o Box) int {
	left := maxInt(b.Left, o.Left)
	top := maxInt(b.Top, o.Top)
	right := minInt(b.Right(), o.Right())
	bottom := minInt(b.Bottom(), o.Bottom())
	if right <= left || bottom <= top {
		return 0
	}
	return (right - left) * (bottom - top)
}

// IOU returns the intersection-over-union of two boxes: overlap area
// divided by combined area. The result is in [0, 1]; identical boxes
// give 1, disjoint boxes give 0. A non-positive union also gives 0.
func (b Box) IOU(o Box) float64 {
	inter := b.Intersection(o)
	union := b.Area() + o.Area() - inter
	if union <= 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// Inflate grows the box by margin pixels on every side, then clamps the
// result to the canvas [0,width) × [0,height). The receiver is unchanged.
func (b Box) Inflate(margin, width, height int) Box {
	left := maxInt(0, b.Left-margin)
	top := maxInt(0, b.Top-margin)
	right := minInt(width, b.Right()+margin)
	bottom := minInt(height, b.Bottom()+margin)
	return NewBox(left, top, right-left, bottom-top)
}

// ClampTo restricts the box to the canvas [0,width) × [0,height).
func (b Box) ClampTo(width, height int) Box {
	return b.Inflate(0, width, height)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
