// Package raster implements the image transforms of the composition
// pipeline: loading and encoding, content-aware cover-fitting, region
// blurring, field-text rendering and layer flattening.
//
// Every transform is immutable: each stage returns a new image or a
// positioned layer and never mutates its input. The compositor queues
// layers and flattens them onto the base in a single pass.
//
// The coordinate system is the usual one: (0,0) top-left, X rightward,
// Y downward.
package raster
