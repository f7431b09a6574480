// Package compositor orchestrates the cover-image pipeline: resize the
// template, infer its layout, erase and redraw the text fields, place
// the photos, and emit the final raster plus a metadata payload.
package compositor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/Buffnico/inmovia-sub001/internal/config"
	"github.com/Buffnico/inmovia-sub001/internal/faults"
	"github.com/Buffnico/inmovia-sub001/internal/fetch"
	"github.com/Buffnico/inmovia-sub001/internal/geometry"
	"github.com/Buffnico/inmovia-sub001/internal/layout"
	"github.com/Buffnico/inmovia-sub001/internal/ocr"
	"github.com/Buffnico/inmovia-sub001/internal/raster"
	"github.com/Buffnico/inmovia-sub001/internal/templates"
)

// Compositor owns the collaborators of the pipeline. Each Compose call
// is independent and shares no mutable state with others, so a single
// Compositor serves concurrent requests.
type Compositor struct {
	Registry   *templates.Registry
	Recognizer ocr.Recognizer
	Fetcher    *fetch.Fetcher
	OutputDir  string
	Thresholds config.Thresholds
}

// Compose runs the full pipeline for one request.
//
// Stage order is fixed: resize, recognize, classify/select, detect
// slots, fetch photos, blur, place, flatten, draw text, encode. The
// composition happens entirely in memory and is written out last, so a
// failing request never leaves a partial artifact. Any failure is a
// single structured fault; degraded recognition (no usable fields or
// slots) is not a failure.
func (c *Compositor) Compose(ctx context.Context, req *Request) (*Metadata, error) {
	meta, err := c.compose(ctx, req)
	if err != nil {
		var f *faults.Fault
		if errors.As(err, &f) {
			return nil, err
		}
		return nil, faults.Internal("composition failed", err)
	}
	return meta, nil
}

func (c *Compositor) compose(ctx context.Context, req *Request) (*Metadata, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	width, height := CanvasSize(req.Format)

	// Resolve and prepare the base canvas.
	templatePath, err := c.Registry.Resolve(req.Template)
	if err != nil {
		return nil, err
	}
	template, err := raster.Load(templatePath)
	if err != nil {
		// The registry resolved the id; a missing or unreadable file
		// means the entry is stale.
		return nil, faults.ResourceMissing("template %q file unreadable: %v", req.Template, err)
	}
	base := raster.CoverFit(template, width, height)

	// Layout is derived for this exact canvas size and never reused.
	lay, err := c.analyze(base, width, height)
	if err != nil {
		return nil, err
	}
	log.Printf("layout: template=%s fields=%d slots=%d", req.Template, len(lay.Fields), len(lay.Slots))

	photos, err := c.fetchPhotos(ctx, req)
	if err != nil {
		return nil, err
	}

	values := fieldValues(req)

	// Hard requirement: zero detected slots resolve to a single
	// full-width slot across the top of the canvas.
	slots := lay.Slots
	if len(slots) == 0 {
		slots = []geometry.Box{layout.FallbackSlot(width, height)}
	}

	// Erase the original print, then place the photos, in one flatten.
	var layers []raster.Layer
	for _, kind := range layout.FieldKinds {
		field, detected := lay.Fields[kind]
		if !detected || values[kind] == "" {
			continue
		}
		box := field.Box.Inflate(config.BlurInflatePx, width, height)
		layers = append(layers, raster.BlurRegion(base, box, config.BlurSigma))
	}
	layers = append(layers, photoLayers(slots, photos)...)
	flattened := raster.Flatten(base, layers)

	// Replacement text goes on top of everything.
	var textLayers []raster.Layer
	for _, kind := range layout.FieldKinds {
		field, detected := lay.Fields[kind]
		if !detected || values[kind] == "" {
			continue
		}
		box := field.Box.Inflate(config.TextInflatePx, width, height)
		l, err := raster.FieldText(values[kind], box, kind == layout.FieldPrice)
		if err != nil {
			return nil, err
		}
		textLayers = append(textLayers, l)
	}
	final := raster.Flatten(flattened, textLayers)

	return c.writeArtifact(final, lay, slots, width, height)
}

// analyze runs the recognizer over the resized base and classifies its
// output. Tesseract reads from disk, so the base goes through a temp
// file.
func (c *Compositor) analyze(base image.Image, width, height int) (*layout.Result, error) {
	tmpPath, err := raster.SaveTemp(base, "portada-base-*.png")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmpPath)

	rec, err := c.Recognizer.Recognize(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("recognition failed: %w", err)
	}
	return layout.Analyze(rec, width, height, c.Thresholds), nil
}

func (c *Compositor) fetchPhotos(ctx context.Context, req *Request) ([]image.Image, error) {
	if len(req.Photos) == 0 {
		return nil, nil
	}

	// Principal first: the slot list is ordered by area descending, so
	// the front photo lands in the largest slot.
	refs := make([]string, 0, len(req.Photos))
	refs = append(refs, req.Photos[req.Principal])
	for i, ref := range req.Photos {
		if i != req.Principal {
			refs = append(refs, ref)
		}
	}

	raw, err := c.Fetcher.FetchAll(ctx, refs)
	if err != nil {
		return nil, err
	}

	photos := make([]image.Image, len(raw))
	for i, data := range raw {
		img, err := raster.Decode(data)
		if err != nil {
			return nil, faults.Fetch(refs[i], err)
		}
		photos[i] = img
	}
	return photos, nil
}

// photoLayers assigns photos to slots in order, cover-fitting each to
// its slot's exact dimensions. When slots outnumber photos the front
// (principal) photo repeats.
func photoLayers(slots []geometry.Box, photos []image.Image) []raster.Layer {
	if len(photos) == 0 {
		return nil
	}

	layers := make([]raster.Layer, 0, len(slots))
	for i, slot := range slots {
		photo := photos[0]
		if i < len(photos) {
			photo = photos[i]
		}
		layers = append(layers, raster.Layer{
			Image: raster.FitPhoto(photo, slot.Width, slot.Height),
			At:    image.Pt(slot.Left, slot.Top),
		})
	}
	return layers
}

// fieldValues maps each field kind to its rendered replacement string.
// Empty strings mark fields the caller did not supply.
func fieldValues(req *Request) map[layout.FieldKind]string {
	values := map[layout.FieldKind]string{
		layout.FieldPrice:   req.Price,
		layout.FieldAddress: FormatAddress(req.Address),
	}
	if req.Rooms != "" {
		values[layout.FieldRooms] = FormatRooms(req.Rooms)
	}
	if req.Area != "" {
		values[layout.FieldArea] = FormatArea(req.Area)
	}
	return values
}

// writeArtifact encodes the finished canvas and its metadata payload.
func (c *Compositor) writeArtifact(final image.Image, lay *layout.Result, slots []geometry.Box, width, height int) (*Metadata, error) {
	if err := os.MkdirAll(c.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	name := uuid.NewString()
	artifact := filepath.Join(c.OutputDir, name+".png")
	if err := raster.EncodePNG(final, artifact); err != nil {
		return nil, err
	}

	fields := make(map[string]geometry.Box, len(lay.Fields))
	for kind, candidate := range lay.Fields {
		fields[string(kind)] = candidate.Box
	}
	meta := &Metadata{
		Width:    width,
		Height:   height,
		Slots:    slots,
		Fields:   fields,
		Artifact: artifact,
	}

	payload, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata: %w", err)
	}
	if err := os.WriteFile(filepath.Join(c.OutputDir, name+".json"), payload, 0644); err != nil {
		return nil, fmt.Errorf("failed to write metadata: %w", err)
	}

	log.Printf("composed: artifact=%s size=%dx%d slots=%d", artifact, width, height, len(slots))
	return meta, nil
}
