package compositor

import (
	"fmt"

	"github.com/Buffnico/inmovia-sub001/internal/faults"
	"github.com/Buffnico/inmovia-sub001/internal/geometry"
)

// Request describes one cover-image composition.
type Request struct {
	// Template is the opaque template identifier.
	Template string `json:"template"`

	// Format names the output canvas: "square", "portrait" or
	// "landscape". Anything else falls back to square.
	Format string `json:"format"`

	// Field replacement values. Price and Address are required; Rooms
	// and Area are optional and skipped when empty.
	Price   string `json:"price"`
	Address string `json:"address"`
	Rooms   string `json:"rooms,omitempty"`
	Area    string `json:"area,omitempty"`

	// Photos are URLs or storage-relative paths, in caller order.
	Photos []string `json:"photos"`

	// Principal indexes the photo shown in the largest slot. Out of
	// range values clamp to 0.
	Principal int `json:"principal"`
}

// Metadata describes a finished composition. It is informational: the
// image artifact is complete without it.
type Metadata struct {
	Width    int                     `json:"width"`
	Height   int                     `json:"height"`
	Slots    []geometry.Box          `json:"slots"`
	Fields   map[string]geometry.Box `json:"fields"`
	Artifact string                  `json:"artifact"`
}

// Canvas sizes by format name.
const (
	FormatSquare    = "square"
	FormatPortrait  = "portrait"
	FormatLandscape = "landscape"
)

// CanvasSize maps a format name to pixel dimensions. Unknown or empty
// formats default to square.
func CanvasSize(format string) (width, height int) {
	switch format {
	case FormatPortrait:
		return 1080, 1350
	case FormatLandscape:
		return 1920, 1080
	default:
		return 1080, 1080
	}
}

// addressLabel prefixes the address line on the cover.
const addressLabel = "Ubicado en "

// FormatRooms renders a rooms value for the cover, e.g. "3 amb".
func FormatRooms(v string) string { return fmt.Sprintf("%s amb", v) }

// FormatArea renders an area value for the cover, e.g. "45 m²".
func FormatArea(v string) string { return fmt.Sprintf("%s m²", v) }

// FormatAddress renders an address value with its fixed label.
func FormatAddress(v string) string { return addressLabel + v }

// Validate checks required inputs and normalizes the principal index.
func (r *Request) Validate() error {
	if r.Template == "" {
		return faults.Input("template is required")
	}
	if r.Price == "" {
		return faults.Input("price is required")
	}
	if r.Address == "" {
		return faults.Input("address is required")
	}
	if r.Principal < 0 || r.Principal >= len(r.Photos) {
		r.Principal = 0
	}
	return nil
}
