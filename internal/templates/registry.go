// Package templates resolves opaque template identifiers to image
// files. The registry is the seam to the external model-registry
// collaborator: here it is a directory of template images, one file
// per id.
package templates

import (
	"os"
	"path/filepath"

	"github.com/Buffnico/inmovia-sub001/internal/faults"
)

// extensions, in resolution order.
var extensions = []string{".png", ".jpg", ".jpeg"}

// Registry resolves template ids against a directory.
type Registry struct {
	Dir string
}

// NewRegistry creates a Registry over dir.
func NewRegistry(dir string) *Registry {
	return &Registry{Dir: dir}
}

// Resolve maps a template id to the path of its image file.
//
// An id with no candidate file at all is an InputError (the caller
// named a template that was never registered). A candidate that exists
// in the registry listing but cannot be read is a ResourceMissingError
// (the entry is stale).
func (r *Registry) Resolve(id string) (string, error) {
	if id == "" {
		return "", faults.Input("template id is required")
	}

	base := filepath.Join(r.Dir, filepath.Clean(id))
	for _, ext := range extensions {
		path := base + ext
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.IsDir() {
			return "", faults.ResourceMissing("template %q resolves to a directory", id)
		}
		return path, nil
	}

	return "", faults.Input("unknown template %q", id)
}
