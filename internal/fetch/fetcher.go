// Package fetch retrieves candidate photos for composition. References
// are either http(s) URLs or paths relative to the configured photo
// storage directory.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Buffnico/inmovia-sub001/internal/faults"
)

// Fetcher resolves photo references to raw image bytes.
type Fetcher struct {
	// PhotosDir resolves storage-relative references.
	PhotosDir string

	httpClient *http.Client
}

// New creates a Fetcher. timeout bounds each individual download.
func New(photosDir string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		PhotosDir:  photosDir,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves one photo reference.
func (f *Fetcher) Fetch(ctx context.Context, ref string) ([]byte, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return f.fetchURL(ctx, ref)
	}
	return f.fetchFile(ref)
}

// FetchAll retrieves every reference concurrently. The returned slice
// is index-aligned with refs, so slot-to-photo assignment stays
// deterministic regardless of download completion order. Any failure
// aborts the remaining downloads and fails the whole batch.
func (f *Fetcher) FetchAll(ctx context.Context, refs []string) ([][]byte, error) {
	results := make([][]byte, len(refs))

	g, ctx := errgroup.WithContext(ctx)
	for i, ref := range refs {
		i, ref := i, ref
		g.Go(func() error {
			data, err := f.Fetch(ctx, ref)
			if err != nil {
				return err
			}
			results[i] = data
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (f *Fetcher) fetchURL(ctx context.Context, ref string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, faults.Fetch(ref, err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, faults.Fetch(ref, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, faults.Fetch(ref, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, faults.Fetch(ref, err)
	}
	return data, nil
}

func (f *Fetcher) fetchFile(ref string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(f.PhotosDir, filepath.Clean(ref)))
	if err != nil {
		return nil, faults.Fetch(ref, err)
	}
	return data, nil
}
