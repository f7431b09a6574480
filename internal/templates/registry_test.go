package templates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Buffnico/inmovia-sub001/internal/faults"
)

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	want := filepath.Join(dir, "portada-azul.png")
	if err := os.WriteFile(want, []byte("png"), 0644); err != nil {
		t.Fatal(err)
	}

	r := NewRegistry(dir)
	got, err := r.Resolve("portada-azul")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got != want {
		t.Errorf("path: got %q, want %q", got, want)
	}
}

func TestResolve_JPEGFallback(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "clasica.jpg"), []byte("jpg"), 0644); err != nil {
		t.Fatal(err)
	}

	r := NewRegistry(dir)
	if _, err := r.Resolve("clasica"); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
}

func TestResolve_Unknown(t *testing.T) {
	r := NewRegistry(t.TempDir())
	_, err := r.Resolve("no-such-template")
	if err == nil {
		t.Fatal("Resolve should fail for an unknown id")
	}
	if faults.CodeOf(err) != faults.CodeInput {
		t.Errorf("error code: got %s, want %s", faults.CodeOf(err), faults.CodeInput)
	}
}

func TestResolve_EmptyID(t *testing.T) {
	r := NewRegistry(t.TempDir())
	if _, err := r.Resolve(""); faults.CodeOf(err) != faults.CodeInput {
		t.Errorf("empty id should be an input error, got %v", err)
	}
}
