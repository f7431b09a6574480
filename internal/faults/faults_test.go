package faults

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"input", Input("price is required"), CodeInput},
		{"missing", ResourceMissing("template %q gone", "x"), CodeResourceMissing},
		{"fetch", Fetch("http://x/p.jpg", errors.New("timeout")), CodeFetch},
		{"internal", Internal("boom", errors.New("cause")), CodeInternal},
		{"plain error", errors.New("anything"), CodeInternal},
		{"wrapped fault", fmt.Errorf("outer: %w", Fetch("ref", nil)), CodeFetch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf: got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFetch_NamesReference(t *testing.T) {
	err := Fetch("https://cdn/photos/1.jpg", errors.New("status 503"))
	if !strings.Contains(err.Error(), "https://cdn/photos/1.jpg") {
		t.Errorf("message should name the reference: %q", err.Error())
	}
	if !strings.Contains(err.Error(), "503") {
		t.Errorf("message should carry the cause: %q", err.Error())
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root")
	err := Internal("wrapped", cause)
	if !errors.Is(err, cause) {
		t.Error("fault should unwrap to its cause")
	}
}
