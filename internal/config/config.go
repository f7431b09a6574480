// Package config holds runtime settings and the empirically tuned
// detection thresholds.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Detection thresholds. All four were tuned against real portada
// templates; do not change them without a labeled corpus to validate
// against.
const (
	// MinSlotAreaRatio is the minimum fraction of the image area a
	// block must cover to be considered a photo slot candidate.
	MinSlotAreaRatio = 0.06

	// MaxTextCoverage is the maximum fraction of a block's area that
	// may be covered by recognized words for the block to still count
	// as a photograph rather than a text region.
	MaxTextCoverage = 0.06

	// WordOverlapIOU is the minimum IOU between a word box and a block
	// for the word's area to count toward the block's text coverage.
	WordOverlapIOU = 0.35

	// SlotDedupIOU is the non-maximum-suppression threshold: a slot
	// candidate is discarded when its IOU with any accepted slot
	// reaches this value.
	SlotDedupIOU = 0.25

	// FallbackSlotHeightRatio is the canvas-height fraction of the
	// single full-width slot used when detection finds no slots.
	FallbackSlotHeightRatio = 0.55
)

// Compositing constants.
const (
	// BlurInflatePx is the margin added around a detected field box
	// before blurring, so the erased region fully covers the glyphs.
	BlurInflatePx = 6

	// TextInflatePx is the margin added around a field box before
	// drawing replacement text.
	TextInflatePx = 2

	// BlurSigma is the Gaussian blur radius used to erase field text.
	BlurSigma = 8.0
)

// Thresholds bundles the slot-detection tuning values so tests can vary
// them without touching package-level state.
type Thresholds struct {
	MinSlotAreaRatio float64 `yaml:"min_slot_area_ratio"`
	MaxTextCoverage  float64 `yaml:"max_text_coverage"`
	WordOverlapIOU   float64 `yaml:"word_overlap_iou"`
	SlotDedupIOU     float64 `yaml:"slot_dedup_iou"`
}

// DefaultThresholds returns the tuned production values.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinSlotAreaRatio: MinSlotAreaRatio,
		MaxTextCoverage:  MaxTextCoverage,
		WordOverlapIOU:   WordOverlapIOU,
		SlotDedupIOU:     SlotDedupIOU,
	}
}

// Config is the runtime configuration for the generator.
type Config struct {
	// TemplatesDir is the directory holding template images, one per
	// registered template id.
	TemplatesDir string `yaml:"templates_dir"`

	// PhotosDir resolves storage-relative photo references.
	PhotosDir string `yaml:"photos_dir"`

	// OutputDir receives the composed images and metadata payloads.
	OutputDir string `yaml:"output_dir"`

	// OCRLanguage is the Tesseract language code. Templates are
	// Spanish-language designs.
	OCRLanguage string `yaml:"ocr_language"`

	// FetchTimeout bounds each photo download.
	FetchTimeout time.Duration `yaml:"fetch_timeout"`

	Thresholds Thresholds `yaml:"thresholds"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() Config {
	return Config{
		TemplatesDir: "templates",
		PhotosDir:    "photos",
		OutputDir:    "out",
		OCRLanguage:  "spa",
		FetchTimeout: 30 * time.Second,
		Thresholds:   DefaultThresholds(),
	}
}

// Load reads configuration from an optional yaml file, then applies
// environment overrides. A missing file is not an error; a malformed
// one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("failed to read config: %w", err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORTADA_TEMPLATES_DIR"); v != "" {
		cfg.TemplatesDir = v
	}
	if v := os.Getenv("PORTADA_PHOTOS_DIR"); v != "" {
		cfg.PhotosDir = v
	}
	if v := os.Getenv("PORTADA_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("PORTADA_OCR_LANGUAGE"); v != "" {
		cfg.OCRLanguage = v
	}
	if v := os.Getenv("PORTADA_FETCH_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.FetchTimeout = d
		}
	}
}
