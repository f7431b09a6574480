package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/Buffnico/inmovia-sub001/internal/compositor"
	"github.com/Buffnico/inmovia-sub001/internal/config"
	"github.com/Buffnico/inmovia-sub001/internal/fetch"
	"github.com/Buffnico/inmovia-sub001/internal/ocr"
	"github.com/Buffnico/inmovia-sub001/internal/templates"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	requestPath := flag.String("request", "-", "composition request JSON file ('-' for stdin)")
	configPath := flag.String("config", "portadagen.yaml", "configuration file")
	showVersion := flag.Bool("version", false, "print version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("portadagen %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	// Logging goes to stderr; stdout carries the metadata payload.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	// Optional .env for local runs; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	req, err := readRequest(*requestPath)
	if err != nil {
		log.Fatalf("request error: %v", err)
	}

	c := &compositor.Compositor{
		Registry:   templates.NewRegistry(cfg.TemplatesDir),
		Recognizer: ocr.NewTesseract(cfg.OCRLanguage),
		Fetcher:    fetch.New(cfg.PhotosDir, cfg.FetchTimeout),
		OutputDir:  cfg.OutputDir,
		Thresholds: cfg.Thresholds,
	}

	meta, err := c.Compose(context.Background(), req)
	if err != nil {
		log.Fatalf("composition error: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		log.Fatalf("failed to encode metadata: %v", err)
	}
}

func readRequest(path string) (*compositor.Request, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open request: %w", err)
		}
		defer f.Close()
		r = f
	}

	var req compositor.Request
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}
	return &req, nil
}
