package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"go.uber.org/zap"

	"github.com/ivlev/vidcompose/internal/catalog"
	"github.com/ivlev/vidcompose/internal/config"
	"github.com/ivlev/vidcompose/internal/project"
	"github.com/ivlev/vidcompose/internal/resolver"
	"github.com/ivlev/vidcompose/internal/script"
	"github.com/ivlev/vidcompose/internal/system"
)

func main() {
	system.InitResourceLimits()

	// Create the working directories if missing
	dirs := []string{"input/scripts", "output"}
	for _, d := range dirs {
		os.MkdirAll(d, 0755)
	}

	scriptPtr := flag.String("script", "", "Path to a composition script (default: newest file in input/scripts/)")
	outputPtr := flag.String("output", "output", "Directory for composition documents")
	fpsPtr := flag.Int("fps", config.DefaultFPS, "Default frame rate for projects that set none")
	widthPtr := flag.Int("width", config.DefaultWidth, "Default canvas width")
	heightPtr := flag.Int("height", config.DefaultHeight, "Default canvas height")
	presetPtr := flag.String("preset", "", "Format preset: 16:9, 9:16 (Shorts/TikTok), 4:5 (Instagram)")
	workersPtr := flag.Int("workers", runtime.NumCPU(), "Parallel project builds")
	trackPtr := flag.String("track", config.DefaultTrack, "Track for placements that name none")
	depthPtr := flag.Int("max-depth", resolver.DefaultMaxDepth, "Nesting depth ceiling for component descriptors")
	verbosePtr := flag.Bool("verbose", false, "Per-placement debug logging")

	flag.Parse()

	cfg := &config.Config{
		ScriptPath:      *scriptPtr,
		OutputDir:       *outputPtr,
		FPS:             *fpsPtr,
		Width:           *widthPtr,
		Height:          *heightPtr,
		Preset:          *presetPtr,
		Workers:         *workersPtr,
		DefaultTrack:    *trackPtr,
		MaxNestingDepth: *depthPtr,
		Verbose:         *verbosePtr,
	}
	cfg.ApplyPreset()

	scriptPath := cfg.ScriptPath
	if scriptPath == "" {
		latest, err := system.FindLatestScript("input/scripts")
		if err != nil {
			log.Fatalf("[-] Error: %v. Put a script in input/scripts/", err)
		}
		scriptPath = latest
		fmt.Printf("[*] Selected script: %s\n", scriptPath)
	}

	s, err := script.ReadScript(scriptPath)
	if err != nil {
		log.Fatalf("[-] Script error: %v", err)
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		log.Fatalf("[-] Logger error: %v", err)
	}
	defer logger.Sync()

	res := &resolver.Resolver{MaxDepth: cfg.MaxNestingDepth}
	manager := project.NewManager(logger)
	cat := catalog.New(res, cfg.DefaultTrack)
	runner := script.NewRunner(manager, cat, cfg, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println("--- [VIDCOMPOSE] ---")
	fmt.Printf("[*] Script: %s | Projects: %d\n", scriptPath, len(s.Projects))
	fmt.Printf("[*] Defaults: %dx%d @ %d FPS\n", cfg.Width, cfg.Height, cfg.FPS)
	fmt.Println("--------------------")

	outputs, err := runner.Run(ctx, s, cfg.OutputDir)
	if err != nil {
		log.Fatalf("[-] Build error: %v", err)
	}

	for _, path := range outputs {
		fmt.Printf("[>] Ready: %s\n", path)
	}
	fmt.Printf("[+++] Done! %d composition(s) written to %s\n", len(outputs), cfg.OutputDir)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
