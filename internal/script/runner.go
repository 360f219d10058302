package script

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ivlev/vidcompose/internal/catalog"
	"github.com/ivlev/vidcompose/internal/config"
	"github.com/ivlev/vidcompose/internal/export"
	"github.com/ivlev/vidcompose/internal/project"
	"github.com/ivlev/vidcompose/internal/system"
)

// Runner executes composition scripts. Steps within a project run
// strictly in order (the project lock serializes each placement);
// distinct projects share no state and run in parallel.
type Runner struct {
	manager *project.Manager
	catalog *catalog.Catalog
	cfg     *config.Config
	log     *zap.Logger
}

// NewRunner creates a runner over a project manager and tool catalog
func NewRunner(manager *project.Manager, cat *catalog.Catalog, cfg *config.Config, log *zap.Logger) *Runner {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{manager: manager, catalog: cat, cfg: cfg, log: log}
}

// Run assembles every project in the script and writes one composition
// document per project into outDir. It returns the written paths in
// script order.
func (r *Runner) Run(ctx context.Context, s *Script, outDir string) ([]string, error) {
	workers := system.WorkerCount(r.cfg.Workers, len(s.Projects))
	r.log.Info("running script",
		zap.Int("projects", len(s.Projects)),
		zap.Int("workers", workers),
	)

	outputs := make([]string, len(s.Projects))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, ps := range s.Projects {
		i, ps := i, ps
		g.Go(func() error {
			path, err := r.runProject(ctx, ps, outDir)
			if err != nil {
				return err
			}
			outputs[i] = path
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}

func (r *Runner) runProject(ctx context.Context, ps ProjectScript, outDir string) (string, error) {
	fps, width, height := r.projectFormat(ps)

	proj, err := r.manager.Create(ps.Name, fps, width, height)
	if err != nil {
		return "", fmt.Errorf("project %q: %w", ps.Name, err)
	}
	defer r.manager.Close(proj.ID)

	for i, step := range ps.Steps {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		res := r.catalog.Call(proj, step.Tool, step.Args)
		if res.Status != "ok" {
			return "", fmt.Errorf("project %q step %d (%s): %s", ps.Name, i+1, step.Tool, res.Message)
		}

		r.log.Debug("component placed",
			zap.String("project", ps.Name),
			zap.String("tool", step.Tool),
			zap.String("component", res.Component),
			zap.String("track", res.Track),
			zap.Float64("startTime", res.StartTime),
			zap.Float64("duration", res.Duration),
		)
	}

	outPath := filepath.Join(outDir, scriptFileName(ps.Name))
	if err := export.WriteComposition(proj.Composition(), outPath); err != nil {
		return "", fmt.Errorf("project %q: write composition: %w", ps.Name, err)
	}

	r.log.Info("composition written",
		zap.String("project", ps.Name),
		zap.String("path", outPath),
		zap.Int("components", len(proj.Composition().Components)),
	)
	return outPath, nil
}

// projectFormat resolves fps and canvas size for one project: script
// values win, then the preset, then the runner config defaults
func (r *Runner) projectFormat(ps ProjectScript) (fps, width, height int) {
	fps = ps.FPS
	if fps <= 0 {
		fps = r.cfg.FPS
	}

	width, height = ps.Width, ps.Height
	if pw, ph, ok := config.PresetDimensions(ps.Preset); ok {
		width, height = pw, ph
	}
	if width <= 0 || height <= 0 {
		width, height = r.cfg.Width, r.cfg.Height
	}
	return fps, width, height
}

func scriptFileName(name string) string {
	clean := strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
	return clean + ".yaml"
}
