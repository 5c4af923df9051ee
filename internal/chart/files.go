package chart

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/joescharf/bugdesk/internal/render"
)

// FileName returns the SVG file name for a chart title, e.g.
// "Severity" -> "severity.svg".
func FileName(title string) string {
	name := strings.ToLower(strings.TrimSpace(title))
	name = strings.Join(strings.Fields(name), "-")
	if name == "" {
		name = "chart"
	}
	return name + ".svg"
}

// WriteFiles writes one SVG per chart into dir concurrently and returns
// the written paths in chart order. The first failure cancels the rest.
func WriteFiles(ctx context.Context, dir string, charts []render.ChartConfig) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create chart dir: %w", err)
	}

	paths := make([]string, len(charts))
	g, ctx := errgroup.WithContext(ctx)
	for i, cfg := range charts {
		paths[i] = filepath.Join(dir, FileName(cfg.Title))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return writeFile(paths[i], cfg)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

func writeFile(path string, cfg render.ChartConfig) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteSVG(f, cfg); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
