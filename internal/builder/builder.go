// Package builder drives a build against an application state: it scans the
// source directory into a resource list, threads the list through the
// resource pipeline, and materialises the final collection under the build
// directory. Rendering is not its job; resources are copied (or written from
// inline content) to their destination paths as the pipeline left them.
package builder

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fernholt/trellis/extension"
	"github.com/fernholt/trellis/host"
	"github.com/fernholt/trellis/internal/log"
	"github.com/fernholt/trellis/resource"
)

// Run executes one build: before and before_build notifications, source
// scan, pipeline, output writing, then the after_build notification carrying
// the build handle. Returns the handle for the caller's summary.
func Run(app *host.App) (*extension.Build, error) {
	b, err := run(app)
	log.Event("builder:build", "build").
		Generation(app.Generation()).
		Detail("output", app.Config().BuildDir).
		Write(err)
	return b, err
}

func run(app *host.App) (*extension.Build, error) {
	start := time.Now()

	if err := app.Notify(extension.PhaseBefore); err != nil {
		return nil, err
	}
	if err := app.Notify(extension.PhaseBeforeBuild); err != nil {
		return nil, err
	}

	resources, err := Scan(app.Config().SourceDir)
	if err != nil {
		return nil, err
	}

	final, err := app.Pipeline().Run(resources)
	if err != nil {
		return nil, err
	}

	written, err := write(final, app.Config().BuildDir)
	if err != nil {
		return nil, err
	}

	b := &extension.Build{
		OutputDir: app.Config().BuildDir,
		Resources: final,
		Written:   written,
		Duration:  time.Since(start),
	}

	app.Logger().WithFields(map[string]any{
		"generation": app.Generation(),
		"resources":  len(final),
		"written":    written,
		"duration":   b.Duration.String(),
	}).Info("build complete")

	if err := app.Notify(extension.PhaseAfterBuild, b); err != nil {
		return b, err
	}
	return b, nil
}

// Scan walks the source directory into an initial resource list, one
// file-backed resource per regular file, with the source-relative path as
// both destination and identity. Dotfiles are ignored, and files or
// directories prefixed with an underscore are treated as partials for the
// rendering collaborator, not standalone resources.
func Scan(sourceDir string) (resource.List, error) {
	var list resource.List

	err := filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if path != sourceDir && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return err
		}
		list = append(list, resource.New(path, filepath.ToSlash(rel)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan source %s: %w", sourceDir, err)
	}
	return list, nil
}

// write materialises the final resource list under buildDir and returns the
// number of resources written.
func write(resources resource.List, buildDir string) (int, error) {
	written := 0
	for _, r := range resources {
		dest := filepath.Join(buildDir, filepath.FromSlash(r.DestinationPath))
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return written, fmt.Errorf("write %s: %w", r.DestinationPath, err)
		}
		if err := writeOne(r, dest); err != nil {
			return written, fmt.Errorf("write %s: %w", r.DestinationPath, err)
		}
		written++
	}
	return written, nil
}

func writeOne(r *resource.Resource, dest string) error {
	if r.Content != nil {
		return os.WriteFile(dest, r.Content, 0644)
	}

	src, err := os.Open(r.SourcePath)
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
