package builder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernholt/trellis/extension"
	"github.com/fernholt/trellis/host"
	"github.com/fernholt/trellis/internal/config"
	"github.com/fernholt/trellis/resource"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// siteApp boots an application state over a temp source/build pair.
func siteApp(t *testing.T, activations ...config.Activation) *host.App {
	t.Helper()
	root := t.TempDir()

	cfg := config.Default()
	cfg.Settings.SourceDir = filepath.Join(root, "source")
	cfg.Settings.BuildDir = filepath.Join(root, "build")
	cfg.Extensions = activations
	require.NoError(t, os.MkdirAll(cfg.Settings.SourceDir, 0755))

	app, err := host.Boot(cfg)
	require.NoError(t, err)
	return app
}

func TestScan(t *testing.T) {
	app := siteApp(t)
	src := app.Config().SourceDir

	writeFile(t, filepath.Join(src, "index.html"), "home")
	writeFile(t, filepath.Join(src, "posts", "one.html"), "post")
	writeFile(t, filepath.Join(src, "_partial.html"), "partial")
	writeFile(t, filepath.Join(src, ".hidden"), "dotfile")
	writeFile(t, filepath.Join(src, "_layouts", "page.html"), "layout")

	list, err := Scan(src)
	require.NoError(t, err)

	// Partials, partial directories, and dotfiles are not resources.
	assert.ElementsMatch(t, []string{"index.html", "posts/one.html"}, list.Destinations())
}

// buildProbe records the after_build handle.
type buildProbe struct {
	build *extension.Build
}

func (p *buildProbe) AfterBuild(h extension.Host, b *extension.Build) error {
	p.build = b
	return nil
}

// upperDir moves every destination under an alternate root, exercising a
// destination rewrite flowing through to the written tree.
type upperDir struct{}

func (upperDir) TransformResources(res resource.List) (resource.List, error) {
	for _, r := range res {
		r.DestinationPath = "site/" + r.DestinationPath
	}
	return append(res, resource.Synthetic("manifest", "manifest.txt", []byte("generated\n"))), nil
}

func TestRun_EndToEnd(t *testing.T) {
	probe := &buildProbe{}
	_, err := extension.Register("builder-probe", func(h extension.Host, opts *extension.Options) (any, error) {
		return probe, nil
	}, nil)
	require.NoError(t, err)
	_, err = extension.Register("builder-stage", func(h extension.Host, opts *extension.Options) (any, error) {
		return upperDir{}, nil
	}, nil)
	require.NoError(t, err)

	app := siteApp(t,
		config.Activation{Name: "builder-stage"},
		config.Activation{Name: "builder-probe"},
	)
	src := app.Config().SourceDir
	writeFile(t, filepath.Join(src, "about.html"), "about page")

	b, err := Run(app)
	require.NoError(t, err)

	// File-backed resource written at its rewritten destination.
	out, err := os.ReadFile(filepath.Join(app.Config().BuildDir, "site", "about.html"))
	require.NoError(t, err)
	assert.Equal(t, "about page", string(out))

	// Synthetic resource materialised from inline content.
	manifest, err := os.ReadFile(filepath.Join(app.Config().BuildDir, "manifest.txt"))
	require.NoError(t, err)
	assert.Equal(t, "generated\n", string(manifest))

	assert.Equal(t, 2, b.Written)

	// after_build received the completed handle.
	require.NotNil(t, probe.build)
	assert.Equal(t, app.Config().BuildDir, probe.build.OutputDir)
	assert.Len(t, probe.build.Resources, 2)
}

func TestRun_MissingSourceDir(t *testing.T) {
	app := siteApp(t)
	require.NoError(t, os.RemoveAll(app.Config().SourceDir))

	_, err := Run(app)
	assert.Error(t, err)
}
