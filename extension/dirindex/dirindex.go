// Package dirindex provides the directory_indexes extension: it rewrites
// page destinations like about.html to about/index.html so a site serves
// clean URLs without web-server rewrite rules.
package dirindex

import (
	"path"
	"strings"

	"github.com/fernholt/trellis/extension"
	"github.com/fernholt/trellis/resource"
)

func init() {
	extension.MustRegister("directory_indexes", New, schema)
}

var schema = extension.NewSchema().
	Option("index_file", "index.html", "File name a rewritten page becomes inside its directory.").
	Option("extensions", []string{".html"}, "Destination extensions eligible for rewriting.").
	Option("exclude", []string{}, "Destination paths left untouched.")

// Extension rewrites eligible destinations during the pipeline fold.
type Extension struct {
	host extension.Host
	opts *extension.Options

	exclude map[string]bool
}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Transformer               = (*Extension)(nil)
	_ extension.ConfigExposer             = (*Extension)(nil)
	_ extension.AfterConfigurationHandler = (*Extension)(nil)
)

// New constructs an instance for one activation.
func New(h extension.Host, opts *extension.Options) (any, error) {
	e := &Extension{host: h, opts: opts, exclude: make(map[string]bool)}
	for _, p := range opts.Strings("exclude") {
		e.exclude[p] = true
	}
	return e, nil
}

// ConfigExposures offers skip_directory_index to the configuration surface,
// letting site configuration exempt individual pages after activation.
func (e *Extension) ConfigExposures() []extension.Exposure {
	return []extension.Exposure{
		{Name: "skip_directory_index", Fn: e.skip},
	}
}

func (e *Extension) skip(destination string) {
	e.exclude[destination] = true
}

// AfterConfiguration logs the final exclusion set once configuration
// evaluation has settled.
func (e *Extension) AfterConfiguration(h extension.Host) error {
	h.Logger().WithFields(map[string]any{
		"extension": "directory_indexes",
		"excluded":  len(e.exclude),
	}).Debug("directory index rewriting configured")
	return nil
}

// TransformResources rewrites each eligible destination in place and
// returns the same list. Resources already named as the index file, carrying
// an ineligible extension, or excluded by option or skip_directory_index are
// left alone.
func (e *Extension) TransformResources(res resource.List) (resource.List, error) {
	indexFile := e.opts.String("index_file")
	eligible := e.opts.Strings("extensions")

	for _, r := range res {
		d := r.DestinationPath
		if e.exclude[d] || path.Base(d) == indexFile {
			continue
		}
		ext := path.Ext(d)
		if !contains(eligible, ext) {
			continue
		}
		r.DestinationPath = strings.TrimSuffix(d, ext) + "/" + indexFile
	}
	return res, nil
}

func contains(list []string, s string) bool {
	for _, e := range list {
		if e == s {
			return true
		}
	}
	return false
}
