// Package sitemapxml provides the sitemap_xml extension: it appends a
// synthetic sitemap.xml resource listing every destination in the final
// collection, and registers a sitemap helper bundle for the template
// surface.
package sitemapxml

import (
	"encoding/xml"
	"strings"

	"github.com/fernholt/trellis/extension"
	"github.com/fernholt/trellis/resource"
)

func init() {
	extension.MustRegister("sitemap_xml", New, schema)
}

var schema = extension.NewSchema().
	Option("filename", "sitemap.xml", "Destination path of the generated sitemap.").
	Option("base_url", "", "URL prefix for sitemap entries, e.g. https://example.com.")

// Extension appends the sitemap as the last resource its stage sees. It
// runs over whatever destinations earlier stages produced, so it should be
// activated after path-rewriting extensions.
type Extension struct {
	filename string
	baseURL  string
}

var (
	_ extension.Transformer    = (*Extension)(nil)
	_ extension.HelperProvider = (*Extension)(nil)
)

// New constructs an instance for one activation.
func New(h extension.Host, opts *extension.Options) (any, error) {
	return &Extension{
		filename: opts.String("filename"),
		baseURL:  strings.TrimSuffix(opts.String("base_url"), "/"),
	}, nil
}

// Helpers registers the sitemap bundle for the template surface. Bundle
// functions close over plain values captured at construction, not the
// instance: helper bundles run without access to instance state.
func (e *Extension) Helpers() extension.HelperBundle {
	filename, baseURL := e.filename, e.baseURL
	return extension.HelperBundle{
		Name: "sitemap",
		Funcs: map[string]any{
			"path": func() string { return filename },
			"url": func(destination string) string {
				return baseURL + "/" + strings.TrimPrefix(destination, "/")
			},
		},
	}
}

type urlset struct {
	XMLName xml.Name   `xml:"urlset"`
	XMLNS   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc string `xml:"loc"`
}

// TransformResources appends the synthetic sitemap resource and returns the
// grown list.
func (e *Extension) TransformResources(res resource.List) (resource.List, error) {
	set := urlset{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, r := range res {
		set.URLs = append(set.URLs, urlEntry{
			Loc: e.baseURL + "/" + strings.TrimPrefix(r.DestinationPath, "/"),
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	content := append([]byte(xml.Header), body...)
	content = append(content, '\n')

	return append(res, resource.Synthetic("sitemap_xml", e.filename, content)), nil
}
