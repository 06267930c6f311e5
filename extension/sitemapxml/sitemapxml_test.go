package sitemapxml

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernholt/trellis/internal/config"
	"github.com/fernholt/trellis/resource"
)

type testHost struct{}

func (testHost) Config() *config.Settings {
	s := config.Default().Settings
	return &s
}
func (testHost) Generation() string         { return "test" }
func (testHost) Logger() logrus.FieldLogger { return logrus.New() }

func newExtension(t *testing.T, overrides map[string]any) *Extension {
	t.Helper()
	opts, err := schema.Resolve(overrides, nil)
	require.NoError(t, err)
	inst, err := New(testHost{}, opts)
	require.NoError(t, err)
	return inst.(*Extension)
}

func TestTransformResources_AppendsSitemap(t *testing.T) {
	e := newExtension(t, map[string]any{"base_url": "https://example.com/"})

	in := resource.List{
		resource.New("/src/index.html", "index.html"),
		resource.New("/src/about.html", "about/index.html"),
	}
	out, err := e.TransformResources(in)
	require.NoError(t, err)

	require.Len(t, out, 3)
	sitemap := out[2]
	assert.Equal(t, "sitemap.xml", sitemap.DestinationPath)
	assert.Equal(t, "sitemap_xml", sitemap.ID)
	assert.Empty(t, sitemap.SourcePath, "sitemap is synthetic")

	content := string(sitemap.Content)
	assert.True(t, strings.HasPrefix(content, "<?xml"), "missing XML header")
	assert.Contains(t, content, "<loc>https://example.com/index.html</loc>")
	assert.Contains(t, content, "<loc>https://example.com/about/index.html</loc>")
}

func TestTransformResources_CustomFilename(t *testing.T) {
	e := newExtension(t, map[string]any{"filename": "map.xml"})

	out, err := e.TransformResources(resource.List{resource.New("/src/a.html", "a.html")})
	require.NoError(t, err)
	assert.Equal(t, "map.xml", out[len(out)-1].DestinationPath)
}

func TestHelpers(t *testing.T) {
	e := newExtension(t, map[string]any{"base_url": "https://example.com"})

	bundle := e.Helpers()
	assert.Equal(t, "sitemap", bundle.Name)

	path := bundle.Funcs["path"].(func() string)
	assert.Equal(t, "sitemap.xml", path())

	url := bundle.Funcs["url"].(func(string) string)
	assert.Equal(t, "https://example.com/about/index.html", url("about/index.html"))
}
