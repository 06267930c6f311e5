package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuild(t *testing.T) {
	t.Run("copies source tree", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("source/index.html", "<h1>home</h1>")
		env.write("source/css/site.css", "body {}")

		out := env.run("build")
		env.contains(out, "built 2 resources")

		for _, rel := range []string{"build/index.html", "build/css/site.css"} {
			if _, err := os.Stat(filepath.Join(env.dir, rel)); err != nil {
				t.Errorf("build output %s missing: %v", rel, err)
			}
		}
	})

	t.Run("skips underscore partials", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("source/index.html", "<h1>home</h1>")
		env.write("source/_partials/header.html", "<header/>")

		env.run("build")

		if _, err := os.Stat(filepath.Join(env.dir, "build/_partials/header.html")); err == nil {
			t.Error("underscore-prefixed partial copied to output, want skipped")
		}
	})

	t.Run("missing source fails", func(t *testing.T) {
		env := newTestEnv(t)

		out, err := env.runErr("build")
		if err == nil {
			t.Fatalf("build without source dir = nil error\noutput: %s", out)
		}
	})
}

func TestBuild_ConfiguredExtensions(t *testing.T) {
	t.Run("directory indexes", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("trellis.yaml", `
extensions:
  - name: directory_indexes
`)
		env.write("source/index.html", "<h1>home</h1>")
		env.write("source/about.html", "<h1>about</h1>")

		env.run("build")

		if _, err := os.Stat(filepath.Join(env.dir, "build/about/index.html")); err != nil {
			t.Errorf("rewritten destination missing: %v", err)
		}
	})

	t.Run("sitemap", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("trellis.yaml", `
extensions:
  - name: sitemap_xml
    options:
      base_url: https://example.org
`)
		env.write("source/index.html", "<h1>home</h1>")

		env.run("build")

		data, err := os.ReadFile(filepath.Join(env.dir, "build/sitemap.xml"))
		if err != nil {
			t.Fatalf("sitemap output missing: %v", err)
		}
		env.contains(string(data), "https://example.org/index.html")
	})

	t.Run("unknown extension fails", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("trellis.yaml", `
extensions:
  - name: no_such_extension
`)
		env.write("source/index.html", "<h1>home</h1>")

		_, err := env.runErr("build")
		if err == nil {
			t.Error("build with unknown extension = nil error, want failure")
		}
	})
}

func TestBuild_ConfigFlag(t *testing.T) {
	env := newTestEnv(t)
	env.write("site.yaml", `
settings:
  build: public
`)
	env.write("source/index.html", "<h1>home</h1>")

	out := env.run("build", "-c", "site.yaml")
	env.contains(out, "public")

	if _, err := os.Stat(filepath.Join(env.dir, "public/index.html")); err != nil {
		t.Errorf("configured output dir not used: %v", err)
	}
}
