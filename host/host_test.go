// host_test.go holds the shared fixtures for host package tests. Each test
// registers purpose-built extensions under test-unique names; the registry
// is process-wide and append-only, so names never repeat across tests.

package host

import (
	"strings"
	"testing"

	"github.com/fernholt/trellis/extension"
	"github.com/fernholt/trellis/internal/config"
	"github.com/fernholt/trellis/resource"
)

// register wires a fixture extension into the global registry.
func register(t *testing.T, name string, factory extension.Factory, schema *extension.Schema) {
	t.Helper()
	if _, err := extension.Register(name, factory, schema); err != nil {
		t.Fatalf("register %s: %v", name, err)
	}
}

// instanceFactory returns a factory handing out a fixed, pre-built instance.
func instanceFactory(inst any) extension.Factory {
	return func(h extension.Host, opts *extension.Options) (any, error) {
		return inst, nil
	}
}

func newTestApp() *App {
	s := config.Default().Settings
	return New(&s)
}

// orderExt records its name in a shared log when notified, giving tests an
// observable notification order.
type orderExt struct {
	name string
	log  *[]string
	err  error // returned from the handler when set
}

func (e *orderExt) AfterConfiguration(h extension.Host) error {
	*e.log = append(*e.log, e.name)
	return e.err
}

// renameStage rewrites destination paths containing a substring.
type renameStage struct {
	old, new string
}

func (s *renameStage) TransformResources(res resource.List) (resource.List, error) {
	for _, r := range res {
		r.DestinationPath = strings.ReplaceAll(r.DestinationPath, s.old, s.new)
	}
	return res, nil
}

// appendStage appends one synthetic resource.
type appendStage struct {
	destination string
}

func (s *appendStage) TransformResources(res resource.List) (resource.List, error) {
	return append(res, resource.Synthetic(s.destination, s.destination, []byte("synthetic"))), nil
}

// failStage fails every run.
type failStage struct {
	err error
}

func (s *failStage) TransformResources(res resource.List) (resource.List, error) {
	return nil, s.err
}

// exposerExt exposes fixed names on the config and template surfaces plus a
// helper bundle.
type exposerExt struct {
	configName   string
	templateName string
	bundle       string
}

func (e *exposerExt) ConfigExposures() []extension.Exposure {
	if e.configName == "" {
		return nil
	}
	return []extension.Exposure{{Name: e.configName, Fn: func() string { return "config" }}}
}

func (e *exposerExt) TemplateExposures() []extension.Exposure {
	if e.templateName == "" {
		return nil
	}
	return []extension.Exposure{{Name: e.templateName, Fn: func() string { return "template" }}}
}

func (e *exposerExt) Helpers() extension.HelperBundle {
	name := e.bundle
	if name == "" {
		name = "unused"
	}
	return extension.HelperBundle{
		Name:  name,
		Funcs: map[string]any{"ping": func() string { return "pong" }},
	}
}
