// exposure.go implements the per-application exposure table: the capability
// map from exposed operation names to callables, partitioned into the
// configuration surface, the template surface, and helper bundles.
//
// Design: the table is populated only during the single-threaded activation
// sequence and read afterwards by the configuration-evaluation and rendering
// collaborators, so it needs no locking of its own. Names are unique within
// each surface; a later activation re-claiming a name fails and the earlier
// exposure stays usable.

package host

import (
	"fmt"
	"sort"

	"github.com/fernholt/trellis/extension"
)

// exposureEntry records a callable together with the extension that owns it,
// for attribution in collision errors.
type exposureEntry struct {
	owner string
	fn    any
}

// Exposures is the exposure table for one application state.
type Exposures struct {
	config   map[string]exposureEntry
	template map[string]exposureEntry
	helpers  map[string]exposureEntry // bundle name -> map[string]any of funcs
}

func newExposures() *Exposures {
	return &Exposures{
		config:   make(map[string]exposureEntry),
		template: make(map[string]exposureEntry),
		helpers:  make(map[string]exposureEntry),
	}
}

func (x *Exposures) expose(table map[string]exposureEntry, surface, owner, name string, fn any) error {
	if existing, ok := table[name]; ok {
		return fmt.Errorf("%s operation %q exposed by %q: %w (owned by %q)",
			surface, name, owner, extension.ErrNameCollision, existing.owner)
	}
	table[name] = exposureEntry{owner: owner, fn: fn}
	return nil
}

// exposeConfig claims a name on the configuration surface.
func (x *Exposures) exposeConfig(owner, name string, fn any) error {
	return x.expose(x.config, "config", owner, name, fn)
}

// exposeTemplate claims a name on the template surface.
func (x *Exposures) exposeTemplate(owner, name string, fn any) error {
	return x.expose(x.template, "template", owner, name, fn)
}

// registerHelpers claims a bundle name in the helper namespace. The bundle's
// functions are copied; the table never aliases extension-owned maps.
func (x *Exposures) registerHelpers(owner string, b extension.HelperBundle) error {
	funcs := make(map[string]any, len(b.Funcs))
	for name, fn := range b.Funcs {
		funcs[name] = fn
	}
	return x.expose(x.helpers, "helper bundle", owner, b.Name, funcs)
}

// ResolveConfig returns the callable exposed under name on the
// configuration surface, or extension.ErrNotFound.
func (x *Exposures) ResolveConfig(name string) (any, error) {
	e, ok := x.config[name]
	if !ok {
		return nil, fmt.Errorf("config operation %q: %w", name, extension.ErrNotFound)
	}
	return e.fn, nil
}

// ResolveTemplate returns the callable exposed under name on the template
// surface, or extension.ErrNotFound.
func (x *Exposures) ResolveTemplate(name string) (any, error) {
	e, ok := x.template[name]
	if !ok {
		return nil, fmt.Errorf("template operation %q: %w", name, extension.ErrNotFound)
	}
	return e.fn, nil
}

// TemplateContext merges helper bundles and template exposures into a fresh
// map for the rendering collaborator. Each helper bundle appears as a nested
// map under its bundle name; template operations appear under their exposed
// name. The surfaces are separate namespaces, so a bundle and an operation
// may legitimately share a name; in that case the template operation wins in
// the merged context. The result is a copy per call, so the caller cannot
// corrupt the table.
func (x *Exposures) TemplateContext() map[string]any {
	ctx := make(map[string]any, len(x.template)+len(x.helpers))
	for name, e := range x.helpers {
		funcs := e.fn.(map[string]any)
		bundle := make(map[string]any, len(funcs))
		for fname, fn := range funcs {
			bundle[fname] = fn
		}
		ctx[name] = bundle
	}
	for name, e := range x.template {
		ctx[name] = e.fn
	}
	return ctx
}

// ConfigNames returns the exposed configuration-surface names, sorted.
func (x *Exposures) ConfigNames() []string { return sortedKeys(x.config) }

// TemplateNames returns the exposed template-surface names, sorted.
func (x *Exposures) TemplateNames() []string { return sortedKeys(x.template) }

// HelperBundles returns the registered helper bundle names, sorted.
func (x *Exposures) HelperBundles() []string { return sortedKeys(x.helpers) }

func sortedKeys(m map[string]exposureEntry) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
