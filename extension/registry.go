// registry.go implements the extension registration system.
//
// Separated from extension.go to isolate the global registry state and
// thread-safe access patterns. Extensions self-register during init(),
// before main() runs, independent of whether the site configuration ever
// activates them. Registration order is preserved so listings stay
// deterministic across runs.
//
// Design: the registry is append-only for the life of the process. Reload
// discards the whole application state (instances, exposures, pipeline) but
// never the registry; it is repopulated by the same init()-time code, which
// in Go runs once per process, so idempotent re-registration of the
// identical factory is a deliberate no-op.

package extension

import (
	"fmt"
	"reflect"
	"sync"
)

var (
	mu       sync.RWMutex
	registry = make(map[string]*Descriptor)
	order    []string // preserve registration order
)

// Register records an extension under a process-wide unique name. Returns
// the existing descriptor unchanged when the identical factory is
// re-registered under the same name, and ErrDuplicateExtension when a
// different factory claims an existing name. The schema freezes here: no
// option may be declared after registration.
func Register(name string, factory Factory, schema *Schema) (*Descriptor, error) {
	if schema == nil {
		schema = NewSchema()
	}

	mu.Lock()
	defer mu.Unlock()

	if existing, ok := registry[name]; ok {
		if samePointer(existing.Factory, factory) {
			return existing, nil
		}
		return nil, fmt.Errorf("register %q: %w with a different factory", name, ErrDuplicateExtension)
	}

	schema.freeze()
	d := &Descriptor{Name: name, Factory: factory, Schema: schema}
	registry[name] = d
	order = append(order, name)
	return d, nil
}

// MustRegister is Register for init() functions.
//
// Why panic instead of returning error: registration happens at init time,
// before main() runs. Errors at this stage indicate programmer mistakes
// (conflicting extension names), not runtime conditions. Panicking fails
// fast during development and follows the pattern used by
// database/sql.Register, flag.Var, etc.
func MustRegister(name string, factory Factory, schema *Schema) *Descriptor {
	d, err := Register(name, factory, schema)
	if err != nil {
		panic(err)
	}
	return d
}

// Lookup returns the descriptor registered under name, or ErrNotFound.
func Lookup(name string) (*Descriptor, error) {
	mu.RLock()
	defer mu.RUnlock()

	d, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("extension %q: %w", name, ErrNotFound)
	}
	return d, nil
}

// All returns every registered descriptor in registration order.
func All() []*Descriptor {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]*Descriptor, 0, len(order))
	for _, name := range order {
		out = append(out, registry[name])
	}
	return out
}

// Names returns the registered extension names in registration order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, len(order))
	copy(names, order)
	return names
}

// samePointer reports whether two factories are the same function. Closures
// created by separate calls compare unequal, which is the conservative
// behaviour: only genuinely repeated loading of the same code is idempotent.
func samePointer(a, b Factory) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}
