// Package extension provides the plugin architecture for trellis. Extensions
// encapsulate related build behaviour (path rewriting, resource synthesis,
// deploy hooks) and register at init time, enabling modular feature
// development without touching core code.
//
// The contract has two separately callable steps: registration and
// activation. Registration records a name, a factory, and an options schema
// in the process-wide registry, independent of whether the extension is ever
// used. Activation, driven by site configuration, resolves options against
// the schema, calls the factory, and wires the resulting instance into the
// host's lifecycle dispatcher, exposure table, and resource pipeline.
//
// An instance declares its capabilities through optional interfaces: one
// handler interface per lifecycle phase (see hooks.go), Transformer for
// pipeline participation, and the exposure interfaces in exposure.go. The
// host discovers capabilities by type assertion at activation time.
package extension

import (
	"github.com/fernholt/trellis/resource"
)

// Factory constructs an extension instance for one activation. It receives
// the host read handle and the instance's resolved options. The returned
// value's capabilities are discovered by type assertion against the optional
// interfaces in this package.
type Factory func(h Host, opts *Options) (any, error)

// Descriptor is the immutable registration record for an extension: a
// process-wide unique name, the factory that constructs instances, and the
// options schema activations resolve against. Descriptors are created once
// at registration and never removed.
type Descriptor struct {
	Name    string
	Factory Factory
	Schema  *Schema
}

// Transformer is implemented by extensions that participate in the resource
// pipeline. Stages run in activation order; each receives the full resource
// list and must return the complete replacement list.
//
// Reducer contract, sharp edge included: the returned list is accepted at
// face value. A stage that returns a partial list (say, only the resources
// it touched) silently drops everything else from the build. The pipeline
// does not detect or correct this; returning the complete collection is the
// stage author's responsibility. Mutating resources in place and returning
// the input list is fine.
type Transformer interface {
	TransformResources(res resource.List) (resource.List, error)
}
