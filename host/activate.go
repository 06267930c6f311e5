// activate.go implements the activation manager: looking up a registered
// extension, resolving its options, constructing the instance, and wiring
// it into the exposure table, the lifecycle dispatcher, and the resource
// pipeline.
//
// Design: construction and registration are distinct steps. The factory is a
// pure construction call; everything the instance contributes to shared
// state happens here afterwards, by explicit introspection of its optional
// interfaces. Repeated activation of the same name is not rejected: it makes
// a second, independent instance, and whether that is sensible is the
// configuration author's call (exposure collisions are the guard rail).

package host

import (
	"github.com/fernholt/trellis/extension"
	"github.com/fernholt/trellis/internal/log"
)

// activation is one live extension instance bound to this application
// state, with its introspected capabilities.
type activation struct {
	name        string
	instance    any
	options     *extension.Options
	phases      []extension.Phase
	transformer extension.Transformer // nil when the instance has no stage
}

// Activate looks up name in the registry, resolves overrides and the
// optional config block against its schema, constructs the instance, and
// registers its capabilities. Any failure is returned as an ActivationError
// naming the extension; shared state touched before an exposure collision
// is left as-is per the fail-fast policy (the application state must be
// discarded, not repaired).
func (a *App) Activate(name string, overrides map[string]any, block extension.ConfigBlock) (any, error) {
	inst, err := a.activate(name, overrides, block)
	log.Event("host:activate", "activate").
		Extension(name).
		Generation(a.generation).
		Write(err)
	if err != nil {
		return nil, err
	}
	return inst, nil
}

func (a *App) activate(name string, overrides map[string]any, block extension.ConfigBlock) (any, error) {
	desc, err := extension.Lookup(name)
	if err != nil {
		return nil, &ActivationError{Extension: name, Err: err}
	}

	opts, err := desc.Schema.Resolve(overrides, block)
	if err != nil {
		return nil, &ActivationError{Extension: name, Err: err}
	}

	inst, err := desc.Factory(a, opts)
	if err != nil {
		return nil, &ActivationError{Extension: name, Err: err}
	}

	act := &activation{
		name:     name,
		instance: inst,
		options:  opts,
		phases:   extension.PhasesOf(inst),
	}
	if tr, ok := inst.(extension.Transformer); ok {
		act.transformer = tr
	}

	if err := a.registerExposures(act); err != nil {
		return nil, &ActivationError{Extension: name, Err: err}
	}

	a.dispatcher.subscribe(act)
	if act.transformer != nil {
		a.pipeline.add(act)
	}
	a.activations = append(a.activations, act)

	a.log.WithFields(map[string]any{
		"extension":  name,
		"generation": a.generation,
		"phases":     len(act.phases),
		"pipeline":   act.transformer != nil,
	}).Debug("extension activated")

	return inst, nil
}

// registerExposures records the instance's declared operations in the
// exposure table, failing on the first name collision.
func (a *App) registerExposures(act *activation) error {
	if ce, ok := act.instance.(extension.ConfigExposer); ok {
		for _, exp := range ce.ConfigExposures() {
			if err := a.exposures.exposeConfig(act.name, exp.Name, exp.Fn); err != nil {
				return err
			}
		}
	}
	if te, ok := act.instance.(extension.TemplateExposer); ok {
		for _, exp := range te.TemplateExposures() {
			if err := a.exposures.exposeTemplate(act.name, exp.Name, exp.Fn); err != nil {
				return err
			}
		}
	}
	if hp, ok := act.instance.(extension.HelperProvider); ok {
		if err := a.exposures.registerHelpers(act.name, hp.Helpers()); err != nil {
			return err
		}
	}
	return nil
}
