// Package host implements the application state of a trellis run: the
// activation manager, exposure table, lifecycle dispatcher, and resource
// pipeline, bound together by the App.
//
// Scheduling model: single-threaded, synchronous, cooperative. Activation,
// phase notification, and pipeline execution all run on one logical thread
// of control, and all shared-state mutation happens during the activation
// sequence, before any phase notification for the state begins. There are
// no timeouts or cancellation primitives in the core; a hung handler stalls
// the whole phase, which is a documented limitation rather than something
// the core engineers around.
package host

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/fernholt/trellis/extension"
	"github.com/fernholt/trellis/internal/config"
)

// App is one application state: everything built by evaluating a site
// configuration. A reload never mutates an App; it builds a fresh one and
// discards the old wholesale.
type App struct {
	generation  string
	settings    *config.Settings
	exposures   *Exposures
	dispatcher  *Dispatcher
	pipeline    *Pipeline
	activations []*activation
	log         logrus.FieldLogger
}

// Option adjusts an App during construction.
type Option func(a *App)

// WithLogger sets the structured logger the App and its extensions use.
func WithLogger(l logrus.FieldLogger) Option {
	return func(a *App) { a.log = l }
}

// New creates an empty application state around the given settings. Most
// callers want Boot, which also drives the configuration phases and applies
// the config's activations.
func New(settings *config.Settings, opts ...Option) *App {
	if settings == nil {
		s := config.Default().Settings
		settings = &s
	}
	a := &App{
		generation: uuid.NewString(),
		settings:   settings,
		exposures:  newExposures(),
		log:        logrus.StandardLogger(),
	}
	a.dispatcher = newDispatcher()
	a.pipeline = newPipeline(a.generation)
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Boot builds an application state from a site configuration: it drives the
// early lifecycle phases, applies the configured activations at the
// interleaving point after after_configuration_eval, then notifies
// after_configuration and ready. On any error the partial state must be
// discarded; Reload implements the keep-last-good policy on top of this.
func Boot(cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	// Deep copy: each application state owns its settings outright, so a
	// discarded generation's writes never reach the config or a replacement
	// state booted from it.
	a := New(cfg.Settings.Clone(), opts...)

	for _, p := range []extension.Phase{
		extension.PhaseInitialized,
		extension.PhaseBeforeExtensions,
		extension.PhaseBeforeInstanceBlock,
		extension.PhaseBeforeSitemap,
		extension.PhaseBeforeConfiguration,
		extension.PhaseConfigure,
		extension.PhaseAfterConfigurationEval,
	} {
		if err := a.Notify(p); err != nil {
			return nil, err
		}
	}

	for _, act := range cfg.Extensions {
		if _, err := a.Activate(act.Name, act.Options, nil); err != nil {
			return nil, err
		}
	}

	if err := a.Notify(extension.PhaseAfterConfiguration); err != nil {
		return nil, err
	}
	if err := a.Notify(extension.PhaseReady); err != nil {
		return nil, err
	}

	a.log.WithFields(map[string]any{
		"generation": a.generation,
		"extensions": len(a.activations),
	}).Info("application state ready")
	return a, nil
}

// Config returns the host's site settings. Part of extension.Host.
func (a *App) Config() *config.Settings { return a.settings }

// Generation returns the application state's generation id. Part of
// extension.Host.
func (a *App) Generation() string { return a.generation }

// Logger returns the host's structured logger. Part of extension.Host.
func (a *App) Logger() logrus.FieldLogger { return a.log }

// Notify drives one lifecycle phase through the dispatcher. Phases are
// host-driven: callers (the build driver, a preview server) invoke this at
// the corresponding point of the run, in Sequence order.
func (a *App) Notify(p extension.Phase, args ...any) error {
	return a.dispatcher.notify(a, p, args...)
}

// Exposures returns the application state's exposure table, the read
// surface for the configuration-evaluation and rendering collaborators.
func (a *App) Exposures() *Exposures { return a.exposures }

// Pipeline returns the application state's resource pipeline.
func (a *App) Pipeline() *Pipeline { return a.pipeline }

// Dispatcher returns the application state's lifecycle dispatcher.
func (a *App) Dispatcher() *Dispatcher { return a.dispatcher }

// Activations returns the names of activated extensions in activation
// order. Duplicates appear once per activation.
func (a *App) Activations() []string {
	out := make([]string, len(a.activations))
	for i, act := range a.activations {
		out[i] = act.name
	}
	return out
}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var _ extension.Host = (*App)(nil)
