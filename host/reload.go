// reload.go implements configuration reload: rebuilding the whole
// application state from a freshly evaluated configuration.
//
// Design: reload is an atomic swap, never a partial reuse. The new state is
// booted completely (activation, exposures, pipeline, phases through ready)
// before the caller ever sees it; on any failure the previous state is
// returned unchanged, so a live preview keeps serving the last good
// configuration while the operator fixes the error. Old and new states are
// distinguished by their generation ids; draining or queueing in-flight
// requests around the swap is the serving collaborator's job.
//
// The extension registry survives reload by design: it is process-wide,
// populated by init()-time registration, and independent of any application
// state.

package host

import (
	"github.com/fernholt/trellis/internal/config"
	"github.com/fernholt/trellis/internal/log"
)

// Reload boots a new application state from cfg. On success the new App is
// returned and prev should be discarded by the caller; nothing exposed by
// prev's extensions is resolvable through the new state. On failure prev is
// returned unchanged along with the error (keep-last-good).
func Reload(prev *App, cfg *config.Config, opts ...Option) (*App, error) {
	next, err := Boot(cfg, opts...)

	b := log.Event("host:reload", "reload")
	if prev != nil {
		b.Detail("previous_generation", prev.generation)
	}
	if next != nil {
		b.Generation(next.generation)
	}
	b.Write(err)

	if err != nil {
		return prev, err
	}
	if prev != nil {
		prev.log.WithFields(map[string]any{
			"previous":   prev.generation,
			"generation": next.generation,
		}).Info("application state replaced")
	}
	return next, nil
}
