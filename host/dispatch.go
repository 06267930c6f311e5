// dispatch.go implements the lifecycle dispatcher: per-phase subscriber
// lists in activation order, driven by the host at the corresponding points
// of the application run.
//
// Design: dispatch is fail-fast. A handler error aborts the remaining
// notifications for that phase and propagates to the host driver; a
// misbehaving extension must not be allowed to continue in a corrupted
// application state. The dispatcher never decides when a phase occurs, only
// who hears about it and in what order.

package host

import (
	"github.com/fernholt/trellis/extension"
	"github.com/fernholt/trellis/internal/log"
)

// Dispatcher owns the phase subscriber lists for one application state.
type Dispatcher struct {
	subscribers map[extension.Phase][]*activation
}

func newDispatcher() *Dispatcher {
	return &Dispatcher{subscribers: make(map[extension.Phase][]*activation)}
}

// subscribe appends the activation to every phase list it implements,
// preserving activation order. For any two activations A then B, A is
// notified of every shared phase strictly before B.
func (d *Dispatcher) subscribe(a *activation) {
	for _, p := range a.phases {
		d.subscribers[p] = append(d.subscribers[p], a)
	}
}

// Subscribers returns the extension names subscribed to a phase, in
// notification order.
func (d *Dispatcher) Subscribers(p extension.Phase) []string {
	subs := d.subscribers[p]
	out := make([]string, len(subs))
	for i, a := range subs {
		out[i] = a.name
	}
	return out
}

// notify invokes every subscriber's handler for the phase, strictly in
// activation order, passing the phase arguments. The first handler error
// aborts the remaining notifications and is returned as a PhaseError naming
// the offender.
func (d *Dispatcher) notify(h extension.Host, p extension.Phase, args ...any) error {
	for _, a := range d.subscribers[p] {
		err := extension.NotifyPhase(a.instance, h, p, args...)
		log.Event("phase:"+string(p), "notify").
			Extension(a.name).
			Phase(string(p)).
			Generation(h.Generation()).
			Write(err)
		if err != nil {
			return &PhaseError{Phase: p, Extension: a.name, Err: err}
		}
	}
	return nil
}
