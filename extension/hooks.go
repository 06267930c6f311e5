// hooks.go defines one optional handler interface per lifecycle phase, plus
// the introspection helpers the host uses to discover and drive them.
//
// Separated from extension.go to keep the authoring surface in one place:
// an extension subscribes to a phase simply by implementing the matching
// interface, the same optional-interface pattern used for Transformer and
// the exposure declarations. The invoker table below is the only piece of
// code that maps phase names to method calls; the host never reflects over
// method sets.

package extension

// Handler interfaces, one per phase in Sequence order. Most handlers take
// only the host read handle; after_build additionally receives the build
// handle so hooks can act on the generated output tree.
type (
	InitializedHandler            interface{ Initialized(h Host) error }
	BeforeExtensionsHandler       interface{ BeforeExtensions(h Host) error }
	BeforeInstanceBlockHandler    interface{ BeforeInstanceBlock(h Host) error }
	BeforeSitemapHandler          interface{ BeforeSitemap(h Host) error }
	BeforeConfigurationHandler    interface{ BeforeConfiguration(h Host) error }
	ConfigureHandler              interface{ Configure(h Host) error }
	AfterConfigurationEvalHandler interface{ AfterConfigurationEval(h Host) error }
	AfterConfigurationHandler     interface{ AfterConfiguration(h Host) error }
	ReadyHandler                  interface{ Ready(h Host) error }
	BeforeServerHandler           interface{ BeforeServer(h Host) error }
	BeforeHandler                 interface{ Before(h Host) error }
	BeforeBuildHandler            interface{ BeforeBuild(h Host) error }
	AfterBuildHandler             interface{ AfterBuild(h Host, b *Build) error }
	BeforeShutdownHandler         interface{ BeforeShutdown(h Host) error }
)

// phaseInvoker pairs capability detection with dispatch for one phase.
type phaseInvoker struct {
	implements func(inst any) bool
	invoke     func(inst any, h Host, args []any) error
}

// hostOnly builds the invoker for the common handler shape taking just the
// host handle.
func hostOnly[T any](call func(T, Host) error) phaseInvoker {
	return phaseInvoker{
		implements: func(inst any) bool { _, ok := inst.(T); return ok },
		invoke: func(inst any, h Host, _ []any) error {
			return call(inst.(T), h)
		},
	}
}

var invokers = map[Phase]phaseInvoker{
	PhaseInitialized:            hostOnly(func(t InitializedHandler, h Host) error { return t.Initialized(h) }),
	PhaseBeforeExtensions:       hostOnly(func(t BeforeExtensionsHandler, h Host) error { return t.BeforeExtensions(h) }),
	PhaseBeforeInstanceBlock:    hostOnly(func(t BeforeInstanceBlockHandler, h Host) error { return t.BeforeInstanceBlock(h) }),
	PhaseBeforeSitemap:          hostOnly(func(t BeforeSitemapHandler, h Host) error { return t.BeforeSitemap(h) }),
	PhaseBeforeConfiguration:    hostOnly(func(t BeforeConfigurationHandler, h Host) error { return t.BeforeConfiguration(h) }),
	PhaseConfigure:              hostOnly(func(t ConfigureHandler, h Host) error { return t.Configure(h) }),
	PhaseAfterConfigurationEval: hostOnly(func(t AfterConfigurationEvalHandler, h Host) error { return t.AfterConfigurationEval(h) }),
	PhaseAfterConfiguration:     hostOnly(func(t AfterConfigurationHandler, h Host) error { return t.AfterConfiguration(h) }),
	PhaseReady:                  hostOnly(func(t ReadyHandler, h Host) error { return t.Ready(h) }),
	PhaseBeforeServer:           hostOnly(func(t BeforeServerHandler, h Host) error { return t.BeforeServer(h) }),
	PhaseBefore:                 hostOnly(func(t BeforeHandler, h Host) error { return t.Before(h) }),
	PhaseBeforeBuild:            hostOnly(func(t BeforeBuildHandler, h Host) error { return t.BeforeBuild(h) }),
	PhaseAfterBuild: {
		implements: func(inst any) bool { _, ok := inst.(AfterBuildHandler); return ok },
		invoke: func(inst any, h Host, args []any) error {
			var b *Build
			if len(args) > 0 {
				b, _ = args[0].(*Build)
			}
			return inst.(AfterBuildHandler).AfterBuild(h, b)
		},
	},
	PhaseBeforeShutdown: hostOnly(func(t BeforeShutdownHandler, h Host) error { return t.BeforeShutdown(h) }),
}

// Implements reports whether inst handles phase p.
func Implements(inst any, p Phase) bool {
	inv, ok := invokers[p]
	return ok && inv.implements(inst)
}

// PhasesOf returns the phases inst handles, in Sequence order.
func PhasesOf(inst any) []Phase {
	var out []Phase
	for _, p := range Sequence {
		if Implements(inst, p) {
			out = append(out, p)
		}
	}
	return out
}

// NotifyPhase invokes inst's handler for phase p with the given phase
// arguments. Instances that do not handle p are skipped silently; the
// dispatcher only calls this for subscribed instances, but the guard keeps
// misuse harmless.
func NotifyPhase(inst any, h Host, p Phase, args ...any) error {
	inv, ok := invokers[p]
	if !ok || !inv.implements(inst) {
		return nil
	}
	return inv.invoke(inst, h, args)
}
