// phases.go enumerates the lifecycle phases of a host application run.
//
// Phases are host-driven: the host decides when each occurs, the dispatcher
// only decides who hears about it and in what order. The sequence is fixed
// and linear within a single run; reload restarts it from the top against a
// freshly built application state.

package extension

// Phase names a point in the host application's run that extensions may
// subscribe handlers to.
type Phase string

const (
	PhaseInitialized            Phase = "initialized"
	PhaseBeforeExtensions       Phase = "before_extensions"
	PhaseBeforeInstanceBlock    Phase = "before_instance_block"
	PhaseBeforeSitemap          Phase = "before_sitemap"
	PhaseBeforeConfiguration    Phase = "before_configuration"
	PhaseConfigure              Phase = "configure"
	PhaseAfterConfigurationEval Phase = "after_configuration_eval"
	PhaseAfterConfiguration     Phase = "after_configuration"
	PhaseReady                  Phase = "ready"
	PhaseBeforeServer           Phase = "before_server"
	PhaseBefore                 Phase = "before"
	PhaseBeforeBuild            Phase = "before_build"
	PhaseAfterBuild             Phase = "after_build"
	PhaseBeforeShutdown         Phase = "before_shutdown"
)

// Sequence is the total order of phases within one application run.
// Activation and after_configuration notifications interleave between
// after_configuration_eval and ready.
var Sequence = []Phase{
	PhaseInitialized,
	PhaseBeforeExtensions,
	PhaseBeforeInstanceBlock,
	PhaseBeforeSitemap,
	PhaseBeforeConfiguration,
	PhaseConfigure,
	PhaseAfterConfigurationEval,
	PhaseAfterConfiguration,
	PhaseReady,
	PhaseBeforeServer,
	PhaseBefore,
	PhaseBeforeBuild,
	PhaseAfterBuild,
	PhaseBeforeShutdown,
}

// Index returns the position of p in Sequence, or -1 for unknown phases.
func (p Phase) Index() int {
	for i, q := range Sequence {
		if p == q {
			return i
		}
	}
	return -1
}

// Valid reports whether p is one of the defined phases.
func (p Phase) Valid() bool { return p.Index() >= 0 }
