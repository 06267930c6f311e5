package extension

import "testing"

// phaseProbe implements a handful of handlers for introspection tests.
type phaseProbe struct {
	seen []Phase
}

func (p *phaseProbe) Initialized(h Host) error { p.seen = append(p.seen, PhaseInitialized); return nil }
func (p *phaseProbe) Ready(h Host) error       { p.seen = append(p.seen, PhaseReady); return nil }
func (p *phaseProbe) AfterBuild(h Host, b *Build) error {
	p.seen = append(p.seen, PhaseAfterBuild)
	return nil
}

func TestSequence_TotalOrder(t *testing.T) {
	if got := len(Sequence); got != 14 {
		t.Fatalf("len(Sequence) = %d, want 14", got)
	}
	if Sequence[0] != PhaseInitialized {
		t.Errorf("Sequence starts with %s, want initialized", Sequence[0])
	}
	if Sequence[len(Sequence)-1] != PhaseBeforeShutdown {
		t.Errorf("Sequence ends with %s, want before_shutdown", Sequence[len(Sequence)-1])
	}
	for i, p := range Sequence {
		if p.Index() != i {
			t.Errorf("%s.Index() = %d, want %d", p, p.Index(), i)
		}
	}
	if Phase("nonsense").Valid() {
		t.Error("unknown phase reported valid")
	}
}

func TestPhasesOf(t *testing.T) {
	probe := &phaseProbe{}
	got := PhasesOf(probe)

	want := []Phase{PhaseInitialized, PhaseReady, PhaseAfterBuild}
	if len(got) != len(want) {
		t.Fatalf("PhasesOf = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("PhasesOf = %v, want %v", got, want)
		}
	}

	if Implements(probe, PhaseBeforeServer) {
		t.Error("Implements(before_server) = true for probe without handler")
	}
}

func TestNotifyPhase(t *testing.T) {
	probe := &phaseProbe{}

	if err := NotifyPhase(probe, nil, PhaseReady); err != nil {
		t.Fatalf("NotifyPhase ready: %v", err)
	}
	// Unhandled phases are skipped silently.
	if err := NotifyPhase(probe, nil, PhaseBeforeServer); err != nil {
		t.Fatalf("NotifyPhase unhandled: %v", err)
	}
	if err := NotifyPhase(probe, nil, PhaseAfterBuild, &Build{OutputDir: "out"}); err != nil {
		t.Fatalf("NotifyPhase after_build: %v", err)
	}

	if len(probe.seen) != 2 || probe.seen[0] != PhaseReady || probe.seen[1] != PhaseAfterBuild {
		t.Errorf("handlers seen %v, want [ready after_build]", probe.seen)
	}
}
