// Package deploy provides the deploy extension: an after_build hook that
// runs a shell command against the generated output tree, e.g. an rsync or
// a publish script. The command blocks the phase until it returns; there is
// no timeout, which matches the host's synchronous dispatch model.
package deploy

import (
	"fmt"
	"os/exec"

	"github.com/fernholt/trellis/extension"
)

func init() {
	extension.MustRegister("deploy", New, schema)
}

var schema = extension.NewSchema().
	Option("command", "", "Shell command run in the output directory after each build.")

// Extension runs the configured command after every completed build.
type Extension struct {
	command string
}

var _ extension.AfterBuildHandler = (*Extension)(nil)

// New constructs an instance for one activation.
func New(h extension.Host, opts *extension.Options) (any, error) {
	return &Extension{command: opts.String("command")}, nil
}

// AfterBuild runs the deploy command in the output directory. A non-zero
// exit aborts the phase: a failed deploy should surface to the operator,
// not scroll by in a log.
func (e *Extension) AfterBuild(h extension.Host, b *extension.Build) error {
	if e.command == "" || b == nil {
		return nil
	}

	cmd := exec.Command("sh", "-c", e.command)
	cmd.Dir = b.OutputDir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("deploy command %q: %w: %s", e.command, err, out)
	}

	h.Logger().WithFields(map[string]any{
		"extension": "deploy",
		"command":   e.command,
		"output":    b.OutputDir,
	}).Info("deploy command finished")
	return nil
}
