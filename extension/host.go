// host.go defines the Host interface, the read handle extensions receive at
// construction.
//
// Design: Host is an explicitly passed handle, not a global app object.
// Extensions read host configuration (an extension depending on the css dir
// must see it before its after_configuration handler runs) and log through
// the host's logger, but they never reach into host internals. An interface
// keeps instances testable with lightweight fakes.

package extension

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fernholt/trellis/internal/config"
	"github.com/fernholt/trellis/resource"
)

// Host is the controlled surface an extension instance sees of the
// application state it was activated into.
type Host interface {
	// Config returns the host's site settings. Settings are mutable during
	// the configuration phases and stable from ready onwards.
	Config() *config.Settings

	// Generation identifies the application state the instance belongs to.
	// Each boot (including each reload) carries a fresh generation, letting
	// external observers route around a reload boundary.
	Generation() string

	// Logger returns the host's structured logger. Extensions should log
	// through it rather than writing to stdout.
	Logger() logrus.FieldLogger
}

// Build is the handle passed to after_build handlers once a build has
// completed: where the output tree was written and what went into it.
type Build struct {
	// OutputDir is the root of the generated output tree.
	OutputDir string

	// Resources is the final resource list, after every pipeline stage.
	Resources resource.List

	// Written counts the resources materialised into OutputDir.
	Written int

	// Duration is the wall-clock time of the build.
	Duration time.Duration
}
