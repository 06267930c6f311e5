// Package all imports all built-in trellis extensions.
// Import this package to register every built-in for activation.
package all

import (
	// Built-in extensions - each registers itself via init()
	_ "github.com/fernholt/trellis/extension/deploy"
	_ "github.com/fernholt/trellis/extension/dirindex"
	_ "github.com/fernholt/trellis/extension/sitemapxml"
)
