/*
Copyright © 2026 Fern Holt (fernholt) <trellis@fernholt.dev>
*/
package main

import (
	"github.com/fernholt/trellis/cmd"

	// Import built-in extensions - each registers itself via init()
	_ "github.com/fernholt/trellis/extension/all"
)

func main() {
	cmd.Execute()
}
