/*
Copyright © 2026 Fern Holt (fernholt) <trellis@fernholt.dev>
*/

// build.go implements "trellis build": evaluate the site configuration,
// boot an application state, run one build through the resource pipeline,
// and notify before_shutdown on the way out.

package cmd

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fernholt/trellis/extension"
	"github.com/fernholt/trellis/host"
	"github.com/fernholt/trellis/internal/builder"
	"github.com/fernholt/trellis/internal/config"
)

func init() {
	rootCmd.AddCommand(newBuildCmd())
}

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build the site into the output directory",
		Long: `Evaluates the site configuration, activates the configured extensions,
and runs the resource pipeline over the source tree. A configuration or
extension error aborts the build with a non-zero exit status.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			app, err := host.Boot(cfg, host.WithLogger(logrus.StandardLogger()))
			if err != nil {
				return err
			}

			b, err := builder.Run(app)
			if err != nil {
				return err
			}

			if err := app.Notify(extension.PhaseBeforeShutdown); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "built %d resources to %s in %s\n",
				b.Written, b.OutputDir, b.Duration.Round(time.Millisecond))
			return nil
		},
	}
}
