/*
Copyright © 2026 Fern Holt (fernholt) <trellis@fernholt.dev>
*/

// root.go defines the root command and CLI execution entry point.
//
// Design: the root command only wires global flags and logging level; the
// actual host lifecycle (boot, build, shutdown) lives with the subcommands
// that drive it, so listing commands never constructs application state.

package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fernholt/trellis/internal/config"
	"github.com/fernholt/trellis/internal/log"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "trellis",
	Short: "Extension-driven static site build host",
	Long:  `A build host that activates registered extensions from site configuration, notifies them across the application lifecycle, and threads the resource list through their transform pipeline before output.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "site configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command and handles process lifecycle. Opens audit
// logging, executes the command, and closes the log before exit. Exit code
// 1 indicates error.
func Execute() {
	// Initialise audit logger (warn if it fails, but continue)
	if err := log.Open(); err != nil {
		logrus.Warnf("audit log unavailable: %v", err)
	}
	defer log.Close()

	if wd, err := os.Getwd(); err == nil {
		log.SetSite(wd)
	}

	if err := rootCmd.Execute(); err != nil {
		log.Close()
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing.
func RootCmd() *cobra.Command {
	return rootCmd
}
