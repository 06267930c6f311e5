/*
Copyright © 2026 Fern Holt (fernholt) <trellis@fernholt.dev>
*/

// extensions.go implements "trellis extensions": a listing of every
// registered extension with its option schema.
//
// Design: terminal output gets glamour markdown rendering for readability;
// pipe/redirect gets raw markdown for machine consumption. Same split the
// document tooling this code grew out of uses for embedded guides.

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fernholt/trellis/extension"
)

func init() {
	rootCmd.AddCommand(newExtensionsCmd())
}

func newExtensionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extensions",
		Short: "List registered extensions and their options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			content := extensionsMarkdown(extension.All())

			if term.IsTerminal(int(os.Stdout.Fd())) {
				rendered, err := glamour.Render(content, "dark")
				if err == nil {
					fmt.Fprint(cmd.OutOrStdout(), rendered)
					return nil
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), content)
			return nil
		},
	}
}

// extensionsMarkdown renders the registry as a markdown document, one
// section per extension in registration order.
func extensionsMarkdown(descriptors []*extension.Descriptor) string {
	var b strings.Builder
	b.WriteString("# Registered extensions\n\n")

	if len(descriptors) == 0 {
		b.WriteString("No extensions registered.\n")
		return b.String()
	}

	for _, d := range descriptors {
		fmt.Fprintf(&b, "## %s\n\n", d.Name)

		specs := d.Schema.Specs()
		if len(specs) == 0 {
			b.WriteString("No options.\n\n")
			continue
		}

		b.WriteString("| Option | Default | Description |\n")
		b.WriteString("|--------|---------|-------------|\n")
		for _, s := range specs {
			fmt.Fprintf(&b, "| %s | `%v` | %s |\n", s.Key, s.Default, s.Description)
		}
		b.WriteString("\n")
	}
	return b.String()
}
