// Package cli provides the Cobra command structure for mdrender.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/rambip/go-web-markdown/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root mdrender command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var color string

	rootCmd := &cobra.Command{
		Use:   "mdrender",
		Short: "Render markdown with custom components to HTML or an element tree",
		Long: `mdrender parses CommonMark (plus tables, footnotes, task lists, optional
math) and renders it through a pluggable host binding.

Pseudo-HTML tags whose name starts with an uppercase letter, or is lowercase
and contains a dash, are treated as custom components: <Counter initial="5"/>
invokes the registered Counter component instead of passing raw HTML through.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newRenderCommand(&color))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
