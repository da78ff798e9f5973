// Package cli implements the netsketch command-line interface.
//
// The CLI exposes a single generate command that composes the DTNet and
// ITNet architecture diagrams and writes them as SVG, PDF, PNG, or DOT
// files. All commands support --verbose (-v) for debug-level logging;
// loggers are passed through context.Context.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version. It is
// called by the main package with values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the netsketch CLI and returns an error if any command fails.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "netsketch",
		Short:        "netsketch renders DTNet and ITNet architecture diagrams",
		Long:         `netsketch is a one-shot generator for the DTNet and ITNet neural-network architecture diagrams. It composes a fixed, hand-tuned layout and writes it as SVG, PDF, PNG, or Graphviz DOT.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("netsketch %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())

	return root.ExecuteContext(ctx)
}
