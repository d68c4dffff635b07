package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

// AttachCobraVersionCommand attaches a `version` subcommand to root and sets
// root.Version so `--version` prints the same line.
func AttachCobraVersionCommand(root *cobra.Command) {
	root.Version = Full()
	root.SetVersionTemplate("{{.Version}}\n")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information.",
		Long:  "Print the verifier's build metadata: release, commit hash, build timestamp and Go version. Values are injected at build time via ldflags or taken from the VCS stamp of the binary.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), Full())
		},
	})
}
