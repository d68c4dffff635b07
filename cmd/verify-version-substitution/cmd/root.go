package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/plist-version-verifier/internal/logger"
	"github.com/oshokin/plist-version-verifier/internal/report"
	"github.com/oshokin/plist-version-verifier/internal/service/verifier"
	"github.com/oshokin/plist-version-verifier/internal/version"
)

var (
	// configPath to an optional configuration YAML file.
	configPath string
	// rootDir is an explicit repository root.
	rootDir string
	// logLevel is the minimum level of console lines.
	logLevel string
	// summary enables the step table after the run.
	summary bool

	// rootCmd represents the base command for verifying Info.plist generation.
	rootCmd = &cobra.Command{
		Use:   "verify-version-substitution",
		Short: "Verify Info.plist version substitution.",
		Long: `Simulates the xmake on_config step of the macOS launcher.

Reads VERSION_MAJOR, VERSION_MINOR, VERSION_REVISION and VERSION_PATCH from
mods/src/version.h (1.0.0.0 when absent), substitutes the version into every
${VERSION} of macos-launcher/src/Info.plist.template, writes Info.plist and checks
that it is well-formed XML whose CFBundleShortVersionString and CFBundleVersion
equal the version. The generated Info.plist is always removed afterwards.

Run it from the stfc-mod checkout or up to two levels below it.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			level, ok := logger.ParseLogLevel(logLevel)
			if !ok {
				return fmt.Errorf("unknown log level %q", logLevel)
			}

			logger.SetLevel(level)

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &verifier.Options{
				ConfigPath: configPath,
				Root:       rootDir,
			}

			result, err := verifier.Run(ctx, options)

			if summary {
				report.Render(cmd.OutOrStdout(), result)
			}

			return err
		},
	}
)

// Execute runs the verifier CLI and exits with status 1 on any failure.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	err := rootCmd.Execute()

	logger.Sync()

	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to an optional configuration file")
	rootCmd.Flags().StringVarP(&rootDir, "root", "r", "", "repository root (located automatically when empty)")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "info", "log level: debug, info, warn or error")
	rootCmd.Flags().BoolVarP(&summary, "summary", "s", false, "print a table of all steps after the run")
}
