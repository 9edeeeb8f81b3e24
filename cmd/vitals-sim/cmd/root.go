package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/vitals-sim/internal/config"
	"github.com/oshokin/vitals-sim/internal/logger"
	"github.com/oshokin/vitals-sim/internal/service/simulator"
	"github.com/oshokin/vitals-sim/internal/version"
)

// NewRootCommand builds the vitals-sim command tree.
func NewRootCommand() *cobra.Command {
	var (
		// configPath stores the path to the configuration YAML file.
		configPath string
		// format overrides the report format.
		format string
		// logLevel overrides the diagnostic log level.
		logLevel string
	)

	rootCmd := &cobra.Command{
		Use:   "vitals-sim [input-file]",
		Short: "Simulate the patient monitor firmware over a recorded vitals stream.",
		Long: `Replays heart_rate,spo2 pairs through the patient monitor firmware logic.

Heart rate drives the status LED timer (CCR 0-1000 over 0-200 BPM).
SpO2 drives the alarm pattern on GPIO port D:
  0      sensor error  0xFFFF
  < 90   critical      0xAAAA
  < 95   warning       0x5555
  >= 95  normal        0x0000

The simulated clock advances one sample period (1 ms by default) per record.
A block is printed for the first record, every 1000th record and every record with an active alarm.
Reading stops at the first line that is not an integer pair.

The input file defaults to patient_data.csv; it can be given as an argument or in the configuration file.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Use input file argument if provided, otherwise rely on config.
			var sourceFile string
			if len(args) > 0 {
				sourceFile = args[0]
			}

			options := &simulator.Options{
				ConfigPath: configPath,
				SourceFile: sourceFile,
				Format:     format,
				LogLevel:   logLevel,
				Output:     cmd.OutOrStdout(),
				ErrOutput:  cmd.ErrOrStderr(),
			}

			return simulator.Run(ctx, options)
		},
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "",
		"path to configuration file (default "+config.DefaultConfigFilename+" when present)")
	rootCmd.Flags().StringVarP(&format, "format", "f", "", "report format: text or json")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "", "log level: debug, info, warn or error")

	version.AttachCobraVersionCommand(rootCmd)

	return rootCmd
}

// Execute runs the vitals-sim CLI and exits with non-zero status on error.
func Execute() {
	ctx := context.Background()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		logger.ErrorKV(ctx, "vitals-sim failed", "error", err)
		os.Exit(1)
	}
}
