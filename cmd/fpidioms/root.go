package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Pure-Company/fpidioms"
)

const (
	flagConfig   = "config"
	flagOutput   = "output"
	flagLogLevel = "log-level"
)

// newRootCmd builds the command tree. Each call returns independent flag
// state, which keeps tests isolated.
func newRootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "fpidioms",
		Short: "Run the functional programming demonstrations",
		Long: `fpidioms runs a fixed set of pure functions (recursion, map, composition,
fold, currying, tagged variants, pattern matching) and prints one line
per demonstration.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags(), configFile)
			if err != nil {
				return err
			}

			format, err := fpidioms.ParseFormat(cfg.GetString(cfgKeyOutput))
			if err != nil {
				return err
			}

			logger, err := setupLogger(cfg.GetString(cfgKeyLogLevel))
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			logger.Debug("starting", zap.String("format", string(format)), zap.String("version", version))

			runner := fpidioms.NewRunner(logger.Named("runner"), fpidioms.DefaultSteps()...)
			if format == fpidioms.FormatText {
				return runner.Run(cmd.OutOrStdout())
			}
			return runner.Report().Encode(cmd.OutOrStdout(), format)
		},
	}

	cmd.Flags().StringVar(&configFile, flagConfig, "", "optional YAML config file")
	cmd.Flags().String(flagOutput, defaultOutput, "output format: text, json or yaml")
	cmd.Flags().String(flagLogLevel, defaultLogLevel, "log level: debug, info, warn or error")

	cmd.AddCommand(newVersionCmd())
	return cmd
}
