// Package cmd provides the CLI commands for queens.
package cmd

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdrpinto/bestfirst/internal/config"
	"github.com/pdrpinto/bestfirst/internal/logging"
)

// app carries what the subcommands share once the root pre-run has loaded it.
type app struct {
	v      *viper.Viper
	cfg    config.Config
	logger zerolog.Logger
}

// NewRootCmd creates the root command for the queens CLI.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:   "queens",
		Short: "Solve N-Queens with the bestfirst search engine",
		Long: `queens places N queens on an N x N board by best-first search.

Settings come from flags, QUEENS_* environment variables and an optional
YAML file passed with --config, in that order of precedence.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.ReadFile(a.v); err != nil {
				return err
			}
			cfg, err := config.Load(a.v)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logging.Setup(cmd.ErrOrStderr(), cfg.LogLevel)
			return nil
		},
	}

	config.RegisterFlags(cmd.PersistentFlags())
	if err := config.Bind(a.v, cmd.PersistentFlags()); err != nil {
		panic(err)
	}

	cmd.AddCommand(newSolveCmd(a), newCompareCmd(a))
	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
