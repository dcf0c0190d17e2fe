// SPDX-License-Identifier: MIT

// Package cli provides the command-line interface for linsolve.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linsys/internal/cli/commands"
	"github.com/katalvlaran/linsys/internal/cli/config"
)

// Version information (set at build time).
var Version = "0.1.0"

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "linsolve",
		Short: "linsolve - dense linear system solver",
		Long: `linsolve solves dense square systems A·x = b with the Jacobi and
Gauss-Seidel iterations (optionally relaxed: JOR / SOR) or with Crout and
Doolittle LU decomposition, and shows the intermediate quantities of each
method.

Configuration is read from linsolve.yaml, LINSOLVE_* environment variables
and flags, in increasing order of precedence.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger := config.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
			cmd.SetContext(config.WithLogger(cmd.Context(), logger))

			if f := config.GetConfigFileUsed(); f != "" {
				logger.Debug("using config file", "path", f)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./linsolve.yaml)")
	flags.StringP("method", "m", "", "method: jacobi, gauss-seidel, crout, doolittle")
	flags.Float64P("relaxation", "w", 0, "relaxation factor ω in (0,2); ≠1 selects JOR / SOR")
	flags.Float64("tolerance", 0, "stopping tolerance on the L∞ step between iterates")
	flags.Int("max-iterations", 0, "maximum number of sweeps")
	flags.Float64("pivot-tolerance", 0, "LU pivot threshold")
	flags.Bool("scaled-pivot", false, "scale the LU pivot threshold by max(1, ‖A‖∞)")
	flags.Int("precision", 0, "decimal places in table output")
	flags.BoolP("verbose", "v", false, "verbose output")
	flags.StringP("output", "o", "", "output format (table|markdown|json)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return config.OutputFormats, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("method", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"jacobi", "gauss-seidel", "crout", "doolittle"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewSolveCommand())
	rootCmd.AddCommand(commands.NewCompareCommand())
	rootCmd.AddCommand(commands.NewRandomCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
