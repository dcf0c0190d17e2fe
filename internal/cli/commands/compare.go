// SPDX-License-Identifier: MIT

package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/linsys/solver"
)

// NewCompareCommand creates the compare command.
func NewCompareCommand() *cobra.Command {
	var (
		in      systemFlags
		methods []string
	)
	cmd := &cobra.Command{
		Use:   "compare [file|-]",
		Short: "Solve one system with several methods and compare the results",
		Long: `Run the selected methods concurrently on the same system and report each
solution, its status and residual, plus the largest deviation between any two
solutions. A method that fails (for example on a zero pivot) is reported
without stopping the others.`,
		Example: `  # all four methods
  linsolve compare system.yaml

  # Crout against Doolittle only
  linsolve compare system.yaml --methods crout,doolittle`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := NewCommandContext(cmd)
			selected := make([]solver.Method, 0, len(methods))
			for _, name := range methods {
				m, err := solver.ParseMethod(name)
				if err != nil {
					return err
				}
				selected = append(selected, m)
			}
			sys, err := in.load(cmd, args)
			if err != nil {
				return err
			}
			s, err := cc.Solver()
			if err != nil {
				return err
			}
			outcomes, err := s.Compare(cmd.Context(), sys, selected...)
			if err != nil {
				return err
			}
			for _, o := range outcomes {
				if o.Err != nil {
					cc.Logger.Warn("method failed", "method", o.Method.String(), "error", o.Err)
				}
			}
			return cc.Renderer.Comparison(outcomes)
		},
	}
	in.register(cmd)
	cmd.Flags().StringSliceVar(&methods, "methods", nil, "comma-separated methods to run (default: all four)")
	_ = cmd.RegisterFlagCompletionFunc("methods", completeMethods)
	return cmd
}

func completeMethods(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, len(solver.Methods))
	for i, m := range solver.Methods {
		names[i] = m.String()
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
