// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSolveCommand creates the solve command.
func NewSolveCommand() *cobra.Command {
	var in systemFlags
	cmd := &cobra.Command{
		Use:   "solve [file|-]",
		Short: "Solve a linear system with one method",
		Long: `Solve A·x = b with the configured method and print the intermediate
quantities: the L/D/U split, the iteration map H and C, and the iteration
table for Jacobi and Gauss-Seidel, or the LU factors and Z for Crout and
Doolittle.

The system is read from a YAML file with keys "a" (rows) and "b".`,
		Example: `  # Gauss-Seidel (the default) on a file
  linsolve solve system.yaml

  # SOR with ω = 1.25 on stdin
  cat system.yaml | linsolve solve - --method sor --relaxation 1.25

  # Doolittle on a random 5×5 system, as JSON
  linsolve solve --random 5 --seed 7 --method doolittle -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := NewCommandContext(cmd)
			sys, err := in.load(cmd, args)
			if err != nil {
				return err
			}
			s, err := cc.Solver()
			if err != nil {
				return err
			}
			rep, err := s.Solve(sys)
			if err != nil {
				return fmt.Errorf("%s: %w", s.Config().Method, err)
			}
			return cc.Renderer.Report(sys, rep)
		},
	}
	in.register(cmd)
	return cmd
}
