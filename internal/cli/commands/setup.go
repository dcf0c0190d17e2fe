// SPDX-License-Identifier: MIT

// Package commands implements the linsolve subcommands.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linsys/internal/cli/config"
	"github.com/katalvlaran/linsys/internal/cli/output"
	"github.com/katalvlaran/linsys/solver"
)

// CommandContext bundles what every command needs.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext collects the loaded config, the context logger and a
// renderer bound to the command's streams.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := config.GetCurrentConfig()
	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(cmd.Context()),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.OutputFormat, cfg.Precision),
	}
}

// Solver builds a solver from the context configuration.
func (c *CommandContext) Solver() (*solver.Solver, error) {
	sc, err := c.Cfg.SolverConfig(c.Logger)
	if err != nil {
		return nil, err
	}
	return solver.New(sc)
}
