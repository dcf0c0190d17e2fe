// SPDX-License-Identifier: MIT

package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linsys/generate"
	"github.com/katalvlaran/linsys/matrix"
)

// ErrNoSystem is returned when a command gets neither a file nor --random.
var ErrNoSystem = errors.New("no system given: pass a file, '-' for stdin, or --random N")

// SystemFile is the on-disk shape of a linear system:
//
//	a:
//	  - [4, 1]
//	  - [2, 3]
//	b: [1, 2]
type SystemFile struct {
	A [][]float64 `yaml:"a" json:"a"`
	B []float64   `yaml:"b" json:"b"`
}

// ReadSystem decodes and validates a YAML (or JSON) system.
func ReadSystem(r io.Reader) (*matrix.System, error) {
	var f SystemFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode system: %w", err)
	}
	sys, err := matrix.NewSystem(f.A, f.B)
	if err != nil {
		return nil, fmt.Errorf("invalid system: %w", err)
	}
	return sys, nil
}

// WriteSystem encodes sys as YAML.
func WriteSystem(w io.Writer, sys *matrix.System) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(SystemFile{A: sys.A.ToRows(), B: sys.B}); err != nil {
		return fmt.Errorf("encode system: %w", err)
	}
	return enc.Close()
}

// systemFlags are the input-selection flags shared by solve and compare.
type systemFlags struct {
	random int
	seed   int64
}

func (f *systemFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.random, "random", 0, "solve a random diagonally dominant system of this order instead of a file")
	cmd.Flags().Int64Var(&f.seed, "seed", 1, "seed for --random")
}

// load resolves the system from --random, a file path, or stdin ("-").
func (f *systemFlags) load(cmd *cobra.Command, args []string) (*matrix.System, error) {
	if f.random > 0 {
		return generate.DiagonallyDominant(f.random, generate.WithSeed(f.seed))
	}
	if len(args) == 0 {
		return nil, ErrNoSystem
	}
	if args[0] == "-" {
		return ReadSystem(cmd.InOrStdin())
	}
	file, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open system: %w", err)
	}
	defer func() { _ = file.Close() }()
	return ReadSystem(file)
}
