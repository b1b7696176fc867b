package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudokugen/internal/board"
	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/generator"
	"svw.info/sudokugen/internal/render"
	"svw.info/sudokugen/internal/solver"
)

var (
	generateVariant  string
	generateHints    int
	generateSeed     int64
	generateSolution bool
	generateNoColor  bool
)

var commandGenerate = &cobra.Command{
	Use:   "generate",
	Short: "Generate a random solvable puzzle",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		variant, err := domain.ParseVariant(generateVariant)
		if err != nil {
			return err
		}
		seed := generateSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g := generator.NewRandomGenerator(solver.NewBacktrackingSolver())
		p, st, err := g.Generate(cmd.Context(), seed, generateHints, variant)
		if err != nil {
			return err
		}
		puzzle, err := board.FromValues(p.Values, variant)
		if err != nil {
			return err
		}
		fmt.Println(render.Text(puzzle, !generateNoColor))
		fmt.Printf("variant=%s hints=%d seed=%d nodes=%d dur=%v\n",
			variant, generateHints, seed, st.Nodes, st.Duration.Round(time.Millisecond))
		if generateSolution {
			solved, _, err := solver.NewBacktrackingSolver().Solve(cmd.Context(), puzzle)
			if err != nil {
				return err
			}
			fmt.Println(render.Text(solved, !generateNoColor))
		}
		return nil
	},
}

func init() {
	commandGenerate.Flags().StringVar(&generateVariant, "variant", "standard", "standard|diagonal")
	commandGenerate.Flags().IntVar(&generateHints, "hints", 32, "number of pre-filled cells (0-81)")
	commandGenerate.Flags().Int64Var(&generateSeed, "seed", 0, "random seed (0 = time-based)")
	commandGenerate.Flags().BoolVar(&generateSolution, "solution", false, "also print the solution")
	commandGenerate.Flags().BoolVar(&generateNoColor, "no-color", false, "disable colored givens")
	mainCommand.AddCommand(commandGenerate)
}
