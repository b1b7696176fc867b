package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudokugen/internal/board"
	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/render"
	"svw.info/sudokugen/internal/solver"
)

var (
	solveVariant   string
	solveRecursive bool
	solveNoColor   bool
)

var commandSolve = &cobra.Command{
	Use:   "solve <81 cells>",
	Short: "Solve a puzzle given as an 81-character string ('.' or '0' for empty)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		variant, err := domain.ParseVariant(solveVariant)
		if err != nil {
			return err
		}
		b, err := board.FromString(args[0], variant)
		if err != nil {
			return err
		}
		s := solver.NewBacktrackingSolver()
		if solveRecursive {
			s = solver.NewRecursiveSolver()
		}
		solved, st, err := s.Solve(cmd.Context(), b)
		if err != nil {
			return err
		}
		fmt.Println(render.Text(solved, !solveNoColor))
		fmt.Printf("nodes=%d dur=%v\n", st.Nodes, st.Duration.Round(time.Millisecond))
		return nil
	},
}

func init() {
	commandSolve.Flags().StringVar(&solveVariant, "variant", "standard", "standard|diagonal")
	commandSolve.Flags().BoolVar(&solveRecursive, "recursive", false, "use the recursive strategy")
	commandSolve.Flags().BoolVar(&solveNoColor, "no-color", false, "disable colored givens")
	mainCommand.AddCommand(commandSolve)
}
