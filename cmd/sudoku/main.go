package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var mainCommand = &cobra.Command{
	Use:   "sudoku",
	Short: "Generate and solve 9x9 Sudoku puzzles",
}

func main() {
	if err := mainCommand.Execute(); err != nil {
		slog.Error("command failed", "err", err)
		os.Exit(1)
	}
}
