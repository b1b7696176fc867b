// Package render draws boards for the terminal. It consumes only the
// value matrix and the given-cell set, so it stays decoupled from the
// engine's internals.
package render

import (
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"

	"svw.info/sudokugen/internal/board"
)

const (
	topLine    = "╔═══╤═══╤═══╦═══╤═══╤═══╦═══╤═══╤═══╗\n"
	lightLine  = "╟───┼───┼───╫───┼───┼───╫───┼───┼───╢\n"
	heavyLine  = "╠═══╪═══╪═══╬═══╪═══╪═══╬═══╪═══╪═══╣\n"
	bottomLine = "╚═══╧═══╧═══╩═══╧═══╧═══╩═══╧═══╧═══╝"
)

// Text renders the board with box-drawing characters. Given cells are
// colored red when colorize is true, so clues are visually distinct from
// solver- or player-written digits.
func Text(b *board.Board, colorize bool) string {
	return Matrix(b.Matrix(), b.GivenMask(), colorize)
}

// Matrix renders a raw value matrix with its given-cell mask.
func Matrix(values [9][9]uint8, given [9][9]bool, colorize bool) string {
	au := aurora.NewAurora(colorize)
	var sb strings.Builder
	sb.WriteString(topLine)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if c%3 == 0 {
				sb.WriteString("║")
			} else {
				sb.WriteString("│")
			}
			v := values[r][c]
			switch {
			case v == board.EmptyCell:
				sb.WriteString("   ")
			case given[r][c]:
				sb.WriteString(" " + au.Red(strconv.Itoa(int(v))).String() + " ")
			default:
				sb.WriteString(" " + strconv.Itoa(int(v)) + " ")
			}
		}
		sb.WriteString("║\n")
		switch {
		case r == 8:
			sb.WriteString(bottomLine)
		case (r+1)%3 == 0:
			sb.WriteString(heavyLine)
		default:
			sb.WriteString(lightLine)
		}
	}
	return sb.String()
}
