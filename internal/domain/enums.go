package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Variant selects the constraint rule set of a board.
type Variant int

const (
	// Standard enforces rows, columns, and 3×3 boxes.
	Standard Variant = iota
	// Diagonal additionally enforces both main diagonals.
	Diagonal
)

// ErrUnsupportedVariant indicates an unknown variant token.
var ErrUnsupportedVariant = errors.New("domain: unsupported variant")

// ParseVariant maps a token ("standard" | "diagonal") to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard":
		return Standard, nil
	case "diagonal":
		return Diagonal, nil
	}
	return Standard, fmt.Errorf("%w: %q", ErrUnsupportedVariant, s)
}

func (v Variant) String() string {
	if v == Diagonal {
		return "diagonal"
	}
	return "standard"
}

// MarshalText makes variants round-trip as their token in JSON.
func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// GroupKind names the five kinds of constraint regions.
type GroupKind uint8

const (
	GroupRow GroupKind = iota
	GroupColumn
	GroupBox
	GroupMainDiagonal
	GroupAntiDiagonal
)

// Group identifies one constraint region: a kind plus an index within
// that kind (0–8 for rows/columns/boxes, always 0 for diagonals).
type Group struct {
	Kind  GroupKind
	Index int
}

// Groups returns the constraint regions the cell (r, c) participates in,
// in row, column, box, diagonal order. Diagonal groups are only returned
// by the Diagonal variant, and only for cells that lie on them.
func (v Variant) Groups(r, c int) []Group {
	groups := []Group{
		{Kind: GroupRow, Index: r},
		{Kind: GroupColumn, Index: c},
		{Kind: GroupBox, Index: 3*(r/3) + c/3},
	}
	if v == Diagonal {
		if r == c {
			groups = append(groups, Group{Kind: GroupMainDiagonal})
		}
		if r+c == 8 {
			groups = append(groups, Group{Kind: GroupAntiDiagonal})
		}
	}
	return groups
}
