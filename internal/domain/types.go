package domain

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint describes a single suggested placement for the UI.
type Hint struct {
	Message string      `json:"message,omitempty"`
	Cells   []CellCoord `json:"cells,omitempty"`
	Value   uint8       `json:"value,omitempty"`
}

// Puzzle is a persisted Sudoku with metadata.
type Puzzle struct {
	ID        string      `json:"id,omitempty"`
	Seed      int64       `json:"seed,omitempty"`
	Variant   Variant     `json:"variant"`
	Hints     int         `json:"hints,omitempty"`
	Values    [9][9]uint8 `json:"board"`
	Given     [9][9]bool  `json:"given,omitempty"`
	CreatedAt int64       `json:"createdAt,omitempty"`
	// Optional user metadata
	Name string `json:"name,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string  `json:"id"`
	Name      string  `json:"name,omitempty"`
	Variant   Variant `json:"variant"`
	Hints     int     `json:"hints,omitempty"`
	CreatedAt int64   `json:"createdAt"`
}
