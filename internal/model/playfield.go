package model

import (
	"encoding/json"
	"fmt"
)

// Playfield dimensions. Rows 0..BufferRows-1 sit above the skyline and are
// used for spawning; the visible area is the bottom VisibleRows rows.
const (
	Rows        = 40
	Cols        = 10
	VisibleRows = 20
	BufferRows  = Rows - VisibleRows
)

// Playfield is the grid in which tetriminos fall and lock.
// Each cell holds the type of the piece locked into it, or TetriminoNone.
type Playfield struct {
	grid [Rows][Cols]TetriminoType // Row-major: grid[row][col], row 0 at the top
}

// NewPlayfield creates a playfield with every cell empty
func NewPlayfield() *Playfield {
	return &Playfield{}
}

// Reset empties every cell
func (pf *Playfield) Reset() {
	pf.grid = [Rows][Cols]TetriminoType{}
}

// InBounds returns true if p addresses a cell of the grid
func InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < Rows && p.Col >= 0 && p.Col < Cols
}

// cell is the single accessor every read and write reduces to.
// Out-of-range access is a programming error and panics.
func (pf *Playfield) cell(row, col int) *TetriminoType {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		panic(fmt.Sprintf("playfield: cell (%d,%d) out of range [0,%d)x[0,%d)", row, col, Rows, Cols))
	}
	return &pf.grid[row][col]
}

// Get returns the type locked into the cell at p
func (pf *Playfield) Get(p Point) TetriminoType {
	return *pf.cell(p.Row, p.Col)
}

// Set writes t into the cell at p
func (pf *Playfield) Set(p Point, t TetriminoType) {
	*pf.cell(p.Row, p.Col) = t
}

// At returns the type locked into the cell at (row, col)
func (pf *Playfield) At(row, col int) TetriminoType {
	return *pf.cell(row, col)
}

// SetAt writes t into the cell at (row, col)
func (pf *Playfield) SetAt(row, col int, t TetriminoType) {
	*pf.cell(row, col) = t
}

// Row returns a copy of the given row
func (pf *Playfield) Row(row int) [Cols]TetriminoType {
	pf.cell(row, 0)
	return pf.grid[row]
}

// SetRow overwrites the given row
func (pf *Playfield) SetRow(row int, cells [Cols]TetriminoType) {
	pf.cell(row, 0)
	pf.grid[row] = cells
}

// TestCollision reports every constraint the given cells would violate if a
// piece occupied them. It returns CollisionNone when the placement is legal.
func (pf *Playfield) TestCollision(cells ...Point) CollisionResult {
	result := CollisionNone
	for _, p := range cells {
		result = result.Union(pf.testCell(p))
	}
	return result
}

func (pf *Playfield) testCell(p Point) CollisionResult {
	result := CollisionNone

	if p.Col < 0 || p.Col >= Cols {
		result = result.Union(CollisionWall)
	}
	if p.Row >= Rows {
		result = result.Union(CollisionFloor)
	}
	if p.Row < 0 {
		result = result.Union(CollisionCeiling)
	}
	if InBounds(p) && pf.grid[p.Row][p.Col] != TetriminoNone {
		result = result.Union(CollisionMino)
	}

	return result
}

// Lock writes t into every given cell. It does not validate the placement;
// callers run TestCollision on the same cells first.
func (pf *Playfield) Lock(cells []Point, t TetriminoType) {
	for _, p := range cells {
		pf.Set(p, t)
	}
}

// OccupiedCount returns the number of non-empty cells
func (pf *Playfield) OccupiedCount() int {
	count := 0
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			if pf.grid[row][col] != TetriminoNone {
				count++
			}
		}
	}
	return count
}

// IsEmpty returns true if no cell is occupied
func (pf *Playfield) IsEmpty() bool {
	return pf.OccupiedCount() == 0
}

// RowString encodes a row as one letter per cell, '.' for empty
func (pf *Playfield) RowString(row int) string {
	cells := pf.Row(row)
	b := make([]byte, Cols)
	for col, t := range cells {
		b[col] = t.Letter()
	}
	return string(b)
}

type playfieldJSON struct {
	Rows []string `json:"rows"`
}

// MarshalJSON encodes the grid as one string per row, top row first
func (pf Playfield) MarshalJSON() ([]byte, error) {
	rows := make([]string, Rows)
	for row := range rows {
		for col, t := range pf.grid[row] {
			if t != TetriminoNone && !t.IsValid() {
				return nil, fmt.Errorf("%w: cell (%d,%d) holds %s", ErrInvalidPlayfield, row, col, t)
			}
		}
		rows[row] = pf.RowString(row)
	}
	return json.Marshal(playfieldJSON{Rows: rows})
}

func (pf *Playfield) UnmarshalJSON(data []byte) error {
	var raw playfieldJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.Rows) != Rows {
		return fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidPlayfield, Rows, len(raw.Rows))
	}

	var grid [Rows][Cols]TetriminoType
	for row, line := range raw.Rows {
		if len(line) != Cols {
			return fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidPlayfield, row, len(line), Cols)
		}
		for col := 0; col < Cols; col++ {
			t, err := tetriminoFromLetter(line[col])
			if err != nil {
				return fmt.Errorf("%w: row %d: %w", ErrInvalidPlayfield, row, err)
			}
			grid[row][col] = t
		}
	}

	pf.grid = grid
	return nil
}
