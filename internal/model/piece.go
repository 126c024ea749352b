package model

import "fmt"

// Piece is a tetrimino in flight: its shape, facing, rotation pivot and the
// four absolute cells it occupies.
type Piece struct {
	Type   TetriminoType   `json:"type"`
	Facing TetriminoFacing `json:"facing"`
	Pivot  Point           `json:"pivot"`
	Cells  [4]Point        `json:"cells"`
}

// spawnPivot is the rotation centre of every shape at spawn
var spawnPivot = Point{Row: 19, Col: 4}

// spawnCells places each shape in the two buffer rows directly above the skyline
var spawnCells = map[TetriminoType][4]Point{
	TetriminoO: {{18, 4}, {18, 5}, {19, 4}, {19, 5}},
	TetriminoI: {{19, 3}, {19, 4}, {19, 5}, {19, 6}},
	TetriminoT: {{18, 4}, {19, 3}, {19, 4}, {19, 5}},
	TetriminoL: {{18, 5}, {19, 3}, {19, 4}, {19, 5}},
	TetriminoJ: {{18, 3}, {19, 3}, {19, 4}, {19, 5}},
	TetriminoS: {{18, 4}, {18, 5}, {19, 3}, {19, 4}},
	TetriminoZ: {{18, 3}, {18, 4}, {19, 4}, {19, 5}},
}

// I pieces rotate about a point between cells; these shifts keep the four
// facings inside the same 4x4 box.
var (
	iShiftCW  = Point{Row: 0, Col: 1}
	iShiftCCW = Point{Row: 1, Col: 0}
)

// SpawnPiece returns a piece of the given type in its spawn position, facing north
func SpawnPiece(t TetriminoType) (Piece, error) {
	cells, ok := spawnCells[t]
	if !ok {
		return Piece{}, fmt.Errorf("%w: cannot spawn %s", ErrInvalidTetriminoType, t)
	}
	return Piece{
		Type:   t,
		Facing: FacingNorth,
		Pivot:  spawnPivot,
		Cells:  cells,
	}, nil
}

// CellSlice returns the occupied cells as a slice
func (p Piece) CellSlice() []Point {
	cells := make([]Point, len(p.Cells))
	copy(cells, p.Cells[:])
	return cells
}

// Translated returns the piece moved by delta
func (p Piece) Translated(delta Point) Piece {
	moved := p
	moved.Pivot = p.Pivot.Add(delta)
	for i, c := range p.Cells {
		moved.Cells[i] = c.Add(delta)
	}
	return moved
}

// RotatedCW returns the piece rotated one step clockwise about its pivot.
// An O piece is returned unchanged.
func (p Piece) RotatedCW() Piece {
	return p.rotated(p.Facing.RotateCW(), func(rel Point) Point {
		return Point{Row: rel.Col, Col: -rel.Row}
	}, iShiftCW)
}

// RotatedCCW returns the piece rotated one step counter-clockwise about its pivot
func (p Piece) RotatedCCW() Piece {
	return p.rotated(p.Facing.RotateCCW(), func(rel Point) Point {
		return Point{Row: -rel.Col, Col: rel.Row}
	}, iShiftCCW)
}

func (p Piece) rotated(facing TetriminoFacing, turn func(Point) Point, iShift Point) Piece {
	rotated := p
	rotated.Facing = facing

	switch p.Type {
	case TetriminoO:
		// Rotating an O changes nothing, facing included
		return p
	case TetriminoI:
		for i, c := range p.Cells {
			rotated.Cells[i] = turn(c.Sub(p.Pivot)).Add(p.Pivot).Add(iShift)
		}
	case TetriminoT, TetriminoL, TetriminoJ, TetriminoS, TetriminoZ:
		for i, c := range p.Cells {
			rotated.Cells[i] = turn(c.Sub(p.Pivot)).Add(p.Pivot)
		}
	case TetriminoNone:
		return p
	}

	return rotated
}
