package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Point is a cell on the playfield or a displacement between two cells.
// Rows grow downward and may be negative while a piece is in flight.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Add returns the component-wise sum of p and o
func (p Point) Add(o Point) Point {
	return Point{Row: p.Row + o.Row, Col: p.Col + o.Col}
}

// Sub returns the component-wise difference p - o
func (p Point) Sub(o Point) Point {
	return Point{Row: p.Row - o.Row, Col: p.Col - o.Col}
}

// String formats the point as "row,col"
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// ParsePoint parses a "row,col" pair
func ParsePoint(s string) (Point, error) {
	rowStr, colStr, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return Point{}, fmt.Errorf("%w: %q", ErrInvalidPoint, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowStr))
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q", ErrInvalidPoint, s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colStr))
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q", ErrInvalidPoint, s)
	}
	return Point{Row: row, Col: col}, nil
}
