package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
)

type PlayfieldSuite struct {
	suite.Suite
	pf *Playfield
}

func TestPlayfieldSuite(t *testing.T) {
	suite.Run(t, new(PlayfieldSuite))
}

func (s *PlayfieldSuite) SetupTest() {
	s.pf = NewPlayfield()
}

// Storage tests

func (s *PlayfieldSuite) TestNewPlayfieldIsEmpty() {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			s.Equal(TetriminoNone, s.pf.Get(Point{Row: row, Col: col}))
		}
	}
	s.True(s.pf.IsEmpty())
	s.Equal(0, s.pf.OccupiedCount())
}

func (s *PlayfieldSuite) TestDimensions() {
	s.Equal(40, Rows)
	s.Equal(10, Cols)
	s.Equal(20, BufferRows)
}

func (s *PlayfieldSuite) TestSetThenGetByPoint() {
	p := Point{Row: 3, Col: 7}
	s.pf.Set(p, TetriminoO)

	s.Equal(TetriminoO, s.pf.Get(p))
	s.Equal(1, s.pf.OccupiedCount())
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			if row == 3 && col == 7 {
				continue
			}
			s.Equal(TetriminoNone, s.pf.At(row, col))
		}
	}
}

func (s *PlayfieldSuite) TestAddressingModesAreEquivalent() {
	s.pf.SetAt(3, 7, TetriminoO)
	s.Equal(TetriminoO, s.pf.Get(Point{Row: 3, Col: 7}))

	s.pf.Set(Point{Row: 39, Col: 0}, TetriminoZ)
	s.Equal(TetriminoZ, s.pf.At(39, 0))
	s.Equal(TetriminoZ, s.pf.Row(39)[0])
}

func (s *PlayfieldSuite) TestRowReturnsCopy() {
	row := s.pf.Row(10)
	row[4] = TetriminoT

	s.Equal(TetriminoNone, s.pf.At(10, 4))
}

func (s *PlayfieldSuite) TestSetRow() {
	var row [Cols]TetriminoType
	for col := range row {
		row[col] = TetriminoI
	}
	s.pf.SetRow(39, row)

	s.Equal(row, s.pf.Row(39))
	s.Equal(Cols, s.pf.OccupiedCount())
	s.Equal("IIIIIIIIII", s.pf.RowString(39))
}

func (s *PlayfieldSuite) TestOutOfRangeAccessPanics() {
	s.Panics(func() { s.pf.Get(Point{Row: -1, Col: 0}) })
	s.Panics(func() { s.pf.Get(Point{Row: Rows, Col: 0}) })
	s.Panics(func() { s.pf.At(0, Cols) })
	s.Panics(func() { s.pf.SetAt(0, -1, TetriminoO) })
	s.Panics(func() { s.pf.Row(Rows) })
	s.Panics(func() { s.pf.SetRow(-1, [Cols]TetriminoType{}) })
}

func (s *PlayfieldSuite) TestReset() {
	s.pf.SetAt(20, 5, TetriminoL)
	s.pf.Reset()

	s.True(s.pf.IsEmpty())
}

// Row-level accessors are enough for an external line-clear routine
func (s *PlayfieldSuite) TestRowAccessorsSupportExternalCompaction() {
	var full [Cols]TetriminoType
	for col := range full {
		full[col] = TetriminoJ
	}
	s.pf.SetAt(37, 2, TetriminoT)
	s.pf.SetRow(38, full)
	s.pf.SetAt(39, 0, TetriminoO)

	// Drop everything above row 38 by one row
	for row := 38; row > 0; row-- {
		s.pf.SetRow(row, s.pf.Row(row-1))
	}
	s.pf.SetRow(0, [Cols]TetriminoType{})

	s.Equal(TetriminoT, s.pf.At(38, 2))
	s.Equal(TetriminoO, s.pf.At(39, 0))
	s.Equal(2, s.pf.OccupiedCount())
}

// Collision tests

func (s *PlayfieldSuite) TestCollisionNoneInsideEmptyGrid() {
	result := s.pf.TestCollision(
		Point{Row: 0, Col: 0},
		Point{Row: 19, Col: 4},
		Point{Row: 39, Col: 9},
	)
	s.Equal(CollisionNone, result)
	s.True(result.IsNone())
}

func (s *PlayfieldSuite) TestCollisionWall() {
	s.True(s.pf.TestCollision(Point{Row: 10, Col: -1}).Has(CollisionWall))
	s.True(s.pf.TestCollision(Point{Row: 10, Col: Cols}).Has(CollisionWall))
	s.Equal(CollisionWall, s.pf.TestCollision(Point{Row: 10, Col: 4}, Point{Row: 10, Col: -1}))
}

func (s *PlayfieldSuite) TestCollisionFloor() {
	result := s.pf.TestCollision(Point{Row: Rows, Col: 4})
	s.Equal(CollisionFloor, result)
}

func (s *PlayfieldSuite) TestCollisionMino() {
	s.pf.Lock([]Point{{Row: 39, Col: 4}}, TetriminoS)

	result := s.pf.TestCollision(Point{Row: 38, Col: 4}, Point{Row: 39, Col: 4})
	s.Equal(CollisionMino, result)
}

func (s *PlayfieldSuite) TestCollisionCeiling() {
	result := s.pf.TestCollision(Point{Row: -1, Col: 4})
	s.Equal(CollisionCeiling, result)
}

func (s *PlayfieldSuite) TestCollisionReportsEveryViolation() {
	s.pf.SetAt(30, 0, TetriminoI)

	result := s.pf.TestCollision(Point{Row: 30, Col: -1}, Point{Row: 30, Col: 0})
	s.True(result.Has(CollisionWall))
	s.True(result.Has(CollisionMino))
	s.False(result.Has(CollisionFloor))

	result = s.pf.TestCollision(
		Point{Row: Rows, Col: Cols},
		Point{Row: 30, Col: 0},
		Point{Row: -3, Col: 2},
	)
	s.Equal(CollisionWall|CollisionFloor|CollisionMino|CollisionCeiling, result)
}

func (s *PlayfieldSuite) TestCollisionOutsideGridNeverReportsMino() {
	s.pf.SetAt(39, 9, TetriminoO)

	result := s.pf.TestCollision(Point{Row: 39, Col: 10}, Point{Row: 40, Col: 9})
	s.False(result.Has(CollisionMino))
}

func (s *PlayfieldSuite) TestCollisionIsIdempotent() {
	s.pf.SetAt(25, 3, TetriminoL)
	cells := []Point{{Row: 25, Col: 3}, {Row: 25, Col: -1}, {Row: 24, Col: 3}}
	before, _ := json.Marshal(s.pf)

	first := s.pf.TestCollision(cells...)
	second := s.pf.TestCollision(cells...)

	after, _ := json.Marshal(s.pf)
	s.Equal(first, second)
	s.Equal(before, after)
}

// Lock tests

func (s *PlayfieldSuite) TestLockWritesEveryCell() {
	cells := []Point{{Row: 38, Col: 4}, {Row: 38, Col: 5}, {Row: 39, Col: 4}, {Row: 39, Col: 5}}
	s.Require().True(s.pf.TestCollision(cells...).IsNone())

	s.pf.Lock(cells, TetriminoO)

	for _, p := range cells {
		s.Equal(TetriminoO, s.pf.Get(p))
	}
	s.Equal(4, s.pf.OccupiedCount())
	s.Equal(CollisionMino, s.pf.TestCollision(cells...))
}

func (s *PlayfieldSuite) TestLockWithNoneClearsCells() {
	cells := []Point{{Row: 39, Col: 0}, {Row: 39, Col: 1}}
	s.pf.Lock(cells, TetriminoZ)
	s.pf.Lock(cells, TetriminoNone)

	s.True(s.pf.IsEmpty())
}

// Encoding tests

func (s *PlayfieldSuite) TestJSONRoundTripPreservesCells() {
	s.pf.SetAt(0, 0, TetriminoI)
	s.pf.SetAt(39, 9, TetriminoZ)

	data, err := json.Marshal(s.pf)
	s.Require().NoError(err)

	decoded := NewPlayfield()
	s.Require().NoError(json.Unmarshal(data, decoded))
	s.Equal(*s.pf, *decoded)
}

func (s *PlayfieldSuite) TestUnmarshalRejectsMalformedGrid() {
	decoded := NewPlayfield()

	err := json.Unmarshal([]byte(`{"rows": ["..........", ".........."]}`), decoded)
	s.ErrorIs(err, ErrInvalidPlayfield)

	rows := make([]string, Rows)
	for i := range rows {
		rows[i] = ".........."
	}
	rows[5] = "....X....."
	data, _ := json.Marshal(map[string][]string{"rows": rows})
	err = json.Unmarshal(data, decoded)
	s.ErrorIs(err, ErrInvalidPlayfield)
	s.ErrorIs(err, ErrInvalidTetriminoType)

	rows[5] = "..."
	data, _ = json.Marshal(map[string][]string{"rows": rows})
	err = json.Unmarshal(data, decoded)
	s.ErrorIs(err, ErrInvalidPlayfield)
}

func (s *PlayfieldSuite) TestMarshalRejectsOutOfRangeCell() {
	s.pf.SetAt(39, 0, TetriminoType(9))

	_, err := json.Marshal(s.pf)
	s.ErrorIs(err, ErrInvalidPlayfield)

	s.pf.SetAt(39, 0, TetriminoT)
	_, err = json.Marshal(s.pf)
	s.NoError(err)
}
