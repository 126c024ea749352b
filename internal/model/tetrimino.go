package model

import (
	"fmt"
	"strings"
)

// TetriminoType identifies a piece shape. The zero value marks an empty cell.
type TetriminoType uint8

const (
	TetriminoNone TetriminoType = iota
	TetriminoO
	TetriminoI
	TetriminoT
	TetriminoL
	TetriminoJ
	TetriminoS
	TetriminoZ
)

// emptyCell is the letter used for TetriminoNone in the compact row encoding
const emptyCell = '.'

// invalidCell never decodes, so an out-of-range type cannot round-trip as a shape
const invalidCell = '?'

// AllTetriminoTypes returns the seven piece shapes in declaration order
func AllTetriminoTypes() []TetriminoType {
	return []TetriminoType{
		TetriminoO,
		TetriminoI,
		TetriminoT,
		TetriminoL,
		TetriminoJ,
		TetriminoS,
		TetriminoZ,
	}
}

// IsValid returns true for one of the seven piece shapes
func (t TetriminoType) IsValid() bool {
	return t >= TetriminoO && t <= TetriminoZ
}

func (t TetriminoType) String() string {
	switch t {
	case TetriminoNone:
		return "NONE"
	case TetriminoO:
		return "O"
	case TetriminoI:
		return "I"
	case TetriminoT:
		return "T"
	case TetriminoL:
		return "L"
	case TetriminoJ:
		return "J"
	case TetriminoS:
		return "S"
	case TetriminoZ:
		return "Z"
	default:
		return fmt.Sprintf("TetriminoType(%d)", uint8(t))
	}
}

// Letter returns the single-character cell encoding: '.' for an empty cell,
// '?' for a value outside the enum
func (t TetriminoType) Letter() byte {
	if t == TetriminoNone {
		return emptyCell
	}
	if !t.IsValid() {
		return invalidCell
	}
	return t.String()[0]
}

// tetriminoFromLetter is the inverse of Letter
func tetriminoFromLetter(b byte) (TetriminoType, error) {
	if b == emptyCell {
		return TetriminoNone, nil
	}
	for _, t := range AllTetriminoTypes() {
		if t.Letter() == b {
			return t, nil
		}
	}
	return TetriminoNone, fmt.Errorf("%w: %q", ErrInvalidTetriminoType, b)
}

// ParseTetriminoType parses a shape name such as "T" or "none" (case-insensitive)
func ParseTetriminoType(s string) (TetriminoType, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "NONE" {
		return TetriminoNone, nil
	}
	for _, t := range AllTetriminoTypes() {
		if t.String() == name {
			return t, nil
		}
	}
	return TetriminoNone, fmt.Errorf("%w: %q", ErrInvalidTetriminoType, s)
}

func (t TetriminoType) MarshalText() ([]byte, error) {
	if t != TetriminoNone && !t.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTetriminoType, uint8(t))
	}
	return []byte(t.String()), nil
}

func (t *TetriminoType) UnmarshalText(text []byte) error {
	parsed, err := ParseTetriminoType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// TetriminoFacing is a piece orientation. The four facings form a cycle
// NORTH -> EAST -> SOUTH -> WEST -> NORTH in the clockwise direction.
type TetriminoFacing uint8

const (
	FacingNorth TetriminoFacing = iota
	FacingEast
	FacingSouth
	FacingWest
)

const facingCount = 4

// RotateCW returns the facing one clockwise step from f
func (f TetriminoFacing) RotateCW() TetriminoFacing {
	return (f + 1) % facingCount
}

// RotateCCW returns the facing one counter-clockwise step from f
func (f TetriminoFacing) RotateCCW() TetriminoFacing {
	return (f + facingCount - 1) % facingCount
}

func (f TetriminoFacing) String() string {
	switch f {
	case FacingNorth:
		return "NORTH"
	case FacingEast:
		return "EAST"
	case FacingSouth:
		return "SOUTH"
	case FacingWest:
		return "WEST"
	default:
		return fmt.Sprintf("TetriminoFacing(%d)", uint8(f))
	}
}

// ParseTetriminoFacing parses a facing name such as "north" or "W"
func ParseTetriminoFacing(s string) (TetriminoFacing, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for f := FacingNorth; f < facingCount; f++ {
		full := f.String()
		if name == full || (len(name) == 1 && name[0] == full[0]) {
			return f, nil
		}
	}
	return FacingNorth, fmt.Errorf("%w: %q", ErrInvalidFacing, s)
}

func (f TetriminoFacing) MarshalText() ([]byte, error) {
	if f >= facingCount {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFacing, uint8(f))
	}
	return []byte(f.String()), nil
}

func (f *TetriminoFacing) UnmarshalText(text []byte) error {
	parsed, err := ParseTetriminoFacing(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
