package model

import "strings"

// CollisionResult is the set of reasons a proposed placement is illegal.
// The zero value, CollisionNone, means the placement is legal.
type CollisionResult uint8

const (
	CollisionNone  CollisionResult = 0
	CollisionWall  CollisionResult = 1 << 0 // column outside [0, Cols)
	CollisionFloor CollisionResult = 1 << 1 // row at or below Rows
	CollisionMino  CollisionResult = 1 << 2 // overlaps a locked cell
	// CollisionCeiling marks a row above the top of the buffer (row < 0)
	CollisionCeiling CollisionResult = 1 << 3
)

var collisionNames = []struct {
	flag CollisionResult
	name string
}{
	{CollisionWall, "WALL"},
	{CollisionFloor, "FLOOR"},
	{CollisionMino, "MINO"},
	{CollisionCeiling, "CEILING"},
}

// Union returns every flag set in either r or o
func (r CollisionResult) Union(o CollisionResult) CollisionResult {
	return r | o
}

// Has returns true if every flag in flag is set in r
func (r CollisionResult) Has(flag CollisionResult) bool {
	return flag != CollisionNone && r&flag == flag
}

// IsNone returns true when no flag is set, i.e. the placement is legal
func (r CollisionResult) IsNone() bool {
	return r == CollisionNone
}

// Flags returns the names of the set flags in a stable order
func (r CollisionResult) Flags() []string {
	flags := []string{}
	for _, c := range collisionNames {
		if r.Has(c.flag) {
			flags = append(flags, c.name)
		}
	}
	return flags
}

// String renders the result as "NONE" or pipe-separated flag names, e.g. "WALL|MINO"
func (r CollisionResult) String() string {
	if r.IsNone() {
		return "NONE"
	}
	return strings.Join(r.Flags(), "|")
}
