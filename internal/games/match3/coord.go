package match3

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Coord addresses a board cell. Row increases downward.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// At is a convenience constructor for Coord.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Adjacent reports whether other is an orthogonal neighbour of c.
func (c Coord) Adjacent(other Coord) bool {
	dr := c.Row - other.Row
	dc := c.Col - other.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// MatchSet is the set of cells taking part in at least one run.
// A set returned by Scan is not modified afterwards.
type MatchSet map[Coord]struct{}

func (m MatchSet) add(c Coord) {
	m[c] = struct{}{}
}

// Contains reports whether c is in the set.
func (m MatchSet) Contains(c Coord) bool {
	_, ok := m[c]
	return ok
}

// Len returns the number of matched cells.
func (m MatchSet) Len() int {
	return len(m)
}

// Sorted returns the coordinates in row-major order.
func (m MatchSet) Sorted() []Coord {
	coords := make([]Coord, 0, len(m))
	for c := range m {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Row != coords[j].Row {
			return coords[i].Row < coords[j].Row
		}
		return coords[i].Col < coords[j].Col
	})
	return coords
}

// MarshalJSON encodes the set as a row-major coordinate list.
func (m MatchSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Sorted())
}
