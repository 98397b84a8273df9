package match3

import (
	"fmt"
	"strings"
)

// Snapshot is the plain-data state of one game, the only thing that
// crosses the persistence boundary.
type Snapshot struct {
	Difficulty   string
	Size         int
	Grid         [][]Tile
	Score        int
	MovesLeft    int
	TargetScore  int
	Status       Status
	NewHighScore bool
}

// Validate checks the snapshot against the configured board size.
// Any failure wraps ErrCorruptSnapshot.
func (s Snapshot) Validate(size int) error {
	if s.Size != size || len(s.Grid) != size {
		return fmt.Errorf("%w: board is %dx%d, want %dx%d", ErrCorruptSnapshot, s.Size, len(s.Grid), size, size)
	}
	if s.Score < 0 || s.MovesLeft < 0 || s.TargetScore <= 0 {
		return fmt.Errorf("%w: score %d, moves %d, target %d", ErrCorruptSnapshot, s.Score, s.MovesLeft, s.TargetScore)
	}
	return nil
}

// EncodeGrid packs a grid into rows of tile characters separated by '/'.
func EncodeGrid(grid [][]Tile) string {
	rows := make([]string, len(grid))
	for r, row := range grid {
		buf := make([]byte, len(row))
		for c, t := range row {
			buf[c] = t.Char()
		}
		rows[r] = string(buf)
	}
	return strings.Join(rows, "/")
}

// DecodeGrid reverses EncodeGrid.
func DecodeGrid(s string) ([][]Tile, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty grid", ErrCorruptSnapshot)
	}
	rows := strings.Split(s, "/")
	grid := make([][]Tile, len(rows))
	for r, row := range rows {
		grid[r] = make([]Tile, len(row))
		for c := 0; c < len(row); c++ {
			t, ok := ParseTile(string(row[c]))
			if !ok {
				return nil, fmt.Errorf("%w: unknown tile %q at %v", ErrCorruptSnapshot, row[c], At(r, c))
			}
			grid[r][c] = t
		}
	}
	return grid, nil
}
