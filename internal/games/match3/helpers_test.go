package match3

import (
	"strings"
	"testing"
)

// boardFromRows builds a board from rows of tile letters (R, B, G, Y, P).
func boardFromRows(t *testing.T, rows ...string) *Board {
	t.Helper()
	grid, err := DecodeGrid(strings.Join(rows, "/"))
	if err != nil {
		t.Fatalf("DecodeGrid failed: %v", err)
	}
	b, err := BoardFromGrid(grid)
	if err != nil {
		t.Fatalf("BoardFromGrid failed: %v", err)
	}
	return b
}

// patternGrid returns a size x size grid with no runs: each row is the
// palette shifted two places from the row above.
func patternGrid(size int) [][]Tile {
	palette := DefaultPalette()
	grid := make([][]Tile, size)
	for r := range grid {
		grid[r] = make([]Tile, size)
		for c := range grid[r] {
			grid[r][c] = palette[(r*2+c)%len(palette)]
		}
	}
	return grid
}

// base5 is patternGrid(5) spelled out.
var base5 = []string{
	"RBGYP",
	"GYPRB",
	"PRBGY",
	"BGYPR",
	"YPRBG",
}

func withRow(rows []string, index int, row string) []string {
	out := make([]string, len(rows))
	copy(out, rows)
	out[index] = row
	return out
}
