package match3

import (
	"fmt"
	"strings"
)

// DefaultBoardSize is the default board dimension.
const DefaultBoardSize = 9

// Board is a square grid of tiles stored in row-major order.
type Board struct {
	size  int
	cells []Tile
}

// FallMove records a tile dropping from one cell to a lower one in the same column.
type FallMove struct {
	From Coord `json:"from"`
	To   Coord `json:"to"`
}

// Spawn records a freshly drawn tile placed into an empty cell.
type Spawn struct {
	Row  int  `json:"row"`
	Col  int  `json:"col"`
	Tile Tile `json:"tile"`
}

// RefillResult describes everything Refill changed, in application order.
type RefillResult struct {
	Falls  []FallMove `json:"falls"`
	Spawns []Spawn    `json:"spawns"`
}

// NewBoard creates an empty size x size board.
func NewBoard(size int) *Board {
	return &Board{
		size:  size,
		cells: make([]Tile, size*size),
	}
}

// BoardFromGrid builds a board from a square, fully populated grid.
func BoardFromGrid(grid [][]Tile) (*Board, error) {
	size := len(grid)
	if size == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrCorruptSnapshot)
	}
	b := NewBoard(size)
	for r, row := range grid {
		if len(row) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrCorruptSnapshot, r, len(row), size)
		}
		for c, t := range row {
			if t == TileEmpty || t > TilePurple {
				return nil, fmt.Errorf("%w: invalid tile at %v", ErrCorruptSnapshot, At(r, c))
			}
			b.set(r, c, t)
		}
	}
	return b, nil
}

// Size returns the board dimension.
func (b *Board) Size() int {
	return b.size
}

// InBounds returns true if (row, col) lies on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

// At returns the tile at (row, col). Returns TileEmpty out of bounds.
func (b *Board) At(row, col int) Tile {
	if !b.InBounds(row, col) {
		return TileEmpty
	}
	return b.cells[row*b.size+col]
}

func (b *Board) set(row, col int, t Tile) {
	b.cells[row*b.size+col] = t
}

// Initialize fills every cell so that no run of three exists anywhere.
// Each cell is drawn in row-major order and redrawn while it would complete
// a run with the two cells to its left or the two cells above it.
// The source must draw from at least three distinct tiles.
func (b *Board) Initialize(src TileSource) {
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			for {
				b.set(r, c, src.Draw())
				if !b.hasInitialMatch(r, c) {
					break
				}
			}
		}
	}
}

// hasInitialMatch checks the two cells to the left and the two cells above.
func (b *Board) hasInitialMatch(r, c int) bool {
	t := b.At(r, c)
	if c >= 2 && b.At(r, c-1) == t && b.At(r, c-2) == t {
		return true
	}
	if r >= 2 && b.At(r-1, c) == t && b.At(r-2, c) == t {
		return true
	}
	return false
}

// Swap exchanges two cells. Coordinates are not checked.
func (b *Board) Swap(r1, c1, r2, c2 int) {
	i, j := r1*b.size+c1, r2*b.size+c2
	b.cells[i], b.cells[j] = b.cells[j], b.cells[i]
}

// Remove empties every listed cell. Removing an empty cell is a no-op.
func (b *Board) Remove(coords ...Coord) {
	for _, c := range coords {
		if b.InBounds(c.Row, c.Col) {
			b.set(c.Row, c.Col, TileEmpty)
		}
	}
}

// Refill compacts each column downward and spawns new tiles into the
// cells left empty at the top. Spawned tiles may form runs immediately.
func (b *Board) Refill(src TileSource) RefillResult {
	var result RefillResult

	// Gravity: scan each column bottom-up, dropping tiles into the lowest free slot
	for c := 0; c < b.size; c++ {
		write := b.size - 1
		for r := b.size - 1; r >= 0; r-- {
			t := b.At(r, c)
			if t == TileEmpty {
				continue
			}
			if r != write {
				b.set(write, c, t)
				b.set(r, c, TileEmpty)
				result.Falls = append(result.Falls, FallMove{From: At(r, c), To: At(write, c)})
			}
			write--
		}
	}

	// Spawn into whatever is still empty
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if b.At(r, c) != TileEmpty {
				continue
			}
			t := src.Draw()
			b.set(r, c, t)
			result.Spawns = append(result.Spawns, Spawn{Row: r, Col: c, Tile: t})
		}
	}

	return result
}

// IsFull returns true if no cell is empty.
func (b *Board) IsFull() bool {
	for _, t := range b.cells {
		if t == TileEmpty {
			return false
		}
	}
	return true
}

// Grid returns a copy of the cells as rows.
func (b *Board) Grid() [][]Tile {
	grid := make([][]Tile, b.size)
	for r := range grid {
		grid[r] = make([]Tile, b.size)
		copy(grid[r], b.cells[r*b.size:(r+1)*b.size])
	}
	return grid
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Tile, len(b.cells))
	copy(cells, b.cells)
	return &Board{size: b.size, cells: cells}
}

// Equal returns true if both boards have the same size and contents.
func (b *Board) Equal(other *Board) bool {
	if b.size != other.size {
		return false
	}
	for i, t := range b.cells {
		if t != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the board as one line of tile characters per row.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.size; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < b.size; c++ {
			sb.WriteByte(b.At(r, c).Char())
		}
	}
	return sb.String()
}
