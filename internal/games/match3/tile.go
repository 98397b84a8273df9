// Package match3 implements the match-three puzzle engine: board, run
// scanner, gravity and refill, chain resolution, scoring and the move
// controller that drives them against external session storage.
package match3

import (
	"math/rand"
	"strings"
)

// Tile is a single colored piece occupying one board cell.
// The zero value is TileEmpty.
type Tile uint8

const (
	TileEmpty Tile = iota
	TileRed
	TileBlue
	TileGreen
	TileYellow
	TilePurple
)

// String returns the lowercase color name.
func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileRed:
		return "red"
	case TileBlue:
		return "blue"
	case TileGreen:
		return "green"
	case TileYellow:
		return "yellow"
	case TilePurple:
		return "purple"
	default:
		return "unknown"
	}
}

// Char returns a single character representation used in persisted grids.
func (t Tile) Char() byte {
	switch t {
	case TileEmpty:
		return '.'
	case TileRed:
		return 'R'
	case TileBlue:
		return 'B'
	case TileGreen:
		return 'G'
	case TileYellow:
		return 'Y'
	case TilePurple:
		return 'P'
	default:
		return '?'
	}
}

// MarshalText encodes the tile as its color name.
func (t Tile) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// ParseTile converts a color name or its single-letter code to a Tile.
// Returns TileEmpty and false if the string is not recognized.
func ParseTile(s string) (Tile, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red", "r":
		return TileRed, true
	case "blue", "b":
		return TileBlue, true
	case "green", "g":
		return TileGreen, true
	case "yellow", "y":
		return TileYellow, true
	case "purple", "p":
		return TilePurple, true
	case "empty", ".":
		return TileEmpty, true
	default:
		return TileEmpty, false
	}
}

// DefaultPalette returns the five playable colors.
func DefaultPalette() []Tile {
	return []Tile{TileRed, TileBlue, TileGreen, TileYellow, TilePurple}
}

// TileSource supplies tiles drawn from a fixed palette.
type TileSource interface {
	Draw() Tile
}

// RandSource draws uniformly from a palette using a seeded RNG.
// Not safe for concurrent use.
type RandSource struct {
	rng     *rand.Rand
	palette []Tile
}

// NewRandSource creates a source seeded with seed. An empty palette
// falls back to DefaultPalette.
func NewRandSource(seed int64, palette []Tile) *RandSource {
	if len(palette) == 0 {
		palette = DefaultPalette()
	}
	return &RandSource{
		rng:     rand.New(rand.NewSource(seed)),
		palette: palette,
	}
}

// Draw returns a random palette tile.
func (s *RandSource) Draw() Tile {
	return s.palette[s.rng.Intn(len(s.palette))]
}

// SequenceSource replays a fixed list of tiles, wrapping around at the end.
// Used to make boards and refills deterministic.
type SequenceSource struct {
	tiles []Tile
	pos   int
}

// NewSequenceSource creates a source cycling through tiles.
func NewSequenceSource(tiles ...Tile) *SequenceSource {
	if len(tiles) == 0 {
		tiles = DefaultPalette()
	}
	return &SequenceSource{tiles: tiles}
}

// Draw returns the next tile in the sequence.
func (s *SequenceSource) Draw() Tile {
	t := s.tiles[s.pos%len(s.tiles)]
	s.pos++
	return t
}
