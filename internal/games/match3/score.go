package match3

import (
	"sort"
	"strings"
)

// Scoring constants used when no configuration overrides them.
const (
	DefaultPieceScore  = 5
	DefaultComboBonus  = 10
	DefaultProfileName = "normal"
)

// Status is the derived state of a game.
type Status int

const (
	StatusPlaying Status = iota + 1
	StatusClear
	StatusOver
)

// String returns the lowercase status name.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusClear:
		return "clear"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

// MarshalText encodes the status as its name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ParseStatus is the inverse of String.
func ParseStatus(s string) (Status, bool) {
	switch s {
	case "playing":
		return StatusPlaying, true
	case "clear":
		return StatusClear, true
	case "over":
		return StatusOver, true
	default:
		return 0, false
	}
}

// Terminal returns true once the game has been cleared or lost.
func (s Status) Terminal() bool {
	return s == StatusClear || s == StatusOver
}

// Profile is a named difficulty: the score to reach and the moves allowed.
type Profile struct {
	Name          string
	TargetScore   int
	StartingMoves int
}

// Profiles defines the built-in difficulty table.
var Profiles = []Profile{
	{Name: "tutorial", TargetScore: 500, StartingMoves: 99},
	{Name: "easy", TargetScore: 1000, StartingMoves: 30},
	{Name: "normal", TargetScore: 1500, StartingMoves: 20},
	{Name: "hard", TargetScore: 2000, StartingMoves: 15},
}

// ProfileTable maps profile names to profiles.
type ProfileTable map[string]Profile

// DefaultProfiles returns the built-in table keyed by name.
func DefaultProfiles() ProfileTable {
	table := make(ProfileTable, len(Profiles))
	for _, p := range Profiles {
		table[p.Name] = p
	}
	return table
}

// Lookup returns the named profile. Unknown or empty names fall back to
// the "normal" profile.
func (t ProfileTable) Lookup(name string) Profile {
	if p, ok := t[strings.ToLower(strings.TrimSpace(name))]; ok {
		return p
	}
	if p, ok := t[DefaultProfileName]; ok {
		return p
	}
	return Profile{Name: DefaultProfileName, TargetScore: 1500, StartingMoves: 20}
}

// List returns all profiles ordered by target score.
func (t ProfileTable) List() []Profile {
	list := make([]Profile, 0, len(t))
	for _, p := range t {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].TargetScore != list[j].TargetScore {
			return list[i].TargetScore < list[j].TargetScore
		}
		return list[i].Name < list[j].Name
	})
	return list
}

// Scoring holds the point values for cleared tiles and chains.
type Scoring struct {
	PieceScore int
	ComboBonus int
}

// DefaultScoring returns 5 points per tile and 10 per chain round.
func DefaultScoring() Scoring {
	return Scoring{PieceScore: DefaultPieceScore, ComboBonus: DefaultComboBonus}
}

// ScoreModel tracks score and remaining moves for one game.
type ScoreModel struct {
	Score       int
	MovesLeft   int
	TargetScore int

	scoring Scoring
}

// NewScoreModel creates a fresh model for the given profile.
func NewScoreModel(p Profile, s Scoring) *ScoreModel {
	return &ScoreModel{
		MovesLeft:   p.StartingMoves,
		TargetScore: p.TargetScore,
		scoring:     s,
	}
}

// AddForCleared adds points for n cleared tiles.
func (m *ScoreModel) AddForCleared(n int) {
	m.Score += n * m.scoring.PieceScore
}

// AddComboBonus adds the chain bonus for k rounds. Callers only use it
// when a move chained more than once.
func (m *ScoreModel) AddComboBonus(k int) {
	m.Score += k * m.scoring.ComboBonus
}

// ConsumeMove uses one move. MovesLeft never drops below zero.
func (m *ScoreModel) ConsumeMove() {
	if m.MovesLeft > 0 {
		m.MovesLeft--
	}
}

// Apply scores a resolved move: tiles per step, then one combo bonus when
// the move chained, then one move consumed. An unmatched resolution
// changes nothing.
func (m *ScoreModel) Apply(res Resolution) {
	if !res.Matched() {
		return
	}
	for _, step := range res.Steps {
		m.AddForCleared(step.Matched.Len())
	}
	if res.Combo > 1 {
		m.AddComboBonus(res.Combo)
	}
	m.ConsumeMove()
}

// Status derives the game status. Reaching the target wins even when the
// last move was just spent.
func (m *ScoreModel) Status() Status {
	if m.Score >= m.TargetScore {
		return StatusClear
	}
	if m.MovesLeft <= 0 {
		return StatusOver
	}
	return StatusPlaying
}
