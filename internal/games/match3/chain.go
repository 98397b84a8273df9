package match3

import "fmt"

// ChainStep is one round of the resolve loop: what matched, then how the
// board refilled. The ordered steps of a move are its full replay log.
type ChainStep struct {
	Matched MatchSet     `json:"matched"`
	Refill  RefillResult `json:"refill"`
}

// Resolution is the outcome of resolving one swap.
type Resolution struct {
	Steps []ChainStep
	Combo int // Number of resolve rounds; 0 when the swap matched nothing
}

// Matched returns true if the swap produced at least one step.
func (r Resolution) Matched() bool {
	return len(r.Steps) > 0
}

// Cleared returns the total number of tiles cleared across all steps.
func (r Resolution) Cleared() int {
	total := 0
	for _, step := range r.Steps {
		total += step.Matched.Len()
	}
	return total
}

// Resolver runs the scan, remove, refill loop for a swap.
type Resolver struct {
	Source TileSource

	// MaxSteps caps the number of rounds. Zero means unlimited, in which
	// case termination relies on the source eventually producing a
	// stable board.
	MaxSteps int
}

// ResolveSwap resolves a swap between from and to that the caller has
// already applied to b. If nothing matches, the swap is undone and an empty
// Resolution is returned. Otherwise rounds repeat until the board is stable.
// Scoring is left to the caller.
func (rv Resolver) ResolveSwap(b *Board, from, to Coord) (Resolution, error) {
	matched := Scan(b)
	if matched.Len() == 0 {
		b.Swap(from.Row, from.Col, to.Row, to.Col)
		return Resolution{}, nil
	}
	return rv.resolve(b, matched)
}

func (rv Resolver) resolve(b *Board, matched MatchSet) (Resolution, error) {
	var res Resolution
	for matched.Len() > 0 {
		if rv.MaxSteps > 0 && res.Combo >= rv.MaxSteps {
			return res, fmt.Errorf("%w: still matching after %d steps", ErrChainLimit, res.Combo)
		}

		b.Remove(matched.Sorted()...)
		refill := b.Refill(rv.Source)

		res.Steps = append(res.Steps, ChainStep{Matched: matched, Refill: refill})
		res.Combo++

		matched = Scan(b)
	}
	return res, nil
}
