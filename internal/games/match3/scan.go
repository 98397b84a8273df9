package match3

// MinRun is the shortest run of identical tiles that clears.
const MinRun = 3

// Scan returns every cell that belongs to a horizontal or vertical run of
// at least MinRun identical tiles. Empty cells never match. The board is
// not modified.
func Scan(b *Board) MatchSet {
	set := make(MatchSet)
	n := b.Size()

	line := make([]Coord, n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			line[c] = At(r, c)
		}
		markRuns(b, line, set)
	}
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			line[r] = At(r, c)
		}
		markRuns(b, line, set)
	}

	return set
}

// markRuns adds every run of MinRun or more in line to set.
// The loop runs one past the end so the run touching the boundary is flushed.
func markRuns(b *Board, line []Coord, set MatchSet) {
	start := 0
	for i := 1; i <= len(line); i++ {
		if i < len(line) && b.At(line[i].Row, line[i].Col) == b.At(line[start].Row, line[start].Col) {
			continue
		}
		if i-start >= MinRun && b.At(line[start].Row, line[start].Col) != TileEmpty {
			for _, c := range line[start:i] {
				set.add(c)
			}
		}
		start = i
	}
}
