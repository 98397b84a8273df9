package match3

import "testing"

// matchSetOf returns a set with n distinct cells.
func matchSetOf(n int) MatchSet {
	set := make(MatchSet)
	for i := 0; i < n; i++ {
		set.add(At(i/DefaultBoardSize, i%DefaultBoardSize))
	}
	return set
}

func resolutionOf(sizes ...int) Resolution {
	var res Resolution
	for _, n := range sizes {
		res.Steps = append(res.Steps, ChainStep{Matched: matchSetOf(n)})
		res.Combo++
	}
	return res
}

func TestApplyScoring(t *testing.T) {
	tests := []struct {
		name      string
		steps     []int
		wantScore int
		wantMoves int
	}{
		{"no match", nil, 0, 20},
		{"single run of three", []int{3}, 15, 19},
		{"single run of five", []int{5}, 25, 19},
		{"two step chain", []int{5, 4}, 65, 19},
		{"three step chain", []int{3, 3, 3}, 75, 19},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewScoreModel(DefaultProfiles().Lookup("normal"), DefaultScoring())
			m.Apply(resolutionOf(tt.steps...))

			if m.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", m.Score, tt.wantScore)
			}
			if m.MovesLeft != tt.wantMoves {
				t.Errorf("MovesLeft = %d, want %d", m.MovesLeft, tt.wantMoves)
			}
		})
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name   string
		score  int
		moves  int
		target int
		want   Status
	}{
		{"playing", 100, 5, 1500, StatusPlaying},
		{"clear", 1500, 5, 1500, StatusClear},
		{"over", 1499, 0, 1500, StatusOver},
		{"target reached on last move", 1500, 0, 1500, StatusClear},
		{"target passed on last move", 1600, 0, 1500, StatusClear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &ScoreModel{Score: tt.score, MovesLeft: tt.moves, TargetScore: tt.target}
			if got := m.Status(); got != tt.want {
				t.Errorf("Status() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLastMoveReachingTargetClears(t *testing.T) {
	m := NewScoreModel(Profile{Name: "custom", TargetScore: 20, StartingMoves: 1}, DefaultScoring())
	m.Score = 5

	m.Apply(resolutionOf(3))

	if m.MovesLeft != 0 {
		t.Errorf("MovesLeft = %d, want 0", m.MovesLeft)
	}
	if m.Status() != StatusClear {
		t.Errorf("Status() = %v, want clear", m.Status())
	}
}

func TestConsumeMoveStopsAtZero(t *testing.T) {
	m := NewScoreModel(Profile{Name: "custom", TargetScore: 100, StartingMoves: 1}, DefaultScoring())
	m.ConsumeMove()
	m.ConsumeMove()

	if m.MovesLeft != 0 {
		t.Errorf("MovesLeft = %d, want 0", m.MovesLeft)
	}
}

func TestProfileLookup(t *testing.T) {
	table := DefaultProfiles()

	tests := []struct {
		name       string
		wantName   string
		wantTarget int
		wantMoves  int
	}{
		{"tutorial", "tutorial", 500, 99},
		{"easy", "easy", 1000, 30},
		{"normal", "normal", 1500, 20},
		{"hard", "hard", 2000, 15},
		{" HARD ", "hard", 2000, 15},
		{"nightmare", "normal", 1500, 20},
		{"", "normal", 1500, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := table.Lookup(tt.name)
			if p.Name != tt.wantName || p.TargetScore != tt.wantTarget || p.StartingMoves != tt.wantMoves {
				t.Errorf("Lookup(%q) = %+v", tt.name, p)
			}
		})
	}
}

func TestProfileListOrder(t *testing.T) {
	var names []string
	for _, p := range DefaultProfiles().List() {
		names = append(names, p.Name)
	}

	want := []string{"tutorial", "easy", "normal", "hard"}
	if len(names) != len(want) {
		t.Fatalf("List() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestStatusText(t *testing.T) {
	for s, want := range map[Status]string{
		StatusPlaying: "playing",
		StatusClear:   "clear",
		StatusOver:    "over",
	} {
		text, _ := s.MarshalText()
		if string(text) != want {
			t.Errorf("MarshalText(%d) = %q, want %q", s, text, want)
		}
	}
	if StatusPlaying.Terminal() || !StatusClear.Terminal() || !StatusOver.Terminal() {
		t.Error("Terminal() wrong")
	}
}
