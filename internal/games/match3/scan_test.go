package match3

import "testing"

func TestScan(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want []Coord
	}{
		{
			name: "no runs",
			rows: base5,
			want: nil,
		},
		{
			name: "horizontal at left edge",
			rows: withRow(base5, 0, "RRRYP"),
			want: []Coord{At(0, 0), At(0, 1), At(0, 2)},
		},
		{
			name: "horizontal touching right edge",
			rows: withRow(base5, 2, "PRBBB"),
			want: []Coord{At(2, 2), At(2, 3), At(2, 4)},
		},
		{
			name: "vertical touching bottom edge",
			rows: []string{
				"RBGYP",
				"GYPRB",
				"PRBGG",
				"BGYPG",
				"YPRBG",
			},
			want: []Coord{At(2, 4), At(3, 4), At(4, 4)},
		},
		{
			name: "overlapping runs counted once",
			rows: []string{
				"RRRYP",
				"RYPRB",
				"RRBGY",
				"BGYPR",
				"YPRBG",
			},
			want: []Coord{At(0, 0), At(0, 1), At(0, 2), At(1, 0), At(2, 0)},
		},
		{
			name: "run of five",
			rows: withRow(base5, 4, "GGGGG"),
			want: []Coord{At(4, 0), At(4, 1), At(4, 2), At(4, 3), At(4, 4)},
		},
		{
			name: "two separate runs",
			rows: withRow(withRow(base5, 0, "RRRYP"), 4, "YPBBB"),
			want: []Coord{At(0, 0), At(0, 1), At(0, 2), At(4, 2), At(4, 3), At(4, 4)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardFromRows(t, tt.rows...)
			before := b.Clone()

			got := Scan(b)

			if !b.Equal(before) {
				t.Error("Scan modified the board")
			}
			if got.Len() != len(tt.want) {
				t.Fatalf("Scan() matched %v, want %v", got.Sorted(), tt.want)
			}
			for i, c := range got.Sorted() {
				if c != tt.want[i] {
					t.Errorf("match %d = %v, want %v", i, c, tt.want[i])
				}
			}
		})
	}
}

func TestScanIgnoresEmptyCells(t *testing.T) {
	b := boardFromRows(t, base5...)
	b.Remove(At(1, 0), At(1, 1), At(1, 2), At(1, 3))

	if m := Scan(b); m.Len() != 0 {
		t.Errorf("Scan() matched empty cells: %v", m.Sorted())
	}
}

func TestScanTwoInARowIsNotAMatch(t *testing.T) {
	b := boardFromRows(t, withRow(base5, 3, "BBYPR")...)

	if m := Scan(b); m.Len() != 0 {
		t.Errorf("Scan() matched a pair: %v", m.Sorted())
	}
}
