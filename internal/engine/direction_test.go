package engine

import "testing"

func TestDirectionOppositeAndOffset(t *testing.T) {
	tests := []struct {
		dir        Direction
		opposite   Direction
		dRow, dCol int
	}{
		{DirUp, DirDown, -1, 0},
		{DirDown, DirUp, 1, 0},
		{DirLeft, DirRight, 0, -1},
		{DirRight, DirLeft, 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := tc.dir.Opposite(); got != tc.opposite {
				t.Errorf("Opposite() = %v, want %v", got, tc.opposite)
			}
			dRow, dCol := tc.dir.Offset()
			if dRow != tc.dRow || dCol != tc.dCol {
				t.Errorf("Offset() = (%d,%d), want (%d,%d)", dRow, dCol, tc.dRow, tc.dCol)
			}
			if got := P(5, 5).Translate(tc.dir); got != P(5+tc.dRow, 5+tc.dCol) {
				t.Errorf("Translate() = %v", got)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		got, err := ParseDirection(d.String())
		if err != nil || got != d {
			t.Errorf("ParseDirection(%q) = %v, %v", d.String(), got, err)
		}
	}
	if got, err := ParseDirection("LEFT"); err != nil || got != DirLeft {
		t.Errorf("ParseDirection is case-insensitive, got %v, %v", got, err)
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("expected error for unknown direction")
	}
}
