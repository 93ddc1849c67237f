package core

import "testing"

func TestOpponent(t *testing.T) {
	if SideHome.Opponent() != SideAway {
		t.Errorf("SideHome.Opponent() = %s, want away", SideHome.Opponent())
	}
	if SideAway.Opponent() != SideHome {
		t.Errorf("SideAway.Opponent() = %s, want home", SideAway.Opponent())
	}
}

func TestScoreDiff(t *testing.T) {
	tests := []struct {
		score Score
		want  int
	}{
		{Score{}, 0},
		{Score{Home: 2, Away: 1}, 1},
		{Score{Home: 0, Away: 3}, -3},
	}
	for _, tt := range tests {
		if got := tt.score.Diff(); got != tt.want {
			t.Errorf("Diff(%+v) = %d, want %d", tt.score, got, tt.want)
		}
	}
}
