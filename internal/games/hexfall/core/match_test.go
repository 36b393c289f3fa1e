package core

import "testing"

func fillRow(g *Grid, row, from, to int, color Cell) {
	for c := from; c <= to; c++ {
		g.Set(row, c, color)
	}
}

func TestResolveMatchesClearsGroupOfSix(t *testing.T) {
	g := NewGrid(16, 4, 9)
	fillRow(g, 19, 0, 5, 2)

	res := ResolveMatches(g, 6)
	if res.Cleared != 6 || res.Groups != 1 {
		t.Fatalf("cleared=%d groups=%d, expected 6 and 1", res.Cleared, res.Groups)
	}
	if res.Score != 600 {
		t.Errorf("score = %d, expected 600 for a group of six", res.Score)
	}
	if g.OccupiedCount() != 0 {
		t.Error("matched balls should be removed from the grid")
	}
}

func TestResolveMatchesScoresLargerGroup(t *testing.T) {
	g := NewGrid(16, 4, 9)
	fillRow(g, 19, 0, 6, 3)

	res := ResolveMatches(g, 6)
	if res.Cleared != 7 {
		t.Fatalf("cleared = %d, expected 7", res.Cleared)
	}
	if res.Score != 750 {
		t.Errorf("score = %d, expected 7*100 + 1*50 = 750", res.Score)
	}
}

func TestResolveMatchesIgnoresGroupBelowThreshold(t *testing.T) {
	g := NewGrid(16, 4, 9)
	fillRow(g, 19, 0, 4, 1)

	res := ResolveMatches(g, 6)
	if res.Cleared != 0 || res.Score != 0 {
		t.Errorf("group of five should not clear, got cleared=%d score=%d", res.Cleared, res.Score)
	}
	if g.OccupiedCount() != 5 {
		t.Error("unmatched balls must stay on the grid")
	}
}

func TestResolveMatchesScoresSimultaneousGroupsGlobally(t *testing.T) {
	g := NewGrid(16, 4, 9)
	fillRow(g, 19, 0, 5, 1)
	fillRow(g, 17, 0, 5, 2)

	res := ResolveMatches(g, 6)
	if res.Cleared != 12 || res.Groups != 2 {
		t.Fatalf("cleared=%d groups=%d, expected 12 and 2", res.Cleared, res.Groups)
	}
	// The bonus is computed once over all cleared balls, not per group.
	if res.Score != 1500 {
		t.Errorf("score = %d, expected 12*100 + 6*50 = 1500", res.Score)
	}
	if g.OccupiedCount() != 0 {
		t.Error("both groups should be removed in the same resolution")
	}
}

func TestResolveMatchesDoesNotMergeColors(t *testing.T) {
	g := NewGrid(16, 4, 9)
	fillRow(g, 19, 0, 4, 1)
	fillRow(g, 19, 5, 8, 2)

	res := ResolveMatches(g, 6)
	if res.Cleared != 0 {
		t.Errorf("adjacent balls of different colors must not form a group, cleared=%d", res.Cleared)
	}
	if g.OccupiedCount() != 9 {
		t.Error("no balls should be removed")
	}
}

func TestResolveMatchesFollowsHexAdjacencyAcrossRows(t *testing.T) {
	g := NewGrid(16, 4, 9)
	// Six balls connected through the staggered row offsets.
	for _, p := range []CellPos{{19, 3}, {19, 4}, {18, 4}, {18, 5}, {17, 4}, {17, 5}} {
		g.Set(p.Row, p.Col, 4)
	}

	res := ResolveMatches(g, 6)
	if res.Cleared != 6 || res.Score != 600 {
		t.Errorf("cross-row group should clear, got cleared=%d score=%d", res.Cleared, res.Score)
	}
}
