package core

// MatchResult describes the outcome of one match scan.
type MatchResult struct {
	Cleared int // balls removed from the grid
	Groups  int // qualifying connected groups
	Score   int // score delta awarded
}

// ResolveMatches flood-fills the grid for connected groups of same-colored
// balls, clears every group of size >= minGroup, and returns the combined
// result. All qualifying cells found in one scan are cleared
// simultaneously.
//
// The score delta is cleared*100 + (cleared-minGroup)*50 computed once over
// the combined match list, not per group. When several groups clear in the
// same scan the size bonus is therefore applied once globally; this
// asymmetry is the historical scoring rule and is kept as is.
func ResolveMatches(g *Grid, minGroup int) MatchResult {
	visited := make(map[CellPos]bool)
	var matched []CellPos
	groups := 0

	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			start := CellPos{Row: row, Col: col}
			if visited[start] {
				continue
			}
			color := g.Get(row, col)
			if color == Empty {
				continue
			}

			group := floodFill(g, start, color, visited)
			if len(group) >= minGroup {
				matched = append(matched, group...)
				groups++
			}
		}
	}

	if len(matched) == 0 {
		return MatchResult{}
	}

	for _, c := range matched {
		g.Set(c.Row, c.Col, Empty)
	}

	return MatchResult{
		Cleared: len(matched),
		Groups:  groups,
		Score:   len(matched)*100 + (len(matched)-minGroup)*50,
	}
}

// floodFill collects the connected group of cells sharing the start cell's
// color, breadth-first over 6-way hex adjacency. The visited set is shared
// across the whole scan so every cell is expanded at most once.
func floodFill(g *Grid, start CellPos, color Cell, visited map[CellPos]bool) []CellPos {
	visited[start] = true
	group := []CellPos{start}

	for i := 0; i < len(group); i++ {
		cur := group[i]
		for _, n := range g.Neighbors(cur.Row, cur.Col) {
			if visited[n] || g.Get(n.Row, n.Col) != color {
				continue
			}
			visited[n] = true
			group = append(group, n)
		}
	}
	return group
}
