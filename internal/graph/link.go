package graph

import (
	"log/slog"
	"slices"
)

// Link adds an edge A -> B between formula vertices whenever A calls a
// name that B declares. At most one edge is added per ordered pair, and
// each formula's edges are added in the order its targets appear in
// formulas.
func (g *Graph) Link(formulas []Handle) {
	owner := make(map[Handle]int)
	for i, f := range formulas {
		for _, d := range g.vertices[f].Declared {
			owner[d] = i
		}
	}

	edges := 0
	var targets []int
	for i, f := range formulas {
		targets = targets[:0]
		for _, c := range g.vertices[f].Called {
			if j, ok := owner[c]; ok && j != i {
				targets = append(targets, j)
			}
		}
		slices.Sort(targets)
		targets = slices.Compact(targets)

		for _, j := range targets {
			g.AddEdge(f, formulas[j])
			edges++
		}
	}

	g.Log(slog.LevelDebug, "formulas linked",
		slog.Int("formulas", len(formulas)),
		slog.Int("edges", edges))
}
