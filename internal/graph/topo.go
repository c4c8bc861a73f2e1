package graph

import (
	"cmp"
	"log/slog"
	"slices"

	"github.com/golangsnmp/formulaorder/internal/types"
)

type frame struct {
	h    Handle
	next int // index of the next Related edge to follow
}

// Sort runs a three-color depth-first search from every white vertex of
// roots, in order, and assigns exit ranks starting at 1 in finishing
// order. Reaching a grey vertex is a back edge and returns a
// *types.CycleError naming the vertices on the cycle.
//
// The search keeps its own stack of (vertex, next edge) frames, so deep
// dependency chains do not grow the goroutine stack.
func (g *Graph) Sort(roots []Handle) error {
	time := 1
	var stack []frame

	for _, root := range roots {
		if g.vertices[root].Color != White {
			continue
		}
		g.visit(root)
		stack = append(stack[:0], frame{h: root})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			v := &g.vertices[top.h]

			if top.next < len(v.Related) {
				r := v.Related[top.next]
				top.next++
				switch g.vertices[r].Color {
				case Grey:
					return g.cycleError(stack, r)
				case White:
					g.visit(r)
					stack = append(stack, frame{h: r})
				}
				continue
			}

			v.ExitRank = time
			v.Color = Black
			time++
			if g.TraceEnabled() {
				g.Trace("finish", slog.String("vertex", v.Name), slog.Int("rank", v.ExitRank))
			}
			stack = stack[:len(stack)-1]
		}
	}

	g.Log(slog.LevelDebug, "sort complete", slog.Int("ranked", time-1))
	return nil
}

func (g *Graph) visit(h Handle) {
	g.vertices[h].Color = Grey
	if g.TraceEnabled() {
		g.Trace("visit", slog.String("vertex", g.vertices[h].Name))
	}
}

// cycleError builds the error for a back edge from the top of stack to
// target. Members run from target along the DFS path and back to target.
func (g *Graph) cycleError(stack []frame, target Handle) error {
	start := slices.IndexFunc(stack, func(f frame) bool { return f.h == target })
	var members []string
	for _, f := range stack[start:] {
		members = append(members, g.vertices[f.h].Name)
	}
	members = append(members, g.vertices[target].Name)

	g.Log(slog.LevelDebug, "cycle detected", slog.Any("members", members))
	return &types.CycleError{
		Code:    types.DiagDependencyCycle,
		Line:    g.vertices[target].Line,
		Members: members,
	}
}

// Ordered returns roots sorted by ascending exit rank. Call after a
// successful Sort.
func (g *Graph) Ordered(roots []Handle) []Handle {
	out := slices.Clone(roots)
	slices.SortStableFunc(out, func(a, b Handle) int {
		return cmp.Compare(g.vertices[a].ExitRank, g.vertices[b].ExitRank)
	})
	return out
}
