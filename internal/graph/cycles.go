package graph

import "slices"

// FindCycles returns all strongly connected components reachable from
// roots that have more than one vertex, or a single vertex with a
// self-loop, found via Tarjan's algorithm. Components are listed in the
// order their roots finish; members within a component are in discovery
// order. Vertex colors and ranks are not touched.
func (g *Graph) FindCycles(roots []Handle) [][]Handle {
	var (
		index    int
		stack    []Handle
		onStack  = make(map[Handle]bool)
		indices  = make(map[Handle]int)
		lowlinks = make(map[Handle]int)
		sccs     [][]Handle
	)

	var strongConnect func(h Handle)
	strongConnect = func(h Handle) {
		indices[h] = index
		lowlinks[h] = index
		index++
		stack = append(stack, h)
		onStack[h] = true

		for _, dep := range g.vertices[h].Related {
			if _, visited := indices[dep]; !visited {
				strongConnect(dep)
				lowlinks[h] = min(lowlinks[h], lowlinks[dep])
			} else if onStack[dep] {
				lowlinks[h] = min(lowlinks[h], indices[dep])
			}
		}

		if lowlinks[h] == indices[h] {
			var scc []Handle
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				scc = append(scc, w)
				if w == h {
					break
				}
			}
			if len(scc) > 1 || slices.Contains(g.vertices[h].Related, h) {
				slices.Reverse(scc)
				sccs = append(sccs, scc)
			}
		}
	}

	for _, h := range roots {
		if _, visited := indices[h]; !visited {
			strongConnect(h)
		}
	}

	return sccs
}

// HasCycles reports whether any cycle is reachable from roots.
func (g *Graph) HasCycles(roots []Handle) bool {
	return len(g.FindCycles(roots)) > 0
}
