// Package graph provides the formula dependency graph: an arena of
// vertices addressed by stable handles, a name registry, cross-line
// linking, and depth-first topological sorting.
package graph

import (
	"log/slog"
	"slices"

	"github.com/golangsnmp/formulaorder/internal/types"
)

// Handle identifies a vertex in a Graph. Handles are stable for the
// lifetime of the graph.
type Handle int

// Color is the DFS visitation state of a vertex.
type Color int

const (
	White Color = iota // unvisited
	Grey               // on the current DFS path
	Black              // finished
)

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Grey:
		return "grey"
	case Black:
		return "black"
	default:
		return "unknown"
	}
}

// Vertex is either a registered name or a formula (one declaration line).
type Vertex struct {
	Name string // identifier, or the line label for formula vertices
	Line int    // declaration line of a formula vertex, 0 for names

	// Declared holds the names a formula binds, in source order.
	Declared []Handle
	// Called holds the names referenced by a formula's expressions,
	// without duplicates, in first-reference order.
	Called []Handle
	// Related holds the dependency edges followed by Sort.
	Related []Handle

	Color    Color
	ExitRank int
}

// Graph is an arena of vertices with a name registry.
type Graph struct {
	vertices []Vertex
	names    map[string]Handle
	types.Logger
}

// New returns an empty graph. Pass nil for logger to disable logging.
func New(logger *slog.Logger) *Graph {
	return &Graph{
		names:  make(map[string]Handle),
		Logger: types.Logger{L: logger},
	}
}

// Intern returns the vertex registered for name, creating it on first
// mention. Every mention of a name shares one vertex.
func (g *Graph) Intern(name string) Handle {
	if h, ok := g.names[name]; ok {
		return h
	}
	h := g.add(Vertex{Name: name})
	g.names[name] = h
	return h
}

// Lookup returns the vertex registered for name.
func (g *Graph) Lookup(name string) (Handle, bool) {
	h, ok := g.names[name]
	return h, ok
}

// AddFormula creates an unregistered formula vertex labelled with the
// source text of its declaration line.
func (g *Graph) AddFormula(label string, line int, declared, called []Handle) Handle {
	return g.add(Vertex{
		Name:     label,
		Line:     line,
		Declared: slices.Clone(declared),
		Called:   slices.Clone(called),
	})
}

func (g *Graph) add(v Vertex) Handle {
	h := Handle(len(g.vertices))
	g.vertices = append(g.vertices, v)
	return h
}

// Vertex returns the vertex for h. The pointer is invalidated by the
// next Intern or AddFormula call.
func (g *Graph) Vertex(h Handle) *Vertex {
	return &g.vertices[h]
}

// Name returns the name or label of h.
func (g *Graph) Name(h Handle) string {
	return g.vertices[h].Name
}

// Names maps handles to their names.
func (g *Graph) Names(hs []Handle) []string {
	names := make([]string, len(hs))
	for i, h := range hs {
		names[i] = g.vertices[h].Name
	}
	return names
}

// Len returns the number of vertices.
func (g *Graph) Len() int {
	return len(g.vertices)
}

// AddEdge records that "from" depends on "to", meaning "to" must be
// ordered before "from". Duplicate edges are ignored.
func (g *Graph) AddEdge(from, to Handle) {
	v := &g.vertices[from]
	if slices.Contains(v.Related, to) {
		return
	}
	v.Related = append(v.Related, to)
}

// Dependencies returns the vertices h depends on (forward edges).
func (g *Graph) Dependencies(h Handle) []Handle {
	return g.vertices[h].Related
}
