package graph

import (
	"errors"
	"slices"
	"testing"

	"github.com/golangsnmp/formulaorder/internal/types"
)

// formula adds a formula vertex declaring decl and calling called, with
// names interned on first mention.
func formula(g *Graph, label string, decl []string, called []string) Handle {
	var d, c []Handle
	for _, n := range decl {
		d = append(d, g.Intern(n))
	}
	for _, n := range called {
		c = append(c, g.Intern(n))
	}
	return g.AddFormula(label, 0, d, c)
}

func TestInternSharesVertex(t *testing.T) {
	g := New(nil)

	a := g.Intern("a")
	b := g.Intern("b")
	if a == b {
		t.Fatal("distinct names should get distinct handles")
	}
	if g.Intern("a") != a {
		t.Error("second mention of a should reuse its handle")
	}
	if h, ok := g.Lookup("b"); !ok || h != b {
		t.Errorf("Lookup(b) = %v, %v, want %v, true", h, ok, b)
	}
	if _, ok := g.Lookup("c"); ok {
		t.Error("Lookup of an unmentioned name should fail")
	}
	if g.Len() != 2 {
		t.Errorf("Len = %d, want 2", g.Len())
	}
}

func TestAddFormulaNotRegistered(t *testing.T) {
	g := New(nil)
	f := g.AddFormula("a = 1", 1, []Handle{g.Intern("a")}, nil)

	if _, ok := g.Lookup("a = 1"); ok {
		t.Error("formula labels should not be registered as names")
	}
	if g.Name(f) != "a = 1" {
		t.Errorf("Name = %q, want %q", g.Name(f), "a = 1")
	}
	if g.Vertex(f).Line != 1 {
		t.Errorf("Line = %d, want 1", g.Vertex(f).Line)
	}
}

func TestDuplicateEdges(t *testing.T) {
	g := New(nil)
	a := g.Intern("a")
	b := g.Intern("b")

	g.AddEdge(a, b)
	g.AddEdge(a, b)
	g.AddEdge(a, b)

	if len(g.Dependencies(a)) != 1 {
		t.Errorf("dependencies = %d, want 1 (duplicate edges deduplicated)", len(g.Dependencies(a)))
	}
}

func TestLinkOneEdgePerPair(t *testing.T) {
	g := New(nil)
	// "x = p + q" calls both names declared by "p, q = 1, 2".
	pq := formula(g, "p, q = 1, 2", []string{"p", "q"}, nil)
	x := formula(g, "x = p + q", []string{"x"}, []string{"p", "q"})

	g.Link([]Handle{pq, x})

	if !slices.Equal(g.Dependencies(x), []Handle{pq}) {
		t.Errorf("x depends on %v, want [%v]", g.Dependencies(x), pq)
	}
	if len(g.Dependencies(pq)) != 0 {
		t.Errorf("p,q should have no dependencies, got %v", g.Dependencies(pq))
	}
}

func TestLinkEdgeOrderFollowsFormulaOrder(t *testing.T) {
	g := New(nil)
	a := formula(g, "a = c + b", []string{"a"}, []string{"c", "b"})
	b := formula(g, "b = 1", []string{"b"}, nil)
	c := formula(g, "c = 2", []string{"c"}, nil)

	g.Link([]Handle{a, b, c})

	// Pairwise scanning visits b before c regardless of call order.
	want := []Handle{b, c}
	if !slices.Equal(g.Dependencies(a), want) {
		t.Errorf("a depends on %v, want %v", g.Dependencies(a), want)
	}
}

func TestSortEmpty(t *testing.T) {
	g := New(nil)
	if err := g.Sort(nil); err != nil {
		t.Errorf("Sort(nil) = %v, want nil", err)
	}
}

func TestSortChain(t *testing.T) {
	g := New(nil)
	a := formula(g, "a = b", []string{"a"}, []string{"b"})
	b := formula(g, "b = c", []string{"b"}, []string{"c"})
	c := formula(g, "c = 1", []string{"c"}, nil)
	roots := []Handle{a, b, c}

	g.Link(roots)
	if err := g.Sort(roots); err != nil {
		t.Fatalf("Sort: %v", err)
	}

	want := []Handle{c, b, a}
	if got := g.Ordered(roots); !slices.Equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
	for i, h := range want {
		if g.Vertex(h).ExitRank != i+1 {
			t.Errorf("%s rank = %d, want %d", g.Name(h), g.Vertex(h).ExitRank, i+1)
		}
		if g.Vertex(h).Color != Black {
			t.Errorf("%s color = %v, want black", g.Name(h), g.Vertex(h).Color)
		}
	}
}

func TestSortDiamond(t *testing.T) {
	g := New(nil)
	// a depends on b and c, both depend on d.
	a := formula(g, "a = b + c", []string{"a"}, []string{"b", "c"})
	b := formula(g, "b = d", []string{"b"}, []string{"d"})
	c := formula(g, "c = d", []string{"c"}, []string{"d"})
	d := formula(g, "d = 1", []string{"d"}, nil)
	roots := []Handle{a, b, c, d}

	g.Link(roots)
	if err := g.Sort(roots); err != nil {
		t.Fatalf("Sort: %v", err)
	}
	order := g.Ordered(roots)

	// DFS from a: b, then d finishes first, then b, then c, then a.
	want := []Handle{d, b, c, a}
	if !slices.Equal(order, want) {
		t.Errorf("order = %v, want %v", g.Names(order), g.Names(want))
	}
}

func TestSortDisconnectedKeepsDeclarationOrder(t *testing.T) {
	g := New(nil)
	x := formula(g, "x = 1", []string{"x"}, nil)
	y := formula(g, "y = 2", []string{"y"}, nil)
	z := formula(g, "z = 3", []string{"z"}, nil)
	roots := []Handle{x, y, z}

	g.Link(roots)
	if err := g.Sort(roots); err != nil {
		t.Fatalf("Sort: %v", err)
	}
	if got := g.Ordered(roots); !slices.Equal(got, roots) {
		t.Errorf("order = %v, want %v", got, roots)
	}
}

func TestSortSimpleCycle(t *testing.T) {
	g := New(nil)
	a := formula(g, "a = b", []string{"a"}, []string{"b"})
	b := formula(g, "b = a", []string{"b"}, []string{"a"})
	roots := []Handle{a, b}

	g.Link(roots)
	err := g.Sort(roots)
	if !errors.Is(err, types.ErrCycle) {
		t.Fatalf("Sort = %v, want cycle", err)
	}

	var ce *types.CycleError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want *types.CycleError", err)
	}
	want := []string{"a = b", "b = a", "a = b"}
	if !slices.Equal(ce.Members, want) {
		t.Errorf("members = %v, want %v", ce.Members, want)
	}
}

func TestSortCycleBehindPrefix(t *testing.T) {
	g := New(nil)
	// z -> a -> b -> c -> a; the reported cycle excludes z.
	z := formula(g, "z = a", []string{"z"}, []string{"a"})
	a := formula(g, "a = b", []string{"a"}, []string{"b"})
	b := formula(g, "b = c", []string{"b"}, []string{"c"})
	c := formula(g, "c = a", []string{"c"}, []string{"a"})
	roots := []Handle{z, a, b, c}

	g.Link(roots)
	var ce *types.CycleError
	if err := g.Sort(roots); !errors.As(err, &ce) {
		t.Fatalf("Sort = %v, want *types.CycleError", err)
	}
	want := []string{"a = b", "b = c", "c = a", "a = b"}
	if !slices.Equal(ce.Members, want) {
		t.Errorf("members = %v, want %v", ce.Members, want)
	}
}

func TestSortCrossEdgeIsNotCycle(t *testing.T) {
	g := New(nil)
	// b is finished (black) by the time c reaches it.
	a := formula(g, "a = b", []string{"a"}, []string{"b"})
	b := formula(g, "b = 1", []string{"b"}, nil)
	c := formula(g, "c = b", []string{"c"}, []string{"b"})
	roots := []Handle{a, b, c}

	g.Link(roots)
	if err := g.Sort(roots); err != nil {
		t.Fatalf("Sort: %v", err)
	}
	want := []Handle{b, a, c}
	if got := g.Ordered(roots); !slices.Equal(got, want) {
		t.Errorf("order = %v, want %v", g.Names(got), g.Names(want))
	}
}

func TestSortDeepChain(t *testing.T) {
	g := New(nil)
	const n = 50000
	roots := make([]Handle, n)
	for i := range n {
		h := g.Intern(itoa(i))
		roots[i] = g.AddFormula(itoa(i), i+1, []Handle{h}, nil)
	}
	for i := 0; i < n-1; i++ {
		g.AddEdge(roots[i], roots[i+1])
	}

	if err := g.Sort(roots); err != nil {
		t.Fatalf("Sort: %v", err)
	}
	if g.Vertex(roots[n-1]).ExitRank != 1 {
		t.Errorf("last vertex rank = %d, want 1", g.Vertex(roots[n-1]).ExitRank)
	}
	if g.Vertex(roots[0]).ExitRank != n {
		t.Errorf("first vertex rank = %d, want %d", g.Vertex(roots[0]).ExitRank, n)
	}
}

func TestFindCyclesNone(t *testing.T) {
	g := New(nil)
	a := formula(g, "a = b", []string{"a"}, []string{"b"})
	b := formula(g, "b = 1", []string{"b"}, nil)
	roots := []Handle{a, b}
	g.Link(roots)

	if g.HasCycles(roots) {
		t.Errorf("unexpected cycles: %v", g.FindCycles(roots))
	}
}

func TestFindCyclesMultiple(t *testing.T) {
	g := New(nil)
	a := formula(g, "a = b", []string{"a"}, []string{"b"})
	b := formula(g, "b = a", []string{"b"}, []string{"a"})
	c := formula(g, "c = a + d", []string{"c"}, []string{"a", "d"})
	d := formula(g, "d = e", []string{"d"}, []string{"e"})
	e := formula(g, "e = f", []string{"e"}, []string{"f"})
	f := formula(g, "f = d", []string{"f"}, []string{"d"})
	roots := []Handle{a, b, c, d, e, f}
	g.Link(roots)

	cycles := g.FindCycles(roots)
	if len(cycles) != 2 {
		t.Fatalf("cycles = %d, want 2", len(cycles))
	}
	if !slices.Equal(cycles[0], []Handle{a, b}) {
		t.Errorf("cycle 0 = %v, want %v", g.Names(cycles[0]), []string{"a = b", "b = a"})
	}
	if !slices.Equal(cycles[1], []Handle{d, e, f}) {
		t.Errorf("cycle 1 = %v, want %v", g.Names(cycles[1]), []string{"d = e", "e = f", "f = d"})
	}

	// c depends on both cycles but is not part of either.
	for _, cyc := range cycles {
		if slices.Contains(cyc, c) {
			t.Error("c should not be in a cycle")
		}
	}
}

func TestFindCyclesSelfLoop(t *testing.T) {
	g := New(nil)
	a := g.AddFormula("a", 1, nil, nil)
	g.AddEdge(a, a)

	cycles := g.FindCycles([]Handle{a})
	if len(cycles) != 1 || len(cycles[0]) != 1 || cycles[0][0] != a {
		t.Errorf("cycles = %v, want [[%v]]", cycles, a)
	}
}

func TestColorString(t *testing.T) {
	for c, want := range map[Color]string{White: "white", Grey: "grey", Black: "black", Color(7): "unknown"} {
		if c.String() != want {
			t.Errorf("Color(%d).String() = %q, want %q", int(c), c.String(), want)
		}
	}
}

func itoa(i int) string {
	if i == 0 {
		return "v0"
	}
	var buf []byte
	for ; i > 0; i /= 10 {
		buf = append([]byte{byte('0' + i%10)}, buf...)
	}
	return "v" + string(buf)
}
