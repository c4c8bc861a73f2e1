// Package testutil generates random formula inputs for property tests.
package testutil

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Case is a generated input with its expected line dependencies.
type Case struct {
	Lines []string
	// Deps maps a line index to the indices of the lines it calls into.
	Deps map[int][]int
	// Cyclic is set when the lines contain a cross-line cycle.
	Cyclic bool
}

// Text joins the lines into one input.
func (c Case) Text() string {
	return strings.Join(c.Lines, "\n")
}

type group struct {
	names []string
	calls [][]int // per name: groups referenced
}

// Acyclic returns n declaration lines whose dependencies form a DAG. Each
// line declares one to three names and references only names of lines
// generated before it; the lines are then shuffled.
func Acyclic(rng *rand.Rand, n int) Case {
	groups := make([]group, n)
	name := 0
	for i := range groups {
		k := 1 + rng.IntN(3)
		for range k {
			groups[i].names = append(groups[i].names, fmt.Sprintf("f%d", name))
			name++
			var calls []int
			if i > 0 {
				for range rng.IntN(4) {
					calls = append(calls, rng.IntN(i))
				}
			}
			groups[i].calls = append(groups[i].calls, calls)
		}
	}
	return render(rng, groups, false)
}

// Cyclic is Acyclic with one added pair of lines calling each other.
func Cyclic(rng *rand.Rand, n int) Case {
	if n < 2 {
		n = 2
	}
	groups := make([]group, n)
	name := 0
	for i := range groups {
		groups[i].names = []string{fmt.Sprintf("f%d", name)}
		name++
		var calls []int
		if i > 0 {
			for range rng.IntN(3) {
				calls = append(calls, rng.IntN(i))
			}
		}
		groups[i].calls = [][]int{calls}
	}
	j := 1 + rng.IntN(n-1)
	i := rng.IntN(j)
	groups[i].calls[0] = append(groups[i].calls[0], j)
	groups[j].calls[0] = append(groups[j].calls[0], i)
	return render(rng, groups, true)
}

func render(rng *rand.Rand, groups []group, cyclic bool) Case {
	perm := rng.Perm(len(groups)) // perm[g] is the output line of group g
	c := Case{
		Lines:  make([]string, len(groups)),
		Deps:   make(map[int][]int),
		Cyclic: cyclic,
	}
	for g, grp := range groups {
		exprs := make([]string, len(grp.names))
		seen := make(map[int]bool)
		for k, calls := range grp.calls {
			var refs []string
			for _, callee := range calls {
				target := groups[callee].names[rng.IntN(len(groups[callee].names))]
				refs = append(refs, target)
				if !seen[callee] {
					seen[callee] = true
					c.Deps[perm[g]] = append(c.Deps[perm[g]], perm[callee])
				}
			}
			exprs[k] = expression(rng, refs)
		}
		c.Lines[perm[g]] = strings.Join(grp.names, ", ") + " = " + strings.Join(exprs, ", ")
	}
	return c
}

var ops = []string{" + ", " - ", " * ", " / "}

// expression combines refs and random numbers with operators, signs, and
// parentheses.
func expression(rng *rand.Rand, refs []string) string {
	terms := append([]string(nil), refs...)
	if len(terms) == 0 || rng.IntN(2) == 0 {
		terms = append(terms, fmt.Sprint(rng.IntN(100)))
	}
	rng.Shuffle(len(terms), func(a, b int) { terms[a], terms[b] = terms[b], terms[a] })

	var b strings.Builder
	for i, t := range terms {
		if i > 0 {
			b.WriteString(ops[rng.IntN(len(ops))])
		}
		switch rng.IntN(4) {
		case 0:
			fmt.Fprintf(&b, "(%s)", t)
		case 1:
			fmt.Fprintf(&b, "-%s", t)
		default:
			b.WriteString(t)
		}
	}
	return b.String()
}
