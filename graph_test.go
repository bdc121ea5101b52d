// Copyright 2019 The aig Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package aig_test

import (
	"testing"

	"github.com/aiglab/aig"
)

// diamond builds a DAG where the AND of a and b is shared between two
// parents:
//
//	and = a AND b
//	inv = NOT and
//	top = and AND inv
func diamond() (top aig.Node, nodes []aig.Node) {
	a, b := aig.NewInput("a"), aig.NewInput("b")
	and := aig.And(a, b)
	inv := aig.Not(and)
	top = aig.And(and, inv)
	return top, []aig.Node{a, b, and, inv, top}
}

func TestGraphCompleteness(t *testing.T) {
	top, nodes := diamond()
	g := aig.NewGraph(top)

	if g.Len() != len(nodes) {
		t.Fatalf("graph has %d nodes, want %d", g.Len(), len(nodes))
	}
	for _, n := range nodes {
		got := g.Node(n.ID())
		if got == nil {
			t.Fatalf("node %x missing from graph", n.ID())
		}
		// recorded dependencies equal the structural children, deduplicated.
		want := make(map[uint64]bool)
		for _, c := range n.Children() {
			want[c.ID()] = true
		}
		deps := g.Deps(n.ID())
		if len(deps) != len(want) {
			t.Fatalf("node %x has %d recorded deps, want %d", n.ID(), len(deps), len(want))
		}
		for _, d := range deps {
			if !want[d] {
				t.Fatalf("node %x has unexpected dep %x", n.ID(), d)
			}
		}
	}
}

func TestGraphDedupDeps(t *testing.T) {
	// And(x, x) depends on x once.
	x := aig.NewInput("x")
	n := aig.And(x, x)
	g := aig.NewGraph(n)
	if deps := g.Deps(n.ID()); len(deps) != 1 || deps[0] != x.ID() {
		t.Fatalf("And(x,x) deps = %v", deps)
	}
}

func TestGraphSharedRoots(t *testing.T) {
	// structurally identical roots built independently are visited once.
	r1 := aig.And(aig.NewInput("a"), aig.NewInput("b"))
	r2 := aig.And(aig.NewInput("a"), aig.NewInput("b"))
	g := aig.NewGraph(r1, r2)
	if g.Len() != 3 {
		t.Fatalf("graph has %d nodes, want 3", g.Len())
	}
}

func checkChildrenFirst(t *testing.T, order []aig.Node, g *aig.Graph) {
	t.Helper()
	pos := make(map[uint64]int, len(order))
	for i, n := range order {
		if _, ok := pos[n.ID()]; ok {
			t.Fatalf("node %x emitted twice", n.ID())
		}
		pos[n.ID()] = i
	}
	if len(order) != g.Len() {
		t.Fatalf("order has %d nodes, graph has %d", len(order), g.Len())
	}
	for _, n := range order {
		for _, c := range n.Children() {
			if pos[c.ID()] >= pos[n.ID()] {
				t.Fatalf("child %x emitted after parent %x", c.ID(), n.ID())
			}
		}
	}
}

func TestDFSChildrenFirst(t *testing.T) {
	top, _ := diamond()
	g := aig.NewGraph(top)
	checkChildrenFirst(t, g.DFS(), g)
}

func TestTopsortValid(t *testing.T) {
	top, _ := diamond()
	g := aig.NewGraph(top)
	checkChildrenFirst(t, g.Topsort(), g)
}

func TestTraversalDeepChain(t *testing.T) {
	// a deep inverter chain must not blow the stack and must come out
	// in strictly increasing depth order.
	var n aig.Node = aig.NewInput("x")
	const depth = 200000
	for i := 0; i < depth; i++ {
		n = aig.Not(n)
	}
	g := aig.NewGraph(n)
	if g.Len() != depth+1 {
		t.Fatalf("graph has %d nodes, want %d", g.Len(), depth+1)
	}
	checkChildrenFirst(t, g.DFS(), g)
	checkChildrenFirst(t, g.Topsort(), g)
}
