// Copyright 2019 The aig Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package aig_test

import (
	"reflect"
	"testing"

	"github.com/aiglab/aig"
)

func mustNew(t *testing.T, inputs []string, nodeMap map[string]aig.Node, latchMap map[string]aig.Node, latchInit map[string]bool) *aig.Circuit {
	t.Helper()
	c, err := aig.New(inputs, nodeMap, latchMap, latchInit)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestNewValidation(t *testing.T) {
	// dangling input reference
	_, err := aig.New(nil, map[string]aig.Node{"o": aig.NewInput("a")}, nil, nil)
	if err == nil {
		t.Error("undeclared input not rejected")
	}

	// dangling latch reference
	_, err = aig.New(nil, map[string]aig.Node{"o": aig.NewLatchIn("l")}, nil, nil)
	if err == nil {
		t.Error("undeclared latch not rejected")
	}

	// latch without initial value
	_, err = aig.New([]string{"a"}, nil, map[string]aig.Node{"l": aig.NewInput("a")}, nil)
	if err == nil {
		t.Error("missing latch init not rejected")
	}

	// initial value for unknown latch
	_, err = aig.New(nil, nil, nil, map[string]bool{"l": true})
	if err == nil {
		t.Error("stray latch init not rejected")
	}
}

func TestCircuitAccessors(t *testing.T) {
	a, b := aig.NewInput("a"), aig.NewInput("b")
	and := aig.And(a, b)
	c := mustNew(t, []string{"b", "a"},
		map[string]aig.Node{"o": and},
		map[string]aig.Node{"l": a},
		map[string]bool{"l": true})

	if got := c.Inputs(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Inputs() = %v", got)
	}
	if got := c.Outputs(); !reflect.DeepEqual(got, []string{"o"}) {
		t.Errorf("Outputs() = %v", got)
	}
	if got := c.Latches(); !reflect.DeepEqual(got, []string{"l"}) {
		t.Errorf("Latches() = %v", got)
	}
	if v, ok := c.LatchInit("l"); !ok || !v {
		t.Errorf("LatchInit(l) = %v, %v", v, ok)
	}
	if n, ok := c.OutputNode("o"); !ok || n.ID() != and.ID() {
		t.Error("OutputNode(o) mismatch")
	}
	if n, ok := c.LatchNext("l"); !ok || n.ID() != a.ID() {
		t.Error("LatchNext(l) mismatch")
	}
	// every node reachable from the cones resolves by identity.
	for _, n := range []aig.Node{a, b, and} {
		got, ok := c.Node(n.ID())
		if !ok || got.ID() != n.ID() {
			t.Errorf("Node(%x) not resolvable", n.ID())
		}
	}
	if _, ok := c.Node(42); ok {
		t.Error("Node(42) resolved an unreachable id")
	}
}

func TestConesDedup(t *testing.T) {
	root := aig.And(aig.NewInput("a"), aig.NewInput("b"))
	c := mustNew(t, []string{"a", "b"},
		map[string]aig.Node{"o1": root, "o2": root}, nil, nil)
	if n := len(c.Cones()); n != 1 {
		t.Errorf("Cones() has %d roots, want 1", n)
	}
}

func TestSeqSubstitution(t *testing.T) {
	// A: x = NOT a; B: o = x AND b. A >> B must yield o = (NOT a) AND b.
	ca := mustNew(t, []string{"a"},
		map[string]aig.Node{"x": aig.Not(aig.NewInput("a"))}, nil, nil)
	cb := mustNew(t, []string{"x", "b"},
		map[string]aig.Node{"o": aig.And(aig.NewInput("x"), aig.NewInput("b"))}, nil, nil)

	c, err := ca.Seq(cb)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Inputs(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Inputs() = %v", got)
	}
	if got := c.Outputs(); !reflect.DeepEqual(got, []string{"o"}) {
		t.Errorf("Outputs() = %v", got)
	}
	want := aig.And(aig.Not(aig.NewInput("a")), aig.NewInput("b"))
	if n, _ := c.OutputNode("o"); n.ID() != want.ID() {
		t.Error("substituted cone does not match (NOT a) AND b")
	}
}

func TestSeqPassthrough(t *testing.T) {
	// unmatched outputs of the first circuit pass through.
	ca := mustNew(t, []string{"a"}, map[string]aig.Node{
		"x": aig.NewInput("a"),
		"y": aig.Not(aig.NewInput("a")),
	}, nil, nil)
	cb := mustNew(t, []string{"x"},
		map[string]aig.Node{"o": aig.Not(aig.NewInput("x"))}, nil, nil)

	c, err := ca.Seq(cb)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Outputs(); !reflect.DeepEqual(got, []string{"o", "y"}) {
		t.Errorf("Outputs() = %v", got)
	}
}

func TestSeqCollisions(t *testing.T) {
	// passthrough output y collides with an output of the second circuit.
	ca := mustNew(t, []string{"a"}, map[string]aig.Node{
		"x": aig.NewInput("a"),
		"y": aig.NewInput("a"),
	}, nil, nil)
	cb := mustNew(t, []string{"x"},
		map[string]aig.Node{"y": aig.Not(aig.NewInput("x"))}, nil, nil)
	if _, err := ca.Seq(cb); err == nil {
		t.Error("colliding unmatched output not rejected")
	}

	// latch name collision
	la := mustNew(t, []string{"a"}, nil,
		map[string]aig.Node{"l": aig.NewInput("a")}, map[string]bool{"l": false})
	lb := mustNew(t, []string{"b"}, nil,
		map[string]aig.Node{"l": aig.NewInput("b")}, map[string]bool{"l": false})
	if _, err := la.Seq(lb); err == nil {
		t.Error("colliding latch name not rejected")
	}
}

func TestParCollisions(t *testing.T) {
	ca := mustNew(t, []string{"a"}, map[string]aig.Node{"o": aig.NewInput("a")}, nil, nil)
	cb := mustNew(t, []string{"b"}, map[string]aig.Node{"o": aig.NewInput("b")}, nil, nil)
	if _, err := ca.Par(cb); err == nil {
		t.Error("colliding output name not rejected")
	}

	// shared inputs are fine.
	cc := mustNew(t, []string{"a"}, map[string]aig.Node{"p": aig.Not(aig.NewInput("a"))}, nil, nil)
	c, err := ca.Par(cc)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Inputs(); !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("Inputs() = %v", got)
	}
	if got := c.Outputs(); !reflect.DeepEqual(got, []string{"o", "p"}) {
		t.Errorf("Outputs() = %v", got)
	}
}

func TestEvalOrder(t *testing.T) {
	a := aig.NewInput("a")
	and := aig.And(a, aig.NewLatchIn("l"))
	c := mustNew(t, []string{"a"},
		map[string]aig.Node{"o": and},
		map[string]aig.Node{"l": aig.Not(a)},
		map[string]bool{"l": false})

	order, err := aig.EvalOrder(c)
	if err != nil {
		t.Fatal(err)
	}
	// nodes: a, LatchIn(l), and, Not(a)
	if len(order) != 4 {
		t.Fatalf("EvalOrder yielded %d nodes, want 4", len(order))
	}
	pos := make(map[uint64]int, len(order))
	for i, n := range order {
		pos[n.ID()] = i
	}
	for _, n := range order {
		for _, child := range n.Children() {
			if pos[child.ID()] >= pos[n.ID()] {
				t.Fatal("dependency ordered after dependent")
			}
		}
	}
}
