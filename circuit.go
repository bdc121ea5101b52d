// Copyright 2019 The aig Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package aig

import (
	"sort"

	"github.com/pkg/errors"
)

// A Circuit is an immutable And-Inverter Graph with named inputs,
// named combinational outputs and named latches. New circuits are
// produced by construction or by composition (Seq, Par), never by
// in-place edit; identical sub-expressions are shared structurally
// through node identities.
//
type Circuit struct {
	inputs    map[string]struct{}
	nodeMap   map[string]Node // output name -> root
	latchMap  map[string]Node // latch name -> next-state root
	latchInit map[string]bool // latch name -> initial value
	index     map[uint64]Node // all reachable nodes by identity
}

// New builds a circuit from its four constituents. The maps are copied.
//
// New fails if a reachable Input node names an undeclared input, if a
// reachable LatchIn node names an undeclared latch, or if latchInit
// does not cover exactly the latches of latchMap.
func New(inputs []string, nodeMap map[string]Node, latchMap map[string]Node, latchInit map[string]bool) (*Circuit, error) {
	c := &Circuit{
		inputs:    make(map[string]struct{}, len(inputs)),
		nodeMap:   make(map[string]Node, len(nodeMap)),
		latchMap:  make(map[string]Node, len(latchMap)),
		latchInit: make(map[string]bool, len(latchInit)),
	}
	for _, in := range inputs {
		c.inputs[in] = struct{}{}
	}
	for name, n := range nodeMap {
		if n == nil {
			return nil, errors.Errorf("output %q has no defining node", name)
		}
		c.nodeMap[name] = n
	}
	for name, n := range latchMap {
		if n == nil {
			return nil, errors.Errorf("latch %q has no next-state node", name)
		}
		c.latchMap[name] = n
		v, ok := latchInit[name]
		if !ok {
			return nil, errors.Errorf("latch %q has no initial value", name)
		}
		c.latchInit[name] = v
	}
	for name := range latchInit {
		if _, ok := c.latchMap[name]; !ok {
			return nil, errors.Errorf("initial value for undeclared latch %q", name)
		}
	}

	g := NewGraph(append(c.Cones(), c.LatchCones()...)...)
	for _, id := range g.IDs() {
		switch n := g.Node(id).(type) {
		case *Input:
			if _, ok := c.inputs[n.Name()]; !ok {
				return nil, errors.Errorf("dangling reference to undeclared input %q", n.Name())
			}
		case *LatchIn:
			if _, ok := c.latchMap[n.Name()]; !ok {
				return nil, errors.Errorf("dangling reference to undeclared latch %q", n.Name())
			}
		}
	}
	c.index = make(map[uint64]Node, g.Len())
	for _, id := range g.IDs() {
		c.index[id] = g.Node(id)
	}
	return c, nil
}

// Inputs returns the sorted input names.
func (c *Circuit) Inputs() []string { return sortedKeys(c.inputs) }

// Outputs returns the sorted combinational output names.
func (c *Circuit) Outputs() []string {
	names := make([]string, 0, len(c.nodeMap))
	for name := range c.nodeMap {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Latches returns the sorted latch names.
func (c *Circuit) Latches() []string {
	names := make([]string, 0, len(c.latchMap))
	for name := range c.latchMap {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedKeys(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// OutputNode returns the root node defining the named output.
func (c *Circuit) OutputNode(name string) (Node, bool) {
	n, ok := c.nodeMap[name]
	return n, ok
}

// LatchNext returns the root node defining the named latch's
// next-state value.
func (c *Circuit) LatchNext(name string) (Node, bool) {
	n, ok := c.latchMap[name]
	return n, ok
}

// LatchInit returns the named latch's initial value.
func (c *Circuit) LatchInit(name string) (bool, bool) {
	v, ok := c.latchInit[name]
	return v, ok
}

// Node resolves a node identity to its node. Only nodes reachable from
// the circuit's cones can be resolved.
func (c *Circuit) Node(id uint64) (Node, bool) {
	n, ok := c.index[id]
	return n, ok
}

// Cones returns the root nodes of the combinational outputs,
// deduplicated by identity, in output-name order.
func (c *Circuit) Cones() []Node {
	return rootSet(c.nodeMap, c.Outputs())
}

// LatchCones returns the root nodes of the latch next-state functions,
// deduplicated by identity, in latch-name order.
func (c *Circuit) LatchCones() []Node {
	return rootSet(c.latchMap, c.Latches())
}

func rootSet(m map[string]Node, names []string) []Node {
	seen := make(map[uint64]bool, len(m))
	roots := make([]Node, 0, len(m))
	for _, name := range names {
		n := m[name]
		if !seen[n.ID()] {
			seen[n.ID()] = true
			roots = append(roots, n)
		}
	}
	return roots
}

// Seq composes c with other sequentially: outputs of c feed the
// identically named inputs of other, non-matching inputs and outputs
// pass through. An unmatched output of c colliding with an output of
// other, or a latch name shared by both circuits, is a composition
// error.
func (c *Circuit) Seq(other *Circuit) (*Circuit, error) {
	matched := make(map[string]Node)
	for name, root := range c.nodeMap {
		if _, ok := other.inputs[name]; ok {
			matched[name] = root
		}
	}

	nodeMap := make(map[string]Node, len(other.nodeMap)+len(c.nodeMap))
	for name, root := range c.nodeMap {
		if _, ok := matched[name]; !ok {
			nodeMap[name] = root
		}
	}
	for name := range other.nodeMap {
		if _, ok := nodeMap[name]; ok {
			return nil, errors.Errorf("sequential composition: output %q defined on both sides", name)
		}
	}

	// rewrite other's cones with the matched inputs substituted.
	sub := substitute(matched, append(other.Cones(), other.LatchCones()...))
	for name, root := range other.nodeMap {
		nodeMap[name] = sub[root.ID()]
	}

	latchMap := make(map[string]Node, len(c.latchMap)+len(other.latchMap))
	latchInit := make(map[string]bool, len(c.latchInit)+len(other.latchInit))
	for name, root := range c.latchMap {
		latchMap[name] = root
		latchInit[name] = c.latchInit[name]
	}
	for name, root := range other.latchMap {
		if _, ok := latchMap[name]; ok {
			return nil, errors.Errorf("sequential composition: latch %q defined on both sides", name)
		}
		latchMap[name] = sub[root.ID()]
		latchInit[name] = other.latchInit[name]
	}

	inputs := make([]string, 0, len(c.inputs)+len(other.inputs))
	for name := range c.inputs {
		inputs = append(inputs, name)
	}
	for name := range other.inputs {
		if _, ok := matched[name]; !ok {
			inputs = append(inputs, name)
		}
	}

	return New(inputs, nodeMap, latchMap, latchInit)
}

// Par composes c with other in parallel: the disjoint union of both
// circuits. Input names may be shared (they denote the same external
// signal); an output or latch name present in both circuits is a
// composition error.
func (c *Circuit) Par(other *Circuit) (*Circuit, error) {
	nodeMap := make(map[string]Node, len(c.nodeMap)+len(other.nodeMap))
	for name, root := range c.nodeMap {
		nodeMap[name] = root
	}
	for name, root := range other.nodeMap {
		if _, ok := nodeMap[name]; ok {
			return nil, errors.Errorf("parallel composition: output %q defined on both sides", name)
		}
		nodeMap[name] = root
	}
	latchMap := make(map[string]Node, len(c.latchMap)+len(other.latchMap))
	latchInit := make(map[string]bool, len(c.latchInit)+len(other.latchInit))
	for name, root := range c.latchMap {
		latchMap[name] = root
		latchInit[name] = c.latchInit[name]
	}
	for name, root := range other.latchMap {
		if _, ok := latchMap[name]; ok {
			return nil, errors.Errorf("parallel composition: latch %q defined on both sides", name)
		}
		latchMap[name] = root
		latchInit[name] = other.latchInit[name]
	}
	inputs := make([]string, 0, len(c.inputs)+len(other.inputs))
	for name := range c.inputs {
		inputs = append(inputs, name)
	}
	for name := range other.inputs {
		if _, ok := c.inputs[name]; !ok {
			inputs = append(inputs, name)
		}
	}
	return New(inputs, nodeMap, latchMap, latchInit)
}

// substitute rebuilds the graphs under roots with Input nodes replaced
// per repl. The rebuild walks a topological order of the reachable
// nodes so that every node is rebuilt after its children, without
// recursion. It returns a map from old node identity to rebuilt node.
func substitute(repl map[string]Node, roots []Node) map[uint64]Node {
	g := NewGraph(roots...)
	memo := make(map[uint64]Node, g.Len())
	for _, n := range g.Topsort() {
		switch n := n.(type) {
		case *Input:
			if r, ok := repl[n.Name()]; ok {
				memo[n.ID()] = r
			} else {
				memo[n.ID()] = n
			}
		case *Inverter:
			memo[n.ID()] = Not(memo[n.Operand().ID()])
		case *AndGate:
			memo[n.ID()] = And(memo[n.Left().ID()], memo[n.Right().ID()])
		default:
			memo[n.ID()] = n
		}
	}
	return memo
}

// EvalOrder returns all nodes reachable from the circuit's
// combinational and latch cones in a topological order safe for
// evaluation: every node appears after the nodes it depends on. Latch
// current values (LatchIn nodes) are leaves and therefore always
// precede their dependents.
//
// An incomplete topological order means the structural no-cycle
// invariant has been violated; EvalOrder reports it as an error.
func EvalOrder(c *Circuit) ([]Node, error) {
	g := NewGraph(append(c.Cones(), c.LatchCones()...)...)
	order := g.Topsort()
	if len(order) != g.Len() {
		return nil, errors.Errorf("topological order incomplete: %d of %d nodes (cycle in circuit)", len(order), g.Len())
	}
	return order, nil
}
