// Copyright 2019 The aig Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package aig

// A Graph is the dependency graph of all nodes reachable from a set of
// roots: for every reachable node, its deduplicated set of immediate
// children. Construction and all traversals are iterative with
// explicit stacks, so circuit depth cannot overflow the call stack.
//
type Graph struct {
	nodes map[uint64]Node
	deps  map[uint64][]uint64
	order []uint64 // first-visit order, keeps traversals deterministic
}

// NewGraph builds the dependency graph reachable from the given roots.
func NewGraph(roots ...Node) *Graph {
	g := &Graph{
		nodes: make(map[uint64]Node),
		deps:  make(map[uint64][]uint64),
	}
	stack := make([]Node, len(roots))
	copy(stack, roots)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		id := n.ID()
		if _, ok := g.nodes[id]; ok {
			continue
		}
		g.nodes[id] = n
		g.order = append(g.order, id)
		var ds []uint64
		for _, c := range n.Children() {
			cid := c.ID()
			if !containsID(ds, cid) {
				ds = append(ds, cid)
			}
			// re-pushing a visited child is harmless, the visited
			// check above short-circuits it.
			stack = append(stack, c)
		}
		g.deps[id] = ds
	}
	return g
}

func containsID(ids []uint64, id uint64) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

// Len returns the number of reachable nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Node returns the node with the given identity, or nil if it is not
// part of the graph.
func (g *Graph) Node(id uint64) Node { return g.nodes[id] }

// Deps returns the identities of the immediate children of the node
// with the given identity, deduplicated.
func (g *Graph) Deps(id uint64) []uint64 { return g.deps[id] }

// IDs returns all node identities in first-visit order.
func (g *Graph) IDs() []uint64 {
	ids := make([]uint64, len(g.order))
	copy(ids, g.order)
	return ids
}

// DFS returns the reachable nodes in children-first order: a node
// appears only after all of its children. Shared nodes appear exactly
// once. This is the order a simulator needs to know operand values
// before combining them.
func (g *Graph) DFS() []Node {
	out := make([]Node, 0, len(g.nodes))
	emitted := make(map[uint64]bool, len(g.nodes))
	stack := make([]uint64, len(g.order))
	copy(stack, g.order)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if emitted[id] {
			continue
		}
		var pending []uint64
		for _, c := range g.deps[id] {
			if !emitted[c] {
				pending = append(pending, c)
			}
		}
		if len(pending) == 0 {
			out = append(out, g.nodes[id])
			emitted[id] = true
			continue
		}
		// revisit after the pending children.
		stack = append(stack, id)
		stack = append(stack, pending...)
	}
	return out
}

// Topsort returns the reachable nodes in topological order using
// Kahn's algorithm: every node appears after all of its children.
// Ordering among nodes that become ready at the same step is FIFO and
// otherwise unspecified.
//
// For an acyclic graph the result contains every node exactly once.
// A shorter result means a cycle, which the build-only-from-existing-
// nodes construction is supposed to make impossible; callers that care
// must compare len(result) with Len.
func (g *Graph) Topsort() []Node {
	// transposed graph: child -> parents
	parents := make(map[uint64][]uint64, len(g.nodes))
	inDeg := make(map[uint64]int, len(g.nodes))
	for _, id := range g.order {
		inDeg[id] = len(g.deps[id])
		for _, c := range g.deps[id] {
			parents[c] = append(parents[c], id)
		}
	}
	queue := make([]uint64, 0, len(g.nodes))
	for _, id := range g.order {
		if inDeg[id] == 0 {
			queue = append(queue, id)
		}
	}
	out := make([]Node, 0, len(g.nodes))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		out = append(out, g.nodes[id])
		for _, p := range parents[id] {
			inDeg[p]--
			if inDeg[p] == 0 {
				queue = append(queue, p)
			}
		}
	}
	return out
}
