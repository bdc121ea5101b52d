// Copyright 2019 The aig Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

// Package gates is the gate construction algebra: combinators that
// build higher level Boolean and sequential operators (OR, XOR,
// multiplexers, registers, fan-out, constants, ...) purely out of AND
// and NOT nodes plus circuit composition.
//
// Every combinator returns a fresh immutable circuit or an error;
// arity and naming preconditions are checked up front and never
// produce a partial circuit.
package gates

import (
	"github.com/pkg/errors"

	"github.com/aiglab/aig"
)

// mapTree reduces nodes to a single node by repeated pairwise
// combination: chunk the frontier into pairs, replace each pair with
// f(pair), repeat. The result is a balanced binary tree. A single node
// is returned unchanged.
func mapTree(nodes []aig.Node, f func(a, b aig.Node) aig.Node) aig.Node {
	for len(nodes) > 1 {
		next := make([]aig.Node, 0, (len(nodes)+1)/2)
		for i := 0; i < len(nodes); i += 2 {
			if i+1 < len(nodes) {
				next = append(next, f(nodes[i], nodes[i+1]))
			} else {
				next = append(next, nodes[i])
			}
		}
		nodes = next
	}
	return nodes[0]
}

func inputNodes(inputs []string) []aig.Node {
	nodes := make([]aig.Node, len(inputs))
	for i, name := range inputs {
		nodes[i] = aig.NewInput(name)
	}
	return nodes
}

// And returns a circuit computing the conjunction of the named inputs
// on the named output, as a balanced tree of binary AND gates. A
// single input is forwarded unchanged, without a gate.
//
// If output is empty a name is derived from a hash of the input name
// tuple. Such names are deterministic but not guaranteed collision
// free across unrelated calls; callers that compose circuits should
// supply explicit output names.
func And(inputs []string, output string) (*aig.Circuit, error) {
	if len(inputs) == 0 {
		return nil, errors.New("and: no inputs")
	}
	if output == "" {
		output = defaultName("and", inputs)
	}
	root := mapTree(inputNodes(inputs), func(a, b aig.Node) aig.Node {
		return aig.And(a, b)
	})
	return aig.New(inputs, map[string]aig.Node{output: root}, nil, nil)
}

// Or returns a circuit computing the disjunction of the named inputs
// on the named output. It is built by De Morgan's law: invert every
// input, AND them, invert the result.
func Or(inputs []string, output string) (*aig.Circuit, error) {
	if len(inputs) == 0 {
		return nil, errors.New("or: no inputs")
	}
	if output == "" {
		output = defaultName("or", inputs)
	}
	flipIn, err := BitFlipper(inputs, nil)
	if err != nil {
		return nil, err
	}
	conj, err := And(inputs, output)
	if err != nil {
		return nil, err
	}
	flipOut, err := BitFlipper([]string{output}, nil)
	if err != nil {
		return nil, err
	}
	c, err := flipIn.Seq(conj)
	if err != nil {
		return nil, err
	}
	return c.Seq(flipOut)
}

// Parity returns a circuit computing the XOR reduction (parity) of the
// named inputs on the named output, reduced over the same balanced
// tree strategy as And. A single input is forwarded unchanged.
//
// XOR(a, b) is built as AND(NAND(a, b), NAND(NOT a, NOT b)): not both
// true, and not both false.
func Parity(inputs []string, output string) (*aig.Circuit, error) {
	if len(inputs) == 0 {
		return nil, errors.New("parity: no inputs")
	}
	if output == "" {
		output = defaultName("parity", inputs)
	}
	root := mapTree(inputNodes(inputs), func(a, b aig.Node) aig.Node {
		return aig.And(
			aig.Not(aig.And(a, b)),
			aig.Not(aig.And(aig.Not(a), aig.Not(b))),
		)
	})
	return aig.New(inputs, map[string]aig.Node{output: root}, nil, nil)
}

// iteBit builds a single bit multiplexer:
//
//	output = (NOT test OR in1) AND (test OR in0)
//
// so output follows in1 when test is 1 and in0 when test is 0.
func iteBit(test, in1, in0, output string) (*aig.Circuit, error) {
	// internal wire names, hashed so they cannot collide with the
	// caller's signal names.
	trueOut := defaultName("ite_true", []string{test, in1, in0, output})
	falseOut := defaultName("ite_false", []string{test, in1, in0, output})

	flip, err := BitFlipper([]string{test}, nil)
	if err != nil {
		return nil, err
	}
	or1, err := Or([]string{test, in1}, trueOut)
	if err != nil {
		return nil, err
	}
	trueBranch, err := flip.Seq(or1)
	if err != nil {
		return nil, err
	}
	falseBranch, err := Or([]string{test, in0}, falseOut)
	if err != nil {
		return nil, err
	}
	branches, err := trueBranch.Par(falseBranch)
	if err != nil {
		return nil, err
	}
	conj, err := And([]string{trueOut, falseOut}, output)
	if err != nil {
		return nil, err
	}
	return branches.Seq(conj)
}

// ITE returns a bit-parallel multiplexer: for every aligned triple
// (inputs1[i], inputs0[i], outputs[i]) the output follows inputs1[i]
// when test is 1 and inputs0[i] when test is 0.
//
// The three input slices must have equal non-zero length, the names in
// {test} ∪ inputs1 ∪ inputs0 must be pairwise distinct and the output
// names must be pairwise distinct.
func ITE(test string, inputs1, inputs0, outputs []string) (*aig.Circuit, error) {
	if len(inputs1) == 0 {
		return nil, errors.New("ite: no inputs")
	}
	if len(inputs1) != len(inputs0) || len(inputs1) != len(outputs) {
		return nil, errors.Errorf("ite: arity mismatch: %d/%d inputs, %d outputs",
			len(inputs1), len(inputs0), len(outputs))
	}
	seen := map[string]bool{test: true}
	for _, name := range append(append([]string{}, inputs1...), inputs0...) {
		if seen[name] {
			return nil, errors.Errorf("ite: signal name %q is not distinct", name)
		}
		seen[name] = true
	}
	outSeen := make(map[string]bool, len(outputs))
	for _, name := range outputs {
		if outSeen[name] {
			return nil, errors.Errorf("ite: output name %q is not distinct", name)
		}
		outSeen[name] = true
	}

	c, err := iteBit(test, inputs1[0], inputs0[0], outputs[0])
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(inputs1); i++ {
		bit, err := iteBit(test, inputs1[i], inputs0[i], outputs[i])
		if err != nil {
			return nil, err
		}
		if c, err = c.Par(bit); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Identity returns a circuit forwarding each input unchanged to the
// matching output. A nil outputs slice reuses the input names.
func Identity(inputs, outputs []string) (*aig.Circuit, error) {
	if outputs == nil {
		outputs = inputs
	}
	if len(outputs) != len(inputs) {
		return nil, errors.Errorf("identity: %d inputs, %d outputs", len(inputs), len(outputs))
	}
	nodeMap := make(map[string]aig.Node, len(inputs))
	for i, in := range inputs {
		nodeMap[outputs[i]] = aig.NewInput(in)
	}
	return aig.New(inputs, nodeMap, nil, nil)
}

// BitFlipper is Identity with an inverter on every signal.
func BitFlipper(inputs, outputs []string) (*aig.Circuit, error) {
	if outputs == nil {
		outputs = inputs
	}
	if len(outputs) != len(inputs) {
		return nil, errors.Errorf("bit flipper: %d inputs, %d outputs", len(inputs), len(outputs))
	}
	nodeMap := make(map[string]aig.Node, len(inputs))
	for i, in := range inputs {
		nodeMap[outputs[i]] = aig.Not(aig.NewInput(in))
	}
	return aig.New(inputs, nodeMap, nil, nil)
}

// Source returns a circuit with no inputs whose outputs are wired to
// the requested constants.
func Source(outputs map[string]bool) (*aig.Circuit, error) {
	nodeMap := make(map[string]aig.Node, len(outputs))
	for name, v := range outputs {
		if v {
			nodeMap[name] = aig.Not(aig.False())
		} else {
			nodeMap[name] = aig.False()
		}
	}
	return aig.New(nil, nodeMap, nil, nil)
}

// Sink returns a circuit accepting the named inputs and producing no
// outputs. Sequentially composing a circuit with a Sink documents that
// the matched signals are deliberately discarded.
func Sink(inputs []string) (*aig.Circuit, error) {
	return aig.New(inputs, nil, nil, nil)
}

// Tee returns a fan-out circuit: each input name is broadcast,
// renamed, to every name in its target set. A target name used twice
// is an error. An empty map yields the empty circuit.
func Tee(outputs map[string][]string) (*aig.Circuit, error) {
	if len(outputs) == 0 {
		return Empty(), nil
	}
	inputs := make([]string, 0, len(outputs))
	nodeMap := make(map[string]aig.Node)
	for name, targets := range outputs {
		inputs = append(inputs, name)
		for _, target := range targets {
			if _, ok := nodeMap[target]; ok {
				return nil, errors.Errorf("tee: target name %q used twice", target)
			}
			nodeMap[target] = aig.NewInput(name)
		}
	}
	return aig.New(inputs, nodeMap, nil, nil)
}

// Delay returns a bank of one step delay registers. Each output
// exposes the current value of its latch and each latch's next value
// is the matching input: output(t) = state(t), state(0) = initial,
// state(t+1) = input(t).
//
// Nil latches or outputs default to the input names. All four slices
// must have the same length.
func Delay(inputs []string, initials []bool, latches, outputs []string) (*aig.Circuit, error) {
	if latches == nil {
		latches = inputs
	}
	if outputs == nil {
		outputs = inputs
	}
	if len(inputs) != len(initials) || len(inputs) != len(latches) || len(inputs) != len(outputs) {
		return nil, errors.Errorf("delay: arity mismatch: %d inputs, %d initials, %d latches, %d outputs",
			len(inputs), len(initials), len(latches), len(outputs))
	}
	nodeMap := make(map[string]aig.Node, len(inputs))
	latchMap := make(map[string]aig.Node, len(inputs))
	latchInit := make(map[string]bool, len(inputs))
	for i, in := range inputs {
		latchMap[latches[i]] = aig.NewInput(in)
		latchInit[latches[i]] = initials[i]
		nodeMap[outputs[i]] = aig.NewLatchIn(latches[i])
	}
	return aig.New(inputs, nodeMap, latchMap, latchInit)
}

// Empty returns the empty circuit: no inputs, no outputs, no latches.
func Empty() *aig.Circuit {
	c, err := aig.New(nil, nil, nil, nil)
	if err != nil {
		// the empty circuit cannot fail validation.
		panic(err)
	}
	return c
}
