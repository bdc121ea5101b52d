// Copyright 2019 The aig Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package aig

import (
	"github.com/pkg/errors"
)

// A Simulator steps a circuit through time. Outputs at step t are a
// function of the inputs at step t and the latch state at step t; the
// latch state then advances: state(0) = initial value, state(t+1) =
// next-state function evaluated at step t.
//
// A Simulator holds the only mutable state in this package (the latch
// values); the circuit itself is never modified.
type Simulator struct {
	circ  *Circuit
	order []Node
	state map[string]bool
}

// NewSimulator returns a simulator for the given circuit, with all
// latches at their initial values.
func NewSimulator(c *Circuit) (*Simulator, error) {
	order, err := EvalOrder(c)
	if err != nil {
		return nil, errors.Wrap(err, "cannot schedule circuit")
	}
	s := &Simulator{circ: c, order: order, state: make(map[string]bool)}
	s.Reset()
	return s, nil
}

// Reset puts all latches back to their initial values.
func (s *Simulator) Reset() {
	for _, name := range s.circ.Latches() {
		v, _ := s.circ.LatchInit(name)
		s.state[name] = v
	}
}

// State returns the current value held by the named latch.
func (s *Simulator) State(name string) (bool, bool) {
	v, ok := s.state[name]
	return v, ok
}

// Step evaluates the circuit for one time step. inputs must provide a
// value for every declared input. It returns the output values for the
// step and advances the latch state.
func (s *Simulator) Step(inputs map[string]bool) (map[string]bool, error) {
	vals := make(map[uint64]bool, len(s.order))
	for _, n := range s.order {
		switch n := n.(type) {
		case *Input:
			v, ok := inputs[n.Name()]
			if !ok {
				return nil, errors.Errorf("no value for input %q", n.Name())
			}
			vals[n.ID()] = v
		case *LatchIn:
			vals[n.ID()] = s.state[n.Name()]
		case *ConstFalse:
			vals[n.ID()] = false
		case *Inverter:
			vals[n.ID()] = !vals[n.Operand().ID()]
		case *AndGate:
			vals[n.ID()] = vals[n.Left().ID()] && vals[n.Right().ID()]
		default:
			return nil, errors.Errorf("unknown node variant %T", n)
		}
	}

	outs := make(map[string]bool, len(s.circ.nodeMap))
	for name, root := range s.circ.nodeMap {
		outs[name] = vals[root.ID()]
	}
	next := make(map[string]bool, len(s.circ.latchMap))
	for name, root := range s.circ.latchMap {
		next[name] = vals[root.ID()]
	}
	s.state = next
	return outs, nil
}
