// Copyright 2019 The aig Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

// Command aigsim builds a small sequential circuit with the gates
// algebra, prints its evaluation schedule and steps it for a few
// cycles.
package main

import (
	"log"

	"github.com/aiglab/aig"
	"github.com/aiglab/aig/gates"
)

func main() {
	log.SetFlags(0)

	// toggle(t+1) = toggle(t) XOR enable(t), observed on "out".
	xor, err := gates.Parity([]string{"state", "enable"}, "next")
	if err != nil {
		log.Fatal(err)
	}
	reg, err := gates.Delay([]string{"next"}, []bool{false}, []string{"toggle"}, []string{"held"})
	if err != nil {
		log.Fatal(err)
	}
	fan, err := gates.Tee(map[string][]string{"held": {"state", "out"}})
	if err != nil {
		log.Fatal(err)
	}
	loop, err := reg.Seq(fan)
	if err != nil {
		log.Fatal(err)
	}
	c, err := xor.Seq(loop)
	if err != nil {
		log.Fatal(err)
	}

	order, err := aig.EvalOrder(c)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("inputs: %v outputs: %v latches: %v", c.Inputs(), c.Outputs(), c.Latches())
	log.Printf("schedule: %d nodes", len(order))

	s, err := aig.NewSimulator(c)
	if err != nil {
		log.Fatal(err)
	}
	for step, enable := range []bool{true, true, false, true} {
		out, err := s.Step(map[string]bool{"enable": enable, "state": stateOf(s)})
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("t=%d enable=%v out=%v", step, enable, out["out"])
	}
}

func stateOf(s *aig.Simulator) bool {
	v, _ := s.State("toggle")
	return v
}
