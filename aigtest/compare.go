// Copyright 2019 The aig Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

// Package aigtest provides utility functions for testing circuits.
package aigtest

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/aiglab/aig"
)

// exhaustive input-enumeration cap; beyond this we sample randomly.
const maxExhaustiveBits = 12

// CompareCombinational takes two latch-free circuits with the same
// input/output interface and fails the test if they disagree on any
// input assignment. Assignments are enumerated exhaustively up to 12
// inputs and sampled randomly beyond that.
func CompareCombinational(t *testing.T, c1, c2 *aig.Circuit) {
	t.Helper()

	if len(c1.Latches()) != 0 || len(c2.Latches()) != 0 {
		t.Fatal("CompareCombinational: circuits must be latch-free")
	}
	in1, in2 := c1.Inputs(), c2.Inputs()
	if !sameNames(in1, in2) {
		t.Fatalf("input interfaces differ: %v != %v", in1, in2)
	}
	out1, out2 := c1.Outputs(), c2.Outputs()
	if !sameNames(out1, out2) {
		t.Fatalf("output interfaces differ: %v != %v", out1, out2)
	}

	s1, err := aig.NewSimulator(c1)
	if err != nil {
		t.Fatal(err)
	}
	s2, err := aig.NewSimulator(c2)
	if err != nil {
		t.Fatal(err)
	}

	check := func(inputs map[string]bool) {
		v1, err := s1.Step(inputs)
		if err != nil {
			t.Fatal(err)
		}
		v2, err := s2.Step(inputs)
		if err != nil {
			t.Fatal(err)
		}
		for _, o := range out1 {
			if v1[o] != v2[o] {
				t.Fatalf("\nfor %s\nexpected %s=%v, got %v", assignString(in1, inputs), o, v1[o], v2[o])
			}
		}
	}

	if len(in1) <= maxExhaustiveBits {
		for bits := 0; bits < 1<<uint(len(in1)); bits++ {
			inputs := make(map[string]bool, len(in1))
			for i, name := range in1 {
				inputs[name] = bits&(1<<uint(i)) != 0
			}
			check(inputs)
		}
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for iter := 0; iter < 1<<maxExhaustiveBits; iter++ {
		inputs := make(map[string]bool, len(in1))
		for _, name := range in1 {
			inputs[name] = rng.Int63()&(1<<62) != 0
		}
		check(inputs)
	}
}

func sameNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func assignString(names []string, inputs map[string]bool) string {
	var b strings.Builder
	for _, n := range names {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(n)
		b.WriteRune('=')
		if inputs[n] {
			b.WriteString("1")
		} else {
			b.WriteString("0")
		}
	}
	return b.String()
}
