// Copyright 2019 The aig Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package gates_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aiglab/aig/gates"
)

func TestCounterNamer(t *testing.T) {
	var n gates.CounterNamer
	require.Equal(t, "w#0", n.Fresh("w"))
	require.Equal(t, "w#1", n.Fresh("w"))
	require.Equal(t, "v#2", n.Fresh("v"))

	// a fresh namer replays the same sequence.
	var m gates.CounterNamer
	require.Equal(t, "w#0", m.Fresh("w"))
}

func TestRandomNamer(t *testing.T) {
	var n gates.RandomNamer
	a, b := n.Fresh("w"), n.Fresh("w")
	require.NotEqual(t, a, b)
	require.Contains(t, a, "w#")
}

func TestNamerWiresGates(t *testing.T) {
	// typical use: mint unique internal wire names when chaining gates.
	var n gates.CounterNamer
	mid := n.Fresh("and")
	conj, err := gates.And([]string{"a", "b"}, mid)
	require.NoError(t, err)
	inv, err := gates.BitFlipper([]string{mid}, []string{"nand"})
	require.NoError(t, err)
	c, err := conj.Seq(inv)
	require.NoError(t, err)
	require.Equal(t, []string{"nand"}, c.Outputs())
}
