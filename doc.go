// Copyright 2019 The aig Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package aig builds and schedules And-Inverter Graphs: Boolean circuits
made of AND gates and inverters, plus named inputs, named outputs and
latches (one-step delay elements) for sequential logic.

This package provides the circuit container (Circuit), the immutable
content-identified node representation (Node and its variants), circuit
composition (Seq, Par), the dependency graph over reachable nodes
(Graph), children-first and topological traversals (DFS, Topsort,
EvalOrder) and a straightforward single-stepping simulator (Simulator).

Higher level gates (OR, XOR, multiplexers, registers, ...) are built on
top of these primitives by the gates subpackage.
*/
package aig
