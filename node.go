// Copyright 2019 The aig Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package aig

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// A Node is a vertex of an And-Inverter Graph. Concrete types are
// Input, LatchIn, ConstFalse, Inverter and AndGate.
//
// Nodes are immutable and carry a content-derived identity: two
// structurally identical sub-expressions always have the same ID, no
// matter where or when they were built. Every traversal in this
// package keys its visited sets on that identity, which is what makes
// shared sub-circuits cheap. The identity is a 64-bit xxhash digest of
// the node's variant and operands; a digest collision between two
// distinct nodes is theoretically possible but is not handled.
//
type Node interface {
	// ID returns the node's content identity.
	ID() uint64
	// Children returns the node's immediate operands, in operand
	// order. Leaf nodes return nil.
	Children() []Node
}

// Variant tags fed to the identity digest. One byte each, all distinct.
const (
	tagInput byte = iota + 1
	tagLatchIn
	tagConstFalse
	tagInverter
	tagAndGate
)

func hashName(tag byte, name string) uint64 {
	var d xxhash.Digest
	d.Reset()
	d.Write([]byte{tag})
	d.WriteString(name)
	return d.Sum64()
}

func hashChildren(tag byte, ids ...uint64) uint64 {
	var buf [17]byte
	buf[0] = tag
	for i, id := range ids {
		binary.LittleEndian.PutUint64(buf[1+8*i:], id)
	}
	return xxhash.Sum64(buf[:1+8*len(ids)])
}

// Input is a free external signal.
type Input struct {
	name string
	id   uint64
}

// NewInput returns the input node for the given signal name.
func NewInput(name string) *Input {
	return &Input{name: name, id: hashName(tagInput, name)}
}

// Name returns the input's signal name.
func (n *Input) Name() string { return n.name }

func (n *Input) ID() uint64       { return n.id }
func (n *Input) Children() []Node { return nil }

// LatchIn is the current value held by a named latch.
type LatchIn struct {
	name string
	id   uint64
}

// NewLatchIn returns the latch-output node for the given latch name.
func NewLatchIn(name string) *LatchIn {
	return &LatchIn{name: name, id: hashName(tagLatchIn, name)}
}

// Name returns the latch name.
func (n *LatchIn) Name() string { return n.name }

func (n *LatchIn) ID() uint64       { return n.id }
func (n *LatchIn) Children() []Node { return nil }

// ConstFalse is the Boolean constant 0. Use False to obtain it and
// Not(False()) for the constant 1.
type ConstFalse struct{}

var constFalse = &ConstFalse{}
var constFalseID = hashName(tagConstFalse, "")

// False returns the constant-false node.
func False() *ConstFalse { return constFalse }

func (n *ConstFalse) ID() uint64       { return constFalseID }
func (n *ConstFalse) Children() []Node { return nil }

// Inverter is the logical NOT of its operand.
type Inverter struct {
	operand Node
	id      uint64
}

// Not returns the inverter node for the given operand.
func Not(operand Node) *Inverter {
	return &Inverter{operand: operand, id: hashChildren(tagInverter, operand.ID())}
}

// Operand returns the inverted node.
func (n *Inverter) Operand() Node { return n.operand }

func (n *Inverter) ID() uint64       { return n.id }
func (n *Inverter) Children() []Node { return []Node{n.operand} }

// AndGate is the logical AND of its two operands.
type AndGate struct {
	left, right Node
	id          uint64
}

// And returns the AND node over the two operands. No simplification is
// performed: And(x, x) is a gate, not x.
func And(left, right Node) *AndGate {
	return &AndGate{
		left:  left,
		right: right,
		id:    hashChildren(tagAndGate, left.ID(), right.ID()),
	}
}

// Left returns the first operand.
func (n *AndGate) Left() Node { return n.left }

// Right returns the second operand.
func (n *AndGate) Right() Node { return n.right }

func (n *AndGate) ID() uint64       { return n.id }
func (n *AndGate) Children() []Node { return []Node{n.left, n.right} }
