// Copyright 2019 The aig Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package gates

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// defaultName derives a deterministic output name from the gate kind
// and the input name tuple. Names are of the form "#kind#hexdigest".
//
// Two calls with the same kind and inputs produce the same name, so
// default names do not guarantee uniqueness across unrelated calls;
// they are a convenience for throwaway circuits only.
func defaultName(kind string, inputs []string) string {
	var d xxhash.Digest
	d.Reset()
	for _, in := range inputs {
		d.WriteString(in)
		d.Write([]byte{0})
	}
	return "#" + kind + "#" + strconv.FormatUint(d.Sum64(), 16)
}

// A Namer mints fresh signal names. Callers wiring several gate
// circuits together thread a Namer through their construction code
// instead of relying on the hash-derived default names; there is
// deliberately no package-level shared instance.
type Namer interface {
	// Fresh returns a new name carrying the given prefix.
	Fresh(prefix string) string
}

// CounterNamer mints names from a monotonic counter. It is fully
// deterministic: a rebuilt circuit gets the same names in the same
// order. The zero value is ready to use.
type CounterNamer struct {
	n uint64
}

// Fresh returns prefix#<n> with n incrementing on each call.
func (c *CounterNamer) Fresh(prefix string) string {
	name := prefix + "#" + strconv.FormatUint(c.n, 10)
	c.n++
	return name
}

// RandomNamer mints universally unique names. Use it when circuits
// built independently (possibly concurrently) are later composed and
// deterministic naming is not required.
type RandomNamer struct{}

// Fresh returns prefix#<uuid>.
func (RandomNamer) Fresh(prefix string) string {
	return prefix + "#" + uuid.NewString()
}
