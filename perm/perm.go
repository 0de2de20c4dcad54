// Package perm builds the permutation tables that drive gradient selection
// in the noise kernels.
package perm

import "math"

// Table holds a pseudo-random permutation of the values 0-255, doubled to
// 512 entries so kernel lookups with small positive offsets never wrap, plus
// the derived mod-12 table used for 2D/3D gradient indexing.
//
// A Table is immutable after Build returns and is safe for concurrent reads.
type Table struct {
	Perm      [512]uint8
	PermMod12 [512]uint8
}

// Build constructs a Table using a Fisher-Yates shuffle driven by random,
// which must return values in [0, 1). Behavior is undefined for sources that
// return values outside that range; the hot path never re-validates.
//
// Given a deterministic source, the resulting table is bit-identical across
// runs.
func Build(random func() float64) *Table {
	var p [256]uint8
	for i := range p {
		p[i] = uint8(i)
	}
	for i := 255; i > 0; i-- {
		n := int(math.Floor(float64(i+1) * random()))
		p[i], p[n] = p[n], p[i]
	}

	t := &Table{}
	for i := 0; i < 512; i++ {
		t.Perm[i] = p[i&255]
		t.PermMod12[i] = t.Perm[i] % 12
	}
	return t
}
