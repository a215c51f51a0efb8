// Package neighborhood enumerates the cells around a coordinate of a plane
// and resolves them to flattened row addresses.
package neighborhood

import (
	"fmt"

	"github.com/san-kum/bitplane/internal/plane"
)

// Offset is a relative coordinate, one component per plane dimension.
type Offset []int

// Address is a flattened cell location: a row index and a bit offset.
type Address struct {
	Row int
	Bit int
}

// Moore returns the 3^dims - 1 offsets of the Moore neighborhood, ordered
// lexicographically from (-1, ..., -1).
func Moore(dims int) []Offset {
	if dims <= 0 {
		return nil
	}
	total := 1
	for i := 0; i < dims; i++ {
		total *= 3
	}
	offsets := make([]Offset, 0, total-1)
	for n := 0; n < total; n++ {
		off := make(Offset, dims)
		zero := true
		v := n
		for i := dims - 1; i >= 0; i-- {
			off[i] = v%3 - 1
			v /= 3
			if off[i] != 0 {
				zero = false
			}
		}
		if !zero {
			offsets = append(offsets, off)
		}
	}
	return offsets
}

// VonNeumann returns the 2*dims offsets at Manhattan distance one.
func VonNeumann(dims int) []Offset {
	offsets := make([]Offset, 0, 2*dims)
	for i := 0; i < dims; i++ {
		for _, d := range []int{-1, 1} {
			off := make(Offset, dims)
			off[i] = d
			offsets = append(offsets, off)
		}
	}
	return offsets
}

// Neighborhood is a set of offsets applied with toroidal wrapping.
type Neighborhood struct {
	Offsets []Offset
}

func New(offsets []Offset) *Neighborhood {
	return &Neighborhood{Offsets: offsets}
}

// Addresses returns the flattened address of every neighbor of coord in p.
// Neighbors past an edge wrap to the opposite side.
func (n *Neighborhood) Addresses(p *plane.Plane, coord []int) ([]Address, error) {
	shape := p.Shape()
	addrs := make([]Address, 0, len(n.Offsets))
	abs := make([]int, len(coord))
	for _, off := range n.Offsets {
		if len(off) != len(shape) {
			return nil, fmt.Errorf("neighborhood: offset %v does not match shape %v", off, shape)
		}
		for i := range coord {
			abs[i] = wrap(coord[i]+off[i], shape[i])
		}
		row, bit, err := p.Flatten(abs...)
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, Address{Row: row, Bit: bit})
	}
	return addrs, nil
}

// Count sums the bits at precomputed addresses.
func Count(p *plane.Plane, addrs []Address) (int, error) {
	total := 0
	for _, a := range addrs {
		row, err := p.Row(a.Row)
		if err != nil {
			return 0, err
		}
		if row.Test(a.Bit) {
			total++
		}
	}
	return total, nil
}

func wrap(v, n int) int {
	if n == 0 {
		return 0
	}
	return (v%n + n) % n
}
