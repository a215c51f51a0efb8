package plane

// Dense is an expanded, one-bool-per-cell copy of a plane in row-major order.
type Dense struct {
	Shape Shape
	Cells []bool
}

// Materialize expands the plane into a Dense shaped like Shape(). It
// allocates on every call and is meant for rendering, not stepping.
func (p *Plane) Materialize() Dense {
	d := Dense{Shape: p.shape.Clone(), Cells: make([]bool, 0, p.shape.Size())}
	p.eachRow(func(_ int, r *Row) {
		for i := 0; i < r.width; i++ {
			d.Cells = append(d.Cells, r.bits.Test(uint(i)))
		}
	})
	return d
}

// Index returns the position of coord in Cells, or -1 if it is outside the shape.
func (d Dense) Index(coord ...int) int {
	if len(coord) != len(d.Shape) || len(coord) == 0 {
		return -1
	}
	idx := 0
	for i, c := range coord {
		if c < 0 || c >= d.Shape[i] {
			return -1
		}
		idx = idx*d.Shape[i] + c
	}
	return idx
}

// At returns the cell at coord; coordinates outside the shape read as false.
func (d Dense) At(coord ...int) bool {
	i := d.Index(coord...)
	return i >= 0 && d.Cells[i]
}
