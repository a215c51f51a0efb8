package plane

import "fmt"

// Plane is an N-dimensional grid of bits stored as rows of width Shape().Width().
//
// A Plane either owns its rows (built with New, FromRows or Clone) or is a
// view returned by View/Get that shares rows with the plane it came from.
// A view must not be used once the owning plane has been released.
type Plane struct {
	shape   Shape
	rows    []*Row
	strides []int
	base    int
}

// New allocates a zero-filled plane. A one-dimensional shape holds a single
// row; an empty shape holds nothing.
func New(shape ...int) (*Plane, error) {
	s := Shape(shape).Clone()
	if err := s.validate(); err != nil {
		return nil, err
	}
	rows := make([]*Row, s.Rows())
	for i := range rows {
		rows[i] = NewRow(s.Width())
	}
	return &Plane{
		shape:   s,
		rows:    rows,
		strides: contiguous(s.Outer()),
	}, nil
}

// FromRows builds a plane over caller-supplied rows without copying them.
// The rows are taken in row-major order of the outer dimensions.
func FromRows(shape Shape, rows []*Row) (*Plane, error) {
	s := shape.Clone()
	if err := s.validate(); err != nil {
		return nil, err
	}
	if len(rows) != s.Rows() {
		return nil, fmt.Errorf("%w: shape %v needs %d rows, got %d", ErrShapeMismatch, s, s.Rows(), len(rows))
	}
	for i, r := range rows {
		if r == nil {
			return nil, fmt.Errorf("%w: row %d is nil", ErrShapeMismatch, i)
		}
		if r.Len() != s.Width() {
			return nil, fmt.Errorf("%w: row %d has width %d, shape %v needs %d", ErrShapeMismatch, i, r.Len(), s, s.Width())
		}
	}
	return &Plane{
		shape:   s,
		rows:    rows,
		strides: contiguous(s.Outer()),
	}, nil
}

// Shape returns a copy of the logical shape.
func (p *Plane) Shape() Shape { return p.shape.Clone() }

// Width returns the bit width N of every row.
func (p *Plane) Width() int { return p.shape.Width() }

// Dims returns the number of logical dimensions.
func (p *Plane) Dims() int { return len(p.shape) }

// Rows returns the number of rows addressed by the plane.
func (p *Plane) Rows() int { return p.shape.Rows() }

// Bit returns the bit at a full coordinate.
func (p *Plane) Bit(coord ...int) (Bit, error) {
	r, off, err := p.locate(coord)
	if err != nil {
		return 0, err
	}
	return r.At(off)
}

// Set writes the bit at a full coordinate.
func (p *Plane) Set(coord []int, b Bit) error {
	r, off, err := p.locate(coord)
	if err != nil {
		return err
	}
	r.bits.SetTo(uint(off), b.Bool())
	return nil
}

// Bits reads several offsets from a one-dimensional plane, in order.
// Duplicated offsets are returned once per occurrence.
func (p *Plane) Bits(offsets ...int) ([]Bit, error) {
	if len(p.shape) != 1 {
		return nil, fmt.Errorf("%w: offset lists need a one-dimensional plane, have %v", ErrIndexOutOfBounds, p.shape)
	}
	r := p.rows[p.base]
	out := make([]Bit, len(offsets))
	for i, off := range offsets {
		if off < 0 || off >= p.Width() {
			return nil, outOfBounds([]int{off}, p.shape, 0)
		}
		out[i] = BitOf(r.bits.Test(uint(off)))
	}
	return out, nil
}

// Fill sets every bit addressed by the plane to b.
func (p *Plane) Fill(b Bit) {
	p.eachRow(func(_ int, r *Row) { r.Fill(b) })
}

// Population returns the number of set bits.
func (p *Plane) Population() int {
	n := 0
	p.eachRow(func(_ int, r *Row) { n += r.Count() })
	return n
}

// Flatten converts a full coordinate into the row-major index of its row
// among the outer dimensions, plus the bit offset inside that row.
func (p *Plane) Flatten(coord ...int) (outer, offset int, err error) {
	if err := p.checkFull(coord); err != nil {
		return 0, 0, err
	}
	prod := 1
	for i := len(coord) - 2; i >= 0; i-- {
		outer += coord[i] * prod
		prod *= p.shape[i]
	}
	return outer, coord[len(coord)-1], nil
}

// Unflatten is the inverse of Flatten.
func (p *Plane) Unflatten(outer, offset int) ([]int, error) {
	if len(p.shape) == 0 {
		return nil, outOfBounds([]int{outer, offset}, p.shape, AxisArity)
	}
	if outer < 0 || outer >= p.Rows() {
		return nil, fmt.Errorf("%w: outer index %d outside %d rows", ErrIndexOutOfBounds, outer, p.Rows())
	}
	if offset < 0 || offset >= p.Width() {
		return nil, outOfBounds([]int{outer, offset}, p.shape, len(p.shape)-1)
	}
	coord := make([]int, len(p.shape))
	coord[len(coord)-1] = offset
	for i := len(p.shape) - 2; i >= 0; i-- {
		coord[i] = outer % p.shape[i]
		outer /= p.shape[i]
	}
	return coord, nil
}

// Row returns the row at a flattened outer index. The row is shared.
func (p *Plane) Row(outer int) (*Row, error) {
	if outer < 0 || outer >= p.Rows() {
		return nil, fmt.Errorf("%w: outer index %d outside %d rows", ErrIndexOutOfBounds, outer, p.Rows())
	}
	pos := p.base
	for i := len(p.strides) - 1; i >= 0; i-- {
		d := p.shape[i]
		pos += (outer % d) * p.strides[i]
		outer /= d
	}
	return p.rows[pos], nil
}

// Clone returns a plane with the same shape and bits and its own rows.
func (p *Plane) Clone() *Plane {
	rows := make([]*Row, 0, p.Rows())
	p.eachRow(func(_ int, r *Row) { rows = append(rows, r.Clone()) })
	return &Plane{
		shape:   p.shape.Clone(),
		rows:    rows,
		strides: contiguous(p.shape.Outer()),
	}
}

// Equal reports whether two planes have the same shape and bits.
func (p *Plane) Equal(other *Plane) bool {
	if other == nil || !p.shape.Equal(other.shape) {
		return false
	}
	equal := true
	p.eachRow(func(i int, r *Row) {
		if !equal {
			return
		}
		o, _ := other.Row(i)
		equal = r.Equal(o)
	})
	return equal
}

func (p *Plane) String() string {
	return fmt.Sprintf("Plane%v", p.shape)
}

func (p *Plane) checkFull(coord []int) error {
	if len(p.shape) == 0 || len(coord) != len(p.shape) {
		return outOfBounds(coord, p.shape, AxisArity)
	}
	for i, c := range coord {
		if c < 0 || c >= p.shape[i] {
			return outOfBounds(coord, p.shape, i)
		}
	}
	return nil
}

func (p *Plane) locate(coord []int) (*Row, int, error) {
	if err := p.checkFull(coord); err != nil {
		return nil, 0, err
	}
	pos := p.base
	for i, s := range p.strides {
		pos += coord[i] * s
	}
	return p.rows[pos], coord[len(coord)-1], nil
}

// eachRow visits the rows of the plane in row-major order of its outer dims.
func (p *Plane) eachRow(fn func(i int, r *Row)) {
	n := p.Rows()
	if n == 0 {
		return
	}
	outer := p.shape.Outer()
	idx := make([]int, len(outer))
	pos := p.base
	for i := 0; i < n; i++ {
		fn(i, p.rows[pos])
		for ax := len(idx) - 1; ax >= 0; ax-- {
			idx[ax]++
			pos += p.strides[ax]
			if idx[ax] < outer[ax] {
				break
			}
			pos -= idx[ax] * p.strides[ax]
			idx[ax] = 0
		}
	}
}
