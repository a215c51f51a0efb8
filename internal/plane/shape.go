package plane

import (
	"fmt"
	"strconv"
	"strings"
)

// Shape is the logical shape of a plane. The last element is the bit width
// of every row; the elements before it index the outer rows.
type Shape []int

func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	copy(c, s)
	return c
}

// Width returns the row bit width, or 0 for an empty shape.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}

// Outer returns the outer dimensions, shape[:len-1].
func (s Shape) Outer() []int {
	if len(s) == 0 {
		return nil
	}
	return s[:len(s)-1]
}

// Rows returns how many bit rows a plane of this shape holds.
func (s Shape) Rows() int {
	switch len(s) {
	case 0:
		return 0
	case 1:
		return 1
	}
	return product(s.Outer())
}

// Size returns the total number of cells.
func (s Shape) Size() int {
	if len(s) == 0 {
		return 0
	}
	return product(s)
}

func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

func (s Shape) validate() error {
	for i, d := range s {
		if d < 0 {
			return fmt.Errorf("%w: dimension %d is negative (%d)", ErrShapeMismatch, i, d)
		}
	}
	return nil
}

func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = strconv.Itoa(d)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// ParseShape reads a comma or x separated list of dimensions, e.g. "64,64" or "8x8x16".
func ParseShape(text string) (Shape, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Shape{}, nil
	}
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == 'x' || r == ' '
	})
	shape := make(Shape, 0, len(fields))
	for _, f := range fields {
		d, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid dimension %q: %w", f, err)
		}
		shape = append(shape, d)
	}
	if err := shape.validate(); err != nil {
		return nil, err
	}
	return shape, nil
}

func product(dims []int) int {
	p := 1
	for _, d := range dims {
		p *= d
	}
	return p
}

// contiguous returns row-major strides for the given outer dims.
func contiguous(dims []int) []int {
	strides := make([]int, len(dims))
	step := 1
	for i := len(dims) - 1; i >= 0; i-- {
		strides[i] = step
		step *= dims[i]
	}
	return strides
}
