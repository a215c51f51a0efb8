package plane

import (
	"errors"
	"fmt"
)

// Domain errors for plane construction and addressing.
var (
	// ErrShapeMismatch indicates caller-supplied storage that does not fit the declared shape.
	ErrShapeMismatch = errors.New("plane: storage does not match shape")

	// ErrIndexOutOfBounds indicates a coordinate outside the shape or bit width.
	ErrIndexOutOfBounds = errors.New("plane: index out of bounds")

	// ErrBitAddress indicates a view was requested with a coordinate that addresses single bits.
	ErrBitAddress = errors.New("plane: coordinate addresses bits, not a view")
)

// AxisArity is the IndexError axis for a coordinate with the wrong number
// of components, or any coordinate into an empty shape.
const AxisArity = -1

// IndexError wraps ErrIndexOutOfBounds with the offending coordinate.
type IndexError struct {
	Coord []int
	Shape Shape
	Axis  int
}

func (e *IndexError) Error() string {
	if e.Axis == AxisArity {
		if len(e.Shape) == 0 {
			return fmt.Sprintf("plane: coordinate %v addresses empty shape %v", e.Coord, e.Shape)
		}
		return fmt.Sprintf("plane: coordinate %v has length %d, shape %v has %d dimensions",
			e.Coord, len(e.Coord), e.Shape, len(e.Shape))
	}
	return fmt.Sprintf("plane: coordinate %v out of bounds for shape %v (axis %d)", e.Coord, e.Shape, e.Axis)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfBounds
}

func outOfBounds(coord []int, shape Shape, axis int) error {
	c := make([]int, len(coord))
	copy(c, coord)
	return &IndexError{Coord: c, Shape: shape.Clone(), Axis: axis}
}
