package plane

import "fmt"

// Kind tags the form of an Index.
type Kind uint8

const (
	// KindTuple is a coordinate tuple. It is a full coordinate when it has
	// one component per dimension and a partial coordinate when shorter.
	KindTuple Kind = iota
	// KindScalar is a single position on the first axis.
	KindScalar
	// KindList is a list of positions on the first axis.
	KindList
	// KindSlice is a strided range on the first axis.
	KindSlice
)

func (k Kind) String() string {
	switch k {
	case KindTuple:
		return "tuple"
	case KindScalar:
		return "scalar"
	case KindList:
		return "list"
	case KindSlice:
		return "slice"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Index is a coordinate expression.
type Index struct {
	Kind   Kind
	Coords []int

	// Start, Stop and Step are used by KindSlice. Stop is exclusive.
	Start, Stop, Step int
}

func Tuple(coord ...int) Index { return Index{Kind: KindTuple, Coords: coord} }

func Scalar(i int) Index { return Index{Kind: KindScalar, Coords: []int{i}} }

func List(positions ...int) Index { return Index{Kind: KindList, Coords: positions} }

// Slice selects start, start+step, ... below stop. A step of 0 means 1.
func Slice(start, stop, step int) Index {
	if step == 0 {
		step = 1
	}
	return Index{Kind: KindSlice, Start: start, Stop: stop, Step: step}
}

// ValueKind tags the result of Get.
type ValueKind uint8

const (
	ValueBit ValueKind = iota
	ValueBits
	ValueView
)

// Value is exactly one of a bit, a list of bits, or a view.
type Value struct {
	Kind ValueKind
	Bit  Bit
	Bits []Bit
	View *Plane
}

// Get resolves idx to a bit or a view:
//
//   - a full tuple yields the bit it addresses;
//   - a partial tuple yields a view over the rows it selects;
//   - on a one-dimensional plane a scalar yields a bit, while a list or
//     slice yields the bits at those offsets;
//   - otherwise a scalar, list or slice applies to the first outer axis and
//     yields a view.
func (p *Plane) Get(idx Index) (Value, error) {
	if len(p.shape) == 0 {
		return Value{}, outOfBounds(idx.Coords, p.shape, AxisArity)
	}
	switch idx.Kind {
	case KindTuple:
		if len(idx.Coords) == len(p.shape) {
			b, err := p.Bit(idx.Coords...)
			return Value{Kind: ValueBit, Bit: b}, err
		}
	case KindScalar, KindList, KindSlice:
		if len(p.shape) == 1 {
			return p.getOffsets(idx)
		}
	default:
		return Value{}, fmt.Errorf("plane: unknown index kind %v", idx.Kind)
	}
	v, err := p.View(idx)
	if err != nil {
		return Value{}, err
	}
	return Value{Kind: ValueView, View: v}, nil
}

func (p *Plane) getOffsets(idx Index) (Value, error) {
	switch idx.Kind {
	case KindScalar:
		b, err := p.Bit(idx.Coords...)
		return Value{Kind: ValueBit, Bit: b}, err
	case KindList:
		bits, err := p.Bits(idx.Coords...)
		return Value{Kind: ValueBits, Bits: bits}, err
	default:
		n, err := sliceLen(idx, p.Width())
		if err != nil {
			return Value{}, err
		}
		offsets := make([]int, n)
		for i := range offsets {
			offsets[i] = idx.Start + i*idx.Step
		}
		bits, err := p.Bits(offsets...)
		return Value{Kind: ValueBits, Bits: bits}, err
	}
}

// View returns a plane sharing rows with p. Tuples must be partial; scalars,
// lists and slices apply to the first outer axis. Selecting every outer axis
// yields a one-dimensional view over a single row.
func (p *Plane) View(idx Index) (*Plane, error) {
	outer := len(p.shape) - 1
	if len(p.shape) == 0 {
		return nil, outOfBounds(idx.Coords, p.shape, AxisArity)
	}
	switch idx.Kind {
	case KindTuple, KindScalar:
		if idx.Kind == KindScalar && len(idx.Coords) != 1 {
			return nil, outOfBounds(idx.Coords, p.shape, AxisArity)
		}
		if len(idx.Coords) > len(p.shape) {
			return nil, outOfBounds(idx.Coords, p.shape, AxisArity)
		}
		if len(idx.Coords) > outer {
			return nil, fmt.Errorf("%w: %v on shape %v", ErrBitAddress, idx.Coords, p.shape)
		}
		return p.fix(idx.Coords)
	case KindList:
		if outer == 0 {
			return nil, fmt.Errorf("%w: list on shape %v", ErrBitAddress, p.shape)
		}
		return p.gather(idx.Coords)
	case KindSlice:
		if outer == 0 {
			return nil, fmt.Errorf("%w: slice on shape %v", ErrBitAddress, p.shape)
		}
		return p.slice(idx)
	}
	return nil, fmt.Errorf("plane: unknown index kind %v", idx.Kind)
}

// fix pins the leading outer axes to coord.
func (p *Plane) fix(coord []int) (*Plane, error) {
	base := p.base
	for i, c := range coord {
		if c < 0 || c >= p.shape[i] {
			return nil, outOfBounds(coord, p.shape, i)
		}
		base += c * p.strides[i]
	}
	k := len(coord)
	return &Plane{
		shape:   p.shape[k:].Clone(),
		rows:    p.rows,
		strides: append([]int(nil), p.strides[k:]...),
		base:    base,
	}, nil
}

func (p *Plane) slice(idx Index) (*Plane, error) {
	n, err := sliceLen(idx, p.shape[0])
	if err != nil {
		return nil, err
	}
	shape := p.shape.Clone()
	shape[0] = n
	strides := append([]int(nil), p.strides...)
	strides[0] *= idx.Step
	return &Plane{
		shape:   shape,
		rows:    p.rows,
		strides: strides,
		base:    p.base + idx.Start*p.strides[0],
	}, nil
}

// gather selects positions on the first axis. The selected rows are
// collected into a new backing slice, but the rows themselves are shared.
func (p *Plane) gather(positions []int) (*Plane, error) {
	shape := p.shape.Clone()
	shape[0] = len(positions)
	rows := make([]*Row, 0, shape.Rows())
	for _, pos := range positions {
		sub, err := p.fix([]int{pos})
		if err != nil {
			return nil, err
		}
		sub.eachRow(func(_ int, r *Row) { rows = append(rows, r) })
	}
	return &Plane{
		shape:   shape,
		rows:    rows,
		strides: contiguous(shape.Outer()),
	}, nil
}

func sliceLen(idx Index, dim int) (int, error) {
	if idx.Step <= 0 {
		return 0, fmt.Errorf("%w: slice step %d must be positive", ErrIndexOutOfBounds, idx.Step)
	}
	if idx.Start < 0 || idx.Stop > dim || idx.Start > idx.Stop {
		return 0, fmt.Errorf("%w: slice [%d:%d] outside axis of length %d", ErrIndexOutOfBounds, idx.Start, idx.Stop, dim)
	}
	return (idx.Stop - idx.Start + idx.Step - 1) / idx.Step, nil
}
