package plane

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Bit is a single cell state, 0 or 1.
type Bit uint8

func (b Bit) Bool() bool { return b != 0 }

// BitOf converts a boolean to a Bit.
func BitOf(v bool) Bit {
	if v {
		return 1
	}
	return 0
}

// Row is a fixed-width sequence of bits. Bit 0 is the leftmost cell of the
// row. The width never changes after construction.
type Row struct {
	width int
	bits  *bitset.BitSet
}

// NewRow allocates a zero-filled row of the given width.
func NewRow(width int) *Row {
	if width < 0 {
		width = 0
	}
	return &Row{width: width, bits: bitset.New(uint(width))}
}

// ParseRow builds a row from a string of '0' and '1' characters.
func ParseRow(text string) (*Row, error) {
	r := NewRow(len(text))
	for i, c := range text {
		switch c {
		case '0':
		case '1':
			r.bits.Set(uint(i))
		default:
			return nil, fmt.Errorf("plane: invalid bit %q at %d", c, i)
		}
	}
	return r, nil
}

func (r *Row) Len() int { return r.width }

// Test reports whether bit i is set. It panics if i is outside the row,
// like a slice access would.
func (r *Row) Test(i int) bool {
	r.check(i)
	return r.bits.Test(uint(i))
}

// At returns bit i, or an error if i is outside the row.
func (r *Row) At(i int) (Bit, error) {
	if i < 0 || i >= r.width {
		return 0, outOfBounds([]int{i}, Shape{r.width}, 0)
	}
	return BitOf(r.bits.Test(uint(i))), nil
}

// Set writes bit i. It panics if i is outside the row.
func (r *Row) Set(i int, b Bit) {
	r.check(i)
	r.bits.SetTo(uint(i), b.Bool())
}

// Fill sets every bit of the row to b.
func (r *Row) Fill(b Bit) {
	if !b.Bool() {
		r.bits.ClearAll()
		return
	}
	for i := 0; i < r.width; i++ {
		r.bits.Set(uint(i))
	}
}

// Count returns the number of set bits.
func (r *Row) Count() int { return int(r.bits.Count()) }

// SetUint64 overwrites the row with the binary expansion of v, left-padded
// with zeros to the row width. The most significant bit lands at index 0.
func (r *Row) SetUint64(v uint64) error {
	if r.width < 64 && v>>uint(r.width) != 0 {
		return fmt.Errorf("%w: value %d does not fit in %d bits", ErrShapeMismatch, v, r.width)
	}
	r.bits.ClearAll()
	for i := 0; i < r.width; i++ {
		shift := r.width - 1 - i
		if shift < 64 && v>>uint(shift)&1 == 1 {
			r.bits.Set(uint(i))
		}
	}
	return nil
}

// CopyFrom overwrites r with the bits of src. Both rows must share a width.
func (r *Row) CopyFrom(src *Row) error {
	if src.width != r.width {
		return fmt.Errorf("%w: copying %d-bit row into %d-bit row", ErrShapeMismatch, src.width, r.width)
	}
	src.bits.Copy(r.bits)
	return nil
}

func (r *Row) Equal(other *Row) bool {
	if other == nil || r.width != other.width {
		return false
	}
	return r.bits.Equal(other.bits)
}

func (r *Row) Clone() *Row {
	return &Row{width: r.width, bits: r.bits.Clone()}
}

// String renders the row as '0' and '1' characters, bit 0 first.
func (r *Row) String() string {
	var b strings.Builder
	b.Grow(r.width)
	for i := 0; i < r.width; i++ {
		if r.bits.Test(uint(i)) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

func (r *Row) check(i int) {
	if i < 0 || i >= r.width {
		panic(fmt.Sprintf("plane: bit %d out of range [0, %d)", i, r.width))
	}
}
