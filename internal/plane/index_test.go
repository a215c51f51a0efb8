package plane

import (
	"errors"
	"testing"
)

func TestGet_Dispatch(t *testing.T) {
	p3, _ := New(3, 3, 4)
	p1, _ := New(8)

	tests := []struct {
		name  string
		p     *Plane
		idx   Index
		kind  ValueKind
		shape Shape
	}{
		{"full tuple", p3, Tuple(1, 2, 3), ValueBit, nil},
		{"partial tuple", p3, Tuple(1), ValueView, Shape{3, 4}},
		{"partial tuple to row", p3, Tuple(1, 2), ValueView, Shape{4}},
		{"empty tuple", p3, Tuple(), ValueView, Shape{3, 3, 4}},
		{"scalar outer", p3, Scalar(0), ValueView, Shape{3, 4}},
		{"list outer", p3, List(0, 2, 2), ValueView, Shape{3, 3, 4}},
		{"slice outer", p3, Slice(1, 3, 1), ValueView, Shape{2, 3, 4}},
		{"1d tuple", p1, Tuple(3), ValueBit, nil},
		{"1d scalar", p1, Scalar(7), ValueBit, nil},
		{"1d list", p1, List(1, 1, 0), ValueBits, nil},
		{"1d slice", p1, Slice(0, 8, 3), ValueBits, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.p.Get(tt.idx)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if v.Kind != tt.kind {
				t.Fatalf("kind = %v, want %v", v.Kind, tt.kind)
			}
			if tt.kind == ValueView && !v.View.Shape().Equal(tt.shape) {
				t.Errorf("view shape = %v, want %v", v.View.Shape(), tt.shape)
			}
		})
	}
}

func TestGet_OneDimensionalOffsets(t *testing.T) {
	r, _ := ParseRow("10110010")
	p, _ := FromRows(Shape{8}, []*Row{r})

	v, err := p.Get(List(0, 1, 2, 2, 7))
	if err != nil {
		t.Fatal(err)
	}
	want := []Bit{1, 0, 1, 1, 0}
	if len(v.Bits) != len(want) {
		t.Fatalf("got %d bits, want %d", len(v.Bits), len(want))
	}
	for i := range want {
		if v.Bits[i] != want[i] {
			t.Errorf("bit %d = %d, want %d", i, v.Bits[i], want[i])
		}
	}

	v, err = p.Get(Slice(0, 8, 3))
	if err != nil {
		t.Fatal(err)
	}
	if len(v.Bits) != 3 || v.Bits[0] != 1 || v.Bits[1] != 1 || v.Bits[2] != 1 {
		t.Errorf("slice bits = %v, want [1 1 1]", v.Bits)
	}
}

func TestGet_Errors(t *testing.T) {
	p, _ := New(2, 2, 4)
	p1, _ := New(4)

	tests := []struct {
		name string
		p    *Plane
		idx  Index
		want error
	}{
		{"tuple too long", p, Tuple(0, 0, 0, 0), ErrIndexOutOfBounds},
		{"outer out of range", p, Tuple(2, 0, 0), ErrIndexOutOfBounds},
		{"bit out of range", p, Tuple(0, 0, 4), ErrIndexOutOfBounds},
		{"partial out of range", p, Tuple(2), ErrIndexOutOfBounds},
		{"negative scalar", p, Scalar(-1), ErrIndexOutOfBounds},
		{"list out of range", p, List(0, 5), ErrIndexOutOfBounds},
		{"slice past end", p, Slice(0, 3, 1), ErrIndexOutOfBounds},
		{"slice bad step", p, Index{Kind: KindSlice, Start: 0, Stop: 2, Step: -1}, ErrIndexOutOfBounds},
		{"1d offset out of range", p1, Scalar(4), ErrIndexOutOfBounds},
		{"1d list out of range", p1, List(0, 4), ErrIndexOutOfBounds},
		{"scalar without position", p, Index{Kind: KindScalar}, ErrIndexOutOfBounds},
		{"scalar with two positions", p, Index{Kind: KindScalar, Coords: []int{0, 1}}, ErrIndexOutOfBounds},
		{"1d scalar without position", p1, Index{Kind: KindScalar}, ErrIndexOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.p.Get(tt.idx); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestView_RejectsBitAddresses(t *testing.T) {
	p, _ := New(2, 4)
	if _, err := p.View(Tuple(0, 1)); !errors.Is(err, ErrBitAddress) {
		t.Errorf("full tuple: expected ErrBitAddress, got %v", err)
	}
	p1, _ := New(4)
	for _, idx := range []Index{Scalar(0), List(1), Slice(0, 2, 1)} {
		if _, err := p1.View(idx); !errors.Is(err, ErrBitAddress) {
			t.Errorf("%v on 1d plane: expected ErrBitAddress, got %v", idx.Kind, err)
		}
	}
}

func TestView_SliceStrides(t *testing.T) {
	p, _ := New(6, 2, 3)
	for i := 0; i < 6; i++ {
		_ = p.Set([]int{i, 0, 0}, BitOf(i%2 == 0))
	}

	v, err := p.View(Slice(0, 6, 2))
	if err != nil {
		t.Fatal(err)
	}
	if !v.Shape().Equal(Shape{3, 2, 3}) {
		t.Fatalf("shape = %v", v.Shape())
	}
	if v.Population() != 3 {
		t.Errorf("population = %d, want 3", v.Population())
	}

	inner, err := v.View(Tuple(2, 1))
	if err != nil {
		t.Fatal(err)
	}
	_ = inner.Set([]int{2}, 1)
	if b, _ := p.Bit(4, 1, 2); b != 1 {
		t.Error("write through strided view not visible in parent")
	}
}

func TestView_FlattenUsesViewShape(t *testing.T) {
	p, _ := New(4, 5, 3)
	v, _ := p.View(Slice(1, 4, 2))

	outer, off, err := v.Flatten(1, 3, 2)
	if err != nil {
		t.Fatal(err)
	}
	if outer != 8 || off != 2 {
		t.Fatalf("Flatten = (%d, %d), want (8, 2)", outer, off)
	}

	row, _ := v.Row(outer)
	want, _ := p.View(Tuple(3, 3))
	got, _ := FromRows(Shape{3}, []*Row{row})
	_ = want.Set([]int{1}, 1)
	if b, _ := got.Bit(1); b != 1 {
		t.Error("Row(Flatten(c)) is not the row of c in the parent")
	}
}
