package plane_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bitplane/internal/plane"
)

var _ = Describe("Views", func() {
	var p *plane.Plane

	BeforeEach(func() {
		var err error
		p, err = plane.New(3, 3, 4)
		Expect(err).NotTo(HaveOccurred())
	})

	It("keeps the bit width on every view", func() {
		v, err := p.View(plane.Tuple(1))
		Expect(err).NotTo(HaveOccurred())
		Expect(v.Width()).To(Equal(4))
		Expect(v.Shape()).To(Equal(plane.Shape{3, 4}))

		row, err := v.View(plane.Tuple(2))
		Expect(err).NotTo(HaveOccurred())
		Expect(row.Width()).To(Equal(4))
		Expect(row.Shape()).To(Equal(plane.Shape{4}))
	})

	It("reaches the same row by chained and direct partial indexing", func() {
		v, _ := p.View(plane.Tuple(1))
		chained, err := v.View(plane.Tuple(2))
		Expect(err).NotTo(HaveOccurred())
		direct, err := p.View(plane.Tuple(1, 2))
		Expect(err).NotTo(HaveOccurred())

		a, _ := chained.Row(0)
		b, _ := direct.Row(0)
		Expect(a).To(BeIdenticalTo(b))
	})

	It("exposes writes through a view in the parent", func() {
		v, _ := p.View(plane.Tuple(1))
		Expect(v.Set([]int{2, 3}, 1)).To(Succeed())

		b, err := p.Bit(1, 2, 3)
		Expect(err).NotTo(HaveOccurred())
		Expect(b).To(Equal(plane.Bit(1)))
	})

	It("exposes writes through the parent in a view", func() {
		v, _ := p.View(plane.Scalar(0))
		Expect(p.Set([]int{0, 1, 1}, 1)).To(Succeed())

		b, err := v.Bit(1, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(b).To(Equal(plane.Bit(1)))
	})

	It("shares rows between overlapping sibling views", func() {
		a, _ := p.View(plane.Slice(0, 3, 1))
		b, _ := p.View(plane.List(2, 0))

		Expect(a.Set([]int{2, 0, 0}, 1)).To(Succeed())
		bit, err := b.Bit(0, 0, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(bit).To(Equal(plane.Bit(1)))
	})

	It("fills only the rows a view addresses", func() {
		v, _ := p.View(plane.Tuple(2, 1))
		v.Fill(1)

		Expect(p.Population()).To(Equal(4))
		b, _ := p.Bit(2, 1, 3)
		Expect(b).To(Equal(plane.Bit(1)))
	})

	It("does not share rows with a clone", func() {
		c := p.Clone()
		v, _ := c.View(plane.Tuple(0))
		v.Fill(1)
		Expect(p.Population()).To(BeZero())
		Expect(c.Population()).To(Equal(12))
	})

	Describe("Get", func() {
		It("returns a bit for full coordinates and a view otherwise", func() {
			v, err := p.Get(plane.Tuple(0, 0, 0))
			Expect(err).NotTo(HaveOccurred())
			Expect(v.Kind).To(Equal(plane.ValueBit))

			v, err = p.Get(plane.Tuple(0, 0))
			Expect(err).NotTo(HaveOccurred())
			Expect(v.Kind).To(Equal(plane.ValueView))
			Expect(v.View.Shape()).To(Equal(plane.Shape{4}))
		})

		It("rejects coordinates outside the shape", func() {
			small, _ := plane.New(2, 2, 4)
			_, err := small.Get(plane.Tuple(2, 0, 0))
			Expect(err).To(MatchError(plane.ErrIndexOutOfBounds))
			_, err = small.Get(plane.Tuple(0, 0, 4))
			Expect(err).To(MatchError(plane.ErrIndexOutOfBounds))
		})
	})

	Describe("Materialize", func() {
		It("agrees with Bit at every coordinate", func() {
			p.Randomize(plane.NewRand(17))
			d := p.Materialize()
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					for k := 0; k < 4; k++ {
						b, err := p.Bit(i, j, k)
						Expect(err).NotTo(HaveOccurred())
						Expect(d.At(i, j, k)).To(Equal(b.Bool()))
					}
				}
			}
		})
	})
})
