package cgra_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/tisgrid/cgra"
)

var _ = Describe("Side", func() {
	It("should face its opposite", func() {
		for _, s := range cgra.Sides {
			Expect(s.Opposite().Opposite()).To(Equal(s))
			Expect(s.Opposite()).NotTo(Equal(s))
		}
	})

	It("should step back with the opposite delta", func() {
		c := cgra.Coord{X: 2, Y: 3}

		for _, s := range cgra.Sides {
			Expect(c.Neighbour(s).Neighbour(s.Opposite())).To(Equal(c))
		}
	})

	It("should treat UP as the previous row", func() {
		Expect(cgra.Coord{X: 1, Y: 1}.Neighbour(cgra.Up)).
			To(Equal(cgra.Coord{X: 1, Y: 0}))
		Expect(cgra.Coord{X: 1, Y: 1}.Neighbour(cgra.Left)).
			To(Equal(cgra.Coord{X: 0, Y: 1}))
	})

	It("should parse names in any case", func() {
		s, ok := cgra.ParseSide(" right ")
		Expect(ok).To(BeTrue())
		Expect(s).To(Equal(cgra.Right))

		_, ok = cgra.ParseSide("ANY")
		Expect(ok).To(BeFalse())
	})

	It("should panic on an invalid side", func() {
		Expect(func() { _ = cgra.Side(9).Name() }).To(Panic())
	})
})

var _ = Describe("MoveMsgBuilder", func() {
	It("should build a message with a fresh id", func() {
		a := cgra.MoveMsgBuilder{}.
			WithSrc(cgra.Coord{X: 0, Y: 0}).
			WithDst(cgra.Coord{X: 1, Y: 0}).
			WithSide(cgra.Left).
			WithTick(4).
			WithData(-7).
			Build()
		b := cgra.MoveMsgBuilder{}.Build()

		Expect(a.ID).NotTo(BeEmpty())
		Expect(a.ID).NotTo(Equal(b.ID))
		Expect(a.Src).To(Equal(cgra.Coord{X: 0, Y: 0}))
		Expect(a.Dst).To(Equal(cgra.Coord{X: 1, Y: 0}))
		Expect(a.Side).To(Equal(cgra.Left))
		Expect(a.Tick).To(Equal(uint64(4)))
		Expect(a.Data).To(Equal(-7))
	})
})
