package fireworks

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/san-kum/fireworks/internal/rng"
	"github.com/san-kum/fireworks/internal/surface"
	"github.com/san-kum/fireworks/internal/surface/mocks"
)

var _ = Describe("Particle", func() {
	Describe("NewParticle", func() {
		It("starts opaque with its parameters inside their ranges", func() {
			src := rng.New(17)
			for i := 0; i < 500; i++ {
				p := NewParticle(40, 60, "cyan", src)
				Expect(p.Position()).To(Equal(surface.Point{X: 40, Y: 60}))
				Expect(p.Color()).To(Equal("cyan"))
				Expect(p.Alpha()).To(Equal(1.0))
				Expect(p.Angle()).To(And(BeNumerically(">=", 0), BeNumerically("<", 2*math.Pi)))
				Expect(p.Speed()).To(And(BeNumerically(">=", 1), BeNumerically("<", 5)))
				Expect(p.Decay()).To(And(BeNumerically(">=", 0.015), BeNumerically("<", 0.03)))
			}
		})
	})

	Describe("Advance", func() {
		It("moves along its heading, adds gravity and applies friction", func() {
			p := NewParticle(10, 10, "red", &fixedRandom{})
			p.angle, p.speed = 0, 2

			p.Advance()
			Expect(p.Position().X).To(BeNumerically("~", 12, 1e-12))
			Expect(p.Position().Y).To(BeNumerically("~", 11, 1e-12))
			Expect(p.Speed()).To(BeNumerically("~", 1.9, 1e-12))

			p.Advance()
			Expect(p.Position().X).To(BeNumerically("~", 13.9, 1e-12))
			Expect(p.Position().Y).To(BeNumerically("~", 12, 1e-12))
		})

		It("never gains opacity or speed", func() {
			src := rng.New(23)
			for i := 0; i < 100; i++ {
				p := NewParticle(0, 0, "red", src)
				alpha, speed := p.Alpha(), p.Speed()
				for ticks := 0; ; ticks++ {
					Expect(ticks).To(BeNumerically("<", 100))
					done := p.Advance()
					Expect(p.Alpha()).To(BeNumerically("<=", alpha))
					Expect(p.Speed()).To(BeNumerically("<=", speed))
					alpha, speed = p.Alpha(), p.Speed()
					if done {
						break
					}
				}
			}
		})

		It("expires after 49 ticks when decay is 0.02", func() {
			p := NewParticle(0, 0, "red", &fixedRandom{})
			p.decay = 0.02

			for tick := 1; tick < 49; tick++ {
				Expect(p.Advance()).To(BeFalse(), "expired early at tick %d", tick)
			}
			Expect(p.Advance()).To(BeTrue())
			Expect(p.Alpha()).To(BeNumerically("~", 0.02, 1e-9))
		})

		It("reports expiry once opacity is at or below its decay", func() {
			src := rng.New(29)
			for i := 0; i < 100; i++ {
				p := NewParticle(0, 0, "red", src)
				for !p.Advance() {
					Expect(p.Alpha()).To(BeNumerically(">", p.Decay()))
				}
				Expect(p.Alpha()).To(BeNumerically("<=", p.Decay()))
				Expect(p.Alpha()).To(BeNumerically(">", -p.Decay()))
			}
		})
	})

	Describe("Render", func() {
		It("scopes its opacity to a single disc fill", func() {
			ctrl := gomock.NewController(GinkgoT())
			ctx := mocks.NewMockContext(ctrl)

			p := NewParticle(25, 35, "gold", &fixedRandom{})
			p.decay = 0.25
			p.Advance()

			gomock.InOrder(
				ctx.EXPECT().Save(),
				ctx.EXPECT().SetGlobalAlpha(p.Alpha()),
				ctx.EXPECT().SetFillStyle("gold"),
				ctx.EXPECT().FillCircle(p.Position().X, p.Position().Y, 2.0),
				ctx.EXPECT().Restore(),
			)
			p.Render(ctx)
		})

		It("restores the drawing state even when the draw panics", func() {
			ctrl := gomock.NewController(GinkgoT())
			ctx := mocks.NewMockContext(ctrl)

			p := NewParticle(0, 0, "gold", &fixedRandom{})

			gomock.InOrder(
				ctx.EXPECT().Save(),
				ctx.EXPECT().SetGlobalAlpha(1.0),
				ctx.EXPECT().SetFillStyle("gold"),
				ctx.EXPECT().FillCircle(gomock.Any(), gomock.Any(), gomock.Any()).Do(func(_, _, _ float64) {
					panic("surface lost")
				}),
				ctx.EXPECT().Restore(),
			)
			Expect(func() { p.Render(ctx) }).To(PanicWith("surface lost"))
		})
	})
})
