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

var _ = Describe("Rocket", func() {
	var (
		launch = surface.Point{X: 30, Y: 200}
		target = surface.Point{X: 130, Y: 50}
	)

	Describe("NewRocket", func() {
		It("aims from launch to target", func() {
			r := NewRocket(launch, target, "red", 12, &fixedRandom{frac: 0.5})

			Expect(r.Angle()).To(BeNumerically("~", math.Atan2(-150, 100), 1e-12))
			Expect(r.Speed()).To(Equal(7.5))
			Expect(r.Distance()).To(BeNumerically("~", math.Hypot(100, 150), 1e-9))
			Expect(r.Position()).To(Equal(launch))
			Expect(r.Trail()).To(Equal([]surface.Point{launch}))
			Expect(r.TrailCap()).To(Equal(12))
			Expect(r.Color()).To(Equal("red"))
		})

		It("draws its speed from [5, 10)", func() {
			src := rng.New(3)
			for i := 0; i < 500; i++ {
				r := NewRocket(launch, target, "red", 10, src)
				Expect(r.Speed()).To(BeNumerically(">=", 5))
				Expect(r.Speed()).To(BeNumerically("<", 10))
			}
		})

		It("raises a non-positive trail cap to one", func() {
			r := NewRocket(launch, target, "red", 0, &fixedRandom{})
			Expect(r.TrailCap()).To(Equal(1))
			r.Advance()
			Expect(r.Trail()).To(HaveLen(1))
		})
	})

	Describe("Advance", func() {
		It("never lets the trail exceed its cap", func() {
			src := rng.New(11)
			for _, trailCap := range []int{1, 2, 5, 10, 17, 20} {
				r := NewRocket(surface.Point{X: 0, Y: 10000}, surface.Point{X: 0, Y: 0}, "red", trailCap, src)
				for i := 0; i < 100; i++ {
					r.Advance()
					Expect(len(r.Trail())).To(BeNumerically("<=", trailCap))
				}
				Expect(r.Trail()).To(HaveLen(trailCap))
			}
		})

		It("evicts the oldest trail point first", func() {
			r := NewRocket(surface.Point{X: 0, Y: 100}, surface.Point{X: 0, Y: 0}, "red", 3, &fixedRandom{})
			r.speed = 1

			// the launch point is recorded twice: once at creation, once on the first step
			r.Advance()
			Expect(ys(r.Trail())).To(Equal([]float64{100, 100}))
			r.Advance()
			Expect(ys(r.Trail())).To(Equal([]float64{100, 100, 99}))
			r.Advance()
			Expect(ys(r.Trail())).To(Equal([]float64{100, 99, 98}))
			r.Advance()
			Expect(ys(r.Trail())).To(Equal([]float64{99, 98, 97}))
		})

		It("keeps heading and speed constant", func() {
			r := NewRocket(launch, target, "red", 10, rng.New(5))
			angle, speed := r.Angle(), r.Speed()
			for !r.Advance() {
				Expect(r.Angle()).To(Equal(angle))
				Expect(r.Speed()).To(Equal(speed))
			}
		})

		It("arrives at the first tick the target is closer than one step", func() {
			src := rng.New(21)
			for i := 0; i < 200; i++ {
				from := surface.Point{X: src.Range(0, 800), Y: 600}
				to := surface.Point{X: src.Range(0, 800), Y: src.Range(0, 300)}
				r := NewRocket(from, to, "red", 15, src)

				ticks := 0
				for {
					ticks++
					Expect(ticks).To(BeNumerically("<", 1000), "rocket never arrived")
					arrived := r.Advance()
					if arrived {
						Expect(r.Distance()).To(BeNumerically("<", r.Speed()))
						break
					}
					Expect(r.Distance()).To(BeNumerically(">=", r.Speed()))
				}
			}
		})

		It("reaches (0,0) from (0,100) within ten ticks at speed 10", func() {
			r := NewRocket(surface.Point{X: 0, Y: 100}, surface.Point{X: 0, Y: 0}, "red", 10, &fixedRandom{})
			r.speed = 10

			arrivedAt := 0
			for tick := 1; tick <= 10; tick++ {
				if r.Advance() && arrivedAt == 0 {
					arrivedAt = tick
				}
			}
			Expect(arrivedAt).To(BeNumerically(">", 0))
			Expect(arrivedAt).To(BeNumerically("<=", 10))
			Expect(r.Position().Y).To(BeNumerically("<=", 1e-9))
		})
	})

	Describe("Explode", func() {
		It("releases exactly thirty particles at the target in the rocket's color", func() {
			r := NewRocket(launch, target, "hsl(42.00, 100%, 50%)", 10, &fixedRandom{})
			burst := r.Explode(rng.New(9))

			Expect(burst).To(HaveLen(BurstSize))
			Expect(BurstSize).To(Equal(30))
			for _, p := range burst {
				Expect(p.Position()).To(Equal(target))
				Expect(p.Color()).To(Equal("hsl(42.00, 100%, 50%)"))
				Expect(p.Alpha()).To(Equal(1.0))
			}
		})

		It("randomizes each particle independently", func() {
			r := NewRocket(launch, target, "red", 10, &fixedRandom{})
			burst := r.Explode(rng.New(10))

			angles := make(map[float64]struct{})
			for _, p := range burst {
				angles[p.Angle()] = struct{}{}
			}
			Expect(len(angles)).To(Equal(BurstSize))
		})
	})

	Describe("Render", func() {
		It("strokes the trail in insertion order with the rocket's color", func() {
			ctrl := gomock.NewController(GinkgoT())
			ctx := mocks.NewMockContext(ctrl)

			r := NewRocket(surface.Point{X: 0, Y: 100}, surface.Point{X: 0, Y: 0}, "lime", 5, &fixedRandom{})
			r.speed = 10
			r.Advance()
			r.Advance()
			trail := r.Trail()

			gomock.InOrder(
				ctx.EXPECT().SetStrokeStyle("lime"),
				ctx.EXPECT().StrokePolyline(trail),
			)
			r.Render(ctx)

			Expect(r.Trail()).To(Equal(trail))
		})
	})
})

func ys(pts []surface.Point) []float64 {
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = p.Y
	}
	return out
}
