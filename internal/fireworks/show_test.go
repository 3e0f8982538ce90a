package fireworks

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/san-kum/fireworks/internal/raster"
	"github.com/san-kum/fireworks/internal/rng"
	"github.com/san-kum/fireworks/internal/surface"
	"github.com/san-kum/fireworks/internal/surface/mocks"
)

type censusRecorder struct{ seen []Census }

func (c *censusRecorder) OnTick(cs Census) { c.seen = append(c.seen, cs) }

// orderedEntity logs its id to drawn when rendered.
type orderedEntity struct {
	id     int
	drawn  *[]int
	expire bool
}

func (o *orderedEntity) Advance() bool { return o.expire }

func (o *orderedEntity) Render(surface.Context) { *o.drawn = append(*o.drawn, o.id) }

var _ = Describe("Show", func() {
	Describe("Tick", func() {
		It("washes the whole surface before anything else is drawn", func() {
			ctrl := gomock.NewController(GinkgoT())
			ctx := mocks.NewMockContext(ctrl)
			s := New(ctx, &fixedRandom{})
			s.Add(&countingEntity{expireAt: 5})

			ctx.EXPECT().Size().Return(320.0, 200.0)
			gomock.InOrder(
				ctx.EXPECT().SetFillStyle("rgba(0, 0, 0, 0.1)"),
				ctx.EXPECT().FillRect(0.0, 0.0, 320.0, 200.0),
			)
			s.Tick()
		})

		It("advances every entity exactly once even when many finish", func() {
			s := New(raster.New(100, 100), &fixedRandom{})
			entities := make([]*countingEntity, 10)
			for i := range entities {
				expireAt := 3
				if i%3 == 0 {
					expireAt = 1
				}
				entities[i] = &countingEntity{expireAt: expireAt}
				s.Add(entities[i])
			}

			s.Tick()

			for i, e := range entities {
				Expect(e.advances).To(Equal(1), "entity %d", i)
				if i%3 == 0 {
					Expect(e.renders).To(Equal(0), "finished entity %d was drawn", i)
				} else {
					Expect(e.renders).To(Equal(1), "entity %d", i)
				}
			}
			Expect(s.Len()).To(Equal(6))
		})

		It("keeps survivors in order", func() {
			s := New(raster.New(10, 10), &fixedRandom{})
			a := &countingEntity{expireAt: 9}
			b := &countingEntity{expireAt: 1}
			c := &countingEntity{expireAt: 9}
			d := &countingEntity{expireAt: 1}
			for _, e := range []Entity{a, b, c, d} {
				s.Add(e)
			}

			s.Tick()
			Expect(s.Entities()).To(Equal([]Entity{a, c}))
		})

		It("replaces an arriving rocket with its burst, advanced from the next tick", func() {
			s := New(raster.New(100, 100), &fixedRandom{})
			r := NewRocket(surface.Point{X: 50, Y: 60}, surface.Point{X: 50, Y: 50}, "orange", 10, &fixedRandom{})
			s.Add(r)

			c := s.Tick()
			Expect(c.Rockets).To(Equal(1))
			Expect(c.Bursts).To(Equal(0))

			c = s.Tick()
			Expect(c.Bursts).To(Equal(1))
			Expect(c.Rockets).To(Equal(0))
			Expect(c.Particles).To(Equal(BurstSize))
			for _, e := range s.Entities() {
				p, ok := e.(*Particle)
				Expect(ok).To(BeTrue())
				Expect(p.Alpha()).To(Equal(1.0))
				Expect(p.Position()).To(Equal(surface.Point{X: 50, Y: 50}))
				Expect(p.Color()).To(Equal("orange"))
			}

			s.Tick()
			for _, e := range s.Entities() {
				Expect(e.(*Particle).Alpha()).To(BeNumerically("<", 1))
			}
		})

		It("launches from the bottom edge toward the upper half", func() {
			fb := raster.New(400, 300)
			s := New(fb, &fixedRandom{frac: 0.25, chance: true})

			c := s.Tick()
			Expect(c.Launched).To(Equal(1))
			Expect(s.Len()).To(Equal(1))

			r := s.Entities()[0].(*Rocket)
			Expect(r.Position()).To(Equal(surface.Point{X: 100, Y: 300}))
			Expect(r.Target()).To(Equal(surface.Point{X: 100, Y: 37.5}))
			Expect(r.Color()).To(Equal("hsl(90.00, 100%, 50%)"))
			Expect(r.TrailCap()).To(Equal(12))
			Expect(r.Speed()).To(Equal(6.25))
		})

		It("keeps launches inside the surface with sane parameters", func() {
			fb := raster.New(640, 480)
			s := New(fb, rng.New(31))
			for i := 0; i < 2000; i++ {
				s.Tick()
				for _, e := range s.Entities() {
					r, ok := e.(*Rocket)
					if !ok || len(r.Trail()) != 1 {
						continue
					}
					Expect(r.Trail()[0].Y).To(Equal(480.0))
					Expect(r.Trail()[0].X).To(And(BeNumerically(">=", 0), BeNumerically("<", 640)))
					Expect(r.Target().Y).To(And(BeNumerically(">=", 0), BeNumerically("<", 240)))
					Expect(r.TrailCap()).To(And(BeNumerically(">=", 10), BeNumerically("<=", 19)))
					Expect(strings.HasPrefix(r.Color(), "hsl(")).To(BeTrue())
					Expect(r.Color()).To(HaveSuffix(", 100%, 50%)"))
				}
			}
		})

		It("trims a launched rocket's trail to the whole part of its drawn cap", func() {
			s := New(raster.New(400, 300), &fixedRandom{frac: 0.25, chance: true})
			s.Tick()
			r := s.Entities()[0].(*Rocket)

			// 12.5 drawn; a trail of 13 is over the cap and is trimmed back
			longest := 0
			for i := 0; i < 100; i++ {
				r.Advance()
				longest = max(longest, len(r.Trail()))
			}
			Expect(longest).To(Equal(12))
		})

		It("draws the newest entity first so older ones end up on top", func() {
			var drawn []int
			s := New(raster.New(10, 10), &fixedRandom{})
			for i := 0; i < 4; i++ {
				s.Add(&orderedEntity{id: i, drawn: &drawn, expire: i == 2})
			}

			s.Tick()
			Expect(drawn).To(Equal([]int{3, 1, 0}))

			drawn = nil
			s.Tick()
			Expect(drawn).To(Equal([]int{3, 1, 0}))
		})

		It("sizes new launches from the surface's current dimensions", func() {
			fb := raster.New(1000, 1000)
			s := New(fb, &fixedRandom{frac: 0.5, chance: true})
			s.Tick()

			fb.Resize(200, 80)
			s.Tick()

			es := s.Entities()
			r := es[len(es)-1].(*Rocket)
			Expect(r.Position()).To(Equal(surface.Point{X: 100, Y: 80}))
			Expect(r.Target()).To(Equal(surface.Point{X: 100, Y: 20}))
		})

		It("leaves fading trails on the surface", func() {
			fb := raster.New(100, 100)
			s := New(fb, &fixedRandom{})
			s.Add(NewParticle(50, 20, "white", &fixedRandom{}))

			// (49,21) is covered by the disc on the first tick only
			s.Tick()
			lit := fb.At(49, 21).R
			Expect(lit).To(BeNumerically(">", 0))

			s.Tick()
			Expect(fb.At(49, 21).R).To(BeNumerically("~", lit*0.9, 1e-9))
		})

		It("notifies observers with the census", func() {
			rec := &censusRecorder{}
			s := New(raster.New(50, 50), &fixedRandom{chance: true}, WithObserver(rec))
			s.Tick()
			s.Tick()

			Expect(rec.seen).To(HaveLen(2))
			Expect(rec.seen[0]).To(Equal(Census{Frame: 1, Rockets: 1, Launched: 1}))
			Expect(rec.seen[1].Frame).To(Equal(2))
			Expect(rec.seen[1].Total()).To(Equal(s.Len()))
		})
	})

	It("stays bounded over a long run", func() {
		s := New(raster.New(320, 200), rng.New(37))
		peak := 0
		for i := 0; i < 5000; i++ {
			c := s.Tick()
			if c.Total() > peak {
				peak = c.Total()
			}
		}
		Expect(peak).To(BeNumerically(">", 0))
		Expect(peak).To(BeNumerically("<", 1000))
	})
})
