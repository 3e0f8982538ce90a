package fireworks

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fireworks/internal/raster"
)

var _ = Describe("Run", func() {
	It("runs the requested number of frames", func() {
		s := New(raster.New(40, 40), &fixedRandom{})
		frames := 0
		err := Run(context.Background(), s, 25, func(c Census) error {
			frames++
			Expect(c.Frame).To(Equal(frames))
			return nil
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(frames).To(Equal(25))
		Expect(s.Frame()).To(Equal(25))
	})

	It("stops when the context is cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		s := New(raster.New(40, 40), &fixedRandom{})
		err := Run(ctx, s, 0, func(c Census) error {
			if c.Frame == 10 {
				cancel()
			}
			return nil
		})
		Expect(err).To(MatchError(context.Canceled))
		Expect(s.Frame()).To(Equal(10))
	})

	It("returns the callback's error", func() {
		stop := errors.New("enough")
		s := New(raster.New(40, 40), &fixedRandom{})
		err := Run(context.Background(), s, 100, func(c Census) error {
			if c.Frame == 3 {
				return stop
			}
			return nil
		})
		Expect(err).To(MatchError(stop))
		Expect(s.Frame()).To(Equal(3))
	})
})
