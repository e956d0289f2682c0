package morph_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/shapeshift/internal/morph"
	"github.com/san-kum/shapeshift/internal/shapes"
)

var _ = Describe("Engine", func() {
	const duration = 2 * time.Second

	var (
		a, b   shapes.PointCloud
		engine *morph.Engine
	)

	BeforeEach(func() {
		a = shapes.PointCloud{
			0, 0, 0,
			1, 1, 1,
			-2, 4, 6,
			10, -10, 0.5,
		}
		b = shapes.PointCloud{
			2, 2, 2,
			-1, 3, 1,
			2, 0, -6,
			0, 10, 1.5,
		}
		set := shapes.Set{
			{Name: "a", Generate: func() shapes.PointCloud { return a.Clone() }},
			{Name: "b", Generate: func() shapes.PointCloud { return b.Clone() }},
		}

		var err error
		engine, err = morph.New(morph.Config{Points: 4, MorphDuration: duration}, set)
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(engine.Close)
	})

	It("starts at rest on shape 0", func() {
		Expect(engine.Active()).To(Equal(0))
		Expect(engine.ActiveName()).To(Equal("a"))
		Expect(engine.Transitioning()).To(BeFalse())
		Expect(engine.Snapshot()).To(Equal(a))
	})

	Context("after beginning a transition to b", func() {
		BeforeEach(func() {
			Expect(engine.BeginTransition(1, a.Clone())).To(Succeed())
		})

		It("resets progress and records the new shape", func() {
			Expect(engine.Progress()).To(BeZero())
			Expect(engine.Transitioning()).To(BeTrue())
			Expect(engine.Active()).To(Equal(1))
			Expect(engine.Target()).To(Equal(b))
		})

		It("sits at the midpoint halfway through", func() {
			Expect(engine.Advance(duration.Seconds() / 2)).To(BeTrue())
			Expect(engine.Progress()).To(Equal(0.5))

			vis := engine.Snapshot()
			for k := range vis {
				Expect(vis[k]).To(BeNumerically("~", (a[k]+b[k])/2, 1e-12))
			}
		})

		It("commits the target once the duration has elapsed", func() {
			engine.Advance(duration.Seconds() / 2)
			engine.Advance(duration.Seconds())

			Expect(engine.Progress()).To(Equal(1.0))
			Expect(engine.Transitioning()).To(BeFalse())
			Expect(engine.Current()).To(Equal(b))
			Expect(engine.Snapshot()).To(Equal(b))
		})

		It("ignores frames after close", func() {
			engine.Advance(duration.Seconds() / 4)
			before := engine.Snapshot()
			engine.Close()

			Expect(engine.Advance(duration.Seconds())).To(BeFalse())
			Expect(engine.BeginTransition(0, before)).To(MatchError(morph.ErrClosed))
			Expect(engine.Snapshot()).To(Equal(before))
		})
	})
})
