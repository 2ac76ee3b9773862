package playback_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/timeflow/internal/playback"
)

var _ = Describe("Controller", func() {
	var s *playback.Session

	tick := func(n int) {
		for i := 0; i < n; i++ {
			s.Tick()
		}
	}

	BeforeEach(func() {
		s = playback.New(playback.DefaultSettings())
	})

	Describe("pausing", func() {
		It("stops recording frames until resumed", func() {
			tick(3)
			s.Handle(playback.TogglePause())
			Expect(s.Mode()).To(Equal(playback.LivePaused))

			Expect(s.Tick()).To(BeFalse())
			Expect(s.Timeline().FrameCount()).To(Equal(4))

			s.Handle(playback.TogglePause())
			Expect(s.Mode()).To(Equal(playback.LiveRunning))
			Expect(s.Tick()).To(BeTrue())
			Expect(s.Timeline().FrameCount()).To(Equal(5))
		})
	})

	Describe("stepping", func() {
		BeforeEach(func() {
			tick(2)
			s.Handle(playback.TogglePause())
		})

		It("advances exactly one frame per request", func() {
			s.Handle(playback.StepForward())
			s.Handle(playback.StepForward())
			Expect(s.PendingStep()).To(BeTrue())

			Expect(s.Tick()).To(BeTrue())
			Expect(s.Tick()).To(BeFalse())
			Expect(s.PendingStep()).To(BeFalse())
			Expect(s.Mode()).To(Equal(playback.LivePaused))
			Expect(s.Timeline().FrameCount()).To(Equal(4))
		})

		It("is cancelled by starting a scrub", func() {
			s.Handle(playback.StepForward())
			s.Handle(playback.ScrubStart())
			Expect(s.PendingStep()).To(BeFalse())
			Expect(s.Tick()).To(BeFalse())
		})

		It("is ignored while running", func() {
			s.Handle(playback.TogglePause())
			s.Handle(playback.StepForward())
			Expect(s.PendingStep()).To(BeFalse())
		})

		It("steps from a scrubbed-to frame and truncates the rest", func() {
			s.Handle(playback.ScrubStart())
			s.Handle(playback.ScrubRelease(0))
			s.Handle(playback.StepForward())
			s.Tick()

			Expect(s.Timeline().FrameCount()).To(Equal(2))
			Expect(s.Timeline().CurrentIndex()).To(Equal(1))
		})
	})

	Describe("scrubbing", func() {
		BeforeEach(func() {
			tick(8)
		})

		It("freezes the simulation", func() {
			s.Handle(playback.ScrubStart())
			Expect(s.Mode()).To(Equal(playback.Scrubbing))
			Expect(s.Tick()).To(BeFalse())
			Expect(s.Timeline().FrameCount()).To(Equal(9))
		})

		It("restores the frame under the cursor", func() {
			want, ok := s.Timeline().Frame(5)
			Expect(ok).To(BeTrue())

			s.Handle(playback.ScrubStart())
			s.Handle(playback.ScrubMove(5))
			Expect(s.Particle()).To(Equal(want.Particle))
			Expect(s.Rings()).To(HaveLen(len(want.Rings)))
		})

		It("pauses on release", func() {
			s.Handle(playback.ScrubStart())
			s.Handle(playback.ScrubRelease(3))
			Expect(s.Mode()).To(Equal(playback.LivePaused))
			Expect(s.Timeline().CurrentIndex()).To(Equal(3))
			Expect(s.Timeline().FrameCount()).To(Equal(9))
		})

		It("resumes from the cursor on toggle pause", func() {
			s.Handle(playback.ScrubStart())
			s.Handle(playback.ScrubMove(3))
			s.Handle(playback.TogglePause())
			Expect(s.Mode()).To(Equal(playback.LiveRunning))

			s.Tick()
			Expect(s.Timeline().FrameCount()).To(Equal(5))
			Expect(s.Timeline().AtEnd()).To(BeTrue())
		})

		DescribeTable("clamps the seek index",
			func(index float64, want int) {
				s.Handle(playback.ScrubStart())
				s.Handle(playback.ScrubMove(index))
				Expect(s.Timeline().CurrentIndex()).To(Equal(want))
			},
			Entry("below zero", -4.0, 0),
			Entry("rounds down", 2.4, 2),
			Entry("rounds half up", 2.5, 3),
			Entry("past the end", 100.0, 8),
		)
	})

	DescribeTable("ignores scrub input outside a scrub",
		func(in playback.Input) {
			s.Handle(in)
			Expect(s.Mode()).To(Equal(playback.LiveRunning))
			Expect(s.Timeline().CurrentIndex()).To(Equal(0))
		},
		Entry("move", playback.ScrubMove(0)),
		Entry("release", playback.ScrubRelease(0)),
	)

	Describe("reset", func() {
		It("clears history from any mode", func() {
			tick(6)
			s.Handle(playback.ScrubStart())
			s.Handle(playback.ScrubMove(2))
			s.Handle(playback.ToggleRainbow())
			s.Handle(playback.Reset())

			st := s.Status()
			Expect(st.Mode).To(Equal(playback.LiveRunning))
			Expect(st.Frames).To(Equal(1))
			Expect(st.Cursor).To(Equal(0))
			Expect(st.Rainbow).To(BeFalse())
			Expect(st.PendingStep).To(BeFalse())
		})
	})
})
