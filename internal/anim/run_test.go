package anim

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type recordingScene struct {
	resizes int
	frames  []Frame
}

func (s *recordingScene) Resize()       { s.resizes++ }
func (s *recordingScene) Paint(f Frame) { s.frames = append(s.frames, f) }

var _ = Describe("Start", func() {
	var (
		host  Host
		clock *FakeClock
		sched *ManualScheduler
		hub   *ResizeHub
		scene *recordingScene
		t0    time.Time
	)

	BeforeEach(func() {
		t0 = time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC)
		host, clock, sched, hub = Headless(t0)
		scene = &recordingScene{}
	})

	It("paints the first frame synchronously and sizes the scene once", func() {
		c := Start(host, scene, 5*time.Second)
		Expect(c.Resolved()).To(BeFalse())
		Expect(scene.resizes).To(Equal(1))
		Expect(scene.frames).To(HaveLen(1))
		Expect(sched.Pending()).To(Equal(1))
		Expect(hub.Listeners()).To(Equal(1))
	})

	It("resolves no earlier than start plus duration", func() {
		c := Start(host, scene, 5*time.Second)
		Drive(clock, sched, c, 16*time.Millisecond, nil)
		Expect(c.Resolved()).To(BeTrue())
		Expect(c.FinishedAt().Sub(t0)).To(BeNumerically(">=", 5*time.Second))
		for _, f := range scene.frames {
			Expect(f.Elapsed).To(BeNumerically("<", 5*time.Second))
		}
	})

	It("resolves exactly once across back-to-back terminal frames", func() {
		c := Start(host, scene, 100*time.Millisecond)
		clock.Advance(200 * time.Millisecond)
		sched.Tick(clock.Now())
		Expect(c.Resolved()).To(BeTrue())
		Expect(sched.Pending()).To(Equal(0))
		clock.Advance(16 * time.Millisecond)
		sched.Tick(clock.Now())
		Expect(c.Resolutions()).To(Equal(1))
	})

	It("removes the resize listener before signalling", func() {
		c := Start(host, scene, 50*time.Millisecond)
		seen := make(chan int, 1)
		go func() {
			<-c.Done()
			seen <- hub.Listeners()
		}()
		Drive(clock, sched, c, 10*time.Millisecond, nil)
		Eventually(seen).Should(Receive(Equal(0)))
	})

	It("cleans up even when the duration is already over at the first frame", func() {
		c := Start(host, scene, 0)
		Expect(c.Resolved()).To(BeTrue())
		Expect(scene.frames).To(BeEmpty())
		Expect(hub.Listeners()).To(Equal(0))
		Expect(sched.Pending()).To(Equal(0))
	})

	It("forwards resize notifications only while running", func() {
		c := Start(host, scene, 100*time.Millisecond)
		hub.Notify()
		Expect(scene.resizes).To(Equal(2))
		Drive(clock, sched, c, 20*time.Millisecond, nil)
		hub.Notify()
		Expect(scene.resizes).To(Equal(2))
	})

	It("reports frame deltas between painted frames", func() {
		c := Start(host, scene, time.Second)
		Drive(clock, sched, c, 25*time.Millisecond, nil)
		Expect(scene.frames[0].Delta).To(BeZero())
		Expect(scene.frames[1].Delta).To(Equal(25 * time.Millisecond))
	})

	It("lets callers stop waiting without cancelling the run", func() {
		c := Start(host, scene, time.Second)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		Expect(c.Wait(ctx)).To(MatchError(context.Canceled))
		Drive(clock, sched, c, 50*time.Millisecond, nil)
		Expect(c.Wait(context.Background())).To(Succeed())
	})
})
