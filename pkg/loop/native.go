//go:build !js

package loop

import "time"

// Native drives frames from a blocking loop on the calling goroutine.
type Native struct {
	// Done is checked before every frame. The loop returns once it reports
	// true. A nil Done runs forever.
	Done func() bool
}

// SetMainLoop blocks, calling frame once per 1/fps seconds. With fps <= 0
// frames run back to back. The loop blocks anyway, so simulateInfiniteLoop
// has no effect.
func (n *Native) SetMainLoop(frame func(), fps int, simulateInfiniteLoop bool) {
	var tick <-chan time.Time
	if fps > 0 {
		t := time.NewTicker(time.Second / time.Duration(fps))
		defer t.Stop()
		tick = t.C
	}

	for !n.done() {
		frame()

		// manually enforce FPS
		if tick != nil && !n.done() {
			<-tick
		}
	}
}

func (n *Native) done() bool {
	return n.Done != nil && n.Done()
}
