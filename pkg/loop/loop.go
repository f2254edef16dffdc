// Package loop hands a per-tick function to whatever drives frames in the
// current environment: a blocking loop natively, or the browser's scheduler
// under js/wasm where the program must not block.
package loop

// Host is a scheduling substrate. SetMainLoop registers frame to be called
// fps times per second; simulateInfiniteLoop asks the host to never return
// control to the caller.
type Host interface {
	SetMainLoop(frame func(), fps int, simulateInfiniteLoop bool)
}

// Bridge holds the one frame function a host currently drives.
//
// A Bridge is not safe for concurrent use. The host calls it from a single
// goroutine and each frame runs to completion before the next one starts.
type Bridge struct {
	frame  func()
	frames uint64
}

// Default is the process-wide bridge used by Start and Trampoline.
var Default = new(Bridge)

// Register stores frame, replacing any earlier one.
func (b *Bridge) Register(frame func()) {
	b.frame = frame
}

// InvokeIfPresent calls the registered frame function. It does nothing
// before Register.
func (b *Bridge) InvokeIfPresent() {
	if b.frame == nil {
		return
	}
	b.frame()
	b.frames++
}

// Frames returns how many frames have been delivered.
func (b *Bridge) Frames() uint64 {
	return b.frames
}

// Start registers frame on b and hands b to h.
func (b *Bridge) Start(h Host, frame func(), fps int, simulateInfiniteLoop bool) {
	b.Register(frame)
	h.SetMainLoop(b.InvokeIfPresent, fps, simulateInfiniteLoop)
}

// Trampoline runs the frame registered on Default. It carries no state of
// its own, so it can be handed to hosts that only accept a plain func().
func Trampoline() {
	Default.InvokeIfPresent()
}

// Start registers frame on Default and asks h to drive Trampoline.
func Start(h Host, frame func(), fps int, simulateInfiniteLoop bool) {
	Default.Register(frame)
	h.SetMainLoop(Trampoline, fps, simulateInfiniteLoop)
}
