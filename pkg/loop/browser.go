//go:build js && wasm

package loop

import "syscall/js"

// Browser drives frames from the page's timers. SetMainLoop returns right
// away; the browser owns the loop from then on.
type Browser struct {
	cur *browserLoop
}

// browserLoop is one registration. Its callback only ever reschedules itself.
type browserLoop struct {
	fn       js.Func
	interval js.Value
	raf      js.Value
	stopped  bool
}

// SetMainLoop schedules frame with setInterval at fps, or with
// requestAnimationFrame when fps <= 0. A loop registered earlier is
// cancelled first. With simulateInfiniteLoop set it never returns.
func (b *Browser) SetMainLoop(frame func(), fps int, simulateInfiniteLoop bool) {
	b.cancel()

	window := js.Global()
	l := &browserLoop{}
	if fps > 0 {
		l.fn = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			frame()
			return nil
		})
		l.interval = window.Call("setInterval", l.fn, 1000/fps)
	} else {
		l.fn = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			frame()
			// frame may have replaced this loop
			if !l.stopped {
				l.raf = window.Call("requestAnimationFrame", l.fn)
			}
			return nil
		})
		l.raf = window.Call("requestAnimationFrame", l.fn)
	}
	b.cur = l

	if simulateInfiniteLoop {
		select {}
	}
}

func (b *Browser) cancel() {
	l := b.cur
	if l == nil {
		return
	}
	b.cur = nil

	window := js.Global()
	l.stopped = true
	if l.interval.Truthy() {
		window.Call("clearInterval", l.interval)
	}
	if l.raf.Truthy() {
		window.Call("cancelAnimationFrame", l.raf)
	}
	l.fn.Release()
}
