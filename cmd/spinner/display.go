//go:build !js

package main

import (
	"log"

	"github.com/kbinani/screenshot"
)

// fitDisplay shrinks the requested window size to the primary display.
func fitDisplay(width, height float64) (float64, float64) {
	if screenshot.NumActiveDisplays() == 0 {
		return width, height
	}

	bounds := screenshot.GetDisplayBounds(0)
	dw, dh := float64(bounds.Dx()), float64(bounds.Dy())
	if dw <= 0 || dh <= 0 || (width <= dw && height <= dh) {
		return width, height
	}

	w, h := width, height
	if w > dw {
		w = dw
	}
	if h > dh {
		h = dh
	}
	log.Printf("display is %.0fx%.0f, shrinking window from %.0fx%.0f to %.0fx%.0f", dw, dh, width, height, w, h)
	return w, h
}
