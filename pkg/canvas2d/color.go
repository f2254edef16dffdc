// Package canvas2d draws pixel triangles onto an HTML canvas through its 2D
// context. The canvas itself is only available under js/wasm.
package canvas2d

import (
	"fmt"

	"github.com/faiface/pixel"
)

func cssColor(c pixel.RGBA) string {
	// pixel.RGBA is alpha-premultiplied
	r, g, b := c.R, c.G, c.B
	if c.A > 0 {
		r, g, b = r/c.A, g/c.A, b/c.A
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", int(r*255+0.5), int(g*255+0.5), int(b*255+0.5), c.A)
}

// colorRuns splits the triangles into runs of consecutive triangles sharing
// the colour of their first vertex. Each run is [start, end) in vertices.
func colorRuns(td *pixel.TrianglesData) [][2]int {
	var runs [][2]int
	n := td.Len() / 3 * 3
	for i := 0; i < n; i += 3 {
		if last := len(runs) - 1; last >= 0 && td.Color(runs[last][0]) == td.Color(i) {
			runs[last][1] = i + 3
			continue
		}
		runs = append(runs, [2]int{i, i + 3})
	}
	return runs
}
