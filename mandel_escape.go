// mandel_escape.go - Escape-time kernel for MZoom

/*
MZoom - Interactive Mandelbrot explorer

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/MZoom
License: GPLv3 or later
*/

package main

import "math"

// insideSet is the sentinel returned when c never escapes within the
// iteration budget; the point is treated as inside the set at this
// resolution.
const insideSet = -1.0

// escape iterates z <- z*z + c from z0 = 0 and returns the smoothed
// iteration count nu = i + 1 - log2(log2(|z|^2)) at the first iteration
// where the squared magnitude exceeds 4. The nested log runs on the
// squared magnitude, not |z|; the palette banding is tuned to this exact
// form. Pure function, safe to call from any number of goroutines.
func escape(cr, ci float64, maxIterations int) float64 {
	var zr, zi float64
	for i := 0; i < maxIterations; i++ {
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
		if mag2 := zr*zr + zi*zi; mag2 > 4 {
			return float64(i) + 1 - math.Log2(math.Log2(mag2))
		}
	}
	return insideSet
}

// adaptiveIterations derives a pass's iteration budget from the plane width
// of the view, so depth grows as the view narrows. The raw formula is
// negative for widths >= 1 and unbounded at extreme zoom; clamp to a floor
// of 1.
func adaptiveIterations(planeWidth float64) int {
	if planeWidth <= 0 {
		return 1
	}
	n := 64 + 4*math.Log10(1/planeWidth)
	if n < 1 {
		return 1
	}
	return int(n)
}
