// mandel_color.go - Escape-count to color mapping for MZoom

/*
MZoom - Interactive Mandelbrot explorer

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/MZoom
License: GPLv3 or later
*/

package main

import (
	"image/color"
	"math"
)

const (
	hueScale   = 10 // hue degrees per unit of smoothed count
	saturation = 0.8
	brightness = 0.8
)

// background is the fixed color for points that never escape.
var background = color.RGBA{A: 0xFF}

// colorAt maps a smoothed escape count to a display color. The sentinel, and
// any count at or below it (first-iteration blowups past |z|^2 = 16 land
// there), keeps the background.
func colorAt(nu float64) color.RGBA {
	if nu <= insideSet {
		return background
	}
	return hsvColor(int(math.Floor(nu*hueScale)), saturation, brightness)
}

// hsvColor converts HSV to RGBA. Hue is in degrees and may be any integer;
// it is folded into [0, 360) first.
func hsvColor(hue int, s, v float64) color.RGBA {
	h := hue % 360
	if h < 0 {
		h += 360
	}
	hf := float64(h) / 60
	i := int(hf)
	f := hf - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}
	return color.RGBA{uint8(r * 255), uint8(g * 255), uint8(b * 255), 0xFF}
}
