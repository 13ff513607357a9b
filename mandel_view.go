// mandel_view.go - View rectangle and pixel-to-plane mapping for MZoom

/*
MZoom - Interactive Mandelbrot explorer

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/MZoom
License: GPLv3 or later
*/

package main

// View is the visible rectangle of the complex plane plus its pixel-to-plane
// mapping. It is a value type on purpose: the input side owns the canonical
// copy and the render engine only ever receives struct copies, so a pass in
// flight never aliases fields the input side keeps mutating.
type View struct {
	CenterR, CenterI float64 // plane coordinate under the middle of the image
	PlaneW, PlaneH   float64 // plane-space extents
	MinR, MinI       float64 // derived lower-left corner of the rectangle
	ScaleR, ScaleI   float64 // derived plane units per pixel
	PixelW, PixelH   int
}

// newView builds a view centered on (centerR, centerI) spanning planeW plane
// units horizontally. The vertical extent follows the pixel aspect ratio.
func newView(centerR, centerI, planeW float64, pixelW, pixelH int) View {
	v := View{
		CenterR: centerR,
		CenterI: centerI,
		PlaneW:  planeW,
		PlaneH:  planeW * float64(pixelH) / float64(pixelW),
		PixelW:  pixelW,
		PixelH:  pixelH,
	}
	v.recompute()
	return v
}

// recompute refreshes the derived corner and scale factors. It runs whenever
// center or extents change; the derived fields are never adjusted on their
// own.
func (v *View) recompute() {
	v.MinR = v.CenterR - v.PlaneW/2
	v.MinI = v.CenterI - v.PlaneH/2
	v.ScaleR = v.PlaneW / float64(v.PixelW)
	v.ScaleI = v.PlaneH / float64(v.PixelH)
}

// planeCoord maps a pixel (origin top-left) to the plane coordinate at the
// pixel's center. Increasing y walks down the screen but down the imaginary
// axis, hence the vertical flip.
func (v View) planeCoord(x, y int) (float64, float64) {
	re := v.ScaleR*(float64(x)+0.5) + v.MinR
	im := v.ScaleI*(float64(v.PixelH-y-1)+0.5) + v.MinI
	return re, im
}

// zoomAt rescales the view about the plane point under pixel (x, y). The
// target is located with the pre-zoom scale before the extents shrink; that
// ordering is what keeps the point under the cursor fixed across the zoom.
func (v *View) zoomAt(x, y int, factor float64) {
	re, im := v.planeCoord(x, y)
	v.PlaneW *= factor
	v.PlaneH *= factor
	v.CenterR = re
	v.CenterI = im
	v.recompute()
}
