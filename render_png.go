// render_png.go - Offline PNG output for MZoom

/*
MZoom - Interactive Mandelbrot explorer

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/MZoom
License: GPLv3 or later
*/

package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// writePNG encodes a frame snapshot to a PNG file.
func writePNG(path string, snap FrameSnapshot) error {
	img := image.NewRGBA(image.Rect(0, 0, snap.Width, snap.Height))
	copy(img.Pix, snap.Buffer)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
