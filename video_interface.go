// video_interface.go - Display backend interface for MZoom

/*
MZoom - Interactive Mandelbrot explorer

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/MZoom
License: GPLv3 or later
*/

package main

import (
	"fmt"
	"time"
)

// VideoError provides detailed error context for display operations
type VideoError struct {
	Operation string // What operation was being attempted
	Details   string // Additional error context
	Err       error  // Underlying error if any
}

func (e *VideoError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("video %s failed: %s: %v", e.Operation, e.Details, e.Err)
	}
	return fmt.Sprintf("video %s failed: %s", e.Operation, e.Details)
}

func (e *VideoError) Unwrap() error {
	return e.Err
}

// FrameSnapshot encapsulates a copy of a completed frame
type FrameSnapshot struct {
	Buffer    []byte // Raw RGBA frame data
	Width     int    // Frame width in pixels
	Height    int    // Frame height in pixels
	Timestamp time.Time
}

// DisplayConfig contains backend-independent window configuration
type DisplayConfig struct {
	Width      int
	Height     int
	Scale      int // Integer scaling factor for output
	VSync      bool
	Fullscreen bool
}

// VideoOutput defines the minimal lifecycle interface a display backend
// must implement. Input polling and frame presentation live inside the
// backend; the rest of the explorer only starts it, stops it, and waits
// for it to finish.
type VideoOutput interface {
	Start() error
	Stop() error
	Done() <-chan struct{}
	IsStarted() bool
}

// Predefined video backend types
const (
	VIDEO_BACKEND_EBITEN = iota // Pure Go Ebiten backend
)

// NewVideoOutput creates a display backend driving the given engine. The
// view is the backend's starting viewport; zoomFactor is the per-click
// extent multiplier (< 1 zooms in).
func NewVideoOutput(backend int, engine *RenderEngine, view View, zoomFactor float64, config DisplayConfig) (VideoOutput, error) {
	switch backend {
	case VIDEO_BACKEND_EBITEN:
		return NewEbitenOutput(engine, view, zoomFactor, config)
	}
	return nil, &VideoError{
		Operation: "backend creation",
		Details:   fmt.Sprintf("unknown backend type: %d", backend),
	}
}
