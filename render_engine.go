// render_engine.go - Compute worker and double-buffer swap for MZoom

/*
MZoom - Interactive Mandelbrot explorer

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/MZoom
License: GPLv3 or later
*/

package main

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// FrameBuffer is one of the two pixel grids the engine alternates between.
// Both are allocated once and live for the engine's lifetime; only the
// front/back role moves between them.
type FrameBuffer struct {
	pix           []byte // RGBA, width*height*4
	width, height int
}

func newFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		pix:    make([]byte, width*height*4),
		width:  width,
		height: height,
	}
}

// RenderEngine owns the compute side of the explorer: a worker goroutine
// that re-renders the escape-time field into the back buffer whenever a
// fresh view lands in its mailbox, then exchanges the buffer roles under
// the buffer mutex and flags the frame ready.
type RenderEngine struct {
	bufferMutex sync.Mutex // guards the front/back role pointers
	front       *FrameBuffer
	back        *FrameBuffer

	views chan View   // single-slot mailbox, latest view wins
	dirty atomic.Bool // a recompute is owed
	ready atomic.Bool // a completed frame awaits presentation

	workers int
	passes  atomic.Uint64

	ctx     context.Context
	cancel  context.CancelFunc
	started atomic.Bool
	done    chan struct{} // closed when the worker has exited
}

// NewRenderEngine allocates both frame buffers up front. A workers count
// below 1 selects one band per CPU.
func NewRenderEngine(width, height, workers int) (*RenderEngine, error) {
	if width <= 0 || height <= 0 {
		return nil, &VideoError{
			Operation: "engine creation",
			Details:   fmt.Sprintf("invalid frame size %dx%d", width, height),
		}
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &RenderEngine{
		front:   newFrameBuffer(width, height),
		back:    newFrameBuffer(width, height),
		views:   make(chan View, 1),
		workers: workers,
		ctx:     ctx,
		cancel:  cancel,
		done:    make(chan struct{}),
	}, nil
}

// Start launches the render worker.
func (e *RenderEngine) Start() {
	if !e.started.CompareAndSwap(false, true) {
		return
	}
	go e.renderLoop()
}

// Stop cancels any in-flight pass and joins the worker. Joining is bounded
// by one row per band, not one full frame scan.
func (e *RenderEngine) Stop() {
	e.cancel()
	if e.started.Load() {
		<-e.done
	}
}

// Publish hands the engine a view snapshot to render. The mailbox holds at
// most one pending view; publishing over an unconsumed one replaces it, so
// a burst of zooms costs a single pass against the final view. Called only
// from the input side.
func (e *RenderEngine) Publish(v View) {
	e.dirty.Store(true)
	for {
		select {
		case e.views <- v:
			return
		default:
		}
		// Stale view still queued, drop it and retry.
		select {
		case <-e.views:
		default:
		}
	}
}

// TryPresent copies the front buffer into dst if a fresh frame is waiting
// and clears the ready flag. The lock covers the whole copy: "which buffer
// is front" must hold stable for the copy's entire duration, not just the
// instant of the swap.
func (e *RenderEngine) TryPresent(dst []byte) bool {
	if !e.ready.Load() {
		return false
	}
	e.bufferMutex.Lock()
	copy(dst, e.front.pix)
	e.bufferMutex.Unlock()
	e.ready.Store(false)
	return true
}

// Snapshot returns a copy of the most recently completed frame.
func (e *RenderEngine) Snapshot() FrameSnapshot {
	e.bufferMutex.Lock()
	snap := FrameSnapshot{
		Buffer:    make([]byte, len(e.front.pix)),
		Width:     e.front.width,
		Height:    e.front.height,
		Timestamp: time.Now(),
	}
	copy(snap.Buffer, e.front.pix)
	e.bufferMutex.Unlock()
	return snap
}

// RenderOnce runs a single synchronous pass and returns the completed
// frame. This is the offline rendering path; it does not need Start.
func (e *RenderEngine) RenderOnce(v View) (FrameSnapshot, error) {
	if err := e.renderPass(v); err != nil {
		return FrameSnapshot{}, err
	}
	e.swap()
	e.ready.Store(true)
	e.passes.Add(1)
	return e.Snapshot(), nil
}

// renderLoop is the worker state machine: blocked on the mailbox while
// idle, computing a pass when a view arrives, swapping on completion.
// Shutdown is observed between passes and, via the pass context, per row.
func (e *RenderEngine) renderLoop() {
	defer close(e.done)
	for {
		select {
		case <-e.ctx.Done():
			return
		case v := <-e.views:
			e.dirty.Store(false)
			if err := e.renderPass(v); err != nil {
				if errors.Is(err, context.Canceled) {
					return
				}
				fmt.Printf("Render pass error: %v\n", err)
				continue
			}
			e.swap()
			e.ready.Store(true)
			e.passes.Add(1)
		}
	}
}

// renderPass scans every pixel of the back buffer for the given view
// snapshot. Rows are split into bands across the worker pool; bands write
// disjoint slices of the buffer, so the only synchronization is the final
// Wait. Cancellation is checked once per row.
func (e *RenderEngine) renderPass(v View) error {
	if v.PixelW != e.back.width || v.PixelH != e.back.height {
		return &VideoError{
			Operation: "render pass",
			Details: fmt.Sprintf("view size %dx%d does not match frame size %dx%d",
				v.PixelW, v.PixelH, e.back.width, e.back.height),
		}
	}

	maxIterations := adaptiveIterations(v.PlaneW)
	g, ctx := errgroup.WithContext(e.ctx)
	band := (v.PixelH + e.workers - 1) / e.workers
	for start := 0; start < v.PixelH; start += band {
		end := min(start+band, v.PixelH)
		g.Go(func() error {
			for y := start; y < end; y++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				row := e.back.pix[y*v.PixelW*4 : (y+1)*v.PixelW*4]
				for x := 0; x < v.PixelW; x++ {
					re, im := v.planeCoord(x, y)
					c := colorAt(escape(re, im, maxIterations))
					o := x * 4
					row[o] = c.R
					row[o+1] = c.G
					row[o+2] = c.B
					row[o+3] = c.A
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// swap exchanges the buffer roles. Pointer exchange only; pixel data never
// moves between the buffers.
func (e *RenderEngine) swap() {
	e.bufferMutex.Lock()
	e.front, e.back = e.back, e.front
	e.bufferMutex.Unlock()
}
