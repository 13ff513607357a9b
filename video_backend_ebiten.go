// video_backend_ebiten.go - Ebiten display backend for MZoom

/*
MZoom - Interactive Mandelbrot explorer

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/MZoom
License: GPLv3 or later
*/

package main

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
)

// EbitenOutput is the presenter/input side of the explorer. Each Update it
// polls for close and zoom events and mutates the canonical View; each Draw
// it pulls the latest completed frame out of the engine (under the swap
// lock) and presents it. The engine only ever sees View snapshots.
type EbitenOutput struct {
	engine *RenderEngine

	view       View // canonical copy, mutated by the input side only
	homeView   View
	zoomFactor float64

	running       bool
	window        *ebiten.Image
	width         int
	height        int
	scale         int
	windowedW     int
	windowedH     int
	fullscreen    bool
	showStatusBar bool
	pixels        []byte // currently displayed image
	frameCount    uint64
	vsyncChan     chan struct{}
	done          chan struct{}
	doneOnce      sync.Once

	clipboardOnce sync.Once
	clipboardOK   bool
}

func NewEbitenOutput(engine *RenderEngine, view View, zoomFactor float64, config DisplayConfig) (*EbitenOutput, error) {
	if engine == nil {
		return nil, &VideoError{Operation: "backend creation", Details: "nil render engine"}
	}
	width := config.Width
	if width <= 0 {
		width = 800
	}
	height := config.Height
	if height <= 0 {
		height = 600
	}
	scale := config.Scale
	if scale < 1 {
		scale = 1
	}
	if zoomFactor <= 0 || zoomFactor >= 1 {
		return nil, &VideoError{
			Operation: "backend creation",
			Details:   fmt.Sprintf("zoom factor %v outside (0, 1)", zoomFactor),
		}
	}
	return &EbitenOutput{
		engine:        engine,
		view:          view,
		homeView:      view,
		zoomFactor:    zoomFactor,
		width:         width,
		height:        height,
		scale:         scale,
		windowedW:     width * scale,
		windowedH:     height * scale,
		fullscreen:    config.Fullscreen,
		showStatusBar: true,
		pixels:        make([]byte, width*height*4),
		vsyncChan:     make(chan struct{}, 1),
		done:          make(chan struct{}),
	}, nil
}

func (eo *EbitenOutput) Start() error {
	if eo.running {
		return nil
	}
	eo.running = true
	ebiten.SetWindowSize(eo.windowedW, eo.windowedH)
	ebiten.SetWindowTitle("MZoom (c) 2024 - 2026 Zayn Otley")
	ebiten.SetWindowResizable(false)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetVsyncEnabled(true)
	if eo.fullscreen {
		ebiten.SetFullscreen(true)
	}

	// First frame before any input arrives.
	eo.engine.Publish(eo.view)

	go func() {
		defer func() {
			eo.running = false
			eo.doneOnce.Do(func() { close(eo.done) })
		}()
		if err := ebiten.RunGame(eo); err != nil {
			fmt.Printf("Ebiten error: %v\n", err)
		}
	}()

	// Wait for first Draw call to ensure Ebiten is ready
	<-eo.vsyncChan
	return nil
}

func (eo *EbitenOutput) Stop() error {
	eo.running = false
	return nil
}

func (eo *EbitenOutput) Done() <-chan struct{} {
	return eo.done
}

func (eo *EbitenOutput) IsStarted() bool {
	return eo.running
}

func (eo *EbitenOutput) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	if !eo.running {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		eo.fullscreen = !eo.fullscreen
		ebiten.SetFullscreen(eo.fullscreen)
		if !eo.fullscreen {
			ebiten.SetWindowSize(eo.windowedW, eo.windowedH)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		eo.showStatusBar = !eo.showStatusBar
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		eo.view = eo.homeView
		eo.engine.Publish(eo.view)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		eo.copyViewToClipboard()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		eo.zoomAtCursor(eo.zoomFactor)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		eo.zoomAtCursor(1 / eo.zoomFactor)
	}
	return nil
}

func (eo *EbitenOutput) zoomAtCursor(factor float64) {
	x, y := ebiten.CursorPosition()
	if x < 0 || y < 0 || x >= eo.width || y >= eo.height {
		return
	}
	eo.view.zoomAt(x, y, factor)
	eo.engine.Publish(eo.view)
}

func (eo *EbitenOutput) copyViewToClipboard() {
	eo.clipboardOnce.Do(func() {
		eo.clipboardOK = clipboard.Init() == nil
	})
	if !eo.clipboardOK {
		return
	}
	coords := fmt.Sprintf("center %.17g %+.17gi width %.17g",
		eo.view.CenterR, eo.view.CenterI, eo.view.PlaneW)
	clipboard.Write(clipboard.FmtText, []byte(coords))
}

func (eo *EbitenOutput) Draw(screen *ebiten.Image) {
	if eo.window == nil {
		eo.window = ebiten.NewImage(eo.width, eo.height)
	}

	eo.engine.TryPresent(eo.pixels)
	eo.window.WritePixels(eo.pixels)
	screen.DrawImage(eo.window, nil)
	if eo.showStatusBar {
		eo.drawStatusBar(screen)
	}

	eo.frameCount++
	select {
	case eo.vsyncChan <- struct{}{}:
	default:
	}
}

func (eo *EbitenOutput) Layout(_, _ int) (int, int) {
	return eo.width, eo.height
}

func (eo *EbitenOutput) drawStatusBar(screen *ebiten.Image) {
	barHeight := 31
	if barHeight >= eo.height {
		return
	}
	y := eo.height - barHeight
	ebitenutil.DrawRect(screen, 0, float64(y), float64(eo.width), float64(barHeight), color.RGBA{0, 0, 0, 180})

	face := basicfont.Face7x13
	labelColor := color.RGBA{190, 190, 190, 255}
	legendColor := color.RGBA{160, 160, 160, 255}

	line1 := fmt.Sprintf("center %.15g %+.15gi  width %.6g", eo.view.CenterR, eo.view.CenterI, eo.view.PlaneW)
	line2 := fmt.Sprintf("depth %d  fps %0.2f", adaptiveIterations(eo.view.PlaneW), ebiten.CurrentFPS())
	text.Draw(screen, line1, face, 6, y+13, labelColor)
	text.Draw(screen, line2, face, 6, y+26, labelColor)

	legend := "LMB In  RMB Out  R Home  C Copy  F11 Fullscreen  F12 Status Bar"
	legendW := text.BoundString(face, legend).Dx()
	text.Draw(screen, legend, face, max(eo.width-legendW-6, 6), y+26, legendColor)
}
