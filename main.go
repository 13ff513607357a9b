// main.go - Main entry point for the MZoom explorer

/*
MZoom - Interactive Mandelbrot explorer

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/MZoom
License: GPLv3 or later
*/

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func boilerPlate() {
	fmt.Println("MZoom - Interactive Mandelbrot explorer")
	fmt.Println("(c) 2024 - 2026 Zayn Otley")
	fmt.Println("https://github.com/IntuitionAmiga/MZoom")
	fmt.Println("License: GPLv3 or later")
}

type viewOptions struct {
	width      int
	height     int
	workers    int
	centerReal float64
	centerImag float64
	planeWidth float64
}

func (o *viewOptions) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&o.width, "width", 800, "Frame width in pixels")
	cmd.Flags().IntVar(&o.height, "height", 600, "Frame height in pixels")
	cmd.Flags().IntVar(&o.workers, "workers", 0, "Render worker count (0 = one per CPU)")
	cmd.Flags().Float64Var(&o.centerReal, "center-real", -0.5, "Real part of the view center")
	cmd.Flags().Float64Var(&o.centerImag, "center-imag", 0, "Imaginary part of the view center")
	cmd.Flags().Float64Var(&o.planeWidth, "view-width", 3.0, "Plane width of the view")
}

func (o *viewOptions) view() View {
	return newView(o.centerReal, o.centerImag, o.planeWidth, o.width, o.height)
}

func mainCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mzoom",
		Short:         "Interactive Mandelbrot explorer",
		SilenceErrors: true,
	}
	root.AddCommand(exploreCmd(), renderCmd())
	return root
}

func exploreCmd() *cobra.Command {
	opts := &viewOptions{}
	var (
		scale      int
		fullscreen bool
		zoomFactor float64
	)
	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Open the interactive explorer window",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return runExplore(opts, scale, fullscreen, zoomFactor)
		},
	}
	opts.register(cmd)
	cmd.Flags().IntVar(&scale, "scale", 1, "Integer window scaling factor")
	cmd.Flags().BoolVar(&fullscreen, "fullscreen", false, "Start fullscreen")
	cmd.Flags().Float64Var(&zoomFactor, "zoom-factor", 0.5, "Extent multiplier per zoom click (< 1 zooms in)")
	return cmd
}

func renderCmd() *cobra.Command {
	opts := &viewOptions{}
	var out string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a single frame to a PNG file",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return runRender(opts, out)
		},
	}
	opts.register(cmd)
	cmd.Flags().StringVar(&out, "out", "mzoom.png", "Output PNG path")
	return cmd
}

func runExplore(opts *viewOptions, scale int, fullscreen bool, zoomFactor float64) error {
	engine, err := NewRenderEngine(opts.width, opts.height, opts.workers)
	if err != nil {
		return fmt.Errorf("failed to create render engine: %w", err)
	}
	output, err := NewVideoOutput(VIDEO_BACKEND_EBITEN, engine, opts.view(), zoomFactor, DisplayConfig{
		Width:      opts.width,
		Height:     opts.height,
		Scale:      scale,
		VSync:      true,
		Fullscreen: fullscreen,
	})
	if err != nil {
		return fmt.Errorf("failed to create video output: %w", err)
	}

	engine.Start()
	if err := output.Start(); err != nil {
		engine.Stop()
		return fmt.Errorf("failed to start video output: %w", err)
	}

	<-output.Done()
	engine.Stop()
	return nil
}

func runRender(opts *viewOptions, out string) error {
	engine, err := NewRenderEngine(opts.width, opts.height, opts.workers)
	if err != nil {
		return fmt.Errorf("failed to create render engine: %w", err)
	}
	snap, err := engine.RenderOnce(opts.view())
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	if err := writePNG(out, snap); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%dx%d)\n", out, snap.Width, snap.Height)
	return nil
}

func main() {
	boilerPlate()

	if err := mainCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
