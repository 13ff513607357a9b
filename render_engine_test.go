package main

import (
	"bytes"
	"testing"
	"time"
)

func newEngineTestRig(t *testing.T, width, height int) *RenderEngine {
	t.Helper()
	engine, err := NewRenderEngine(width, height, 2)
	if err != nil {
		t.Fatalf("engine creation failed: %v", err)
	}
	t.Cleanup(engine.Stop)
	return engine
}

func waitReady(t *testing.T, engine *RenderEngine) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !engine.ready.Load() {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for a completed frame")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestMailboxLatestViewWins(t *testing.T) {
	engine := newEngineTestRig(t, 16, 16)
	v1 := newView(-0.5, 0, 3.0, 16, 16)
	v2 := newView(0.25, 0.1, 1.0, 16, 16)

	engine.Publish(v1)
	engine.Publish(v2)

	if !engine.dirty.Load() {
		t.Fatal("expected dirty flag after publish")
	}
	select {
	case v := <-engine.views:
		if v.CenterR != v2.CenterR || v.PlaneW != v2.PlaneW {
			t.Fatalf("mailbox held center %v width %v, want the later view", v.CenterR, v.PlaneW)
		}
	default:
		t.Fatal("expected a queued view")
	}
	select {
	case <-engine.views:
		t.Fatal("expected a single-slot mailbox, found a second view")
	default:
	}
}

func TestCoalescedZoomsRenderOnceAgainstFinalView(t *testing.T) {
	engine := newEngineTestRig(t, 16, 16)
	v1 := newView(-0.5, 0, 3.0, 16, 16)
	v2 := newView(0.25, 0.1, 1.0, 16, 16)

	engine.Publish(v1)
	engine.Publish(v2)
	engine.Start()
	waitReady(t, engine)
	time.Sleep(20 * time.Millisecond)

	if got := engine.passes.Load(); got != 1 {
		t.Fatalf("two coalesced publishes ran %d passes, want 1", got)
	}
	if engine.dirty.Load() {
		t.Fatal("dirty flag still set after the pass")
	}

	got := make([]byte, 16*16*4)
	if !engine.TryPresent(got) {
		t.Fatal("expected a presentable frame")
	}

	reference := newEngineTestRig(t, 16, 16)
	snap, err := reference.RenderOnce(v2)
	if err != nil {
		t.Fatalf("reference render failed: %v", err)
	}
	if !bytes.Equal(got, snap.Buffer) {
		t.Fatal("coalesced pass did not render the final view")
	}
}

func TestSwapExchangesBufferRoles(t *testing.T) {
	engine := newEngineTestRig(t, 8, 8)
	front, back := engine.front, engine.back

	if _, err := engine.RenderOnce(newView(-0.5, 0, 3.0, 8, 8)); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if engine.front != back || engine.back != front {
		t.Fatal("swap did not exchange the buffer role pointers")
	}
}

func TestPresentClearsReady(t *testing.T) {
	engine := newEngineTestRig(t, 8, 8)
	if _, err := engine.RenderOnce(newView(-0.5, 0, 3.0, 8, 8)); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !engine.ready.Load() {
		t.Fatal("expected ready flag after a completed pass")
	}

	dst := make([]byte, 8*8*4)
	if !engine.TryPresent(dst) {
		t.Fatal("expected first present to succeed")
	}
	if engine.ready.Load() {
		t.Fatal("ready flag still set after present")
	}
	if engine.TryPresent(dst) {
		t.Fatal("second present succeeded without a new frame")
	}
}

func TestRenderPassMatchesDirectComputation(t *testing.T) {
	engine := newEngineTestRig(t, 8, 8)
	v := newView(-0.5, 0, 3.0, 8, 8)

	snap, err := engine.RenderOnce(v)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	maxIterations := adaptiveIterations(v.PlaneW)
	for y := 0; y < v.PixelH; y++ {
		for x := 0; x < v.PixelW; x++ {
			re, im := v.planeCoord(x, y)
			want := colorAt(escape(re, im, maxIterations))
			o := (y*v.PixelW + x) * 4
			if snap.Buffer[o] != want.R || snap.Buffer[o+1] != want.G ||
				snap.Buffer[o+2] != want.B || snap.Buffer[o+3] != want.A {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, snap.Buffer[o:o+4], want)
			}
		}
	}
}

func TestRenderPassRejectsSizeMismatch(t *testing.T) {
	engine := newEngineTestRig(t, 8, 8)
	if err := engine.renderPass(newView(-0.5, 0, 3.0, 16, 16)); err == nil {
		t.Fatal("expected an error for a mismatched view size")
	}
}

func TestStopJoinsWorker(t *testing.T) {
	engine := newEngineTestRig(t, 64, 64)
	engine.Start()
	engine.Publish(newView(-0.5, 0, 3.0, 64, 64))
	waitReady(t, engine)

	engine.Stop()
	select {
	case <-engine.done:
	default:
		t.Fatal("worker still running after Stop")
	}
}

func TestNewRenderEngineRejectsBadSize(t *testing.T) {
	if _, err := NewRenderEngine(0, 600, 1); err == nil {
		t.Fatal("expected an error for zero width")
	}
	if _, err := NewRenderEngine(800, -1, 1); err == nil {
		t.Fatal("expected an error for negative height")
	}
}
