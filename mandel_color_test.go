package main

import "testing"

func TestHSVHueWraps(t *testing.T) {
	cases := [][2]int{
		{370, 10},
		{-20, 340},
		{360, 0},
		{720, 0},
		{-360, 0},
	}
	for _, c := range cases {
		got := hsvColor(c[0], saturation, brightness)
		want := hsvColor(c[1], saturation, brightness)
		if got != want {
			t.Fatalf("hsvColor(%d) = %v, want same as hsvColor(%d) = %v", c[0], got, c[1], want)
		}
	}
}

func TestHSVPrimarySectors(t *testing.T) {
	if c := hsvColor(0, 1, 1); c.R != 255 || c.G != 0 || c.B != 0 {
		t.Fatalf("hue 0 gave %v, want pure red", c)
	}
	if c := hsvColor(120, 1, 1); c.R != 0 || c.G != 255 || c.B != 0 {
		t.Fatalf("hue 120 gave %v, want pure green", c)
	}
	if c := hsvColor(240, 1, 1); c.R != 0 || c.G != 0 || c.B != 255 {
		t.Fatalf("hue 240 gave %v, want pure blue", c)
	}
}

func TestSentinelMapsToBackground(t *testing.T) {
	if got := colorAt(insideSet); got != background {
		t.Fatalf("sentinel mapped to %v, want background %v", got, background)
	}
	// First-iteration blowups past |z|^2 = 16 give counts below the
	// sentinel; those keep the background too.
	if got := colorAt(-4.5); got != background {
		t.Fatalf("deep overshoot mapped to %v, want background %v", got, background)
	}
}

func TestEscapedPointIsColored(t *testing.T) {
	got := colorAt(3.13)
	if got == background {
		t.Fatal("escaped point mapped to the background color")
	}
	if got.A != 0xFF {
		t.Fatalf("escaped point alpha %d, want opaque", got.A)
	}
}
