// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import (
	"image/color"
	"testing"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
)

func TestHex(t *testing.T) {
	for s, want := range map[string]color.RGBA{
		"#000000": {0, 0, 0, 255},
		"#ffffff": {255, 255, 255, 255},
		"#80CBA2": {0x80, 0xCB, 0xA2, 255},
		"#EE7A6F": {0xEE, 0x7A, 0x6F, 255},
	} {
		if got := Hex(s); got != want {
			t.Errorf("Hex(%q) should be %v; got %v", s, want, got)
		}
	}
}

func TestHexMalformed(t *testing.T) {
	for _, s := range []string{"", "80CBA2", "#80CB", "#xyzxyz"} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Hex(%q) should panic", s)
				}
			}()
			Hex(s)
		}()
	}
}

func TestAlpha(t *testing.T) {
	c := Alpha(color.RGBA{R: 10, G: 20, B: 30, A: 255}, 0.5)
	got, ok := c.(color.NRGBA)
	if !ok {
		t.Fatalf("Alpha should return color.NRGBA; got %T", c)
	}
	if got.R != 10 || got.G != 20 || got.B != 30 {
		t.Errorf("Alpha should preserve channels; got %v", got)
	}
	if got.A != 128 {
		t.Errorf("alpha 0.5 should round to 128; got %d", got.A)
	}

	// Out-of-range arguments clamp.
	if a := Alpha(color.Black, -1).(color.NRGBA).A; a != 0 {
		t.Errorf("alpha -1 should clamp to 0; got %d", a)
	}
	if a := Alpha(color.Black, 2).(color.NRGBA).A; a != 255 {
		t.Errorf("alpha 2 should clamp to 255; got %d", a)
	}
}

func TestDefault(t *testing.T) {
	s := Default()
	if s.Base != Hex("#80CBA2") || s.Primary != Hex("#EE7A6F") ||
		s.Secondary != Hex("#F6C243") || s.Ink != Hex("#0C1B37") {
		t.Errorf("Default palette wrong: %+v", s)
	}
	if s.Face.Weight == xfont.WeightBold {
		t.Errorf("regular face should not be bold")
	}
	if s.BoldFace.Weight != xfont.WeightBold {
		t.Errorf("bold face should be bold; got weight %v", s.BoldFace.Weight)
	}
	if s.Width <= 0 || s.Height <= 0 {
		t.Errorf("figure dimensions should be positive: %v x %v", s.Width, s.Height)
	}
}

func TestApply(t *testing.T) {
	p := plot.New()
	s := Default()
	s.Apply(p)

	if p.BackgroundColor != s.Surface {
		t.Errorf("background should be the surface color")
	}
	if p.Title.TextStyle.Font.Size != s.TitleSize {
		t.Errorf("title size should be %v; got %v", s.TitleSize, p.Title.TextStyle.Font.Size)
	}
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		if ax.Tick.Label.Color != s.Ink {
			t.Errorf("tick labels should use ink")
		}
		if ax.Label.TextStyle.Font.Weight != s.BoldFace.Weight {
			t.Errorf("axis labels should use the bold face")
		}
	}
}
