// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package style defines the house visual style shared by all chart
// functions.
//
// The style is an explicit value constructed once by the caller and
// passed to each chart function, rather than process-wide mutable
// configuration. Default returns the standard palette and typography;
// callers that need a variant copy the value and change fields.
package style

import (
	"fmt"
	"image/color"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
)

// Style is the visual configuration for a chart: palette, typography,
// line weights, and figure dimensions.
type Style struct {
	// Base is the fill for unclassified ("background") marks.
	Base color.Color

	// Primary and Secondary are the fills for the two highlight
	// groups. Primary takes precedence when a row is in both.
	Primary   color.Color
	Secondary color.Color

	// Ink is the color for text, axis lines, mark edges, and
	// leader lines.
	Ink color.Color

	// Surface is the figure background.
	Surface color.Color

	// Face and BoldFace are the regular and bold text faces. Sizes
	// are carried separately so one face serves several elements.
	Face     font.Font
	BoldFace font.Font

	// TitleSize, LabelSize, TickSize, and AnnotationSize are text
	// sizes for the plot title, axis labels, tick labels, and
	// data-point annotations.
	TitleSize      vg.Length
	LabelSize      vg.Length
	TickSize       vg.Length
	AnnotationSize vg.Length

	// EdgeWidth is the stroke width for mark outlines. GridWidth
	// and GuideWidth are the grid and highlight-guide strokes.
	EdgeWidth  vg.Length
	GridWidth  vg.Length
	GuideWidth vg.Length

	// Width and Height are the intended figure dimensions. The
	// chart functions do not render; callers use these when
	// writing the returned plot out.
	Width  vg.Length
	Height vg.Length
}

// Default returns the house style.
func Default() *Style {
	face := font.Font{Typeface: "Liberation", Variant: "Sans"}
	bold := face
	bold.Weight = xfont.WeightBold
	return &Style{
		Base:      Hex("#80CBA2"),
		Primary:   Hex("#EE7A6F"),
		Secondary: Hex("#F6C243"),
		Ink:       Hex("#0C1B37"),
		Surface:   color.White,

		Face:     face,
		BoldFace: bold,

		TitleSize:      vg.Points(10),
		LabelSize:      vg.Points(7),
		TickSize:       vg.Points(7),
		AnnotationSize: vg.Points(6),

		EdgeWidth:  vg.Points(0.5),
		GridWidth:  vg.Points(0.5),
		GuideWidth: vg.Points(0.75),

		Width:  8 * vg.Inch,
		Height: 4 * vg.Inch,
	}
}

// Apply sets the style's typography and colors on p. It does not add
// any marks; chart functions layer those on top.
func (s *Style) Apply(p *plot.Plot) {
	p.BackgroundColor = s.Surface

	p.Title.TextStyle.Color = s.Ink
	p.Title.TextStyle.Font = s.BoldFace
	p.Title.TextStyle.Font.Size = s.TitleSize

	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.Label.TextStyle.Color = s.Ink
		ax.Label.TextStyle.Font = s.BoldFace
		ax.Label.TextStyle.Font.Size = s.LabelSize
		ax.LineStyle.Color = s.Ink
		ax.LineStyle.Width = s.EdgeWidth
		ax.Tick.Label.Color = s.Ink
		ax.Tick.Label.Font = s.Face
		ax.Tick.Label.Font.Size = s.TickSize
		ax.Tick.LineStyle.Color = s.Ink
		ax.Tick.LineStyle.Width = s.EdgeWidth
	}

	p.Legend.TextStyle.Color = s.Ink
	p.Legend.TextStyle.Font = s.Face
	p.Legend.TextStyle.Font.Size = s.AnnotationSize
}

// Alpha returns c with its alpha scaled to a, preserving the color
// channels. a is clamped to [0, 1].
func Alpha(c color.Color, a float64) color.Color {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	r, g, b, _ := c.RGBA()
	return color.NRGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(a*255 + 0.5),
	}
}

// Hex parses a #RRGGBB color literal. It panics if s is malformed;
// the arguments are expected to be compile-time constants.
func Hex(s string) color.RGBA {
	var r, g, b uint8
	if n, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); n != 3 || err != nil {
		panic(fmt.Sprintf("malformed color %q", s))
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
