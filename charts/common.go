// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package charts renders the house bar, scatter, and swarm/violin
// charts on top of gonum.org/v1/plot.
//
// Each chart function takes a table of per-match metrics and a fixed
// configuration struct, classifies rows into highlight groups, and
// returns a styled *plot.Plot. Rendering the plot to a file or screen
// is the caller's concern.
package charts

import (
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matchviz/matchviz/style"
)

// DefaultIDColumn is the identifier and label column used when a
// config leaves them empty.
const DefaultIDColumn = "player_name"

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func styleOrDefault(s *style.Style) *style.Style {
	if s == nil {
		return style.Default()
	}
	return s
}

// markRadius converts a visual-weight value (the area-like size the
// Size Mapper produces, nominally 50-300) to a glyph radius.
func markRadius(size float64) vg.Length {
	return vg.Length(math.Sqrt(size) / 2)
}

// argsort returns row indices ordered by ascending value.
func argsort(vs []float64) []int {
	idx := make([]int, len(vs))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return vs[idx[a]] < vs[idx[b]] })
	return idx
}

func textStyle(s *style.Style, f vg.Length, bold bool) text.Style {
	sty := text.Style{
		Color:   s.Ink,
		Font:    s.Face,
		XAlign:  text.XCenter,
		YAlign:  text.YCenter,
		Handler: plot.DefaultTextHandler,
	}
	if bold {
		sty.Font = s.BoldFace
	}
	sty.Font.Size = f
	return sty
}

// fillTextHalo draws txt with a thin light halo under it so labels
// stay legible over marks, approximating a stroked path effect.
func fillTextHalo(c draw.Canvas, sty text.Style, halo color.Color, pt vg.Point, txt string) {
	under := sty
	under.Color = halo
	d := vg.Points(0.5)
	for _, off := range []vg.Point{{X: -d, Y: -d}, {X: d, Y: -d}, {X: -d, Y: d}, {X: d, Y: d}} {
		c.FillText(under, vg.Point{X: pt.X + off.X, Y: pt.Y + off.Y}, txt)
	}
	c.FillText(sty, pt, txt)
}

// houseGrid returns the dashed background grid.
func houseGrid(s *style.Style, alpha float64) *plotter.Grid {
	sty := draw.LineStyle{
		Color:  style.Alpha(s.Ink, alpha),
		Width:  s.GridWidth,
		Dashes: []vg.Length{vg.Points(2), vg.Points(2)},
	}
	g := plotter.NewGrid()
	g.Vertical = sty
	g.Horizontal = sty
	return g
}

// meanLines draws a dashed vertical line at X and a dashed horizontal
// line at Y, spanning the whole plotting area.
type meanLines struct {
	x, y float64
	sty  draw.LineStyle
}

func (m meanLines) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	c.StrokeLine2(m.sty, trX(m.x), c.Min.Y, trX(m.x), c.Max.Y)
	c.StrokeLine2(m.sty, c.Min.X, trY(m.y), c.Max.X, trY(m.y))
}

// lineThumb is a legend thumbnail for line-styled entries.
type lineThumb struct {
	sty draw.LineStyle
}

func (l lineThumb) Thumbnail(c *draw.Canvas) {
	y := (c.Min.Y + c.Max.Y) / 2
	c.StrokeLine2(l.sty, c.Min.X, y, c.Max.X, y)
}

// glyphThumb is a legend thumbnail showing a single sized glyph.
type glyphThumb struct {
	r    vg.Length
	fill color.Color
	edge draw.LineStyle
}

func (g glyphThumb) Thumbnail(c *draw.Canvas) {
	pt := vg.Point{X: (c.Min.X + c.Max.X) / 2, Y: (c.Min.Y + c.Max.Y) / 2}
	if g.fill != nil {
		c.DrawGlyph(draw.GlyphStyle{Color: g.fill, Radius: g.r, Shape: draw.CircleGlyph{}}, pt)
	}
	c.DrawGlyph(draw.GlyphStyle{Color: g.edge.Color, Radius: g.r, Shape: draw.RingGlyph{}}, pt)
}

// dots is a scatter layer with per-row fill colors and sizes and a
// common edge stroke.
type dots struct {
	xs, ys []float64
	sizes  []float64 // visual-weight values, not radii
	fills  []color.Color
	edge   color.Color
}

func (d dots) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for i := range d.xs {
		pt := vg.Point{X: trX(d.xs[i]), Y: trY(d.ys[i])}
		if !c.Contains(pt) {
			continue
		}
		r := markRadius(d.sizes[i])
		c.DrawGlyph(draw.GlyphStyle{Color: d.fills[i], Radius: r, Shape: draw.CircleGlyph{}}, pt)
		c.DrawGlyph(draw.GlyphStyle{Color: d.edge, Radius: r, Shape: draw.RingGlyph{}}, pt)
	}
}

// DataRange implements plot.DataRanger.
func (d dots) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = rangeOf(d.xs)
	ymin, ymax = rangeOf(d.ys)
	return
}

// GlyphBoxes implements plot.GlyphBoxer so markers near the plot edge
// get padding instead of being clipped.
func (d dots) GlyphBoxes(plt *plot.Plot) []plot.GlyphBox {
	bs := make([]plot.GlyphBox, len(d.xs))
	for i := range d.xs {
		r := markRadius(d.sizes[i])
		bs[i].X = plt.X.Norm(d.xs[i])
		bs[i].Y = plt.Y.Norm(d.ys[i])
		bs[i].Rectangle = vg.Rectangle{
			Min: vg.Point{X: -r, Y: -r},
			Max: vg.Point{X: r, Y: r},
		}
	}
	return bs
}

func rangeOf(vs []float64) (min, max float64) {
	min, max = math.NaN(), math.NaN()
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if math.IsNaN(min) || v < min {
			min = v
		}
		if math.IsNaN(max) || v > max {
			max = v
		}
	}
	return
}
