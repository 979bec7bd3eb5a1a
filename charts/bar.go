// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package charts

import (
	"image/color"

	"github.com/aclements/go-gg/table"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matchviz/matchviz/internal/ticks"
	"github.com/matchviz/matchviz/mark"
	"github.com/matchviz/matchviz/norm"
	"github.com/matchviz/matchviz/style"
)

// BarConfig configures Bar. XMetric is required; every other field has
// a usable zero value.
type BarConfig struct {
	// XMetric is the column plotted as bar length.
	XMetric string

	// XLabel is the x-axis label. Empty means XUnit.
	XLabel string

	// XUnit, when set, is appended to x tick labels (for example
	// "%" or "km/h").
	XUnit string

	// PrimaryHighlight and SecondaryHighlight are identifier groups
	// drawn in the style's highlight colors. Primary wins when a
	// row is in both.
	PrimaryHighlight   []string
	SecondaryHighlight []string

	// DataPointID is the identifier column used for group
	// membership; DataPointLabel is the column shown on the y
	// axis. Both default to "player_name".
	DataPointID    string
	DataPointLabel string

	// Title is the optional plot title.
	Title string

	// Style is the visual style. Nil means style.Default().
	Style *style.Style
}

// Bar plots a horizontal bar chart of cfg.XMetric, one bar per row,
// sorted ascending. Rows in the highlight groups get the highlight
// fill and a dashed guide line behind their bar.
func Bar(t *table.Table, cfg BarConfig) (*plot.Plot, error) {
	cfg.DataPointID = orDefault(cfg.DataPointID, DefaultIDColumn)
	cfg.DataPointLabel = orDefault(cfg.DataPointLabel, DefaultIDColumn)
	cfg.XLabel = orDefault(cfg.XLabel, cfg.XUnit)
	st := styleOrDefault(cfg.Style)

	values := norm.Floats(t, cfg.XMetric)
	labels := mark.Strings(t, cfg.DataPointLabel)
	classes := mark.Classify(t, cfg.DataPointID, cfg.PrimaryHighlight, cfg.SecondaryHighlight)
	fills := mark.Colors(classes, st.Base, st.Secondary, st.Primary)

	// Bottom-to-top in ascending metric order.
	perm := argsort(values)
	n := len(perm)
	sortedVals := make([]float64, n)
	sortedFills := make([]color.Color, n)
	sortedNames := make([]string, n)
	guides := make([]bool, n)
	for i, row := range perm {
		sortedVals[i] = values[row]
		sortedFills[i] = fills[row]
		sortedNames[i] = labels[row]
		guides[i] = classes[row] != mark.Background
	}

	p := plot.New()
	st.Apply(p)
	p.Title.Text = cfg.Title
	p.X.Label.Text = cfg.XLabel
	if cfg.XUnit != "" {
		p.X.Tick.Marker = ticks.Unit{Suffix: cfg.XUnit}
	}
	p.NominalY(sortedNames...)
	p.Y.Tick.Label.Font.Size = st.TickSize

	p.Add(houseGrid(st, 0.25))
	p.Add(hbars{
		values: sortedVals,
		fills:  sortedFills,
		guides: guides,
		edge:   draw.LineStyle{Color: st.Ink, Width: st.EdgeWidth},
		guideBG: draw.LineStyle{
			Color: st.Surface,
			Width: vg.Points(1),
		},
		guideFG: draw.LineStyle{
			Color:  st.Ink,
			Width:  st.GuideWidth,
			Dashes: []vg.Length{vg.Points(3), vg.Points(3)},
		},
		height: 0.8,
	})
	return p, nil
}

// hbars draws horizontal bars with per-row fills, plus guide lines
// behind highlighted rows. Bars sit at integer y positions matching
// the nominal y axis.
type hbars struct {
	values []float64
	fills  []color.Color
	guides []bool

	edge    draw.LineStyle
	guideBG draw.LineStyle
	guideFG draw.LineStyle
	height  float64
}

func (h hbars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	// Guides go under the bars.
	for i, g := range h.guides {
		if !g {
			continue
		}
		y := trY(float64(i))
		c.StrokeLine2(h.guideBG, c.Min.X, y, c.Max.X, y)
		c.StrokeLine2(h.guideFG, c.Min.X, y, c.Max.X, y)
	}

	for i, v := range h.values {
		x0, x1 := trX(0), trX(v)
		y0, y1 := trY(float64(i)-h.height/2), trY(float64(i)+h.height/2)
		poly := []vg.Point{
			{X: x0, Y: y0}, {X: x1, Y: y0},
			{X: x1, Y: y1}, {X: x0, Y: y1},
		}
		c.FillPolygon(h.fills[i], poly)
		c.StrokeLines(h.edge, append(poly, poly[0]))
	}
}

// DataRange implements plot.DataRanger. Bars grow from zero, so zero
// is always in range.
func (h hbars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = rangeOf(h.values)
	if xmin > 0 {
		xmin = 0
	}
	if xmax < 0 {
		xmax = 0
	}
	return xmin, xmax, -0.5, float64(len(h.values)) - 0.5
}
