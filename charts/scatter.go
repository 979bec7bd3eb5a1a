// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package charts

import (
	"image/color"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matchviz/matchviz/adjust"
	"github.com/matchviz/matchviz/internal/ticks"
	"github.com/matchviz/matchviz/mark"
	"github.com/matchviz/matchviz/norm"
	"github.com/matchviz/matchviz/style"
)

// SumMinutesPlayedCol is the pseudo-metric accepted as a ZMetric: the
// player's total minutes, derived from minutes per match and match
// count when the column is absent.
const SumMinutesPlayedCol = "sum_minutes_played"

// ScatterConfig configures Scatter. XMetric and YMetric are required.
type ScatterConfig struct {
	// XMetric and YMetric are the plotted columns. ZMetric, when
	// set, drives marker sizes via a linear rescale to [50, 300];
	// it must not be single-valued.
	XMetric string
	YMetric string
	ZMetric string

	// XLabel and YLabel default to the metric column names. ZLabel
	// titles the size legend and defaults to ZMetric.
	XLabel string
	YLabel string
	ZLabel string

	// XAnnotation and YAnnotation, when both are set, describe the
	// axes in the corner annotations ("High pressing" etc).
	XAnnotation string
	YAnnotation string

	// XUnit and YUnit are appended to tick labels when set.
	XUnit string
	YUnit string

	// XSDHighlight and YSDHighlight label every row more than the
	// given number of standard deviations above the mean on that
	// axis. Zero disables that axis's threshold.
	XSDHighlight float64
	YSDHighlight float64

	PrimaryHighlight   []string
	SecondaryHighlight []string

	DataPointID    string
	DataPointLabel string

	// HideAverage suppresses the dashed mean cross-hair lines.
	HideAverage bool

	Style *style.Style
}

// Scatter plots XMetric against YMetric for every row. All rows are
// drawn translucent in the base color; rows that are highlighted or
// exceed a standard-deviation threshold are drawn opaque, labeled,
// and their labels are spread apart with leader lines back to the
// markers.
func Scatter(t *table.Table, cfg ScatterConfig) (*plot.Plot, error) {
	cfg.DataPointID = orDefault(cfg.DataPointID, DefaultIDColumn)
	cfg.DataPointLabel = orDefault(cfg.DataPointLabel, DefaultIDColumn)
	cfg.XLabel = orDefault(cfg.XLabel, cfg.XMetric)
	cfg.YLabel = orDefault(cfg.YLabel, cfg.YMetric)
	st := styleOrDefault(cfg.Style)

	if cfg.ZMetric == SumMinutesPlayedCol && t.Column(SumMinutesPlayedCol) == nil {
		t = table.NewBuilder(t).Add(SumMinutesPlayedCol, norm.SumMinutesPlayed(t)).Done()
	}

	xs := norm.Floats(t, cfg.XMetric)
	ys := norm.Floats(t, cfg.YMetric)
	labels := mark.Strings(t, cfg.DataPointLabel)
	classes := mark.Classify(t, cfg.DataPointID, cfg.PrimaryHighlight, cfg.SecondaryHighlight)

	var sizes []float64
	if cfg.ZMetric != "" {
		sizes = mark.SizeScale(t, cfg.ZMetric, 50, 300)
		cfg.ZLabel = orDefault(cfg.ZLabel, cfg.ZMetric)
	} else {
		sizes = mark.ConstSizes(t.Len(), 100)
	}

	xsample := stats.Sample{Xs: xs}
	ysample := stats.Sample{Xs: ys}

	// Rows that get an opaque mark and a text label: the highlight
	// groups, plus anything beyond the sd thresholds.
	labeled := make([]bool, t.Len())
	for i := range labeled {
		labeled[i] = classes[i] != mark.Background ||
			(cfg.XSDHighlight > 0 && xs[i] > xsample.Mean()+cfg.XSDHighlight*xsample.StdDev()) ||
			(cfg.YSDHighlight > 0 && ys[i] > ysample.Mean()+cfg.YSDHighlight*ysample.StdDev())
	}

	p := plot.New()
	st.Apply(p)
	p.X.Label.Text = cfg.XLabel
	p.Y.Label.Text = cfg.YLabel
	if cfg.XUnit != "" {
		p.X.Tick.Marker = ticks.Unit{Suffix: cfg.XUnit}
	}
	if cfg.YUnit != "" {
		p.Y.Tick.Marker = ticks.Unit{Suffix: cfg.YUnit}
	}
	// The house scatter has no left spine and no y tick marks.
	p.Y.LineStyle.Width = 0
	p.Y.Tick.Length = 0
	p.Legend.Top = true

	p.Add(houseGrid(st, 0.2))

	if !cfg.HideAverage {
		sty := draw.LineStyle{
			Color:  style.Alpha(st.Ink, 0.6),
			Width:  vg.Points(1),
			Dashes: []vg.Length{vg.Points(4), vg.Points(4)},
		}
		p.Add(meanLines{x: xsample.Mean(), y: ysample.Mean(), sty: sty})
		p.Legend.Add("Average", lineThumb{sty})
	}

	// Background layer: every row, translucent.
	bg := make([]color.Color, t.Len())
	for i := range bg {
		bg[i] = style.Alpha(st.Base, 0.3)
	}
	p.Add(dots{xs: xs, ys: ys, sizes: sizes, fills: bg, edge: style.Alpha(st.Ink, 0.3)})

	// Labeled layer: opaque, classified colors.
	fills := mark.Colors(classes, st.Base, st.Secondary, st.Primary)
	var (
		lx, ly, lsz []float64
		lfill       []color.Color
		ltext       []string
	)
	for i, on := range labeled {
		if !on {
			continue
		}
		lx = append(lx, xs[i])
		ly = append(ly, ys[i])
		lsz = append(lsz, sizes[i])
		lfill = append(lfill, fills[i])
		ltext = append(ltext, labels[i])
	}
	if len(lx) > 0 {
		p.Add(dots{xs: lx, ys: ly, sizes: lsz, fills: lfill, edge: st.Ink})
		p.Add(&labelSet{
			s:     st,
			xs:    lx,
			ys:    ly,
			sizes: lsz,
			texts: ltext,
			ptsX:  xs, ptsY: ys, ptsSizes: sizes,
			cfg: adjust.Config{
				ForceText:    0.5,
				ForcePoints:  0.5,
				ExpandPoints: adjust.Expand{X: 1.5, Y: 1.5},
			},
			leader: draw.LineStyle{Color: st.Ink, Width: st.EdgeWidth},
		})
	}

	if cfg.XAnnotation != "" && cfg.YAnnotation != "" {
		p.Add(cornerAnnotations{s: st, xAnn: cfg.XAnnotation, yAnn: cfg.YAnnotation})
	}

	if cfg.ZMetric != "" {
		addSizeLegend(p, st, cfg.ZLabel, sizes)
	}
	return p, nil
}

// addSizeLegend appends hollow glyphs showing what a high, average,
// and low visual weight looks like (mean and mean±1.5sd of the size
// column).
func addSizeLegend(p *plot.Plot, st *style.Style, zLabel string, sizes []float64) {
	sample := stats.Sample{Xs: sizes}
	mean, sd := sample.Mean(), sample.StdDev()
	edge := draw.LineStyle{Color: st.Ink, Width: st.EdgeWidth}

	clampRadius := func(v float64) vg.Length {
		if v < 0 {
			v = 0
		}
		return markRadius(v)
	}

	p.Legend.Add(" ")
	p.Legend.Add(zLabel + ":")
	p.Legend.Add("High", glyphThumb{r: clampRadius(mean + 1.5*sd), edge: edge})
	p.Legend.Add("Average", glyphThumb{r: clampRadius(mean), edge: edge})
	p.Legend.Add("Low", glyphThumb{r: clampRadius(mean - 1.5*sd), edge: edge})
}

// labelSet lays out and draws the text labels for a set of marks. The
// placement runs at draw time because text extents and repulsion
// happen in canvas coordinates.
type labelSet struct {
	s *style.Style

	// Labeled marks.
	xs, ys, sizes []float64
	texts         []string

	// Every mark on the plot; all of them repel labels.
	ptsX, ptsY, ptsSizes []float64

	cfg    adjust.Config
	leader draw.LineStyle
}

func (l *labelSet) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	sty := textStyle(l.s, l.s.AnnotationSize, true)

	boxes := make([]adjust.Box, len(l.texts))
	srcs := make([]adjust.Point, len(l.texts))
	for i, txt := range l.texts {
		px := float64(trX(l.xs[i]))
		py := float64(trY(l.ys[i]))
		w := float64(sty.Width(txt))
		h := float64(sty.Height(txt))
		r := float64(markRadius(l.sizes[i]))
		srcs[i] = adjust.Point{X: px, Y: py, R: r}
		// Start just right of the mark, like a left-anchored
		// annotation; repulsion takes it from there.
		boxes[i] = adjust.Box{X: px + r + w/2, Y: py, W: w, H: h}
	}

	pts := make([]adjust.Point, len(l.ptsX))
	for i := range l.ptsX {
		pts[i] = adjust.Point{
			X: float64(trX(l.ptsX[i])),
			Y: float64(trY(l.ptsY[i])),
			R: float64(markRadius(l.ptsSizes[i])),
		}
	}

	placed := adjust.Place(boxes, pts, l.cfg)
	for _, seg := range adjust.Leaders(srcs, placed) {
		c.StrokeLine2(l.leader, vg.Length(seg.X0), vg.Length(seg.Y0), vg.Length(seg.X1), vg.Length(seg.Y1))
	}
	for i, b := range placed {
		pt := vg.Point{X: vg.Length(b.X), Y: vg.Length(b.Y)}
		fillTextHalo(c, sty, l.s.Surface, pt, l.texts[i])
	}
}

// cornerAnnotations writes Low/High quadrant descriptions in the four
// plot corners, with the Low/High words in bold.
type cornerAnnotations struct {
	s          *style.Style
	xAnn, yAnn string
}

func (a cornerAnnotations) Plot(c draw.Canvas, plt *plot.Plot) {
	bold := textStyle(a.s, a.s.AnnotationSize, true)
	reg := textStyle(a.s, a.s.AnnotationSize, false)
	bold.XAlign, bold.YAlign = text.XLeft, text.YBottom
	reg.XAlign, reg.YAlign = text.XLeft, text.YBottom

	inset := vg.Points(2)
	lineH := vg.Length(float64(a.s.AnnotationSize) * 1.3)

	// One annotation line: a bold level word and a regular metric
	// description, drawn as two runs.
	drawTag := func(x, y vg.Length, right bool, level, ann string) {
		rest := " " + ann
		wb := bold.Width(level)
		wr := reg.Width(rest)
		if right {
			x -= wb + wr
		}
		fillTextHalo(c, bold, a.s.Surface, vg.Point{X: x, Y: y}, level)
		fillTextHalo(c, reg, a.s.Surface, vg.Point{X: x + wb, Y: y}, rest)
	}

	left, right := c.Min.X+inset, c.Max.X-inset
	bottom, top := c.Min.Y+inset, c.Max.Y-inset-lineH

	// Each corner reads: y-axis level, then x-axis level.
	drawTag(left, bottom+lineH, false, "Low", a.yAnn)
	drawTag(left, bottom, false, "Low", a.xAnn)
	drawTag(left, top, false, "High", a.yAnn)
	drawTag(left, top-lineH, false, "Low", a.xAnn)
	drawTag(right, bottom+lineH, true, "Low", a.yAnn)
	drawTag(right, bottom, true, "High", a.xAnn)
	drawTag(right, top, true, "High", a.yAnn)
	drawTag(right, top-lineH, true, "High", a.xAnn)
}
