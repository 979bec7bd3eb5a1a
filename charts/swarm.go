// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package charts

import (
	"fmt"
	"image/color"
	"math"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matchviz/matchviz/adjust"
	"github.com/matchviz/matchviz/internal/ticks"
	"github.com/matchviz/matchviz/mark"
	"github.com/matchviz/matchviz/norm"
	"github.com/matchviz/matchviz/style"
)

// SwarmConfig configures SwarmViolin. XMetric and YMetric are
// required; YMetric must be a categorical string column.
type SwarmConfig struct {
	// XMetric is the numeric column spread along the x axis.
	XMetric string

	// YMetric is the categorical column splitting rows into
	// horizontal bands.
	YMetric string

	// YGroups restricts and orders the categories. Nil means every
	// distinct YMetric value in row order.
	YGroups []string

	// YGroupLabels relabels the bands. Nil means YGroups verbatim.
	YGroupLabels []string

	// XLabel defaults to XMetric. XUnit, when set, is appended to
	// x tick labels; a "%" axis is clamped to 110 when the data
	// runs past it.
	XLabel string
	XUnit  string

	PrimaryHighlight   []string
	SecondaryHighlight []string

	DataPointID    string
	DataPointLabel string

	Style *style.Style
}

// SwarmViolin plots one violin-plus-swarm band per category: a kernel
// density outline behind a swarm of markers, with highlighted rows
// drawn larger and labeled. Label adjustment is restricted to the y
// axis so the metric position of each label stays truthful.
func SwarmViolin(t *table.Table, cfg SwarmConfig) (*plot.Plot, error) {
	cfg.DataPointID = orDefault(cfg.DataPointID, DefaultIDColumn)
	cfg.DataPointLabel = orDefault(cfg.DataPointLabel, DefaultIDColumn)
	cfg.XLabel = orDefault(cfg.XLabel, cfg.XMetric)
	st := styleOrDefault(cfg.Style)

	cats := mark.Strings(t, cfg.YMetric)
	if cfg.YGroups == nil {
		cfg.YGroups = distinct(cats)
	}
	if cfg.YGroupLabels == nil {
		cfg.YGroupLabels = cfg.YGroups
	}
	if len(cfg.YGroupLabels) != len(cfg.YGroups) {
		return nil, fmt.Errorf("charts: %d group labels for %d groups", len(cfg.YGroupLabels), len(cfg.YGroups))
	}

	xs := norm.Floats(t, cfg.XMetric)
	rowLabels := mark.Strings(t, cfg.DataPointLabel)
	classes := mark.Classify(t, cfg.DataPointID, cfg.PrimaryHighlight, cfg.SecondaryHighlight)
	fills := mark.Colors(classes, st.Base, st.Secondary, st.Primary)

	n := len(cfg.YGroups)
	baseSize := 6.5 - float64(n)
	hlSize := 10 - float64(n)
	if baseSize < 2 {
		baseSize = 2
	}
	if hlSize < baseSize {
		hlSize = baseSize
	}

	p := plot.New()
	st.Apply(p)
	p.X.Label.Text = cfg.XLabel
	if cfg.XUnit != "" {
		p.X.Tick.Marker = ticks.Unit{Suffix: cfg.XUnit}
	}
	p.NominalY(cfg.YGroupLabels...)
	p.Y.Tick.Label.Font = st.BoldFace
	p.Y.Tick.Label.Font.Size = st.TickSize
	p.Y.LineStyle.Width = 0
	p.Y.Tick.Length = 0

	p.Add(houseGrid(st, 0.25))

	sw := &swarmPlotter{
		s:          st,
		baseRadius: vg.Points(baseSize / 2),
		hlRadius:   vg.Points(hlSize / 2),
		labelSize:  vg.Points(5),
		edge:       st.Ink,
		leader:     draw.LineStyle{Color: st.Ink, Width: st.EdgeWidth},
	}
	for gi, g := range cfg.YGroups {
		var grp swarmGroup
		grp.center = float64(gi)
		for row, cat := range cats {
			if cat != g {
				continue
			}
			grp.vals = append(grp.vals, xs[row])
			grp.fills = append(grp.fills, fills[row])
			grp.classes = append(grp.classes, classes[row])
			grp.labels = append(grp.labels, rowLabels[row])
		}
		if outline := violinOutline(grp.vals, grp.center); outline != nil {
			poly, err := plotter.NewPolygon(outline)
			if err != nil {
				return nil, fmt.Errorf("charts: violin for group %q: %w", g, err)
			}
			poly.Color = style.Alpha(st.Ink, 0.1)
			poly.LineStyle = draw.LineStyle{Color: st.Ink, Width: st.EdgeWidth}
			p.Add(poly)
		}
		sw.groups = append(sw.groups, grp)
	}
	p.Add(sw)

	if cfg.XUnit == "%" {
		if _, max := rangeOf(xs); max > 110 {
			p.X.Max = 110
		}
	}
	return p, nil
}

// violinOutline samples a kernel density estimate of vals and folds it
// into a closed outline around the band center, normalized so the
// widest point spans half a band. Returns nil when there is too
// little data for a density estimate.
func violinOutline(vals []float64, center float64) plotter.XYs {
	sample := stats.Sample{Xs: vals}
	if len(vals) < 2 {
		return nil
	}
	bw := stats.BandwidthScott(sample)
	if bw <= 0 || math.IsNaN(bw) || math.IsInf(bw, 0) {
		return nil
	}
	kde := stats.KDE{Sample: sample, Bandwidth: bw}
	min, max := sample.Bounds()
	ss := vec.Linspace(min-2*bw, max+2*bw, 128)
	pdf := vec.Map(kde.PDF, ss)
	peak := slice.Max(pdf).(float64)
	if peak <= 0 {
		return nil
	}

	xys := make(plotter.XYs, 0, 2*len(ss))
	for i, s := range ss {
		xys = append(xys, plotter.XY{X: s, Y: center + pdf[i]/peak*0.5})
	}
	for i := len(ss) - 1; i >= 0; i-- {
		xys = append(xys, plotter.XY{X: ss[i], Y: center - pdf[i]/peak*0.5})
	}
	return xys
}

type swarmGroup struct {
	center  float64
	vals    []float64
	fills   []color.Color
	classes []mark.Class
	labels  []string
}

// swarmPlotter draws each group's markers with beeswarm offsets and
// labels the highlighted rows. Offsets exist only in canvas space, so
// everything happens at draw time.
type swarmPlotter struct {
	s      *style.Style
	groups []swarmGroup

	baseRadius vg.Length
	hlRadius   vg.Length
	labelSize  vg.Length
	edge       color.Color
	leader     draw.LineStyle
}

func (sw *swarmPlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	sty := textStyle(sw.s, sw.labelSize, true)

	for _, g := range sw.groups {
		px := make([]float64, len(g.vals))
		for i, v := range g.vals {
			px[i] = float64(trX(v))
		}
		base := float64(trY(g.center))
		offs := beeswarm(px, float64(sw.baseRadius))

		// Background rows first so highlights sit on top.
		for _, hl := range []bool{false, true} {
			for i := range px {
				if (g.classes[i] != mark.Background) != hl {
					continue
				}
				r := sw.baseRadius
				if hl {
					r = sw.hlRadius
				}
				pt := vg.Point{X: vg.Length(px[i]), Y: vg.Length(base + offs[i])}
				c.DrawGlyph(draw.GlyphStyle{Color: g.fills[i], Radius: r, Shape: draw.CircleGlyph{}}, pt)
				c.DrawGlyph(draw.GlyphStyle{Color: sw.edge, Radius: r, Shape: draw.RingGlyph{}}, pt)
			}
		}

		// Labels attach to the highlighted rows' swarm positions.
		var (
			srcs  []adjust.Point
			boxes []adjust.Box
			texts []string
		)
		for i := range px {
			if g.classes[i] == mark.Background {
				continue
			}
			x, y := px[i], base+offs[i]
			w := float64(sty.Width(g.labels[i]))
			h := float64(sty.Height(g.labels[i]))
			r := float64(sw.hlRadius)
			srcs = append(srcs, adjust.Point{X: x, Y: y, R: r})
			boxes = append(boxes, adjust.Box{X: x + r + w/2, Y: y, W: w, H: h})
			texts = append(texts, g.labels[i])
		}
		if len(texts) == 0 {
			continue
		}

		pts := make([]adjust.Point, len(px))
		for i := range px {
			pts[i] = adjust.Point{X: px[i], Y: base + offs[i], R: float64(sw.baseRadius)}
		}
		placed := adjust.Place(boxes, pts, adjust.Config{
			ForceText:    0.75,
			ForcePoints:  0.75,
			ExpandText:   adjust.Expand{X: 1, Y: 3},
			ExpandPoints: adjust.Expand{X: 1, Y: 3},
			Only:         adjust.YOnly,
		})
		for _, seg := range adjust.Leaders(srcs, placed) {
			c.StrokeLine2(sw.leader, vg.Length(seg.X0), vg.Length(seg.Y0), vg.Length(seg.X1), vg.Length(seg.Y1))
		}
		for i, b := range placed {
			fillTextHalo(c, sty, sw.s.Surface, vg.Point{X: vg.Length(b.X), Y: vg.Length(b.Y)}, texts[i])
		}
	}
}

// DataRange implements plot.DataRanger.
func (sw *swarmPlotter) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.NaN(), math.NaN()
	for _, g := range sw.groups {
		lo, hi := rangeOf(g.vals)
		if math.IsNaN(xmin) || lo < xmin {
			xmin = lo
		}
		if math.IsNaN(xmax) || hi > xmax {
			xmax = hi
		}
	}
	return xmin, xmax, -0.5, float64(len(sw.groups)) - 0.5
}

// GlyphBoxes implements plot.GlyphBoxer, padding the plot for marker
// and jitter extents.
func (sw *swarmPlotter) GlyphBoxes(plt *plot.Plot) []plot.GlyphBox {
	// Jitter can stack several markers off-center; pad generously
	// rather than replaying the swarm layout here.
	pad := 4 * sw.hlRadius
	var bs []plot.GlyphBox
	for _, g := range sw.groups {
		for _, v := range g.vals {
			bs = append(bs, plot.GlyphBox{
				X: plt.X.Norm(v),
				Y: plt.Y.Norm(g.center),
				Rectangle: vg.Rectangle{
					Min: vg.Point{X: -sw.hlRadius, Y: -pad},
					Max: vg.Point{X: sw.hlRadius, Y: pad},
				},
			})
		}
	}
	return bs
}

// beeswarm computes perpendicular offsets that spread points with
// nearby positions into the classic non-overlapping swarm shape.
// Positions and the returned offsets are in the same units as r, the
// collision radius. Each point takes the offset closest to the
// centerline that does not collide with an already placed point.
func beeswarm(px []float64, r float64) []float64 {
	d := 2 * r
	offs := make([]float64, len(px))
	order := argsort(px)
	placedX := make([]float64, 0, len(px))
	placedY := make([]float64, 0, len(px))

	for _, i := range order {
		x := px[i]
		// Candidate offsets: the centerline, plus positions
		// touching each nearby placed point from above and below.
		cands := []float64{0}
		for k := range placedX {
			dx := x - placedX[k]
			if math.Abs(dx) >= d {
				continue
			}
			dy := math.Sqrt(d*d - dx*dx)
			cands = append(cands, placedY[k]+dy, placedY[k]-dy)
		}

		best := math.Inf(1)
		for _, cy := range cands {
			if math.Abs(cy) >= math.Abs(best) {
				continue
			}
			ok := true
			for k := range placedX {
				dx, dy := x-placedX[k], cy-placedY[k]
				if dx*dx+dy*dy < d*d-1e-9 {
					ok = false
					break
				}
			}
			if ok {
				best = cy
			}
		}
		if math.IsInf(best, 1) {
			best = 0
		}
		offs[i] = best
		placedX = append(placedX, x)
		placedY = append(placedY, best)
	}
	return offs
}

// distinct returns the distinct values of ss in first-appearance
// order.
func distinct(ss []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range ss {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
