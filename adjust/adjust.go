// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package adjust computes non-overlapping positions for text labels
// attached to plotted points.
//
// The algorithm is iterative local repulsion: every label and every
// marker is a repelling body, and on each iteration every label takes
// a small step away from the bodies it overlaps. The loop stops after
// a fixed iteration budget or when no label moves beyond a tolerance.
//
// The package works on plain geometry in whatever coordinate space the
// caller chooses (the chart functions use canvas points), so it can be
// driven by synthetic boxes in tests with no rendering backend.
//
// Final positions are deterministic for a given input but are not
// stable across inputs that differ by floating-point noise; callers
// should treat them as bounded (no residual overlap beyond tolerance)
// rather than exactly reproducible.
package adjust

import "math"

// A Box is a label's bounding box, identified by its center.
type Box struct {
	X, Y float64 // center
	W, H float64
}

// A Point is a repelling marker with radius R.
type Point struct {
	X, Y float64
	R    float64
}

// A Segment is a leader line from a label's source point to its
// placed position.
type Segment struct {
	X0, Y0 float64
	X1, Y1 float64
}

// Move constrains which axes labels may move along. XOnly and YOnly
// are for layouts where one axis carries categorical positions that
// must not change, such as the swarm plot.
type Move int

const (
	Both Move = iota
	XOnly
	YOnly
)

// Expand is a pair of multiplicative factors applied to box extents
// when testing for overlap, padding labels apart further than their
// exact bounds.
type Expand struct {
	X, Y float64
}

// Config controls the repulsion loop. The zero value of any field is
// replaced by its default.
type Config struct {
	// ForceText and ForcePoints scale the step taken away from an
	// overlapping label or point, as a fraction of the overlap.
	// Defaults: 0.5 and 0.5.
	ForceText   float64
	ForcePoints float64

	// ExpandText and ExpandPoints pad overlap tests between two
	// labels and between a label and a point. Defaults: 1.05, 1.2.
	ExpandText   Expand
	ExpandPoints Expand

	// MaxIter is the iteration budget. Default: 250.
	MaxIter int

	// Tol stops the loop early when no label moved further than
	// this in one iteration. Default: 0.05.
	Tol float64

	// Only constrains movement to one axis.
	Only Move
}

func (c Config) withDefaults() Config {
	if c.ForceText == 0 {
		c.ForceText = 0.5
	}
	if c.ForcePoints == 0 {
		c.ForcePoints = 0.5
	}
	if c.ExpandText == (Expand{}) {
		c.ExpandText = Expand{1.05, 1.2}
	}
	if c.ExpandPoints == (Expand{}) {
		c.ExpandPoints = Expand{1.05, 1.2}
	}
	if c.MaxIter == 0 {
		c.MaxIter = 250
	}
	if c.Tol == 0 {
		c.Tol = 0.05
	}
	return c
}

// Place returns adjusted copies of labels such that label boxes do not
// overlap each other or the given points beyond cfg's expansion
// factors and tolerance. The input slices are not modified.
func Place(labels []Box, points []Point, cfg Config) []Box {
	cfg = cfg.withDefaults()
	out := make([]Box, len(labels))
	copy(out, labels)

	dx := make([]float64, len(out))
	dy := make([]float64, len(out))
	for iter := 0; iter < cfg.MaxIter; iter++ {
		for i := range dx {
			dx[i], dy[i] = 0, 0
		}

		for i := range out {
			for j := range out {
				if i == j {
					continue
				}
				ox, oy := boxOverlap(out[i], out[j], cfg.ExpandText)
				if ox <= 0 || oy <= 0 {
					continue
				}
				sx, sy := apart(out[i].X-out[j].X, out[i].Y-out[j].Y, i-j)
				dx[i] += sx * ox * cfg.ForceText
				dy[i] += sy * oy * cfg.ForceText
			}
			for _, pt := range points {
				ox, oy := pointOverlap(out[i], pt, cfg.ExpandPoints)
				if ox <= 0 || oy <= 0 {
					continue
				}
				sx, sy := apart(out[i].X-pt.X, out[i].Y-pt.Y, i+1)
				dx[i] += sx * ox * cfg.ForcePoints
				dy[i] += sy * oy * cfg.ForcePoints
			}
		}

		moved := 0.0
		for i := range out {
			switch cfg.Only {
			case XOnly:
				dy[i] = 0
			case YOnly:
				dx[i] = 0
			}
			out[i].X += dx[i]
			out[i].Y += dy[i]
			if d := math.Hypot(dx[i], dy[i]); d > moved {
				moved = d
			}
		}
		if moved < cfg.Tol {
			break
		}
	}
	return out
}

// Leaders pairs each source point with its placed label, producing
// leader-line segments from the point to the label center. It panics
// if the slices differ in length.
func Leaders(sources []Point, placed []Box) []Segment {
	if len(sources) != len(placed) {
		panic("adjust: sources and placed labels differ in length")
	}
	segs := make([]Segment, len(placed))
	for i, b := range placed {
		segs[i] = Segment{sources[i].X, sources[i].Y, b.X, b.Y}
	}
	return segs
}

// boxOverlap returns the overlap extents of a and b along each axis
// after expanding both boxes by e. Non-positive extents mean no
// overlap.
func boxOverlap(a, b Box, e Expand) (ox, oy float64) {
	ox = (a.W+b.W)/2*e.X - math.Abs(a.X-b.X)
	oy = (a.H+b.H)/2*e.Y - math.Abs(a.Y-b.Y)
	return
}

// pointOverlap returns the overlap extents between box a and point pt,
// treating the point as a square of half-width pt.R.
func pointOverlap(a Box, pt Point, e Expand) (ox, oy float64) {
	ox = (a.W/2+pt.R)*e.X - math.Abs(a.X-pt.X)
	oy = (a.H/2+pt.R)*e.Y - math.Abs(a.Y-pt.Y)
	return
}

// apart returns a unit direction pushing a body at relative offset
// (vx, vy) away from its overlapping neighbor. Coincident centers get
// a deterministic vertical tie-break from the sign of k so stacked
// labels fan out instead of marching in lockstep.
func apart(vx, vy float64, k int) (sx, sy float64) {
	d := math.Hypot(vx, vy)
	if d == 0 {
		if k > 0 {
			return 0, 1
		}
		return 0, -1
	}
	return vx / d, vy / d
}
