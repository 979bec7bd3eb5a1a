// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package charts

import (
	"math"
	"reflect"
	"testing"

	"github.com/aclements/go-gg/table"
)

func swarmTable() *table.Table {
	return new(table.Builder).
		Add("player_name", []string{"a", "b", "c", "d", "e", "f"}).
		Add("position", []string{"FB", "CB", "FB", "CB", "FB", "CB"}).
		Add("distance_per_90", []float64{10.1, 9.8, 10.4, 9.2, 11.0, 9.5}).
		Done()
}

func TestSwarmViolin(t *testing.T) {
	p, err := SwarmViolin(swarmTable(), SwarmConfig{
		XMetric:          "distance_per_90",
		YMetric:          "position",
		PrimaryHighlight: []string{"a"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if p == nil {
		t.Fatal("SwarmViolin should return a plot")
	}
	if p.X.Label.Text != "distance_per_90" {
		t.Errorf("x label should default to the metric; got %q", p.X.Label.Text)
	}
}

func TestSwarmViolinGroupLabels(t *testing.T) {
	_, err := SwarmViolin(swarmTable(), SwarmConfig{
		XMetric:      "distance_per_90",
		YMetric:      "position",
		YGroups:      []string{"FB", "CB"},
		YGroupLabels: []string{"Full backs"},
	})
	if err == nil {
		t.Fatal("mismatched group labels should be an error")
	}
}

func TestDistinct(t *testing.T) {
	got := distinct([]string{"FB", "CB", "FB", "W", "CB"})
	if want := []string{"FB", "CB", "W"}; !reflect.DeepEqual(got, want) {
		t.Errorf("distinct should be %v; got %v", want, got)
	}
}

func TestBeeswarm(t *testing.T) {
	// Three coincident points: center first, then one above, one
	// below.
	got := beeswarm([]float64{0, 0, 0}, 2)
	if want := []float64{0, 4, -4}; !reflect.DeepEqual(got, want) {
		t.Errorf("offsets should be %v; got %v", want, got)
	}
}

func TestBeeswarmNoCollisions(t *testing.T) {
	px := []float64{0, 0.5, 1, 1.2, 1.2, 3, 3.1, 10}
	const r = 1.5
	offs := beeswarm(px, r)
	for i := range px {
		for j := i + 1; j < len(px); j++ {
			dx, dy := px[i]-px[j], offs[i]-offs[j]
			if d := math.Hypot(dx, dy); d < 2*r-1e-6 {
				t.Errorf("points %d and %d collide: distance %v < %v", i, j, d, 2*r)
			}
		}
	}
}

func TestBeeswarmSeparatedUntouched(t *testing.T) {
	// Points further apart than a diameter stay on the centerline.
	offs := beeswarm([]float64{0, 10, 20}, 1)
	for i, off := range offs {
		if off != 0 {
			t.Errorf("point %d should not be displaced; got offset %v", i, off)
		}
	}
}

func TestViolinOutline(t *testing.T) {
	vals := []float64{9.2, 9.5, 9.8, 10.1, 10.4, 11.0}
	const center = 2.0
	xys := violinOutline(vals, center)
	if xys == nil {
		t.Fatal("outline should exist for well-spread data")
	}
	n := len(xys)
	if n%2 != 0 {
		t.Fatalf("outline should mirror top and bottom; got %d points", n)
	}

	peak := 0.0
	for i := 0; i < n/2; i++ {
		top, bot := xys[i], xys[n-1-i]
		if top.X != bot.X {
			t.Errorf("point %d: mirrored halves should share x: %v vs %v", i, top.X, bot.X)
		}
		if math.Abs(top.Y+bot.Y-2*center) > 1e-9 {
			t.Errorf("point %d: outline should be symmetric about the center", i)
		}
		if hw := top.Y - center; hw > peak {
			peak = hw
		}
	}
	if math.Abs(peak-0.5) > 1e-9 {
		t.Errorf("widest point should span half a band; got %v", peak)
	}
}

func TestViolinOutlineDegenerate(t *testing.T) {
	if violinOutline([]float64{5}, 0) != nil {
		t.Errorf("single value should produce no outline")
	}
	if violinOutline([]float64{5, 5, 5}, 0) != nil {
		t.Errorf("zero-variance values should produce no outline")
	}
	if violinOutline(nil, 0) != nil {
		t.Errorf("empty input should produce no outline")
	}
}

func TestSwarmPlotterDataRange(t *testing.T) {
	sw := &swarmPlotter{groups: []swarmGroup{
		{center: 0, vals: []float64{1, 5}},
		{center: 1, vals: []float64{-2, 3}},
	}}
	xmin, xmax, ymin, ymax := sw.DataRange()
	if xmin != -2 || xmax != 5 {
		t.Errorf("x range should be [-2, 5]; got [%v, %v]", xmin, xmax)
	}
	if ymin != -0.5 || ymax != 1.5 {
		t.Errorf("two bands should span y [-0.5, 1.5]; got [%v, %v]", ymin, ymax)
	}
}
