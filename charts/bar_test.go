// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package charts

import (
	"testing"

	"github.com/aclements/go-gg/table"
)

func barTable() *table.Table {
	return new(table.Builder).
		Add("player_name", []string{"a", "b", "c"}).
		Add("psv99", []float64{30.2, 34.5, 28.1}).
		Done()
}

func TestBar(t *testing.T) {
	p, err := Bar(barTable(), BarConfig{
		XMetric:          "psv99",
		XUnit:            "km/h",
		PrimaryHighlight: []string{"b"},
		Title:            "Top speed",
	})
	if err != nil {
		t.Fatal(err)
	}
	if p == nil {
		t.Fatal("Bar should return a plot")
	}
	if p.Title.Text != "Top speed" {
		t.Errorf("title should be set; got %q", p.Title.Text)
	}
	// The x label defaults to the unit.
	if p.X.Label.Text != "km/h" {
		t.Errorf("x label should default to the unit; got %q", p.X.Label.Text)
	}
}

func TestBarExplicitLabel(t *testing.T) {
	p, err := Bar(barTable(), BarConfig{XMetric: "psv99", XLabel: "Peak sprint velocity", XUnit: "km/h"})
	if err != nil {
		t.Fatal(err)
	}
	if p.X.Label.Text != "Peak sprint velocity" {
		t.Errorf("explicit x label should win over the unit; got %q", p.X.Label.Text)
	}
}

func TestHbarsDataRange(t *testing.T) {
	h := hbars{values: []float64{3, 5, 4}}
	xmin, xmax, ymin, ymax := h.DataRange()
	if xmin != 0 || xmax != 5 {
		t.Errorf("positive bars should range [0, 5]; got [%v, %v]", xmin, xmax)
	}
	if ymin != -0.5 || ymax != 2.5 {
		t.Errorf("three bars should span y [-0.5, 2.5]; got [%v, %v]", ymin, ymax)
	}

	// Bars grow from zero even when every value is negative.
	h = hbars{values: []float64{-3, -1}}
	xmin, xmax, _, _ = h.DataRange()
	if xmin != -3 || xmax != 0 {
		t.Errorf("negative bars should range [-3, 0]; got [%v, %v]", xmin, xmax)
	}
}
