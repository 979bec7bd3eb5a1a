// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ticks builds axis tick marks whose labels carry a unit
// suffix, such as "30 km/h" or "85 %".
package ticks

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/scale"
	"gonum.org/v1/plot"
)

// Unit is a plot.Ticker that suffixes major tick labels with a unit.
// The zero Suffix produces plain numeric labels.
type Unit struct {
	// Suffix is the unit appended to each major tick label.
	Suffix string

	// Max is the maximum number of major ticks. 0 means 6.
	Max int
}

var _ plot.Ticker = Unit{}

// Ticks implements plot.Ticker.
func (u Unit) Ticks(min, max float64) []plot.Tick {
	n := u.Max
	if n == 0 {
		n = 6
	}
	ls := scale.Linear{Min: min, Max: max}
	major, minor := ls.Ticks(scale.TickOptions{Max: n})

	isMajor := make(map[float64]bool, len(major))
	var out []plot.Tick
	for _, v := range major {
		isMajor[v] = true
		out = append(out, plot.Tick{Value: v, Label: u.label(v)})
	}
	for _, v := range minor {
		if !isMajor[v] {
			out = append(out, plot.Tick{Value: v})
		}
	}
	return out
}

func (u Unit) label(v float64) string {
	// Collapse negative zero so labels never read "-0".
	if v == 0 {
		v = math.Abs(v)
	}
	if u.Suffix == "" {
		return fmt.Sprintf("%g", v)
	}
	return fmt.Sprintf("%g %s", v, u.Suffix)
}
