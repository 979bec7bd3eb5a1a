// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package norm derives normalized columns from raw per-match metrics.
//
// Each function takes a table of per-match values and returns a new
// column (or an augmented table) where the metric has been rescaled to
// a standard exposure: 90 minutes played, 30 minutes of adjusted team
// in possession (TIP), or 100 of some other count metric.
//
// Rows whose denominator is zero produce non-finite values. This is
// deliberate: the result follows floating-point semantics and is not
// trapped here.
package norm

import (
	"strings"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// Column names for the two standard denominators.
const (
	MinutesPlayedCol = "minutes_played_per_match"
	AdjustedTIPCol   = "adjusted_min_tip_per_match"
	MatchCountCol    = "count_match"
)

// Per rescales the metric column to the given unit of the denominator
// column: metric / (denom / unit). Both columns must be numeric; a
// missing column panics from the table layer.
func Per(t *table.Table, metric, denom string, unit float64) []float64 {
	ms := Floats(t, metric)
	ds := Floats(t, denom)
	out := make([]float64, len(ms))
	for i, m := range ms {
		out[i] = m / (ds[i] / unit)
	}
	return out
}

// Per90 rescales a per-match metric to a 90-minute exposure using the
// minutes_played_per_match column.
func Per90(t *table.Table, metric string) []float64 {
	return Per(t, metric, MinutesPlayedCol, 90)
}

// Per30TIP rescales a per-match metric to 30 minutes of adjusted team
// in possession using the adjusted_min_tip_per_match column.
func Per30TIP(t *table.Table, metric string) []float64 {
	return Per(t, metric, AdjustedTIPCol, 30)
}

// Per100 rescales a per-match metric to 100 of the adjustment metric.
// For example, passes per 100 touches.
func Per100(t *table.Table, metric, adjustment string) []float64 {
	return Per(t, metric, adjustment, 100)
}

// AddPer30TIPMetrics derives the per-30-TIP equivalent of every count
// metric expressed per match. A column qualifies if its name contains
// both "count_" and "per_match"; the derived column replaces
// "per_match" with "per_30_tip" in the name. It returns the augmented
// table and the new column names in column order.
func AddPer30TIPMetrics(t *table.Table) (*table.Table, []string) {
	b := table.NewBuilder(t)
	var added []string
	for _, col := range t.Columns() {
		if !strings.Contains(col, "count_") || !strings.Contains(col, "per_match") {
			continue
		}
		name := strings.ReplaceAll(col, "per_match", "per_30_tip")
		b.Add(name, Per30TIP(t, col))
		added = append(added, name)
	}
	return b.Done(), added
}

// SumMinutesPlayed computes the total-minutes pseudo-metric used for
// scatter sizing: minutes_played_per_match * count_match / 10.
func SumMinutesPlayed(t *table.Table) []float64 {
	mins := Floats(t, MinutesPlayedCol)
	counts := Floats(t, MatchCountCol)
	out := make([]float64, len(mins))
	for i := range out {
		out[i] = mins[i] * counts[i] / 10
	}
	return out
}

// Floats returns the named column converted to []float64. It panics
// if the column does not exist or is not numeric.
func Floats(t *table.Table, col string) []float64 {
	var out []float64
	slice.Convert(&out, t.MustColumn(col))
	return out
}
