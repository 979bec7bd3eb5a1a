// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import (
	"math"
	"reflect"
	"testing"

	"github.com/aclements/go-gg/table"
)

func approxEq(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func TestPer90(t *testing.T) {
	tab := new(table.Builder).
		Add("metric_per_match", []float64{10, 20, 30}).
		Add(MinutesPlayedCol, []float64{90, 45, 30}).
		Done()
	got := Per90(tab, "metric_per_match")
	if want := []float64{10, 40, 90}; !approxEq(got, want, 1e-12) {
		t.Errorf("Per90 should be %v; got %v", want, got)
	}

	// result * minutes == metric * 90 whenever minutes != 0.
	mins := []float64{90, 45, 30}
	metric := []float64{10, 20, 30}
	for i, v := range got {
		if math.Abs(v*mins[i]-metric[i]*90) > 1e-9 {
			t.Errorf("row %d: %v*%v != %v*90", i, v, mins[i], metric[i])
		}
	}
}

func TestPer90ZeroMinutes(t *testing.T) {
	tab := new(table.Builder).
		Add("m", []float64{5, 0}).
		Add(MinutesPlayedCol, []float64{0, 0}).
		Done()
	got := Per90(tab, "m")
	if !math.IsInf(got[0], 1) {
		t.Errorf("5/(0/90) should be +Inf; got %v", got[0])
	}
	if !math.IsNaN(got[1]) {
		t.Errorf("0/(0/90) should be NaN; got %v", got[1])
	}
}

func TestPer100ScaleInvariance(t *testing.T) {
	metric := []float64{3, 7, 11}
	adj := []float64{50, 25, 10}
	tab := new(table.Builder).
		Add("m", metric).
		Add("adj", adj).
		Done()
	base := Per100(tab, "m", "adj")

	const k = 12.5
	m2 := make([]float64, len(metric))
	a2 := make([]float64, len(adj))
	for i := range metric {
		m2[i] = metric[i] * k
		a2[i] = adj[i] * k
	}
	scaled := Per100(new(table.Builder).Add("m", m2).Add("adj", a2).Done(), "m", "adj")
	if !approxEq(base, scaled, 1e-9) {
		t.Errorf("Per100 should be scale invariant: %v vs %v", base, scaled)
	}
}

func TestPer30TIP(t *testing.T) {
	tab := new(table.Builder).
		Add("count_sprints_per_match", []float64{30}).
		Add(AdjustedTIPCol, []float64{15}).
		Done()
	got := Per30TIP(tab, "count_sprints_per_match")
	if want := []float64{60}; !approxEq(got, want, 1e-12) {
		t.Errorf("Per30TIP should be %v; got %v", want, got)
	}
}

func TestAddPer30TIPMetrics(t *testing.T) {
	tab := new(table.Builder).
		Add("player_name", []string{"a", "b"}).
		Add("count_sprints_per_match", []float64{30, 10}).
		Add("count_passes_per_match", []float64{60, 20}).
		Add("distance_per_match", []float64{100, 200}).
		Add(AdjustedTIPCol, []float64{15, 30}).
		Done()

	got, added := AddPer30TIPMetrics(tab)
	want := []string{"count_sprints_per_30_tip", "count_passes_per_30_tip"}
	if !reflect.DeepEqual(added, want) {
		t.Fatalf("added columns should be %v; got %v", want, added)
	}
	for _, col := range want {
		if got.Column(col) == nil {
			t.Errorf("column %q missing from result", col)
		}
	}
	// Untouched source columns survive.
	if got.Column("distance_per_match") == nil {
		t.Errorf("distance_per_match should be preserved")
	}
	if got.Column("distance_per_30_tip") != nil {
		t.Errorf("distance_per_match is not a count metric; should not be derived")
	}

	sprints := got.Column("count_sprints_per_30_tip").([]float64)
	if want := []float64{60, 10}; !approxEq(sprints, want, 1e-12) {
		t.Errorf("count_sprints_per_30_tip should be %v; got %v", want, sprints)
	}
}

func TestSumMinutesPlayed(t *testing.T) {
	tab := new(table.Builder).
		Add(MinutesPlayedCol, []float64{90, 60}).
		Add(MatchCountCol, []float64{10, 20}).
		Done()
	got := SumMinutesPlayed(tab)
	if want := []float64{90, 120}; !approxEq(got, want, 1e-12) {
		t.Errorf("SumMinutesPlayed should be %v; got %v", want, got)
	}
}

func TestFloatsConvertsInts(t *testing.T) {
	tab := new(table.Builder).Add("n", []int{1, 2, 3}).Done()
	got := Floats(tab, "n")
	if want := []float64{1, 2, 3}; !approxEq(got, want, 0) {
		t.Errorf("Floats should be %v; got %v", want, got)
	}
}
