// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mark assigns per-row visual attributes: a highlight class
// derived from group membership and a marker size derived from a
// numeric column.
package mark

import (
	"fmt"
	"image/color"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// Class is a row's visual class. Rows in the primary highlight group
// are Primary, rows in the secondary group but not the primary group
// are Secondary, and all other rows are Background.
type Class int

const (
	Background Class = iota
	Secondary
	Primary
)

func (c Class) String() string {
	switch c {
	case Background:
		return "background"
	case Secondary:
		return "secondary"
	case Primary:
		return "primary"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// Classify returns the visual class of each row of t. Membership is
// tested on the idCol column, which must be a string column. Primary
// membership always wins over secondary. Empty groups yield an
// all-Background classification.
func Classify(t *table.Table, idCol string, primary, secondary []string) []Class {
	ids := Strings(t, idCol)
	pset := stringSet(primary)
	sset := stringSet(secondary)
	classes := make([]Class, len(ids))
	for i, id := range ids {
		switch {
		case pset[id]:
			classes[i] = Primary
		case sset[id]:
			classes[i] = Secondary
		}
	}
	return classes
}

// Colors maps each class to its fill color.
func Colors(classes []Class, background, secondary, primary color.Color) []color.Color {
	out := make([]color.Color, len(classes))
	for i, c := range classes {
		switch c {
		case Primary:
			out[i] = primary
		case Secondary:
			out[i] = secondary
		default:
			out[i] = background
		}
	}
	return out
}

// SizeScale linearly rescales the named numeric column into
// [newMin, newMax] using the column's observed minimum and maximum:
//
//	newMin + (v - oldMin) * (newMax - newMin) / (oldMax - oldMin)
//
// If every value in the column is equal the divisor is zero and every
// result is non-finite; callers must guard against single-valued
// columns before calling.
func SizeScale(t *table.Table, col string, newMin, newMax float64) []float64 {
	var vs []float64
	slice.Convert(&vs, t.MustColumn(col))
	oldMin := slice.Min(vs).(float64)
	oldMax := slice.Max(vs).(float64)
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = newMin + (v-oldMin)*(newMax-newMin)/(oldMax-oldMin)
	}
	return out
}

// ConstSizes returns n copies of size, for charts with no sizing
// column.
func ConstSizes(n int, size float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = size
	}
	return out
}

// Strings returns the named column as []string. It panics if the
// column does not exist or is not a string column.
func Strings(t *table.Table, col string) []string {
	s, ok := t.MustColumn(col).([]string)
	if !ok {
		panic(fmt.Sprintf("column %q is not a string column", col))
	}
	return s
}

func stringSet(ss []string) map[string]bool {
	set := make(map[string]bool, len(ss))
	for _, s := range ss {
		set[s] = true
	}
	return set
}
