// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the conversion formulas that map a pet's chronological age
// to an equivalent human age.
//
// Why a discriminated formula type?
//
// Every supported animal converts with one of two shapes. Modeling the shapes
// as small value types behind a shared interface keeps the species table
// declarative and lets tests exercise the arithmetic directly, without going
// through a table lookup first.
package species

// Formula converts a chronological age in years to raw, unrounded human years.
type Formula interface {
	HumanYears(age float64) float64
}

// Linear is a single-phase conversion: human = Offset + age*Rate.
type Linear struct {
	Offset float64
	Rate   float64
}

// HumanYears implements Formula.
func (f Linear) HumanYears(age float64) float64 {
	return f.Offset + age*f.Rate
}

// TwoPhase is a piecewise conversion with a fast early phase. Up to and
// including Breakpoint the age scales by YoungRate; past it, growth continues
// from Base at AdultRate. Base equals Breakpoint*YoungRate for every entry in
// the table, so the curve has no jump at the breakpoint.
type TwoPhase struct {
	YoungRate  float64
	Breakpoint float64
	Base       float64
	AdultRate  float64
}

// HumanYears implements Formula.
func (f TwoPhase) HumanYears(age float64) float64 {
	if age <= f.Breakpoint {
		return age * f.YoungRate
	}
	return f.Base + (age-f.Breakpoint)*f.AdultRate
}
