// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Record structure and the fixed table of supported
// animals.
//
// Why is the table a package-level variable?
//
// The table is read-only for the whole process lifetime. Declaring it once at
// package level, with a derived index map for lookups, gives every consumer
// the same immutable view without any registration or lifecycle machinery.
// Accessors hand out copies so callers cannot reorder or mutate the shared
// backing slice.
package species

import (
	"math"
	"strings"
)

// HumanMaxLifespan is the reference human lifespan in years. It caps the
// human-side progress bar and is the denominator for human life progress.
const HumanMaxLifespan = 80.0

// Record describes one supported animal.
type Record struct {
	Key         string
	Description string
	MaxLifespan float64
	Formula     Formula
}

// HumanEquivalent converts a chronological age to human years, rounded to one
// decimal place, half away from zero.
func (r Record) HumanEquivalent(age float64) float64 {
	return math.Round(r.Formula.HumanYears(age)*10) / 10
}

// table holds every supported animal in its fixed declaration order. Keys are
// unique and lowercase; Lookup lowercases its input to match.
var table = []Record{
	{Key: "small_dog", Description: "Small dog (e.g., terrier)", MaxLifespan: 16, Formula: TwoPhase{YoungRate: 12.5, Breakpoint: 2, Base: 25.0, AdultRate: 4.5}},
	{Key: "medium_dog", Description: "Medium dog (e.g., spaniel)", MaxLifespan: 14, Formula: TwoPhase{YoungRate: 10.5, Breakpoint: 2, Base: 21.0, AdultRate: 5.0}},
	{Key: "big_dog", Description: "Large dog (e.g., retriever)", MaxLifespan: 10, Formula: TwoPhase{YoungRate: 9.0, Breakpoint: 2, Base: 18.0, AdultRate: 7.0}},
	{Key: "cat", Description: "Domestic cat", MaxLifespan: 18, Formula: TwoPhase{YoungRate: 12.5, Breakpoint: 2, Base: 25.0, AdultRate: 4.0}},
	{Key: "horse", Description: "Horse", MaxLifespan: 30, Formula: Linear{Offset: 6.5, Rate: 4.0}},
	{Key: "pig", Description: "Pig", MaxLifespan: 20, Formula: Linear{Rate: 5.0}},
	{Key: "parakeet", Description: "Parakeet / budgie", MaxLifespan: 10, Formula: Linear{Rate: 5.0}},
	{Key: "snake", Description: "Common pet snake", MaxLifespan: 20, Formula: Linear{Rate: 5.3}},
	{Key: "goldfish", Description: "Goldfish", MaxLifespan: 15, Formula: Linear{Rate: 5.0}},
	{Key: "rabbit", Description: "Rabbit", MaxLifespan: 12, Formula: TwoPhase{YoungRate: 12.0, Breakpoint: 2, Base: 24.0, AdultRate: 4.0}},
	{Key: "hamster", Description: "Hamster", MaxLifespan: 3, Formula: Linear{Rate: 25.0}},
}

// byKey indexes the table for case-insensitive lookup.
var byKey = func() map[string]Record {
	m := make(map[string]Record, len(table))
	for _, rec := range table {
		m[rec.Key] = rec
	}
	return m
}()

// Lookup finds a record by name, case-insensitively. The boolean reports
// whether the name matched a supported animal.
func Lookup(name string) (Record, bool) {
	rec, ok := byKey[strings.ToLower(name)]
	return rec, ok
}

// All returns a copy of every record in declaration order.
func All() []Record {
	out := make([]Record, len(table))
	copy(out, table)
	return out
}

// Keys returns the canonical keys in declaration order.
func Keys() []string {
	keys := make([]string, len(table))
	for i, rec := range table {
		keys[i] = rec.Key
	}
	return keys
}
