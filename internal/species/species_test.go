// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package species

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_IsCaseInsensitive(t *testing.T) {
	t.Parallel()

	lower, ok := Lookup("cat")
	require.True(t, ok)

	upper, ok := Lookup("CAT")
	require.True(t, ok)

	mixed, ok := Lookup("Cat")
	require.True(t, ok)

	assert.Equal(t, lower, upper)
	assert.Equal(t, lower, mixed)
	assert.Equal(t, "cat", lower.Key)
}

func TestLookup_UnknownName(t *testing.T) {
	t.Parallel()

	_, ok := Lookup("dragon")
	require.False(t, ok)
}

func TestAll_DeclarationOrder(t *testing.T) {
	t.Parallel()

	expected := []string{
		"small_dog", "medium_dog", "big_dog", "cat", "horse",
		"pig", "parakeet", "snake", "goldfish", "rabbit", "hamster",
	}

	require.Equal(t, expected, Keys())

	records := All()
	require.Len(t, records, len(expected))
	for i, rec := range records {
		assert.Equal(t, expected[i], rec.Key)
	}
}

func TestTable_Invariants(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for _, rec := range All() {
		assert.Equal(t, strings.ToLower(rec.Key), rec.Key, "key %q must be lowercase", rec.Key)
		assert.False(t, seen[rec.Key], "key %q must be unique", rec.Key)
		seen[rec.Key] = true

		assert.Positive(t, rec.MaxLifespan, "lifespan for %q must be positive", rec.Key)
		assert.NotEmpty(t, rec.Description, "description for %q must be set", rec.Key)
		assert.NotNil(t, rec.Formula, "formula for %q must be set", rec.Key)
	}
}

func TestTable_TwoPhaseEntriesAreContinuous(t *testing.T) {
	t.Parallel()

	// A jump at the breakpoint would make the conversion depend on which side
	// of the boundary a float lands. Every two-phase entry must satisfy
	// Base == Breakpoint*YoungRate.
	count := 0
	for _, rec := range All() {
		tp, ok := rec.Formula.(TwoPhase)
		if !ok {
			continue
		}
		count++
		require.InDelta(t, tp.Breakpoint*tp.YoungRate, tp.Base, 1e-9,
			"two-phase entry %q is discontinuous at its breakpoint", rec.Key)
	}
	require.Equal(t, 5, count, "expected the dogs, the cat, and the rabbit to be two-phase")
}

func TestHumanEquivalent_KnownScenarios(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		key  string
		age  float64
		want float64
	}{
		{name: "young cat", key: "cat", age: 1.0, want: 12.5},
		{name: "adult cat", key: "cat", age: 3.0, want: 29.0},
		{name: "horse keeps its head start", key: "horse", age: 10.0, want: 46.5},
		{name: "hamster burns fast", key: "hamster", age: 1.0, want: 25.0},
		{name: "small dog at the breakpoint", key: "small_dog", age: 2.0, want: 25.0},
		{name: "small dog in adulthood", key: "small_dog", age: 10.0, want: 61.0},
		{name: "medium dog in adulthood", key: "medium_dog", age: 4.0, want: 31.0},
		{name: "big dog ages hardest", key: "big_dog", age: 5.0, want: 39.0},
		{name: "rabbit in adulthood", key: "rabbit", age: 6.0, want: 40.0},
		{name: "snake fractional rate", key: "snake", age: 2.0, want: 10.6},
		{name: "goldfish plain linear", key: "goldfish", age: 4.5, want: 22.5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rec, ok := Lookup(tc.key)
			require.True(t, ok)
			require.InDelta(t, tc.want, rec.HumanEquivalent(tc.age), 1e-9)
		})
	}
}

func TestHumanEquivalent_ZeroAge(t *testing.T) {
	t.Parallel()

	// Every species starts at zero except the horse, whose formula carries a
	// constant offset of 6.5 human years.
	for _, rec := range All() {
		want := 0.0
		if rec.Key == "horse" {
			want = 6.5
		}
		assert.InDelta(t, want, rec.HumanEquivalent(0), 1e-9, "species %q at age zero", rec.Key)
	}
}

func TestHumanEquivalent_RoundsHalfAwayFromZero(t *testing.T) {
	t.Parallel()

	// 0.25 hamster years is exactly 6.25 human years; the tenths digit must
	// round up to 6.3, not to even.
	rec, ok := Lookup("hamster")
	require.True(t, ok)
	require.Equal(t, 6.3, rec.HumanEquivalent(0.25))
}

func TestHumanEquivalent_MonotonicNonDecreasing(t *testing.T) {
	t.Parallel()

	ages := []float64{0, 0.5, 1, 1.5, 2, 2.5, 3, 5, 8, 13, 21, 34}

	for _, rec := range All() {
		prev := rec.HumanEquivalent(ages[0])
		for _, age := range ages[1:] {
			got := rec.HumanEquivalent(age)
			require.GreaterOrEqual(t, got, prev,
				"species %q regressed between consecutive ages (at %v)", rec.Key, age)
			prev = got
		}
	}
}
