// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package species provides the compiled-in table of supported animals and the
// arithmetic that converts a pet's chronological age into human years.
//
// # Core Concepts
//
// The package is built around two structures:
//
//   - Record: one supported animal. It carries the canonical lowercase key,
//     a display description, the typical maximum lifespan, and the conversion
//     formula for that animal.
//
//   - Formula: the conversion itself. Every animal converts with one of two
//     shapes, either a plain linear ramp or a two-phase ramp that grows fast
//     early in life and slower after a breakpoint.
//
// Why a compiled-in table?
//
// The set of supported animals is closed and small. Baking it into the binary
// as an immutable package-level table means there is nothing to load, nothing
// to validate at startup, and no mutable global state to reason about. Lookup
// is case-insensitive; declaration order is fixed and drives every listing the
// program prints.
package species
