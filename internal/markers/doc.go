// Package markers models the predefined identification symbols of a C
// toolchain: the set of macros a compiler defines before reading any source,
// as printed by `cc -dM -E`.
//
// A Set maps a macro name to its raw replacement text. Sets are immutable;
// With, Without and Merge return new sets.
package markers
