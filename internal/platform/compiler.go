// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the compiler half of the record.
//
// Why is mimicry a bitmask and not a family?
//
// Many compilers define other vendors' identification symbols so that headers
// written for those vendors keep working. Clang defines __GNUC__, Intel defines
// __GNUC__ on Linux and _MSC_VER on Windows. None of that changes who is
// actually compiling the code, so the primary family stays a single enum value
// and compatibility claims are an independent overlay.
package platform

import "strings"

// CompilerFamily is the single primary compiler identity.
type CompilerFamily uint8

const (
	CompilerUnknown CompilerFamily = iota
	CompilerIntel
	CompilerComeau
	CompilerSun
	CompilerClang
	CompilerGCC
	CompilerMSVC
)

// CompilerFamilies lists every known family in precedence order.
var CompilerFamilies = []CompilerFamily{
	CompilerIntel,
	CompilerComeau,
	CompilerSun,
	CompilerClang,
	CompilerGCC,
	CompilerMSVC,
}

// String returns the display name of the family.
func (f CompilerFamily) String() string {
	switch f {
	case CompilerIntel:
		return "Intel"
	case CompilerComeau:
		return "Comeau"
	case CompilerSun:
		return "Sun"
	case CompilerClang:
		return "Clang"
	case CompilerGCC:
		return "GCC"
	case CompilerMSVC:
		return "MSVC"
	default:
		return unknownStr
	}
}

// Mimic returns the mimic flag that corresponds to the family, or zero when the
// family is never mimicked by other compilers.
func (f CompilerFamily) Mimic() Mimic {
	switch f {
	case CompilerClang:
		return MimicClang
	case CompilerGCC:
		return MimicGCC
	case CompilerMSVC:
		return MimicMSVC
	default:
		return 0
	}
}

// Mimic is a set of compatibility claims made by a compiler whose primary
// family is something else.
type Mimic uint8

const (
	MimicClang Mimic = 1 << iota
	MimicGCC
	MimicMSVC
)

// Has reports whether every flag in m is set.
func (s Mimic) Has(m Mimic) bool {
	return m != 0 && s&m == m
}

// String lists the set flags, e.g. "GCC|MSVC".
func (s Mimic) String() string {
	if s == 0 {
		return "none"
	}
	var parts []string
	if s.Has(MimicClang) {
		parts = append(parts, "Clang")
	}
	if s.Has(MimicGCC) {
		parts = append(parts, "GCC")
	}
	if s.Has(MimicMSVC) {
		parts = append(parts, "MSVC")
	}
	return strings.Join(parts, "|")
}

// Compiler is the compiler slice of a Record.
type Compiler struct {
	Family CompilerFamily
	// Name is the display name, currently always Family.String().
	Name string
	// Version uses a family-specific encoding: major*100+minor for Clang and
	// GCC, the raw vendor number for everything else.
	Version int64
	Mimics  Mimic
}
