package resolve

import (
	"github.com/specialistvlad/platformid/internal/markers"
	"github.com/specialistvlad/platformid/internal/platform"
)

// compilerRule pairs a family with the predicate that identifies it and the
// version encoding used once it has been picked.
type compilerRule struct {
	family  platform.CompilerFamily
	match   func(markers.Set) bool
	version func(markers.Set) int64
}

// compilerRules is evaluated top-down. Intel and Comeau define GCC or MSVC
// symbols depending on the host, Clang defines __GNUC__, so the pure vendors
// come last.
var compilerRules = []compilerRule{
	{
		family:  platform.CompilerIntel,
		match:   anyOf("__INTEL_COMPILER", "__ICL", "__ICC"),
		version: firstInt("__INTEL_COMPILER", "__ICL", "__ICC"),
	},
	{
		family:  platform.CompilerComeau,
		match:   anyOf("__COMO__"),
		version: firstInt("__EDG_VERSION__", "__COMO_VERSION__"),
	},
	{
		family:  platform.CompilerSun,
		match:   anyOf("__SUNPRO_C"),
		version: firstInt("__SUNPRO_C"),
	},
	{
		family:  platform.CompilerClang,
		match:   anyOf("__clang__"),
		version: majorMinor("__clang_major__", "__clang_minor__"),
	},
	{
		family:  platform.CompilerGCC,
		match:   anyOf("__GNUC__"),
		version: majorMinor("__GNUC__", "__GNUC_MINOR__"),
	},
	{
		family:  platform.CompilerMSVC,
		match:   anyOf("_MSC_VER"),
		version: firstInt("_MSC_VER"),
	},
}

// mimicMarkers are re-checked after the primary family is fixed.
var mimicMarkers = []struct {
	family platform.CompilerFamily
	marker string
}{
	{platform.CompilerClang, "__clang__"},
	{platform.CompilerGCC, "__GNUC__"},
	{platform.CompilerMSVC, "_MSC_VER"},
}

// Compiler identifies the primary compiler family of set, its version and the
// other vendors it claims compatibility with.
func Compiler(set markers.Set) (platform.Compiler, error) {
	for _, rule := range compilerRules {
		if !rule.match(set) {
			continue
		}
		c := platform.Compiler{
			Family:  rule.family,
			Name:    rule.family.String(),
			Version: rule.version(set),
		}
		for _, m := range mimicMarkers {
			if m.family != c.Family && set.Defined(m.marker) {
				c.Mimics |= m.family.Mimic()
			}
		}
		return c, nil
	}
	return platform.Compiler{}, unsupported(CategoryCompiler, "unrecognized/unsupported compiler")
}

func anyOf(names ...string) func(markers.Set) bool {
	return func(s markers.Set) bool {
		return s.Any(names...)
	}
}

func allOf(preds ...func(markers.Set) bool) func(markers.Set) bool {
	return func(s markers.Set) bool {
		for _, p := range preds {
			if !p(s) {
				return false
			}
		}
		return true
	}
}

func noneOf(names ...string) func(markers.Set) bool {
	return func(s markers.Set) bool {
		return !s.Any(names...)
	}
}

// firstInt reads the first defined symbol of names. A defined symbol whose text
// is not an integer yields zero; a less specific symbol is never consulted once
// a more specific one is defined.
func firstInt(names ...string) func(markers.Set) int64 {
	return func(s markers.Set) int64 {
		for _, n := range names {
			if s.Defined(n) {
				v, _ := s.Int(n)
				return v
			}
		}
		return 0
	}
}

func majorMinor(major, minor string) func(markers.Set) int64 {
	return func(s markers.Set) int64 {
		maj, _ := s.Int(major)
		mnr, _ := s.Int(minor)
		return maj*100 + mnr
	}
}
