package resolve

import (
	"github.com/specialistvlad/platformid/internal/markers"
	"github.com/specialistvlad/platformid/internal/platform"
)

type archRule struct {
	family platform.CPUFamily
	bits   int
	endian platform.Endianness
	match  func(markers.Set) bool
}

var (
	isSparc   = anyOf("__sparc", "__sparc__")
	isSparcV9 = anyOf("__sparcv9", "__sparcv9__")
)

// archRules are mutually exclusive by their predicates, so order only matters
// for readability. Watcom defines _M_IX86 with a different meaning and is
// excluded from that marker.
var archRules = []archRule{
	{
		family: platform.CPUX8664,
		bits:   64,
		endian: platform.EndianLittle,
		match:  anyOf("__x86_64", "__amd64", "_M_X64", "_M_AMD64", "__x86_64__", "__amd64__"),
	},
	{
		family: platform.CPUX8632,
		bits:   32,
		endian: platform.EndianLittle,
		match: func(s markers.Set) bool {
			return s.Any("__i386", "_M_I386", "__IA32__", "__i386__") ||
				(s.Defined("_M_IX86") && !s.Defined("__WATCOMC__"))
		},
	},
	{
		family: platform.CPUSparc64,
		bits:   64,
		endian: platform.EndianBig,
		match:  allOf(isSparc, isSparcV9),
	},
	{
		family: platform.CPUSparc32,
		bits:   32,
		endian: platform.EndianBig,
		match:  allOf(isSparc, noneOf("__sparcv9", "__sparcv9__")),
	},
}

// Architecture identifies the CPU family of set. Bit width and endianness are
// fixed properties of the family.
func Architecture(set markers.Set) (platform.CPU, error) {
	for _, rule := range archRules {
		if rule.match(set) {
			return platform.CPU{
				Family:     rule.family,
				BitWidth:   rule.bits,
				Endianness: rule.endian,
			}, nil
		}
	}
	return platform.CPU{}, unsupported(CategoryCPU, "unrecognized/unsupported CPU")
}
