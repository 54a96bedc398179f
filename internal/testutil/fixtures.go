package testutil

import (
	"testing"

	"github.com/specialistvlad/platformid/internal/cidutil"
	"github.com/specialistvlad/platformid/internal/platform"
	"github.com/specialistvlad/platformid/internal/unitstore"
	"github.com/stretchr/testify/require"
)

// LinuxGCCRecord is GCC 12.2 in C11 mode on x86-64 Linux.
func LinuxGCCRecord() platform.Record {
	return platform.Record{
		StandardLevel: 2011,
		Compiler:      platform.Compiler{Family: platform.CompilerGCC, Name: "GCC", Version: 1202},
		CPU:           platform.CPU{Family: platform.CPUX8664, BitWidth: 64, Endianness: platform.EndianLittle},
		OS:            platform.OS{Family: platform.OSLinux, Name: "Linux", Capabilities: platform.CapUnix},
	}
}

// MacClangRecord is Clang 15.0 on x86-64 macOS, claiming GCC compatibility,
// with a C99 minimum enforced.
func MacClangRecord() platform.Record {
	return platform.Record{
		StandardLevel:    2017,
		StandardLevelMin: 1999,
		Compiler: platform.Compiler{
			Family:  platform.CompilerClang,
			Name:    "Clang",
			Version: 1500,
			Mimics:  platform.MimicGCC,
		},
		CPU: platform.CPU{Family: platform.CPUX8664, BitWidth: 64, Endianness: platform.EndianLittle},
		OS: platform.OS{
			Family:       platform.OSMacOS,
			Name:         "macOS",
			Capabilities: platform.CapUnix | platform.CapBSD,
		},
	}
}

// NewEntry wraps rec as a stored unit with its real content identifier.
func NewEntry(t *testing.T, unit string, rec platform.Record) unitstore.Entry {
	t.Helper()
	id, err := cidutil.RecordID(rec)
	require.NoError(t, err)
	return unitstore.Entry{Unit: unit, Record: rec, ID: id}
}
