package cidutil

import (
	"strings"
	"testing"

	"github.com/ipfs/go-cid"
	"github.com/specialistvlad/platformid/internal/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linuxGCC() platform.Record {
	return platform.Record{
		StandardLevel: 2011,
		Compiler:      platform.Compiler{Family: platform.CompilerGCC, Name: "GCC", Version: 1202},
		CPU:           platform.CPU{Family: platform.CPUX8664, BitWidth: 64, Endianness: platform.EndianLittle},
		OS:            platform.OS{Family: platform.OSLinux, Name: "Linux", Capabilities: platform.CapUnix},
	}
}

func TestRecordID_Stable(t *testing.T) {
	a, err := RecordID(linuxGCC())
	require.NoError(t, err)
	b, err := RecordID(linuxGCC())
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// CIDv1 raw in the default base32 encoding.
	assert.True(t, strings.HasPrefix(a, "bafkrei"), a)
	parsed, err := cid.Decode(a)
	require.NoError(t, err)
	assert.Equal(t, uint64(cid.Raw), parsed.Type())
}

func TestRecordID_DiffersOnAnyFact(t *testing.T) {
	base, err := RecordID(linuxGCC())
	require.NoError(t, err)

	changed := linuxGCC()
	changed.Compiler.Version = 1301
	other, err := RecordID(changed)
	require.NoError(t, err)
	assert.NotEqual(t, base, other)

	changed = linuxGCC()
	changed.StandardLevelMin = 1999
	other, err = RecordID(changed)
	require.NoError(t, err)
	assert.NotEqual(t, base, other)
}

func TestCanonical(t *testing.T) {
	data, err := Canonical(linuxGCC())
	require.NoError(t, err)
	s := string(data)
	assert.True(t, strings.HasPrefix(s, `[["STANDARD_LEVEL",2011],`), s)
	assert.Contains(t, s, `["COMPILER_NAME","GCC"]`)
	assert.NotContains(t, s, "RECORD_ID")
	assert.False(t, strings.HasSuffix(s, "\n"))
}
