package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sparcSolaris() Record {
	return Record{
		StandardLevel: 1999,
		Compiler:      Compiler{Family: CompilerSun, Name: "Sun", Version: 0x5150},
		CPU:           CPU{Family: CPUSparc64, BitWidth: 64, Endianness: EndianBig},
		OS:            OS{Family: OSSolaris, Name: "Solaris", Capabilities: CapSVR4 | CapUnix},
	}
}

func byName(consts []Constant) map[string]Constant {
	m := make(map[string]Constant, len(consts))
	for _, c := range consts {
		m[c.Name] = c
	}
	return m
}

func TestConstants_Vocabulary(t *testing.T) {
	rec := sparcSolaris()
	require.True(t, rec.Valid())

	consts := rec.Constants("bafkreitest")
	m := byName(consts)
	require.Len(t, m, len(consts), "constant names must be unique")

	assert.Equal(t, int64(1999), m["STANDARD_LEVEL"].Int)
	_, hasMin := m["STANDARD_LEVEL_MIN"]
	assert.False(t, hasMin)

	assert.True(t, m["COMPILER_SUN"].Bool)
	assert.False(t, m["COMPILER_GCC"].Bool)
	assert.Equal(t, "Sun", m["COMPILER_NAME"].Str)
	assert.Equal(t, int64(0x5150), m["COMPILER_VERSION"].Int)

	assert.True(t, m["CPU_SPARC_64"].Bool)
	assert.True(t, m["CPU_SPARC"].Bool)
	assert.False(t, m["CPU_X86"].Bool)
	assert.Equal(t, int64(64), m["BIT_WIDTH"].Int)
	assert.True(t, m["BITS_64"].Bool)
	assert.False(t, m["BITS_32"].Bool)
	assert.True(t, m["ENDIAN_BIG"].Bool)
	assert.False(t, m["ENDIAN_LITTLE"].Bool)

	assert.True(t, m["OS_SOLARIS"].Bool)
	assert.False(t, m["OS_SUNOS"].Bool)
	assert.True(t, m["OS_SUN"].Bool)
	assert.Equal(t, "Solaris", m["OS_NAME"].Str)
	assert.True(t, m["PLATFORM_SVR4"].Bool)
	assert.True(t, m["PLATFORM_UNIX"].Bool)
	assert.False(t, m["PLATFORM_BSD"].Bool)
	assert.False(t, m["PLATFORM_WINDOWS"].Bool)

	assert.Equal(t, "bafkreitest", m["RECORD_ID"].Str)
	assert.Equal(t, GroupIdentity, m["RECORD_ID"].Group)
}

func TestConstants_ExactlyOnePerFamilyGroup(t *testing.T) {
	rec := sparcSolaris()
	rec.StandardLevelMin = 1989
	m := byName(rec.Constants(""))

	trueOf := func(names []string) int {
		n := 0
		for _, name := range names {
			if m[name].Bool {
				n++
			}
		}
		return n
	}

	var compilers, cpus, oses []string
	for _, f := range CompilerFamilies {
		compilers = append(compilers, compilerConstNames[f])
	}
	for _, f := range CPUFamilies {
		cpus = append(cpus, cpuConstNames[f])
	}
	for _, f := range OSFamilies {
		oses = append(oses, osConstNames[f])
	}

	assert.Equal(t, 1, trueOf(compilers))
	assert.Equal(t, 1, trueOf(cpus))
	assert.Equal(t, 1, trueOf(oses))
	assert.Equal(t, 1, trueOf([]string{"BITS_64", "BITS_32", "BITS_16"}))
	assert.Equal(t, 1, trueOf([]string{"ENDIAN_LITTLE", "ENDIAN_BIG"}))

	assert.Equal(t, int64(1989), m["STANDARD_LEVEL_MIN"].Int)
	_, hasID := m["RECORD_ID"]
	assert.False(t, hasID)
}

func TestConstants_SunGroup(t *testing.T) {
	testCases := []struct {
		family OSFamily
		want   bool
	}{
		{OSSolaris, true},
		{OSSunOS, true},
		{OSLinux, false},
		{OSFreeBSD, false},
	}
	for _, tc := range testCases {
		t.Run(tc.family.String(), func(t *testing.T) {
			rec := sparcSolaris()
			rec.OS.Family = tc.family
			assert.Equal(t, tc.want, tc.family.IsSun())
			assert.Equal(t, tc.want, byName(rec.Constants(""))["OS_SUN"].Bool)
		})
	}
}

func TestConstant_Value(t *testing.T) {
	assert.Equal(t, true, boolConst(GroupCPU, "X", true).Value())
	assert.Equal(t, int64(7), intConst(GroupCPU, "X", 7).Value())
	assert.Equal(t, "s", strConst(GroupCPU, "X", "s").Value())
}

func TestFlagStrings(t *testing.T) {
	assert.Equal(t, "none", Mimic(0).String())
	assert.Equal(t, "GCC|MSVC", (MimicGCC | MimicMSVC).String())
	assert.Equal(t, "Unix|BSD", (CapBSD | CapUnix).String())
	assert.Equal(t, "Windows", CapWindows.String())
	assert.False(t, Capability(0).Has(0))

	assert.Equal(t, "DragonFly BSD", OSDragonFly.String())
	assert.Equal(t, "x86-64", CPUX8664.String())
	assert.Equal(t, "big", EndianBig.String())
	assert.Equal(t, "unknown", CompilerUnknown.String())
	assert.Equal(t, Mimic(0), CompilerIntel.Mimic())
	assert.Equal(t, MimicClang, CompilerClang.Mimic())
}

func TestRecord_ZeroIsInvalid(t *testing.T) {
	assert.False(t, Record{}.Valid())
}
