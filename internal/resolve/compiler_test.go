package resolve

import (
	"errors"
	"testing"

	"github.com/specialistvlad/platformid/internal/markers"
	"github.com/specialistvlad/platformid/internal/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompiler(t *testing.T) {
	testCases := []struct {
		name     string
		defs     map[string]string
		expected platform.Compiler
	}{
		{
			name: "clang mimicking gcc",
			defs: map[string]string{"__clang__": "1", "__clang_major__": "17", "__clang_minor__": "0", "__GNUC__": "4", "__GNUC_MINOR__": "2"},
			expected: platform.Compiler{
				Family: platform.CompilerClang, Name: "Clang", Version: 1700, Mimics: platform.MimicGCC,
			},
		},
		{
			name:     "pure gcc",
			defs:     map[string]string{"__GNUC__": "12", "__GNUC_MINOR__": "2"},
			expected: platform.Compiler{Family: platform.CompilerGCC, Name: "GCC", Version: 1202},
		},
		{
			name:     "msvc",
			defs:     map[string]string{"_MSC_VER": "1938"},
			expected: platform.Compiler{Family: platform.CompilerMSVC, Name: "MSVC", Version: 1938},
		},
		{
			name: "intel on windows mimics msvc",
			defs: map[string]string{"__ICL": "1910", "_MSC_VER": "1929"},
			expected: platform.Compiler{
				Family: platform.CompilerIntel, Name: "Intel", Version: 1910, Mimics: platform.MimicMSVC,
			},
		},
		{
			name: "intel prefers __INTEL_COMPILER over __ICC",
			defs: map[string]string{"__INTEL_COMPILER": "2021", "__ICC": "1900", "__GNUC__": "9"},
			expected: platform.Compiler{
				Family: platform.CompilerIntel, Name: "Intel", Version: 2021, Mimics: platform.MimicGCC,
			},
		},
		{
			name: "comeau prefers the EDG version",
			defs: map[string]string{"__COMO__": "1", "__COMO_VERSION__": "4301", "__EDG_VERSION__": "306"},
			expected: platform.Compiler{
				Family: platform.CompilerComeau, Name: "Comeau", Version: 306,
			},
		},
		{
			name:     "comeau without EDG",
			defs:     map[string]string{"__COMO__": "1", "__COMO_VERSION__": "4301"},
			expected: platform.Compiler{Family: platform.CompilerComeau, Name: "Comeau", Version: 4301},
		},
		{
			name:     "sun hex version",
			defs:     map[string]string{"__SUNPRO_C": "0x5150"},
			expected: platform.Compiler{Family: platform.CompilerSun, Name: "Sun", Version: 0x5150},
		},
		{
			name: "clang-cl mimics gcc and msvc",
			defs: map[string]string{"__clang__": "1", "__clang_major__": "16", "__clang_minor__": "1", "__GNUC__": "4", "_MSC_VER": "1930"},
			expected: platform.Compiler{
				Family: platform.CompilerClang, Name: "Clang", Version: 1601, Mimics: platform.MimicGCC | platform.MimicMSVC,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := Compiler(markers.New(tc.defs))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, c)
		})
	}
}

func TestCompiler_PrecedenceOrder(t *testing.T) {
	// Every vendor symbol at once: the highest-precedence family wins and each
	// lower family is dropped in turn.
	all := markers.Of("__INTEL_COMPILER", "__COMO__", "__SUNPRO_C", "__clang__", "__GNUC__", "_MSC_VER")
	drop := [][]string{
		nil,
		{"__INTEL_COMPILER"},
		{"__COMO__"},
		{"__SUNPRO_C"},
		{"__clang__"},
		{"__GNUC__"},
	}

	set := all
	for i, names := range drop {
		set = set.Without(names...)
		c, err := Compiler(set)
		require.NoError(t, err)
		assert.Equal(t, platform.CompilerFamilies[i], c.Family)
		assert.False(t, c.Mimics.Has(c.Family.Mimic()), "primary family must not appear as a mimic")
	}
}

func TestCompiler_RuleTableMatchesFamilyOrder(t *testing.T) {
	require.Len(t, compilerRules, len(platform.CompilerFamilies))
	for i, rule := range compilerRules {
		assert.Equal(t, platform.CompilerFamilies[i], rule.family)
	}
}

func TestCompiler_ExactlyOneFamily(t *testing.T) {
	symbols := []string{"__INTEL_COMPILER", "__COMO__", "__SUNPRO_C", "__clang__", "__GNUC__", "_MSC_VER"}
	// Walk every non-empty subset of vendor symbols.
	for mask := 1; mask < 1<<len(symbols); mask++ {
		var names []string
		for i, s := range symbols {
			if mask&(1<<i) != 0 {
				names = append(names, s)
			}
		}
		c, err := Compiler(markers.Of(names...))
		require.NoError(t, err, "subset %v", names)

		consts := platform.Record{Compiler: c}.Constants("")
		trueFamilies := 0
		for _, k := range consts {
			switch k.Name {
			case "COMPILER_INTEL", "COMPILER_COMEAU", "COMPILER_SUN", "COMPILER_CLANG", "COMPILER_GCC", "COMPILER_MSVC":
				if k.Bool {
					trueFamilies++
				}
			}
		}
		assert.Equal(t, 1, trueFamilies, "subset %v", names)
	}
}

func TestCompiler_Unrecognized(t *testing.T) {
	_, err := Compiler(markers.Of("__TINYC__", "__x86_64__", "__linux__"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupported))
	assert.Equal(t, CategoryCompiler, CategoryOf(err))
	assert.Contains(t, err.Error(), "unsupported compiler")
}
