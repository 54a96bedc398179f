package env_test

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/specialistvlad/platformid/internal/registry"
	"github.com/specialistvlad/platformid/internal/testutil"
	"github.com/specialistvlad/platformid/modules/env"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmit(t *testing.T) {
	t.Parallel()
	entry := testutil.NewEntry(t, "mac-clang", testutil.MacClangRecord())

	var buf bytes.Buffer
	require.NoError(t, env.Emit(context.Background(), &buf, entry, registry.Options{Prefix: "PLATFORM_"}))

	vars := make(map[string]string)
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		name, value, ok := strings.Cut(line, "=")
		require.True(t, ok, "line %q", line)
		vars[name] = value
	}
	require.NoError(t, scanner.Err())

	assert.Len(t, vars, len(entry.Record.Constants(entry.ID)))
	assert.Equal(t, "2017", vars["PLATFORM_STANDARD_LEVEL"])
	assert.Equal(t, "1999", vars["PLATFORM_STANDARD_LEVEL_MIN"])
	assert.Equal(t, "1", vars["PLATFORM_COMPILER_CLANG"])
	assert.Equal(t, "0", vars["PLATFORM_COMPILER_GCC"])
	assert.Equal(t, "1", vars["PLATFORM_COMPILER_MIMICS_GCC"])
	assert.Equal(t, "Clang", vars["PLATFORM_COMPILER_NAME"])
	assert.Equal(t, "macOS", vars["PLATFORM_OS_NAME"])
	assert.Equal(t, entry.ID, vars["PLATFORM_RECORD_ID"])
}

func TestQuote(t *testing.T) {
	t.Parallel()
	testCases := map[string]string{
		"":              `""`,
		"Linux":         "Linux",
		"DragonFly BSD": `"DragonFly BSD"`,
		"a$b":           `"a$b"`,
		`say "hi"`:      `"say \"hi\""`,
		"x86-64":        "x86-64",
	}
	for in, want := range testCases {
		assert.Equal(t, want, env.Quote(in), in)
	}
}
