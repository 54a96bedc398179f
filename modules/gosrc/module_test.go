package gosrc_test

import (
	"bytes"
	"context"
	"go/parser"
	"go/token"
	"testing"

	"github.com/specialistvlad/platformid/internal/registry"
	"github.com/specialistvlad/platformid/internal/testutil"
	"github.com/specialistvlad/platformid/modules/gosrc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmit(t *testing.T) {
	t.Parallel()
	entry := testutil.NewEntry(t, "mac-clang", testutil.MacClangRecord())

	var buf bytes.Buffer
	err := gosrc.Emit(context.Background(), &buf, entry, registry.Options{Package: "buildinfo"})
	require.NoError(t, err)
	out := buf.String()

	_, err = parser.ParseFile(token.NewFileSet(), "out.go", out, parser.AllErrors)
	require.NoError(t, err, "generated source must parse:\n%s", out)

	assert.Contains(t, out, "// Code generated by platformid. DO NOT EDIT.\n")
	assert.Contains(t, out, "package buildinfo\n")
	assert.Contains(t, out, "// compiler\n")
	assert.Regexp(t, `StandardLevel\s+= 2017`, out)
	assert.Regexp(t, `StandardLevelMin\s+= 1999`, out)
	assert.Regexp(t, `CompilerClang\s+= true`, out)
	assert.Regexp(t, `CompilerGCC\s+= false`, out)
	assert.Regexp(t, `CompilerMimicsGCC\s+= true`, out)
	assert.Regexp(t, `CompilerName\s+= "Clang"`, out)
	assert.Regexp(t, `CPUX8664\s+= true`, out)
	assert.Regexp(t, `OSMacos\s+= true`, out)
	assert.Regexp(t, `PlatformBSD\s+= true`, out)
	assert.Regexp(t, `RecordID\s+= "`+entry.ID+`"`, out)
}

func TestEmit_DefaultAndInvalidPackage(t *testing.T) {
	t.Parallel()
	entry := testutil.NewEntry(t, "linux", testutil.LinuxGCCRecord())

	var buf bytes.Buffer
	require.NoError(t, gosrc.Emit(context.Background(), &buf, entry, registry.Options{}))
	assert.Contains(t, buf.String(), "package platform\n")

	err := gosrc.Emit(context.Background(), &bytes.Buffer{}, entry, registry.Options{Package: "not-valid"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid Go package name")
}

func TestEmit_Prefix(t *testing.T) {
	t.Parallel()
	entry := testutil.NewEntry(t, "linux", testutil.LinuxGCCRecord())

	var buf bytes.Buffer
	require.NoError(t, gosrc.Emit(context.Background(), &buf, entry, registry.Options{Prefix: "HOST_"}))
	assert.Regexp(t, `HostOSLinux\s+= true`, buf.String())
}

func TestGoName(t *testing.T) {
	t.Parallel()
	testCases := map[string]string{
		"STANDARD_LEVEL":       "StandardLevel",
		"COMPILER_MIMICS_MSVC": "CompilerMimicsMSVC",
		"CPU_SPARC_64":         "CPUSparc64",
		"BITS_16":              "Bits16",
		"PLATFORM_SVR4":        "PlatformSVR4",
		"RECORD_ID":            "RecordID",
		"OS_DRAGONFLY":         "OSDragonfly",
		"__WEIRD__":            "Weird",
		"_64":                  "X64",
	}
	for in, want := range testCases {
		assert.Equal(t, want, gosrc.GoName(in), in)
	}
}
