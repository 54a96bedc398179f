package json_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/platformid/internal/registry"
	"github.com/specialistvlad/platformid/internal/testutil"
	jsonmod "github.com/specialistvlad/platformid/modules/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmit(t *testing.T) {
	t.Parallel()
	entry := testutil.NewEntry(t, "linux-gcc", testutil.LinuxGCCRecord())

	var buf bytes.Buffer
	require.NoError(t, jsonmod.Emit(context.Background(), &buf, entry, registry.Options{Prefix: "P_"}))

	var doc jsonmod.Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "linux-gcc", doc.Unit)
	assert.Equal(t, entry.ID, doc.RecordID)

	consts := entry.Record.Constants(entry.ID)
	require.Len(t, doc.Constants, len(consts))

	byName := make(map[string]any, len(doc.Constants))
	for i, c := range doc.Constants {
		assert.Equal(t, "P_"+consts[i].Name, c.Name, "order must follow the vocabulary")
		byName[c.Name] = c.Value
	}

	want := map[string]any{
		"P_STANDARD_LEVEL":   float64(2011),
		"P_COMPILER_GCC":     true,
		"P_COMPILER_CLANG":   false,
		"P_COMPILER_NAME":    "GCC",
		"P_COMPILER_VERSION": float64(1202),
		"P_OS_NAME":          "Linux",
		"P_RECORD_ID":        entry.ID,
	}
	got := make(map[string]any, len(want))
	for name := range want {
		got[name] = byName[name]
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("constant values mismatch (-want +got):\n%s", diff)
	}
}

func TestModule_Register(t *testing.T) {
	t.Parallel()
	r := registry.New()
	(&jsonmod.Module{}).Register(r)
	e, ok := r.Lookup("json")
	require.True(t, ok)
	assert.Equal(t, ".json", e.Ext)
}
