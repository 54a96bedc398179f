package app

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()
	cfg, err := NewConfig(Config{MacrosPath: "dump.txt"})
	require.NoError(t, err)
	assert.Equal(t, DefaultUnit, cfg.Unit)
	assert.Equal(t, "header", cfg.Format)
	assert.Equal(t, 1, cfg.WorkerCount)
}

func TestNewConfig_Prefix(t *testing.T) {
	t.Parallel()
	for _, prefix := range []string{"", "P_", "_x", "PLATFORM_2_"} {
		cfg, err := NewConfig(Config{Defines: []string{"X"}, Prefix: prefix})
		require.NoError(t, err, prefix)
		assert.Equal(t, prefix, cfg.Prefix)
	}
}

func TestNewConfig_Errors(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"empty", Config{}, "nothing to resolve"},
		{"profiles and macros", Config{ProfilePaths: []string{"p"}, MacrosPath: "d"}, "profiles cannot be combined"},
		{"macros and cc", Config{MacrosPath: "d", Compiler: "cc"}, "mutually exclusive"},
		{"cflags alone", Config{Defines: []string{"X"}, CompilerFlags: []string{"-m32"}}, "-cflags requires -cc"},
		{"only alone", Config{Defines: []string{"X"}, Only: []string{"a"}}, "-only requires a profile path"},
		{"negative minimum", Config{Defines: []string{"X"}, StandardMin: -5}, "invalid minimum standard level -5"},
		{"prefix with punctuation", Config{Defines: []string{"X"}, Prefix: "os:"}, `invalid prefix "os:"`},
		{"prefix with leading digit", Config{Defines: []string{"X"}, Prefix: "9P_"}, "must be a C identifier"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewConfig(tc.cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestFileName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "linux-gcc", FileName("linux-gcc"))
	assert.Equal(t, "arm_v7_hf", FileName("arm/v7 hf"))
	assert.Equal(t, "a.b_c", FileName("a.b_c"))
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := newLogger("warn", "json", &buf)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
	logger.Warn("hello", "k", "v")
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	buf.Reset()
	logger = newLogger("bogus", "text", &buf)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
	logger.Info("hi")
	assert.Contains(t, buf.String(), "msg=hi")
}
