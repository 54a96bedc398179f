package testutil

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/platformid/internal/app"
	"github.com/specialistvlad/platformid/internal/hcl_adapter"
	"github.com/specialistvlad/platformid/internal/registry"
	"github.com/stretchr/testify/require"
)

// HarnessResult holds the outcomes of an app run.
type HarnessResult struct {
	Stdout    string
	LogOutput string
	Err       error
	App       *app.App
	// Dir is the temporary root the files were written to.
	Dir string
}

// RunApp writes files (relative path to content) into a temporary directory,
// then runs an App configured by cfg. Relative ProfilePaths, MacrosPath and
// OutputPath in cfg are taken relative to that directory. Without modules the
// core output formats are used.
func RunApp(t *testing.T, files map[string]string, cfg app.Config, modules ...registry.Module) *HarnessResult {
	t.Helper()
	return RunAppWithInput(t, files, cfg, nil, modules...)
}

// RunAppWithInput is RunApp with stdin replaced by input.
func RunAppWithInput(t *testing.T, files map[string]string, cfg app.Config, input io.Reader, modules ...registry.Module) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}

	inDir := func(p string) string {
		if p == "" || p == "-" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(tmpDir, p)
	}
	paths := make([]string, 0, len(cfg.ProfilePaths))
	for _, p := range cfg.ProfilePaths {
		paths = append(paths, inDir(p))
	}
	cfg.ProfilePaths = paths
	cfg.MacrosPath = inDir(cfg.MacrosPath)
	cfg.OutputPath = inDir(cfg.OutputPath)
	cfg.LogLevel = "debug"
	cfg.LogFormat = "text"

	appConfig, err := app.NewConfig(cfg)
	if err != nil {
		return &HarnessResult{Err: err, Dir: tmpDir}
	}

	var stdout bytes.Buffer
	logBuffer := &SafeBuffer{}
	testApp := app.NewApp(&stdout, logBuffer, appConfig, hcl_adapter.NewLoader(), modules...)
	if input != nil {
		testApp.SetInput(input)
	}

	runErr := testApp.Run(context.Background())

	if os.Getenv("PLATFORMID_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		Stdout:    stdout.String(),
		LogOutput: logBuffer.String(),
		Err:       runErr,
		App:       testApp,
		Dir:       tmpDir,
	}
}
