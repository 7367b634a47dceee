package testutil

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/durconv/internal/app"
)

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Stdout string
	Stderr string
	Err    error
	Dir    string // temporary directory holding the test files
}

// RunIntegrationTest provides a standardized harness for running integration tests
// using a default background context.
func RunIntegrationTest(t *testing.T, files map[string]string, cfg app.Config, stdin string) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, cfg, stdin)
}

// RunIntegrationTestWithContext writes files into a temporary directory,
// resolves cfg.InputPath relative to it and runs the app to completion.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, cfg app.Config, stdin string) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	if cfg.InputPath != "" && cfg.InputPath != app.StdinPath && !filepath.IsAbs(cfg.InputPath) {
		cfg.InputPath = filepath.Join(tmpDir, cfg.InputPath)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	appConfig, err := app.NewConfig(cfg)
	require.NoError(t, err, "invalid test configuration")

	stdout, stderr := &SafeBuffer{}, &SafeBuffer{}
	testApp := app.NewApp(strings.NewReader(stdin), stdout, stderr, appConfig)
	runErr := testApp.Run(ctx)

	if os.Getenv("DURCONV_TEST_LOGS") == "true" {
		t.Logf("--- Full stderr for %s ---\n%s", t.Name(), stderr.String())
	}

	return &HarnessResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
		Err:    runErr,
		Dir:    tmpDir,
	}
}

// OutputLines splits the harness stdout into lines, dropping the trailing
// newline.
func (r *HarnessResult) OutputLines() []string {
	out := strings.TrimSuffix(r.Stdout, "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}
