package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/durconv/internal/app"
	"github.com/vk/durconv/internal/testutil"
)

// TestConversion_TableColumn validates that a column path converts that
// column in every row and leaves the others untouched.
func TestConversion_TableColumn(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	services := `
- name: web
  timeout: 30sec
- name: worker
  timeout: 2min 30sec
`
	files := map[string]string{"services.yaml": services}
	cfg := app.Config{InputPath: "services.yaml", CellPaths: []string{"timeout"}}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, cfg, "")

	// --- Assert ---
	require.NoError(t, result.Err)
	assert.Equal(t, []string{
		"{name: web, timeout: 30sec}",
		"{name: worker, timeout: 2min 30sec}",
	}, result.OutputLines())
}

// TestConversion_NestedPaths validates several paths applied in order to a
// single record.
func TestConversion_NestedPaths(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	config := `
name = "api"
limits = {
  read  = "5sec"
  write = "10sec"
}
retries = ["1sec", "2sec", "4sec"]
`
	files := map[string]string{"api.hcl": config}
	cfg := app.Config{
		InputPath:    "api.hcl",
		OutputFormat: "json",
		CellPaths:    []string{"limits.read", "retries[2]"},
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, cfg, "")

	// --- Assert ---
	require.NoError(t, result.Err)
	assert.Equal(t, []string{
		`{"limits":{"read":5000000000,"write":"10sec"},"name":"api","retries":["1sec","2sec",4000000000]}`,
	}, result.OutputLines())
}

// TestConversion_MissingPathIsAnElementError validates that one element with
// an unresolvable path becomes an error without touching its neighbours.
func TestConversion_MissingPathIsAnElementError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	rows := `[{"delay": "1sec"}, {"other": "x"}, {"delay": "3sec"}]`
	files := map[string]string{"rows.json": rows}
	cfg := app.Config{InputPath: "rows.json", CellPaths: []string{"delay"}}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, cfg, "")

	// --- Assert ---
	require.NoError(t, result.Err)
	lines := result.OutputLines()
	require.Len(t, lines, 3)
	assert.Equal(t, "{delay: 1sec}", lines[0])
	assert.Contains(t, lines[1], `column "delay" not found`)
	assert.Equal(t, "{delay: 3sec}", lines[2])
	assert.Contains(t, result.Stderr, "Cell path not found")
}
